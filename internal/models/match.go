package models

import "fmt"

// Match pairs a candidate with the first of their offered skills that someone wants.
type Match struct {
	ID                string `json:"id"`
	CandidateID       string `json:"candidateId"`
	CandidateName     string `json:"candidateName"`
	MatchingSkillID   string `json:"matchingSkillId"`
	MatchingSkillName string `json:"matchingSkillName"`
}

// MatchID builds the stable alert identifier for a candidate/skill pair.
func MatchID(candidateID, skillID string) string {
	return fmt.Sprintf("match-%s-%s", candidateID, skillID)
}
