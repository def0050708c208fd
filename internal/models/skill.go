package models

import "strings"

// SkillLevel grades proficiency in a skill.
type SkillLevel string

const (
	SkillLevelBeginner     SkillLevel = "Beginner"
	SkillLevelIntermediate SkillLevel = "Intermediate"
	SkillLevelAdvanced     SkillLevel = "Advanced"
	SkillLevelExpert       SkillLevel = "Expert"
)

// Valid reports whether the level is one of the known grades.
func (l SkillLevel) Valid() bool {
	switch l {
	case SkillLevelBeginner, SkillLevelIntermediate, SkillLevelAdvanced, SkillLevelExpert:
		return true
	}
	return false
}

// Skill is something a user can teach or wants to learn. Identity is ID.
type Skill struct {
	ID       string     `json:"id" validate:"required"`
	Name     string     `json:"name" validate:"required"`
	Level    SkillLevel `json:"level" validate:"required,oneof=Beginner Intermediate Advanced Expert"`
	Category string     `json:"category"`
}

// SkillSet is an ordered collection of skills unique by ID.
type SkillSet []Skill

// FindByID returns the skill with the given ID.
func (s SkillSet) FindByID(id string) (Skill, bool) {
	for _, skill := range s {
		if skill.ID == id {
			return skill, true
		}
	}
	return Skill{}, false
}

// Contains reports whether a skill with the same ID is present.
func (s SkillSet) Contains(skill Skill) bool {
	_, ok := s.FindByID(skill.ID)
	return ok
}

// HasDuplicateIDs reports whether two entries share an ID.
func (s SkillSet) HasDuplicateIDs() bool {
	seen := make(map[string]struct{}, len(s))
	for _, skill := range s {
		if _, ok := seen[skill.ID]; ok {
			return true
		}
		seen[skill.ID] = struct{}{}
	}
	return false
}

// LowerNames returns the lower-cased skill names as a lookup set.
func (s SkillSet) LowerNames() map[string]struct{} {
	names := make(map[string]struct{}, len(s))
	for _, skill := range s {
		names[strings.ToLower(skill.Name)] = struct{}{}
	}
	return names
}

// Clone returns an independent copy.
func (s SkillSet) Clone() SkillSet {
	if s == nil {
		return nil
	}
	out := make(SkillSet, len(s))
	copy(out, s)
	return out
}
