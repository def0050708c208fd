package models

import "time"

// SwapStatus captures lifecycle states for swap requests.
type SwapStatus string

const (
	SwapStatusPending   SwapStatus = "pending"
	SwapStatusAccepted  SwapStatus = "accepted"
	SwapStatusRejected  SwapStatus = "rejected"
	SwapStatusCompleted SwapStatus = "completed"
)

var swapTransitions = map[SwapStatus][]SwapStatus{
	SwapStatusPending:  {SwapStatusAccepted, SwapStatusRejected},
	SwapStatusAccepted: {SwapStatusCompleted},
}

// Valid reports whether the status is a known lifecycle state.
func (s SwapStatus) Valid() bool {
	switch s {
	case SwapStatusPending, SwapStatusAccepted, SwapStatusRejected, SwapStatusCompleted:
		return true
	}
	return false
}

// Terminal reports whether no transition leaves this state.
func (s SwapStatus) Terminal() bool {
	return s == SwapStatusRejected || s == SwapStatusCompleted
}

// CanTransitionTo reports whether next is a legal successor of s.
func (s SwapStatus) CanTransitionTo(next SwapStatus) bool {
	for _, allowed := range swapTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// SwapRequest proposes exchanging one of FromUser's skills for one of ToUser's.
// FromUser and ToUser are snapshots taken at creation and may drift from the directory.
type SwapRequest struct {
	ID             string     `json:"id"`
	FromUserID     string     `json:"fromUserId"`
	ToUserID       string     `json:"toUserId"`
	FromUser       User       `json:"fromUser"`
	ToUser         User       `json:"toUser"`
	OfferedSkill   Skill      `json:"offeredSkill"`
	RequestedSkill Skill      `json:"requestedSkill"`
	Message        string     `json:"message"`
	Status         SwapStatus `json:"status"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

// Involves reports whether userID is either party.
func (r SwapRequest) Involves(userID string) bool {
	return r.FromUserID == userID || r.ToUserID == userID
}

// Counterpart returns the snapshot of the other party from userID's point of view.
func (r SwapRequest) Counterpart(userID string) User {
	if r.FromUserID == userID {
		return r.ToUser
	}
	return r.FromUser
}

// Clone returns a deep copy.
func (r SwapRequest) Clone() SwapRequest {
	r.FromUser = r.FromUser.Clone()
	r.ToUser = r.ToUser.Clone()
	return r
}

// SwapRequestFilter constrains listing queries. Empty fields match everything.
type SwapRequestFilter struct {
	UserID     string
	FromUserID string
	ToUserID   string
	Status     []SwapStatus
}

// Matches reports whether the request satisfies the filter.
func (f SwapRequestFilter) Matches(r SwapRequest) bool {
	if f.UserID != "" && !r.Involves(f.UserID) {
		return false
	}
	if f.FromUserID != "" && r.FromUserID != f.FromUserID {
		return false
	}
	if f.ToUserID != "" && r.ToUserID != f.ToUserID {
		return false
	}
	if len(f.Status) == 0 {
		return true
	}
	for _, status := range f.Status {
		if r.Status == status {
			return true
		}
	}
	return false
}
