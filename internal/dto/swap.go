package dto

import "github.com/noah-isme/skillswap/internal/models"

// CreateSwapRequest is the full creation payload, snapshots included.
type CreateSwapRequest struct {
	FromUserID     string       `json:"fromUserId" validate:"required"`
	ToUserID       string       `json:"toUserId" validate:"required,nefield=FromUserID"`
	FromUser       models.User  `json:"fromUser"`
	ToUser         models.User  `json:"toUser"`
	OfferedSkill   models.Skill `json:"offeredSkill"`
	RequestedSkill models.Skill `json:"requestedSkill"`
	Message        string       `json:"message" validate:"required"`
}

// ProposeSwapRequest is what the current user picks when asking someone for a swap.
type ProposeSwapRequest struct {
	ToUserID         string `json:"toUserId" validate:"required"`
	OfferedSkillID   string `json:"offeredSkillId" validate:"required"`
	RequestedSkillID string `json:"requestedSkillId" validate:"required"`
	Message          string `json:"message"`
}

// UpdateSwapStatusRequest carries a lifecycle decision.
type UpdateSwapStatusRequest struct {
	Status models.SwapStatus `json:"status" validate:"required,oneof=accepted rejected completed"`
}

// SwapBoard groups one user's requests the way the swaps screen shows them.
// History holds every closed request, rejected as well as completed; filter on Status for
// the completed-only view.
type SwapBoard struct {
	Received []models.SwapRequest `json:"received"`
	Sent     []models.SwapRequest `json:"sent"`
	Active   []models.SwapRequest `json:"active"`
	History  []models.SwapRequest `json:"history"`
}
