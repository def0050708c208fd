package models

import "time"

// PlatformStats aggregates directory and swap counts for the admin dashboard.
type PlatformStats struct {
	TotalUsers      int       `json:"totalUsers"`
	ActiveSwaps     int       `json:"activeSwaps"`
	PendingRequests int       `json:"pendingRequests"`
	CompletedSwaps  int       `json:"completedSwaps"`
	RejectedSwaps   int       `json:"rejectedSwaps"`
	GeneratedAt     time.Time `json:"generatedAt"`
}

// TotalRequests sums requests across every status.
func (s PlatformStats) TotalRequests() int {
	return s.ActiveSwaps + s.PendingRequests + s.CompletedSwaps + s.RejectedSwaps
}
