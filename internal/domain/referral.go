package domain

// Referral is a member-to-member business referral.
type Referral struct {
	ID         string `json:"id"`
	FromUserID string `json:"fromUserId"`
	ToUserID   string `json:"toUserId"`
	Note       string `json:"note,omitempty"`
	Status     string `json:"status,omitempty"`
	CreatedAt  string `json:"createdAt,omitempty"`
}

// PointsAward is the backend's record of points granted to a user.
type PointsAward struct {
	UserID string `json:"userId"`
	Points int    `json:"points"`
	Reason string `json:"reason,omitempty"`
	Total  int    `json:"total,omitempty"`
}
