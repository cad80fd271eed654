package domain

// Post is a feed post pending or past moderation.
type Post struct {
	ID         string   `json:"id"`
	AuthorID   string   `json:"authorId,omitempty"`
	AuthorName string   `json:"authorName,omitempty"`
	Content    string   `json:"content,omitempty"`
	Images     []string `json:"images,omitempty"`
	Status     string   `json:"status,omitempty"`
	Reason     string   `json:"reason,omitempty"`
	CreatedAt  string   `json:"createdAt,omitempty"`
}

// Post moderation statuses as the backend spells them.
const (
	PostStatusPending  = "pending"
	PostStatusApproved = "approved"
	PostStatusRejected = "rejected"
)
