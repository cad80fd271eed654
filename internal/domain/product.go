package domain

// Product is a member's product listing.
type Product struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description,omitempty"`
	Price         float64  `json:"price,omitempty"`
	Images        []string `json:"images,omitempty"`
	Status        string   `json:"status,omitempty"`
	RejectRemarks string   `json:"rejectRemarks,omitempty"`
	OwnerID       string   `json:"ownerId,omitempty"`
	OwnerName     string   `json:"ownerName,omitempty"`
}
