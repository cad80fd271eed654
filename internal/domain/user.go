// Package domain holds the client-side views of backend entities. All of
// these are fetched on demand and held only in transient memory; none are
// persisted locally except the cached profile owned by credstore.
package domain

// User is a community member as the backend returns it. Field presence
// varies by endpoint; absent fields simply stay zero.
type User struct {
	ID                string `json:"id"`
	FirstName         string `json:"firstName,omitempty"`
	LastName          string `json:"lastName,omitempty"`
	Name              string `json:"name,omitempty"`
	Username          string `json:"username,omitempty"`
	Email             string `json:"email,omitempty"`
	Role              string `json:"role,omitempty"`
	ProfileImage      string `json:"profileImage,omitempty"`
	BusinessName      string `json:"businessName,omitempty"`
	OwnerImage        string `json:"ownerImage,omitempty"`
	Approved          bool   `json:"approved,omitempty"`
	Banned            bool   `json:"banned,omitempty"`
	FeeDefaulter      bool   `json:"feeDefaulter,omitempty"`
	MatrimonialAccess bool   `json:"matrimonialAccess,omitempty"`
}

// ProfileCard is the condensed profile view used for card rendering.
type ProfileCard struct {
	UserID       string `json:"userId"`
	Name         string `json:"name"`
	BusinessName string `json:"businessName,omitempty"`
	ProfileImage string `json:"profileImage,omitempty"`
	Points       int    `json:"points,omitempty"`
}
