package domain

// Event is a community event.
type Event struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Date        string `json:"date,omitempty"`
	Time        string `json:"time,omitempty"`
	Venue       string `json:"venue,omitempty"`
	UpiID       string `json:"upiId,omitempty"`
	Description string `json:"description,omitempty"`
	BannerURL   string `json:"bannerUrl,omitempty"`
	Status      string `json:"status,omitempty"`
}

// EventRegistration is a member's registration for an event, including the
// payment proof the admin verifies.
type EventRegistration struct {
	ID                string `json:"id"`
	EventID           string `json:"eventId"`
	UserID            string `json:"userId"`
	UserName          string `json:"userName,omitempty"`
	PaymentScreenshot string `json:"paymentScreenshot,omitempty"`
	Verified          bool   `json:"verified,omitempty"`
}
