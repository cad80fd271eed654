package domain

// Chat is a conversation between two users.
type Chat struct {
	ID           string   `json:"id"`
	Participants []string `json:"participants,omitempty"`
	LastMessage  string   `json:"lastMessage,omitempty"`
	UpdatedAt    string   `json:"updatedAt,omitempty"`
}

// Message is a single chat message.
type Message struct {
	ID        string `json:"id"`
	ChatID    string `json:"chatId"`
	SenderID  string `json:"senderId"`
	Text      string `json:"text"`
	CreatedAt string `json:"createdAt,omitempty"`
}
