package domain

import "time"

// ChatUser is an entry in the static user directory.
// UserID is the public handle code (e.g. "TV12345") shown in the UI,
// distinct from the internal ID.
type ChatUser struct {
	ID       string
	Name     string
	NameEn   string
	Username string
	UserID   string
	Phone    string
	Email    string
	Photo    string
	Status   string
	LastSeen time.Time
	Bio      string
	BioEn    string
}

// Message is a single chat message. Messages are immutable once created
// except for the Read flag, which only ever flips false to true.
type Message struct {
	ID        string
	SenderID  string
	Text      string
	TextEn    string
	Timestamp time.Time
	Read      bool
}

// Conversation is a thread between the session owner and one other user.
// The participant pair is unique per conversation. OtherUser is a
// denormalized snapshot of the directory entry.
type Conversation struct {
	ID           string
	Participants []string
	OtherUser    *ChatUser
	LastMessage  *Message
	UnreadCount  int
	UpdatedAt    time.Time
}

// HasParticipant reports whether the given user id is part of the conversation.
func (c *Conversation) HasParticipant(userID string) bool {
	for _, p := range c.Participants {
		if p == userID {
			return true
		}
	}
	return false
}
