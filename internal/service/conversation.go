package service

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"transverse/internal/domain"
	"transverse/internal/repository"
)

// ConversationService owns the user directory, the conversation list and the
// per-conversation message lists. The directory is read-only reference data;
// conversations are prepended on creation and never reordered, so lookup
// order is stable.
type ConversationService struct {
	selfID string
	now    func() time.Time

	mu            sync.RWMutex
	users         []*domain.ChatUser
	conversations []*domain.Conversation
	messages      map[string][]*domain.Message
}

// NewConversationService creates a ConversationService seeded with the given
// directory, conversations and messages. selfID is the session owner whose
// view the store represents.
func NewConversationService(
	selfID string,
	users []*domain.ChatUser,
	conversations []*domain.Conversation,
	messages map[string][]*domain.Message,
) *ConversationService {
	if messages == nil {
		messages = make(map[string][]*domain.Message)
	}
	return &ConversationService{
		selfID:        selfID,
		now:           time.Now,
		users:         users,
		conversations: conversations,
		messages:      messages,
	}
}

// FindUserByID looks up a directory entry by internal id or public handle code.
func (s *ConversationService) FindUserByID(id string) (*domain.ChatUser, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, user := range s.users {
		if user.ID == id || user.UserID == id {
			userCopy := *user
			return &userCopy, nil
		}
	}
	return nil, repository.ErrNotFound
}

// SearchUser returns the first directory entry whose username or display
// name (either locale) contains the query, case-insensitive.
func (s *ConversationService) SearchUser(query string) (*domain.ChatUser, error) {
	if query == "" {
		return nil, ErrMissingInput
	}

	lower := strings.ToLower(query)

	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, user := range s.users {
		if strings.Contains(strings.ToLower(user.Username), lower) ||
			strings.Contains(user.Name, query) ||
			strings.Contains(strings.ToLower(user.NameEn), lower) {
			userCopy := *user
			return &userCopy, nil
		}
	}
	return nil, repository.ErrNotFound
}

// GetOrCreateConversation returns the existing conversation with the given
// user, or creates one lazily. Unknown users fail with repository.ErrNotFound.
func (s *ConversationService) GetOrCreateConversation(otherUserID string) (*domain.Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// First match wins: the list is prepend-only, so iteration order is stable.
	for _, conv := range s.conversations {
		if conv.HasParticipant(otherUserID) {
			return copyConversation(conv), nil
		}
	}

	var otherUser *domain.ChatUser
	for _, user := range s.users {
		if user.ID == otherUserID {
			otherUser = user
			break
		}
	}
	if otherUser == nil {
		return nil, repository.ErrNotFound
	}

	conv := &domain.Conversation{
		ID:           uuid.New().String(),
		Participants: []string{s.selfID, otherUserID},
		OtherUser:    otherUser,
		UnreadCount:  0,
		UpdatedAt:    s.now(),
	}

	s.conversations = append([]*domain.Conversation{conv}, s.conversations...)
	s.messages[conv.ID] = []*domain.Message{}

	return copyConversation(conv), nil
}

// SendMessage appends a message from the session owner to a conversation and
// updates its last-message reference. An unknown conversation id fails with
// repository.ErrNotFound. The sender's own unread count is untouched.
func (s *ConversationService) SendMessage(conversationID, text, textEn string) (*domain.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv := s.findConversationLocked(conversationID)
	if conv == nil {
		return nil, repository.ErrNotFound
	}

	msg := &domain.Message{
		ID:        uuid.New().String(),
		SenderID:  s.selfID,
		Text:      text,
		TextEn:    textEn,
		Timestamp: s.now(),
		Read:      false,
	}

	s.messages[conversationID] = append(s.messages[conversationID], msg)
	conv.LastMessage = msg
	conv.UpdatedAt = msg.Timestamp

	msgCopy := *msg
	return &msgCopy, nil
}

// MarkAsRead resets a conversation's unread count to zero. Message contents
// are untouched. Unknown ids are a no-op.
func (s *ConversationService) MarkAsRead(conversationID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if conv := s.findConversationLocked(conversationID); conv != nil {
		conv.UnreadCount = 0
	}
}

// TotalUnreadCount sums unread counts across all conversations.
func (s *ConversationService) TotalUnreadCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := 0
	for _, conv := range s.conversations {
		total += conv.UnreadCount
	}
	return total
}

// Conversations returns a snapshot of the conversation list, most recent first.
func (s *ConversationService) Conversations() []*domain.Conversation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.Conversation, 0, len(s.conversations))
	for _, conv := range s.conversations {
		result = append(result, copyConversation(conv))
	}
	return result
}

// Messages returns a snapshot of a conversation's message list.
func (s *ConversationService) Messages(conversationID string) ([]*domain.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	msgs, ok := s.messages[conversationID]
	if !ok {
		return nil, repository.ErrNotFound
	}

	result := make([]*domain.Message, 0, len(msgs))
	for _, msg := range msgs {
		msgCopy := *msg
		result = append(result, &msgCopy)
	}
	return result, nil
}

func (s *ConversationService) findConversationLocked(id string) *domain.Conversation {
	for _, conv := range s.conversations {
		if conv.ID == id {
			return conv
		}
	}
	return nil
}

func copyConversation(conv *domain.Conversation) *domain.Conversation {
	convCopy := *conv
	convCopy.Participants = append([]string(nil), conv.Participants...)
	if conv.OtherUser != nil {
		userCopy := *conv.OtherUser
		convCopy.OtherUser = &userCopy
	}
	if conv.LastMessage != nil {
		msgCopy := *conv.LastMessage
		convCopy.LastMessage = &msgCopy
	}
	return &convCopy
}
