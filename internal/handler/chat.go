package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"transverse/internal/domain"
	"transverse/internal/service"
)

// ChatHandler handles HTTP requests for the chat system.
type ChatHandler struct {
	chats *service.ConversationService
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(chats *service.ConversationService) *ChatHandler {
	return &ChatHandler{chats: chats}
}

// CreateConversationRequest is the HTTP request body for opening a conversation.
type CreateConversationRequest struct {
	OtherUserID string `json:"other_user_id"`
}

// SendMessageRequest is the HTTP request body for sending a message.
type SendMessageRequest struct {
	Text   string `json:"text"`
	TextEn string `json:"text_en,omitempty"`
}

// ChatUserResponse is the HTTP representation of a directory entry.
type ChatUserResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	NameEn   string `json:"name_en"`
	Username string `json:"username"`
	UserID   string `json:"user_id"`
	Photo    string `json:"photo,omitempty"`
	Status   string `json:"status"`
	Bio      string `json:"bio,omitempty"`
	BioEn    string `json:"bio_en,omitempty"`
}

// MessageResponse is the HTTP representation of a message.
type MessageResponse struct {
	ID        string `json:"id"`
	SenderID  string `json:"sender_id"`
	Text      string `json:"text"`
	TextEn    string `json:"text_en,omitempty"`
	Timestamp string `json:"timestamp"`
	Read      bool   `json:"read"`
}

// ConversationResponse is the HTTP representation of a conversation.
type ConversationResponse struct {
	ID          string           `json:"id"`
	OtherUser   ChatUserResponse `json:"other_user"`
	LastMessage *MessageResponse `json:"last_message,omitempty"`
	UnreadCount int              `json:"unread_count"`
	UpdatedAt   string           `json:"updated_at"`
}

// GetUser handles GET /v1/chat/users/:id
func (h *ChatHandler) GetUser(c *gin.Context) {
	user, err := h.chats.FindUserByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toChatUserResponse(user))
}

// SearchUser handles GET /v1/chat/users?q=...
func (h *ChatHandler) SearchUser(c *gin.Context) {
	user, err := h.chats.SearchUser(c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toChatUserResponse(user))
}

// GetConversations handles GET /v1/chat/conversations
func (h *ChatHandler) GetConversations(c *gin.Context) {
	conversations := h.chats.Conversations()

	response := make([]ConversationResponse, 0, len(conversations))
	for _, conv := range conversations {
		response = append(response, toConversationResponse(conv))
	}

	respondJSON(c, http.StatusOK, response)
}

// CreateConversation handles POST /v1/chat/conversations
func (h *ChatHandler) CreateConversation(c *gin.Context) {
	var req CreateConversationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	conv, err := h.chats.GetOrCreateConversation(req.OtherUserID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toConversationResponse(conv))
}

// GetMessages handles GET /v1/chat/conversations/:id/messages
func (h *ChatHandler) GetMessages(c *gin.Context) {
	messages, err := h.chats.Messages(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]MessageResponse, 0, len(messages))
	for _, msg := range messages {
		response = append(response, toMessageResponse(msg))
	}

	respondJSON(c, http.StatusOK, response)
}

// SendMessage handles POST /v1/chat/conversations/:id/messages
func (h *ChatHandler) SendMessage(c *gin.Context) {
	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	msg, err := h.chats.SendMessage(c.Param("id"), req.Text, req.TextEn)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, toMessageResponse(msg))
}

// MarkAsRead handles POST /v1/chat/conversations/:id/read
func (h *ChatHandler) MarkAsRead(c *gin.Context) {
	h.chats.MarkAsRead(c.Param("id"))
	c.Status(http.StatusNoContent)
}

// GetUnreadCount handles GET /v1/chat/unread
func (h *ChatHandler) GetUnreadCount(c *gin.Context) {
	respondJSON(c, http.StatusOK, gin.H{"total_unread": h.chats.TotalUnreadCount()})
}

func toChatUserResponse(user *domain.ChatUser) ChatUserResponse {
	return ChatUserResponse{
		ID:       user.ID,
		Name:     user.Name,
		NameEn:   user.NameEn,
		Username: user.Username,
		UserID:   user.UserID,
		Photo:    user.Photo,
		Status:   user.Status,
		Bio:      user.Bio,
		BioEn:    user.BioEn,
	}
}

func toMessageResponse(msg *domain.Message) MessageResponse {
	return MessageResponse{
		ID:        msg.ID,
		SenderID:  msg.SenderID,
		Text:      msg.Text,
		TextEn:    msg.TextEn,
		Timestamp: msg.Timestamp.Format(timeFormat),
		Read:      msg.Read,
	}
}

func toConversationResponse(conv *domain.Conversation) ConversationResponse {
	response := ConversationResponse{
		ID:          conv.ID,
		OtherUser:   toChatUserResponse(conv.OtherUser),
		UnreadCount: conv.UnreadCount,
		UpdatedAt:   conv.UpdatedAt.Format(timeFormat),
	}

	if conv.LastMessage != nil {
		msg := toMessageResponse(conv.LastMessage)
		response.LastMessage = &msg
	}

	return response
}
