package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vibes-run/leadchat/internal/domain"
	"github.com/vibes-run/leadchat/internal/interview"
	"github.com/vibes-run/leadchat/internal/service"
	"go.uber.org/zap"
)

// Handler handles the public chat API
type Handler struct {
	chatService     *service.ChatService
	waitlistService *service.WaitlistService
	logger          *zap.Logger
}

// NewHandler creates a new API handler
func NewHandler(chatService *service.ChatService, waitlistService *service.WaitlistService, logger *zap.Logger) *Handler {
	return &Handler{
		chatService:     chatService,
		waitlistService: waitlistService,
		logger:          logger,
	}
}

// Health reports service liveness
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// Questions returns the interview question configuration for the widget
func (h *Handler) Questions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"questions": interview.Questions})
}

// Chat handles one chat turn or structured answer
func (h *Handler) Chat(c *gin.Context) {
	var req domain.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	resp, err := h.chatService.Chat(c.Request.Context(), c.ClientIP(), &req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRequest) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Message is required"})
			return
		}
		// Internal details never reach the client.
		h.logger.Error("chat request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Internal server error",
			"message": "Something went wrong. Please try again.",
		})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Waitlist handles a waitlist signup
func (h *Handler) Waitlist(c *gin.Context) {
	var entry domain.WaitlistEntry
	if err := c.ShouldBindJSON(&entry); err != nil {
		c.JSON(http.StatusBadRequest, domain.WaitlistResult{Success: false, Error: "Invalid request body"})
		return
	}

	if entry.Referrer == "" {
		entry.Referrer = c.GetHeader("Referer")
	}
	if entry.UserAgent == "" {
		entry.UserAgent = c.GetHeader("User-Agent")
	}

	result := h.waitlistService.Add(&entry)
	if !result.Success {
		c.JSON(http.StatusBadRequest, result)
		return
	}

	c.JSON(http.StatusOK, result)
}
