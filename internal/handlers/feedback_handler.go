package handlers

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/xpyvent/xpyvent-api/internal/domain/feedback"
	"github.com/xpyvent/xpyvent-api/internal/logger"
	"github.com/xpyvent/xpyvent-api/internal/response"
	"github.com/xpyvent/xpyvent-api/internal/storage/postgres"
)

type FeedbackHandler struct {
	feedbackRepo postgres.FeedbackRepository
	log          *log.Logger
}

func NewFeedbackHandler(feedbackRepo postgres.FeedbackRepository) *FeedbackHandler {
	return &FeedbackHandler{
		feedbackRepo: feedbackRepo,
		log:          logger.Handler("feedback"),
	}
}

type SubmitFeedbackRequest struct {
	UserID  string `json:"userId"`
	Content string `json:"content" binding:"required"`
}

type SubmitFeedbackResponse struct {
	Success    bool   `json:"success"`
	FeedbackID string `json:"feedbackId"`
	Message    string `json:"message"`
}

// SubmitFeedback handles POST /feedback/submit.
// userId is optional; anonymous feedback is permitted.
func (h *FeedbackHandler) SubmitFeedback(c *gin.Context) {
	var req SubmitFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	var userID *uuid.UUID
	if req.UserID != "" {
		uid, err := uuid.Parse(req.UserID)
		if err != nil {
			c.JSON(http.StatusOK, SubmitFeedbackResponse{
				Success:    false,
				FeedbackID: "",
				Message:    "Failed to submit feedback: invalid user id",
			})
			return
		}
		userID = &uid
	}

	entry := feedback.NewFeedback(userID, req.Content)
	if err := h.feedbackRepo.Create(entry); err != nil {
		h.log.Error("Failed to create feedback", "error", err)
		c.JSON(http.StatusOK, SubmitFeedbackResponse{
			Success:    false,
			FeedbackID: "",
			Message:    "Failed to submit feedback: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, SubmitFeedbackResponse{
		Success:    true,
		FeedbackID: entry.ID.String(),
		Message:    "Your feedback has been submitted successfully.",
	})
}
