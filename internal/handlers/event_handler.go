package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/xpyvent/xpyvent-api/internal/domain/event"
	"github.com/xpyvent/xpyvent-api/internal/domain/media"
	"github.com/xpyvent/xpyvent-api/internal/logger"
	"github.com/xpyvent/xpyvent-api/internal/response"
	"github.com/xpyvent/xpyvent-api/internal/storage/postgres"
	"github.com/xpyvent/xpyvent-api/internal/validation"
)

// placeholderCreatorID stands in for the authenticated user until token
// verification exists
const placeholderCreatorID = "placeholder_user_id"

type EventHandler struct {
	eventRepo postgres.EventRepository
	mediaRepo postgres.MediaRepository
	log       *log.Logger
}

func NewEventHandler(eventRepo postgres.EventRepository, mediaRepo postgres.MediaRepository) *EventHandler {
	return &EventHandler{
		eventRepo: eventRepo,
		mediaRepo: mediaRepo,
		log:       logger.Handler("event"),
	}
}

type CreateEventRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description" binding:"required"`
	Date        time.Time `json:"date" binding:"required"`
	Location    string    `json:"location" binding:"required"`
	Media       []string  `json:"media"`
}

type CreateEventResponse struct {
	Success bool   `json:"success"`
	EventID string `json:"event_id,omitempty"`
	Message string `json:"message,omitempty"`
}

// CreateEvent handles POST /event/create.
// Every supplied media URL is stored as type IMAGE; only the separate
// upload endpoint accepts a real media type.
func (h *EventHandler) CreateEvent(c *gin.Context) {
	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	newEvent := event.NewEvent(req.Title, req.Description, req.Date, req.Location, placeholderCreatorID)

	items := make([]*media.Media, 0, len(req.Media))
	for _, url := range req.Media {
		items = append(items, media.NewMedia(newEvent.ID, media.TypeImage, url))
	}

	if err := h.eventRepo.CreateWithMedia(newEvent, items); err != nil {
		h.log.Error("Failed to create event", "error", err, "title", req.Title)
		c.JSON(http.StatusOK, CreateEventResponse{
			Success: false,
			Message: "Failed to create event due to an internal error.",
		})
		return
	}

	c.JSON(http.StatusOK, CreateEventResponse{
		Success: true,
		EventID: newEvent.ID.String(),
		Message: "Event created successfully.",
	})
}

type MediaDetails struct {
	Type string `json:"type"`
	URL  string `json:"url"`
}

type EventDetails struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Date        time.Time      `json:"date"`
	Location    string         `json:"location"`
	Media       []MediaDetails `json:"media"`
}

type ListEventsResponse struct {
	Events []EventDetails `json:"events"`
}

// ListEvents handles GET /event/list
func (h *EventHandler) ListEvents(c *gin.Context) {
	events, err := h.eventRepo.GetAll(true)
	if err != nil {
		h.log.Error("Failed to list events", "error", err)
		response.InternalError(c, err.Error())
		return
	}

	details := make([]EventDetails, 0, len(events))
	for _, e := range events {
		details = append(details, eventDetails(e))
	}

	c.JSON(http.StatusOK, ListEventsResponse{Events: details})
}

// GetEventDetails handles GET /event/details/{eventId}.
// Absence propagates as a fault.
func (h *EventHandler) GetEventDetails(c *gin.Context) {
	eventID := c.Param("eventId")
	if err := validation.ValidateUUID(eventID, "eventId"); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	e, err := h.eventRepo.GetByID(eventID, true)
	if err != nil {
		if errors.Is(err, postgres.ErrNotFound) {
			response.InternalError(c, "Event with id "+eventID+" not found.")
			return
		}
		h.log.Error("Failed to get event", "error", err, "event_id", eventID)
		response.InternalError(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, eventDetails(e))
}

type MediaContent struct {
	MediaID string     `json:"mediaId"`
	Type    media.Type `json:"type"`
	URL     string     `json:"url" binding:"required"`
}

type UpdateEventRequest struct {
	Title         string         `json:"title" binding:"required"`
	Description   string         `json:"description" binding:"required"`
	Date          time.Time      `json:"date" binding:"required"`
	Location      string         `json:"location" binding:"required"`
	MediaContents []MediaContent `json:"mediaContents"`
}

type UpdateEventResponse struct {
	Success       bool     `json:"success"`
	EventID       string   `json:"eventId"`
	UpdatedFields []string `json:"updatedFields"`
}

// UpdateEvent handles PUT /event/update/{eventId}.
// The four scalar fields are always overwritten and always reported as
// updated; a non-empty media list replaces the whole media set, an empty
// one leaves it untouched.
func (h *EventHandler) UpdateEvent(c *gin.Context) {
	eventID := c.Param("eventId")
	if err := validation.ValidateUUID(eventID, "eventId"); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var req UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	existing, err := h.eventRepo.GetByID(eventID, false)
	if err != nil {
		if errors.Is(err, postgres.ErrNotFound) {
			c.JSON(http.StatusOK, UpdateEventResponse{
				Success:       false,
				EventID:       eventID,
				UpdatedFields: []string{},
			})
			return
		}
		h.log.Error("Failed to get event", "error", err, "event_id", eventID)
		response.InternalError(c, err.Error())
		return
	}

	if err := h.eventRepo.UpdateCore(eventID, req.Title, req.Description, req.Date, req.Location); err != nil {
		h.log.Error("Failed to update event", "error", err, "event_id", eventID)
		response.InternalError(c, err.Error())
		return
	}
	updatedFields := []string{"title", "description", "date", "location"}

	if len(req.MediaContents) > 0 {
		items := make([]*media.Media, 0, len(req.MediaContents))
		for _, mc := range req.MediaContents {
			items = append(items, media.NewMedia(existing.ID, mc.Type, mc.URL))
		}

		if err := h.mediaRepo.ReplaceForEvent(existing.ID, items); err != nil {
			h.log.Error("Failed to replace event media", "error", err, "event_id", eventID)
			response.InternalError(c, err.Error())
			return
		}
		updatedFields = append(updatedFields, "mediaContents")
	}

	c.JSON(http.StatusOK, UpdateEventResponse{
		Success:       true,
		EventID:       eventID,
		UpdatedFields: updatedFields,
	})
}

type DeleteEventResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// DeleteEvent handles DELETE /event/delete/{eventId}
func (h *EventHandler) DeleteEvent(c *gin.Context) {
	eventID := c.Param("eventId")
	if err := validation.ValidateUUID(eventID, "eventId"); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	deleted, err := h.eventRepo.Delete(eventID)
	if err != nil {
		h.log.Error("Failed to delete event", "error", err, "event_id", eventID)
		response.InternalError(c, err.Error())
		return
	}

	if deleted {
		c.JSON(http.StatusOK, DeleteEventResponse{
			Success: true,
			Message: "Event successfully deleted.",
		})
		return
	}

	c.JSON(http.StatusOK, DeleteEventResponse{
		Success: false,
		Message: "Failed to delete the event. It may not exist.",
	})
}

func eventDetails(e *event.Event) EventDetails {
	items := make([]MediaDetails, 0, len(e.Media))
	for _, m := range e.Media {
		items = append(items, MediaDetails{Type: m.Type.String(), URL: m.URL})
	}

	return EventDetails{
		ID:          e.ID.String(),
		Title:       e.Title,
		Description: e.Description,
		Date:        e.Date,
		Location:    e.Location,
		Media:       items,
	}
}
