package handlers

import (
	"net/http"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/xpyvent/xpyvent-api/internal/domain/media"
	"github.com/xpyvent/xpyvent-api/internal/logger"
	"github.com/xpyvent/xpyvent-api/internal/response"
	"github.com/xpyvent/xpyvent-api/internal/storage/postgres"
	"github.com/xpyvent/xpyvent-api/internal/validation"
)

type MediaHandler struct {
	mediaRepo postgres.MediaRepository
	baseURL   string
	log       *log.Logger
}

func NewMediaHandler(mediaRepo postgres.MediaRepository, baseURL string) *MediaHandler {
	return &MediaHandler{
		mediaRepo: mediaRepo,
		baseURL:   baseURL,
		log:       logger.Handler("media"),
	}
}

type UploadMediaResponse struct {
	MediaID string `json:"mediaId"`
	Message string `json:"message"`
}

// UploadMedia handles POST /media/upload.
// No bytes are stored: the URL is synthesized from the filename under the
// configured media base URL.
func (h *MediaHandler) UploadMedia(c *gin.Context) {
	eventID := c.PostForm("eventId")
	if err := validation.ValidateRequired(eventID, "eventId"); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := validation.ValidateUUID(eventID, "eventId"); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	eid, _ := uuid.Parse(eventID)

	mediaType, valid := media.TypeFromString(c.PostForm("mediaType"))
	if !valid {
		response.BadRequest(c, "mediaType must be IMAGE or VIDEO")
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "No file provided: "+err.Error())
		return
	}

	url := h.baseURL + "/" + filepath.Base(file.Filename)

	newMedia := media.NewMedia(eid, mediaType, url)
	if err := h.mediaRepo.Create(newMedia); err != nil {
		h.log.Error("Failed to create media", "error", err, "event_id", eventID)
		response.InternalError(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, UploadMediaResponse{
		MediaID: newMedia.ID.String(),
		Message: "Media uploaded successfully.",
	})
}

type DeleteMediaResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// DeleteMedia handles DELETE /media/delete/{mediaId}.
// Store failures surface as a structured failure, not a fault.
func (h *MediaHandler) DeleteMedia(c *gin.Context) {
	mediaID := c.Param("mediaId")
	if err := validation.ValidateUUID(mediaID, "mediaId"); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	deleted, err := h.mediaRepo.Delete(mediaID)
	if err != nil {
		h.log.Error("Failed to delete media", "error", err, "media_id", mediaID)
		c.JSON(http.StatusOK, DeleteMediaResponse{
			Success: false,
			Message: "An error occurred: " + err.Error(),
		})
		return
	}

	if deleted {
		c.JSON(http.StatusOK, DeleteMediaResponse{
			Success: true,
			Message: "Media deleted successfully.",
		})
		return
	}

	c.JSON(http.StatusOK, DeleteMediaResponse{
		Success: false,
		Message: "Media not found.",
	})
}
