package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	types "github.com/trendforge/trendforge-backend/internal/domain"
	"github.com/trendforge/trendforge-backend/internal/http/response"
	"github.com/trendforge/trendforge-backend/internal/pkg/apperr"
	"github.com/trendforge/trendforge-backend/internal/pkg/ctxutil"
	"github.com/trendforge/trendforge-backend/internal/services"
)

type ContentHandler struct {
	contentService services.ContentService
}

func NewContentHandler(contentService services.ContentService) *ContentHandler {
	return &ContentHandler{contentService: contentService}
}

// GET /api/content?status=active|archived&page=1
func (ch *ContentHandler) List(c *gin.Context) {
	rd := ctxutil.GetRequestData(c.Request.Context())

	status := c.DefaultQuery("status", types.ContentStatusActive)
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	contents, err := ch.contentService.List(c.Request.Context(), rd.UserID, status, page)
	if err != nil {
		if errors.Is(err, apperr.ErrInvalidArgument) {
			response.RespondError(c, http.StatusUnprocessableEntity, "invalid_status", err)
			return
		}
		response.RespondError(c, http.StatusInternalServerError, "contents_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"contents": contents, "page": page})
}

// GET /api/content/:id
func (ch *ContentHandler) Get(c *gin.Context) {
	rd := ctxutil.GetRequestData(c.Request.Context())

	contentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusUnprocessableEntity, "invalid_id", err)
		return
	}

	content, err := ch.contentService.Get(c.Request.Context(), rd.UserID, contentID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			response.RespondError(c, http.StatusNotFound, "content_not_found", err)
			return
		}
		response.RespondError(c, http.StatusInternalServerError, "content_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"content": content})
}

// POST /api/content/generate
// body: { "trend_id": "...", "content_type": "video_script|blog_post|social_media", "title": "...", "description": "..." }
func (ch *ContentHandler) Generate(c *gin.Context) {
	rd := ctxutil.GetRequestData(c.Request.Context())

	var req struct {
		TrendID     string `json:"trend_id" binding:"required"`
		ContentType string `json:"content_type" binding:"required"`
		Title       string `json:"title"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusUnprocessableEntity, "invalid_request", err)
		return
	}

	trendID, err := uuid.Parse(req.TrendID)
	if err != nil {
		response.RespondError(c, http.StatusUnprocessableEntity, "invalid_trend_id", err)
		return
	}

	content, err := ch.contentService.Generate(c.Request.Context(), rd.UserID, services.GenerateInput{
		TrendID:     trendID,
		Title:       req.Title,
		Description: req.Description,
		ContentType: req.ContentType,
	})
	if err != nil {
		switch {
		case errors.Is(err, apperr.ErrInvalidArgument):
			response.RespondError(c, http.StatusUnprocessableEntity, "invalid_content_type", err)
		case errors.Is(err, apperr.ErrQuotaExceeded):
			response.RespondError(c, http.StatusForbidden, "quota_exceeded", err)
		case errors.Is(err, apperr.ErrNotFound):
			response.RespondError(c, http.StatusNotFound, "trend_not_found", err)
		default:
			response.RespondError(c, http.StatusInternalServerError, "generate_failed", err)
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Content generated successfully",
		"content": content,
	})
}

// PUT /api/content/:id
func (ch *ContentHandler) Update(c *gin.Context) {
	rd := ctxutil.GetRequestData(c.Request.Context())

	contentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusUnprocessableEntity, "invalid_id", err)
		return
	}

	var req struct {
		Title           *string        `json:"title"`
		Description     *string        `json:"description"`
		ScriptStructure map[string]any `json:"script_structure"`
		SEOData         map[string]any `json:"seo_data"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusUnprocessableEntity, "invalid_request", err)
		return
	}

	content, err := ch.contentService.Update(c.Request.Context(), rd.UserID, contentID, services.UpdateInput{
		Title:           req.Title,
		Description:     req.Description,
		ScriptStructure: req.ScriptStructure,
		SEOData:         req.SEOData,
	})
	if err != nil {
		switch {
		case errors.Is(err, apperr.ErrNotFound):
			response.RespondError(c, http.StatusNotFound, "content_not_found", err)
		case errors.Is(err, apperr.ErrArchivedLocked):
			response.RespondError(c, http.StatusForbidden, "content_archived", err)
		default:
			response.RespondError(c, http.StatusInternalServerError, "update_failed", err)
		}
		return
	}

	response.RespondOK(c, gin.H{
		"message": "Content updated successfully",
		"content": content,
	})
}

// DELETE /api/content/:id
func (ch *ContentHandler) Delete(c *gin.Context) {
	rd := ctxutil.GetRequestData(c.Request.Context())

	contentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusUnprocessableEntity, "invalid_id", err)
		return
	}

	archived, err := ch.contentService.Delete(c.Request.Context(), rd.UserID, contentID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			response.RespondError(c, http.StatusNotFound, "content_not_found", err)
			return
		}
		response.RespondError(c, http.StatusInternalServerError, "delete_failed", err)
		return
	}

	if archived {
		response.RespondOK(c, gin.H{"message": "Content archived. Upgrade to premium to restore."})
		return
	}
	response.RespondOK(c, gin.H{"message": "Content deleted successfully"})
}
