package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/trendforge/trendforge-backend/internal/http/response"
	"github.com/trendforge/trendforge-backend/internal/pkg/apperr"
	"github.com/trendforge/trendforge-backend/internal/pkg/ctxutil"
	"github.com/trendforge/trendforge-backend/internal/services"
)

type UserHandler struct {
	userService services.UserService
}

func NewUserHandler(userService services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// GET /api/user
func (uh *UserHandler) GetMe(c *gin.Context) {
	rd := ctxutil.GetRequestData(c.Request.Context())

	user, profile, err := uh.userService.GetMe(c.Request.Context(), rd.UserID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			response.RespondError(c, http.StatusNotFound, "user_not_found", err)
			return
		}
		response.RespondError(c, http.StatusInternalServerError, "user_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"user": user, "profile": profile})
}

// PUT /api/user
func (uh *UserHandler) UpdateProfile(c *gin.Context) {
	rd := ctxutil.GetRequestData(c.Request.Context())

	var req struct {
		Name               *string        `json:"name"`
		Avatar             *string        `json:"avatar"`
		Bio                *string        `json:"bio"`
		PreferredNiches    []string       `json:"preferred_niches"`
		ContentPreferences map[string]any `json:"content_preferences"`
		Timezone           *string        `json:"timezone"`
		Language           *string        `json:"language"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusUnprocessableEntity, "invalid_request", err)
		return
	}

	user, profile, err := uh.userService.UpdateProfile(c.Request.Context(), rd.UserID, services.ProfileInput{
		Name:               req.Name,
		Avatar:             req.Avatar,
		Bio:                req.Bio,
		PreferredNiches:    req.PreferredNiches,
		ContentPreferences: req.ContentPreferences,
		Timezone:           req.Timezone,
		Language:           req.Language,
	})
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			response.RespondError(c, http.StatusNotFound, "user_not_found", err)
			return
		}
		response.RespondError(c, http.StatusInternalServerError, "profile_update_failed", err)
		return
	}

	response.RespondOK(c, gin.H{
		"message": "Profile updated successfully",
		"user":    user,
		"profile": profile,
	})
}
