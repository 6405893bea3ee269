package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/adreenastore/pos_backend/internal/apperrors"
	"github.com/adreenastore/pos_backend/internal/core/ports"
	"github.com/adreenastore/pos_backend/internal/dto"
	"github.com/adreenastore/pos_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// storeProfileHandler handles HTTP requests for store profiles and the
// session's active selection.
type storeProfileHandler struct {
	profileService ports.StoreProfileService
}

// newStoreProfileHandler creates a new storeProfileHandler.
func newStoreProfileHandler(profileService ports.StoreProfileService) *storeProfileHandler {
	return &storeProfileHandler{profileService: profileService}
}

// registerStoreProfileRoutes sets up the store profile routes.
func registerStoreProfileRoutes(rg *gin.RouterGroup, profileService ports.StoreProfileService) {
	h := newStoreProfileHandler(profileService)

	stores := rg.Group("/stores")
	{
		stores.GET("/", h.listProfiles)
		stores.GET("/active", h.getActiveProfile)
		stores.PUT("/active", h.updateActiveProfile)
		stores.POST("/switch", h.switchActiveProfile)
	}
}

// getActiveProfile returns the profile selected by this session.
func (h *storeProfileHandler) getActiveProfile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	sessionID, ok := middleware.GetSessionIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	profile, err := h.profileService.GetActiveProfile(c.Request.Context(), sessionID)
	if err != nil {
		logger.Error("Failed to get active store profile", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve active store profile"})
		return
	}

	c.JSON(http.StatusOK, dto.ToStoreProfileResponse(profile))
}

// listProfiles returns all known profiles plus the session's active one.
func (h *storeProfileHandler) listProfiles(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	sessionID, ok := middleware.GetSessionIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	profiles, err := h.profileService.ListAvailableProfiles(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list store profiles", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list store profiles"})
		return
	}

	active, err := h.profileService.GetActiveProfile(c.Request.Context(), sessionID)
	if err != nil {
		logger.Error("Failed to resolve active store profile", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list store profiles"})
		return
	}

	resp := dto.ListStoreProfilesResponse{
		Profiles:        make([]dto.StoreProfileResponse, len(profiles)),
		ActiveProfileID: active.ProfileID,
	}
	for i := range profiles {
		resp.Profiles[i] = dto.ToStoreProfileResponse(&profiles[i])
	}
	c.JSON(http.StatusOK, resp)
}

// switchActiveProfile points the session at another store. An unknown id is a
// no-op; the response carries the profile that is active afterwards, so the
// caller gets confirmation either way.
func (h *storeProfileHandler) switchActiveProfile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	sessionID, ok := middleware.GetSessionIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.SwitchStoreProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for switchActiveProfile", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format"})
		return
	}

	if err := h.profileService.SwitchActiveProfile(c.Request.Context(), sessionID, req.ProfileID); err != nil {
		logger.Error("Failed to switch store profile", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to switch store profile"})
		return
	}

	active, err := h.profileService.GetActiveProfile(c.Request.Context(), sessionID)
	if err != nil {
		logger.Error("Failed to resolve active store profile", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to switch store profile"})
		return
	}

	c.JSON(http.StatusOK, dto.ToStoreProfileResponse(active))
}

// updateActiveProfile merges the supplied fields into the session's active
// profile.
func (h *storeProfileHandler) updateActiveProfile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	sessionID, ok := middleware.GetSessionIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.UpdateStoreProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updateActiveProfile", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format"})
		return
	}

	profile, err := h.profileService.UpdateActiveProfile(c.Request.Context(), sessionID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to update store profile", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update store profile"})
		return
	}

	c.JSON(http.StatusOK, dto.ToStoreProfileResponse(profile))
}
