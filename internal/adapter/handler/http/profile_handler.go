package http

import (
	"net/http"
	"time"

	"github.com/sm8ta/webike_theft_registry/internal/core/domain"
	"github.com/sm8ta/webike_theft_registry/internal/core/ports"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileService ports.ProfileService
	logger         ports.LoggerPort
	metrics        ports.MetricsPort
}

type UpdateProfileRequest struct {
	Username       *string `json:"username,omitempty" example:"dana"`
	Email          *string `json:"email,omitempty" example:"dana@example.com"`
	Phone          *string `json:"phone,omitempty" example:"+972500000000"`
	FirstName      *string `json:"firstName,omitempty" example:"Dana"`
	LastName       *string `json:"lastName,omitempty" example:"Levi"`
	ProfilePicture *string `json:"profilePicture,omitempty" example:"https://example.com/me.png"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword,omitempty" example:"old-secret"`
	NewPassword     string `json:"newPassword" binding:"required" example:"new-secret"`
}

func NewProfileHandler(profileService ports.ProfileService, logger ports.LoggerPort, metrics ports.MetricsPort) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		logger:         logger,
		metrics:        metrics,
	}
}

// @Summary Get my profile
// @Description Profile with the number of bikes and active theft reports
// @Tags profile
// @Security BearerAuth
// @Produce json
// @Success 200 {object} domain.Profile "Profile"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Router /profile [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	user, ok := currentUser(c, h.logger)
	if !ok {
		return
	}

	profile, err := h.profileService.GetProfile(c.Request.Context(), user)
	if err != nil {
		handleServiceError(c, h.logger, err, "get profile")
		return
	}

	c.JSON(http.StatusOK, profile)
}

// @Summary Edit my profile
// @Tags profile
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body UpdateProfileRequest true "Fields to change"
// @Success 200 {object} domain.User "Profile updated"
// @Failure 400 {object} errorResponse "Invalid request"
// @Failure 409 {object} errorResponse "Username taken"
// @Router /profile [patch]
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	user, ok := currentUser(c, h.logger)
	if !ok {
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, h.logger, err)
		return
	}

	updated, err := h.profileService.UpdateProfile(c.Request.Context(), user, domain.ProfileUpdate{
		Username:       req.Username,
		Email:          req.Email,
		Phone:          req.Phone,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		ProfilePicture: req.ProfilePicture,
	})
	if err != nil {
		handleServiceError(c, h.logger, err, "update profile")
		return
	}

	c.JSON(http.StatusOK, updated)
}

// @Summary Change my password
// @Tags profile
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body ChangePasswordRequest true "Passwords"
// @Success 200 {object} successResponse "Password changed"
// @Failure 400 {object} errorResponse "Invalid request"
// @Failure 403 {object} errorResponse "Current password is incorrect"
// @Router /profile/password [post]
func (h *ProfileHandler) ChangePassword(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	user, ok := currentUser(c, h.logger)
	if !ok {
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, h.logger, err)
		return
	}

	if err := h.profileService.ChangePassword(c.Request.Context(), user, req.CurrentPassword, req.NewPassword); err != nil {
		handleServiceError(c, h.logger, err, "change password")
		return
	}

	c.JSON(http.StatusOK, successResponse{Message: "Password changed"})
}
