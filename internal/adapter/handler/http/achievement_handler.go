package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/sm8ta/webike_theft_registry/internal/core/domain"
	"github.com/sm8ta/webike_theft_registry/internal/core/ports"

	"github.com/gin-gonic/gin"
)

type AchievementHandler struct {
	achievementService ports.AchievementService
	logger             ports.LoggerPort
	metrics            ports.MetricsPort
}

type CheckAchievementsRequest struct {
	Action string                 `json:"action" binding:"required" example:"bike_registration"`
	Data   map[string]interface{} `json:"data,omitempty"`
}

type BadgeRequest struct {
	Name         string              `json:"name" binding:"required" example:"Night Rider"`
	Description  string              `json:"description" binding:"required" example:"Registered a bike with lights"`
	ImageURL     string              `json:"imageUrl" binding:"required" example:"/badges/night_rider.svg"`
	Category     string              `json:"category" binding:"required" example:"safety"`
	Level        int                 `json:"level" binding:"required" example:"1"`
	Requirements domain.Requirements `json:"requirements"`
}

type BadgesResponse struct {
	Badges []*domain.Badge `json:"badges"`
	Count  int             `json:"count"`
}

type AchievementsResponse struct {
	Achievements []*domain.UserAchievement `json:"achievements"`
	Count        int                       `json:"count"`
}

func NewAchievementHandler(achievementService ports.AchievementService, logger ports.LoggerPort, metrics ports.MetricsPort) *AchievementHandler {
	return &AchievementHandler{
		achievementService: achievementService,
		logger:             logger,
		metrics:            metrics,
	}
}

// @Summary List badges
// @Description The badge catalog ordered by level, category and name
// @Tags achievements
// @Produce json
// @Success 200 {object} BadgesResponse "Badges"
// @Router /badges [get]
func (h *AchievementHandler) ListBadges(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	badges, err := h.achievementService.ListBadges(c.Request.Context())
	if err != nil {
		handleServiceError(c, h.logger, err, "list badges")
		return
	}

	c.JSON(http.StatusOK, BadgesResponse{Badges: badges, Count: len(badges)})
}

// @Summary Get a badge
// @Tags achievements
// @Produce json
// @Param id path string true "Badge ID"
// @Success 200 {object} domain.Badge "Badge"
// @Failure 404 {object} errorResponse "Badge not found"
// @Router /badges/{id} [get]
func (h *AchievementHandler) GetBadge(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	badgeID, ok := pathUUID(c, "id", "Invalid badge ID")
	if !ok {
		return
	}

	badge, err := h.achievementService.GetBadge(c.Request.Context(), badgeID)
	if err != nil {
		handleServiceError(c, h.logger, err, "get badge")
		return
	}

	c.JSON(http.StatusOK, badge)
}

// @Summary Create a badge
// @Description Admin only
// @Tags achievements
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body BadgeRequest true "Badge"
// @Success 201 {object} domain.Badge "Badge created"
// @Failure 400 {object} errorResponse "Invalid request"
// @Failure 403 {object} errorResponse "Forbidden"
// @Router /badges [post]
func (h *AchievementHandler) CreateBadge(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	user, ok := currentUser(c, h.logger)
	if !ok {
		return
	}

	var req BadgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, h.logger, err)
		return
	}

	badge := &domain.Badge{
		Name:         strings.TrimSpace(req.Name),
		Description:  strings.TrimSpace(req.Description),
		ImageURL:     req.ImageURL,
		Category:     domain.BadgeCategory(strings.ToLower(req.Category)),
		Level:        req.Level,
		Requirements: req.Requirements,
	}

	created, err := h.achievementService.CreateBadge(c.Request.Context(), user, badge)
	if err != nil {
		handleServiceError(c, h.logger, err, "create badge")
		return
	}

	c.JSON(http.StatusCreated, created)
}

// @Summary List my achievements
// @Tags achievements
// @Security BearerAuth
// @Produce json
// @Success 200 {object} AchievementsResponse "Achievements, newest first"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Router /achievements [get]
func (h *AchievementHandler) ListAchievements(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	user, ok := currentUser(c, h.logger)
	if !ok {
		return
	}

	achievements, err := h.achievementService.ListAchievements(c.Request.Context(), user)
	if err != nil {
		handleServiceError(c, h.logger, err, "list achievements")
		return
	}

	c.JSON(http.StatusOK, AchievementsResponse{Achievements: achievements, Count: len(achievements)})
}

// @Summary Check achievements for an action
// @Description Awards every badge the action unlocks that the caller does not hold yet. Repeating a check awards nothing new.
// @Tags achievements
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body CheckAchievementsRequest true "Action"
// @Success 200 {object} domain.AwardResult "Check result"
// @Failure 400 {object} errorResponse "Invalid request"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Router /achievements/check [post]
func (h *AchievementHandler) CheckAchievements(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	user, ok := currentUser(c, h.logger)
	if !ok {
		return
	}

	var req CheckAchievementsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, h.logger, err)
		return
	}

	result, err := h.achievementService.CheckAndAward(c.Request.Context(), user, strings.TrimSpace(req.Action), req.Data)
	if err != nil {
		handleServiceError(c, h.logger, err, "check achievements")
		return
	}

	for range result.NewAchievements {
		h.metrics.RecordEvent(ports.EventBadgeAwarded)
	}
	c.JSON(http.StatusOK, result)
}
