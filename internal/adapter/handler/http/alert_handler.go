package http

import (
	"net/http"
	"time"

	"github.com/sm8ta/webike_theft_registry/internal/core/domain"
	"github.com/sm8ta/webike_theft_registry/internal/core/ports"

	"github.com/gin-gonic/gin"
)

type AlertHandler struct {
	alertService ports.AlertService
	logger       ports.LoggerPort
	metrics      ports.MetricsPort
}

type AlertsResponse struct {
	Alerts      []*domain.Alert `json:"alerts"`
	Count       int             `json:"count"`
	UnreadCount int             `json:"unreadCount"`
}

func NewAlertHandler(alertService ports.AlertService, logger ports.LoggerPort, metrics ports.MetricsPort) *AlertHandler {
	return &AlertHandler{
		alertService: alertService,
		logger:       logger,
		metrics:      metrics,
	}
}

// @Summary List my alerts
// @Tags alerts
// @Security BearerAuth
// @Produce json
// @Success 200 {object} AlertsResponse "Alerts, newest first"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Router /alerts [get]
func (h *AlertHandler) ListAlerts(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	user, ok := currentUser(c, h.logger)
	if !ok {
		return
	}

	alerts, unread, err := h.alertService.ListForUser(c.Request.Context(), user)
	if err != nil {
		handleServiceError(c, h.logger, err, "list alerts")
		return
	}

	c.JSON(http.StatusOK, AlertsResponse{Alerts: alerts, Count: len(alerts), UnreadCount: unread})
}

// @Summary Mark an alert read
// @Description Idempotent
// @Tags alerts
// @Security BearerAuth
// @Produce json
// @Param id path string true "Alert ID"
// @Success 200 {object} successResponse "Alert marked read"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Failure 404 {object} errorResponse "Alert not found"
// @Router /alerts/{id}/read [patch]
func (h *AlertHandler) MarkRead(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	user, ok := currentUser(c, h.logger)
	if !ok {
		return
	}
	alertID, ok := pathUUID(c, "id", "Invalid alert ID")
	if !ok {
		return
	}

	if err := h.alertService.MarkRead(c.Request.Context(), user, alertID); err != nil {
		handleServiceError(c, h.logger, err, "mark alert read")
		return
	}

	c.JSON(http.StatusOK, successResponse{Message: "Alert marked as read"})
}
