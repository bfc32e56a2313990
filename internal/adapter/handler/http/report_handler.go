package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/sm8ta/webike_theft_registry/internal/core/domain"
	"github.com/sm8ta/webike_theft_registry/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReportHandler struct {
	reportService ports.ReportService
	logger        ports.LoggerPort
	metrics       ports.MetricsPort
}

// ReportRequest carries a theft report. theftDate accepts RFC 3339 or a plain
// YYYY-MM-DD date; coordinates are numeric strings.
type ReportRequest struct {
	BikeID            string `json:"bikeId" binding:"required" example:"123e4567-e89b-12d3-a456-426614174000"`
	TheftDate         string `json:"theftDate" binding:"required" example:"2024-01-01"`
	TheftLocation     string `json:"theftLocation" binding:"required" example:"Tel Aviv"`
	TheftDetails      string `json:"theftDetails,omitempty" example:"Taken from the rack outside the station"`
	Latitude          string `json:"latitude,omitempty" example:"32.0853"`
	Longitude         string `json:"longitude,omitempty" example:"34.7818"`
	PoliceReported    bool   `json:"policeReported" example:"true"`
	PoliceStation     string `json:"policeStation,omitempty" example:"Central"`
	PoliceFileNumber  string `json:"policeFileNumber,omitempty" example:"TA-2024-0001"`
	UseProfileContact *bool  `json:"useProfileContact,omitempty" example:"true"`
	ContactName       string `json:"contactName,omitempty" example:"Dana"`
	ContactPhone      string `json:"contactPhone,omitempty" example:"+972500000000"`
	ContactEmail      string `json:"contactEmail,omitempty" example:"dana@example.com"`
	Visibility        string `json:"visibility,omitempty" example:"public"`
}

type ReportsResponse struct {
	Reports []*domain.TheftReport `json:"reports"`
	Count   int                   `json:"count"`
}

func NewReportHandler(reportService ports.ReportService, logger ports.LoggerPort, metrics ports.MetricsPort) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
		logger:        logger,
		metrics:       metrics,
	}
}

// parseTheftDate accepts the date formats clients send for theftDate.
func parseTheftDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse(time.DateOnly, raw)
}

// @Summary File a theft report
// @Description Reports an owned bike stolen. The bike flips to stolen in the same transaction. A bike with an active report is rejected with 409.
// @Tags reports
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body ReportRequest true "Theft report"
// @Success 201 {object} domain.TheftReport "Report filed"
// @Failure 400 {object} errorResponse "Invalid request"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Failure 404 {object} errorResponse "Bike not found"
// @Failure 409 {object} errorResponse "Bike already has an active report"
// @Router /reports [post]
func (h *ReportHandler) FileReport(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	user, ok := currentUser(c, h.logger)
	if !ok {
		return
	}

	var req ReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, h.logger, err)
		return
	}

	verr := &domain.ValidationError{}
	bikeID, err := uuid.Parse(req.BikeID)
	if err != nil {
		verr.Add("bikeId", "must be a valid id")
	}
	theftDate, err := parseTheftDate(req.TheftDate)
	if err != nil {
		verr.Add("theftDate", "must be a date (YYYY-MM-DD or RFC 3339)")
	}
	if err := verr.OrNil(); err != nil {
		handleServiceError(c, h.logger, err, "file report")
		return
	}

	useProfile := true
	if req.UseProfileContact != nil {
		useProfile = *req.UseProfileContact
	}

	draft := domain.ReportDraft{
		BikeID:            bikeID,
		TheftDate:         theftDate,
		TheftLocation:     strings.TrimSpace(req.TheftLocation),
		TheftDetails:      req.TheftDetails,
		Latitude:          req.Latitude,
		Longitude:         req.Longitude,
		PoliceReported:    req.PoliceReported,
		PoliceStation:     req.PoliceStation,
		PoliceFileNumber:  req.PoliceFileNumber,
		UseProfileContact: useProfile,
		Contact: domain.Contact{
			Name:  strings.TrimSpace(req.ContactName),
			Phone: strings.TrimSpace(req.ContactPhone),
			Email: strings.TrimSpace(req.ContactEmail),
		},
		Visibility: domain.Visibility(strings.ToLower(req.Visibility)),
	}

	report, err := h.reportService.FileReport(c.Request.Context(), user, draft)
	if err != nil {
		handleServiceError(c, h.logger, err, "file report")
		return
	}

	h.metrics.RecordEvent(ports.EventReportFiled)
	c.JSON(http.StatusCreated, report)
}

// @Summary List my theft reports
// @Description Reports filed by the caller with their bikes, newest first
// @Tags reports
// @Security BearerAuth
// @Produce json
// @Success 200 {object} ReportsResponse "Reports"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Router /reports [get]
func (h *ReportHandler) ListReports(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	user, ok := currentUser(c, h.logger)
	if !ok {
		return
	}

	reports, err := h.reportService.ListOwnReports(c.Request.Context(), user)
	if err != nil {
		handleServiceError(c, h.logger, err, "list reports")
		return
	}

	c.JSON(http.StatusOK, ReportsResponse{Reports: reports, Count: len(reports)})
}

// @Summary Get a theft report
// @Tags reports
// @Security BearerAuth
// @Produce json
// @Param id path string true "Report ID"
// @Success 200 {object} domain.TheftReport "Report"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Failure 404 {object} errorResponse "Report not found"
// @Router /reports/{id} [get]
func (h *ReportHandler) GetReport(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	user, ok := currentUser(c, h.logger)
	if !ok {
		return
	}
	reportID, ok := pathUUID(c, "id", "Invalid report ID")
	if !ok {
		return
	}

	report, err := h.reportService.GetReport(c.Request.Context(), user, reportID)
	if err != nil {
		handleServiceError(c, h.logger, err, "get report")
		return
	}

	c.JSON(http.StatusOK, report)
}

// @Summary Resolve a theft report
// @Description Closes an active report and marks its bike found
// @Tags reports
// @Security BearerAuth
// @Produce json
// @Param id path string true "Report ID"
// @Success 200 {object} domain.TheftReport "Report resolved"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Failure 404 {object} errorResponse "Report not found"
// @Failure 409 {object} errorResponse "Report is not active"
// @Router /reports/{id}/resolve [patch]
func (h *ReportHandler) ResolveReport(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	user, ok := currentUser(c, h.logger)
	if !ok {
		return
	}
	reportID, ok := pathUUID(c, "id", "Invalid report ID")
	if !ok {
		return
	}

	report, err := h.reportService.ResolveReport(c.Request.Context(), user, reportID)
	if err != nil {
		handleServiceError(c, h.logger, err, "resolve report")
		return
	}

	h.metrics.RecordEvent(ports.EventReportResolved)
	c.JSON(http.StatusOK, report)
}
