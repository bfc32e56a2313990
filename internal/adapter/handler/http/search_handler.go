package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/sm8ta/webike_theft_registry/internal/core/domain"
	"github.com/sm8ta/webike_theft_registry/internal/core/ports"

	"github.com/gin-gonic/gin"
)

type SearchHandler struct {
	searchService ports.SearchService
	logger        ports.LoggerPort
	metrics       ports.MetricsPort
}

type SearchQuery struct {
	Query     string `form:"searchQuery"`
	Type      string `form:"searchType"`
	Brand     string `form:"searchBrand"`
	Color     string `form:"searchColor"`
	City      string `form:"searchLocationCity"`
	DateRange string `form:"searchDateRange"`
	Status    string `form:"searchStatus"`
	Page      int    `form:"page,default=1" binding:"min=1"`
	Limit     int    `form:"limit,default=10" binding:"min=1,max=100"`
}

func NewSearchHandler(searchService ports.SearchService, logger ports.LoggerPort, metrics ports.MetricsPort) *SearchHandler {
	return &SearchHandler{
		searchService: searchService,
		logger:        logger,
		metrics:       metrics,
	}
}

// @Summary Search stolen and found bikes
// @Description Public search. Serial numbers are masked. Bikes whose latest report is private are left out.
// @Tags search
// @Produce json
// @Param searchQuery query string false "Free text over brand, model, serial and color"
// @Param searchType query string false "Bike type"
// @Param searchBrand query string false "Brand, exact"
// @Param searchColor query string false "Color, substring"
// @Param searchLocationCity query string false "Theft location, substring"
// @Param searchDateRange query string false "week, month, 3months or year"
// @Param searchStatus query string false "stolen, found or all"
// @Param page query int false "Page, from 1" default(1)
// @Param limit query int false "Page size, max 100" default(10)
// @Success 200 {object} domain.SearchPage "Results"
// @Failure 400 {object} errorResponse "Invalid filters"
// @Failure 429 {object} errorResponse "Rate limited"
// @Router /search [get]
func (h *SearchHandler) Search(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	var q SearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		bindError(c, h.logger, err)
		return
	}

	statuses, err := domain.ParseStatusFilter(strings.ToLower(q.Status))
	if err != nil {
		handleServiceError(c, h.logger, err, "search")
		return
	}

	filters := domain.SearchFilters{
		Query:     strings.TrimSpace(q.Query),
		Type:      strings.ToLower(strings.TrimSpace(q.Type)),
		Brand:     strings.TrimSpace(q.Brand),
		Color:     strings.TrimSpace(q.Color),
		City:      strings.TrimSpace(q.City),
		DateRange: domain.DateRange(q.DateRange),
		Statuses:  statuses,
	}

	result, err := h.searchService.Search(c.Request.Context(), filters, domain.Page{Number: q.Page, Size: q.Limit})
	if err != nil {
		handleServiceError(c, h.logger, err, "search")
		return
	}

	h.metrics.RecordEvent(ports.EventSearch)
	c.JSON(http.StatusOK, result)
}
