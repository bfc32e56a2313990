package services

import (
	"context"
	"math"
	"time"

	"github.com/sm8ta/webike_theft_registry/internal/core/domain"
	"github.com/sm8ta/webike_theft_registry/internal/core/ports"
)

type SearchService struct {
	searchRepo ports.SearchRepository
	logger     ports.LoggerPort
	now        func() time.Time
}

func NewSearchService(searchRepo ports.SearchRepository, logger ports.LoggerPort) *SearchService {
	return &SearchService{
		searchRepo: searchRepo,
		logger:     logger,
		now:        time.Now,
	}
}

// Search runs the public bike search. Serial numbers in the returned page are
// masked; the repository hands them over raw.
func (s *SearchService) Search(ctx context.Context, filters domain.SearchFilters, page domain.Page) (*domain.SearchPage, error) {
	verr := &domain.ValidationError{}
	if filters.Type != "" && !domain.BikeType(filters.Type).Valid() {
		verr.Add("searchType", "unknown bike type")
	}
	if !filters.DateRange.Valid() {
		verr.Add("searchDateRange", "must be one of: week month 3months year")
	}
	if len(filters.Statuses) == 0 {
		filters.Statuses = []domain.BikeStatus{domain.BikeStolen, domain.BikeFound}
	}
	for _, st := range filters.Statuses {
		if st != domain.BikeStolen && st != domain.BikeFound {
			verr.Add("searchStatus", "must be one of: stolen found all")
			break
		}
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	if page.Number < 1 {
		page.Number = 1
	}
	if page.Size < 1 {
		page.Size = domain.DefaultPageSize
	}
	if page.Size > domain.MaxPageSize {
		page.Size = domain.MaxPageSize
	}
	if page.Number > math.MaxInt/page.Size {
		page.Number = math.MaxInt / page.Size
	}
	filters.TheftSince = filters.DateRange.Since(s.now())

	rows, total, err := s.searchRepo.SearchBikes(ctx, filters, page)
	if err != nil {
		s.logger.Error("Search failed", map[string]interface{}{
			"error": err.Error(),
			"query": filters.Query,
		})
		return nil, err
	}

	results := make([]*domain.BikeSearch, 0, len(rows))
	for _, row := range rows {
		results = append(results, row.Masked())
	}

	s.logger.Debug("Search executed", map[string]interface{}{
		"query":   filters.Query,
		"total":   total,
		"page":    page.Number,
		"results": len(results),
	})

	return &domain.SearchPage{
		Results:    results,
		Total:      total,
		Page:       page.Number,
		Limit:      page.Size,
		TotalPages: domain.TotalPages(total, page.Size),
	}, nil
}
