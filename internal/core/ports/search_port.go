package ports

import (
	"context"

	"github.com/sm8ta/webike_theft_registry/internal/core/domain"
)

type SearchRepository interface {
	// SearchBikes returns one page and the total match count read from the
	// same snapshot.
	SearchBikes(ctx context.Context, filters domain.SearchFilters, page domain.Page) ([]*domain.BikeSearch, int, error)
}

type SearchService interface {
	Search(ctx context.Context, filters domain.SearchFilters, page domain.Page) (*domain.SearchPage, error)
}
