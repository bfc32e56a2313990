package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"github.com/sm8ta/webike_theft_registry/internal/core/domain"

	"github.com/google/uuid"
)

type SearchRepository struct {
	db *sql.DB
}

func NewSearchRepository(db *sql.DB) *SearchRepository {
	return &SearchRepository{db: db}
}

const searchFrom = `
	FROM bikes b
	LEFT JOIN LATERAL (
		SELECT id, theft_date, theft_location, latitude, longitude, visibility, created_at
		FROM theft_reports
		WHERE bike_id = b.id
		ORDER BY created_at DESC
		LIMIT 1
	) r ON TRUE`

// likePattern escapes LIKE wildcards so user input matches literally.
func likePattern(s string) string {
	s = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
	return "%" + s + "%"
}

// searchWhere builds the filter clause shared by the page and the count query.
func searchWhere(f domain.SearchFilters) (string, []interface{}) {
	statuses := make([]string, 0, len(f.Statuses))
	for _, s := range f.Statuses {
		statuses = append(statuses, string(s))
	}

	args := []interface{}{pq.Array(statuses)}
	conds := []string{
		"(r.id IS NULL OR r.visibility = 'public')",
		"b.status = ANY($1)",
	}
	next := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if f.Query != "" {
		p := next(likePattern(f.Query))
		conds = append(conds, fmt.Sprintf(
			"(b.brand ILIKE %[1]s OR b.model ILIKE %[1]s OR b.serial_number ILIKE %[1]s OR b.color ILIKE %[1]s)", p))
	}
	if f.Type != "" {
		conds = append(conds, "b.type = "+next(f.Type))
	}
	if f.Brand != "" {
		conds = append(conds, "LOWER(b.brand) = LOWER("+next(f.Brand)+")")
	}
	if f.Color != "" {
		conds = append(conds, "b.color ILIKE "+next(likePattern(f.Color)))
	}
	if f.City != "" {
		conds = append(conds, "r.theft_location ILIKE "+next(likePattern(f.City)))
	}
	if f.TheftSince != nil {
		conds = append(conds, "r.theft_date >= "+next(*f.TheftSince))
	}

	return " WHERE " + strings.Join(conds, " AND "), args
}

func (r *SearchRepository) SearchBikes(ctx context.Context, filters domain.SearchFilters, page domain.Page) ([]*domain.BikeSearch, int, error) {
	where, args := searchWhere(filters)

	pageQuery := `SELECT b.id, b.brand, b.model, b.type, b.color, b.year, b.serial_number, b.status,
			NULLIF(b.image_url, ''), r.id, r.created_at, r.theft_location, r.latitude, r.longitude` +
		searchFrom + where +
		fmt.Sprintf(` ORDER BY r.created_at DESC NULLS LAST, b.created_at DESC LIMIT $%d OFFSET $%d`,
			len(args)+1, len(args)+2)
	countQuery := `SELECT COUNT(*)` + searchFrom + where

	var (
		results []*domain.BikeSearch
		total   int
	)
	opts := &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true}
	err := withinTransaction(ctx, r.db, opts, func(ctx context.Context) error {
		q := querier(ctx, r.db)

		if err := q.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
			return fmt.Errorf("failed to count search results: %w", err)
		}

		rows, err := q.QueryContext(ctx, pageQuery, append(args, page.Size, page.Offset())...)
		if err != nil {
			return fmt.Errorf("failed to search bikes: %w", err)
		}
		defer rows.Close()

		results = []*domain.BikeSearch{}
		for rows.Next() {
			res := &domain.BikeSearch{}
			var (
				imageURL, location sql.NullString
				reportID           uuid.NullUUID
				reportDate         sql.NullTime
				lat, lng           sql.NullFloat64
			)
			err := rows.Scan(
				&res.ID,
				&res.Brand,
				&res.Model,
				&res.Type,
				&res.Color,
				&res.Year,
				&res.SerialNumber,
				&res.Status,
				&imageURL,
				&reportID,
				&reportDate,
				&location,
				&lat,
				&lng,
			)
			if err != nil {
				return err
			}
			if imageURL.Valid {
				res.ImageURL = &imageURL.String
			}
			if reportID.Valid {
				res.ReportID = &reportID.UUID
			}
			if reportDate.Valid {
				res.ReportDate = &reportDate.Time
			}
			if location.Valid {
				res.Location = &location.String
			}
			res.Latitude = nullFloat(lat)
			res.Longitude = nullFloat(lng)
			results = append(results, res)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, 0, err
	}
	return results, total, nil
}
