package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sm8ta/webike_theft_registry/internal/core/domain"

	"github.com/google/uuid"
)

type ImageRepository struct {
	db *sql.DB
}

func NewImageRepository(db *sql.DB) *ImageRepository {
	return &ImageRepository{db: db}
}

// AddImages appends urls to the bike's gallery and makes the first of them the
// primary image.
func (r *ImageRepository) AddImages(ctx context.Context, bikeID, ownerID uuid.UUID, urls []string) ([]*domain.BikeImage, error) {
	images := make([]*domain.BikeImage, 0, len(urls))

	err := withinTransaction(ctx, r.db, nil, func(ctx context.Context) error {
		q := querier(ctx, r.db)

		var exists bool
		err := q.QueryRowContext(ctx,
			`SELECT TRUE FROM bikes WHERE id = $1 AND user_id = $2 FOR UPDATE`,
			bikeID, ownerID,
		).Scan(&exists)
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrBikeNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to lock bike: %w", err)
		}

		var position int
		err = q.QueryRowContext(ctx,
			`SELECT COALESCE(MAX(position) + 1, 0) FROM bike_images WHERE bike_id = $1`,
			bikeID,
		).Scan(&position)
		if err != nil {
			return fmt.Errorf("failed to read image position: %w", err)
		}

		for _, url := range urls {
			image := &domain.BikeImage{
				ID:       uuid.New(),
				BikeID:   bikeID,
				URL:      url,
				Position: position,
			}
			err := q.QueryRowContext(ctx,
				`INSERT INTO bike_images (id, bike_id, url, position)
				VALUES ($1, $2, $3, $4)
				RETURNING created_at`,
				image.ID, image.BikeID, image.URL, image.Position,
			).Scan(&image.CreatedAt)
			if err != nil {
				return mapPQError(err, domain.ErrBikeNotFound)
			}
			images = append(images, image)
			position++
		}

		if _, err := q.ExecContext(ctx,
			`UPDATE bikes SET image_url = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2`,
			urls[0], bikeID,
		); err != nil {
			return fmt.Errorf("failed to set primary image: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return images, nil
}

func (r *ImageRepository) GetImagesByBikeID(ctx context.Context, bikeID uuid.UUID) ([]*domain.BikeImage, error) {
	query := `SELECT id, bike_id, url, position, created_at
		FROM bike_images WHERE bike_id = $1
		ORDER BY position`

	rows, err := querier(ctx, r.db).QueryContext(ctx, query, bikeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	images := []*domain.BikeImage{}
	for rows.Next() {
		image := &domain.BikeImage{}
		err := rows.Scan(
			&image.ID,
			&image.BikeID,
			&image.URL,
			&image.Position,
			&image.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		images = append(images, image)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return images, nil
}
