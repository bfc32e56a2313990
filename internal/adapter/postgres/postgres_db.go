package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sm8ta/webike_theft_registry/internal/core/domain"

	"github.com/google/uuid"
)

const bikeColumns = `id, user_id, brand, model, type, year, color, frame_size, serial_number,
	additional_info, image_url, status, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBike(row rowScanner) (*domain.Bike, error) {
	bike := &domain.Bike{}
	err := row.Scan(
		&bike.ID,
		&bike.UserID,
		&bike.Brand,
		&bike.Model,
		&bike.Type,
		&bike.Year,
		&bike.Color,
		&bike.FrameSize,
		&bike.SerialNumber,
		&bike.AdditionalInfo,
		&bike.ImageURL,
		&bike.Status,
		&bike.CreatedAt,
		&bike.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return bike, nil
}

type BikeRepository struct {
	db *sql.DB
}

func NewBikeRepository(db *sql.DB) *BikeRepository {
	return &BikeRepository{
		db,
	}
}

func (r *BikeRepository) CreateBike(ctx context.Context, bike *domain.Bike) (*domain.Bike, error) {
	query := `INSERT INTO bikes (id, user_id, brand, model, type, year, color, frame_size,
		serial_number, additional_info, status)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	RETURNING created_at, updated_at`

	err := querier(ctx, r.db).QueryRowContext(ctx, query,
		bike.ID,
		bike.UserID,
		bike.Brand,
		bike.Model,
		bike.Type,
		bike.Year,
		bike.Color,
		bike.FrameSize,
		bike.SerialNumber,
		bike.AdditionalInfo,
		bike.Status,
	).Scan(
		&bike.CreatedAt,
		&bike.UpdatedAt,
	)
	if err != nil {
		return nil, mapPQError(err, domain.ErrUserNotFound)
	}
	return bike, nil
}

func (r *BikeRepository) GetBikeForOwner(ctx context.Context, bikeID, ownerID uuid.UUID) (*domain.Bike, error) {
	query := `SELECT ` + bikeColumns + `
		FROM bikes WHERE id = $1 AND user_id = $2`

	bike, err := scanBike(querier(ctx, r.db).QueryRowContext(ctx, query, bikeID, ownerID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrBikeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get bike: %w", err)
	}
	return bike, nil
}

func (r *BikeRepository) GetBikesByUserID(ctx context.Context, userID uuid.UUID, status *domain.BikeStatus) ([]*domain.Bike, error) {
	query := `SELECT ` + bikeColumns + `
		FROM bikes
		WHERE user_id = $1 AND ($2::text IS NULL OR status = $2)
		ORDER BY created_at DESC`

	var statusArg interface{}
	if status != nil {
		statusArg = string(*status)
	}

	rows, err := querier(ctx, r.db).QueryContext(ctx, query, userID, statusArg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bikes := []*domain.Bike{}
	for rows.Next() {
		bike, err := scanBike(rows)
		if err != nil {
			return nil, err
		}
		bikes = append(bikes, bike)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return bikes, nil
}

func (r *BikeRepository) UpdateBike(ctx context.Context, bikeID, ownerID uuid.UUID, upd domain.BikeUpdate) (*domain.Bike, error) {
	query := `UPDATE bikes
		SET
			brand = COALESCE($1, brand),
			model = COALESCE($2, model),
			type = COALESCE($3, type),
			year = COALESCE($4, year),
			color = COALESCE($5, color),
			frame_size = COALESCE($6, frame_size),
			serial_number = COALESCE($7, serial_number),
			additional_info = COALESCE($8, additional_info),
			updated_at = CURRENT_TIMESTAMP
		WHERE id = $9 AND user_id = $10
		RETURNING ` + bikeColumns

	var bikeType *string
	if upd.Type != nil {
		t := string(*upd.Type)
		bikeType = &t
	}

	bike, err := scanBike(querier(ctx, r.db).QueryRowContext(ctx, query,
		upd.Brand,
		upd.Model,
		bikeType,
		upd.Year,
		upd.Color,
		upd.FrameSize,
		upd.SerialNumber,
		upd.AdditionalInfo,
		bikeID,
		ownerID,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBikeNotFound
		}
		return nil, fmt.Errorf("error updating bike: %w", mapPQError(err, domain.ErrBikeNotFound))
	}
	return bike, nil
}

func (r *BikeRepository) CountBikesByUserID(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int
	err := querier(ctx, r.db).QueryRowContext(ctx,
		`SELECT COUNT(*) FROM bikes WHERE user_id = $1`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count bikes: %w", err)
	}
	return count, nil
}

// setBikeStatus is only called from the report transactions.
func setBikeStatus(ctx context.Context, q dbtx, bikeID uuid.UUID, status domain.BikeStatus) (*domain.Bike, error) {
	query := `UPDATE bikes SET status = $1, updated_at = CURRENT_TIMESTAMP
		WHERE id = $2
		RETURNING ` + bikeColumns

	bike, err := scanBike(q.QueryRowContext(ctx, query, status, bikeID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrBikeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to set bike status: %w", err)
	}
	return bike, nil
}
