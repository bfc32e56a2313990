package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sm8ta/webike_theft_registry/internal/core/domain"

	"github.com/google/uuid"
)

const reportColumns = `r.id, r.user_id, r.bike_id, r.theft_date, r.theft_location, r.theft_details,
	r.latitude, r.longitude, r.police_reported, r.police_station, r.police_file_number,
	r.use_profile_contact, r.contact_name, r.contact_phone, r.contact_email,
	r.visibility, r.status, r.resolved_at, r.created_at, r.updated_at`

const reportWithBikeColumns = reportColumns + `,
	b.id, b.user_id, b.brand, b.model, b.type, b.year, b.color, b.frame_size, b.serial_number,
	b.additional_info, b.image_url, b.status, b.created_at, b.updated_at`

func scanReportWithBike(row rowScanner) (*domain.TheftReport, error) {
	report := &domain.TheftReport{}
	bike := &domain.Bike{}
	var (
		lat, lng   sql.NullFloat64
		resolvedAt sql.NullTime
	)
	err := row.Scan(
		&report.ID,
		&report.UserID,
		&report.BikeID,
		&report.TheftDate,
		&report.TheftLocation,
		&report.TheftDetails,
		&lat,
		&lng,
		&report.PoliceReported,
		&report.PoliceStation,
		&report.PoliceFileNumber,
		&report.UseProfileContact,
		&report.Contact.Name,
		&report.Contact.Phone,
		&report.Contact.Email,
		&report.Visibility,
		&report.Status,
		&resolvedAt,
		&report.CreatedAt,
		&report.UpdatedAt,
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
	report.Latitude = nullFloat(lat)
	report.Longitude = nullFloat(lng)
	if resolvedAt.Valid {
		t := resolvedAt.Time
		report.ResolvedAt = &t
	}
	report.Bike = bike
	return report, nil
}

type ReportRepository struct {
	db *sql.DB
}

func NewReportRepository(db *sql.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

func (r *ReportRepository) FileReport(ctx context.Context, report *domain.TheftReport) (*domain.TheftReport, error) {
	err := withinTransaction(ctx, r.db, nil, func(ctx context.Context) error {
		q := querier(ctx, r.db)

		// Row lock serializes concurrent filings against the same bike.
		var status domain.BikeStatus
		err := q.QueryRowContext(ctx,
			`SELECT status FROM bikes WHERE id = $1 AND user_id = $2 FOR UPDATE`,
			report.BikeID, report.UserID,
		).Scan(&status)
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrBikeNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to lock bike: %w", err)
		}

		var active bool
		err = q.QueryRowContext(ctx,
			`SELECT EXISTS (SELECT 1 FROM theft_reports WHERE bike_id = $1 AND status = 'active')`,
			report.BikeID,
		).Scan(&active)
		if err != nil {
			return fmt.Errorf("failed to check active reports: %w", err)
		}
		if active {
			return domain.ErrActiveReportExists
		}

		err = q.QueryRowContext(ctx,
			`INSERT INTO theft_reports (id, user_id, bike_id, theft_date, theft_location, theft_details,
				latitude, longitude, police_reported, police_station, police_file_number,
				use_profile_contact, contact_name, contact_phone, contact_email, visibility, status)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
			RETURNING created_at, updated_at`,
			report.ID,
			report.UserID,
			report.BikeID,
			report.TheftDate,
			report.TheftLocation,
			report.TheftDetails,
			report.Latitude,
			report.Longitude,
			report.PoliceReported,
			report.PoliceStation,
			report.PoliceFileNumber,
			report.UseProfileContact,
			report.Contact.Name,
			report.Contact.Phone,
			report.Contact.Email,
			report.Visibility,
			report.Status,
		).Scan(&report.CreatedAt, &report.UpdatedAt)
		if err != nil {
			return mapPQError(err, domain.ErrBikeNotFound)
		}

		bike, err := setBikeStatus(ctx, q, report.BikeID, domain.BikeStolen)
		if err != nil {
			return err
		}
		report.Bike = bike
		return nil
	})
	if err != nil {
		return nil, err
	}
	return report, nil
}

func (r *ReportRepository) GetReportForOwner(ctx context.Context, reportID, ownerID uuid.UUID) (*domain.TheftReport, error) {
	query := `SELECT ` + reportWithBikeColumns + `
		FROM theft_reports r
		JOIN bikes b ON b.id = r.bike_id
		WHERE r.id = $1 AND r.user_id = $2`

	report, err := scanReportWithBike(querier(ctx, r.db).QueryRowContext(ctx, query, reportID, ownerID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrReportNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get report: %w", err)
	}
	return report, nil
}

func (r *ReportRepository) GetReportsByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.TheftReport, error) {
	query := `SELECT ` + reportWithBikeColumns + `
		FROM theft_reports r
		JOIN bikes b ON b.id = r.bike_id
		WHERE r.user_id = $1
		ORDER BY r.created_at DESC`

	rows, err := querier(ctx, r.db).QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reports := []*domain.TheftReport{}
	for rows.Next() {
		report, err := scanReportWithBike(rows)
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return reports, nil
}

func (r *ReportRepository) ResolveReport(ctx context.Context, reportID, ownerID uuid.UUID) (*domain.TheftReport, error) {
	var resolved *domain.TheftReport

	err := withinTransaction(ctx, r.db, nil, func(ctx context.Context) error {
		q := querier(ctx, r.db)

		var (
			status domain.ReportStatus
			bikeID uuid.UUID
		)
		err := q.QueryRowContext(ctx,
			`SELECT status, bike_id FROM theft_reports WHERE id = $1 AND user_id = $2 FOR UPDATE`,
			reportID, ownerID,
		).Scan(&status, &bikeID)
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrReportNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to lock report: %w", err)
		}
		if status != domain.ReportActive {
			return domain.ErrReportNotActive
		}

		if _, err := q.ExecContext(ctx,
			`UPDATE theft_reports
			SET status = 'resolved', resolved_at = CURRENT_TIMESTAMP, updated_at = CURRENT_TIMESTAMP
			WHERE id = $1`,
			reportID,
		); err != nil {
			return fmt.Errorf("failed to resolve report: %w", err)
		}

		if _, err := setBikeStatus(ctx, q, bikeID, domain.BikeFound); err != nil {
			return err
		}

		resolved, err = r.GetReportForOwner(ctx, reportID, ownerID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return resolved, nil
}

func (r *ReportRepository) CountReportsByStatus(ctx context.Context, userID uuid.UUID, status domain.ReportStatus) (int, error) {
	var count int
	err := querier(ctx, r.db).QueryRowContext(ctx,
		`SELECT COUNT(*) FROM theft_reports WHERE user_id = $1 AND status = $2`,
		userID, status,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count reports: %w", err)
	}
	return count, nil
}
