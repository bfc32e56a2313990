package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sm8ta/webike_theft_registry/internal/core/domain"

	"github.com/google/uuid"
)

const userColumns = `id, username, password_hash, firebase_uid, email, phone, first_name, last_name,
	profile_picture, created_at, updated_at`

func scanUser(row rowScanner) (*domain.User, error) {
	user := &domain.User{}
	var firebaseUID sql.NullString
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&firebaseUID,
		&user.Email,
		&user.Phone,
		&user.FirstName,
		&user.LastName,
		&user.ProfilePicture,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if firebaseUID.Valid {
		user.FirebaseUID = &firebaseUID.String
	}
	return user, nil
}

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// EnsureUser creates the local row for an authenticated caller. When the
// username is already taken by another account the id is used instead.
func (r *UserRepository) EnsureUser(ctx context.Context, userID uuid.UUID, username string) error {
	q := querier(ctx, r.db)
	if username == "" {
		username = userID.String()
	}

	for _, name := range []string{username, userID.String()} {
		result, err := q.ExecContext(ctx,
			`INSERT INTO users (id, username) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			userID, name,
		)
		if err != nil {
			return fmt.Errorf("failed to ensure user: %w", err)
		}
		if n, err := result.RowsAffected(); err == nil && n > 0 {
			return nil
		}

		var exists bool
		err = q.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`, userID).Scan(&exists)
		if err != nil {
			return fmt.Errorf("failed to check user: %w", err)
		}
		if exists {
			return nil
		}
	}
	return fmt.Errorf("username %q: %w", username, domain.ErrConflict)
}

func (r *UserRepository) GetUserByID(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	user, err := scanUser(querier(ctx, r.db).QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, userID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, userID uuid.UUID, upd domain.ProfileUpdate) (*domain.User, error) {
	query := `UPDATE users
		SET
			username = COALESCE($1, username),
			email = COALESCE($2, email),
			phone = COALESCE($3, phone),
			first_name = COALESCE($4, first_name),
			last_name = COALESCE($5, last_name),
			profile_picture = COALESCE($6, profile_picture),
			updated_at = CURRENT_TIMESTAMP
		WHERE id = $7
		RETURNING ` + userColumns

	user, err := scanUser(querier(ctx, r.db).QueryRowContext(ctx, query,
		upd.Username,
		upd.Email,
		upd.Phone,
		upd.FirstName,
		upd.LastName,
		upd.ProfilePicture,
		userID,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, mapPQError(err, domain.ErrUserNotFound)
	}
	return user, nil
}

func (r *UserRepository) UpdatePasswordHash(ctx context.Context, userID uuid.UUID, hash string) error {
	result, err := querier(ctx, r.db).ExecContext(ctx,
		`UPDATE users SET password_hash = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2`,
		hash, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}
