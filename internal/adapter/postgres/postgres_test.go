package postgres

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/sm8ta/webike_theft_registry/internal/core/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTime = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})
	return db, mock
}

func q(s string) string {
	return regexp.QuoteMeta(s)
}

var bikeCols = []string{"id", "user_id", "brand", "model", "type", "year", "color", "frame_size",
	"serial_number", "additional_info", "image_url", "status", "created_at", "updated_at"}

func bikeRow(id, userID uuid.UUID, status domain.BikeStatus) *sqlmock.Rows {
	return sqlmock.NewRows(bikeCols).AddRow(
		id.String(), userID.String(), "Trek", "FX3", "hybrid", 2021, "black", "M",
		"WTU123456", "", "", string(status), testTime, testTime,
	)
}

func newReport(bikeID, userID uuid.UUID) *domain.TheftReport {
	return &domain.TheftReport{
		ID:                uuid.New(),
		UserID:            userID,
		BikeID:            bikeID,
		TheftDate:         testTime,
		TheftLocation:     "Tel Aviv",
		UseProfileContact: true,
		Visibility:        domain.VisibilityPublic,
		Status:            domain.ReportActive,
	}
}

func TestReportRepository_FileReport(t *testing.T) {
	db, mock := newMock(t)
	bikeID, userID := uuid.New(), uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(q(`SELECT status FROM bikes WHERE id = $1 AND user_id = $2 FOR UPDATE`)).
		WithArgs(bikeID, userID).
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("registered"))
	mock.ExpectQuery(q(`SELECT EXISTS`)).
		WithArgs(bikeID).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectQuery(q(`INSERT INTO theft_reports`)).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(testTime, testTime))
	mock.ExpectQuery(q(`UPDATE bikes SET status = $1`)).
		WithArgs(domain.BikeStolen, bikeID).
		WillReturnRows(bikeRow(bikeID, userID, domain.BikeStolen))
	mock.ExpectCommit()

	report, err := NewReportRepository(db).FileReport(context.Background(), newReport(bikeID, userID))
	require.NoError(t, err)
	assert.Equal(t, testTime, report.CreatedAt)
	require.NotNil(t, report.Bike)
	assert.Equal(t, domain.BikeStolen, report.Bike.Status)
}

func TestReportRepository_FileReport_ActiveReportExists(t *testing.T) {
	db, mock := newMock(t)
	bikeID, userID := uuid.New(), uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(q(`FOR UPDATE`)).
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("stolen"))
	mock.ExpectQuery(q(`SELECT EXISTS`)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectRollback()

	_, err := NewReportRepository(db).FileReport(context.Background(), newReport(bikeID, userID))
	assert.ErrorIs(t, err, domain.ErrActiveReportExists)
}

func TestReportRepository_FileReport_NotOwned(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery(q(`FOR UPDATE`)).
		WillReturnRows(sqlmock.NewRows([]string{"status"}))
	mock.ExpectRollback()

	_, err := NewReportRepository(db).FileReport(context.Background(), newReport(uuid.New(), uuid.New()))
	assert.ErrorIs(t, err, domain.ErrBikeNotFound)
}

func TestReportRepository_FileReport_LostRace(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery(q(`FOR UPDATE`)).
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("registered"))
	mock.ExpectQuery(q(`SELECT EXISTS`)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectQuery(q(`INSERT INTO theft_reports`)).
		WillReturnError(&pq.Error{Code: pqUniqueViolation, Constraint: activeReportIndex})
	mock.ExpectRollback()

	_, err := NewReportRepository(db).FileReport(context.Background(), newReport(uuid.New(), uuid.New()))
	assert.ErrorIs(t, err, domain.ErrActiveReportExists)
}

func TestBikeRepository_GetBikeForOwner(t *testing.T) {
	db, mock := newMock(t)
	bikeID, userID := uuid.New(), uuid.New()

	mock.ExpectQuery(q(`FROM bikes WHERE id = $1 AND user_id = $2`)).
		WithArgs(bikeID, userID).
		WillReturnRows(bikeRow(bikeID, userID, domain.BikeRegistered))
	mock.ExpectQuery(q(`FROM bikes WHERE id = $1 AND user_id = $2`)).
		WillReturnRows(sqlmock.NewRows(bikeCols))

	repo := NewBikeRepository(db)
	bike, err := repo.GetBikeForOwner(context.Background(), bikeID, userID)
	require.NoError(t, err)
	assert.Equal(t, bikeID, bike.ID)
	assert.Equal(t, domain.Hybrid, bike.Type)

	_, err = repo.GetBikeForOwner(context.Background(), bikeID, uuid.New())
	assert.ErrorIs(t, err, domain.ErrBikeNotFound)
}

func TestSearchRepository_SearchBikes(t *testing.T) {
	db, mock := newMock(t)
	bikeID, reportID := uuid.New(), uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(q(`SELECT COUNT(*)`)).
		WithArgs(sqlmock.AnyArg(), "%Trek%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(11))
	mock.ExpectQuery(q(`ORDER BY r.created_at DESC NULLS LAST, b.created_at DESC LIMIT $3 OFFSET $4`)).
		WithArgs(sqlmock.AnyArg(), "%Trek%", 10, 10).
		WillReturnRows(sqlmock.NewRows([]string{"id", "brand", "model", "type", "color", "year",
			"serial_number", "status", "image_url", "report_id", "report_date", "location", "latitude", "longitude"}).
			AddRow(bikeID.String(), "Trek", "FX3", "hybrid", "black", 2021, "WTU123456", "stolen",
				nil, reportID.String(), testTime, "Tel Aviv", 32.08, nil))
	mock.ExpectCommit()

	filters := domain.SearchFilters{Query: "Trek", Statuses: []domain.BikeStatus{domain.BikeStolen, domain.BikeFound}}
	results, total, err := NewSearchRepository(db).SearchBikes(context.Background(), filters, domain.Page{Number: 2, Size: 10})
	require.NoError(t, err)
	assert.Equal(t, 11, total)
	require.Len(t, results, 1)

	res := results[0]
	assert.Equal(t, "WTU123456", res.SerialNumber)
	assert.Nil(t, res.ImageURL)
	require.NotNil(t, res.ReportID)
	assert.Equal(t, reportID, *res.ReportID)
	require.NotNil(t, res.Location)
	assert.Equal(t, "Tel Aviv", *res.Location)
	require.NotNil(t, res.Latitude)
	assert.Nil(t, res.Longitude)
}

func TestSearchWhere(t *testing.T) {
	since := testTime
	where, args := searchWhere(domain.SearchFilters{
		Query:      "tr_k",
		Type:       "road",
		Brand:      "Trek",
		Color:      "bl",
		City:       "Tel",
		Statuses:   []domain.BikeStatus{domain.BikeStolen},
		TheftSince: &since,
	})

	assert.Contains(t, where, "b.status = ANY($1)")
	assert.Contains(t, where, "b.brand ILIKE $2 OR b.model ILIKE $2")
	assert.Contains(t, where, "b.type = $3")
	assert.Contains(t, where, "LOWER(b.brand) = LOWER($4)")
	assert.Contains(t, where, "b.color ILIKE $5")
	assert.Contains(t, where, "r.theft_location ILIKE $6")
	assert.Contains(t, where, "r.theft_date >= $7")
	require.Len(t, args, 7)
	assert.Equal(t, `%tr\_k%`, args[1])
}

func TestLikePattern(t *testing.T) {
	assert.Equal(t, "%trek%", likePattern("trek"))
	assert.Equal(t, `%50\%\_off\\%`, likePattern(`50%_off\`))
}

func TestAchievementRepository_AwardBadge(t *testing.T) {
	db, mock := newMock(t)
	userID, badgeID := uuid.New(), uuid.New()
	achievement := &domain.UserAchievement{ID: uuid.New(), UserID: userID, BadgeID: badgeID}
	alert := &domain.Alert{ID: uuid.New(), UserID: userID, Title: "New badge", Message: "Well done", Type: domain.AlertAchievement}

	mock.ExpectBegin()
	mock.ExpectQuery(q(`INSERT INTO user_achievements`)).
		WithArgs(achievement.ID, userID, badgeID, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"completed_at"}).AddRow(testTime))
	mock.ExpectQuery(q(`INSERT INTO alerts`)).
		WillReturnRows(sqlmock.NewRows([]string{"read", "created_at"}).AddRow(false, testTime))
	mock.ExpectCommit()

	awarded, err := NewAchievementRepository(db).AwardBadge(context.Background(), achievement, alert)
	require.NoError(t, err)
	assert.True(t, awarded)
	assert.Equal(t, testTime, achievement.CompletedAt)
}

func TestAchievementRepository_AwardBadge_AlreadyHeld(t *testing.T) {
	db, mock := newMock(t)
	achievement := &domain.UserAchievement{ID: uuid.New(), UserID: uuid.New(), BadgeID: uuid.New()}

	mock.ExpectBegin()
	mock.ExpectQuery(q(`ON CONFLICT (user_id, badge_id) DO NOTHING`)).
		WillReturnRows(sqlmock.NewRows([]string{"completed_at"}))
	mock.ExpectCommit()

	awarded, err := NewAchievementRepository(db).AwardBadge(context.Background(), achievement, &domain.Alert{})
	require.NoError(t, err)
	assert.False(t, awarded)
}

func TestWithinTransaction_ReusesOuterTx(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectBegin()
	mock.ExpectExec(q(`UPDATE alerts`)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := withinTransaction(context.Background(), db, nil, func(ctx context.Context) error {
		return withinTransaction(ctx, db, nil, func(ctx context.Context) error {
			_, err := querier(ctx, db).ExecContext(ctx, `UPDATE alerts SET read = TRUE`)
			return err
		})
	})
	assert.NoError(t, err)
}

func TestMapPQError(t *testing.T) {
	plain := errors.New("boom")
	assert.Same(t, plain, mapPQError(plain, domain.ErrBikeNotFound))

	err := mapPQError(&pq.Error{Code: pqForeignKeyViolation}, domain.ErrBikeNotFound)
	assert.ErrorIs(t, err, domain.ErrBikeNotFound)

	err = mapPQError(&pq.Error{Code: pqUniqueViolation, Constraint: "users_username_key"}, nil)
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.NotErrorIs(t, err, domain.ErrActiveReportExists)

	err = mapPQError(&pq.Error{Code: pqNotNullViolation, Column: "brand"}, nil)
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "brand", verr.Issues[0].Field)
}
