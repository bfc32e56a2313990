package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/sm8ta/webike_theft_registry/internal/adapter/logger"
	"github.com/sm8ta/webike_theft_registry/internal/adapter/memory"
	cacheadapter "github.com/sm8ta/webike_theft_registry/internal/adapter/redis"
	"github.com/sm8ta/webike_theft_registry/internal/core/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	store        *memory.Store
	redis        *miniredis.Miniredis
	bikes        *BikeService
	reports      *ReportService
	alerts       *AlertService
	achievements *AchievementService
	search       *SearchService
	profiles     *ProfileService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store := memory.NewStore()
	srv := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	cache := cacheadapter.NewRedisAdapter(client)
	log := logger.NewLoggerAdapter("test", "error")
	validate := domain.NewValidator()

	alerts := NewAlertService(store, log, validate)
	return &testEnv{
		store:        store,
		redis:        srv,
		bikes:        NewBikeService(store, store, nil, log, validate, cache, 0),
		reports:      NewReportService(store, store, alerts, log, validate, cache),
		alerts:       alerts,
		achievements: NewAchievementService(store, store, store, store, log, validate, cache, 0),
		search:       NewSearchService(store, log),
		profiles:     NewProfileService(store, store, store, log, validate, cache, 0),
	}
}

func (e *testEnv) newUser(t *testing.T, username string) domain.CurrentUser {
	t.Helper()
	user := domain.CurrentUser{ID: uuid.New(), Username: username, Role: domain.AppUser}
	require.NoError(t, e.profiles.EnsureUser(context.Background(), user))
	return user
}

func newBike(brand, model, serial string) *domain.Bike {
	return &domain.Bike{
		Brand:        brand,
		Model:        model,
		Type:         domain.Hybrid,
		Year:         2021,
		Color:        "black",
		SerialNumber: serial,
	}
}

func (e *testEnv) registerBike(t *testing.T, user domain.CurrentUser, brand, model, serial string) *domain.Bike {
	t.Helper()
	bike, err := e.bikes.RegisterBike(context.Background(), user, newBike(brand, model, serial))
	require.NoError(t, err)
	return bike
}

func theftDraft(bikeID uuid.UUID, location string) domain.ReportDraft {
	return domain.ReportDraft{
		BikeID:            bikeID,
		TheftDate:         time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		TheftLocation:     location,
		UseProfileContact: true,
	}
}

func (e *testEnv) fileReport(t *testing.T, user domain.CurrentUser, bikeID uuid.UUID, location string) *domain.TheftReport {
	t.Helper()
	report, err := e.reports.FileReport(context.Background(), user, theftDraft(bikeID, location))
	require.NoError(t, err)
	return report
}

func (e *testEnv) seedBadges(t *testing.T) {
	t.Helper()
	n, err := e.achievements.SeedBadges(context.Background())
	require.NoError(t, err)
	require.Equal(t, len(domain.DefaultBadges()), n)
}

func serial(i int) string {
	return fmt.Sprintf("SN%06d", i)
}
