package services

import (
	"context"
	"testing"

	"github.com/sm8ta/webike_theft_registry/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func awardedNames(res *domain.AwardResult) []string {
	names := make([]string, 0, len(res.NewAchievements))
	for _, a := range res.NewAchievements {
		names = append(names, a.Badge.Name)
	}
	return names
}

func TestAchievementService_SeedBadges(t *testing.T) {
	env := newTestEnv(t)
	env.seedBadges(t)

	n, err := env.achievements.SeedBadges(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)

	badges, err := env.achievements.ListBadges(context.Background())
	require.NoError(t, err)
	assert.Len(t, badges, len(domain.DefaultBadges()))
	assert.Equal(t, 3, badges[0].Level)
}

func TestAchievementService_BikeRegistration(t *testing.T) {
	env := newTestEnv(t)
	env.seedBadges(t)
	user := env.newUser(t, "dana")
	env.registerBike(t, user, "Trek", "FX3", "WTU123456")

	res, err := env.achievements.CheckAndAward(context.Background(), user, domain.ActionBikeRegistration, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Checked)
	assert.Equal(t, 1, res.Awarded)
	assert.Equal(t, []string{"Registered Bike"}, awardedNames(res))

	res, err = env.achievements.CheckAndAward(context.Background(), user, domain.ActionBikeRegistration, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Checked)
	assert.Zero(t, res.Awarded)
	assert.Empty(t, res.NewAchievements)

	env.registerBike(t, user, "Giant", "Escape", serial(2))
	env.registerBike(t, user, "Cannondale", "Quick", serial(3))
	res, err = env.achievements.CheckAndAward(context.Background(), user, domain.ActionBikeRegistration, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"Collector"}, awardedNames(res))

	achievements, err := env.achievements.ListAchievements(context.Background(), user)
	require.NoError(t, err)
	assert.Len(t, achievements, 2)

	alerts, _, err := env.alerts.ListForUser(context.Background(), user)
	require.NoError(t, err)
	require.Len(t, alerts, 2)
	assert.Equal(t, domain.AlertAchievement, alerts[0].Type)
}

func TestAchievementService_GuideCompletion(t *testing.T) {
	env := newTestEnv(t)
	env.seedBadges(t)
	user := env.newUser(t, "dana")

	res, err := env.achievements.CheckAndAward(context.Background(), user, domain.ActionGuideCompletion,
		map[string]interface{}{"guideId": "basic_maintenance"})
	require.NoError(t, err)
	assert.Equal(t, 3, res.Checked)
	assert.Equal(t, []string{"Beginner Expert"}, awardedNames(res))
}

func TestAchievementService_FieldRequirement(t *testing.T) {
	env := newTestEnv(t)
	env.seedBadges(t)
	user := env.newUser(t, "dana")

	res, err := env.achievements.CheckAndAward(context.Background(), user, domain.ActionProfileUpdate,
		map[string]interface{}{"helmet": false})
	require.NoError(t, err)
	assert.Zero(t, res.Awarded)

	res, err = env.achievements.CheckAndAward(context.Background(), user, domain.ActionProfileUpdate,
		map[string]interface{}{"helmet": true})
	require.NoError(t, err)
	assert.Equal(t, []string{"Helmet On"}, awardedNames(res))
}

func TestAchievementService_BikeFound(t *testing.T) {
	env := newTestEnv(t)
	env.seedBadges(t)
	user := env.newUser(t, "dana")
	bike := env.registerBike(t, user, "Trek", "FX3", "WTU123456")

	res, err := env.achievements.CheckAndAward(context.Background(), user, domain.ActionBikeFound, nil)
	require.NoError(t, err)
	assert.Zero(t, res.Awarded)

	report := env.fileReport(t, user, bike.ID, "Tel Aviv")
	_, err = env.reports.ResolveReport(context.Background(), user, report.ID)
	require.NoError(t, err)

	res, err = env.achievements.CheckAndAward(context.Background(), user, domain.ActionBikeFound, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"Helper"}, awardedNames(res))
	assert.Equal(t, 1, res.NewAchievements[0].Progress.Count)
}

func TestAchievementService_UnknownAction(t *testing.T) {
	env := newTestEnv(t)
	env.seedBadges(t)
	user := env.newUser(t, "dana")

	res, err := env.achievements.CheckAndAward(context.Background(), user, "sky_diving", nil)
	require.NoError(t, err)
	assert.Zero(t, res.Checked)

	_, err = env.achievements.CheckAndAward(context.Background(), user, "", nil)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAchievementService_CreateBadge(t *testing.T) {
	env := newTestEnv(t)
	user := env.newUser(t, "dana")
	admin := domain.CurrentUser{ID: uuid.New(), Username: "root", Role: domain.Admin}

	badge := &domain.Badge{
		Name:         "Night Rider",
		Description:  "Registered a bike with lights",
		ImageURL:     "/badges/night.svg",
		Category:     domain.CategorySafety,
		Level:        1,
		Requirements: domain.Requirements{Type: "lights_check"},
	}

	_, err := env.achievements.CreateBadge(context.Background(), user, badge)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	// Prime the catalog cache; creating a badge must invalidate it.
	badges, err := env.achievements.ListBadges(context.Background())
	require.NoError(t, err)
	assert.Empty(t, badges)

	created, err := env.achievements.CreateBadge(context.Background(), admin, badge)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)

	badges, err = env.achievements.ListBadges(context.Background())
	require.NoError(t, err)
	assert.Len(t, badges, 1)

	got, err := env.achievements.GetBadge(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Night Rider", got.Name)

	_, err = env.achievements.GetBadge(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrBadgeNotFound)

	_, err = env.achievements.CreateBadge(context.Background(), admin, &domain.Badge{Name: "x"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}
