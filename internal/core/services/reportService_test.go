package services

import (
	"context"
	"testing"

	"github.com/sm8ta/webike_theft_registry/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportService_FileReport(t *testing.T) {
	env := newTestEnv(t)
	user := env.newUser(t, "dana")
	bike := env.registerBike(t, user, "Trek", "FX3", "WTU123456")

	// Warm the cache so the status change has to invalidate it.
	_, err := env.bikes.GetBike(context.Background(), user, bike.ID)
	require.NoError(t, err)

	report := env.fileReport(t, user, bike.ID, "Tel Aviv")
	assert.Equal(t, domain.ReportActive, report.Status)
	assert.Equal(t, domain.VisibilityPublic, report.Visibility)
	assert.Equal(t, "dana", report.Contact.Name)
	require.NotNil(t, report.Bike)
	assert.Equal(t, domain.BikeStolen, report.Bike.Status)

	got, err := env.bikes.GetBike(context.Background(), user, bike.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.BikeStolen, got.Status)

	alerts, unread, err := env.alerts.ListForUser(context.Background(), user)
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, 1, unread)
	assert.Equal(t, domain.AlertUpdate, alerts[0].Type)
	assert.Equal(t, report.ID, alerts[0].Related.ID)
}

func TestReportService_FileReport_ActiveReportExists(t *testing.T) {
	env := newTestEnv(t)
	user := env.newUser(t, "dana")
	bike := env.registerBike(t, user, "Trek", "FX3", "WTU123456")
	env.fileReport(t, user, bike.ID, "Tel Aviv")

	_, err := env.reports.FileReport(context.Background(), user, theftDraft(bike.ID, "Haifa"))
	assert.ErrorIs(t, err, domain.ErrActiveReportExists)
	assert.ErrorIs(t, err, domain.ErrConflict)

	reports, err := env.reports.ListOwnReports(context.Background(), user)
	require.NoError(t, err)
	assert.Len(t, reports, 1)
}

func TestReportService_FileReport_NotOwner(t *testing.T) {
	env := newTestEnv(t)
	owner := env.newUser(t, "owner")
	thief := env.newUser(t, "thief")
	bike := env.registerBike(t, owner, "Trek", "FX3", "WTU123456")

	_, err := env.reports.FileReport(context.Background(), thief, theftDraft(bike.ID, "Tel Aviv"))
	assert.ErrorIs(t, err, domain.ErrBikeNotFound)

	got, err := env.bikes.GetBike(context.Background(), owner, bike.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.BikeRegistered, got.Status)

	reports, err := env.reports.ListOwnReports(context.Background(), thief)
	require.NoError(t, err)
	assert.Empty(t, reports)
}

func TestReportService_FileReport_Validation(t *testing.T) {
	env := newTestEnv(t)
	user := env.newUser(t, "dana")
	bike := env.registerBike(t, user, "Trek", "FX3", "WTU123456")

	tests := []struct {
		name   string
		mutate func(d *domain.ReportDraft)
		field  string
	}{
		{"missing location", func(d *domain.ReportDraft) { d.TheftLocation = "" }, "theftLocation"},
		{"bad visibility", func(d *domain.ReportDraft) { d.Visibility = "friends" }, "visibility"},
		{"latitude out of range", func(d *domain.ReportDraft) { d.Latitude, d.Longitude = "91", "34.78" }, "latitude"},
		{"explicit contact without name", func(d *domain.ReportDraft) {
			d.UseProfileContact = false
			d.Contact = domain.Contact{Phone: "050-1234567"}
		}, "contactName"},
		{"explicit contact without reach", func(d *domain.ReportDraft) {
			d.UseProfileContact = false
			d.Contact = domain.Contact{Name: "Dana"}
		}, "contactPhone"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := theftDraft(bike.ID, "Tel Aviv")
			tt.mutate(&draft)

			_, err := env.reports.FileReport(context.Background(), user, draft)
			var verr *domain.ValidationError
			require.ErrorAs(t, err, &verr)

			fields := make([]string, 0, len(verr.Issues))
			for _, issue := range verr.Issues {
				fields = append(fields, issue.Field)
			}
			assert.Contains(t, fields, tt.field)
		})
	}

	got, err := env.bikes.GetBike(context.Background(), user, bike.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.BikeRegistered, got.Status)
}

func TestReportService_FileReport_ExplicitContact(t *testing.T) {
	env := newTestEnv(t)
	user := env.newUser(t, "dana")
	bike := env.registerBike(t, user, "Trek", "FX3", "WTU123456")

	draft := theftDraft(bike.ID, "Tel Aviv")
	draft.UseProfileContact = false
	draft.Contact = domain.Contact{Name: "Neighbour", Email: "n@example.com"}
	draft.Latitude, draft.Longitude = "32.0853", "34.7818"

	report, err := env.reports.FileReport(context.Background(), user, draft)
	require.NoError(t, err)
	assert.Equal(t, "Neighbour", report.Contact.Name)
	require.NotNil(t, report.Latitude)
	assert.InDelta(t, 32.0853, *report.Latitude, 1e-9)
}

func TestReportService_ProfileContactIsLive(t *testing.T) {
	env := newTestEnv(t)
	user := env.newUser(t, "dana")
	bike := env.registerBike(t, user, "Trek", "FX3", "WTU123456")
	report := env.fileReport(t, user, bike.ID, "Tel Aviv")

	first, last, phone := "Dana", "Levi", "050-1234567"
	_, err := env.profiles.UpdateProfile(context.Background(), user, domain.ProfileUpdate{
		FirstName: &first, LastName: &last, Phone: &phone,
	})
	require.NoError(t, err)

	got, err := env.reports.GetReport(context.Background(), user, report.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.Contact{Name: "Dana Levi", Phone: phone}, got.Contact)
}

func TestReportService_ResolveReport(t *testing.T) {
	env := newTestEnv(t)
	user := env.newUser(t, "dana")
	bike := env.registerBike(t, user, "Trek", "FX3", "WTU123456")
	report := env.fileReport(t, user, bike.ID, "Tel Aviv")

	resolved, err := env.reports.ResolveReport(context.Background(), user, report.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ReportResolved, resolved.Status)
	assert.NotNil(t, resolved.ResolvedAt)

	got, err := env.bikes.GetBike(context.Background(), user, bike.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.BikeFound, got.Status)

	_, err = env.reports.ResolveReport(context.Background(), user, report.ID)
	assert.ErrorIs(t, err, domain.ErrReportNotActive)

	// A found bike can be stolen again.
	env.fileReport(t, user, bike.ID, "Jaffa")
}

func TestReportService_GetReport_NotOwner(t *testing.T) {
	env := newTestEnv(t)
	owner := env.newUser(t, "owner")
	other := env.newUser(t, "other")
	bike := env.registerBike(t, owner, "Trek", "FX3", "WTU123456")
	report := env.fileReport(t, owner, bike.ID, "Tel Aviv")

	_, err := env.reports.GetReport(context.Background(), other, report.ID)
	assert.ErrorIs(t, err, domain.ErrReportNotFound)

	_, err = env.reports.ResolveReport(context.Background(), other, report.ID)
	assert.ErrorIs(t, err, domain.ErrReportNotFound)

	_, err = env.reports.GetReport(context.Background(), owner, uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
