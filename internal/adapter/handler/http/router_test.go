package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sm8ta/webike_theft_registry/internal/adapter/logger"
	"github.com/sm8ta/webike_theft_registry/internal/adapter/memory"
	metrics "github.com/sm8ta/webike_theft_registry/internal/adapter/prometheus"
	cacheadapter "github.com/sm8ta/webike_theft_registry/internal/adapter/redis"
	"github.com/sm8ta/webike_theft_registry/internal/config"
	"github.com/sm8ta/webike_theft_registry/internal/core/domain"
	"github.com/sm8ta/webike_theft_registry/internal/core/services"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

type testServer struct {
	engine       *gin.Engine
	tokens       *JWTTokenService
	achievements *services.AchievementService
}

func newTestServer(t *testing.T, limiter *IPRateLimiter) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := memory.NewStore()
	srv := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	cache := cacheadapter.NewRedisAdapter(client)
	log := logger.NewLoggerAdapter("test", "error")
	validate := domain.NewValidator()
	recorder := metrics.NewPrometheusAdapter(prometheus.NewRegistry())

	alertService := services.NewAlertService(store, log, validate)
	bikeService := services.NewBikeService(store, store, nil, log, validate, cache, 0)
	reportService := services.NewReportService(store, store, alertService, log, validate, cache)
	searchService := services.NewSearchService(store, log)
	achievementService := services.NewAchievementService(store, store, store, store, log, validate, cache, 0)
	profileService := services.NewProfileService(store, store, store, log, validate, cache, 0)

	tokens := NewJWTTokenService(testSecret, log)
	router, err := NewRouter(&config.HTTP{Env: "test"}, tokens, profileService, limiter, log, Handlers{
		Bike:        NewBikeHandler(bikeService, log, recorder),
		Report:      NewReportHandler(reportService, log, recorder),
		Alert:       NewAlertHandler(alertService, log, recorder),
		Search:      NewSearchHandler(searchService, log, recorder),
		Achievement: NewAchievementHandler(achievementService, log, recorder),
		Profile:     NewProfileHandler(profileService, log, recorder),
	})
	require.NoError(t, err)

	return &testServer{engine: router.Engine(), tokens: tokens, achievements: achievementService}
}

func (s *testServer) token(t *testing.T, username string, role domain.UserRole) string {
	t.Helper()
	token, err := s.tokens.NewToken(domain.TokenPayload{
		ID:       uuid.New(),
		UserID:   uuid.New(),
		Username: username,
		Role:     role,
	}, nil)
	require.NoError(t, err)
	return token
}

func (s *testServer) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.RemoteAddr = "192.0.2.1:4321"
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), dst), w.Body.String())
}

func trekFX3() gin.H {
	return gin.H{
		"brand":        "Trek",
		"model":        "FX3",
		"type":         "hybrid",
		"year":         2021,
		"color":        "black",
		"serialNumber": "WTU123456",
	}
}

func (s *testServer) registerBike(t *testing.T, token string, body gin.H) domain.Bike {
	t.Helper()
	w := s.do(t, http.MethodPost, "/bikes", token, body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var bike domain.Bike
	decode(t, w, &bike)
	return bike
}

func TestRouter_TheftFlow(t *testing.T) {
	s := newTestServer(t, nil)
	token := s.token(t, "dana", domain.AppUser)

	bike := s.registerBike(t, token, trekFX3())
	assert.Equal(t, domain.BikeRegistered, bike.Status)
	assert.Equal(t, "WTU123456", bike.SerialNumber)

	w := s.do(t, http.MethodPost, "/reports", token, gin.H{
		"bikeId":        bike.ID,
		"theftDate":     "2024-01-01",
		"theftLocation": "Tel Aviv",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var report domain.TheftReport
	decode(t, w, &report)
	assert.Equal(t, domain.ReportActive, report.Status)
	assert.Equal(t, "Tel Aviv", report.TheftLocation)
	assert.True(t, report.UseProfileContact)

	w = s.do(t, http.MethodGet, "/bikes/"+bike.ID.String(), token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var got domain.Bike
	decode(t, w, &got)
	assert.Equal(t, domain.BikeStolen, got.Status)

	w = s.do(t, http.MethodGet, "/search?searchQuery=Trek", "", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var page domain.SearchPage
	decode(t, w, &page)
	require.Len(t, page.Results, 1)
	assert.Equal(t, "WT***3456", page.Results[0].SerialNumber)
	assert.Equal(t, 1, page.Total)
	assert.Equal(t, 10, page.Limit)

	w = s.do(t, http.MethodPost, "/reports", token, gin.H{
		"bikeId":        bike.ID,
		"theftDate":     "2024-02-01T10:00:00Z",
		"theftLocation": "Haifa",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = s.do(t, http.MethodPatch, "/reports/"+report.ID.String()+"/resolve", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	decode(t, w, &report)
	assert.Equal(t, domain.ReportResolved, report.Status)

	w = s.do(t, http.MethodPatch, "/reports/"+report.ID.String()+"/resolve", token, nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = s.do(t, http.MethodGet, "/search?searchStatus=found", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &page)
	require.Len(t, page.Results, 1)
	assert.Equal(t, domain.BikeFound, page.Results[0].Status)
}

func TestRouter_Ownership(t *testing.T) {
	s := newTestServer(t, nil)
	owner := s.token(t, "owner", domain.AppUser)
	other := s.token(t, "other", domain.AppUser)
	bike := s.registerBike(t, owner, trekFX3())

	w := s.do(t, http.MethodGet, "/bikes/"+bike.ID.String(), other, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(t, http.MethodPost, "/reports", other, gin.H{
		"bikeId":        bike.ID,
		"theftDate":     "2024-01-01",
		"theftLocation": "Tel Aviv",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(t, http.MethodGet, "/bikes/"+bike.ID.String(), owner, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var got domain.Bike
	decode(t, w, &got)
	assert.Equal(t, domain.BikeRegistered, got.Status)

	w = s.do(t, http.MethodGet, "/bikes/not-an-id", owner, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRouter_BikeValidation(t *testing.T) {
	s := newTestServer(t, nil)
	token := s.token(t, "dana", domain.AppUser)

	w := s.do(t, http.MethodPost, "/bikes", token, gin.H{"model": "FX3"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	var resp errorResponse
	decode(t, w, &resp)
	fields := map[string]bool{}
	for _, issue := range resp.Errors {
		fields[issue.Field] = true
	}
	assert.True(t, fields["brand"], w.Body.String())
	assert.True(t, fields["serialNumber"], w.Body.String())

	body := trekFX3()
	body["type"] = "unicycle"
	body["year"] = 1900
	w = s.do(t, http.MethodPost, "/bikes", token, body)
	require.Equal(t, http.StatusBadRequest, w.Code)
	decode(t, w, &resp)
	assert.Len(t, resp.Errors, 2)

	w = s.do(t, http.MethodGet, "/bikes", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list BikesResponse
	decode(t, w, &list)
	assert.Zero(t, list.Count)
}

func TestRouter_BikeEditAndImages(t *testing.T) {
	s := newTestServer(t, nil)
	token := s.token(t, "dana", domain.AppUser)
	bike := s.registerBike(t, token, trekFX3())

	w := s.do(t, http.MethodPatch, "/bikes/"+bike.ID.String(), token, gin.H{"color": "blue", "type": "ROAD"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var updated domain.Bike
	decode(t, w, &updated)
	assert.Equal(t, "blue", updated.Color)
	assert.Equal(t, domain.Road, updated.Type)

	w = s.do(t, http.MethodPost, "/bikes/"+bike.ID.String()+"/images", token, gin.H{
		"images": []string{"https://img.example.com/a.jpg", "https://img.example.com/b.jpg"},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var images ImagesResponse
	decode(t, w, &images)
	assert.Equal(t, 2, images.Count)

	w = s.do(t, http.MethodGet, "/bikes/available", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list BikesResponse
	decode(t, w, &list)
	require.Equal(t, 1, list.Count)
	assert.Equal(t, "https://img.example.com/a.jpg", list.Bikes[0].ImageURL)
}

func TestRouter_ImageUploadWithoutStorage(t *testing.T) {
	s := newTestServer(t, nil)
	token := s.token(t, "dana", domain.AppUser)
	bike := s.registerBike(t, token, trekFX3())

	var buf bytes.Buffer
	buf.WriteString("--xyz\r\nContent-Disposition: form-data; name=\"images\"; filename=\"a.jpg\"\r\nContent-Type: image/jpeg\r\n\r\njpeg\r\n--xyz--\r\n")
	req := httptest.NewRequest(http.MethodPost, "/bikes/"+bike.ID.String()+"/images", &buf)
	req.Header.Set("Content-Type", "multipart/form-data; boundary=xyz")
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code, w.Body.String())
}

func TestRouter_ReportValidation(t *testing.T) {
	s := newTestServer(t, nil)
	token := s.token(t, "dana", domain.AppUser)
	bike := s.registerBike(t, token, trekFX3())

	w := s.do(t, http.MethodPost, "/reports", token, gin.H{
		"bikeId":        bike.ID,
		"theftDate":     "yesterday",
		"theftLocation": "Tel Aviv",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	var resp errorResponse
	decode(t, w, &resp)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "theftDate", resp.Errors[0].Field)

	w = s.do(t, http.MethodPost, "/reports", token, gin.H{
		"bikeId":            bike.ID,
		"theftDate":         "2024-01-01",
		"theftLocation":     "Tel Aviv",
		"useProfileContact": false,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodGet, "/bikes/"+bike.ID.String(), token, nil)
	var got domain.Bike
	decode(t, w, &got)
	assert.Equal(t, domain.BikeRegistered, got.Status)
}

func TestRouter_Alerts(t *testing.T) {
	s := newTestServer(t, nil)
	token := s.token(t, "dana", domain.AppUser)
	bike := s.registerBike(t, token, trekFX3())

	w := s.do(t, http.MethodPost, "/reports", token, gin.H{
		"bikeId":        bike.ID,
		"theftDate":     "2024-01-01",
		"theftLocation": "Tel Aviv",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = s.do(t, http.MethodGet, "/alerts", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var alerts AlertsResponse
	decode(t, w, &alerts)
	require.Equal(t, 1, alerts.Count)
	assert.Equal(t, 1, alerts.UnreadCount)

	path := "/alerts/" + alerts.Alerts[0].ID.String() + "/read"
	for i := 0; i < 2; i++ {
		w = s.do(t, http.MethodPatch, path, token, nil)
		assert.Equal(t, http.StatusOK, w.Code)
	}

	w = s.do(t, http.MethodGet, "/alerts", token, nil)
	decode(t, w, &alerts)
	assert.Zero(t, alerts.UnreadCount)

	other := s.token(t, "other", domain.AppUser)
	w = s.do(t, http.MethodPatch, path, other, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_Achievements(t *testing.T) {
	s := newTestServer(t, nil)
	_, err := s.achievements.SeedBadges(context.Background())
	require.NoError(t, err)

	token := s.token(t, "dana", domain.AppUser)
	s.registerBike(t, token, trekFX3())

	check := gin.H{"action": domain.ActionBikeRegistration}
	w := s.do(t, http.MethodPost, "/achievements/check", token, check)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var result domain.AwardResult
	decode(t, w, &result)
	assert.Equal(t, 1, result.Awarded)
	require.Len(t, result.NewAchievements, 1)
	assert.Equal(t, "Registered Bike", result.NewAchievements[0].Badge.Name)

	w = s.do(t, http.MethodPost, "/achievements/check", token, check)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &result)
	assert.Zero(t, result.Awarded)

	w = s.do(t, http.MethodGet, "/achievements", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var achievements AchievementsResponse
	decode(t, w, &achievements)
	assert.Equal(t, 1, achievements.Count)

	w = s.do(t, http.MethodPost, "/achievements/check", token, gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRouter_Badges(t *testing.T) {
	s := newTestServer(t, nil)
	badge := gin.H{
		"name":         "Night Rider",
		"description":  "Registered a bike with lights",
		"imageUrl":     "/badges/night_rider.svg",
		"category":     "safety",
		"level":        1,
		"requirements": gin.H{"type": "lights_check"},
	}

	w := s.do(t, http.MethodPost, "/badges", "", badge)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.do(t, http.MethodPost, "/badges", s.token(t, "dana", domain.AppUser), badge)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = s.do(t, http.MethodPost, "/badges", s.token(t, "root", domain.Admin), badge)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created domain.Badge
	decode(t, w, &created)

	w = s.do(t, http.MethodGet, "/badges", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Night Rider")

	w = s.do(t, http.MethodGet, "/badges/"+created.ID.String(), "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = s.do(t, http.MethodGet, "/badges/"+uuid.NewString(), "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_Profile(t *testing.T) {
	s := newTestServer(t, nil)
	token := s.token(t, "dana", domain.AppUser)
	s.registerBike(t, token, trekFX3())

	w := s.do(t, http.MethodGet, "/profile", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var profile map[string]interface{}
	decode(t, w, &profile)
	assert.Equal(t, "dana", profile["username"])
	assert.EqualValues(t, 1, profile["bikesCount"])
	assert.EqualValues(t, 0, profile["activeTheftReportsCount"])

	w = s.do(t, http.MethodPatch, "/profile", token, gin.H{"firstName": "Dana"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = s.do(t, http.MethodPost, "/profile/password", token, gin.H{"newPassword": "first-secret"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = s.do(t, http.MethodPost, "/profile/password", token, gin.H{
		"currentPassword": "wrong-secret",
		"newPassword":     "second-secret",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRouter_Unauthorized(t *testing.T) {
	s := newTestServer(t, nil)
	foreign := NewJWTTokenService("another-secret", logger.NewLoggerAdapter("test", "error"))
	forged, err := foreign.NewToken(domain.TokenPayload{ID: uuid.New(), UserID: uuid.New(), Role: domain.AppUser}, nil)
	require.NoError(t, err)

	for name, token := range map[string]string{
		"missing": "",
		"garbage": "not-a-jwt",
		"forged":  forged,
	} {
		t.Run(name, func(t *testing.T) {
			w := s.do(t, http.MethodGet, "/bikes", token, nil)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}

	req := httptest.NewRequest(http.MethodGet, "/alerts", nil)
	req.Header.Set("Authorization", "Basic Zm9vOmJhcg==")
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRouter_SearchValidation(t *testing.T) {
	s := newTestServer(t, nil)

	for _, path := range []string{
		"/search?searchStatus=registered",
		"/search?searchType=unicycle",
		"/search?searchDateRange=decade",
		"/search?limit=101",
		"/search?page=0",
	} {
		w := s.do(t, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, path)
	}
}

func TestRouter_SearchPastLastPage(t *testing.T) {
	s := newTestServer(t, nil)

	w := s.do(t, http.MethodGet, "/search?page=9223372036854775807&limit=2", "", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var page domain.SearchPage
	decode(t, w, &page)
	assert.Empty(t, page.Results)
	assert.Zero(t, page.Total)
}

func TestRouter_SearchRateLimited(t *testing.T) {
	limiter := NewIPRateLimiter(1, 2)
	fixed := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return fixed }
	s := newTestServer(t, limiter)

	for i := 0; i < 2; i++ {
		w := s.do(t, http.MethodGet, "/search", "", nil)
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := s.do(t, http.MethodGet, "/search", "", nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "1", w.Header().Get("Retry-After"))

	fixed = fixed.Add(time.Second)
	w = s.do(t, http.MethodGet, "/search", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_Health(t *testing.T) {
	s := newTestServer(t, nil)
	w := s.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}
