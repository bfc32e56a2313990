// Package memory keeps every repository port in process memory. It mirrors
// the postgres adapter's ownership, status and uniqueness rules and backs
// the service and handler tests.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/sm8ta/webike_theft_registry/internal/core/domain"
	"github.com/sm8ta/webike_theft_registry/internal/core/ports"

	"github.com/google/uuid"
)

var (
	_ ports.UserRepository        = (*Store)(nil)
	_ ports.BikeRepository        = (*Store)(nil)
	_ ports.ImageRepository       = (*Store)(nil)
	_ ports.ReportRepository      = (*Store)(nil)
	_ ports.AlertRepository       = (*Store)(nil)
	_ ports.BadgeRepository       = (*Store)(nil)
	_ ports.AchievementRepository = (*Store)(nil)
	_ ports.SearchRepository      = (*Store)(nil)
)

type Store struct {
	mu    sync.Mutex
	clock time.Time

	users        map[uuid.UUID]*domain.User
	bikes        map[uuid.UUID]*domain.Bike
	images       map[uuid.UUID][]*domain.BikeImage
	reports      map[uuid.UUID]*domain.TheftReport
	alerts       map[uuid.UUID]*domain.Alert
	badges       map[uuid.UUID]*domain.Badge
	achievements map[uuid.UUID]*domain.UserAchievement
}

func NewStore() *Store {
	return &Store{
		clock:        time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		users:        make(map[uuid.UUID]*domain.User),
		bikes:        make(map[uuid.UUID]*domain.Bike),
		images:       make(map[uuid.UUID][]*domain.BikeImage),
		reports:      make(map[uuid.UUID]*domain.TheftReport),
		alerts:       make(map[uuid.UUID]*domain.Alert),
		badges:       make(map[uuid.UUID]*domain.Badge),
		achievements: make(map[uuid.UUID]*domain.UserAchievement),
	}
}

// now advances a logical clock so creation order is always observable.
// Called with mu held.
func (s *Store) now() time.Time {
	s.clock = s.clock.Add(time.Millisecond)
	return s.clock
}

func copyBike(b *domain.Bike) *domain.Bike {
	out := *b
	out.Images = nil
	return &out
}

// Users

func (s *Store) EnsureUser(_ context.Context, userID uuid.UUID, username string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[userID]; ok {
		return nil
	}
	name := username
	if name == "" || s.usernameTaken(name, userID) {
		name = userID.String()
	}
	if s.usernameTaken(name, userID) {
		return domain.ErrConflict
	}
	now := s.now()
	s.users[userID] = &domain.User{ID: userID, Username: name, CreatedAt: now, UpdatedAt: now}
	return nil
}

func (s *Store) usernameTaken(name string, except uuid.UUID) bool {
	for id, u := range s.users {
		if id != except && u.Username == name {
			return true
		}
	}
	return false
}

func (s *Store) GetUserByID(_ context.Context, userID uuid.UUID) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[userID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	out := *u
	return &out, nil
}

func (s *Store) UpdateProfile(_ context.Context, userID uuid.UUID, upd domain.ProfileUpdate) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[userID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if upd.Username != nil && s.usernameTaken(*upd.Username, userID) {
		return nil, domain.ErrConflict
	}
	set := func(dst *string, v *string) {
		if v != nil {
			*dst = *v
		}
	}
	set(&u.Username, upd.Username)
	set(&u.Email, upd.Email)
	set(&u.Phone, upd.Phone)
	set(&u.FirstName, upd.FirstName)
	set(&u.LastName, upd.LastName)
	set(&u.ProfilePicture, upd.ProfilePicture)
	u.UpdatedAt = s.now()

	out := *u
	return &out, nil
}

func (s *Store) UpdatePasswordHash(_ context.Context, userID uuid.UUID, hash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[userID]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.PasswordHash = hash
	u.UpdatedAt = s.now()
	return nil
}

// Bikes

func (s *Store) CreateBike(_ context.Context, bike *domain.Bike) (*domain.Bike, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[bike.UserID]; !ok {
		return nil, domain.ErrUserNotFound
	}
	stored := copyBike(bike)
	stored.CreatedAt = s.now()
	stored.UpdatedAt = stored.CreatedAt
	s.bikes[stored.ID] = stored
	return copyBike(stored), nil
}

func (s *Store) ownedBike(bikeID, ownerID uuid.UUID) (*domain.Bike, error) {
	b, ok := s.bikes[bikeID]
	if !ok || b.UserID != ownerID {
		return nil, domain.ErrBikeNotFound
	}
	return b, nil
}

func (s *Store) GetBikeForOwner(_ context.Context, bikeID, ownerID uuid.UUID) (*domain.Bike, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := s.ownedBike(bikeID, ownerID)
	if err != nil {
		return nil, err
	}
	return copyBike(b), nil
}

func (s *Store) GetBikesByUserID(_ context.Context, userID uuid.UUID, status *domain.BikeStatus) ([]*domain.Bike, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bikes := []*domain.Bike{}
	for _, b := range s.bikes {
		if b.UserID != userID || (status != nil && b.Status != *status) {
			continue
		}
		bikes = append(bikes, copyBike(b))
	}
	sort.Slice(bikes, func(i, j int) bool { return bikes[i].CreatedAt.After(bikes[j].CreatedAt) })
	return bikes, nil
}

func (s *Store) UpdateBike(_ context.Context, bikeID, ownerID uuid.UUID, upd domain.BikeUpdate) (*domain.Bike, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := s.ownedBike(bikeID, ownerID)
	if err != nil {
		return nil, err
	}
	if upd.Brand != nil {
		b.Brand = *upd.Brand
	}
	if upd.Model != nil {
		b.Model = *upd.Model
	}
	if upd.Type != nil {
		b.Type = *upd.Type
	}
	if upd.Year != nil {
		b.Year = *upd.Year
	}
	if upd.Color != nil {
		b.Color = *upd.Color
	}
	if upd.FrameSize != nil {
		b.FrameSize = *upd.FrameSize
	}
	if upd.SerialNumber != nil {
		b.SerialNumber = *upd.SerialNumber
	}
	if upd.AdditionalInfo != nil {
		b.AdditionalInfo = *upd.AdditionalInfo
	}
	b.UpdatedAt = s.now()
	return copyBike(b), nil
}

func (s *Store) CountBikesByUserID(_ context.Context, userID uuid.UUID) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, b := range s.bikes {
		if b.UserID == userID {
			n++
		}
	}
	return n, nil
}

// Images

func (s *Store) AddImages(_ context.Context, bikeID, ownerID uuid.UUID, urls []string) ([]*domain.BikeImage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := s.ownedBike(bikeID, ownerID)
	if err != nil {
		return nil, err
	}

	start := len(s.images[bikeID])
	added := make([]*domain.BikeImage, 0, len(urls))
	for i, u := range urls {
		img := &domain.BikeImage{
			ID:        uuid.New(),
			BikeID:    bikeID,
			URL:       u,
			Position:  start + i,
			CreatedAt: s.now(),
		}
		s.images[bikeID] = append(s.images[bikeID], img)
		out := *img
		added = append(added, &out)
	}
	if len(urls) > 0 {
		b.ImageURL = urls[0]
		b.UpdatedAt = s.now()
	}
	return added, nil
}

func (s *Store) GetImagesByBikeID(_ context.Context, bikeID uuid.UUID) ([]*domain.BikeImage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	images := make([]*domain.BikeImage, 0, len(s.images[bikeID]))
	for _, img := range s.images[bikeID] {
		out := *img
		images = append(images, &out)
	}
	return images, nil
}

// Theft reports

func (s *Store) reportView(r *domain.TheftReport) *domain.TheftReport {
	out := *r
	if b, ok := s.bikes[r.BikeID]; ok {
		out.Bike = copyBike(b)
	}
	return &out
}

func (s *Store) FileReport(_ context.Context, report *domain.TheftReport) (*domain.TheftReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := s.ownedBike(report.BikeID, report.UserID)
	if err != nil {
		return nil, err
	}
	for _, r := range s.reports {
		if r.BikeID == report.BikeID && r.Status == domain.ReportActive {
			return nil, domain.ErrActiveReportExists
		}
	}

	stored := *report
	stored.Bike = nil
	stored.CreatedAt = s.now()
	stored.UpdatedAt = stored.CreatedAt
	s.reports[stored.ID] = &stored

	b.Status = domain.BikeStolen
	b.UpdatedAt = s.now()
	return s.reportView(&stored), nil
}

func (s *Store) GetReportForOwner(_ context.Context, reportID, ownerID uuid.UUID) (*domain.TheftReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.reports[reportID]
	if !ok || r.UserID != ownerID {
		return nil, domain.ErrReportNotFound
	}
	return s.reportView(r), nil
}

func (s *Store) GetReportsByUserID(_ context.Context, userID uuid.UUID) ([]*domain.TheftReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	reports := []*domain.TheftReport{}
	for _, r := range s.reports {
		if r.UserID == userID {
			reports = append(reports, s.reportView(r))
		}
	}
	sort.Slice(reports, func(i, j int) bool { return reports[i].CreatedAt.After(reports[j].CreatedAt) })
	return reports, nil
}

func (s *Store) ResolveReport(_ context.Context, reportID, ownerID uuid.UUID) (*domain.TheftReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.reports[reportID]
	if !ok || r.UserID != ownerID {
		return nil, domain.ErrReportNotFound
	}
	if r.Status != domain.ReportActive {
		return nil, domain.ErrReportNotActive
	}

	now := s.now()
	r.Status = domain.ReportResolved
	r.ResolvedAt = &now
	r.UpdatedAt = now
	if b, ok := s.bikes[r.BikeID]; ok {
		b.Status = domain.BikeFound
		b.UpdatedAt = now
	}
	return s.reportView(r), nil
}

func (s *Store) CountReportsByStatus(_ context.Context, userID uuid.UUID, status domain.ReportStatus) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, r := range s.reports {
		if r.UserID == userID && r.Status == status {
			n++
		}
	}
	return n, nil
}

// Alerts

func (s *Store) insertAlert(alert *domain.Alert) *domain.Alert {
	stored := *alert
	stored.CreatedAt = s.now()
	s.alerts[stored.ID] = &stored
	out := stored
	return &out
}

func (s *Store) CreateAlert(_ context.Context, alert *domain.Alert) (*domain.Alert, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[alert.UserID]; !ok {
		return nil, domain.ErrUserNotFound
	}
	return s.insertAlert(alert), nil
}

func (s *Store) GetAlertsByUserID(_ context.Context, userID uuid.UUID) ([]*domain.Alert, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	alerts := []*domain.Alert{}
	for _, a := range s.alerts {
		if a.UserID == userID {
			out := *a
			alerts = append(alerts, &out)
		}
	}
	sort.Slice(alerts, func(i, j int) bool { return alerts[i].CreatedAt.After(alerts[j].CreatedAt) })
	return alerts, nil
}

func (s *Store) MarkAlertRead(_ context.Context, alertID, userID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.alerts[alertID]
	if !ok || a.UserID != userID {
		return domain.ErrAlertNotFound
	}
	a.Read = true
	return nil
}

func (s *Store) CountUnread(_ context.Context, userID uuid.UUID) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, a := range s.alerts {
		if a.UserID == userID && !a.Read {
			n++
		}
	}
	return n, nil
}

// Badges and achievements

func (s *Store) ListBadges(_ context.Context) ([]*domain.Badge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	badges := make([]*domain.Badge, 0, len(s.badges))
	for _, b := range s.badges {
		out := *b
		badges = append(badges, &out)
	}
	sort.Slice(badges, func(i, j int) bool {
		a, b := badges[i], badges[j]
		if a.Level != b.Level {
			return a.Level > b.Level
		}
		if a.Category != b.Category {
			return a.Category > b.Category
		}
		return a.Name < b.Name
	})
	return badges, nil
}

func (s *Store) GetBadgeByID(_ context.Context, badgeID uuid.UUID) (*domain.Badge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.badges[badgeID]
	if !ok {
		return nil, domain.ErrBadgeNotFound
	}
	out := *b
	return &out, nil
}

func (s *Store) GetBadgesByRequirementType(_ context.Context, action string) ([]*domain.Badge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	badges := []*domain.Badge{}
	for _, b := range s.badges {
		if b.Requirements.Type == action {
			out := *b
			badges = append(badges, &out)
		}
	}
	sort.Slice(badges, func(i, j int) bool {
		if badges[i].Level != badges[j].Level {
			return badges[i].Level < badges[j].Level
		}
		return strings.Compare(badges[i].Name, badges[j].Name) < 0
	})
	return badges, nil
}

func (s *Store) CreateBadge(_ context.Context, badge *domain.Badge) (*domain.Badge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *badge
	stored.CreatedAt = s.now()
	s.badges[stored.ID] = &stored
	out := stored
	return &out, nil
}

func (s *Store) CountBadges(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.badges), nil
}

func (s *Store) GetAchievementsByUserID(_ context.Context, userID uuid.UUID) ([]*domain.UserAchievement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	achievements := []*domain.UserAchievement{}
	for _, a := range s.achievements {
		if a.UserID != userID {
			continue
		}
		out := *a
		if b, ok := s.badges[a.BadgeID]; ok {
			badge := *b
			out.Badge = &badge
		}
		achievements = append(achievements, &out)
	}
	sort.Slice(achievements, func(i, j int) bool {
		return achievements[i].CompletedAt.After(achievements[j].CompletedAt)
	})
	return achievements, nil
}

func (s *Store) GetAchievedBadgeIDs(_ context.Context, userID uuid.UUID) (map[uuid.UUID]bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	held := make(map[uuid.UUID]bool)
	for _, a := range s.achievements {
		if a.UserID == userID {
			held[a.BadgeID] = true
		}
	}
	return held, nil
}

func (s *Store) AwardBadge(_ context.Context, achievement *domain.UserAchievement, alert *domain.Alert) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.badges[achievement.BadgeID]; !ok {
		return false, domain.ErrBadgeNotFound
	}
	for _, a := range s.achievements {
		if a.UserID == achievement.UserID && a.BadgeID == achievement.BadgeID {
			return false, nil
		}
	}

	stored := *achievement
	stored.Badge = nil
	stored.CompletedAt = s.now()
	s.achievements[stored.ID] = &stored
	achievement.CompletedAt = stored.CompletedAt

	if alert != nil {
		s.insertAlert(alert)
	}
	return true, nil
}

// Search

func (s *Store) latestReport(bikeID uuid.UUID) *domain.TheftReport {
	var latest *domain.TheftReport
	for _, r := range s.reports {
		if r.BikeID == bikeID && (latest == nil || r.CreatedAt.After(latest.CreatedAt)) {
			latest = r
		}
	}
	return latest
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func matchesSearch(b *domain.Bike, r *domain.TheftReport, f domain.SearchFilters) bool {
	if r != nil && r.Visibility != domain.VisibilityPublic {
		return false
	}
	statusOK := false
	for _, st := range f.Statuses {
		if b.Status == st {
			statusOK = true
			break
		}
	}
	if !statusOK {
		return false
	}
	if f.Query != "" && !containsFold(b.Brand, f.Query) && !containsFold(b.Model, f.Query) &&
		!containsFold(b.SerialNumber, f.Query) && !containsFold(b.Color, f.Query) {
		return false
	}
	if f.Type != "" && string(b.Type) != f.Type {
		return false
	}
	if f.Brand != "" && !strings.EqualFold(b.Brand, f.Brand) {
		return false
	}
	if f.Color != "" && !containsFold(b.Color, f.Color) {
		return false
	}
	if f.City != "" && (r == nil || !containsFold(r.TheftLocation, f.City)) {
		return false
	}
	if f.TheftSince != nil && (r == nil || r.TheftDate.Before(*f.TheftSince)) {
		return false
	}
	return true
}

func (s *Store) SearchBikes(_ context.Context, filters domain.SearchFilters, page domain.Page) ([]*domain.BikeSearch, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	type hit struct {
		bike   *domain.Bike
		report *domain.TheftReport
	}
	hits := []hit{}
	for _, b := range s.bikes {
		r := s.latestReport(b.ID)
		if matchesSearch(b, r, filters) {
			hits = append(hits, hit{bike: b, report: r})
		}
	}
	sort.Slice(hits, func(i, j int) bool {
		ri, rj := hits[i].report, hits[j].report
		switch {
		case ri != nil && rj != nil && !ri.CreatedAt.Equal(rj.CreatedAt):
			return ri.CreatedAt.After(rj.CreatedAt)
		case ri != nil && rj == nil:
			return true
		case ri == nil && rj != nil:
			return false
		}
		return hits[i].bike.CreatedAt.After(hits[j].bike.CreatedAt)
	})

	total := len(hits)
	start := min(page.Offset(), total)
	end := min(start+page.Size, total)

	results := make([]*domain.BikeSearch, 0, end-start)
	for _, h := range hits[start:end] {
		res := &domain.BikeSearch{
			ID:           h.bike.ID,
			Brand:        h.bike.Brand,
			Model:        h.bike.Model,
			Type:         string(h.bike.Type),
			Color:        h.bike.Color,
			Year:         h.bike.Year,
			SerialNumber: h.bike.SerialNumber,
			Status:       h.bike.Status,
		}
		if h.bike.ImageURL != "" {
			img := h.bike.ImageURL
			res.ImageURL = &img
		}
		if h.report != nil {
			id, date, loc := h.report.ID, h.report.CreatedAt, h.report.TheftLocation
			res.ReportID, res.ReportDate, res.Location = &id, &date, &loc
			res.Latitude, res.Longitude = h.report.Latitude, h.report.Longitude
		}
		results = append(results, res)
	}
	return results, total, nil
}
