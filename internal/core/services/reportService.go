package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/sm8ta/webike_theft_registry/internal/core/domain"
	"github.com/sm8ta/webike_theft_registry/internal/core/ports"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type ReportService struct {
	reportRepo ports.ReportRepository
	userRepo   ports.UserRepository
	alerts     ports.AlertService
	logger     ports.LoggerPort
	validate   *validator.Validate
	cache      ports.CachePort
}

func NewReportService(
	reportRepo ports.ReportRepository,
	userRepo ports.UserRepository,
	alerts ports.AlertService,
	logger ports.LoggerPort,
	validate *validator.Validate,
	cache ports.CachePort,
) *ReportService {
	return &ReportService{
		reportRepo: reportRepo,
		userRepo:   userRepo,
		alerts:     alerts,
		logger:     logger,
		validate:   validate,
		cache:      cache,
	}
}

// FileReport records a theft. The report is stored as active and the bike
// flips to stolen atomically; a bike with an active report is rejected.
func (s *ReportService) FileReport(ctx context.Context, user domain.CurrentUser, draft domain.ReportDraft) (*domain.TheftReport, error) {
	report, err := s.buildReport(user, draft)
	if err != nil {
		s.logger.Warn("Theft report validation failed", map[string]interface{}{
			"error":   err.Error(),
			"user_id": user.ID,
		})
		return nil, err
	}

	filed, err := s.reportRepo.FileReport(ctx, report)
	if err != nil {
		s.logger.Warn("Failed to file theft report", map[string]interface{}{
			"error":   err.Error(),
			"bike_id": draft.BikeID,
			"user_id": user.ID,
		})
		return nil, err
	}

	cacheDelete(s.cache, s.logger, bikeCacheKey(filed.BikeID))

	s.notify(ctx, user.ID, filed, "Theft report filed",
		fmt.Sprintf("Your %s was reported stolen at %s.", bikeLabel(filed.Bike), filed.TheftLocation))

	s.logger.Info("Theft report filed", map[string]interface{}{
		"report_id":  filed.ID,
		"bike_id":    filed.BikeID,
		"user_id":    user.ID,
		"visibility": filed.Visibility,
	})

	s.resolveContacts(ctx, user, filed)
	return filed, nil
}

func (s *ReportService) buildReport(user domain.CurrentUser, draft domain.ReportDraft) (*domain.TheftReport, error) {
	visibility := draft.Visibility
	if visibility == "" {
		visibility = domain.VisibilityPublic
	}

	report := &domain.TheftReport{
		ID:                uuid.New(),
		UserID:            user.ID,
		BikeID:            draft.BikeID,
		TheftDate:         draft.TheftDate,
		TheftLocation:     draft.TheftLocation,
		TheftDetails:      draft.TheftDetails,
		PoliceReported:    draft.PoliceReported,
		PoliceStation:     draft.PoliceStation,
		PoliceFileNumber:  draft.PoliceFileNumber,
		UseProfileContact: draft.UseProfileContact,
		Visibility:        visibility,
		Status:            domain.ReportActive,
	}
	if !draft.UseProfileContact {
		report.Contact = draft.Contact
	}

	verr := &domain.ValidationError{}
	if err := s.validate.Struct(report); err != nil {
		var issues *domain.ValidationError
		if !errors.As(domain.ValidationIssues(err), &issues) {
			return nil, err
		}
		verr.Issues = append(verr.Issues, issues.Issues...)
	}

	lat, lng, err := domain.ParseCoordinates(draft.Latitude, draft.Longitude)
	if err != nil {
		var issues *domain.ValidationError
		if !errors.As(err, &issues) {
			return nil, err
		}
		verr.Issues = append(verr.Issues, issues.Issues...)
	}
	report.Latitude, report.Longitude = lat, lng

	if !draft.UseProfileContact {
		if report.Contact.Name == "" {
			verr.Add("contactName", "is required when the profile contact is not used")
		}
		if report.Contact.Phone == "" && report.Contact.Email == "" {
			verr.Add("contactPhone", "a phone or an email is required when the profile contact is not used")
		}
	}

	if err := verr.OrNil(); err != nil {
		return nil, err
	}
	return report, nil
}

func (s *ReportService) GetReport(ctx context.Context, user domain.CurrentUser, reportID uuid.UUID) (*domain.TheftReport, error) {
	report, err := s.reportRepo.GetReportForOwner(ctx, reportID, user.ID)
	if err != nil {
		s.logger.Warn("Failed to get theft report", map[string]interface{}{
			"error":     err.Error(),
			"report_id": reportID,
			"user_id":   user.ID,
		})
		return nil, err
	}
	s.resolveContacts(ctx, user, report)
	return report, nil
}

func (s *ReportService) ListOwnReports(ctx context.Context, user domain.CurrentUser) ([]*domain.TheftReport, error) {
	reports, err := s.reportRepo.GetReportsByUserID(ctx, user.ID)
	if err != nil {
		s.logger.Error("Failed to list theft reports", map[string]interface{}{
			"error":   err.Error(),
			"user_id": user.ID,
		})
		return nil, err
	}
	s.resolveContacts(ctx, user, reports...)
	return reports, nil
}

// ResolveReport closes an active report and marks its bike found.
func (s *ReportService) ResolveReport(ctx context.Context, user domain.CurrentUser, reportID uuid.UUID) (*domain.TheftReport, error) {
	report, err := s.reportRepo.ResolveReport(ctx, reportID, user.ID)
	if err != nil {
		s.logger.Warn("Failed to resolve theft report", map[string]interface{}{
			"error":     err.Error(),
			"report_id": reportID,
			"user_id":   user.ID,
		})
		return nil, err
	}

	cacheDelete(s.cache, s.logger, bikeCacheKey(report.BikeID))

	s.notify(ctx, user.ID, report, "Bike found",
		fmt.Sprintf("Your %s is marked as found. The theft report is closed.", bikeLabel(report.Bike)))

	s.logger.Info("Theft report resolved", map[string]interface{}{
		"report_id": report.ID,
		"bike_id":   report.BikeID,
	})

	s.resolveContacts(ctx, user, report)
	return report, nil
}

// notify is best-effort: the report change is already committed.
func (s *ReportService) notify(ctx context.Context, userID uuid.UUID, report *domain.TheftReport, title, message string) {
	related := &domain.RelatedEntity{Type: domain.EntityReport, ID: report.ID}
	if _, err := s.alerts.Create(ctx, userID, title, message, domain.AlertUpdate, related); err != nil {
		s.logger.Warn("Failed to create report alert", map[string]interface{}{
			"error":     err.Error(),
			"report_id": report.ID,
		})
	}
}

// resolveContacts fills the contact of reports that rely on the owner's
// profile, read at call time.
func (s *ReportService) resolveContacts(ctx context.Context, user domain.CurrentUser, reports ...*domain.TheftReport) {
	var card *domain.Contact
	for _, report := range reports {
		if !report.UseProfileContact {
			continue
		}
		if card == nil {
			owner, err := s.userRepo.GetUserByID(ctx, user.ID)
			if err != nil {
				s.logger.Warn("Failed to load profile contact", map[string]interface{}{
					"error":   err.Error(),
					"user_id": user.ID,
				})
				return
			}
			c := owner.ContactCard()
			card = &c
		}
		report.Contact = *card
	}
}

func bikeLabel(bike *domain.Bike) string {
	if bike == nil {
		return "bike"
	}
	return bike.Brand + " " + bike.Model
}
