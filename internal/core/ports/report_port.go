package ports

import (
	"context"

	"github.com/sm8ta/webike_theft_registry/internal/core/domain"

	"github.com/google/uuid"
)

type ReportRepository interface {
	// FileReport inserts an active report and marks the bike stolen in one
	// transaction. The bike must belong to report.UserID.
	FileReport(ctx context.Context, report *domain.TheftReport) (*domain.TheftReport, error)
	GetReportForOwner(ctx context.Context, reportID, ownerID uuid.UUID) (*domain.TheftReport, error)
	GetReportsByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.TheftReport, error)
	// ResolveReport closes an active report and marks its bike found in one
	// transaction.
	ResolveReport(ctx context.Context, reportID, ownerID uuid.UUID) (*domain.TheftReport, error)
	CountReportsByStatus(ctx context.Context, userID uuid.UUID, status domain.ReportStatus) (int, error)
}

type ReportService interface {
	FileReport(ctx context.Context, user domain.CurrentUser, draft domain.ReportDraft) (*domain.TheftReport, error)
	GetReport(ctx context.Context, user domain.CurrentUser, reportID uuid.UUID) (*domain.TheftReport, error)
	ListOwnReports(ctx context.Context, user domain.CurrentUser) ([]*domain.TheftReport, error)
	ResolveReport(ctx context.Context, user domain.CurrentUser, reportID uuid.UUID) (*domain.TheftReport, error)
}
