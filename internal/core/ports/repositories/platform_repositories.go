package repositories

import (
	"context"

	"github.com/agrisage/farm_management_app/internal/core/domain"
)

// AuditLogRepositoryFacade persists super-admin audit entries.
type AuditLogRepositoryFacade interface {
	SaveAuditEntry(ctx context.Context, entry domain.AuditLogEntry) error
	ListAuditEntries(ctx context.Context, limit int) ([]domain.AuditLogEntry, error)
}

// PlatformConfigRepositoryFacade persists the platform-wide config singleton.
type PlatformConfigRepositoryFacade interface {
	GetPlatformConfig(ctx context.Context) (*domain.PlatformConfig, error)
	SavePlatformConfig(ctx context.Context, config domain.PlatformConfig) error
}

// WorkspaceActivityRepositoryFacade persists per-workspace activity entries.
type WorkspaceActivityRepositoryFacade interface {
	SaveActivityEntry(ctx context.Context, entry domain.WorkspaceActivityEntry) error
	ListActivityByWorkspace(ctx context.Context, workspaceID string, limit int) ([]domain.WorkspaceActivityEntry, error)
}
