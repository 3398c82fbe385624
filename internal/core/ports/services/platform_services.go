package services

import (
	"context"

	"github.com/agrisage/farm_management_app/internal/core/domain"
	"github.com/agrisage/farm_management_app/internal/dto"
)

// PlatformSvcFacade is the super-admin console: suspend/unsuspend users and
// workspaces, platform config, and the audit trail. Every mutation writes an
// audit entry.
type PlatformSvcFacade interface {
	ListAllUsers(ctx context.Context, superAdminID string) ([]domain.User, error)
	ListAllWorkspaces(ctx context.Context, superAdminID string) ([]domain.Workspace, error)

	SuspendUser(ctx context.Context, superAdminID, userID, reason string) error
	UnsuspendUser(ctx context.Context, superAdminID, userID, reason string) error
	SuspendWorkspace(ctx context.Context, superAdminID, workspaceID, reason string) error
	UnsuspendWorkspace(ctx context.Context, superAdminID, workspaceID, reason string) error

	GetPlatformConfig(ctx context.Context, superAdminID string) (*domain.PlatformConfig, error)
	UpdateFeatureFlag(ctx context.Context, superAdminID string, req dto.UpdateFeatureFlagRequest) (*domain.PlatformConfig, error)

	ListAuditLog(ctx context.Context, superAdminID string, limit int) ([]domain.AuditLogEntry, error)

	// RecordWorkspaceActivity appends a workspace activity entry; called by
	// other services after notable mutations.
	RecordWorkspaceActivity(ctx context.Context, entry domain.WorkspaceActivityEntry)

	// ListWorkspaceActivity returns recent activity for the workspace admin
	// view.
	ListWorkspaceActivity(ctx context.Context, workspaceID, requestingUserID string, limit int) ([]domain.WorkspaceActivityEntry, error)
}
