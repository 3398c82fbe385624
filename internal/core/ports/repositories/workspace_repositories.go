package repositories

import (
	"context"

	"github.com/agrisage/farm_management_app/internal/core/domain"
)

// WorkspaceReader defines read operations for workspace data
type WorkspaceReader interface {
	// FindWorkspaceByID retrieves a workspace aggregate, members and feature
	// permissions included.
	FindWorkspaceByID(ctx context.Context, workspaceID string) (*domain.Workspace, error)

	// ListWorkspacesByUserID retrieves all workspaces a user is a member of.
	ListWorkspacesByUserID(ctx context.Context, userID string) ([]domain.Workspace, error)

	// ListAllWorkspaces retrieves every workspace on the platform. Super-admin
	// console only.
	ListAllWorkspaces(ctx context.Context) ([]domain.Workspace, error)
}

// WorkspaceWriter defines write operations for workspace data
type WorkspaceWriter interface {
	// SaveWorkspace persists a new workspace with its initial membership.
	SaveWorkspace(ctx context.Context, workspace domain.Workspace) error

	// UpdateWorkspace persists changes to name, logo, status and feature
	// permissions.
	UpdateWorkspace(ctx context.Context, workspace domain.Workspace) error
}

// WorkspaceMembershipManager defines operations for managing workspace memberships
type WorkspaceMembershipManager interface {
	// UpsertMember adds a user to a workspace or replaces their role.
	UpsertMember(ctx context.Context, workspaceID, userID string, role domain.Role) error

	// RemoveMember deletes a user's membership.
	RemoveMember(ctx context.Context, workspaceID, userID string) error

	// FindMemberRole retrieves the role of a user in a workspace.
	FindMemberRole(ctx context.Context, workspaceID, userID string) (*domain.Role, error)
}

// WorkspaceRepositoryFacade combines all workspace-related repository interfaces
type WorkspaceRepositoryFacade interface {
	WorkspaceReader
	WorkspaceWriter
	WorkspaceMembershipManager
}
