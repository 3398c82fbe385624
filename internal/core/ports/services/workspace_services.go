package services

import (
	"context"

	"github.com/agrisage/farm_management_app/internal/core/domain"
	"github.com/agrisage/farm_management_app/internal/dto"
)

// WorkspaceReaderSvc defines read operations for workspace data
type WorkspaceReaderSvc interface {
	// GetWorkspaceByID retrieves a workspace the requesting user belongs to.
	// The loaded record is run through feature-permission migration first.
	GetWorkspaceByID(ctx context.Context, workspaceID, requestingUserID string) (*domain.Workspace, error)

	// ListUserWorkspaces retrieves all workspaces the user is a member of,
	// each migrated on load.
	ListUserWorkspaces(ctx context.Context, userID string) ([]domain.Workspace, error)

	// EnabledFeaturesForUser computes the ordered feature list visible to the
	// user in a workspace.
	EnabledFeaturesForUser(ctx context.Context, workspaceID, userID string) ([]domain.Feature, error)
}

// WorkspaceWriterSvc defines write operations for workspace data
type WorkspaceWriterSvc interface {
	// CreateWorkspace persists a new workspace with default feature
	// permissions and the creator as owner.
	CreateWorkspace(ctx context.Context, req dto.CreateWorkspaceRequest, creatorUserID string) (*domain.Workspace, error)

	// UpdateWorkspace updates workspace settings (name, logo).
	UpdateWorkspace(ctx context.Context, workspaceID string, req dto.UpdateWorkspaceRequest, requestingUserID string) (*domain.Workspace, error)
}

// WorkspaceMembershipSvc defines operations for managing workspace membership
type WorkspaceMembershipSvc interface {
	// AddMember adds a user to a workspace with a specific role.
	AddMember(ctx context.Context, workspaceID string, req dto.AddMemberRequest, requestingUserID string) error

	// JoinWorkspace adds the requesting user to a workspace with the member
	// role. Fails with ErrDuplicate if they already belong to it.
	JoinWorkspace(ctx context.Context, workspaceID, userID string) (*domain.Workspace, error)

	// UpdateMemberRole changes a member's role. Demoting the sole owner fails
	// with ErrLastOwnerDemotion.
	UpdateMemberRole(ctx context.Context, workspaceID, targetUserID string, newRole domain.Role, requestingUserID string) error

	// RemoveMember removes a user from a workspace. Removing the sole owner
	// fails with ErrLastOwnerRemoval.
	RemoveMember(ctx context.Context, workspaceID, targetUserID, requestingUserID string) error
}

// WorkspacePermissionsSvc defines operations for feature permission management
type WorkspacePermissionsSvc interface {
	// UpdateFeaturePermission replaces one feature's permission entry.
	UpdateFeaturePermission(ctx context.Context, workspaceID string, feature domain.Feature, req dto.UpdateFeaturePermissionRequest, requestingUserID string) (*domain.Workspace, error)
}

// WorkspaceAuthorizerSvc defines operations for workspace authorization
type WorkspaceAuthorizerSvc interface {
	// AuthorizeFeatureAccess checks that the user may access a feature in the
	// workspace, returning ErrForbidden otherwise.
	AuthorizeFeatureAccess(ctx context.Context, userID, workspaceID string, feature domain.Feature) error
}

// WorkspaceSvcFacade combines all workspace-related service interfaces
type WorkspaceSvcFacade interface {
	WorkspaceReaderSvc
	WorkspaceWriterSvc
	WorkspaceMembershipSvc
	WorkspacePermissionsSvc
	WorkspaceAuthorizerSvc
}
