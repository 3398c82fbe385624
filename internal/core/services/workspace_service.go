package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/agrisage/farm_management_app/internal/apperrors"
	"github.com/agrisage/farm_management_app/internal/core/domain"
	"github.com/agrisage/farm_management_app/internal/core/permissions"
	portsrepo "github.com/agrisage/farm_management_app/internal/core/ports/repositories"
	portssvc "github.com/agrisage/farm_management_app/internal/core/ports/services"
	"github.com/agrisage/farm_management_app/internal/dto"
	"github.com/agrisage/farm_management_app/internal/utils"
)

// workspaceService implements portssvc.WorkspaceSvcFacade. It owns the
// permission model: every other service authorizes through it.
type workspaceService struct {
	BaseService
	workspaceRepo portsrepo.WorkspaceRepositoryFacade
	userRepo      portsrepo.UserRepositoryFacade
}

var _ portssvc.WorkspaceSvcFacade = (*workspaceService)(nil)

// NewWorkspaceService creates a new workspace service.
func NewWorkspaceService(workspaceRepo portsrepo.WorkspaceRepositoryFacade, userRepo portsrepo.UserRepositoryFacade) portssvc.WorkspaceSvcFacade {
	return &workspaceService{
		workspaceRepo: workspaceRepo,
		userRepo:      userRepo,
	}
}

// CreateWorkspace persists a new workspace with default feature permissions
// and the creator as owner.
func (s *workspaceService) CreateWorkspace(ctx context.Context, req dto.CreateWorkspaceRequest, creatorUserID string) (*domain.Workspace, error) {
	now := time.Now().UTC()
	ws := domain.Workspace{
		WorkspaceID: utils.NewEntityID("ws"),
		Name:        req.Name,
		LogoURL:     req.LogoURL,
		Status:      domain.StatusActive,
		Members: map[string]domain.WorkspaceMember{
			creatorUserID: {Role: domain.RoleOwner},
		},
		FeaturePermissions: permissions.DefaultFeaturePermissions(),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.workspaceRepo.SaveWorkspace(ctx, ws); err != nil {
		s.LogError(ctx, err, "Failed to save workspace", slog.String("name", req.Name))
		return nil, err
	}

	s.LogInfo(ctx, "Workspace created", slog.String("workspace_id", ws.WorkspaceID), slog.String("creator", creatorUserID))
	return &ws, nil
}

// GetWorkspaceByID loads a workspace for a member, migrating its feature
// permissions first.
func (s *workspaceService) GetWorkspaceByID(ctx context.Context, workspaceID, requestingUserID string) (*domain.Workspace, error) {
	ws, err := s.loadMigrated(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	if _, ok := ws.MemberRole(requestingUserID); !ok {
		return nil, apperrors.ErrForbidden
	}
	return ws, nil
}

// ListUserWorkspaces retrieves the user's workspaces, each migrated on load.
func (s *workspaceService) ListUserWorkspaces(ctx context.Context, userID string) ([]domain.Workspace, error) {
	list, err := s.workspaceRepo.ListWorkspacesByUserID(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list workspaces", slog.String("user_id", userID))
		return nil, err
	}
	for i := range list {
		list[i] = s.migrate(ctx, list[i])
	}
	return list, nil
}

// EnabledFeaturesForUser computes the ordered feature list visible to the
// user.
func (s *workspaceService) EnabledFeaturesForUser(ctx context.Context, workspaceID, userID string) ([]domain.Feature, error) {
	ws, err := s.loadMigrated(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	return permissions.EnabledFeatures(*ws, userID), nil
}

// UpdateWorkspace updates workspace settings. Admin feature access required.
func (s *workspaceService) UpdateWorkspace(ctx context.Context, workspaceID string, req dto.UpdateWorkspaceRequest, requestingUserID string) (*domain.Workspace, error) {
	ws, err := s.authorizeAdmin(ctx, workspaceID, requestingUserID)
	if err != nil {
		return nil, err
	}

	updated := ws.Clone()
	if req.Name != nil {
		updated.Name = *req.Name
	}
	if req.LogoURL != nil {
		updated.LogoURL = *req.LogoURL
	}
	updated.LastUpdatedAt = time.Now().UTC()
	updated.LastUpdatedBy = requestingUserID

	if err := s.workspaceRepo.UpdateWorkspace(ctx, updated); err != nil {
		s.LogError(ctx, err, "Failed to update workspace", slog.String("workspace_id", workspaceID))
		return nil, err
	}
	return &updated, nil
}

// AddMember adds a user to the workspace. Admin feature access required.
func (s *workspaceService) AddMember(ctx context.Context, workspaceID string, req dto.AddMemberRequest, requestingUserID string) error {
	if _, err := s.authorizeAdmin(ctx, workspaceID, requestingUserID); err != nil {
		return err
	}

	role := domain.Role(req.Role)
	if !domain.IsValidRole(role) {
		return apperrors.NewValidationFailedError("invalid role: " + req.Role)
	}
	if _, err := s.userRepo.FindUserByID(ctx, req.UserID); err != nil {
		return err
	}

	if err := s.workspaceRepo.UpsertMember(ctx, workspaceID, req.UserID, role); err != nil {
		s.LogError(ctx, err, "Failed to add member", slog.String("workspace_id", workspaceID), slog.String("target", req.UserID))
		return err
	}
	s.LogInfo(ctx, "Member added", slog.String("workspace_id", workspaceID), slog.String("target", req.UserID), slog.String("role", req.Role))
	return nil
}

// JoinWorkspace adds the requesting user to the workspace with the member
// role.
func (s *workspaceService) JoinWorkspace(ctx context.Context, workspaceID, userID string) (*domain.Workspace, error) {
	ws, err := s.loadMigrated(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	if ws.IsSuspended() {
		return nil, apperrors.ErrSuspended
	}
	if _, already := ws.MemberRole(userID); already {
		return nil, apperrors.ErrDuplicate
	}

	if err := s.workspaceRepo.UpsertMember(ctx, workspaceID, userID, domain.RoleMember); err != nil {
		s.LogError(ctx, err, "Failed to join workspace", slog.String("workspace_id", workspaceID), slog.String("user_id", userID))
		return nil, err
	}

	joined := ws.Clone()
	joined.Members[userID] = domain.WorkspaceMember{Role: domain.RoleMember}
	s.LogInfo(ctx, "Workspace joined", slog.String("workspace_id", workspaceID), slog.String("user_id", userID))
	return &joined, nil
}

// UpdateMemberRole changes a member's role. Demoting the sole owner fails
// with ErrLastOwnerDemotion.
func (s *workspaceService) UpdateMemberRole(ctx context.Context, workspaceID, targetUserID string, newRole domain.Role, requestingUserID string) error {
	ws, err := s.authorizeAdmin(ctx, workspaceID, requestingUserID)
	if err != nil {
		return err
	}
	if !domain.IsValidRole(newRole) {
		return apperrors.NewValidationFailedError("invalid role: " + string(newRole))
	}

	updated, err := permissions.UpdateMemberRole(*ws, targetUserID, newRole)
	if err != nil {
		return err
	}
	if err := s.workspaceRepo.UpsertMember(ctx, workspaceID, targetUserID, updated.Members[targetUserID].Role); err != nil {
		s.LogError(ctx, err, "Failed to update member role", slog.String("workspace_id", workspaceID), slog.String("target", targetUserID))
		return err
	}
	s.LogInfo(ctx, "Member role updated", slog.String("workspace_id", workspaceID), slog.String("target", targetUserID), slog.String("role", string(newRole)))
	return nil
}

// RemoveMember removes a user from the workspace. Members may remove
// themselves (leave); removing anyone else requires Admin feature access.
// Removing the sole owner always fails with ErrLastOwnerRemoval.
func (s *workspaceService) RemoveMember(ctx context.Context, workspaceID, targetUserID, requestingUserID string) error {
	var ws *domain.Workspace
	var err error
	if targetUserID == requestingUserID {
		ws, err = s.loadMigrated(ctx, workspaceID)
	} else {
		ws, err = s.authorizeAdmin(ctx, workspaceID, requestingUserID)
	}
	if err != nil {
		return err
	}

	if _, err := permissions.RemoveMember(*ws, targetUserID); err != nil {
		return err
	}
	if err := s.workspaceRepo.RemoveMember(ctx, workspaceID, targetUserID); err != nil {
		s.LogError(ctx, err, "Failed to remove member", slog.String("workspace_id", workspaceID), slog.String("target", targetUserID))
		return err
	}
	s.LogInfo(ctx, "Member removed", slog.String("workspace_id", workspaceID), slog.String("target", targetUserID))
	return nil
}

// UpdateFeaturePermission replaces one feature's permission entry. Admin
// feature access required.
func (s *workspaceService) UpdateFeaturePermission(ctx context.Context, workspaceID string, feature domain.Feature, req dto.UpdateFeaturePermissionRequest, requestingUserID string) (*domain.Workspace, error) {
	ws, err := s.authorizeAdmin(ctx, workspaceID, requestingUserID)
	if err != nil {
		return nil, err
	}
	if !domain.IsValidFeature(feature) {
		return nil, apperrors.NewValidationFailedError("invalid feature: " + string(feature))
	}

	roles := make([]domain.Role, 0, len(req.AllowedRoles))
	for _, raw := range req.AllowedRoles {
		role := domain.Role(raw)
		if !domain.IsValidRole(role) {
			return nil, apperrors.NewValidationFailedError("invalid role: " + raw)
		}
		roles = append(roles, role)
	}

	updated := permissions.UpdateFeaturePermission(*ws, feature, domain.FeaturePermission{
		Enabled:      req.Enabled,
		AllowedRoles: roles,
	})
	updated.LastUpdatedAt = time.Now().UTC()
	updated.LastUpdatedBy = requestingUserID

	if err := s.workspaceRepo.UpdateWorkspace(ctx, updated); err != nil {
		s.LogError(ctx, err, "Failed to update feature permission", slog.String("workspace_id", workspaceID), slog.String("feature", string(feature)))
		return nil, err
	}
	return &updated, nil
}

// AuthorizeFeatureAccess checks that the user may access a feature in the
// workspace. Suspended workspaces fail closed for everyone.
func (s *workspaceService) AuthorizeFeatureAccess(ctx context.Context, userID, workspaceID string, feature domain.Feature) error {
	ws, err := s.loadMigrated(ctx, workspaceID)
	if err != nil {
		return err
	}
	if ws.IsSuspended() {
		return apperrors.ErrSuspended
	}
	if !permissions.CanAccess(*ws, userID, feature) {
		s.LogDebug(ctx, "Feature access denied",
			slog.String("user_id", userID),
			slog.String("workspace_id", workspaceID),
			slog.String("feature", string(feature)))
		return apperrors.ErrForbidden
	}
	return nil
}

// loadMigrated fetches a workspace and runs feature-permission migration,
// persisting any backfill.
func (s *workspaceService) loadMigrated(ctx context.Context, workspaceID string) (*domain.Workspace, error) {
	ws, err := s.workspaceRepo.FindWorkspaceByID(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	migrated := s.migrate(ctx, *ws)
	return &migrated, nil
}

// migrate backfills missing feature permissions and persists the result.
// Persistence failure is non-fatal: the migrated copy still serves the
// request and the next load retries the write.
func (s *workspaceService) migrate(ctx context.Context, ws domain.Workspace) domain.Workspace {
	migrated, changed := permissions.MigrateFeaturePermissions(ws)
	if !changed {
		return ws
	}
	if err := s.workspaceRepo.UpdateWorkspace(ctx, migrated); err != nil {
		s.LogError(ctx, err, "Failed to persist feature permission migration", slog.String("workspace_id", ws.WorkspaceID))
	} else {
		s.LogInfo(ctx, "Feature permissions migrated", slog.String("workspace_id", ws.WorkspaceID))
	}
	return migrated
}

// authorizeAdmin loads the workspace and requires Admin feature access for
// the requesting user.
func (s *workspaceService) authorizeAdmin(ctx context.Context, workspaceID, requestingUserID string) (*domain.Workspace, error) {
	ws, err := s.loadMigrated(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	if ws.IsSuspended() {
		return nil, apperrors.ErrSuspended
	}
	if !permissions.CanAccess(*ws, requestingUserID, domain.FeatureAdmin) {
		return nil, apperrors.ErrForbidden
	}
	return ws, nil
}
