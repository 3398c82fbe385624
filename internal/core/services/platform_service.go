package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/agrisage/farm_management_app/internal/core/domain"
	"github.com/agrisage/farm_management_app/internal/core/permissions"
	portsrepo "github.com/agrisage/farm_management_app/internal/core/ports/repositories"
	portssvc "github.com/agrisage/farm_management_app/internal/core/ports/services"
	"github.com/agrisage/farm_management_app/internal/dto"
	"github.com/agrisage/farm_management_app/internal/utils"
)

const defaultAuditLogLimit = 100

// platformService implements portssvc.PlatformSvcFacade. Caller identity is
// established by the super-admin middleware; this service records who did
// what, it does not re-authenticate.
type platformService struct {
	BaseService
	userRepo      portsrepo.UserRepositoryFacade
	workspaceRepo portsrepo.WorkspaceRepositoryFacade
	configRepo    portsrepo.PlatformConfigRepositoryFacade
	auditRepo     portsrepo.AuditLogRepositoryFacade
	activityRepo  portsrepo.WorkspaceActivityRepositoryFacade
}

var _ portssvc.PlatformSvcFacade = (*platformService)(nil)

// PlatformServiceOption configures the platform service.
type PlatformServiceOption func(*platformService)

// WithPlatformAuthorizer sets the workspace authorizer, used only for the
// workspace-facing activity view.
func WithPlatformAuthorizer(authorizer portssvc.WorkspaceAuthorizerSvc) PlatformServiceOption {
	return func(s *platformService) {
		s.WorkspaceAuthorizer = authorizer
	}
}

// NewPlatformService creates a new platform service.
func NewPlatformService(userRepo portsrepo.UserRepositoryFacade, workspaceRepo portsrepo.WorkspaceRepositoryFacade, configRepo portsrepo.PlatformConfigRepositoryFacade, auditRepo portsrepo.AuditLogRepositoryFacade, activityRepo portsrepo.WorkspaceActivityRepositoryFacade, opts ...PlatformServiceOption) portssvc.PlatformSvcFacade {
	svc := &platformService{
		userRepo:      userRepo,
		workspaceRepo: workspaceRepo,
		configRepo:    configRepo,
		auditRepo:     auditRepo,
		activityRepo:  activityRepo,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// ListAllUsers returns every user on the platform.
func (s *platformService) ListAllUsers(ctx context.Context, superAdminID string) ([]domain.User, error) {
	return s.userRepo.ListUsers(ctx)
}

// ListAllWorkspaces returns every workspace on the platform.
func (s *platformService) ListAllWorkspaces(ctx context.Context, superAdminID string) ([]domain.Workspace, error) {
	return s.workspaceRepo.ListAllWorkspaces(ctx)
}

// SuspendUser marks a user suspended. Their tokens stop validating and
// workspace access fails closed until unsuspended.
func (s *platformService) SuspendUser(ctx context.Context, superAdminID, userID, reason string) error {
	return s.setUserStatus(ctx, superAdminID, userID, domain.StatusSuspended, "user.suspended", reason)
}

// UnsuspendUser restores a suspended user.
func (s *platformService) UnsuspendUser(ctx context.Context, superAdminID, userID, reason string) error {
	return s.setUserStatus(ctx, superAdminID, userID, domain.StatusActive, "user.unsuspended", reason)
}

func (s *platformService) setUserStatus(ctx context.Context, superAdminID, userID string, status domain.RecordStatus, action, reason string) error {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return err
	}
	user.Status = status
	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		s.LogError(ctx, err, "Failed to update user status", slog.String("user_id", userID))
		return err
	}
	s.audit(ctx, superAdminID, action, auditDetails(userID, reason))
	return nil
}

// SuspendWorkspace marks a workspace suspended. All feature access within it
// fails closed until unsuspended.
func (s *platformService) SuspendWorkspace(ctx context.Context, superAdminID, workspaceID, reason string) error {
	return s.setWorkspaceStatus(ctx, superAdminID, workspaceID, domain.StatusSuspended, "workspace.suspended", reason)
}

// UnsuspendWorkspace restores a suspended workspace.
func (s *platformService) UnsuspendWorkspace(ctx context.Context, superAdminID, workspaceID, reason string) error {
	return s.setWorkspaceStatus(ctx, superAdminID, workspaceID, domain.StatusActive, "workspace.unsuspended", reason)
}

func (s *platformService) setWorkspaceStatus(ctx context.Context, superAdminID, workspaceID string, status domain.RecordStatus, action, reason string) error {
	workspace, err := s.workspaceRepo.FindWorkspaceByID(ctx, workspaceID)
	if err != nil {
		return err
	}
	workspace.Status = status
	if err := s.workspaceRepo.UpdateWorkspace(ctx, *workspace); err != nil {
		s.LogError(ctx, err, "Failed to update workspace status", slog.String("workspace_id", workspaceID))
		return err
	}
	s.audit(ctx, superAdminID, action, auditDetails(workspaceID, reason))
	return nil
}

// GetPlatformConfig returns the platform config singleton, falling back to
// built-in defaults when nothing has been persisted yet.
func (s *platformService) GetPlatformConfig(ctx context.Context, superAdminID string) (*domain.PlatformConfig, error) {
	config, err := s.configRepo.GetPlatformConfig(ctx)
	if err != nil {
		return nil, err
	}
	if config == nil {
		config = defaultPlatformConfig()
	}
	if config.FeatureFlags == nil {
		config.FeatureFlags = defaultFeatureFlags()
	}
	if config.DefaultPermissions == nil {
		config.DefaultPermissions = permissions.DefaultFeaturePermissions()
	}
	return config, nil
}

// UpdateFeatureFlag toggles a feature platform-wide and persists the config.
func (s *platformService) UpdateFeatureFlag(ctx context.Context, superAdminID string, req dto.UpdateFeatureFlagRequest) (*domain.PlatformConfig, error) {
	config, err := s.GetPlatformConfig(ctx, superAdminID)
	if err != nil {
		return nil, err
	}
	config.FeatureFlags[domain.Feature(req.Feature)] = domain.FeatureFlag{Enabled: req.Enabled}

	if err := s.configRepo.SavePlatformConfig(ctx, *config); err != nil {
		s.LogError(ctx, err, "Failed to save platform config", slog.String("feature", req.Feature))
		return nil, err
	}
	state := "disabled"
	if req.Enabled {
		state = "enabled"
	}
	s.audit(ctx, superAdminID, "platform.feature_flag_updated", auditDetails(req.Feature, state))
	return config, nil
}

// ListAuditLog returns the most recent platform audit entries.
func (s *platformService) ListAuditLog(ctx context.Context, superAdminID string, limit int) ([]domain.AuditLogEntry, error) {
	if limit <= 0 {
		limit = defaultAuditLogLimit
	}
	return s.auditRepo.ListAuditEntries(ctx, limit)
}

// RecordWorkspaceActivity appends a workspace activity entry. Best-effort;
// callers do not fail their own operation if the feed write fails.
func (s *platformService) RecordWorkspaceActivity(ctx context.Context, entry domain.WorkspaceActivityEntry) {
	if entry.EntryID == "" {
		entry.EntryID = utils.NewEntityID("act")
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}
	if err := s.activityRepo.SaveActivityEntry(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to record workspace activity", slog.String("action", entry.Action))
	}
}

// ListWorkspaceActivity returns recent workspace activity. Admin only.
func (s *platformService) ListWorkspaceActivity(ctx context.Context, workspaceID, requestingUserID string, limit int) ([]domain.WorkspaceActivityEntry, error) {
	if err := s.AuthorizeFeature(ctx, requestingUserID, workspaceID, domain.FeatureAdmin); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultAuditLogLimit
	}
	return s.activityRepo.ListActivityByWorkspace(ctx, workspaceID, limit)
}

func (s *platformService) audit(ctx context.Context, superAdminID, action, details string) {
	entry := domain.AuditLogEntry{
		EntryID:      utils.NewEntityID("audit"),
		Timestamp:    time.Now().UTC(),
		SuperAdminID: superAdminID,
		Action:       action,
		Details:      details,
	}
	if err := s.auditRepo.SaveAuditEntry(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to write audit entry", slog.String("action", action))
	}
}

func auditDetails(target, reason string) string {
	if reason == "" {
		return target
	}
	return target + ": " + reason
}

func defaultPlatformConfig() *domain.PlatformConfig {
	return &domain.PlatformConfig{
		FeatureFlags:       defaultFeatureFlags(),
		DefaultPermissions: permissions.DefaultFeaturePermissions(),
	}
}

func defaultFeatureFlags() map[domain.Feature]domain.FeatureFlag {
	flags := make(map[domain.Feature]domain.FeatureFlag, len(domain.AllFeatures))
	for _, feature := range domain.AllFeatures {
		flags[feature] = domain.FeatureFlag{Enabled: true}
	}
	return flags
}
