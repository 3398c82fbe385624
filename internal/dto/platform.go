package dto

import (
	"github.com/agrisage/farm_management_app/internal/core/domain"
)

// SuspendRequest carries an optional reason for a suspend/unsuspend action;
// the reason lands in the platform audit log.
type SuspendRequest struct {
	Reason string `json:"reason,omitempty" binding:"omitempty,max=500"`
}

// UpdateFeatureFlagRequest toggles a feature platform-wide.
type UpdateFeatureFlagRequest struct {
	Feature string `json:"feature" binding:"required,farmfeature"`
	Enabled bool   `json:"enabled"`
}

// PlatformConfigResponse is the platform config singleton.
type PlatformConfigResponse struct {
	FeatureFlags       map[string]bool                 `json:"featureFlags"`
	DefaultPermissions map[string]FeaturePermissionDTO `json:"defaultPermissions"`
}

// ToPlatformConfigResponse converts domain.PlatformConfig to DTO.
func ToPlatformConfigResponse(c *domain.PlatformConfig) PlatformConfigResponse {
	flags := make(map[string]bool, len(c.FeatureFlags))
	for feature, flag := range c.FeatureFlags {
		flags[string(feature)] = flag.Enabled
	}
	perms := make(map[string]FeaturePermissionDTO, len(c.DefaultPermissions))
	for feature, perm := range c.DefaultPermissions {
		roles := make([]string, len(perm.AllowedRoles))
		for i, role := range perm.AllowedRoles {
			roles[i] = string(role)
		}
		perms[string(feature)] = FeaturePermissionDTO{Enabled: perm.Enabled, AllowedRoles: roles}
	}
	return PlatformConfigResponse{FeatureFlags: flags, DefaultPermissions: perms}
}

// AuditLogResponse wraps platform audit entries.
type AuditLogResponse struct {
	Entries []domain.AuditLogEntry `json:"entries"`
}

// WorkspaceActivityResponse wraps workspace activity entries.
type WorkspaceActivityResponse struct {
	Entries []domain.WorkspaceActivityEntry `json:"entries"`
}
