package permissions

import (
	"github.com/agrisage/farm_management_app/internal/core/domain"
)

// DefaultFeaturePermission returns the permission stamped on a feature when
// a workspace is created or migrated. Collaborative and reference features
// are open to every role; operational features get a named role subset.
func DefaultFeaturePermission(feature domain.Feature) domain.FeaturePermission {
	switch feature {
	case domain.FeatureOperations:
		return allow(domain.RoleOwner, domain.RoleFarmManager, domain.RoleFieldManager, domain.RoleFieldOfficer)
	case domain.FeatureFinancials:
		return allow(domain.RoleOwner, domain.RoleAccountant, domain.RoleFarmManager, domain.RoleOfficeManager)
	case domain.FeatureHR:
		return allow(domain.RoleOwner, domain.RolePeopleHR, domain.RoleFarmManager, domain.RoleOfficeManager)
	case domain.FeatureInventory, domain.FeaturePlotsSeasons, domain.FeatureHarvestSales:
		return allow(domain.RoleOwner, domain.RoleFarmManager, domain.RoleFieldManager)
	case domain.FeatureAEO:
		return allow(domain.RoleOwner, domain.RoleAEO)
	case domain.FeatureAIInsights:
		return allow(domain.RoleOwner, domain.RoleFarmManager)
	case domain.FeatureAdmin:
		return allow(domain.RoleOwner)
	default:
		// Dashboard, Suppliers, How To, FAQ
		return allow(domain.AllRoles...)
	}
}

// DefaultFeaturePermissions builds the full permission map for a new
// workspace.
func DefaultFeaturePermissions() map[domain.Feature]domain.FeaturePermission {
	perms := make(map[domain.Feature]domain.FeaturePermission, len(domain.AllFeatures))
	for _, feature := range domain.AllFeatures {
		perms[feature] = DefaultFeaturePermission(feature)
	}
	return perms
}

// MigrateFeaturePermissions backfills permission entries for features that
// postdate the workspace record, so older workspaces gain newly introduced
// features with sane defaults. Existing entries are never touched, which
// makes the migration idempotent. The returned bool signals the caller to
// persist the migrated record.
func MigrateFeaturePermissions(ws domain.Workspace) (domain.Workspace, bool) {
	missing := make([]domain.Feature, 0)
	for _, feature := range domain.AllFeatures {
		if _, exists := ws.FeaturePermissions[feature]; !exists {
			missing = append(missing, feature)
		}
	}
	if len(missing) == 0 {
		return ws, false
	}

	out := ws.Clone()
	for _, feature := range missing {
		out.FeaturePermissions[feature] = DefaultFeaturePermission(feature)
	}
	return out, true
}

func allow(roles ...domain.Role) domain.FeaturePermission {
	allowed := make([]domain.Role, len(roles))
	copy(allowed, roles)
	return domain.FeaturePermission{Enabled: true, AllowedRoles: allowed}
}
