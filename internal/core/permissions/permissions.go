// Package permissions computes feature visibility for workspace members and
// applies membership mutations. Every function is a pure computation over a
// workspace snapshot: inputs are never mutated, results are new values the
// caller persists (or discards) as a whole.
package permissions

import (
	"github.com/agrisage/farm_management_app/internal/apperrors"
	"github.com/agrisage/farm_management_app/internal/core/domain"
)

// EnabledFeatures returns the ordered list of features userID may access in
// the workspace. Features keep the order of domain.AllFeatures. Non-members
// get an empty list. Owners always get Admin, even when the stored Admin
// permission excludes them: owners must never be locked out of workspace
// administration by misconfiguration.
func EnabledFeatures(ws domain.Workspace, userID string) []domain.Feature {
	role, ok := ws.MemberRole(userID)
	if !ok {
		return []domain.Feature{}
	}

	features := make([]domain.Feature, 0, len(domain.AllFeatures))
	adminIncluded := false
	for _, feature := range domain.AllFeatures {
		perm, exists := ws.FeaturePermissions[feature]
		if !exists || !perm.Enabled || !perm.Allows(role) {
			continue
		}
		features = append(features, feature)
		if feature == domain.FeatureAdmin {
			adminIncluded = true
		}
	}

	if role == domain.RoleOwner && !adminIncluded {
		features = append(features, domain.FeatureAdmin)
	}
	return features
}

// CanAccess reports whether userID may access a single feature, applying the
// same owner override as EnabledFeatures.
func CanAccess(ws domain.Workspace, userID string, feature domain.Feature) bool {
	role, ok := ws.MemberRole(userID)
	if !ok {
		return false
	}
	if role == domain.RoleOwner && feature == domain.FeatureAdmin {
		return true
	}
	perm, exists := ws.FeaturePermissions[feature]
	return exists && perm.Enabled && perm.Allows(role)
}

// UpdateFeaturePermission returns a workspace with the feature's permission
// replaced. AllowedRoles may be empty: that hides the feature from everyone
// except the Admin owner override.
func UpdateFeaturePermission(ws domain.Workspace, feature domain.Feature, perm domain.FeaturePermission) domain.Workspace {
	out := ws.Clone()
	out.FeaturePermissions[feature] = perm
	return out
}

// UpdateMemberRole returns a workspace with the member's role replaced.
// Fails with ErrNotAMember when userID is not a member, and with
// ErrLastOwnerDemotion when userID is the sole owner and newRole is not
// owner. The input workspace is untouched on failure.
func UpdateMemberRole(ws domain.Workspace, userID string, newRole domain.Role) (domain.Workspace, error) {
	if _, ok := ws.MemberRole(userID); !ok {
		return domain.Workspace{}, apperrors.ErrNotAMember
	}
	if newRole != domain.RoleOwner && isSoleOwner(ws, userID) {
		return domain.Workspace{}, apperrors.ErrLastOwnerDemotion
	}
	out := ws.Clone()
	out.Members[userID] = domain.WorkspaceMember{Role: newRole}
	return out, nil
}

// RemoveMember returns a workspace without the member. Removing the sole
// owner fails with ErrLastOwnerRemoval: a workspace must keep at least one
// owner at all times. Removing a non-member is a no-op.
func RemoveMember(ws domain.Workspace, userID string) (domain.Workspace, error) {
	if isSoleOwner(ws, userID) {
		return domain.Workspace{}, apperrors.ErrLastOwnerRemoval
	}
	out := ws.Clone()
	delete(out.Members, userID)
	return out, nil
}

// AddMember returns a workspace with the user added (or their role replaced
// if already a member).
func AddMember(ws domain.Workspace, userID string, role domain.Role) domain.Workspace {
	out := ws.Clone()
	out.Members[userID] = domain.WorkspaceMember{Role: role}
	return out
}

func isSoleOwner(ws domain.Workspace, userID string) bool {
	owners := ws.OwnerIDs()
	return len(owners) == 1 && owners[0] == userID
}
