package domain

// Role is a named permission level held by a user within one workspace.
// The set is closed and known at build time.
type Role string

const (
	RoleOwner         Role = "owner"
	RoleMember        Role = "member"
	RoleOfficeManager Role = "Office Manager"
	RoleAccountant    Role = "Accountant"
	RolePeopleHR      Role = "PeopleHR"
	RoleAEO           Role = "Agr_iEx_Off"
	RoleFieldManager  Role = "Field Manager"
	RoleFarmManager   Role = "Farm Manager"
	RoleFieldOfficer  Role = "Field Officer"
)

// AllRoles lists every assignable role.
var AllRoles = []Role{
	RoleOwner,
	RoleMember,
	RoleOfficeManager,
	RoleAccountant,
	RolePeopleHR,
	RoleAEO,
	RoleFieldManager,
	RoleFarmManager,
	RoleFieldOfficer,
}

// IsValidRole reports whether r belongs to the closed role set.
func IsValidRole(r Role) bool {
	for _, known := range AllRoles {
		if r == known {
			return true
		}
	}
	return false
}

// Feature identifies a gated functional module of the application.
type Feature string

const (
	FeatureDashboard     Feature = "Dashboard"
	FeatureOperations    Feature = "Operations"
	FeatureFinancials    Feature = "Financials"
	FeatureHR            Feature = "HR"
	FeatureInventory     Feature = "Inventory"
	FeaturePlotsSeasons  Feature = "Plots & Seasons"
	FeatureAEO           Feature = "AEO"
	FeatureAIInsights    Feature = "AI Insights"
	FeatureAdmin         Feature = "Admin"
	FeatureSuppliers     Feature = "Suppliers"
	FeatureHarvestSales  Feature = "Harvest & Sales"
	FeatureHowTo         Feature = "How To"
	FeatureFAQ           Feature = "FAQ"
)

// AllFeatures lists every feature in its declared display order. Feature
// visibility results preserve this order.
var AllFeatures = []Feature{
	FeatureDashboard,
	FeatureOperations,
	FeatureFinancials,
	FeatureHR,
	FeatureInventory,
	FeaturePlotsSeasons,
	FeatureAEO,
	FeatureAIInsights,
	FeatureAdmin,
	FeatureSuppliers,
	FeatureHarvestSales,
	FeatureHowTo,
	FeatureFAQ,
}

// IsValidFeature reports whether f belongs to the closed feature set.
func IsValidFeature(f Feature) bool {
	for _, known := range AllFeatures {
		if f == known {
			return true
		}
	}
	return false
}

// FeaturePermission controls who can see one feature within a workspace.
// A feature is visible to a member iff Enabled and the member's role is in
// AllowedRoles. Owners always see Admin regardless of the stored permission.
type FeaturePermission struct {
	Enabled      bool   `json:"enabled"`
	AllowedRoles []Role `json:"allowedRoles"`
}

// Allows reports whether the permission's role list contains r.
func (p FeaturePermission) Allows(r Role) bool {
	for _, allowed := range p.AllowedRoles {
		if allowed == r {
			return true
		}
	}
	return false
}

// WorkspaceMember records one user's role within a workspace.
type WorkspaceMember struct {
	Role Role `json:"role"`
}

// Workspace is a tenant boundary: one farm organization's isolated data and
// membership set.
type Workspace struct {
	WorkspaceID        string                        `json:"workspaceID"` // Primary Key
	Name               string                        `json:"name"`
	Members            map[string]WorkspaceMember    `json:"members"`            // keyed by UserID
	FeaturePermissions map[Feature]FeaturePermission `json:"featurePermissions"` // keyed by Feature
	Status             RecordStatus                  `json:"status"`
	LogoURL            string                        `json:"logoUrl,omitempty"`
	AuditFields
}

// IsSuspended reports whether a platform operator has suspended this workspace.
func (w Workspace) IsSuspended() bool {
	return w.Status == StatusSuspended
}

// MemberRole returns the role of userID in this workspace, and whether the
// user is a member at all.
func (w Workspace) MemberRole(userID string) (Role, bool) {
	m, ok := w.Members[userID]
	return m.Role, ok
}

// OwnerIDs returns the user ids of every member holding the owner role.
func (w Workspace) OwnerIDs() []string {
	var owners []string
	for userID, m := range w.Members {
		if m.Role == RoleOwner {
			owners = append(owners, userID)
		}
	}
	return owners
}

// Clone returns a deep copy of the workspace. Mutating operations in the
// permissions package work on copies so callers keep a consistent snapshot.
func (w Workspace) Clone() Workspace {
	out := w
	out.Members = make(map[string]WorkspaceMember, len(w.Members))
	for id, m := range w.Members {
		out.Members[id] = m
	}
	out.FeaturePermissions = make(map[Feature]FeaturePermission, len(w.FeaturePermissions))
	for f, p := range w.FeaturePermissions {
		roles := make([]Role, len(p.AllowedRoles))
		copy(roles, p.AllowedRoles)
		out.FeaturePermissions[f] = FeaturePermission{Enabled: p.Enabled, AllowedRoles: roles}
	}
	return out
}
