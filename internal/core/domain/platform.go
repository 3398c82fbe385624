package domain

import "time"

// FeatureFlag toggles a feature platform-wide, independent of workspace
// configuration.
type FeatureFlag struct {
	Enabled bool `json:"enabled"`
}

// PlatformConfig is the singleton configuration maintained by platform
// operators: global feature flags and the default permission set stamped on
// new workspaces.
type PlatformConfig struct {
	FeatureFlags       map[Feature]FeatureFlag       `json:"featureFlags"`
	DefaultPermissions map[Feature]FeaturePermission `json:"defaultPermissions"`
}

// AuditLogEntry records one action taken by a platform operator.
type AuditLogEntry struct {
	EntryID      string    `json:"entryID"` // Primary Key
	Timestamp    time.Time `json:"timestamp"`
	SuperAdminID string    `json:"superAdminId"`
	Action       string    `json:"action"`
	Details      string    `json:"details"`
}

// WorkspaceActivityEntry records a notable change within one workspace
// (member management, supplier/customer edits, sales), for display in the
// workspace admin view.
type WorkspaceActivityEntry struct {
	EntryID     string    `json:"entryID"` // Primary Key
	WorkspaceID string    `json:"workspaceID"`
	Timestamp   time.Time `json:"timestamp"`
	ActorID     string    `json:"actorId"`
	Action      string    `json:"action"`
	Details     string    `json:"details"`
}
