package dto

import (
	"time"

	"github.com/agrisage/farm_management_app/internal/core/domain"
)

// --- Workspace DTOs ---

// CreateWorkspaceRequest defines data for creating a new workspace.
type CreateWorkspaceRequest struct {
	Name    string `json:"name" binding:"required,max=120"`
	LogoURL string `json:"logoURL,omitempty" binding:"omitempty,url"`
}

// UpdateWorkspaceRequest defines data for updating workspace settings.
type UpdateWorkspaceRequest struct {
	Name    *string `json:"name,omitempty" binding:"omitempty,max=120"`
	LogoURL *string `json:"logoURL,omitempty" binding:"omitempty,url"`
}

// FeaturePermissionDTO mirrors a feature's permission entry.
type FeaturePermissionDTO struct {
	Enabled      bool     `json:"enabled"`
	AllowedRoles []string `json:"allowedRoles"`
}

// MemberResponse describes one workspace member.
type MemberResponse struct {
	UserID string `json:"userID"`
	Role   string `json:"role"`
}

// WorkspaceResponse defines data returned for a workspace.
type WorkspaceResponse struct {
	WorkspaceID        string                          `json:"workspaceID"`
	Name               string                          `json:"name"`
	LogoURL            string                          `json:"logoURL,omitempty"`
	Status             string                          `json:"status"`
	Members            []MemberResponse                `json:"members"`
	FeaturePermissions map[string]FeaturePermissionDTO `json:"featurePermissions"`
	EnabledFeatures    []string                        `json:"enabledFeatures,omitempty"`
	CreatedAt          time.Time                       `json:"createdAt"`
	CreatedBy          string                          `json:"createdBy"`
	LastUpdatedAt      time.Time                       `json:"lastUpdatedAt"`
	LastUpdatedBy      string                          `json:"lastUpdatedBy"`
}

// ToWorkspaceResponse converts domain.Workspace to DTO. enabledFeatures is
// the caller-specific feature list; pass nil to omit it.
func ToWorkspaceResponse(w *domain.Workspace, enabledFeatures []domain.Feature) WorkspaceResponse {
	members := make([]MemberResponse, 0, len(w.Members))
	for userID, member := range w.Members {
		members = append(members, MemberResponse{UserID: userID, Role: string(member.Role)})
	}

	perms := make(map[string]FeaturePermissionDTO, len(w.FeaturePermissions))
	for feature, perm := range w.FeaturePermissions {
		roles := make([]string, len(perm.AllowedRoles))
		for i, role := range perm.AllowedRoles {
			roles[i] = string(role)
		}
		perms[string(feature)] = FeaturePermissionDTO{Enabled: perm.Enabled, AllowedRoles: roles}
	}

	var features []string
	if enabledFeatures != nil {
		features = make([]string, len(enabledFeatures))
		for i, f := range enabledFeatures {
			features[i] = string(f)
		}
	}

	return WorkspaceResponse{
		WorkspaceID:        w.WorkspaceID,
		Name:               w.Name,
		LogoURL:            w.LogoURL,
		Status:             string(w.Status),
		Members:            members,
		FeaturePermissions: perms,
		EnabledFeatures:    features,
		CreatedAt:          w.CreatedAt,
		CreatedBy:          w.CreatedBy,
		LastUpdatedAt:      w.LastUpdatedAt,
		LastUpdatedBy:      w.LastUpdatedBy,
	}
}

// ListWorkspacesResponse wraps a list of workspaces.
type ListWorkspacesResponse struct {
	Workspaces []WorkspaceResponse `json:"workspaces"`
}

// ToListWorkspacesResponse converts a slice of domain.Workspace to DTO.
func ToListWorkspacesResponse(ws []domain.Workspace) ListWorkspacesResponse {
	list := make([]WorkspaceResponse, len(ws))
	for i, w := range ws {
		list[i] = ToWorkspaceResponse(&w, nil)
	}
	return ListWorkspacesResponse{Workspaces: list}
}

// --- Membership DTOs ---

// AddMemberRequest defines data for adding a user to a workspace.
type AddMemberRequest struct {
	UserID string `json:"userID" binding:"required"`
	Role   string `json:"role" binding:"required,farmrole"`
}

// UpdateMemberRoleRequest defines data for changing a member's role.
type UpdateMemberRoleRequest struct {
	Role string `json:"role" binding:"required,farmrole"`
}

// UpdateFeaturePermissionRequest replaces one feature's permission entry.
type UpdateFeaturePermissionRequest struct {
	Enabled      bool     `json:"enabled"`
	AllowedRoles []string `json:"allowedRoles" binding:"required,dive,farmrole"`
}

// EnabledFeaturesResponse lists the features visible to the caller.
type EnabledFeaturesResponse struct {
	Features []string `json:"features"`
}

// ToEnabledFeaturesResponse converts a feature slice to DTO.
func ToEnabledFeaturesResponse(features []domain.Feature) EnabledFeaturesResponse {
	out := make([]string, len(features))
	for i, f := range features {
		out[i] = string(f)
	}
	return EnabledFeaturesResponse{Features: out}
}
