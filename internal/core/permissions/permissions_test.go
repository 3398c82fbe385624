package permissions_test

import (
	"testing"

	"github.com/agrisage/farm_management_app/internal/apperrors"
	"github.com/agrisage/farm_management_app/internal/core/domain"
	"github.com/agrisage/farm_management_app/internal/core/permissions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	ownerID      = "user_owner"
	accountantID = "user_accountant"
	strangerID   = "user_stranger"
)

func testWorkspace() domain.Workspace {
	return domain.Workspace{
		WorkspaceID: "ws_test",
		Name:        "Green Acres",
		Members: map[string]domain.WorkspaceMember{
			ownerID:      {Role: domain.RoleOwner},
			accountantID: {Role: domain.RoleAccountant},
		},
		FeaturePermissions: permissions.DefaultFeaturePermissions(),
		Status:             domain.StatusActive,
	}
}

func TestEnabledFeatures_RoleFiltering(t *testing.T) {
	ws := testWorkspace()

	features := permissions.EnabledFeatures(ws, accountantID)

	assert.Contains(t, features, domain.FeatureDashboard)
	assert.Contains(t, features, domain.FeatureFinancials)
	assert.Contains(t, features, domain.FeatureFAQ)
	assert.NotContains(t, features, domain.FeatureOperations)
	assert.NotContains(t, features, domain.FeatureAdmin)
	assert.NotContains(t, features, domain.FeatureHR)
}

func TestEnabledFeatures_PreservesDeclaredOrder(t *testing.T) {
	ws := testWorkspace()

	features := permissions.EnabledFeatures(ws, ownerID)

	// Owner sees everything, so the result must be exactly the declared order.
	assert.Equal(t, domain.AllFeatures, features)
}

func TestEnabledFeatures_NonMemberGetsNothing(t *testing.T) {
	ws := testWorkspace()

	assert.Empty(t, permissions.EnabledFeatures(ws, strangerID))
	assert.False(t, permissions.CanAccess(ws, strangerID, domain.FeatureDashboard))
}

func TestEnabledFeatures_DisabledFeatureHiddenFromAll(t *testing.T) {
	ws := testWorkspace()
	ws = permissions.UpdateFeaturePermission(ws, domain.FeatureFinancials, domain.FeaturePermission{
		Enabled:      false,
		AllowedRoles: domain.AllRoles,
	})

	assert.NotContains(t, permissions.EnabledFeatures(ws, accountantID), domain.FeatureFinancials)
	assert.NotContains(t, permissions.EnabledFeatures(ws, ownerID), domain.FeatureFinancials)
}

func TestEnabledFeatures_OwnerAdminOverride(t *testing.T) {
	ws := testWorkspace()
	// Misconfigure Admin so even owners are excluded from the stored list.
	ws = permissions.UpdateFeaturePermission(ws, domain.FeatureAdmin, domain.FeaturePermission{
		Enabled:      false,
		AllowedRoles: []domain.Role{},
	})

	features := permissions.EnabledFeatures(ws, ownerID)

	assert.Contains(t, features, domain.FeatureAdmin)
	assert.True(t, permissions.CanAccess(ws, ownerID, domain.FeatureAdmin))
	assert.False(t, permissions.CanAccess(ws, accountantID, domain.FeatureAdmin))
}

func TestEnabledFeatures_MissingPermissionEntryIsHidden(t *testing.T) {
	ws := testWorkspace()
	delete(ws.FeaturePermissions, domain.FeatureSuppliers)

	assert.NotContains(t, permissions.EnabledFeatures(ws, accountantID), domain.FeatureSuppliers)
	assert.False(t, permissions.CanAccess(ws, accountantID, domain.FeatureSuppliers))
}

func TestUpdateFeaturePermission_DoesNotMutateInput(t *testing.T) {
	ws := testWorkspace()
	original := ws.FeaturePermissions[domain.FeatureHR]

	updated := permissions.UpdateFeaturePermission(ws, domain.FeatureHR, domain.FeaturePermission{
		Enabled:      true,
		AllowedRoles: []domain.Role{domain.RoleOwner},
	})

	assert.Equal(t, original, ws.FeaturePermissions[domain.FeatureHR])
	assert.Equal(t, []domain.Role{domain.RoleOwner}, updated.FeaturePermissions[domain.FeatureHR].AllowedRoles)
}

func TestUpdateMemberRole_LastOwnerDemotionRejected(t *testing.T) {
	ws := testWorkspace()

	_, err := permissions.UpdateMemberRole(ws, ownerID, domain.RoleMember)

	require.ErrorIs(t, err, apperrors.ErrLastOwnerDemotion)
	// Input workspace must be untouched.
	assert.Equal(t, domain.RoleOwner, ws.Members[ownerID].Role)
}

func TestUpdateMemberRole_SecondOwnerAllowsDemotion(t *testing.T) {
	ws := testWorkspace()
	ws = permissions.AddMember(ws, "user_second_owner", domain.RoleOwner)

	updated, err := permissions.UpdateMemberRole(ws, ownerID, domain.RoleFarmManager)

	require.NoError(t, err)
	assert.Equal(t, domain.RoleFarmManager, updated.Members[ownerID].Role)
}

func TestUpdateMemberRole_NonMemberRejected(t *testing.T) {
	ws := testWorkspace()

	_, err := permissions.UpdateMemberRole(ws, strangerID, domain.RoleMember)

	require.ErrorIs(t, err, apperrors.ErrNotAMember)
}

func TestRemoveMember_LastOwnerRejected(t *testing.T) {
	ws := testWorkspace()

	_, err := permissions.RemoveMember(ws, ownerID)

	require.ErrorIs(t, err, apperrors.ErrLastOwnerRemoval)
}

func TestRemoveMember_RegularMember(t *testing.T) {
	ws := testWorkspace()

	updated, err := permissions.RemoveMember(ws, accountantID)

	require.NoError(t, err)
	_, stillMember := updated.Members[accountantID]
	assert.False(t, stillMember)
	// Original snapshot keeps the member.
	_, wasMember := ws.Members[accountantID]
	assert.True(t, wasMember)
}

func TestMigrateFeaturePermissions_BackfillsMissing(t *testing.T) {
	ws := testWorkspace()
	delete(ws.FeaturePermissions, domain.FeatureSuppliers)
	delete(ws.FeaturePermissions, domain.FeatureHarvestSales)

	migrated, changed := permissions.MigrateFeaturePermissions(ws)

	require.True(t, changed)
	assert.Equal(t, permissions.DefaultFeaturePermission(domain.FeatureSuppliers),
		migrated.FeaturePermissions[domain.FeatureSuppliers])
	assert.Equal(t, permissions.DefaultFeaturePermission(domain.FeatureHarvestSales),
		migrated.FeaturePermissions[domain.FeatureHarvestSales])
	assert.Len(t, migrated.FeaturePermissions, len(domain.AllFeatures))
}

func TestMigrateFeaturePermissions_KeepsExistingEntries(t *testing.T) {
	ws := testWorkspace()
	custom := domain.FeaturePermission{Enabled: false, AllowedRoles: []domain.Role{domain.RoleOwner}}
	ws.FeaturePermissions[domain.FeatureInventory] = custom
	delete(ws.FeaturePermissions, domain.FeatureFAQ)

	migrated, changed := permissions.MigrateFeaturePermissions(ws)

	require.True(t, changed)
	assert.Equal(t, custom, migrated.FeaturePermissions[domain.FeatureInventory])
}

func TestMigrateFeaturePermissions_Idempotent(t *testing.T) {
	ws := testWorkspace()
	delete(ws.FeaturePermissions, domain.FeatureHowTo)

	once, changed := permissions.MigrateFeaturePermissions(ws)
	require.True(t, changed)

	twice, changedAgain := permissions.MigrateFeaturePermissions(once)
	assert.False(t, changedAgain)
	assert.Equal(t, once.FeaturePermissions, twice.FeaturePermissions)
}
