package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/agrisage/farm_management_app/internal/apperrors"
	"github.com/agrisage/farm_management_app/internal/core/domain"
	portsrepo "github.com/agrisage/farm_management_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxWorkspaceRepository persists workspaces, their memberships and feature
// permission maps. Feature permissions live in a jsonb column; members get a
// join table so role lookups stay a single indexed read.
type PgxWorkspaceRepository struct {
	BaseRepository
}

func newPgxWorkspaceRepository(db *pgxpool.Pool) portsrepo.WorkspaceRepositoryFacade {
	return &PgxWorkspaceRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.WorkspaceRepositoryFacade = (*PgxWorkspaceRepository)(nil)

const workspaceColumns = `workspace_id, name, feature_permissions, status, logo_url, created_at, created_by, last_updated_at, last_updated_by`

func scanWorkspace(row pgx.Row) (*domain.Workspace, error) {
	var w domain.Workspace
	err := row.Scan(
		&w.WorkspaceID,
		&w.Name,
		&w.FeaturePermissions,
		&w.Status,
		&w.LogoURL,
		&w.CreatedAt,
		&w.CreatedBy,
		&w.LastUpdatedAt,
		&w.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *PgxWorkspaceRepository) loadMembers(ctx context.Context, workspaceID string) (map[string]domain.WorkspaceMember, error) {
	query := `SELECT user_id, role FROM workspace_members WHERE workspace_id = $1;`
	rows, err := r.Pool.Query(ctx, query, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to query workspace members: %w", err)
	}
	defer rows.Close()

	members := map[string]domain.WorkspaceMember{}
	for rows.Next() {
		var userID string
		var role domain.Role
		if err := rows.Scan(&userID, &role); err != nil {
			return nil, fmt.Errorf("failed to scan member row: %w", err)
		}
		members[userID] = domain.WorkspaceMember{Role: role}
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating member rows: %w", rows.Err())
	}
	return members, nil
}

func (r *PgxWorkspaceRepository) FindWorkspaceByID(ctx context.Context, workspaceID string) (*domain.Workspace, error) {
	query := `SELECT ` + workspaceColumns + ` FROM workspaces WHERE workspace_id = $1;`
	workspace, err := scanWorkspace(r.Pool.QueryRow(ctx, query, workspaceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find workspace by ID %s: %w", workspaceID, err)
	}

	workspace.Members, err = r.loadMembers(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	return workspace, nil
}

func (r *PgxWorkspaceRepository) listWorkspaces(ctx context.Context, query string, args ...any) ([]domain.Workspace, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query workspaces: %w", err)
	}
	defer rows.Close()

	workspaces := []domain.Workspace{}
	for rows.Next() {
		workspace, err := scanWorkspace(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan workspace row: %w", err)
		}
		workspaces = append(workspaces, *workspace)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating workspace rows: %w", rows.Err())
	}

	for i := range workspaces {
		workspaces[i].Members, err = r.loadMembers(ctx, workspaces[i].WorkspaceID)
		if err != nil {
			return nil, err
		}
	}
	return workspaces, nil
}

func (r *PgxWorkspaceRepository) ListWorkspacesByUserID(ctx context.Context, userID string) ([]domain.Workspace, error) {
	query := `
		SELECT ` + workspaceColumns + `
		FROM workspaces w
		JOIN workspace_members m ON m.workspace_id = w.workspace_id
		WHERE m.user_id = $1
		ORDER BY w.created_at;
	`
	return r.listWorkspaces(ctx, query, userID)
}

func (r *PgxWorkspaceRepository) ListAllWorkspaces(ctx context.Context) ([]domain.Workspace, error) {
	query := `SELECT ` + workspaceColumns + ` FROM workspaces ORDER BY created_at;`
	return r.listWorkspaces(ctx, query)
}

func (r *PgxWorkspaceRepository) SaveWorkspace(ctx context.Context, workspace domain.Workspace) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		INSERT INTO workspaces (` + workspaceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err = tx.Exec(ctx, query,
		workspace.WorkspaceID,
		workspace.Name,
		workspace.FeaturePermissions,
		workspace.Status,
		workspace.LogoURL,
		workspace.CreatedAt,
		workspace.CreatedBy,
		workspace.LastUpdatedAt,
		workspace.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save workspace: %w", mapWriteError(err))
	}

	for userID, member := range workspace.Members {
		_, err = tx.Exec(ctx,
			`INSERT INTO workspace_members (workspace_id, user_id, role) VALUES ($1, $2, $3);`,
			workspace.WorkspaceID, userID, member.Role,
		)
		if err != nil {
			return fmt.Errorf("failed to save workspace member: %w", mapWriteError(err))
		}
	}

	return r.Commit(ctx, tx)
}

func (r *PgxWorkspaceRepository) UpdateWorkspace(ctx context.Context, workspace domain.Workspace) error {
	query := `
		UPDATE workspaces
		SET name = $1, feature_permissions = $2, status = $3, logo_url = $4,
		    last_updated_at = $5, last_updated_by = $6
		WHERE workspace_id = $7;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		workspace.Name,
		workspace.FeaturePermissions,
		workspace.Status,
		workspace.LogoURL,
		workspace.LastUpdatedAt,
		workspace.LastUpdatedBy,
		workspace.WorkspaceID,
	)
	if err != nil {
		return fmt.Errorf("failed to update workspace: %w", mapWriteError(err))
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("workspace not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxWorkspaceRepository) UpsertMember(ctx context.Context, workspaceID, userID string, role domain.Role) error {
	query := `
		INSERT INTO workspace_members (workspace_id, user_id, role)
		VALUES ($1, $2, $3)
		ON CONFLICT (workspace_id, user_id) DO UPDATE SET role = EXCLUDED.role;
	`
	if _, err := r.Pool.Exec(ctx, query, workspaceID, userID, role); err != nil {
		return fmt.Errorf("failed to upsert workspace member: %w", mapWriteError(err))
	}
	return nil
}

func (r *PgxWorkspaceRepository) RemoveMember(ctx context.Context, workspaceID, userID string) error {
	query := `DELETE FROM workspace_members WHERE workspace_id = $1 AND user_id = $2;`
	cmdTag, err := r.Pool.Exec(ctx, query, workspaceID, userID)
	if err != nil {
		return fmt.Errorf("failed to remove workspace member: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("membership not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxWorkspaceRepository) FindMemberRole(ctx context.Context, workspaceID, userID string) (*domain.Role, error) {
	query := `SELECT role FROM workspace_members WHERE workspace_id = $1 AND user_id = $2;`
	var role domain.Role
	err := r.Pool.QueryRow(ctx, query, workspaceID, userID).Scan(&role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find member role: %w", err)
	}
	return &role, nil
}
