package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/agrisage/farm_management_app/internal/core/domain"
	portsrepo "github.com/agrisage/farm_management_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAuditLogRepository struct {
	db *pgxpool.Pool
}

func newPgxAuditLogRepository(db *pgxpool.Pool) portsrepo.AuditLogRepositoryFacade {
	return &PgxAuditLogRepository{db: db}
}

var _ portsrepo.AuditLogRepositoryFacade = (*PgxAuditLogRepository)(nil)

func (r *PgxAuditLogRepository) SaveAuditEntry(ctx context.Context, entry domain.AuditLogEntry) error {
	query := `
		INSERT INTO audit_log (entry_id, occurred_at, super_admin_id, action, details)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err := r.db.Exec(ctx, query, entry.EntryID, entry.Timestamp, entry.SuperAdminID, entry.Action, entry.Details)
	if err != nil {
		return fmt.Errorf("failed to save audit entry: %w", mapWriteError(err))
	}
	return nil
}

func (r *PgxAuditLogRepository) ListAuditEntries(ctx context.Context, limit int) ([]domain.AuditLogEntry, error) {
	query := `
		SELECT entry_id, occurred_at, super_admin_id, action, details
		FROM audit_log ORDER BY occurred_at DESC LIMIT $1;
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query audit log: %w", err)
	}
	defer rows.Close()

	entries := []domain.AuditLogEntry{}
	for rows.Next() {
		var e domain.AuditLogEntry
		if err := rows.Scan(&e.EntryID, &e.Timestamp, &e.SuperAdminID, &e.Action, &e.Details); err != nil {
			return nil, fmt.Errorf("failed to scan audit entry row: %w", err)
		}
		entries = append(entries, e)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating audit entry rows: %w", rows.Err())
	}
	return entries, nil
}

// PgxPlatformConfigRepository persists the platform config singleton as one
// jsonb row. A missing row means the defaults apply; callers handle nil.
type PgxPlatformConfigRepository struct {
	db *pgxpool.Pool
}

func newPgxPlatformConfigRepository(db *pgxpool.Pool) portsrepo.PlatformConfigRepositoryFacade {
	return &PgxPlatformConfigRepository{db: db}
}

var _ portsrepo.PlatformConfigRepositoryFacade = (*PgxPlatformConfigRepository)(nil)

func (r *PgxPlatformConfigRepository) GetPlatformConfig(ctx context.Context) (*domain.PlatformConfig, error) {
	query := `SELECT feature_flags, default_permissions FROM platform_config WHERE singleton = true;`
	var cfg domain.PlatformConfig
	err := r.db.QueryRow(ctx, query).Scan(&cfg.FeatureFlags, &cfg.DefaultPermissions)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load platform config: %w", err)
	}
	return &cfg, nil
}

func (r *PgxPlatformConfigRepository) SavePlatformConfig(ctx context.Context, config domain.PlatformConfig) error {
	query := `
		INSERT INTO platform_config (singleton, feature_flags, default_permissions)
		VALUES (true, $1, $2)
		ON CONFLICT (singleton) DO UPDATE SET
			feature_flags = EXCLUDED.feature_flags,
			default_permissions = EXCLUDED.default_permissions;
	`
	if _, err := r.db.Exec(ctx, query, config.FeatureFlags, config.DefaultPermissions); err != nil {
		return fmt.Errorf("failed to save platform config: %w", err)
	}
	return nil
}

type PgxWorkspaceActivityRepository struct {
	db *pgxpool.Pool
}

func newPgxWorkspaceActivityRepository(db *pgxpool.Pool) portsrepo.WorkspaceActivityRepositoryFacade {
	return &PgxWorkspaceActivityRepository{db: db}
}

var _ portsrepo.WorkspaceActivityRepositoryFacade = (*PgxWorkspaceActivityRepository)(nil)

func (r *PgxWorkspaceActivityRepository) SaveActivityEntry(ctx context.Context, entry domain.WorkspaceActivityEntry) error {
	query := `
		INSERT INTO workspace_activity (entry_id, workspace_id, occurred_at, actor_id, action, details)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.db.Exec(ctx, query,
		entry.EntryID, entry.WorkspaceID, entry.Timestamp, entry.ActorID, entry.Action, entry.Details,
	)
	if err != nil {
		return fmt.Errorf("failed to save activity entry: %w", mapWriteError(err))
	}
	return nil
}

func (r *PgxWorkspaceActivityRepository) ListActivityByWorkspace(ctx context.Context, workspaceID string, limit int) ([]domain.WorkspaceActivityEntry, error) {
	query := `
		SELECT entry_id, workspace_id, occurred_at, actor_id, action, details
		FROM workspace_activity
		WHERE workspace_id = $1 ORDER BY occurred_at DESC LIMIT $2;
	`
	rows, err := r.db.Query(ctx, query, workspaceID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query workspace activity: %w", err)
	}
	defer rows.Close()

	entries := []domain.WorkspaceActivityEntry{}
	for rows.Next() {
		var e domain.WorkspaceActivityEntry
		if err := rows.Scan(&e.EntryID, &e.WorkspaceID, &e.Timestamp, &e.ActorID, &e.Action, &e.Details); err != nil {
			return nil, fmt.Errorf("failed to scan activity entry row: %w", err)
		}
		entries = append(entries, e)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating activity entry rows: %w", rows.Err())
	}
	return entries, nil
}
