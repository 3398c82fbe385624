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

type PgxFarmerRepository struct {
	db *pgxpool.Pool
}

func newPgxFarmerRepository(db *pgxpool.Pool) portsrepo.FarmerRepositoryFacade {
	return &PgxFarmerRepository{db: db}
}

var _ portsrepo.FarmerRepositoryFacade = (*PgxFarmerRepository)(nil)

const farmerColumns = `farmer_id, workspace_id, name, location, contact, farm_size, crops, notes`

func scanFarmer(row pgx.Row) (*domain.Farmer, error) {
	var f domain.Farmer
	err := row.Scan(&f.FarmerID, &f.WorkspaceID, &f.Name, &f.Location, &f.Contact, &f.FarmSize, &f.Crops, &f.Notes)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *PgxFarmerRepository) SaveFarmer(ctx context.Context, farmer domain.Farmer) error {
	query := `INSERT INTO farmers (` + farmerColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`
	_, err := r.db.Exec(ctx, query,
		farmer.FarmerID, farmer.WorkspaceID, farmer.Name, farmer.Location,
		farmer.Contact, farmer.FarmSize, farmer.Crops, farmer.Notes,
	)
	if err != nil {
		return fmt.Errorf("failed to save farmer: %w", mapWriteError(err))
	}
	return nil
}

func (r *PgxFarmerRepository) FindFarmerByID(ctx context.Context, workspaceID, farmerID string) (*domain.Farmer, error) {
	query := `SELECT ` + farmerColumns + ` FROM farmers WHERE workspace_id = $1 AND farmer_id = $2;`
	farmer, err := scanFarmer(r.db.QueryRow(ctx, query, workspaceID, farmerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find farmer by ID %s: %w", farmerID, err)
	}
	return farmer, nil
}

func (r *PgxFarmerRepository) ListFarmersByWorkspace(ctx context.Context, workspaceID string) ([]domain.Farmer, error) {
	query := `SELECT ` + farmerColumns + ` FROM farmers WHERE workspace_id = $1 ORDER BY name;`
	rows, err := r.db.Query(ctx, query, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to query farmers: %w", err)
	}
	defer rows.Close()

	farmers := []domain.Farmer{}
	for rows.Next() {
		farmer, err := scanFarmer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan farmer row: %w", err)
		}
		farmers = append(farmers, *farmer)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating farmer rows: %w", rows.Err())
	}
	return farmers, nil
}

func (r *PgxFarmerRepository) UpdateFarmer(ctx context.Context, farmer domain.Farmer) error {
	query := `
		UPDATE farmers
		SET name = $1, location = $2, contact = $3, farm_size = $4, crops = $5, notes = $6
		WHERE workspace_id = $7 AND farmer_id = $8;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		farmer.Name, farmer.Location, farmer.Contact, farmer.FarmSize,
		farmer.Crops, farmer.Notes, farmer.WorkspaceID, farmer.FarmerID,
	)
	if err != nil {
		return fmt.Errorf("failed to update farmer: %w", mapWriteError(err))
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("farmer not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxFarmerRepository) DeleteFarmer(ctx context.Context, workspaceID, farmerID string) error {
	query := `DELETE FROM farmers WHERE workspace_id = $1 AND farmer_id = $2;`
	cmdTag, err := r.db.Exec(ctx, query, workspaceID, farmerID)
	if err != nil {
		return fmt.Errorf("failed to delete farmer: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("farmer not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

type PgxInteractionRepository struct {
	db *pgxpool.Pool
}

func newPgxInteractionRepository(db *pgxpool.Pool) portsrepo.InteractionRepositoryFacade {
	return &PgxInteractionRepository{db: db}
}

var _ portsrepo.InteractionRepositoryFacade = (*PgxInteractionRepository)(nil)

const interactionColumns = `interaction_id, workspace_id, farmer_id, interaction_date, interaction_type, summary, aeo_id`

func scanInteraction(row pgx.Row) (*domain.Interaction, error) {
	var i domain.Interaction
	err := row.Scan(&i.InteractionID, &i.WorkspaceID, &i.FarmerID, &i.Date, &i.Type, &i.Summary, &i.AEOID)
	if err != nil {
		return nil, err
	}
	return &i, nil
}

func (r *PgxInteractionRepository) SaveInteraction(ctx context.Context, interaction domain.Interaction) error {
	query := `INSERT INTO interactions (` + interactionColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7);`
	_, err := r.db.Exec(ctx, query,
		interaction.InteractionID, interaction.WorkspaceID, interaction.FarmerID,
		interaction.Date, interaction.Type, interaction.Summary, interaction.AEOID,
	)
	if err != nil {
		return fmt.Errorf("failed to save interaction: %w", mapWriteError(err))
	}
	return nil
}

func (r *PgxInteractionRepository) listInteractions(ctx context.Context, query string, args ...any) ([]domain.Interaction, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query interactions: %w", err)
	}
	defer rows.Close()

	interactions := []domain.Interaction{}
	for rows.Next() {
		interaction, err := scanInteraction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan interaction row: %w", err)
		}
		interactions = append(interactions, *interaction)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating interaction rows: %w", rows.Err())
	}
	return interactions, nil
}

func (r *PgxInteractionRepository) ListInteractionsByFarmer(ctx context.Context, workspaceID, farmerID string) ([]domain.Interaction, error) {
	query := `SELECT ` + interactionColumns + ` FROM interactions WHERE workspace_id = $1 AND farmer_id = $2 ORDER BY interaction_date DESC;`
	return r.listInteractions(ctx, query, workspaceID, farmerID)
}

func (r *PgxInteractionRepository) ListInteractionsByWorkspace(ctx context.Context, workspaceID string) ([]domain.Interaction, error) {
	query := `SELECT ` + interactionColumns + ` FROM interactions WHERE workspace_id = $1 ORDER BY interaction_date DESC;`
	return r.listInteractions(ctx, query, workspaceID)
}

func (r *PgxInteractionRepository) DeleteInteraction(ctx context.Context, workspaceID, interactionID string) error {
	query := `DELETE FROM interactions WHERE workspace_id = $1 AND interaction_id = $2;`
	cmdTag, err := r.db.Exec(ctx, query, workspaceID, interactionID)
	if err != nil {
		return fmt.Errorf("failed to delete interaction: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("interaction not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

type PgxKnowledgeBaseRepository struct {
	db *pgxpool.Pool
}

func newPgxKnowledgeBaseRepository(db *pgxpool.Pool) portsrepo.KnowledgeBaseRepositoryFacade {
	return &PgxKnowledgeBaseRepository{db: db}
}

var _ portsrepo.KnowledgeBaseRepositoryFacade = (*PgxKnowledgeBaseRepository)(nil)

const articleColumns = `article_id, workspace_id, title, category, content, tags, created_at, created_by, last_updated_at, last_updated_by`

func scanArticle(row pgx.Row) (*domain.KnowledgeBaseArticle, error) {
	var a domain.KnowledgeBaseArticle
	err := row.Scan(
		&a.ArticleID,
		&a.WorkspaceID,
		&a.Title,
		&a.Category,
		&a.Content,
		&a.Tags,
		&a.CreatedAt,
		&a.CreatedBy,
		&a.LastUpdatedAt,
		&a.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *PgxKnowledgeBaseRepository) SaveArticle(ctx context.Context, article domain.KnowledgeBaseArticle) error {
	query := `
		INSERT INTO kb_articles (` + articleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.db.Exec(ctx, query,
		article.ArticleID,
		article.WorkspaceID,
		article.Title,
		article.Category,
		article.Content,
		article.Tags,
		article.CreatedAt,
		article.CreatedBy,
		article.LastUpdatedAt,
		article.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save article: %w", mapWriteError(err))
	}
	return nil
}

func (r *PgxKnowledgeBaseRepository) FindArticleByID(ctx context.Context, workspaceID, articleID string) (*domain.KnowledgeBaseArticle, error) {
	query := `SELECT ` + articleColumns + ` FROM kb_articles WHERE workspace_id = $1 AND article_id = $2;`
	article, err := scanArticle(r.db.QueryRow(ctx, query, workspaceID, articleID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find article by ID %s: %w", articleID, err)
	}
	return article, nil
}

func (r *PgxKnowledgeBaseRepository) ListArticlesByWorkspace(ctx context.Context, workspaceID string) ([]domain.KnowledgeBaseArticle, error) {
	query := `SELECT ` + articleColumns + ` FROM kb_articles WHERE workspace_id = $1 ORDER BY created_at DESC;`
	rows, err := r.db.Query(ctx, query, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to query articles: %w", err)
	}
	defer rows.Close()

	articles := []domain.KnowledgeBaseArticle{}
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan article row: %w", err)
		}
		articles = append(articles, *article)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating article rows: %w", rows.Err())
	}
	return articles, nil
}

func (r *PgxKnowledgeBaseRepository) UpdateArticle(ctx context.Context, article domain.KnowledgeBaseArticle) error {
	query := `
		UPDATE kb_articles
		SET title = $1, category = $2, content = $3, tags = $4,
		    last_updated_at = $5, last_updated_by = $6
		WHERE workspace_id = $7 AND article_id = $8;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		article.Title,
		article.Category,
		article.Content,
		article.Tags,
		article.LastUpdatedAt,
		article.LastUpdatedBy,
		article.WorkspaceID,
		article.ArticleID,
	)
	if err != nil {
		return fmt.Errorf("failed to update article: %w", mapWriteError(err))
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("article not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxKnowledgeBaseRepository) DeleteArticle(ctx context.Context, workspaceID, articleID string) error {
	query := `DELETE FROM kb_articles WHERE workspace_id = $1 AND article_id = $2;`
	cmdTag, err := r.db.Exec(ctx, query, workspaceID, articleID)
	if err != nil {
		return fmt.Errorf("failed to delete article: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("article not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
