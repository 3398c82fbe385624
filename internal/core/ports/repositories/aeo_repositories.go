package repositories

import (
	"context"

	"github.com/agrisage/farm_management_app/internal/core/domain"
)

// FarmerRepositoryFacade persists extension-officer farmer records.
type FarmerRepositoryFacade interface {
	SaveFarmer(ctx context.Context, farmer domain.Farmer) error
	FindFarmerByID(ctx context.Context, workspaceID, farmerID string) (*domain.Farmer, error)
	ListFarmersByWorkspace(ctx context.Context, workspaceID string) ([]domain.Farmer, error)
	UpdateFarmer(ctx context.Context, farmer domain.Farmer) error
	DeleteFarmer(ctx context.Context, workspaceID, farmerID string) error
}

// InteractionRepositoryFacade persists farmer interactions.
type InteractionRepositoryFacade interface {
	SaveInteraction(ctx context.Context, interaction domain.Interaction) error
	ListInteractionsByFarmer(ctx context.Context, workspaceID, farmerID string) ([]domain.Interaction, error)
	ListInteractionsByWorkspace(ctx context.Context, workspaceID string) ([]domain.Interaction, error)
	DeleteInteraction(ctx context.Context, workspaceID, interactionID string) error
}

// KnowledgeBaseRepositoryFacade persists knowledge-base articles.
type KnowledgeBaseRepositoryFacade interface {
	SaveArticle(ctx context.Context, article domain.KnowledgeBaseArticle) error
	FindArticleByID(ctx context.Context, workspaceID, articleID string) (*domain.KnowledgeBaseArticle, error)
	ListArticlesByWorkspace(ctx context.Context, workspaceID string) ([]domain.KnowledgeBaseArticle, error)
	UpdateArticle(ctx context.Context, article domain.KnowledgeBaseArticle) error
	DeleteArticle(ctx context.Context, workspaceID, articleID string) error
}
