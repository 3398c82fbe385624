package services

import (
	"context"

	"github.com/agrisage/farm_management_app/internal/core/domain"
	"github.com/agrisage/farm_management_app/internal/dto"
)

// AEOSvcFacade manages extension-officer outreach: farmers, interactions and
// the knowledge base.
type AEOSvcFacade interface {
	CreateFarmer(ctx context.Context, workspaceID string, req dto.CreateFarmerRequest, requestingUserID string) (*domain.Farmer, error)
	GetFarmerByID(ctx context.Context, workspaceID, farmerID, requestingUserID string) (*domain.Farmer, error)
	ListFarmers(ctx context.Context, workspaceID, requestingUserID string) ([]domain.Farmer, error)
	UpdateFarmer(ctx context.Context, workspaceID, farmerID string, req dto.UpdateFarmerRequest, requestingUserID string) (*domain.Farmer, error)
	DeleteFarmer(ctx context.Context, workspaceID, farmerID, requestingUserID string) error

	RecordInteraction(ctx context.Context, workspaceID string, req dto.CreateInteractionRequest, requestingUserID string) (*domain.Interaction, error)
	ListInteractions(ctx context.Context, workspaceID, farmerID, requestingUserID string) ([]domain.Interaction, error)

	CreateArticle(ctx context.Context, workspaceID string, req dto.CreateArticleRequest, requestingUserID string) (*domain.KnowledgeBaseArticle, error)
	ListArticles(ctx context.Context, workspaceID, requestingUserID string) ([]domain.KnowledgeBaseArticle, error)
	UpdateArticle(ctx context.Context, workspaceID, articleID string, req dto.UpdateArticleRequest, requestingUserID string) (*domain.KnowledgeBaseArticle, error)
	DeleteArticle(ctx context.Context, workspaceID, articleID, requestingUserID string) error
}
