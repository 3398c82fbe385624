package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/agrisage/farm_management_app/internal/core/domain"
	portsrepo "github.com/agrisage/farm_management_app/internal/core/ports/repositories"
	portssvc "github.com/agrisage/farm_management_app/internal/core/ports/services"
	"github.com/agrisage/farm_management_app/internal/dto"
	"github.com/agrisage/farm_management_app/internal/utils"
)

// aeoService implements portssvc.AEOSvcFacade.
type aeoService struct {
	BaseService
	farmerRepo      portsrepo.FarmerRepositoryFacade
	interactionRepo portsrepo.InteractionRepositoryFacade
	knowledgeRepo   portsrepo.KnowledgeBaseRepositoryFacade
}

var _ portssvc.AEOSvcFacade = (*aeoService)(nil)

// AEOServiceOption configures the AEO service.
type AEOServiceOption func(*aeoService)

// WithAEOAuthorizer sets the workspace authorizer for the AEO service.
func WithAEOAuthorizer(authorizer portssvc.WorkspaceAuthorizerSvc) AEOServiceOption {
	return func(s *aeoService) {
		s.WorkspaceAuthorizer = authorizer
	}
}

// NewAEOService creates a new AEO service.
func NewAEOService(farmerRepo portsrepo.FarmerRepositoryFacade, interactionRepo portsrepo.InteractionRepositoryFacade, knowledgeRepo portsrepo.KnowledgeBaseRepositoryFacade, opts ...AEOServiceOption) portssvc.AEOSvcFacade {
	svc := &aeoService{
		farmerRepo:      farmerRepo,
		interactionRepo: interactionRepo,
		knowledgeRepo:   knowledgeRepo,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// CreateFarmer registers an outreach farmer.
func (s *aeoService) CreateFarmer(ctx context.Context, workspaceID string, req dto.CreateFarmerRequest, requestingUserID string) (*domain.Farmer, error) {
	if err := s.AuthorizeFeature(ctx, requestingUserID, workspaceID, domain.FeatureAEO); err != nil {
		return nil, err
	}

	farmer := domain.Farmer{
		FarmerID:    utils.NewEntityID("farmer"),
		WorkspaceID: workspaceID,
		Name:        req.Name,
		Location:    req.Location,
		Contact:     req.Contact,
		FarmSize:    req.FarmSize,
		Crops:       req.Crops,
		Notes:       req.Notes,
	}
	if err := s.farmerRepo.SaveFarmer(ctx, farmer); err != nil {
		s.LogError(ctx, err, "Failed to save farmer", slog.String("workspace_id", workspaceID))
		return nil, err
	}
	return &farmer, nil
}

// GetFarmerByID retrieves a farmer.
func (s *aeoService) GetFarmerByID(ctx context.Context, workspaceID, farmerID, requestingUserID string) (*domain.Farmer, error) {
	if err := s.AuthorizeFeature(ctx, requestingUserID, workspaceID, domain.FeatureAEO); err != nil {
		return nil, err
	}
	return s.farmerRepo.FindFarmerByID(ctx, workspaceID, farmerID)
}

// ListFarmers retrieves the workspace's farmers.
func (s *aeoService) ListFarmers(ctx context.Context, workspaceID, requestingUserID string) ([]domain.Farmer, error) {
	if err := s.AuthorizeFeature(ctx, requestingUserID, workspaceID, domain.FeatureAEO); err != nil {
		return nil, err
	}
	return s.farmerRepo.ListFarmersByWorkspace(ctx, workspaceID)
}

// UpdateFarmer updates farmer fields.
func (s *aeoService) UpdateFarmer(ctx context.Context, workspaceID, farmerID string, req dto.UpdateFarmerRequest, requestingUserID string) (*domain.Farmer, error) {
	if err := s.AuthorizeFeature(ctx, requestingUserID, workspaceID, domain.FeatureAEO); err != nil {
		return nil, err
	}
	farmer, err := s.farmerRepo.FindFarmerByID(ctx, workspaceID, farmerID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		farmer.Name = *req.Name
	}
	if req.Location != nil {
		farmer.Location = *req.Location
	}
	if req.Contact != nil {
		farmer.Contact = *req.Contact
	}
	if req.FarmSize != nil {
		farmer.FarmSize = *req.FarmSize
	}
	if req.Crops != nil {
		farmer.Crops = *req.Crops
	}
	if req.Notes != nil {
		farmer.Notes = *req.Notes
	}

	if err := s.farmerRepo.UpdateFarmer(ctx, *farmer); err != nil {
		s.LogError(ctx, err, "Failed to update farmer", slog.String("farmer_id", farmerID))
		return nil, err
	}
	return farmer, nil
}

// DeleteFarmer removes a farmer and leaves their interactions in place.
func (s *aeoService) DeleteFarmer(ctx context.Context, workspaceID, farmerID, requestingUserID string) error {
	if err := s.AuthorizeFeature(ctx, requestingUserID, workspaceID, domain.FeatureAEO); err != nil {
		return err
	}
	return s.farmerRepo.DeleteFarmer(ctx, workspaceID, farmerID)
}

// RecordInteraction records contact with a farmer, attributed to the
// requesting extension officer.
func (s *aeoService) RecordInteraction(ctx context.Context, workspaceID string, req dto.CreateInteractionRequest, requestingUserID string) (*domain.Interaction, error) {
	if err := s.AuthorizeFeature(ctx, requestingUserID, workspaceID, domain.FeatureAEO); err != nil {
		return nil, err
	}
	if _, err := s.farmerRepo.FindFarmerByID(ctx, workspaceID, req.FarmerID); err != nil {
		return nil, err
	}

	interaction := domain.Interaction{
		InteractionID: utils.NewEntityID("int"),
		WorkspaceID:   workspaceID,
		FarmerID:      req.FarmerID,
		Date:          req.Date,
		Type:          domain.InteractionType(req.Type),
		Summary:       req.Summary,
		AEOID:         requestingUserID,
	}
	if err := s.interactionRepo.SaveInteraction(ctx, interaction); err != nil {
		s.LogError(ctx, err, "Failed to save interaction", slog.String("farmer_id", req.FarmerID))
		return nil, err
	}
	return &interaction, nil
}

// ListInteractions retrieves interactions, optionally filtered by farmer.
func (s *aeoService) ListInteractions(ctx context.Context, workspaceID, farmerID, requestingUserID string) ([]domain.Interaction, error) {
	if err := s.AuthorizeFeature(ctx, requestingUserID, workspaceID, domain.FeatureAEO); err != nil {
		return nil, err
	}
	if farmerID != "" {
		return s.interactionRepo.ListInteractionsByFarmer(ctx, workspaceID, farmerID)
	}
	return s.interactionRepo.ListInteractionsByWorkspace(ctx, workspaceID)
}

// CreateArticle publishes a knowledge-base article.
func (s *aeoService) CreateArticle(ctx context.Context, workspaceID string, req dto.CreateArticleRequest, requestingUserID string) (*domain.KnowledgeBaseArticle, error) {
	if err := s.AuthorizeFeature(ctx, requestingUserID, workspaceID, domain.FeatureAEO); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	article := domain.KnowledgeBaseArticle{
		ArticleID:   utils.NewEntityID("kb"),
		WorkspaceID: workspaceID,
		Title:       req.Title,
		Category:    req.Category,
		Content:     req.Content,
		Tags:        req.Tags,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     requestingUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: requestingUserID,
		},
	}
	if err := s.knowledgeRepo.SaveArticle(ctx, article); err != nil {
		s.LogError(ctx, err, "Failed to save article", slog.String("workspace_id", workspaceID))
		return nil, err
	}
	return &article, nil
}

// ListArticles retrieves the workspace's knowledge base.
func (s *aeoService) ListArticles(ctx context.Context, workspaceID, requestingUserID string) ([]domain.KnowledgeBaseArticle, error) {
	if err := s.AuthorizeFeature(ctx, requestingUserID, workspaceID, domain.FeatureAEO); err != nil {
		return nil, err
	}
	return s.knowledgeRepo.ListArticlesByWorkspace(ctx, workspaceID)
}

// UpdateArticle edits an article.
func (s *aeoService) UpdateArticle(ctx context.Context, workspaceID, articleID string, req dto.UpdateArticleRequest, requestingUserID string) (*domain.KnowledgeBaseArticle, error) {
	if err := s.AuthorizeFeature(ctx, requestingUserID, workspaceID, domain.FeatureAEO); err != nil {
		return nil, err
	}
	article, err := s.knowledgeRepo.FindArticleByID(ctx, workspaceID, articleID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		article.Title = *req.Title
	}
	if req.Category != nil {
		article.Category = *req.Category
	}
	if req.Content != nil {
		article.Content = *req.Content
	}
	if req.Tags != nil {
		article.Tags = *req.Tags
	}
	article.LastUpdatedAt = time.Now().UTC()
	article.LastUpdatedBy = requestingUserID

	if err := s.knowledgeRepo.UpdateArticle(ctx, *article); err != nil {
		s.LogError(ctx, err, "Failed to update article", slog.String("article_id", articleID))
		return nil, err
	}
	return article, nil
}

// DeleteArticle removes an article.
func (s *aeoService) DeleteArticle(ctx context.Context, workspaceID, articleID, requestingUserID string) error {
	if err := s.AuthorizeFeature(ctx, requestingUserID, workspaceID, domain.FeatureAEO); err != nil {
		return err
	}
	return s.knowledgeRepo.DeleteArticle(ctx, workspaceID, articleID)
}
