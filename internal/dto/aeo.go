package dto

import (
	"time"

	"github.com/agrisage/farm_management_app/internal/core/domain"
)

// CreateFarmerRequest defines data for registering an outreach farmer.
type CreateFarmerRequest struct {
	Name     string   `json:"name" binding:"required,max=120"`
	Location string   `json:"location,omitempty"`
	Contact  string   `json:"contact,omitempty"`
	FarmSize float64  `json:"farmSize" binding:"omitempty,gte=0"`
	Crops    []string `json:"crops,omitempty"`
	Notes    string   `json:"notes,omitempty"`
}

// UpdateFarmerRequest defines data for updating a farmer record.
type UpdateFarmerRequest struct {
	Name     *string   `json:"name,omitempty" binding:"omitempty,max=120"`
	Location *string   `json:"location,omitempty"`
	Contact  *string   `json:"contact,omitempty"`
	FarmSize *float64  `json:"farmSize,omitempty" binding:"omitempty,gte=0"`
	Crops    *[]string `json:"crops,omitempty"`
	Notes    *string   `json:"notes,omitempty"`
}

// FarmerResponse defines data returned for a farmer.
type FarmerResponse struct {
	FarmerID    string   `json:"farmerID"`
	WorkspaceID string   `json:"workspaceID"`
	Name        string   `json:"name"`
	Location    string   `json:"location,omitempty"`
	Contact     string   `json:"contact,omitempty"`
	FarmSize    float64  `json:"farmSize"`
	Crops       []string `json:"crops"`
	Notes       string   `json:"notes,omitempty"`
}

// ToFarmerResponse converts domain.Farmer to DTO.
func ToFarmerResponse(f *domain.Farmer) FarmerResponse {
	crops := f.Crops
	if crops == nil {
		crops = []string{}
	}
	return FarmerResponse{
		FarmerID:    f.FarmerID,
		WorkspaceID: f.WorkspaceID,
		Name:        f.Name,
		Location:    f.Location,
		Contact:     f.Contact,
		FarmSize:    f.FarmSize,
		Crops:       crops,
		Notes:       f.Notes,
	}
}

// CreateInteractionRequest records contact with a farmer.
type CreateInteractionRequest struct {
	FarmerID string    `json:"farmerID" binding:"required"`
	Date     time.Time `json:"date" binding:"required"`
	Type     string    `json:"type" binding:"required,oneof=Visit Call Meeting Training"`
	Summary  string    `json:"summary,omitempty" binding:"omitempty,max=4000"`
}

// InteractionResponse defines data returned for an interaction.
type InteractionResponse struct {
	InteractionID string    `json:"interactionID"`
	WorkspaceID   string    `json:"workspaceID"`
	FarmerID      string    `json:"farmerID"`
	Date          time.Time `json:"date"`
	Type          string    `json:"type"`
	Summary       string    `json:"summary,omitempty"`
	AEOID         string    `json:"aeoID"`
}

// ToInteractionResponse converts domain.Interaction to DTO.
func ToInteractionResponse(i *domain.Interaction) InteractionResponse {
	return InteractionResponse{
		InteractionID: i.InteractionID,
		WorkspaceID:   i.WorkspaceID,
		FarmerID:      i.FarmerID,
		Date:          i.Date,
		Type:          string(i.Type),
		Summary:       i.Summary,
		AEOID:         i.AEOID,
	}
}

// CreateArticleRequest defines data for publishing a knowledge-base article.
type CreateArticleRequest struct {
	Title    string   `json:"title" binding:"required,max=200"`
	Category string   `json:"category,omitempty"`
	Content  string   `json:"content" binding:"required"`
	Tags     []string `json:"tags,omitempty"`
}

// UpdateArticleRequest defines data for editing an article.
type UpdateArticleRequest struct {
	Title    *string   `json:"title,omitempty" binding:"omitempty,max=200"`
	Category *string   `json:"category,omitempty"`
	Content  *string   `json:"content,omitempty"`
	Tags     *[]string `json:"tags,omitempty"`
}

// ArticleResponse defines data returned for an article.
type ArticleResponse struct {
	ArticleID   string    `json:"articleID"`
	WorkspaceID string    `json:"workspaceID"`
	Title       string    `json:"title"`
	Category    string    `json:"category,omitempty"`
	Content     string    `json:"content"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"createdAt"`
	CreatedBy   string    `json:"createdBy"`
}

// ToArticleResponse converts domain.KnowledgeBaseArticle to DTO.
func ToArticleResponse(a *domain.KnowledgeBaseArticle) ArticleResponse {
	tags := a.Tags
	if tags == nil {
		tags = []string{}
	}
	return ArticleResponse{
		ArticleID:   a.ArticleID,
		WorkspaceID: a.WorkspaceID,
		Title:       a.Title,
		Category:    a.Category,
		Content:     a.Content,
		Tags:        tags,
		CreatedAt:   a.CreatedAt,
		CreatedBy:   a.CreatedBy,
	}
}
