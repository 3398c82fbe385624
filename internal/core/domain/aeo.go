package domain

import "time"

// Farmer is an outreach record kept by an agricultural extension officer.
type Farmer struct {
	FarmerID    string   `json:"farmerID"` // Primary Key
	WorkspaceID string   `json:"workspaceID"`
	Name        string   `json:"name"`
	Location    string   `json:"location"`
	Contact     string   `json:"contact"`
	FarmSize    float64  `json:"farmSize"`
	Crops       []string `json:"crops"`
	Notes       string   `json:"notes"`
}

// InteractionType classifies contact with a farmer.
type InteractionType string

const (
	InteractionVisit    InteractionType = "Visit"
	InteractionCall     InteractionType = "Call"
	InteractionMeeting  InteractionType = "Meeting"
	InteractionTraining InteractionType = "Training"
)

// Interaction records one contact between an extension officer and a farmer.
type Interaction struct {
	InteractionID string          `json:"interactionID"` // Primary Key
	WorkspaceID   string          `json:"workspaceID"`
	FarmerID      string          `json:"farmerId"`
	Date          time.Time       `json:"date"`
	Type          InteractionType `json:"type"`
	Summary       string          `json:"summary"`
	AEOID         string          `json:"aeoId"` // UserID of the extension officer
}

// KnowledgeBaseArticle is reference material shared with farmers.
type KnowledgeBaseArticle struct {
	ArticleID   string   `json:"articleID"` // Primary Key
	WorkspaceID string   `json:"workspaceID"`
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	Content     string   `json:"content"`
	Tags        []string `json:"tags"`
	AuditFields
}
