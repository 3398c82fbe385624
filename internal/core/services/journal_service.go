package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/agrisage/farm_management_app/internal/apperrors"
	"github.com/agrisage/farm_management_app/internal/core/domain"
	portsrepo "github.com/agrisage/farm_management_app/internal/core/ports/repositories"
	portssvc "github.com/agrisage/farm_management_app/internal/core/ports/services"
	"github.com/agrisage/farm_management_app/internal/dto"
	"github.com/agrisage/farm_management_app/internal/utils"
)

// journalService implements portssvc.JournalSvcFacade. Entries are accepted
// even when debits and credits differ unless the request opts into strict
// validation; imbalances surface through reporting diagnostics instead.
type journalService struct {
	BaseService
	journalRepo portsrepo.JournalRepositoryFacade
}

var _ portssvc.JournalSvcFacade = (*journalService)(nil)

// JournalServiceOption configures the journal service.
type JournalServiceOption func(*journalService)

// WithJournalAuthorizer sets the workspace authorizer for the journal service.
func WithJournalAuthorizer(authorizer portssvc.WorkspaceAuthorizerSvc) JournalServiceOption {
	return func(s *journalService) {
		s.WorkspaceAuthorizer = authorizer
	}
}

// NewJournalService creates a new journal service.
func NewJournalService(journalRepo portsrepo.JournalRepositoryFacade, opts ...JournalServiceOption) portssvc.JournalSvcFacade {
	svc := &journalService{journalRepo: journalRepo}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// CreateEntry records a journal entry.
func (s *journalService) CreateEntry(ctx context.Context, workspaceID string, req dto.CreateJournalEntryRequest, requestingUserID string) (*domain.JournalEntry, error) {
	if err := s.AuthorizeFeature(ctx, requestingUserID, workspaceID, domain.FeatureFinancials); err != nil {
		return nil, err
	}

	entry := s.entryFromRequest(workspaceID, req, requestingUserID)
	if req.ValidateBalance && !entry.IsBalanced() {
		return nil, apperrors.NewValidationFailedError("journal entry debits and credits must be equal")
	}

	if err := s.journalRepo.SaveEntry(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to save journal entry", slog.String("workspace_id", workspaceID))
		return nil, err
	}
	s.LogInfo(ctx, "Journal entry recorded",
		slog.String("entry_id", entry.EntryID),
		slog.String("workspace_id", workspaceID),
		slog.Bool("balanced", entry.IsBalanced()))
	return &entry, nil
}

// ImportEntries persists a batch of entries atomically. Balance is never
// enforced on import.
func (s *journalService) ImportEntries(ctx context.Context, workspaceID string, req dto.ImportJournalEntriesRequest, requestingUserID string) ([]domain.JournalEntry, error) {
	if err := s.AuthorizeFeature(ctx, requestingUserID, workspaceID, domain.FeatureFinancials); err != nil {
		return nil, err
	}

	entries := make([]domain.JournalEntry, len(req.Entries))
	unbalanced := 0
	for i, entryReq := range req.Entries {
		entries[i] = s.entryFromRequest(workspaceID, entryReq, requestingUserID)
		if !entries[i].IsBalanced() {
			unbalanced++
		}
	}

	if err := s.journalRepo.SaveEntries(ctx, entries); err != nil {
		s.LogError(ctx, err, "Failed to import journal entries", slog.String("workspace_id", workspaceID), slog.Int("count", len(entries)))
		return nil, err
	}
	s.LogInfo(ctx, "Journal entries imported",
		slog.String("workspace_id", workspaceID),
		slog.Int("count", len(entries)),
		slog.Int("unbalanced", unbalanced))
	return entries, nil
}

// GetEntryByID retrieves a journal entry.
func (s *journalService) GetEntryByID(ctx context.Context, workspaceID, entryID, requestingUserID string) (*domain.JournalEntry, error) {
	if err := s.AuthorizeFeature(ctx, requestingUserID, workspaceID, domain.FeatureFinancials); err != nil {
		return nil, err
	}
	return s.journalRepo.FindEntryByID(ctx, workspaceID, entryID)
}

// ListEntries retrieves every journal entry in a workspace.
func (s *journalService) ListEntries(ctx context.Context, workspaceID, requestingUserID string) ([]domain.JournalEntry, error) {
	if err := s.AuthorizeFeature(ctx, requestingUserID, workspaceID, domain.FeatureFinancials); err != nil {
		return nil, err
	}
	return s.journalRepo.ListEntriesByWorkspace(ctx, workspaceID)
}

// UpdateEntry replaces an entry wholesale, lines included.
func (s *journalService) UpdateEntry(ctx context.Context, workspaceID, entryID string, req dto.UpdateJournalEntryRequest, requestingUserID string) (*domain.JournalEntry, error) {
	if err := s.AuthorizeFeature(ctx, requestingUserID, workspaceID, domain.FeatureFinancials); err != nil {
		return nil, err
	}

	existing, err := s.journalRepo.FindEntryByID(ctx, workspaceID, entryID)
	if err != nil {
		return nil, err
	}

	entry := s.entryFromRequest(workspaceID, dto.CreateJournalEntryRequest{
		Date:        req.Date,
		Description: req.Description,
		Currency:    req.Currency,
		Category:    req.Category,
		Lines:       req.Lines,
	}, requestingUserID)
	entry.EntryID = existing.EntryID
	entry.CreatedAt = existing.CreatedAt
	entry.CreatedBy = existing.CreatedBy

	if err := s.journalRepo.UpdateEntry(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to update journal entry", slog.String("entry_id", entryID))
		return nil, err
	}
	return &entry, nil
}

// DeleteEntry removes an entry and its lines.
func (s *journalService) DeleteEntry(ctx context.Context, workspaceID, entryID, requestingUserID string) error {
	if err := s.AuthorizeFeature(ctx, requestingUserID, workspaceID, domain.FeatureFinancials); err != nil {
		return err
	}
	if err := s.journalRepo.DeleteEntry(ctx, workspaceID, entryID); err != nil {
		s.LogError(ctx, err, "Failed to delete journal entry", slog.String("entry_id", entryID))
		return err
	}
	s.LogInfo(ctx, "Journal entry deleted", slog.String("entry_id", entryID), slog.String("workspace_id", workspaceID))
	return nil
}

func (s *journalService) entryFromRequest(workspaceID string, req dto.CreateJournalEntryRequest, requestingUserID string) domain.JournalEntry {
	now := time.Now().UTC()
	lines := make([]domain.JournalLine, len(req.Lines))
	for i, line := range req.Lines {
		lines[i] = domain.JournalLine{
			AccountID: line.AccountID,
			LineType:  domain.LineType(line.Type),
			Amount:    line.Amount,
			PlotID:    line.PlotID,
			SeasonID:  line.SeasonID,
		}
	}
	return domain.JournalEntry{
		EntryID:      utils.NewEntityID("je"),
		WorkspaceID:  workspaceID,
		EntryDate:    req.Date,
		Description:  req.Description,
		CurrencyCode: req.Currency,
		Category:     req.Category,
		Lines:        lines,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     requestingUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: requestingUserID,
		},
	}
}
