package services

import (
	"context"
	"log/slog"

	"github.com/agrisage/farm_management_app/internal/core/domain"
	portssvc "github.com/agrisage/farm_management_app/internal/core/ports/services"
	"github.com/agrisage/farm_management_app/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	WorkspaceAuthorizer portssvc.WorkspaceAuthorizerSvc
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(ctx)
	if logger == nil {
		return slog.Default()
	}
	return logger
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// AuthorizeFeature checks that the user may access a feature in the workspace
func (s *BaseService) AuthorizeFeature(ctx context.Context, userID, workspaceID string, feature domain.Feature) error {
	if s.WorkspaceAuthorizer != nil {
		return s.WorkspaceAuthorizer.AuthorizeFeatureAccess(ctx, userID, workspaceID, feature)
	}
	// No authorizer wired; log and allow. Only the workspace service itself
	// runs in this mode, since it is the authorizer.
	s.LogDebug(ctx, "No workspace authorizer provided, access granted by default",
		slog.String("user_id", userID),
		slog.String("workspace_id", workspaceID),
		slog.String("feature", string(feature)))
	return nil
}
