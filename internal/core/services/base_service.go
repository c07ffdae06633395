package services

import (
	"context"
	"log/slog"

	"github.com/shepherdsuite/church_mgmt_app/internal/core/domain"
	portssvc "github.com/shepherdsuite/church_mgmt_app/internal/core/ports/services"
	"github.com/shepherdsuite/church_mgmt_app/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	ChurchAuthorizer portssvc.ChurchAuthorizerSvc
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

// LogWarn logs a warning message with consistent formatting
func (s *BaseService) LogWarn(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Warn(msg, keyvals...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Debug(msg, keyvals...)
}

// AuthorizeChurchAction checks that an account holds the required role in a church
func (s *BaseService) AuthorizeChurchAction(ctx context.Context, accountID, churchID string, requiredRole domain.ChurchRole) error {
	if s.ChurchAuthorizer != nil {
		return s.ChurchAuthorizer.AuthorizeAction(ctx, accountID, churchID, requiredRole)
	}
	s.LogDebug(ctx, "No church authorizer provided, access granted by default",
		slog.String("account_id", accountID),
		slog.String("church_id", churchID),
		slog.String("required_role", string(requiredRole)))
	return nil
}
