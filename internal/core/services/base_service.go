package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/SscSPs/bizbooks/internal/apperrors"
	portsrepo "github.com/SscSPs/bizbooks/internal/core/ports/repositories"
	"github.com/SscSPs/bizbooks/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	repos portsrepo.RepositoryProvider
	txm   portsrepo.TransactionManager
	clock func() time.Time
}

func newBaseService(repos portsrepo.RepositoryProvider, txm portsrepo.TransactionManager, clock func() time.Time) BaseService {
	if clock == nil {
		clock = time.Now
	}
	return BaseService{repos: repos, txm: txm, clock: clock}
}

// now returns the current UTC time from the service clock.
func (s *BaseService) now() time.Time {
	return s.clock().UTC()
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
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

// logFailure logs err unless it is an expected client-side outcome. Errors
// caused by the request itself are returned to the caller without noise.
func (s *BaseService) logFailure(ctx context.Context, err error, msg string, keyvals ...any) {
	for _, expected := range []error{
		apperrors.ErrNotFound,
		apperrors.ErrValidation,
		apperrors.ErrInvalidAmount,
		apperrors.ErrDuplicate,
		apperrors.ErrUnbalancedEntry,
		apperrors.ErrInvalidState,
		apperrors.ErrSameAccount,
	} {
		if errors.Is(err, expected) {
			s.LogDebug(ctx, msg, append([]any{slog.String("reason", err.Error())}, keyvals...)...)
			return
		}
	}
	s.LogError(ctx, err, msg, keyvals...)
}
