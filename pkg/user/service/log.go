package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/chainsafe/social-wallet-api/internal/metrics"
	apperrors "github.com/chainsafe/social-wallet-api/pkg/app/errors"
	"github.com/chainsafe/social-wallet-api/pkg/user"
)

const serviceName = "RegistrationService"

const inviteCodeDisplaySize = 3

// logService wraps Service with automatic logging of all method calls
type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the registration Service.
// It logs method entry/exit, duration and errors, and records registration metrics.
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{
		svc:    svc,
		logger: logger,
	}
}

// Register wraps the service method with logging
func (ls *logService) Register(ctx context.Context, identityID, inviteCode string) (usr *user.User, err error) {
	start := time.Now()

	ls.logger.Info("Register started",
		zap.String("service", serviceName),
		zap.String("method", "Register"),
		zap.String("identity_id", identityID),
		zap.String("invite_code", maskCode(inviteCode)),
	)

	defer func() {
		duration := time.Since(start)
		metrics.RequestDuration.WithLabelValues(serviceName, "Register").Observe(duration.Seconds())
		metrics.RegistrationsTotal.WithLabelValues(metrics.Result(apperrors.KindOf(err), err)).Inc()

		if err != nil {
			ls.logger.Error("Register failed",
				zap.String("service", serviceName),
				zap.String("method", "Register"),
				zap.String("identity_id", identityID),
				zap.Duration("duration", duration),
				zap.Error(err),
			)
			return
		}

		ls.logger.Info("Register completed",
			zap.String("service", serviceName),
			zap.String("method", "Register"),
			zap.Int64("user_id", usr.ID),
			zap.String("wallet_address", usr.WalletAddress),
			zap.Duration("duration", duration),
		)
	}()

	return ls.svc.Register(ctx, identityID, inviteCode)
}

// maskCode keeps only the first characters of an invite code so logs cannot leak usable codes
func maskCode(code string) string {
	if len(code) <= inviteCodeDisplaySize {
		return "***"
	}
	return code[:inviteCodeDisplaySize] + "***"
}
