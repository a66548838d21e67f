package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/chainsafe/social-wallet-api/internal/metrics"
	apperrors "github.com/chainsafe/social-wallet-api/pkg/app/errors"
	"github.com/chainsafe/social-wallet-api/pkg/user"
)

const serviceName = "WalletLinkService"

const (
	signatureDisplaySize = 10
	messageDisplaySize   = 48
)

// logService wraps Service with automatic logging of all method calls
type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the wallet linking Service
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{
		svc:    svc,
		logger: logger,
	}
}

// IssueChallenge wraps the service method with logging
func (ls *logService) IssueChallenge(ctx context.Context, identityID, address string) (ch *user.SigningChallenge, err error) {
	start := time.Now()

	ls.logger.Info("IssueChallenge started",
		zap.String("service", serviceName),
		zap.String("method", "IssueChallenge"),
		zap.String("identity_id", identityID),
		zap.String("address", address),
	)

	defer func() {
		duration := time.Since(start)
		metrics.RequestDuration.WithLabelValues(serviceName, "IssueChallenge").Observe(duration.Seconds())

		if err != nil {
			ls.logger.Error("IssueChallenge failed",
				zap.String("service", serviceName),
				zap.String("method", "IssueChallenge"),
				zap.String("identity_id", identityID),
				zap.Duration("duration", duration),
				zap.Error(err),
			)
			return
		}

		metrics.ChallengesIssued.Inc()
		ls.logger.Info("IssueChallenge completed",
			zap.String("service", serviceName),
			zap.String("method", "IssueChallenge"),
			zap.Int64("user_id", ch.UserID),
			zap.String("message", truncate(ch.Message, messageDisplaySize)),
			zap.Duration("duration", duration),
		)
	}()

	return ls.svc.IssueChallenge(ctx, identityID, address)
}

// VerifyAndLink wraps the service method with logging
func (ls *logService) VerifyAndLink(ctx context.Context, identityID, signature string) (usr *user.User, err error) {
	start := time.Now()

	ls.logger.Info("VerifyAndLink started",
		zap.String("service", serviceName),
		zap.String("method", "VerifyAndLink"),
		zap.String("identity_id", identityID),
		zap.String("signature", truncate(signature, signatureDisplaySize)),
	)

	defer func() {
		duration := time.Since(start)
		metrics.RequestDuration.WithLabelValues(serviceName, "VerifyAndLink").Observe(duration.Seconds())
		metrics.WalletLinksTotal.WithLabelValues(metrics.Result(apperrors.KindOf(err), err)).Inc()

		if err != nil {
			ls.logger.Error("VerifyAndLink failed",
				zap.String("service", serviceName),
				zap.String("method", "VerifyAndLink"),
				zap.String("identity_id", identityID),
				zap.Duration("duration", duration),
				zap.Error(err),
			)
			return
		}

		ls.logger.Info("VerifyAndLink completed",
			zap.String("service", serviceName),
			zap.String("method", "VerifyAndLink"),
			zap.Int64("user_id", usr.ID),
			zap.Stringp("social_wallet", usr.SocialWallet),
			zap.Duration("duration", duration),
		)
	}()

	return ls.svc.VerifyAndLink(ctx, identityID, signature)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
