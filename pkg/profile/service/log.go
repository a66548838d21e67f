package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/chainsafe/social-wallet-api/internal/metrics"
	"github.com/chainsafe/social-wallet-api/pkg/user"
)

const serviceName = "ProfileService"

// logService wraps Service with automatic logging of all method calls.
// Reads log at debug level; writes and failures at info and error.
type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the profile Service
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{
		svc:    svc,
		logger: logger,
	}
}

func (ls *logService) observe(method string, start time.Time, err error, fields ...zap.Field) {
	duration := time.Since(start)
	metrics.RequestDuration.WithLabelValues(serviceName, method).Observe(duration.Seconds())

	fields = append([]zap.Field{
		zap.String("service", serviceName),
		zap.String("method", method),
		zap.Duration("duration", duration),
	}, fields...)

	if err != nil {
		ls.logger.Error(method+" failed", append(fields, zap.Error(err))...)
		return
	}
	ls.logger.Debug(method+" completed", fields...)
}

// GetMe wraps the service method with logging
func (ls *logService) GetMe(ctx context.Context, identityID string) (usr *user.User, err error) {
	defer func(start time.Time) {
		ls.observe("GetMe", start, err, zap.String("identity_id", identityID))
	}(time.Now())
	return ls.svc.GetMe(ctx, identityID)
}

// GetByWallet wraps the service method with logging
func (ls *logService) GetByWallet(ctx context.Context, address string) (usr *user.User, err error) {
	defer func(start time.Time) {
		ls.observe("GetByWallet", start, err, zap.String("address", address))
	}(time.Now())
	return ls.svc.GetByWallet(ctx, address)
}

// ListCandidates wraps the service method with logging
func (ls *logService) ListCandidates(ctx context.Context, identityID string, offset int, search string) (users []*user.User, err error) {
	defer func(start time.Time) {
		ls.observe("ListCandidates", start, err,
			zap.String("identity_id", identityID),
			zap.Int("offset", offset),
			zap.String("search", search),
			zap.Int("count", len(users)),
		)
	}(time.Now())
	return ls.svc.ListCandidates(ctx, identityID, offset, search)
}

// CheckUsersExist wraps the service method with logging
func (ls *logService) CheckUsersExist(ctx context.Context, addresses []string) (found []string, err error) {
	defer func(start time.Time) {
		ls.observe("CheckUsersExist", start, err,
			zap.Int("requested", len(addresses)),
			zap.Int("found", len(found)),
		)
	}(time.Now())
	return ls.svc.CheckUsersExist(ctx, addresses)
}

// UpdateProfile wraps the service method with logging
func (ls *logService) UpdateProfile(ctx context.Context, identityID string, update *user.ProfileUpdate) (usr *user.User, err error) {
	ls.logger.Info("UpdateProfile started",
		zap.String("service", serviceName),
		zap.String("method", "UpdateProfile"),
		zap.String("identity_id", identityID),
	)
	defer func(start time.Time) {
		ls.observe("UpdateProfile", start, err, zap.String("identity_id", identityID))
	}(time.Now())
	return ls.svc.UpdateProfile(ctx, identityID, update)
}

// GetRecommendations wraps the service method with logging
func (ls *logService) GetRecommendations(ctx context.Context, identityID string) (recs []*user.RecommendedUser, err error) {
	defer func(start time.Time) {
		ls.observe("GetRecommendations", start, err,
			zap.String("identity_id", identityID),
			zap.Int("count", len(recs)),
		)
	}(time.Now())
	return ls.svc.GetRecommendations(ctx, identityID)
}

// RefreshProfile wraps the service method with logging
func (ls *logService) RefreshProfile(ctx context.Context, identityID string) (queued bool, err error) {
	defer func(start time.Time) {
		ls.observe("RefreshProfile", start, err,
			zap.String("identity_id", identityID),
			zap.Bool("queued", queued),
		)
	}(time.Now())
	return ls.svc.RefreshProfile(ctx, identityID)
}
