package service

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apphttp "github.com/chainsafe/social-wallet-api/pkg/app/http"
	"github.com/chainsafe/social-wallet-api/pkg/auth"
	"github.com/chainsafe/social-wallet-api/pkg/user"
)

// HTTP wraps the Service to provide HTTP endpoints
type HTTP struct {
	service Service
	logger  *zap.Logger
}

// RegisterRoutes registers HTTP endpoints for registration service on the given chi router.
// The router must carry the identity middleware.
func RegisterRoutes(r chi.Router, service Service, logger *zap.Logger) {
	h := &HTTP{
		service: service,
		logger:  logger,
	}

	r.Post("/register", apphttp.HandleError(logger, h.register))
}

func (h *HTTP) register(w http.ResponseWriter, r *http.Request) error {
	identityID, err := auth.RequireIdentityID(r.Context())
	if err != nil {
		return err
	}

	var req user.RegisterRequest
	if err = apphttp.DecodeJSON(r, &req); err != nil {
		return err
	}

	created, err := h.service.Register(r.Context(), identityID, req.InviteCode)
	if err != nil {
		return err
	}

	apphttp.WriteData(w, http.StatusCreated, created)
	return nil
}
