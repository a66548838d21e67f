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

// RegisterRoutes registers the social wallet endpoints on the given chi router.
// The router must carry the identity middleware.
func RegisterRoutes(r chi.Router, service Service, logger *zap.Logger) {
	h := &HTTP{
		service: service,
		logger:  logger,
	}

	r.Route("/social-wallet", func(r chi.Router) {
		r.Post("/challenge", apphttp.HandleError(logger, h.issueChallenge))
		r.Post("/verify", apphttp.HandleError(logger, h.verify))
	})
}

func (h *HTTP) issueChallenge(w http.ResponseWriter, r *http.Request) error {
	identityID, err := auth.RequireIdentityID(r.Context())
	if err != nil {
		return err
	}

	var req user.ChallengeRequest
	if err = apphttp.DecodeJSON(r, &req); err != nil {
		return err
	}

	ch, err := h.service.IssueChallenge(r.Context(), identityID, req.Address)
	if err != nil {
		return err
	}

	apphttp.WriteData(w, http.StatusOK, ch)
	return nil
}

func (h *HTTP) verify(w http.ResponseWriter, r *http.Request) error {
	identityID, err := auth.RequireIdentityID(r.Context())
	if err != nil {
		return err
	}

	var req user.VerifyRequest
	if err = apphttp.DecodeJSON(r, &req); err != nil {
		return err
	}

	usr, err := h.service.VerifyAndLink(r.Context(), identityID, req.Signature)
	if err != nil {
		return err
	}

	apphttp.WriteData(w, http.StatusOK, usr)
	return nil
}
