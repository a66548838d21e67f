package service

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/social-wallet-api/pkg/app/errors"
	apphttp "github.com/chainsafe/social-wallet-api/pkg/app/http"
	"github.com/chainsafe/social-wallet-api/pkg/auth"
	"github.com/chainsafe/social-wallet-api/pkg/user"
)

// HTTP wraps the Service to provide HTTP endpoints
type HTTP struct {
	service Service
	logger  *zap.Logger
}

type refreshResponse struct {
	Queued bool `json:"queued"`
}

// RegisterRoutes registers the profile endpoints on the given chi router.
// The router must carry the identity middleware.
func RegisterRoutes(r chi.Router, service Service, logger *zap.Logger) {
	h := &HTTP{
		service: service,
		logger:  logger,
	}

	r.Route("/me", func(r chi.Router) {
		r.Get("/", apphttp.HandleError(logger, h.getMe))
		r.Patch("/", apphttp.HandleError(logger, h.updateMe))
		r.Post("/refresh", apphttp.HandleError(logger, h.refresh))
		r.Get("/recommendations", apphttp.HandleError(logger, h.recommendations))
	})
	r.Get("/candidates", apphttp.HandleError(logger, h.candidates))
	r.Get("/by-wallet/{address}", apphttp.HandleError(logger, h.byWallet))
	r.Post("/exists", apphttp.HandleError(logger, h.exists))
}

func (h *HTTP) getMe(w http.ResponseWriter, r *http.Request) error {
	identityID, err := auth.RequireIdentityID(r.Context())
	if err != nil {
		return err
	}

	usr, err := h.service.GetMe(r.Context(), identityID)
	if err != nil {
		return err
	}

	apphttp.WriteData(w, http.StatusOK, usr)
	return nil
}

func (h *HTTP) updateMe(w http.ResponseWriter, r *http.Request) error {
	identityID, err := auth.RequireIdentityID(r.Context())
	if err != nil {
		return err
	}

	var update user.ProfileUpdate
	if err = apphttp.DecodeJSON(r, &update); err != nil {
		return err
	}

	usr, err := h.service.UpdateProfile(r.Context(), identityID, &update)
	if err != nil {
		return err
	}

	apphttp.WriteData(w, http.StatusOK, usr)
	return nil
}

func (h *HTTP) refresh(w http.ResponseWriter, r *http.Request) error {
	identityID, err := auth.RequireIdentityID(r.Context())
	if err != nil {
		return err
	}

	queued, err := h.service.RefreshProfile(r.Context(), identityID)
	if err != nil {
		return err
	}

	apphttp.WriteData(w, http.StatusAccepted, &refreshResponse{Queued: queued})
	return nil
}

func (h *HTTP) recommendations(w http.ResponseWriter, r *http.Request) error {
	identityID, err := auth.RequireIdentityID(r.Context())
	if err != nil {
		return err
	}

	recs, err := h.service.GetRecommendations(r.Context(), identityID)
	if err != nil {
		return err
	}

	apphttp.WriteData(w, http.StatusOK, recs)
	return nil
}

func (h *HTTP) candidates(w http.ResponseWriter, r *http.Request) error {
	identityID, err := auth.RequireIdentityID(r.Context())
	if err != nil {
		return err
	}

	offset := 0
	if raw := r.URL.Query().Get("offset"); raw != "" {
		offset, err = strconv.Atoi(raw)
		if err != nil {
			return apperrors.BadRequestError(err, apperrors.KindInvalidRequest)
		}
	}

	users, err := h.service.ListCandidates(r.Context(), identityID, offset, r.URL.Query().Get("search"))
	if err != nil {
		return err
	}

	apphttp.WriteData(w, http.StatusOK, users)
	return nil
}

func (h *HTTP) byWallet(w http.ResponseWriter, r *http.Request) error {
	usr, err := h.service.GetByWallet(r.Context(), chi.URLParam(r, "address"))
	if err != nil {
		return err
	}

	apphttp.WriteData(w, http.StatusOK, usr)
	return nil
}

func (h *HTTP) exists(w http.ResponseWriter, r *http.Request) error {
	var req user.ExistsRequest
	if err := apphttp.DecodeJSON(r, &req); err != nil {
		return err
	}

	found, err := h.service.CheckUsersExist(r.Context(), req.Addresses)
	if err != nil {
		return err
	}

	apphttp.WriteData(w, http.StatusOK, found)
	return nil
}
