package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-securnote/internal/app"
	"github.com/MKhiriev/go-securnote/internal/logger"
	"github.com/MKhiriev/go-securnote/internal/service"
	"github.com/MKhiriev/go-securnote/internal/utils"
	"github.com/MKhiriev/go-securnote/internal/validators"
	"github.com/MKhiriev/go-securnote/models"
	"github.com/go-chi/chi/v5"
)

const (
	defaultActivityLimit = 100
	maxActivityLimit     = 1000
)

// adminLogin exchanges the administrator credentials for a bearer token
// returned in the Authorization header.
func (h *Handler) adminLogin(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := utils.DecodeJSON(r, &creds); err != nil {
		log.Debug().Err(err).Msg("invalid admin login body")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	token, err := h.services.Admin.Login(r.Context(), creds.Username, creds.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Str("admin", token.Admin).Msg("admin logged in")
	w.Header().Set("Authorization", "Bearer "+token.String())
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) authorityPublicKey(w http.ResponseWriter, r *http.Request) {
	pemBytes, err := h.services.Identity.AuthorityPublicKey()
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/x-pem-file")
	w.WriteHeader(http.StatusOK)
	if _, err = w.Write(pemBytes); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing authority key")
	}
}

func (h *Handler) revocationList(w http.ResponseWriter, r *http.Request) {
	entries, err := h.services.Identity.RevokedCertificates(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	if entries == nil {
		entries = []models.RevocationEntry{}
	}

	if _, err = utils.WriteJSON(w, entries, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing revocation list")
	}
}

func (h *Handler) userInfo(w http.ResponseWriter, r *http.Request) {
	username, ok := usernameParam(w, r)
	if !ok {
		return
	}

	info, err := h.services.Identity.UserInfo(r.Context(), username)
	if err != nil {
		writeAdminError(w, r, err)
		return
	}

	if _, err = utils.WriteJSON(w, info, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing user info")
	}
}

func (h *Handler) revokeCertificate(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	username, ok := usernameParam(w, r)
	if !ok {
		return
	}

	var req models.RevokeRequest
	if r.ContentLength != 0 {
		if err := utils.DecodeJSON(r, &req); err != nil {
			log.Debug().Err(err).Msg("invalid revoke body")
			http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
			return
		}
	}

	ctx := r.Context()
	if err := h.identityValidator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Msg("revoke request failed validation")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	revoked, err := h.services.Identity.Revoke(ctx, username, req.Reason)
	if err != nil {
		writeError(w, r, err)
		return
	}

	admin, _ := utils.GetAdminFromContext(ctx)
	log.Info().Str("admin", admin).Str("username", username).Bool("revoked", revoked).Msg("certificate revocation requested")

	if _, err = utils.WriteJSON(w, models.RevokeResponse{Revoked: revoked}, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing revoke response")
	}
}

func (h *Handler) issueCertificate(w http.ResponseWriter, r *http.Request) {
	username, ok := usernameParam(w, r)
	if !ok {
		return
	}

	cert, err := h.services.Identity.EnsureCertificate(r.Context(), username)
	if err != nil {
		writeAdminError(w, r, err)
		return
	}

	if _, err = utils.WriteJSON(w, cert.Record(), http.StatusCreated); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing certificate")
	}
}

func (h *Handler) sweepChallenges(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.services.Identity.SweepExpiredChallenges(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	if _, err = utils.WriteJSON(w, models.SweepResponse{Deleted: deleted}, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing sweep response")
	}
}

func (h *Handler) recentActivity(w http.ResponseWriter, r *http.Request) {
	limit, ok := limitParam(w, r)
	if !ok {
		return
	}

	records, err := h.services.Identity.RecentActivity(r.Context(), limit)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeActivity(w, r, records)
}

func (h *Handler) userActivity(w http.ResponseWriter, r *http.Request) {
	username, ok := usernameParam(w, r)
	if !ok {
		return
	}
	limit, ok := limitParam(w, r)
	if !ok {
		return
	}

	records, err := h.services.Identity.UserActivity(r.Context(), username, limit)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeActivity(w, r, records)
}

func writeActivity(w http.ResponseWriter, r *http.Request, records []models.ActivityRecord) {
	if records == nil {
		records = []models.ActivityRecord{}
	}
	if _, err := utils.WriteJSON(w, records, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing activity")
	}
}

// writeAdminError reports unknown users as 404: the admin API is not
// subject to the enumeration rule of the user routes.
func writeAdminError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, service.ErrUnknownUser) {
		http.Error(w, app.MsgUserNotFound, http.StatusNotFound)
		return
	}
	writeError(w, r, err)
}

func usernameParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	username := chi.URLParam(r, "username")
	if err := validators.ValidateUsername(username); err != nil {
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return "", false
	}
	return username, true
}

// limitParam reads ?limit=, defaulting to 100 and capped at 1000.
func limitParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return defaultActivityLimit, true
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return 0, false
	}
	return min(limit, maxActivityLimit), true
}
