// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-securnote/internal/app"
	"github.com/MKhiriev/go-securnote/internal/logger"
	"github.com/MKhiriev/go-securnote/internal/service"
	"github.com/MKhiriev/go-securnote/internal/utils"
	"github.com/MKhiriev/go-securnote/internal/validators"
	"github.com/MKhiriev/go-securnote/models"
)

// register creates an identity and answers 201 with its certificate record.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := utils.DecodeJSON(r, &creds); err != nil {
		log.Debug().Err(err).Msg("invalid register body")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	if err := h.identityValidator.Validate(ctx, creds, validators.FieldUsername, validators.FieldPassword); err != nil {
		log.Debug().Err(err).Msg("register request failed validation")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	cert, err := h.services.Identity.CreateIdentity(ctx, creds.Username, creds.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Str("username", creds.Username).Str("cert_id", cert.CertID).Msg("identity registered")
	if _, err = utils.WriteJSON(w, cert.Record(), http.StatusCreated); err != nil {
		log.Err(err).Msg("error writing register response")
	}
}

// login runs behind basicAuth, so reaching it means access was granted.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	username, _ := utils.GetUsernameFromContext(r.Context())

	resp := models.LoginResponse{Username: username, AccessGranted: true}
	if _, err := utils.WriteJSON(w, resp, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing login response")
	}
}

// createChallenge issues a one-time challenge together with the salt the
// client needs to compute its proof.
func (h *Handler) createChallenge(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.ChallengeRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		log.Debug().Err(err).Msg("invalid challenge body")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	if err := h.identityValidator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Msg("challenge request failed validation")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	params, err := h.services.Identity.CreateChallenge(ctx, req.Username)
	if errors.Is(err, service.ErrUnknownUser) {
		// the decoy challenge is never stored, so any proof for it fails
		log.Debug().Str("username", req.Username).Msg("challenge requested for unknown user")
		params, err = h.decoy.params(req.Username), nil
	}
	if err != nil {
		writeError(w, r, err)
		return
	}

	if _, err = utils.WriteJSON(w, params, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing challenge response")
	}
}

// verifyChallenge checks a proof. A wrong proof or an unknown challenge is
// answered with 401 and authenticated=false; an expired or already used
// challenge gets its own message.
func (h *Handler) verifyChallenge(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.ProofRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		log.Debug().Err(err).Msg("invalid proof body")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	if err := h.identityValidator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Msg("proof request failed validation")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	ok, err := h.services.Identity.VerifyProof(ctx, req.Username, req.Challenge, req.Proof)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if ok {
		ok, err = h.services.Identity.IsAccessValid(ctx, req.Username)
		if err != nil {
			writeError(w, r, err)
			return
		}
	}

	status := http.StatusOK
	if !ok {
		status = http.StatusUnauthorized
	}
	log.Info().Str("username", req.Username).Bool("authenticated", ok).Msg("challenge verified")

	if _, err = utils.WriteJSON(w, models.ProofResponse{Authenticated: ok}, status); err != nil {
		log.Err(err).Msg("error writing proof response")
	}
}

// certificate returns the caller's own certificate record.
func (h *Handler) certificate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	username, _ := utils.GetUsernameFromContext(ctx)

	cert, err := h.services.Identity.Certificate(ctx, username)
	if err != nil {
		if errors.Is(err, service.ErrUnknownUser) {
			err = service.ErrCertificateNotFound
		}
		writeError(w, r, err)
		return
	}

	if _, err = utils.WriteJSON(w, cert.Record(), http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing certificate response")
	}
}
