package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-securnote/internal/config"
	"github.com/MKhiriev/go-securnote/internal/logger"
	"github.com/MKhiriev/go-securnote/internal/utils"
	"github.com/MKhiriev/go-securnote/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu       sync.RWMutex
	username string
	password string

	logger *logger.Logger
}

// NewHTTPServerAdapter returns the REST implementation of [ServerAdapter].
// The address may omit the scheme, in which case http is assumed.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetCredentials(username, password string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.username = username
	h.password = password
}

func (h *httpServerAdapter) Register(ctx context.Context, creds models.Credentials) (models.CertificateRecord, error) {
	var record models.CertificateRecord

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		SetResult(&record).
		Post("/api/user/register")
	if err != nil {
		return models.CertificateRecord{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.CertificateRecord{}, err
	}

	h.logger.Debug().Str("cert_id", record.CertID).Msg("registered")
	h.SetCredentials(creds.Username, creds.Password)
	return record, nil
}

func (h *httpServerAdapter) Login(ctx context.Context) (models.LoginResponse, error) {
	var login models.LoginResponse

	req, err := h.authedRequest(ctx)
	if err != nil {
		return login, err
	}

	resp, err := req.SetResult(&login).Post("/api/user/login")
	if err != nil {
		return login, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}

	return login, nil
}

func (h *httpServerAdapter) RequestChallenge(ctx context.Context, username string) (models.ChallengeParams, error) {
	var params models.ChallengeParams

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.ChallengeRequest{Username: username}).
		SetResult(&params).
		Post("/api/user/challenge")
	if err != nil {
		return params, fmt.Errorf("challenge request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ChallengeParams{}, err
	}

	return params, nil
}

// VerifyChallenge returns authenticated=false without an error when the
// server rejected the proof itself.
func (h *httpServerAdapter) VerifyChallenge(ctx context.Context, proof models.ProofRequest) (models.ProofResponse, error) {
	var result models.ProofResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(proof).
		SetResult(&result).
		Post("/api/user/challenge/verify")
	if err != nil {
		return result, fmt.Errorf("verify request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		if errors.Is(err, ErrUnauthorized) {
			return models.ProofResponse{Authenticated: false}, nil
		}
		return models.ProofResponse{}, err
	}

	return result, nil
}

func (h *httpServerAdapter) Certificate(ctx context.Context) (models.CertificateRecord, error) {
	var record models.CertificateRecord

	req, err := h.authedRequest(ctx)
	if err != nil {
		return record, err
	}

	resp, err := req.SetResult(&record).Get("/api/user/certificate")
	if err != nil {
		return record, fmt.Errorf("certificate request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.CertificateRecord{}, err
	}

	return record, nil
}

func (h *httpServerAdapter) CreateNote(ctx context.Context, note models.NoteRequest) (string, error) {
	var created models.NoteCreatedResponse

	req, err := h.authedRequest(ctx)
	if err != nil {
		return "", err
	}

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(note).
		SetResult(&created).
		Post("/api/notes")
	if err != nil {
		return "", fmt.Errorf("create note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return created.NoteID, nil
}

func (h *httpServerAdapter) ListNotes(ctx context.Context) ([]models.PlainNote, error) {
	var notes []models.PlainNote

	req, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := req.SetResult(&notes).Get("/api/notes")
	if err != nil {
		return nil, fmt.Errorf("list notes request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return notes, nil
}

func (h *httpServerAdapter) GetNote(ctx context.Context, noteID string) (models.PlainNote, error) {
	var note models.PlainNote

	req, err := h.authedRequest(ctx)
	if err != nil {
		return note, err
	}

	resp, err := req.
		SetPathParam("noteID", noteID).
		SetResult(&note).
		Get("/api/notes/{noteID}")
	if err != nil {
		return note, fmt.Errorf("get note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PlainNote{}, err
	}

	return note, nil
}

func (h *httpServerAdapter) DeleteNote(ctx context.Context, noteID string) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := req.
		SetPathParam("noteID", noteID).
		Delete("/api/notes/{noteID}")
	if err != nil {
		return fmt.Errorf("delete note request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) (*resty.Request, error) {
	h.mu.RLock()
	username, password := h.username, h.password
	h.mu.RUnlock()

	if username == "" {
		return nil, ErrNoCredentials
	}

	return h.client.R().
		SetContext(ctx).
		SetBasicAuth(username, password), nil
}
