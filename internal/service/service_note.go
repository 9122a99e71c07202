package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-securnote/internal/crypto"
	"github.com/MKhiriev/go-securnote/internal/logger"
	"github.com/MKhiriev/go-securnote/internal/store"
	"github.com/MKhiriev/go-securnote/internal/utils"
	"github.com/MKhiriev/go-securnote/internal/validators"
	"github.com/MKhiriev/go-securnote/models"
)

// accessChecker is satisfied by CertificateService.
type accessChecker interface {
	IsAccessValid(ctx context.Context, username string) (bool, error)
}

type noteService struct {
	notes     store.NoteRepository
	cipher    crypto.Cipher
	access    accessChecker
	validator validators.Validator
	ids       *utils.UUIDGenerator
	activity  *activityRecorder

	now    func() time.Time
	logger *logger.Logger
}

func NewNoteService(notes store.NoteRepository, cipher crypto.Cipher, access accessChecker, activity store.ActivityRepository, log *logger.Logger) NoteService {
	return &noteService{
		notes:     notes,
		cipher:    cipher,
		access:    access,
		validator: validators.NewNoteValidator(),
		ids:       utils.NewUUIDGenerator(),
		activity:  newActivityRecorder(activity),
		now:       time.Now,
		logger:    log,
	}
}

// Create seals title and content under key, each with its own nonce, and
// stores the result. It returns the new note id.
func (n *noteService) Create(ctx context.Context, username string, note models.NoteRequest, key []byte) (string, error) {
	if err := n.validator.Validate(ctx, note); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if err := n.checkAccess(ctx, username); err != nil {
		return "", err
	}

	titleCiphertext, titleNonce, err := n.cipher.Encrypt(key, note.Title)
	if err != nil {
		return "", fmt.Errorf("error encrypting note title: %w", err)
	}
	contentCiphertext, contentNonce, err := n.cipher.Encrypt(key, note.Content)
	if err != nil {
		return "", fmt.Errorf("error encrypting note content: %w", err)
	}

	stored := models.Note{
		NoteID:            n.ids.Generate(),
		Username:          username,
		TitleCiphertext:   titleCiphertext,
		TitleNonce:        titleNonce,
		ContentCiphertext: contentCiphertext,
		ContentNonce:      contentNonce,
		CreatedAt:         n.now().UTC(),
	}
	if err = n.notes.Save(ctx, stored); err != nil {
		logger.FromContext(ctx).Err(err).Str("username", username).Msg("error saving note")
		n.activity.record(ctx, username, models.ActionNoteCreate, false, err.Error())
		return "", fmt.Errorf("error saving note: %w", err)
	}

	n.activity.record(ctx, username, models.ActionNoteCreate, true, stored.NoteID)
	return stored.NoteID, nil
}

func (n *noteService) List(ctx context.Context, username string, key []byte) ([]models.PlainNote, error) {
	if err := n.checkAccess(ctx, username); err != nil {
		return nil, err
	}

	notes, err := n.notes.ListByUser(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("error listing notes: %w", err)
	}

	result := make([]models.PlainNote, 0, len(notes))
	for _, note := range notes {
		title, err := n.cipher.Decrypt(key, note.TitleCiphertext, note.TitleNonce)
		if err != nil {
			logger.FromContext(ctx).Err(err).Str("note_id", note.NoteID).Msg("error decrypting note title")
			return nil, fmt.Errorf("note %s: %w", note.NoteID, err)
		}
		result = append(result, models.PlainNote{
			NoteID:    note.NoteID,
			Title:     title,
			CreatedAt: note.CreatedAt,
		})
	}

	return result, nil
}

func (n *noteService) Get(ctx context.Context, username, noteID string, key []byte) (models.PlainNote, error) {
	if err := n.checkAccess(ctx, username); err != nil {
		return models.PlainNote{}, err
	}

	note, err := n.notes.Get(ctx, username, noteID)
	if errors.Is(err, store.ErrNoteNotFound) {
		return models.PlainNote{}, ErrNoteNotFound
	}
	if err != nil {
		return models.PlainNote{}, fmt.Errorf("error reading note: %w", err)
	}

	title, err := n.cipher.Decrypt(key, note.TitleCiphertext, note.TitleNonce)
	if err != nil {
		return models.PlainNote{}, fmt.Errorf("note %s title: %w", noteID, err)
	}
	content, err := n.cipher.Decrypt(key, note.ContentCiphertext, note.ContentNonce)
	if err != nil {
		return models.PlainNote{}, fmt.Errorf("note %s content: %w", noteID, err)
	}

	return models.PlainNote{
		NoteID:    note.NoteID,
		Title:     title,
		Content:   content,
		CreatedAt: note.CreatedAt,
	}, nil
}

func (n *noteService) Delete(ctx context.Context, username, noteID string) (bool, error) {
	if err := n.checkAccess(ctx, username); err != nil {
		return false, err
	}

	deleted, err := n.notes.Delete(ctx, username, noteID)
	if err != nil {
		return false, fmt.Errorf("error deleting note: %w", err)
	}

	n.activity.record(ctx, username, models.ActionNoteDelete, deleted, noteID)
	return deleted, nil
}

func (n *noteService) checkAccess(ctx context.Context, username string) error {
	valid, err := n.access.IsAccessValid(ctx, username)
	if err != nil {
		return err
	}
	if !valid {
		return ErrCertificateInvalidOrRevoked
	}
	return nil
}
