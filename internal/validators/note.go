package validators

import (
	"context"

	"github.com/MKhiriev/go-securnote/models"
)

const (
	FieldTitle   = "title"
	FieldContent = "content"
)

const (
	maxTitleLength   = 256
	maxContentLength = 1 << 16
)

// NoteValidator checks plaintext note requests before they are encrypted.
type NoteValidator struct{}

func NewNoteValidator() Validator {
	return &NoteValidator{}
}

func (v *NoteValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.NoteRequest:
		return v.validateNoteRequest(value, fields...)
	case *models.NoteRequest:
		return v.validateNoteRequest(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *NoteValidator) validateNoteRequest(r models.NoteRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldContent}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if r.Title == "" {
				return ErrEmptyTitle
			}
			if len(r.Title) > maxTitleLength {
				return ErrTitleTooLong
			}
		case FieldContent:
			if len(r.Content) > maxContentLength {
				return ErrContentTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
