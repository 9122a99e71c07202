package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-securnote/internal/logger"
	"github.com/MKhiriev/go-securnote/internal/store"
	"github.com/MKhiriev/go-securnote/internal/utils"
	"github.com/MKhiriev/go-securnote/models"
)

// activityRecorder writes audit records. A failed write is logged and
// never fails the audited operation.
type activityRecorder struct {
	repository store.ActivityRepository
	now        func() time.Time
}

func newActivityRecorder(repository store.ActivityRepository) *activityRecorder {
	return &activityRecorder{repository: repository, now: time.Now}
}

func (a *activityRecorder) record(ctx context.Context, username string, action models.ActivityAction, success bool, details string) {
	if a == nil || a.repository == nil {
		return
	}

	rec := models.ActivityRecord{
		Timestamp:  a.now().UTC(),
		Username:   username,
		Action:     action,
		Details:    details,
		RemoteAddr: utils.GetRemoteAddrFromContext(ctx),
		Success:    success,
	}

	if err := a.repository.Log(ctx, rec); err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Str("username", username).
			Str("action", string(action)).
			Msg("error writing activity record")
	}
}
