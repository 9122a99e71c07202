package http

import (
	"net/http"

	"github.com/MKhiriev/go-securnote/internal/app"
	"github.com/MKhiriev/go-securnote/internal/logger"
	"github.com/MKhiriev/go-securnote/internal/utils"
	"github.com/MKhiriev/go-securnote/internal/validators"
	"github.com/rs/zerolog"
)

const basicAuthRealm = `Basic realm="securnote", charset="UTF-8"`

// basicAuth authenticates the caller with HTTP Basic credentials on every
// request.
//
// It delegates to [service.IdentityFacade.Login], which checks the password
// and the certificate. On success the username and the derived note key are
// stored in the request context. An unknown user, a wrong password and a
// revoked certificate all produce the same 401 answer.
func (h *Handler) basicAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		username, password, ok := r.BasicAuth()
		if !ok {
			log.Debug().Err(ErrEmptyAuthorizationHeader).Msg("basic credentials missing")
			unauthorized(w)
			return
		}
		if err := validators.ValidateUsername(username); err != nil {
			log.Debug().Err(err).Msg("malformed username in basic credentials")
			unauthorized(w)
			return
		}

		ctx := r.Context()
		key, err := h.services.Identity.Login(ctx, username, password)
		if err != nil {
			if statusFromError(err) == http.StatusUnauthorized {
				log.Info().Str("username", username).Msg("login refused")
				unauthorized(w)
				return
			}
			writeError(w, r, err)
			return
		}

		l := log.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("username", username)
		})
		ctx = l.WithContext(ctx)
		ctx = utils.WithUsername(ctx, username)
		ctx = utils.WithNoteKey(ctx, key)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", basicAuthRealm)
	http.Error(w, app.MsgInvalidCredentialsOrAccess, http.StatusUnauthorized)
}

// adminAuth enforces a valid administrator bearer token.
func (h *Handler) adminAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Debug().Err(ErrEmptyAuthorizationHeader).Send()
			http.Error(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Debug().Err(err).Send()
			http.Error(w, ErrInvalidAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.Admin.ParseToken(ctx, tokenString)
		if err != nil {
			writeError(w, r, err)
			return
		}

		ctx = utils.WithAdmin(ctx, token.Admin)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
