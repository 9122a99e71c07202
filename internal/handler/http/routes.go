package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router with every SecurNote route.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RealIP)
	router.Use(h.withTraceID)
	router.Use(h.withRemoteAddr)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/user/register", h.register)
		r.Post("/api/user/challenge", h.createChallenge)
		r.Post("/api/user/challenge/verify", h.verifyChallenge)
	})

	// basic auth: password, certificate and note key checked per request
	router.Group(func(r chi.Router) {
		r.Use(h.basicAuth)

		r.Post("/api/user/login", h.login)
		r.Get("/api/user/certificate", h.certificate)

		r.Post("/api/notes", h.createNote)
		r.Get("/api/notes", h.listNotes)
		r.Get("/api/notes/{noteID}", h.getNote)
		r.Delete("/api/notes/{noteID}", h.deleteNote)
	})

	if h.services.Admin.Enabled() {
		router.Post("/api/admin/login", h.adminLogin)

		router.Group(func(r chi.Router) {
			r.Use(h.adminAuth)

			r.Get("/api/admin/ca", h.authorityPublicKey)
			r.Get("/api/admin/crl", h.revocationList)
			r.Get("/api/admin/certificates/{username}", h.userInfo)
			r.Post("/api/admin/certificates/{username}/revoke", h.revokeCertificate)
			r.Post("/api/admin/certificates/{username}/issue", h.issueCertificate)
			r.Post("/api/admin/challenges/sweep", h.sweepChallenges)
			r.Get("/api/admin/activity", h.recentActivity)
			r.Get("/api/admin/activity/{username}", h.userActivity)
		})
	}

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
