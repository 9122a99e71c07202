// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-securnote/internal/app"
	"github.com/go-chi/chi/v5"
)

var routableMethods = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
}

// CheckHTTPMethod returns the router's MethodNotAllowed handler. It answers
// 405 with an Allow header listing the methods the matched route accepts,
// found by asking the router which methods match the request path.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var allowed []string
		for _, method := range routableMethods {
			if method == r.Method {
				continue
			}
			if router.Match(chi.NewRouteContext(), method, r.URL.Path) {
				allowed = append(allowed, method)
			}
		}

		if len(allowed) == 0 {
			http.NotFound(w, r)
			return
		}

		w.Header().Set("Allow", strings.Join(allowed, ", "))
		http.Error(w, app.MsgMethodNotAllowed, http.StatusMethodNotAllowed)
	}
}
