// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-coreapi/internal/app"
	"github.com/MKhiriev/go-coreapi/internal/logger"
)

type authorizeRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type authorizeResponse struct {
	Login      string `json:"login"`
	Authorized bool   `json:"authorized"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// authorize answers 200 when the user is authorized and 403 when CoreAPI
// rejects the credentials or the role does not match.
func (h *Handler) authorize(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromContext(ctx)

	var req authorizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: app.MsgInvalidDataProvided})
		return
	}
	req.Login = strings.TrimSpace(req.Login)
	if req.Login == "" || req.Password == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: app.MsgInvalidDataProvided})
		return
	}

	ok, err := h.services.AdminAuthService.AuthorizeUser(ctx, req.Login, req.Password)
	if err != nil {
		status := statusFromError(err)
		log.Err(err).Int("status", status).Str("login", req.Login).Msg("authorization failed")
		writeJSON(w, status, errorResponse{Error: messageFromStatus(status)})
		return
	}

	status := http.StatusOK
	if !ok {
		status = http.StatusForbidden
	}
	log.Info().Str("login", req.Login).Bool("authorized", ok).Msg("authorization decided")
	writeJSON(w, status, authorizeResponse{Login: req.Login, Authorized: ok})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
