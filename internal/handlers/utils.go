package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
)

type contextKey string

const contextIdentityKey contextKey = "identity"

// Identity is the caller resolved from a verified bearer token.
type Identity struct {
	AccountID string
	Username  string
}

func identityFromContext(ctx context.Context) (Identity, error) {
	identity, ok := ctx.Value(contextIdentityKey).(Identity)
	if !ok || identity.AccountID == "" {
		return Identity{}, errors.New("missing identity")
	}
	return identity, nil
}

// APIResponse is the success envelope shared by all endpoints.
type APIResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// ErrorResponse is the failure envelope shared by all endpoints.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

func writeSuccess(w http.ResponseWriter, status int, data any, message string) {
	writeJSON(w, status, APIResponse{Success: true, Data: data, Message: message})
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Success: false, Error: message})
}

// clientIP extracts the caller address. The RealIP middleware has
// already rewritten RemoteAddr when a forwarding header is present.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
