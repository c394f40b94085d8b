package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/mail"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/hanbit-board/apiserver/internal/credential"
	"github.com/hanbit-board/apiserver/internal/services"
	"github.com/hanbit-board/apiserver/internal/token"
)

// AuthHandler provides the signup and login endpoints.
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler constructs an AuthHandler with the provided dependencies.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// AuthRouter registers auth routes on the given router.
func AuthRouter(r chi.Router, authService *services.AuthService) {
	handler := NewAuthHandler(authService)

	r.Post("/signup", handler.Signup)
	r.Post("/login", handler.Login)
}

// RequireAuth verifies the bearer token and injects the caller's
// identity into the request context. On any parse failure the handler
// never runs. Nothing is cached across requests.
func RequireAuth(codec *token.Codec) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString, err := bearerToken(r)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			claims, err := codec.Parse(tokenString)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			identity := Identity{AccountID: claims.Subject, Username: claims.Username}
			ctx := context.WithValue(r.Context(), contextIdentityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Signup creates a new account.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	req.ID = strings.TrimSpace(req.ID)
	if req.ID == "" || req.Password == "" || req.Username == "" {
		writeError(w, http.StatusBadRequest, "missing required fields")
		return
	}
	if _, err := mail.ParseAddress(req.ID); err != nil {
		writeError(w, http.StatusBadRequest, "id must be a valid email")
		return
	}

	user, err := h.authService.Signup(r.Context(), req.ID, req.Password, req.Username)
	if err != nil {
		var policyErr *credential.PolicyError
		switch {
		case errors.Is(err, services.ErrAccountExists):
			writeError(w, http.StatusBadRequest, "account already exists")
		case errors.As(err, &policyErr):
			writeError(w, http.StatusBadRequest, policyErr.Error())
		default:
			writeError(w, http.StatusInternalServerError, "failed to create account")
		}
		return
	}

	writeSuccess(w, http.StatusCreated, SignupData{
		ID:        user.ID,
		Username:  user.Username,
		CreatedAt: user.CreatedAt,
	}, "User created successfully")
}

// Login verifies credentials and returns an access token.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	req.ID = strings.TrimSpace(req.ID)
	if req.ID == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "missing credentials")
		return
	}

	accessToken, err := h.authService.Login(r.Context(), req.ID, req.Password, clientIP(r))
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to authenticate")
		return
	}

	writeSuccess(w, http.StatusOK, LoginData{AccessToken: accessToken}, "Login successful")
}

type SignupRequest struct {
	ID       string `json:"id"`
	Password string `json:"password"`
	Username string `json:"username"`
}

type SignupData struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
}

type LoginRequest struct {
	ID       string `json:"id"`
	Password string `json:"password"`
}

type LoginData struct {
	AccessToken string `json:"access_token"`
}

func bearerToken(r *http.Request) (string, error) {
	auth := strings.TrimSpace(r.Header.Get("Authorization"))
	if auth == "" {
		return "", errors.New("missing authorization")
	}
	parts := strings.SplitN(auth, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("invalid authorization")
	}
	tokenString := strings.TrimSpace(parts[1])
	if tokenString == "" {
		return "", errors.New("invalid authorization")
	}
	return tokenString, nil
}
