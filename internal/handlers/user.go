package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/hanbit-board/apiserver/internal/credential"
	"github.com/hanbit-board/apiserver/internal/ranking"
	"github.com/hanbit-board/apiserver/internal/services"
	"github.com/hanbit-board/apiserver/internal/store"
)

const (
	loginTimeFormat = "2006-01-02 15:04:05"
	weekDateFormat  = "2006-01-02"
)

// UserHandler serves account-profile and login-analytics endpoints.
type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// UserRouter registers user routes on the given router.
func UserRouter(
	r chi.Router,
	userService *services.UserService,
	authMiddleware func(http.Handler) http.Handler,
) {
	handler := NewUserHandler(userService)

	r.Use(authMiddleware)
	r.Patch("/me", handler.UpdateMe)
	r.Get("/login-records", handler.LoginRecords)
	r.Get("/login-rankings", handler.LoginRankings)
}

// UpdateMe changes the caller's password and/or username.
func (h *UserHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	if err := h.userService.UpdateAccount(r.Context(), identity.AccountID, req.Password, req.Username); err != nil {
		var policyErr *credential.PolicyError
		switch {
		case errors.As(err, &policyErr):
			writeError(w, http.StatusBadRequest, policyErr.Error())
		case errors.Is(err, store.ErrNotFound):
			writeError(w, http.StatusNotFound, "user not found")
		default:
			writeError(w, http.StatusInternalServerError, "failed to update user")
		}
		return
	}

	writeSuccess(w, http.StatusOK, nil, "User information updated successfully")
}

// LoginRecords returns the caller's newest login records.
func (h *UserHandler) LoginRecords(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	records, err := h.userService.LoginRecords(r.Context(), identity.AccountID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load login records")
		return
	}

	items := make([]LoginRecordData, 0, len(records))
	for _, record := range records {
		items = append(items, LoginRecordData{
			ID:        record.ID,
			Username:  record.Username,
			LoginTime: record.LoginTime.Format(loginTimeFormat),
			IPAddress: record.IPAddress,
		})
	}

	writeSuccess(w, http.StatusOK, items, "Login records retrieved successfully")
}

// LoginRankings returns this week's login ranking.
func (h *UserHandler) LoginRankings(w http.ResponseWriter, r *http.Request) {
	rankings, err := h.userService.LoginRankings(r.Context(), time.Now())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load login rankings")
		return
	}

	writeSuccess(w, http.StatusOK, LoginRankingsData{
		Rankings:  rankings.Rankings,
		WeekStart: rankings.WeekStart.Format(weekDateFormat),
		WeekEnd:   rankings.WeekEnd.Format(weekDateFormat),
	}, "Login rankings retrieved successfully")
}

type UpdateUserRequest struct {
	Password *string `json:"password,omitempty"`
	Username *string `json:"username,omitempty"`
}

type LoginRecordData struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	LoginTime string `json:"loginTime"`
	IPAddress string `json:"ipAddress"`
}

type LoginRankingsData struct {
	Rankings  []ranking.Entry `json:"rankings"`
	WeekStart string          `json:"weekStart"`
	WeekEnd   string          `json:"weekEnd"`
}
