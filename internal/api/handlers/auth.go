package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/communitywatch/backend/internal/api/httpx"
	"github.com/communitywatch/backend/internal/api/validate"
	"github.com/communitywatch/backend/internal/metrics"
	"github.com/communitywatch/backend/internal/middleware"
	"github.com/communitywatch/backend/internal/services"
)

type AuthHandler struct {
	svc *services.AuthService
}

func NewAuthHandler(svc *services.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

type signupReq struct {
	FullName        string `json:"fullName"`
	Username        string `json:"username"`
	Phone           string `json:"phone"`
	Email           string `json:"email"`
	Location        string `json:"location"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	err := h.svc.Signup(r.Context(), services.SignupInput{
		FullName:        req.FullName,
		Username:        req.Username,
		Phone:           req.Phone,
		Email:           req.Email,
		Location:        req.Location,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	var verrs validate.Errs
	switch {
	case err == nil:
		metrics.SignupsTotal.Inc()
		httpx.WriteMessage(w, http.StatusCreated, "User created successfully")
	case errors.Is(err, services.ErrPasswordMismatch):
		httpx.WriteMessage(w, http.StatusBadRequest, "Passwords do not match")
	case errors.Is(err, services.ErrUserExists):
		httpx.WriteMessage(w, http.StatusBadRequest, "User with this email, username, or phone already exists")
	case errors.As(err, &verrs):
		httpx.WriteMessage(w, http.StatusBadRequest, verrs.Error())
	default:
		slog.Error("signup", "err", err, "request_id", middleware.RequestIDFrom(r.Context()))
		httpx.WriteError(w, http.StatusInternalServerError, "Internal Server Error")
	}
}

type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	token, err := h.svc.Login(r.Context(), req.Username, req.Password)
	switch {
	case err == nil:
		metrics.LoginsTotal.Inc()
		httpx.WriteJSON(w, http.StatusOK, map[string]string{
			"message": "Login successful",
			"token":   token,
		})
	case errors.Is(err, services.ErrUserNotFound):
		// 400 rather than 404, matching the product's behavior
		httpx.WriteMessage(w, http.StatusBadRequest, "User not found")
	case errors.Is(err, services.ErrInvalidCredentials):
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid credentials")
	default:
		slog.Error("login", "err", err, "request_id", middleware.RequestIDFrom(r.Context()))
		httpx.WriteError(w, http.StatusInternalServerError, "Internal Server Error")
	}
}

// Me echoes the authenticated user id; RequireAuth has already verified
// the bearer token.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	id, ok := middleware.UserID(r.Context())
	if !ok {
		httpx.WriteMessage(w, http.StatusUnauthorized, "invalid token")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"id": id})
}
