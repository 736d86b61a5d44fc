package httptransport

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"messagedesk/internal/domains"
	"messagedesk/internal/httpx"
	"messagedesk/internal/service"
	"messagedesk/internal/storage"
)

type AuthHandlers struct {
	service AuthServices
}

type AuthServices interface {
	Register(ctx context.Context, account domains.Account) error
	Login(ctx context.Context, email, password string) (string, string, error)
	Refresh(ctx context.Context, token string) (string, string, error)
	Me(ctx context.Context, token string) (domains.Account, error)
}

func NewAuthHandlers(service AuthServices) *AuthHandlers {
	return &AuthHandlers{
		service: service,
	}
}

func (h *AuthHandlers) Register(w http.ResponseWriter, r *http.Request) {
	account, err := httpx.ReadBody[domains.Account](r)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.service.Register(r.Context(), account); err != nil {
		if errors.Is(err, storage.ErrAccountExists) {
			httpx.Error(w, http.StatusConflict, "account already exists")
			return
		}
		slog.Error("register failed", "err", err)
		httpx.Error(w, http.StatusInternalServerError, "failed to register")
		return
	}
	w.WriteHeader(http.StatusCreated)
}

func (h *AuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	loginData, err := httpx.ReadBody[LoginData](r)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	accessToken, refreshToken, err := h.service.Login(r.Context(), loginData.Email, loginData.Password)
	if err != nil {
		if errors.Is(err, service.ErrPasswordIncorrect) || errors.Is(err, storage.ErrAccountNotFound) {
			httpx.Error(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		slog.Error("login failed", "err", err)
		httpx.Error(w, http.StatusInternalServerError, "failed to log in")
		return
	}
	httpx.JSON(w, http.StatusOK, TokenPair{AccessToken: accessToken, RefreshToken: refreshToken})
}

func (h *AuthHandlers) Refresh(w http.ResponseWriter, r *http.Request) {
	payload, err := httpx.ReadBody[struct {
		RefreshToken string `json:"refresh_token"`
	}](r)
	if err != nil || payload.RefreshToken == "" {
		httpx.Error(w, http.StatusBadRequest, "refresh token is required")
		return
	}

	accessToken, refreshToken, err := h.service.Refresh(r.Context(), payload.RefreshToken)
	if err != nil {
		if errors.Is(err, service.ErrTokenIncorrect) {
			httpx.Error(w, http.StatusUnauthorized, "token is invalid")
			return
		}
		if errors.Is(err, storage.ErrAccountNotFound) {
			httpx.Error(w, http.StatusUnauthorized, "account not found")
			return
		}
		slog.Error("refresh failed", "err", err)
		httpx.Error(w, http.StatusInternalServerError, "failed to refresh tokens")
		return
	}
	httpx.JSON(w, http.StatusOK, TokenPair{AccessToken: accessToken, RefreshToken: refreshToken})
}

func (h *AuthHandlers) Me(w http.ResponseWriter, r *http.Request) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		httpx.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	token := strings.TrimPrefix(authHeader, "Bearer ")

	account, err := h.service.Me(r.Context(), token)
	if err != nil {
		httpx.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	httpx.JSON(w, http.StatusOK, account)
}
