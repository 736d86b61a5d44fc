package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"

	"messagedesk/internal/domains"
)

type AuthService struct {
	provider AuthProvider
	secret   string
}

type AuthProvider interface {
	SaveAccount(ctx context.Context, passHash string, account domains.Account) error
	GetAccountByEmail(ctx context.Context, email string) (domains.Account, error)
	GetAccountByID(ctx context.Context, id int64) (domains.Account, error)
}

func NewAuthService(provider AuthProvider, secret string) *AuthService {
	return &AuthService{
		provider: provider,
		secret:   secret,
	}
}

func (s *AuthService) Register(ctx context.Context, account domains.Account) error {
	passHash, err := bcrypt.GenerateFromPassword([]byte(account.Password), bcrypt.DefaultCost)
	if err != nil {
		slog.Error("hash password failed", "err", err)
		return err
	}
	if err := s.provider.SaveAccount(ctx, string(passHash), account); err != nil {
		slog.Error("save account failed", "email", account.Email, "err", err)
		return err
	}
	return nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, string, error) {
	account, err := s.provider.GetAccountByEmail(ctx, email)
	if err != nil {
		slog.Error("fetch account failed", "email", email, "err", err)
		return "", "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PassHash), []byte(password)); err != nil {
		return "", "", ErrPasswordIncorrect
	}
	return s.GenerateTokens(account)
}

func (s *AuthService) GenerateTokens(account domains.Account) (accessToken, refreshToken string, err error) {
	accessClaims := jwt.MapClaims{
		"sub":  account.ID,
		"exp":  time.Now().Add(15 * time.Minute).Unix(),
		"type": "access",
	}
	accessToken, err = jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims).SignedString([]byte(s.secret))
	if err != nil {
		return "", "", err
	}

	refreshClaims := jwt.MapClaims{
		"sub":  account.ID,
		"exp":  time.Now().Add(7 * 24 * time.Hour).Unix(),
		"type": "refresh",
	}
	refreshToken, err = jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims).SignedString([]byte(s.secret))
	if err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, string, error) {
	sub, claims, err := s.parseToken(refreshToken)
	if err != nil {
		return "", "", err
	}
	if claims["type"] != "refresh" {
		return "", "", ErrTokenIncorrect
	}
	account, err := s.provider.GetAccountByID(ctx, sub)
	if err != nil {
		return "", "", err
	}
	return s.GenerateTokens(account)
}

func (s *AuthService) Me(ctx context.Context, token string) (domains.Account, error) {
	sub, _, err := s.parseToken(token)
	if err != nil {
		return domains.Account{}, err
	}
	return s.provider.GetAccountByID(ctx, sub)
}

func (s *AuthService) parseToken(raw string) (int64, jwt.MapClaims, error) {
	token, err := jwt.Parse(raw, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.secret), nil
	})
	if err != nil || !token.Valid {
		return 0, nil, ErrTokenIncorrect
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, nil, ErrTokenIncorrect
	}
	// Numeric claims decode as float64.
	sub, ok := claims["sub"].(float64)
	if !ok {
		return 0, nil, ErrTokenIncorrect
	}
	return int64(sub), claims, nil
}
