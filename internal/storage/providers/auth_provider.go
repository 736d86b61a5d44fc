package providers

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"messagedesk/internal/domains"
	"messagedesk/internal/storage"
)

type AuthProvider struct {
	db *pgxpool.Pool
}

func NewAuthProvider(pg *pgxpool.Pool) *AuthProvider {
	return &AuthProvider{
		db: pg,
	}
}

func (s *AuthProvider) SaveAccount(ctx context.Context, passHash string, account domains.Account) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
        INSERT INTO accounts (full_name, email, passhash, role, created_at)
        VALUES ($1, $2, $3, $4, NOW())`,
		account.FullName, account.Email, passHash, "OPERATOR")
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return storage.ErrAccountExists
		}
		return fmt.Errorf("insert account: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func (s *AuthProvider) GetAccountByEmail(ctx context.Context, email string) (domains.Account, error) {
	row := s.db.QueryRow(ctx, `
        SELECT id, full_name, email, passhash, role, created_at
        FROM accounts
        WHERE email = $1`,
		email)
	return scanAccount(row)
}

func (s *AuthProvider) GetAccountByID(ctx context.Context, id int64) (domains.Account, error) {
	row := s.db.QueryRow(ctx, `
        SELECT id, full_name, email, passhash, role, created_at
        FROM accounts
        WHERE id = $1`,
		id)
	return scanAccount(row)
}

func scanAccount(row pgx.Row) (domains.Account, error) {
	var account domains.Account
	err := row.Scan(&account.ID, &account.FullName, &account.Email,
		&account.PassHash, &account.Role, &account.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domains.Account{}, storage.ErrAccountNotFound
	}
	if err != nil {
		return domains.Account{}, fmt.Errorf("scan account: %w", err)
	}
	return account, nil
}
