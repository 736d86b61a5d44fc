package providers

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"messagedesk/internal/domains"
	"messagedesk/internal/storage"
)

type ContactProvider struct {
	db *pgxpool.Pool
}

func NewContactProvider(pg *pgxpool.Pool) *ContactProvider {
	return &ContactProvider{
		db: pg,
	}
}

func (s *ContactProvider) SaveContact(ctx context.Context, contact domains.ContactCreate, ownerID int64) (domains.Contact, error) {
	row := s.db.QueryRow(ctx, `
        INSERT INTO contacts (owner_id, full_name, phone, email, created_at)
        VALUES ($1, $2, $3, $4, NOW())
        RETURNING id, owner_id, full_name, phone, email, created_at`,
		ownerID, contact.FullName, contact.Phone, contact.Email)

	var saved domains.Contact
	err := row.Scan(&saved.ID, &saved.OwnerID, &saved.FullName,
		&saved.Phone, &saved.Email, &saved.CreatedAt)
	if err != nil {
		return domains.Contact{}, fmt.Errorf("insert contact: %w", err)
	}
	return saved, nil
}

func (s *ContactProvider) GetAllContactsByOwner(ctx context.Context, ownerID int64) ([]domains.Contact, error) {
	rows, err := s.db.Query(ctx, `
        SELECT id, owner_id, full_name, phone, email, created_at
        FROM contacts
        WHERE owner_id = $1
        ORDER BY full_name`,
		ownerID)
	if err != nil {
		return nil, fmt.Errorf("query contacts: %w", err)
	}

	contacts, err := pgx.CollectRows(rows, pgx.RowToStructByName[domains.Contact])
	if err != nil {
		return nil, fmt.Errorf("collect contacts: %w", err)
	}
	return contacts, nil
}

func (s *ContactProvider) GetContactByID(ctx context.Context, contactID, ownerID int64) (domains.Contact, error) {
	row := s.db.QueryRow(ctx, `
        SELECT id, owner_id, full_name, phone, email, created_at
        FROM contacts
        WHERE id = $1 AND owner_id = $2`,
		contactID, ownerID)

	var contact domains.Contact
	err := row.Scan(&contact.ID, &contact.OwnerID, &contact.FullName,
		&contact.Phone, &contact.Email, &contact.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domains.Contact{}, storage.ErrContactNotFound
	}
	if err != nil {
		return domains.Contact{}, fmt.Errorf("get contact: %w", err)
	}
	return contact, nil
}
