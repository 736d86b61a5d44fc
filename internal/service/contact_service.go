package service

import (
	"context"
	"log/slog"

	"messagedesk/internal/domains"
)

type ContactService struct {
	provider ContactProvider
}

type ContactProvider interface {
	SaveContact(ctx context.Context, contact domains.ContactCreate, ownerID int64) (domains.Contact, error)
	GetAllContactsByOwner(ctx context.Context, ownerID int64) ([]domains.Contact, error)
	GetContactByID(ctx context.Context, contactID, ownerID int64) (domains.Contact, error)
}

func NewContactService(provider ContactProvider) *ContactService {
	return &ContactService{
		provider: provider,
	}
}

func (s *ContactService) CreateContact(ctx context.Context, contact domains.ContactCreate, ownerID int64) (domains.Contact, error) {
	saved, err := s.provider.SaveContact(ctx, contact, ownerID)
	if err != nil {
		slog.Error("save contact failed", "owner_id", ownerID, "err", err)
		return domains.Contact{}, err
	}
	return saved, nil
}

func (s *ContactService) GetAllContactsByOwner(ctx context.Context, ownerID int64) ([]domains.Contact, error) {
	contacts, err := s.provider.GetAllContactsByOwner(ctx, ownerID)
	if err != nil {
		slog.Error("list contacts failed", "owner_id", ownerID, "err", err)
		return nil, err
	}
	return contacts, nil
}

func (s *ContactService) GetContactByID(ctx context.Context, contactID, ownerID int64) (domains.Contact, error) {
	return s.provider.GetContactByID(ctx, contactID, ownerID)
}
