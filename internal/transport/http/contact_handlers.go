package httptransport

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"messagedesk/internal/domains"
	"messagedesk/internal/httpx"
	"messagedesk/internal/storage"
)

type ContactHandlers struct {
	service ContactServices
}

type ContactServices interface {
	CreateContact(ctx context.Context, contact domains.ContactCreate, ownerID int64) (domains.Contact, error)
	GetAllContactsByOwner(ctx context.Context, ownerID int64) ([]domains.Contact, error)
	GetContactByID(ctx context.Context, contactID, ownerID int64) (domains.Contact, error)
}

func NewContactHandlers(service ContactServices) *ContactHandlers {
	return &ContactHandlers{
		service: service,
	}
}

func (h *ContactHandlers) CreateContact(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := httpx.UserIDFromContext(r.Context())
	if !ok {
		httpx.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	payload, err := httpx.ReadBody[domains.ContactCreate](r)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	saved, err := h.service.CreateContact(r.Context(), payload, ownerID)
	if err != nil {
		slog.Error("create contact failed", "err", err)
		httpx.Error(w, http.StatusInternalServerError, "failed to create contact")
		return
	}
	httpx.JSON(w, http.StatusCreated, saved)
}

func (h *ContactHandlers) GetAllContacts(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := httpx.UserIDFromContext(r.Context())
	if !ok {
		httpx.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	contacts, err := h.service.GetAllContactsByOwner(r.Context(), ownerID)
	if err != nil {
		httpx.Error(w, http.StatusInternalServerError, "failed to list contacts")
		return
	}
	if contacts == nil {
		contacts = []domains.Contact{}
	}
	httpx.JSON(w, http.StatusOK, contacts)
}

func (h *ContactHandlers) GetContact(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := httpx.UserIDFromContext(r.Context())
	if !ok {
		httpx.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	contactID, ok := httpx.PathID(w, r)
	if !ok {
		return
	}

	contact, err := h.service.GetContactByID(r.Context(), contactID, ownerID)
	if err != nil {
		if errors.Is(err, storage.ErrContactNotFound) {
			httpx.Error(w, http.StatusNotFound, "contact not found")
			return
		}
		httpx.Error(w, http.StatusInternalServerError, "failed to get contact")
		return
	}
	httpx.JSON(w, http.StatusOK, contact)
}
