package httptransport

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"messagedesk/internal/domains"
	"messagedesk/internal/httpx"
	"messagedesk/internal/service"
	"messagedesk/internal/storage"
	"messagedesk/internal/templating"
)

type TemplateHandlers struct {
	service TemplateServices
}

type TemplateServices interface {
	CreateTemplate(ctx context.Context, template domains.TemplateCreate, ownerID int64) (domains.Template, error)
	UpdateTemplate(ctx context.Context, templateID int64, template domains.TemplateCreate, ownerID int64) (domains.Template, error)
	GetAllTemplatesByOwner(ctx context.Context, ownerID int64) ([]domains.Template, error)
	GetTemplateByID(ctx context.Context, templateID, ownerID int64) (domains.Template, error)
	ValidateTemplate(body string, declarations []templating.PlaceholderDeclaration) []string
	ActivateTemplate(ctx context.Context, templateID, ownerID int64) (domains.Template, error)
	ArchiveTemplate(ctx context.Context, templateID, ownerID int64) (domains.Template, error)
	PreviewTemplate(ctx context.Context, templateID, ownerID int64, contactID *int64, overrides map[string]string) (string, error)
	PreviewBody(ctx context.Context, ownerID int64, body string, declarations []templating.PlaceholderDeclaration, contactID *int64, overrides map[string]string) (string, error)
}

func NewTemplateHandlers(service TemplateServices) *TemplateHandlers {
	return &TemplateHandlers{
		service: service,
	}
}

func (h *TemplateHandlers) CreateTemplate(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := httpx.UserIDFromContext(r.Context())
	if !ok {
		httpx.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	payload, err := httpx.ReadBody[domains.TemplateCreate](r)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	saved, err := h.service.CreateTemplate(r.Context(), payload, ownerID)
	if err != nil {
		writeTemplateError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, saved)
}

func (h *TemplateHandlers) UpdateTemplate(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := httpx.UserIDFromContext(r.Context())
	if !ok {
		httpx.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	templateID, ok := httpx.PathID(w, r)
	if !ok {
		return
	}
	payload, err := httpx.ReadBody[domains.TemplateCreate](r)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := h.service.UpdateTemplate(r.Context(), templateID, payload, ownerID)
	if err != nil {
		writeTemplateError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, updated)
}

func (h *TemplateHandlers) GetAllTemplates(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := httpx.UserIDFromContext(r.Context())
	if !ok {
		httpx.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	templates, err := h.service.GetAllTemplatesByOwner(r.Context(), ownerID)
	if err != nil {
		httpx.Error(w, http.StatusInternalServerError, "failed to list templates")
		return
	}
	if templates == nil {
		templates = []domains.Template{}
	}
	httpx.JSON(w, http.StatusOK, templates)
}

func (h *TemplateHandlers) GetTemplate(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := httpx.UserIDFromContext(r.Context())
	if !ok {
		httpx.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	templateID, ok := httpx.PathID(w, r)
	if !ok {
		return
	}
	template, err := h.service.GetTemplateByID(r.Context(), templateID, ownerID)
	if err != nil {
		writeTemplateError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, template)
}

// ValidateTemplate runs the engine over an unsaved body/declarations pair.
// The editor calls this after every edit, so it never touches storage.
func (h *TemplateHandlers) ValidateTemplate(w http.ResponseWriter, r *http.Request) {
	payload, err := httpx.ReadBody[ValidateRequest](r)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	findings := h.service.ValidateTemplate(payload.Body, payload.Declarations)
	if findings == nil {
		findings = []string{}
	}
	httpx.JSON(w, http.StatusOK, ValidateResponse{
		Valid:    len(findings) == 0,
		Findings: findings,
	})
}

func (h *TemplateHandlers) ActivateTemplate(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := httpx.UserIDFromContext(r.Context())
	if !ok {
		httpx.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	templateID, ok := httpx.PathID(w, r)
	if !ok {
		return
	}

	activated, err := h.service.ActivateTemplate(r.Context(), templateID, ownerID)
	if err != nil {
		var invalid *service.TemplateInvalidError
		if errors.As(err, &invalid) {
			httpx.JSON(w, http.StatusUnprocessableEntity, httpx.ErrorResponse{
				Error:    "template has validation findings",
				Findings: invalid.Findings,
			})
			return
		}
		writeTemplateError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, activated)
}

func (h *TemplateHandlers) ArchiveTemplate(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := httpx.UserIDFromContext(r.Context())
	if !ok {
		httpx.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	templateID, ok := httpx.PathID(w, r)
	if !ok {
		return
	}

	archived, err := h.service.ArchiveTemplate(r.Context(), templateID, ownerID)
	if err != nil {
		writeTemplateError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, archived)
}

func (h *TemplateHandlers) PreviewTemplate(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := httpx.UserIDFromContext(r.Context())
	if !ok {
		httpx.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	templateID, ok := httpx.PathID(w, r)
	if !ok {
		return
	}
	payload, err := httpx.ReadBody[PreviewRequest](r)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	preview, err := h.service.PreviewTemplate(r.Context(), templateID, ownerID, payload.ContactID, payload.Overrides)
	if err != nil {
		writeTemplateError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, PreviewResponse{Preview: preview})
}

// PreviewBody renders an unsaved body for the editor's live preview pane.
func (h *TemplateHandlers) PreviewBody(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := httpx.UserIDFromContext(r.Context())
	if !ok {
		httpx.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	payload, err := httpx.ReadBody[AdhocPreviewRequest](r)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	preview, err := h.service.PreviewBody(r.Context(), ownerID, payload.Body, payload.Declarations, payload.ContactID, payload.Overrides)
	if err != nil {
		writeTemplateError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, PreviewResponse{Preview: preview})
}

func writeTemplateError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, storage.ErrTemplateNotFound):
		httpx.Error(w, http.StatusNotFound, "template not found")
	case errors.Is(err, storage.ErrContactNotFound):
		httpx.Error(w, http.StatusNotFound, "contact not found")
	case errors.Is(err, service.ErrDuplicateDeclaration),
		errors.Is(err, service.ErrInvalidAttachment):
		httpx.Error(w, http.StatusBadRequest, err.Error())
	default:
		slog.Error("template handler error", "err", err)
		httpx.Error(w, http.StatusInternalServerError, "internal error")
	}
}
