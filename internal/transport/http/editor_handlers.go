package httptransport

import (
	"net/http"

	"messagedesk/internal/httpx"
	"messagedesk/internal/templating"
)

// EditorHandlers exposes the two splice operations the remote editor invokes
// on toolbar actions. Both are pure string operations; the editor re-runs
// validation itself afterwards.
type EditorHandlers struct{}

func NewEditorHandlers() *EditorHandlers {
	return &EditorHandlers{}
}

func (h *EditorHandlers) InsertPlaceholder(w http.ResponseWriter, r *http.Request) {
	payload, err := httpx.ReadBody[InsertPlaceholderRequest](r)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if payload.Declaration.ID == "" {
		httpx.Error(w, http.StatusBadRequest, "declaration id is required")
		return
	}

	body, cursor := templating.InsertPlaceholder(payload.Body, payload.Cursor, payload.Declaration)
	httpx.JSON(w, http.StatusOK, EditorResponse{Body: body, Cursor: cursor})
}

func (h *EditorHandlers) ApplyMarkup(w http.ResponseWriter, r *http.Request) {
	payload, err := httpx.ReadBody[ApplyMarkupRequest](r)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	switch payload.Style {
	case templating.StyleBold, templating.StyleItalic, templating.StyleUnderline, templating.StyleLink:
	default:
		httpx.Error(w, http.StatusBadRequest, "unknown markup style")
		return
	}

	body, cursor := templating.ApplyInlineMarkup(payload.Body, payload.SelectionStart, payload.SelectionEnd, payload.Style)
	httpx.JSON(w, http.StatusOK, EditorResponse{Body: body, Cursor: cursor})
}
