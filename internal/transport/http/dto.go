package httptransport

import "messagedesk/internal/templating"

type LoginData struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type ValidateRequest struct {
	Body         string                              `json:"body"`
	Declarations []templating.PlaceholderDeclaration `json:"declarations"`
}

type ValidateResponse struct {
	Valid    bool     `json:"valid"`
	Findings []string `json:"findings"`
}

type PreviewRequest struct {
	ContactID *int64            `json:"contact_id,omitempty"`
	Overrides map[string]string `json:"overrides,omitempty"`
}

type AdhocPreviewRequest struct {
	Body         string                              `json:"body"`
	Declarations []templating.PlaceholderDeclaration `json:"declarations"`
	ContactID    *int64                              `json:"contact_id,omitempty"`
	Overrides    map[string]string                   `json:"overrides,omitempty"`
}

type PreviewResponse struct {
	Preview string `json:"preview"`
}

type InsertPlaceholderRequest struct {
	Body        string                            `json:"body"`
	Cursor      int                               `json:"cursor"`
	Declaration templating.PlaceholderDeclaration `json:"declaration"`
}

type ApplyMarkupRequest struct {
	Body           string                 `json:"body"`
	SelectionStart int                    `json:"selection_start"`
	SelectionEnd   int                    `json:"selection_end"`
	Style          templating.MarkupStyle `json:"style"`
}

type EditorResponse struct {
	Body   string `json:"body"`
	Cursor int    `json:"cursor"`
}
