package domains

import (
	"time"

	"github.com/google/uuid"

	"messagedesk/internal/templating"
)

const (
	TemplateStatusDraft    = "draft"
	TemplateStatusActive   = "active"
	TemplateStatusArchived = "archived"
)

const (
	AttachmentKindImage    = "image"
	AttachmentKindDocument = "document"
	AttachmentKindVideo    = "video"
	AttachmentKindAudio    = "audio"
)

// Template is a reusable outbound message owned by one account. Body is the
// only field the engine reads; everything else is console metadata.
type Template struct {
	ID             int64                               `json:"id"`
	OwnerID        int64                               `json:"owner_id"`
	Name           string                              `json:"name"`
	Body           string                              `json:"body"`
	Declarations   []templating.PlaceholderDeclaration `json:"declarations"`
	Category       string                              `json:"category"`
	Tags           []string                            `json:"tags"`
	Language       string                              `json:"language"`
	Status         string                              `json:"status"`
	CreatedAt      time.Time                           `json:"created_at"`
	LastModifiedAt time.Time                           `json:"last_modified_at"`
	UsageCount     int                                 `json:"usage_count"`
	Attachments    []Attachment                        `json:"attachments"`
}

// TemplateCreate is the payload for creating or updating a template.
type TemplateCreate struct {
	Name         string                              `json:"name"`
	Body         string                              `json:"body"`
	Declarations []templating.PlaceholderDeclaration `json:"declarations"`
	Category     string                              `json:"category"`
	Tags         []string                            `json:"tags"`
	Language     string                              `json:"language"`
	Attachments  []Attachment                        `json:"attachments"`
}

// Attachment is metadata about a file attached to a template. The file itself
// lives in external storage; the engine never looks inside.
type Attachment struct {
	ID          uuid.UUID `json:"id"`
	Kind        string    `json:"kind"`
	Name        string    `json:"name"`
	LocationRef string    `json:"location_ref"`
	SizeBytes   int64     `json:"size_bytes"`
}
