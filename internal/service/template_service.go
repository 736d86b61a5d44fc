package service

import (
	"context"
	"log/slog"
	"time"

	"messagedesk/internal/domains"
	"messagedesk/internal/templating"
)

type TemplateService struct {
	provider CompanyTemplateProvider
	contacts ContactLookupProvider
	accounts AccountLookupProvider
	company  CompanyProfile
	now      func() time.Time
}

type CompanyTemplateProvider interface {
	SaveTemplate(ctx context.Context, template domains.TemplateCreate, ownerID int64) (domains.Template, error)
	UpdateTemplate(ctx context.Context, templateID, ownerID int64, template domains.TemplateCreate) (domains.Template, error)
	UpdateTemplateStatus(ctx context.Context, templateID, ownerID int64, status string) (domains.Template, error)
	GetAllTemplatesByOwner(ctx context.Context, ownerID int64) ([]domains.Template, error)
	GetTemplateByID(ctx context.Context, templateID, ownerID int64) (domains.Template, error)
}

type ContactLookupProvider interface {
	GetContactByID(ctx context.Context, contactID, ownerID int64) (domains.Contact, error)
}

type AccountLookupProvider interface {
	GetAccountByID(ctx context.Context, id int64) (domains.Account, error)
}

// CompanyProfile is the workspace-level identity substituted into previews.
type CompanyProfile struct {
	Name             string
	DefaultAgentName string
}

func NewTemplateService(provider CompanyTemplateProvider, contacts ContactLookupProvider, accounts AccountLookupProvider, company CompanyProfile) *TemplateService {
	return &TemplateService{
		provider: provider,
		contacts: contacts,
		accounts: accounts,
		company:  company,
		now:      time.Now,
	}
}

func (s *TemplateService) CreateTemplate(ctx context.Context, template domains.TemplateCreate, ownerID int64) (domains.Template, error) {
	if err := checkTemplatePayload(template); err != nil {
		return domains.Template{}, err
	}
	saved, err := s.provider.SaveTemplate(ctx, template, ownerID)
	if err != nil {
		slog.Error("save template failed", "owner_id", ownerID, "err", err)
		return domains.Template{}, err
	}
	return saved, nil
}

func (s *TemplateService) UpdateTemplate(ctx context.Context, templateID int64, template domains.TemplateCreate, ownerID int64) (domains.Template, error) {
	if err := checkTemplatePayload(template); err != nil {
		return domains.Template{}, err
	}
	updated, err := s.provider.UpdateTemplate(ctx, templateID, ownerID, template)
	if err != nil {
		slog.Error("update template failed", "template_id", templateID, "owner_id", ownerID, "err", err)
		return domains.Template{}, err
	}
	return updated, nil
}

func (s *TemplateService) GetAllTemplatesByOwner(ctx context.Context, ownerID int64) ([]domains.Template, error) {
	templates, err := s.provider.GetAllTemplatesByOwner(ctx, ownerID)
	if err != nil {
		slog.Error("list templates failed", "owner_id", ownerID, "err", err)
		return nil, err
	}
	return templates, nil
}

func (s *TemplateService) GetTemplateByID(ctx context.Context, templateID, ownerID int64) (domains.Template, error) {
	template, err := s.provider.GetTemplateByID(ctx, templateID, ownerID)
	if err != nil {
		return domains.Template{}, err
	}
	return template, nil
}

// ValidateTemplate runs the engine over an arbitrary body and declaration set.
// The editor calls this on every edit, so it takes the raw pair rather than a
// stored template.
func (s *TemplateService) ValidateTemplate(body string, declarations []templating.PlaceholderDeclaration) []string {
	return templating.Validate(body, declarations, templating.DefaultRegistry(declarations))
}

// ActivateTemplate promotes a template to active. Promotion is refused while
// validation still produces findings; the findings are returned inside a
// TemplateInvalidError so the caller can surface all of them.
func (s *TemplateService) ActivateTemplate(ctx context.Context, templateID, ownerID int64) (domains.Template, error) {
	template, err := s.provider.GetTemplateByID(ctx, templateID, ownerID)
	if err != nil {
		return domains.Template{}, err
	}
	if findings := s.ValidateTemplate(template.Body, template.Declarations); len(findings) > 0 {
		return domains.Template{}, &TemplateInvalidError{Findings: findings}
	}
	activated, err := s.provider.UpdateTemplateStatus(ctx, templateID, ownerID, domains.TemplateStatusActive)
	if err != nil {
		slog.Error("activate template failed", "template_id", templateID, "err", err)
		return domains.Template{}, err
	}
	slog.Info("template activated", "template_id", templateID, "owner_id", ownerID)
	return activated, nil
}

func (s *TemplateService) ArchiveTemplate(ctx context.Context, templateID, ownerID int64) (domains.Template, error) {
	archived, err := s.provider.UpdateTemplateStatus(ctx, templateID, ownerID, domains.TemplateStatusArchived)
	if err != nil {
		slog.Error("archive template failed", "template_id", templateID, "err", err)
		return domains.Template{}, err
	}
	return archived, nil
}

// PreviewTemplate renders a stored template with sample data. contactID may
// be nil, in which case the contact placeholders fall back to declaration
// defaults or stay verbatim.
func (s *TemplateService) PreviewTemplate(ctx context.Context, templateID, ownerID int64, contactID *int64, overrides map[string]string) (string, error) {
	template, err := s.provider.GetTemplateByID(ctx, templateID, ownerID)
	if err != nil {
		return "", err
	}
	return s.PreviewBody(ctx, ownerID, template.Body, template.Declarations, contactID, overrides)
}

// PreviewBody renders an unsaved body the same way, for the editor's live
// preview pane.
func (s *TemplateService) PreviewBody(ctx context.Context, ownerID int64, body string, declarations []templating.PlaceholderDeclaration, contactID *int64, overrides map[string]string) (string, error) {
	bindings, err := s.assembleBindings(ctx, ownerID, declarations, contactID)
	if err != nil {
		return "", err
	}
	for id, value := range overrides {
		bindings[id] = value
	}
	return templating.Render(body, bindings), nil
}

// assembleBindings builds the preview binding map: declaration defaults
// first, then system values (company profile, the operator's name, contact
// fields, clock). The engine itself has no sample-value table; this is the
// caller-side half of the preview contract.
func (s *TemplateService) assembleBindings(ctx context.Context, ownerID int64, declarations []templating.PlaceholderDeclaration, contactID *int64) (map[string]string, error) {
	bindings := make(map[string]string)
	for _, decl := range declarations {
		if decl.DefaultValue != "" {
			bindings[decl.ID] = decl.DefaultValue
		}
	}

	bindings["company-name"] = s.company.Name

	agentName := s.company.DefaultAgentName
	if account, err := s.accounts.GetAccountByID(ctx, ownerID); err == nil && account.FullName != "" {
		agentName = account.FullName
	}
	bindings["agent-name"] = agentName

	if contactID != nil {
		contact, err := s.contacts.GetContactByID(ctx, *contactID, ownerID)
		if err != nil {
			return nil, err
		}
		bindings["contact-name"] = contact.FullName
		bindings["contact-phone"] = contact.Phone
		bindings["contact-email"] = contact.Email
	}

	now := s.now()
	bindings["current-date"] = now.Format("2006-01-02")
	bindings["current-time"] = now.Format("15:04")

	return bindings, nil
}

// checkTemplatePayload enforces the data-integrity invariants the engine
// assumes but does not re-check: declaration ids unique within the template
// and attachment kinds drawn from the closed set.
func checkTemplatePayload(template domains.TemplateCreate) error {
	seen := make(map[string]struct{}, len(template.Declarations))
	for _, decl := range template.Declarations {
		if _, ok := seen[decl.ID]; ok {
			return ErrDuplicateDeclaration
		}
		seen[decl.ID] = struct{}{}
	}
	for _, att := range template.Attachments {
		switch att.Kind {
		case domains.AttachmentKindImage, domains.AttachmentKindDocument,
			domains.AttachmentKindVideo, domains.AttachmentKindAudio:
		default:
			return ErrInvalidAttachment
		}
	}
	return nil
}
