package service

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"messagedesk/internal/domains"
	"messagedesk/internal/storage"
	"messagedesk/internal/templating"
)

// mockTemplateProvider implements CompanyTemplateProvider in memory.
type mockTemplateProvider struct {
	templates map[int64]domains.Template
	nextID    int64
}

func newMockTemplateProvider() *mockTemplateProvider {
	return &mockTemplateProvider{templates: make(map[int64]domains.Template), nextID: 1}
}

func (m *mockTemplateProvider) SaveTemplate(_ context.Context, template domains.TemplateCreate, ownerID int64) (domains.Template, error) {
	saved := domains.Template{
		ID:           m.nextID,
		OwnerID:      ownerID,
		Name:         template.Name,
		Body:         template.Body,
		Declarations: template.Declarations,
		Status:       domains.TemplateStatusDraft,
	}
	m.templates[m.nextID] = saved
	m.nextID++
	return saved, nil
}

func (m *mockTemplateProvider) UpdateTemplate(_ context.Context, templateID, ownerID int64, template domains.TemplateCreate) (domains.Template, error) {
	existing, ok := m.templates[templateID]
	if !ok || existing.OwnerID != ownerID {
		return domains.Template{}, storage.ErrTemplateNotFound
	}
	existing.Name = template.Name
	existing.Body = template.Body
	existing.Declarations = template.Declarations
	m.templates[templateID] = existing
	return existing, nil
}

func (m *mockTemplateProvider) UpdateTemplateStatus(_ context.Context, templateID, ownerID int64, status string) (domains.Template, error) {
	existing, ok := m.templates[templateID]
	if !ok || existing.OwnerID != ownerID {
		return domains.Template{}, storage.ErrTemplateNotFound
	}
	existing.Status = status
	m.templates[templateID] = existing
	return existing, nil
}

func (m *mockTemplateProvider) GetAllTemplatesByOwner(_ context.Context, ownerID int64) ([]domains.Template, error) {
	var out []domains.Template
	for _, t := range m.templates {
		if t.OwnerID == ownerID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *mockTemplateProvider) GetTemplateByID(_ context.Context, templateID, ownerID int64) (domains.Template, error) {
	existing, ok := m.templates[templateID]
	if !ok || existing.OwnerID != ownerID {
		return domains.Template{}, storage.ErrTemplateNotFound
	}
	return existing, nil
}

type mockContactProvider struct {
	contacts map[int64]domains.Contact
}

func (m *mockContactProvider) GetContactByID(_ context.Context, contactID, ownerID int64) (domains.Contact, error) {
	contact, ok := m.contacts[contactID]
	if !ok || contact.OwnerID != ownerID {
		return domains.Contact{}, storage.ErrContactNotFound
	}
	return contact, nil
}

type mockAccountProvider struct {
	accounts map[int64]domains.Account
}

func (m *mockAccountProvider) GetAccountByID(_ context.Context, id int64) (domains.Account, error) {
	account, ok := m.accounts[id]
	if !ok {
		return domains.Account{}, storage.ErrAccountNotFound
	}
	return account, nil
}

func newTestService() (*TemplateService, *mockTemplateProvider) {
	provider := newMockTemplateProvider()
	svc := NewTemplateService(
		provider,
		&mockContactProvider{contacts: map[int64]domains.Contact{
			7: {ID: 7, OwnerID: 1, FullName: "Ada Lovelace", Phone: "+4917612345678", Email: "ada@example.com"},
		}},
		&mockAccountProvider{accounts: map[int64]domains.Account{
			1: {ID: 1, FullName: "Grace Hopper"},
		}},
		CompanyProfile{Name: "Acme GmbH", DefaultAgentName: "Support"},
	)
	svc.now = func() time.Time {
		return time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	}
	return svc, provider
}

func TestCreateTemplateRejectsDuplicateDeclarations(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.CreateTemplate(context.Background(), domains.TemplateCreate{
		Name: "dup",
		Body: "{{order-id}}",
		Declarations: []templating.PlaceholderDeclaration{
			{ID: "order-id"},
			{ID: "order-id"},
		},
	}, 1)
	if !errors.Is(err, ErrDuplicateDeclaration) {
		t.Fatalf("expected ErrDuplicateDeclaration, got %v", err)
	}
}

func TestCreateTemplateRejectsUnknownAttachmentKind(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.CreateTemplate(context.Background(), domains.TemplateCreate{
		Name:        "att",
		Attachments: []domains.Attachment{{Kind: "hologram", Name: "x"}},
	}, 1)
	if !errors.Is(err, ErrInvalidAttachment) {
		t.Fatalf("expected ErrInvalidAttachment, got %v", err)
	}
}

func TestActivateTemplateBlockedByFindings(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	saved, err := svc.CreateTemplate(ctx, domains.TemplateCreate{
		Name: "broken",
		Body: "Hi {{nobody}}",
		Declarations: []templating.PlaceholderDeclaration{
			{ID: "order-id", Required: true},
		},
	}, 1)
	if err != nil {
		t.Fatal(err)
	}

	_, err = svc.ActivateTemplate(ctx, saved.ID, 1)
	var invalid *TemplateInvalidError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected TemplateInvalidError, got %v", err)
	}
	want := []string{
		"Undefined variable: nobody",
		"Required variable not used: order-id",
	}
	if !reflect.DeepEqual(invalid.Findings, want) {
		t.Errorf("findings = %v, want %v", invalid.Findings, want)
	}
}

func TestActivateTemplateSucceedsWhenClean(t *testing.T) {
	svc, provider := newTestService()
	ctx := context.Background()

	saved, err := svc.CreateTemplate(ctx, domains.TemplateCreate{
		Name: "welcome",
		Body: "Hello {{contact-name}}, welcome to {{company-name}}.",
	}, 1)
	if err != nil {
		t.Fatal(err)
	}

	activated, err := svc.ActivateTemplate(ctx, saved.ID, 1)
	if err != nil {
		t.Fatalf("ActivateTemplate failed: %v", err)
	}
	if activated.Status != domains.TemplateStatusActive {
		t.Errorf("status = %q, want %q", activated.Status, domains.TemplateStatusActive)
	}
	if provider.templates[saved.ID].Status != domains.TemplateStatusActive {
		t.Error("status change was not persisted")
	}
}

func TestPreviewTemplateWithContact(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	saved, err := svc.CreateTemplate(ctx, domains.TemplateCreate{
		Name: "welcome",
		Body: "Hello {{contact-name}}, {{agent-name}} from {{company-name}} here. Sent {{current-date}} {{current-time}}.",
	}, 1)
	if err != nil {
		t.Fatal(err)
	}

	contactID := int64(7)
	got, err := svc.PreviewTemplate(ctx, saved.ID, 1, &contactID, nil)
	if err != nil {
		t.Fatalf("PreviewTemplate failed: %v", err)
	}
	want := "Hello Ada Lovelace, Grace Hopper from Acme GmbH here. Sent 2026-03-14 09:30."
	if got != want {
		t.Errorf("preview = %q, want %q", got, want)
	}
}

func TestPreviewBodyDefaultsAndOverrides(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	declarations := []templating.PlaceholderDeclaration{
		{ID: "discount", DefaultValue: "10%"},
		{ID: "promo-code", DefaultValue: "WELCOME"},
	}
	body := "Get {{discount}} with code {{promo-code}} from {{company-name}}. {{contact-name}}"

	got, err := svc.PreviewBody(ctx, 1, body, declarations, nil, map[string]string{"discount": "25%"})
	if err != nil {
		t.Fatalf("PreviewBody failed: %v", err)
	}
	// Override beats the declaration default; without a contact the
	// contact placeholder stays verbatim.
	want := "Get 25% with code WELCOME from Acme GmbH. {{contact-name}}"
	if got != want {
		t.Errorf("preview = %q, want %q", got, want)
	}
}

func TestPreviewTemplateUnknownContact(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	saved, err := svc.CreateTemplate(ctx, domains.TemplateCreate{Name: "x", Body: "{{contact-name}}"}, 1)
	if err != nil {
		t.Fatal(err)
	}

	missing := int64(99)
	if _, err := svc.PreviewTemplate(ctx, saved.ID, 1, &missing, nil); !errors.Is(err, storage.ErrContactNotFound) {
		t.Fatalf("expected ErrContactNotFound, got %v", err)
	}
}
