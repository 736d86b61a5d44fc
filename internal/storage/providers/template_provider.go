package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"messagedesk/internal/domains"
	"messagedesk/internal/storage"
	"messagedesk/internal/templating"
)

const templateColumns = `id, owner_id, name, body, declarations, category, tags,
       language, status, created_at, last_modified_at, usage_count, attachments`

type TemplateProvider struct {
	db *pgxpool.Pool
}

func NewTemplateProvider(pg *pgxpool.Pool) *TemplateProvider {
	return &TemplateProvider{
		db: pg,
	}
}

func (s *TemplateProvider) SaveTemplate(ctx context.Context, template domains.TemplateCreate, ownerID int64) (domains.Template, error) {
	declarations, attachments, err := marshalTemplateJSON(template)
	if err != nil {
		return domains.Template{}, err
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return domains.Template{}, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	row := tx.QueryRow(ctx, `
        INSERT INTO message_templates
            (owner_id, name, body, declarations, category, tags, language, status,
             created_at, last_modified_at, usage_count, attachments)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW(), 0, $9)
        RETURNING `+templateColumns,
		ownerID, template.Name, template.Body, declarations, template.Category,
		template.Tags, template.Language, domains.TemplateStatusDraft, attachments)

	saved, err := scanTemplate(row)
	if err != nil {
		return domains.Template{}, fmt.Errorf("insert template: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return domains.Template{}, fmt.Errorf("commit transaction: %w", err)
	}
	return saved, nil
}

func (s *TemplateProvider) UpdateTemplate(ctx context.Context, templateID, ownerID int64, template domains.TemplateCreate) (domains.Template, error) {
	declarations, attachments, err := marshalTemplateJSON(template)
	if err != nil {
		return domains.Template{}, err
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return domains.Template{}, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	row := tx.QueryRow(ctx, `
        UPDATE message_templates
        SET name = $1,
            body = $2,
            declarations = $3,
            category = $4,
            tags = $5,
            language = $6,
            attachments = $7,
            last_modified_at = NOW()
        WHERE id = $8 AND owner_id = $9
        RETURNING `+templateColumns,
		template.Name, template.Body, declarations, template.Category,
		template.Tags, template.Language, attachments, templateID, ownerID)

	updated, err := scanTemplate(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return domains.Template{}, storage.ErrTemplateNotFound
	}
	if err != nil {
		return domains.Template{}, fmt.Errorf("update template: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return domains.Template{}, fmt.Errorf("commit transaction: %w", err)
	}
	return updated, nil
}

func (s *TemplateProvider) UpdateTemplateStatus(ctx context.Context, templateID, ownerID int64, status string) (domains.Template, error) {
	row := s.db.QueryRow(ctx, `
        UPDATE message_templates
        SET status = $1, last_modified_at = NOW()
        WHERE id = $2 AND owner_id = $3
        RETURNING `+templateColumns,
		status, templateID, ownerID)

	updated, err := scanTemplate(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return domains.Template{}, storage.ErrTemplateNotFound
	}
	if err != nil {
		return domains.Template{}, fmt.Errorf("update template status: %w", err)
	}
	return updated, nil
}

func (s *TemplateProvider) GetAllTemplatesByOwner(ctx context.Context, ownerID int64) ([]domains.Template, error) {
	rows, err := s.db.Query(ctx, `
        SELECT `+templateColumns+`
        FROM message_templates
        WHERE owner_id = $1
        ORDER BY last_modified_at DESC`,
		ownerID)
	if err != nil {
		return nil, fmt.Errorf("query templates: %w", err)
	}
	defer rows.Close()

	var templates []domains.Template
	for rows.Next() {
		template, err := scanTemplate(rows)
		if err != nil {
			return nil, fmt.Errorf("scan template: %w", err)
		}
		templates = append(templates, template)
	}
	return templates, rows.Err()
}

func (s *TemplateProvider) GetTemplateByID(ctx context.Context, templateID, ownerID int64) (domains.Template, error) {
	row := s.db.QueryRow(ctx, `
        SELECT `+templateColumns+`
        FROM message_templates
        WHERE id = $1 AND owner_id = $2`,
		templateID, ownerID)

	template, err := scanTemplate(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return domains.Template{}, storage.ErrTemplateNotFound
	}
	if err != nil {
		return domains.Template{}, fmt.Errorf("get template: %w", err)
	}
	return template, nil
}

// ArchiveStaleDrafts moves drafts untouched since cutoff to archived and
// returns how many rows changed. Driven by the lifecycle scheduler.
func (s *TemplateProvider) ArchiveStaleDrafts(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := s.db.Exec(ctx, `
        UPDATE message_templates
        SET status = $1, last_modified_at = NOW()
        WHERE status = $2 AND last_modified_at < $3`,
		domains.TemplateStatusArchived, domains.TemplateStatusDraft, cutoff)
	if err != nil {
		return 0, fmt.Errorf("archive stale drafts: %w", err)
	}
	return tag.RowsAffected(), nil
}

func marshalTemplateJSON(template domains.TemplateCreate) (declarations, attachments []byte, err error) {
	declarations, err = json.Marshal(template.Declarations)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal declarations: %w", err)
	}
	attachments, err = json.Marshal(template.Attachments)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal attachments: %w", err)
	}
	return declarations, attachments, nil
}

func scanTemplate(row pgx.Row) (domains.Template, error) {
	var (
		template     domains.Template
		declarations []byte
		attachments  []byte
	)
	err := row.Scan(
		&template.ID, &template.OwnerID, &template.Name, &template.Body,
		&declarations, &template.Category, &template.Tags, &template.Language,
		&template.Status, &template.CreatedAt, &template.LastModifiedAt,
		&template.UsageCount, &attachments)
	if err != nil {
		return domains.Template{}, err
	}
	if len(declarations) > 0 {
		if err := json.Unmarshal(declarations, &template.Declarations); err != nil {
			return domains.Template{}, fmt.Errorf("unmarshal declarations: %w", err)
		}
	}
	if template.Declarations == nil {
		template.Declarations = []templating.PlaceholderDeclaration{}
	}
	if len(attachments) > 0 {
		if err := json.Unmarshal(attachments, &template.Attachments); err != nil {
			return domains.Template{}, fmt.Errorf("unmarshal attachments: %w", err)
		}
	}
	if template.Attachments == nil {
		template.Attachments = []domains.Attachment{}
	}
	return template, nil
}
