package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"roads_authority/internal/domain/entities"
	"roads_authority/internal/usecase/interfaces"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrDocumentNotFound     = errors.New("document not found")
	ErrInvalidDocumentID    = errors.New("invalid document id")
	ErrInvalidDocumentKind  = errors.New("invalid document kind")
	ErrInvalidDocument      = errors.New("invalid document")
	ErrAttachmentNotFound   = errors.New("attachment not found")
	ErrPresignerUnavailable = errors.New("document storage not configured")
)

// Document listing orders.
const (
	DocumentSortNewest      = "newest"
	DocumentSortClosingDate = "closing_date"
	DocumentSortTitle       = "title"
)

type DocumentQuery struct {
	Kind     string
	Search   string
	Category string
	Status   string
	// Published nil lists everything (admin); the public API always sets true.
	Published *bool
	Sort      string
	Page      int
	Limit     int
}

type DocumentPage struct {
	Documents  []entities.Document
	Total      int
	Page       int
	Limit      int
	TotalPages int
}

type IDocumentUseCase interface {
	List(ctx context.Context, q DocumentQuery) (DocumentPage, error)
	Get(ctx context.Context, id string) (entities.Document, error)
	DownloadURL(ctx context.Context, id string, attachment int) (string, error)
	Create(ctx context.Context, d entities.Document) (entities.Document, error)
	Update(ctx context.Context, id string, d entities.Document) (entities.Document, error)
	Delete(ctx context.Context, id string) error
}

type DocumentUseCase struct {
	repo      interfaces.IDocumentRepository
	presigner interfaces.IFilePresigner
	ttl       time.Duration
	now       func() time.Time
}

var _ IDocumentUseCase = (*DocumentUseCase)(nil)

// NewDocumentUseCase builds the use case; presigner may be nil when no bucket
// is configured, in which case only direct attachment URLs can be served.
func NewDocumentUseCase(repo interfaces.IDocumentRepository, presigner interfaces.IFilePresigner, ttl time.Duration) *DocumentUseCase {
	return &DocumentUseCase{
		repo:      repo,
		presigner: presigner,
		ttl:       ttl,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (u *DocumentUseCase) List(ctx context.Context, q DocumentQuery) (DocumentPage, error) {
	kind, ok := entities.ParseDocumentKind(q.Kind)
	if !ok {
		return DocumentPage{}, fmt.Errorf("%w: %q", ErrInvalidDocumentKind, q.Kind)
	}
	all, err := u.repo.ListByKind(ctx, kind)
	if err != nil {
		return DocumentPage{}, err
	}

	now := u.now()
	category := strings.ToLower(strings.TrimSpace(q.Category))
	status := strings.ToLower(strings.TrimSpace(q.Status))
	filtered := make([]entities.Document, 0, len(all))
	for _, d := range all {
		if q.Published != nil && d.Published != *q.Published {
			continue
		}
		if category != "" && strings.ToLower(d.Category) != category {
			continue
		}
		d.Status = d.EffectiveStatus(now)
		if status != "" && d.Status != status {
			continue
		}
		if !d.Matches(q.Search) {
			continue
		}
		filtered = append(filtered, d)
	}
	sortDocuments(filtered, q.Sort)

	page, limit := clampPage(q.Page, q.Limit)
	start, end := pageBounds(len(filtered), page, limit)
	return DocumentPage{
		Documents:  filtered[start:end],
		Total:      len(filtered),
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(len(filtered), limit),
	}, nil
}

func sortDocuments(docs []entities.Document, by string) {
	switch strings.ToLower(strings.TrimSpace(by)) {
	case DocumentSortClosingDate:
		sort.SliceStable(docs, func(i, j int) bool {
			a, b := docs[i].ClosingDate, docs[j].ClosingDate
			switch {
			case a == nil:
				return false
			case b == nil:
				return true
			}
			return a.Before(*b)
		})
	case DocumentSortTitle:
		sort.SliceStable(docs, func(i, j int) bool {
			return strings.ToLower(docs[i].Title) < strings.ToLower(docs[j].Title)
		})
	default:
		sort.SliceStable(docs, func(i, j int) bool {
			return documentDate(docs[i]).After(documentDate(docs[j]))
		})
	}
}

func documentDate(d entities.Document) time.Time {
	if d.PublishedAt != nil {
		return *d.PublishedAt
	}
	return d.CreatedAt
}

func (u *DocumentUseCase) Get(ctx context.Context, id string) (entities.Document, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Document{}, ErrInvalidDocumentID
	}
	d, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Document{}, err
	}
	if d.ID == "" {
		return entities.Document{}, ErrDocumentNotFound
	}
	d.Status = d.EffectiveStatus(u.now())
	return d, nil
}

// DownloadURL returns a link for the attachment at index. Files kept in the
// documents bucket get a presigned URL; external links are returned as stored.
func (u *DocumentUseCase) DownloadURL(ctx context.Context, id string, attachment int) (string, error) {
	d, err := u.Get(ctx, id)
	if err != nil {
		return "", err
	}
	if attachment < 0 || attachment >= len(d.Attachments) {
		return "", ErrAttachmentNotFound
	}
	a := d.Attachments[attachment]
	if a.Key == "" {
		if a.URL == "" {
			return "", ErrAttachmentNotFound
		}
		return a.URL, nil
	}
	if u.presigner == nil {
		return "", ErrPresignerUnavailable
	}
	url, err := u.presigner.PresignGet(ctx, a.Key, u.ttl)
	if err != nil {
		log.Printf("[document][usecase] presign failed id=%s key=%s err=%v", d.ID, a.Key, err)
		return "", err
	}
	return url, nil
}

func (u *DocumentUseCase) Create(ctx context.Context, d entities.Document) (entities.Document, error) {
	d, err := u.prepare(d)
	if err != nil {
		return entities.Document{}, err
	}
	now := u.now()
	d.ID = uuid.NewString()
	d.CreatedAt = now
	d.UpdatedAt = now
	if d.Published && d.PublishedAt == nil {
		d.PublishedAt = &now
	}
	created, err := u.repo.Create(ctx, d)
	if err != nil {
		return entities.Document{}, err
	}
	log.Printf("[document][usecase] created id=%s kind=%s", created.ID, created.Kind)
	return created, nil
}

func (u *DocumentUseCase) Update(ctx context.Context, id string, d entities.Document) (entities.Document, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Document{}, ErrInvalidDocumentID
	}
	current, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Document{}, err
	}
	if current.ID == "" {
		return entities.Document{}, ErrDocumentNotFound
	}
	d, err = u.prepare(d)
	if err != nil {
		return entities.Document{}, err
	}
	now := u.now()
	d.ID = current.ID
	d.CreatedAt = current.CreatedAt
	d.UpdatedAt = now
	switch {
	case !d.Published:
		d.PublishedAt = nil
	case d.PublishedAt == nil && current.PublishedAt != nil:
		d.PublishedAt = current.PublishedAt
	case d.PublishedAt == nil:
		d.PublishedAt = &now
	}
	return u.repo.Update(ctx, d)
}

func (u *DocumentUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidDocumentID
	}
	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrDocumentNotFound
	}
	log.Printf("[document][usecase] deleted id=%s", id)
	return nil
}

func (u *DocumentUseCase) prepare(d entities.Document) (entities.Document, error) {
	kind, ok := entities.ParseDocumentKind(string(d.Kind))
	if !ok {
		return entities.Document{}, fmt.Errorf("%w: %q", ErrInvalidDocumentKind, d.Kind)
	}
	d.Kind = kind
	d.Title = strings.TrimSpace(d.Title)
	if d.Title == "" {
		return entities.Document{}, fmt.Errorf("%w: title is required", ErrInvalidDocument)
	}
	d.Status = strings.ToLower(strings.TrimSpace(d.Status))
	if d.OpeningDate != nil && d.ClosingDate != nil && d.ClosingDate.Before(*d.OpeningDate) {
		return entities.Document{}, fmt.Errorf("%w: closing date precedes opening date", ErrInvalidDocument)
	}
	for i, a := range d.Attachments {
		if strings.TrimSpace(a.Key) == "" && strings.TrimSpace(a.URL) == "" {
			return entities.Document{}, fmt.Errorf("%w: attachment %d has neither key nor url", ErrInvalidDocument, i+1)
		}
	}
	return d, nil
}
