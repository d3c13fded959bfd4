package entities

import (
	"strings"
	"time"
)

// DocumentKind identifies the screen a published document belongs to.
type DocumentKind string

const (
	DocumentKindForm                   DocumentKind = "form"
	DocumentKindTender                 DocumentKind = "tender"
	DocumentKindVacancy                DocumentKind = "vacancy"
	DocumentKindProcurementAward       DocumentKind = "procurement_award"
	DocumentKindProcurementPlan        DocumentKind = "procurement_plan"
	DocumentKindOpeningRegister        DocumentKind = "opening_register"
	DocumentKindProcurementLegislation DocumentKind = "procurement_legislation"
	DocumentKindNews                   DocumentKind = "news"
)

var documentKinds = []DocumentKind{
	DocumentKindForm,
	DocumentKindTender,
	DocumentKindVacancy,
	DocumentKindProcurementAward,
	DocumentKindProcurementPlan,
	DocumentKindOpeningRegister,
	DocumentKindProcurementLegislation,
	DocumentKindNews,
}

// ParseDocumentKind accepts the kind in any case, with hyphens or underscores.
func ParseDocumentKind(v string) (DocumentKind, bool) {
	k := DocumentKind(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(v)), "-", "_"))
	for _, known := range documentKinds {
		if k == known {
			return k, true
		}
	}
	return "", false
}

// Tender statuses.
const (
	TenderStatusOpen     = "open"
	TenderStatusClosed   = "closed"
	TenderStatusUpcoming = "upcoming"
)

// Attachment is a downloadable file attached to a document.
//
// Key is the object key in the documents bucket; URL is used as-is when Key is empty.
type Attachment struct {
	Name     string `json:"name"`
	Key      string `json:"key,omitempty"`
	URL      string `json:"url,omitempty"`
	MimeType string `json:"mime_type,omitempty"`
	Size     int64  `json:"size,omitempty"`
}

// Document is a published item listed by the forms, tenders, vacancies and
// procurement screens.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (kind-index): kind
type Document struct {
	ID          string       `json:"id"`
	Kind        DocumentKind `json:"kind"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Reference   string       `json:"reference,omitempty"`
	Category    string       `json:"category,omitempty"`
	Department  string       `json:"department,omitempty"`
	Location    string       `json:"location,omitempty"`
	Status      string       `json:"status,omitempty"`
	Published   bool         `json:"published"`
	OpeningDate *time.Time   `json:"opening_date,omitempty"`
	ClosingDate *time.Time   `json:"closing_date,omitempty"`
	Attachments []Attachment `json:"attachments,omitempty"`
	PublishedAt *time.Time   `json:"published_at,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// EffectiveStatus returns the stored status, or for tenders without one, a
// status derived from the opening and closing dates.
func (d Document) EffectiveStatus(now time.Time) string {
	if s := strings.ToLower(strings.TrimSpace(d.Status)); s != "" || d.Kind != DocumentKindTender {
		return s
	}
	switch {
	case d.OpeningDate != nil && now.Before(*d.OpeningDate):
		return TenderStatusUpcoming
	case d.ClosingDate != nil && now.After(*d.ClosingDate):
		return TenderStatusClosed
	}
	return TenderStatusOpen
}

// Matches reports whether the case-insensitive search term appears in any of
// the searchable fields. An empty term matches everything.
func (d Document) Matches(term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	for _, field := range []string{d.Title, d.Description, d.Reference, d.Category, d.Department, d.Location} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}
