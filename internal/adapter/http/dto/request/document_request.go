package request

import (
	"time"

	"roads_authority/internal/domain/entities"
	"roads_authority/internal/usecase"
)

type AttachmentRequest struct {
	Name     string `json:"name" binding:"required"`
	Key      string `json:"key" binding:"required_without=URL"`
	URL      string `json:"url" binding:"omitempty,url"`
	MimeType string `json:"mime_type"`
	Size     int64  `json:"size" binding:"min=0"`
}

// DocumentRequest creates or replaces a published document. Kind comes from
// the route, not the body.
type DocumentRequest struct {
	Title       string              `json:"title" binding:"required"`
	Description string              `json:"description"`
	Reference   string              `json:"reference"`
	Category    string              `json:"category"`
	Department  string              `json:"department"`
	Location    string              `json:"location"`
	Status      string              `json:"status"`
	Published   bool                `json:"published"`
	OpeningDate *time.Time          `json:"opening_date"`
	ClosingDate *time.Time          `json:"closing_date"`
	Attachments []AttachmentRequest `json:"attachments" binding:"omitempty,dive"`
}

func (r DocumentRequest) ToEntity(kind entities.DocumentKind) entities.Document {
	d := entities.Document{
		Kind:        kind,
		Title:       r.Title,
		Description: r.Description,
		Reference:   r.Reference,
		Category:    r.Category,
		Department:  r.Department,
		Location:    r.Location,
		Status:      r.Status,
		Published:   r.Published,
		OpeningDate: r.OpeningDate,
		ClosingDate: r.ClosingDate,
	}
	for _, a := range r.Attachments {
		d.Attachments = append(d.Attachments, entities.Attachment(a))
	}
	return d
}

type ListDocumentsRequest struct {
	Search   string `form:"search"`
	Category string `form:"category"`
	Status   string `form:"status"`
	Sort     string `form:"sort" binding:"omitempty,oneof=newest closing_date title"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	Limit    int    `form:"limit" binding:"omitempty,min=1,max=100"`
}

// ToQuery builds the listing query. Public callers only ever see published
// documents; admins see everything.
func (r ListDocumentsRequest) ToQuery(kind string, publicOnly bool) usecase.DocumentQuery {
	q := usecase.DocumentQuery{
		Kind:     kind,
		Search:   r.Search,
		Category: r.Category,
		Status:   r.Status,
		Sort:     r.Sort,
		Page:     r.Page,
		Limit:    r.Limit,
	}
	if publicOnly {
		published := true
		q.Published = &published
	}
	return q
}
