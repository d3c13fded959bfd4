package response

import (
	"roads_authority/internal/domain/entities"
	"roads_authority/internal/usecase"
)

type DocumentPageResponse struct {
	Documents  []entities.Document `json:"documents"`
	Pagination Pagination          `json:"pagination"`
}

func FromDocumentPage(p usecase.DocumentPage) DocumentPageResponse {
	docs := p.Documents
	if docs == nil {
		docs = []entities.Document{}
	}
	return DocumentPageResponse{
		Documents:  docs,
		Pagination: Pagination{Total: p.Total, Page: p.Page, Limit: p.Limit, TotalPages: p.TotalPages},
	}
}

type DownloadURLResponse struct {
	URL string `json:"url"`
}
