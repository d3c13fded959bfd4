package handlers

import (
	"log"
	"net/http"
	"strconv"

	"roads_authority/internal/adapter/http/dto/request"
	"roads_authority/internal/adapter/http/dto/response"
	"roads_authority/internal/domain/entities"
	"roads_authority/internal/usecase"

	"github.com/gin-gonic/gin"
)

// DocumentHandler serves forms, tenders, vacancies, procurement notices and
// news. The document kind is always part of the path.
type DocumentHandler struct {
	usecase usecase.IDocumentUseCase
}

func NewDocumentHandler(uc usecase.IDocumentUseCase) *DocumentHandler {
	return &DocumentHandler{usecase: uc}
}

// List godoc
// @Summary      List published documents of a kind
// @Tags         documents
// @Produce      json
// @Param        kind      path      string  true   "form, tender, vacancy, procurement_award, procurement_plan, opening_register, procurement_legislation or news"
// @Param        search    query     string  false  "Title, description, reference or category"
// @Param        category  query     string  false  "Category"
// @Param        status    query     string  false  "open, closed or upcoming for tenders"
// @Param        sort      query     string  false  "newest, closing_date or title"
// @Param        page      query     int     false  "Page"
// @Param        limit     query     int     false  "Page size"
// @Success      200       {object}  response.DocumentPageResponse
// @Router       /documents/{kind} [get]
func (h *DocumentHandler) List(c *gin.Context) {
	h.list(c, true)
}

// AdminList lists drafts as well as published documents.
func (h *DocumentHandler) AdminList(c *gin.Context) {
	h.list(c, false)
}

func (h *DocumentHandler) list(c *gin.Context, publicOnly bool) {
	var q request.ListDocumentsRequest
	if err := c.ShouldBindQuery(&q); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	kind := c.Param("kind")
	page, err := h.usecase.List(c.Request.Context(), q.ToQuery(kind, publicOnly))
	if err != nil {
		log.Printf("[document][handler] list failed kind=%s err=%v", kind, err)
		writeError(c, mapDocumentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDocumentPage(page))
}

func (h *DocumentHandler) Get(c *gin.Context) {
	d, ok := h.published(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, d)
}

// Download godoc
// @Summary      Get a download link for a document attachment
// @Description  Files stored by the Roads Authority get a short-lived signed link.
// @Tags         documents
// @Produce      json
// @Param        kind   path      string  true  "Document kind"
// @Param        id     path      string  true  "Document id"
// @Param        index  path      int     true  "Attachment index"
// @Success      200    {object}  response.DownloadURLResponse
// @Failure      404    {object}  pkg.HTTPError
// @Router       /documents/{kind}/{id}/attachments/{index} [get]
func (h *DocumentHandler) Download(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	d, ok := h.published(c)
	if !ok {
		return
	}
	url, err := h.usecase.DownloadURL(c.Request.Context(), d.ID, index)
	if err != nil {
		log.Printf("[document][handler] download failed id=%s index=%d err=%v", d.ID, index, err)
		writeError(c, mapDocumentError(err))
		return
	}
	c.JSON(http.StatusOK, response.DownloadURLResponse{URL: url})
}

// published loads the document in the path and hides drafts and documents
// requested under another kind.
func (h *DocumentHandler) published(c *gin.Context) (entities.Document, bool) {
	d, err := h.usecase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapDocumentError(err))
		return entities.Document{}, false
	}
	kind, _ := entities.ParseDocumentKind(c.Param("kind"))
	if !d.Published || d.Kind != kind {
		writeError(c, mapDocumentError(usecase.ErrDocumentNotFound))
		return entities.Document{}, false
	}
	return d, true
}

func (h *DocumentHandler) Create(c *gin.Context) {
	var payload request.DocumentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, invalidInput("INVALID_DOCUMENT", err))
		return
	}
	created, err := h.usecase.Create(c.Request.Context(), payload.ToEntity(entities.DocumentKind(c.Param("kind"))))
	if err != nil {
		log.Printf("[document][handler] create failed kind=%s err=%v", c.Param("kind"), err)
		writeError(c, mapDocumentError(err))
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *DocumentHandler) Update(c *gin.Context) {
	var payload request.DocumentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, invalidInput("INVALID_DOCUMENT", err))
		return
	}
	id := c.Param("id")
	updated, err := h.usecase.Update(c.Request.Context(), id, payload.ToEntity(entities.DocumentKind(c.Param("kind"))))
	if err != nil {
		log.Printf("[document][handler] update failed id=%s err=%v", id, err)
		writeError(c, mapDocumentError(err))
		return
	}
	if updated.ID == "" {
		writeError(c, mapDocumentError(usecase.ErrDocumentNotFound))
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *DocumentHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, mapDocumentError(err))
		return
	}
	c.Status(http.StatusNoContent)
}
