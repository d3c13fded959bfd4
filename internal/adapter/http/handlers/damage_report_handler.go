package handlers

import (
	"log"
	"net/http"

	"roads_authority/internal/adapter/http/dto/request"
	"roads_authority/internal/adapter/http/dto/response"
	"roads_authority/internal/domain/entities"
	"roads_authority/internal/usecase"

	"github.com/gin-gonic/gin"
)

// DamageReportHandler serves pothole and road damage reports.
type DamageReportHandler struct {
	usecase usecase.IDamageReportUseCase
}

func NewDamageReportHandler(uc usecase.IDamageReportUseCase) *DamageReportHandler {
	return &DamageReportHandler{usecase: uc}
}

// Create godoc
// @Summary      Report road damage
// @Tags         damage-reports
// @Accept       json
// @Produce      json
// @Param        body  body      request.CreateReportRequest  true  "Report"
// @Success      201   {object}  entities.DamageReport
// @Failure      400   {object}  pkg.HTTPError
// @Router       /damage-reports [post]
func (h *DamageReportHandler) Create(c *gin.Context) {
	var payload request.CreateReportRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[report][handler] create invalid payload err=%v", err)
		writeError(c, invalidInput("INVALID_REPORT", err))
		return
	}
	created, err := h.usecase.Create(c.Request.Context(), payload.ToCommand())
	if err != nil {
		log.Printf("[report][handler] create failed device_id=%s err=%v", payload.DeviceID, err)
		writeError(c, mapReportError(err))
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListMine returns the reports filed from a device or email address.
func (h *DamageReportHandler) ListMine(c *gin.Context) {
	var q request.MyReportsRequest
	if err := c.ShouldBindQuery(&q); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	list, err := h.usecase.ListMine(c.Request.Context(), q.DeviceID, q.Email, q.Status)
	if err != nil {
		writeError(c, mapReportError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromReports(list))
}

func (h *DamageReportHandler) Get(c *gin.Context) {
	r, err := h.usecase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapReportError(err))
		return
	}
	c.JSON(http.StatusOK, r)
}

// List godoc
// @Summary      List damage reports
// @Tags         admin
// @Produce      json
// @Security     Bearer
// @Param        region    query     string  false  "Region"
// @Param        town      query     string  false  "Town"
// @Param        severity  query     string  false  "low, medium or high"
// @Param        status    query     string  false  "pending, assigned, in-progress, fixed, duplicate or invalid"
// @Param        search    query     string  false  "Reference, road, town or region"
// @Param        from      query     string  false  "Created on or after (YYYY-MM-DD)"
// @Param        to        query     string  false  "Created on or before (YYYY-MM-DD)"
// @Param        page      query     int     false  "Page"
// @Param        limit     query     int     false  "Page size"
// @Success      200       {object}  response.ReportPageResponse
// @Router       /admin/damage-reports [get]
func (h *DamageReportHandler) List(c *gin.Context) {
	var q request.ListReportsRequest
	if err := c.ShouldBindQuery(&q); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	page, err := h.usecase.List(c.Request.Context(), q.ToQuery())
	if err != nil {
		log.Printf("[report][handler] list failed err=%v", err)
		writeError(c, mapReportError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromReportPage(page))
}

func (h *DamageReportHandler) Filters(c *gin.Context) {
	regions, towns, err := h.usecase.RegionsAndTowns(c.Request.Context())
	if err != nil {
		writeError(c, mapReportError(err))
		return
	}
	c.JSON(http.StatusOK, response.ReportFiltersResponse{Regions: regions, Towns: towns})
}

func (h *DamageReportHandler) UpdateStatus(c *gin.Context) {
	var payload request.UpdateReportStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	id := c.Param("id")
	updated, err := h.usecase.UpdateStatus(c.Request.Context(), id, payload.Status, payload.ToUpdate())
	if err != nil {
		log.Printf("[report][handler] status update failed id=%s status=%s err=%v", id, payload.Status, err)
		writeError(c, mapReportError(err))
		return
	}
	h.writeUpdated(c, updated)
}

func (h *DamageReportHandler) Assign(c *gin.Context) {
	var payload request.AssignReportRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	updated, err := h.usecase.Assign(c.Request.Context(), c.Param("id"), payload.AssignedTo)
	if err != nil {
		writeError(c, mapReportError(err))
		return
	}
	h.writeUpdated(c, updated)
}

func (h *DamageReportHandler) AddNotes(c *gin.Context) {
	var payload request.ReportNotesRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	updated, err := h.usecase.AddNotes(c.Request.Context(), c.Param("id"), payload.Notes)
	if err != nil {
		writeError(c, mapReportError(err))
		return
	}
	h.writeUpdated(c, updated)
}

// writeUpdated treats a zero report as deleted between read and write.
func (h *DamageReportHandler) writeUpdated(c *gin.Context, r entities.DamageReport) {
	if r.ID == "" {
		writeError(c, mapReportError(usecase.ErrReportNotFound))
		return
	}
	c.JSON(http.StatusOK, r)
}
