package handlers

import (
	"log"
	"net/http"

	"roads_authority/internal/adapter/http/dto/request"
	"roads_authority/internal/adapter/http/dto/response"
	"roads_authority/internal/usecase"

	"github.com/gin-gonic/gin"
)

// OfficeHandler serves the NaTIS office finder and its admin maintenance.
type OfficeHandler struct {
	usecase usecase.IOfficeUseCase
}

func NewOfficeHandler(uc usecase.IOfficeUseCase) *OfficeHandler {
	return &OfficeHandler{usecase: uc}
}

// List godoc
// @Summary      List offices
// @Tags         offices
// @Produce      json
// @Param        region  query     string  false  "Region"
// @Success      200     {object}  response.OfficeListResponse
// @Router       /offices [get]
func (h *OfficeHandler) List(c *gin.Context) {
	offices, err := h.usecase.List(c.Request.Context(), c.Query("region"))
	if err != nil {
		log.Printf("[office][handler] list failed err=%v", err)
		writeError(c, mapOfficeError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromOffices(offices))
}

// Nearby godoc
// @Summary      Find offices near a position
// @Description  Without lat/lon every office is listed and grouped by region.
// @Tags         offices
// @Produce      json
// @Param        lat     query     number  false  "Latitude"
// @Param        lon     query     number  false  "Longitude"
// @Param        sort    query     string  false  "region, name or distance"
// @Param        region  query     string  false  "Region"
// @Param        search  query     string  false  "Name, address or service"
// @Success      200     {object}  response.NearbyOfficesResponse
// @Router       /offices/nearby [get]
func (h *OfficeHandler) Nearby(c *gin.Context) {
	var q request.NearbyOfficesRequest
	if err := c.ShouldBindQuery(&q); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	listing, err := h.usecase.Nearby(c.Request.Context(), q.ToQuery())
	if err != nil {
		log.Printf("[office][handler] nearby failed err=%v", err)
		writeError(c, mapOfficeError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromOfficeListing(listing))
}

func (h *OfficeHandler) Regions(c *gin.Context) {
	regions, err := h.usecase.Regions(c.Request.Context())
	if err != nil {
		writeError(c, mapOfficeError(err))
		return
	}
	c.JSON(http.StatusOK, response.RegionsResponse{Regions: regions})
}

func (h *OfficeHandler) Get(c *gin.Context) {
	o, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapOfficeError(err))
		return
	}
	c.JSON(http.StatusOK, o)
}

func (h *OfficeHandler) Create(c *gin.Context) {
	var payload request.OfficeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, invalidInput("INVALID_OFFICE", err))
		return
	}
	created, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		log.Printf("[office][handler] create failed err=%v", err)
		writeError(c, mapOfficeError(err))
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *OfficeHandler) Update(c *gin.Context) {
	var payload request.OfficeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, invalidInput("INVALID_OFFICE", err))
		return
	}
	id := c.Param("id")
	updated, err := h.usecase.Update(c.Request.Context(), id, payload.ToEntity())
	if err != nil {
		log.Printf("[office][handler] update failed id=%s err=%v", id, err)
		writeError(c, mapOfficeError(err))
		return
	}
	if updated.ID == "" {
		writeError(c, mapOfficeError(usecase.ErrOfficeNotFound))
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *OfficeHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, mapOfficeError(err))
		return
	}
	c.Status(http.StatusNoContent)
}
