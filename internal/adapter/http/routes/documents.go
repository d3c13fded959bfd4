package routes

import (
	"roads_authority/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

// PathDocuments serves forms, tenders, vacancies, procurement and news,
// selected by the :kind segment.
const PathDocuments = "/documents"

func addDocumentRoutes(rg *gin.RouterGroup, documentHandler *handlers.DocumentHandler) {
	documents := rg.Group(PathDocuments)
	{
		documents.GET("/:kind", documentHandler.List)
		documents.GET("/:kind/:id", documentHandler.Get)
		documents.GET("/:kind/:id/attachments/:index", documentHandler.Download)
	}
}

func addAdminDocumentRoutes(admin *gin.RouterGroup, documentHandler *handlers.DocumentHandler) {
	documents := admin.Group(PathDocuments)
	{
		documents.GET("/:kind", documentHandler.AdminList)
		documents.POST("/:kind", documentHandler.Create)
		documents.PUT("/:kind/:id", documentHandler.Update)
		documents.DELETE("/:kind/:id", documentHandler.Delete)
	}
}
