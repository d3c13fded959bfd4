package routes

import (
	"roads_authority/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathOffices = "/offices"

func addOfficeRoutes(rg *gin.RouterGroup, officeHandler *handlers.OfficeHandler) {
	offices := rg.Group(PathOffices)
	{
		offices.GET("", officeHandler.List)
		offices.GET("/nearby", officeHandler.Nearby)
		offices.GET("/regions", officeHandler.Regions)
		offices.GET("/:id", officeHandler.Get)
	}
}

func addAdminOfficeRoutes(admin *gin.RouterGroup, officeHandler *handlers.OfficeHandler) {
	offices := admin.Group(PathOffices)
	{
		offices.POST("", officeHandler.Create)
		offices.PUT("/:id", officeHandler.Update)
		offices.DELETE("/:id", officeHandler.Delete)
	}
}
