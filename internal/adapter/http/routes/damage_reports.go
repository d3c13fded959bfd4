package routes

import (
	"roads_authority/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathDamageReports = "/damage-reports"

func addDamageReportRoutes(rg *gin.RouterGroup, reportHandler *handlers.DamageReportHandler) {
	reports := rg.Group(PathDamageReports)
	{
		reports.POST("", reportHandler.Create)
		reports.GET("/mine", reportHandler.ListMine)
		reports.GET("/:id", reportHandler.Get)
	}
}

func addAdminDamageReportRoutes(admin *gin.RouterGroup, reportHandler *handlers.DamageReportHandler) {
	reports := admin.Group(PathDamageReports)
	{
		reports.GET("", reportHandler.List)
		reports.GET("/filters", reportHandler.Filters)
		reports.PATCH("/:id/status", reportHandler.UpdateStatus)
		reports.PATCH("/:id/assign", reportHandler.Assign)
		reports.PATCH("/:id/notes", reportHandler.AddNotes)
	}
}
