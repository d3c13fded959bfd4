package routes

import (
	"roads_authority/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathAdmin           = "/admin"
	PathPLNApplications = "/pln/applications"
	PathPLNPayments     = "/pln/payments"
)

func addPLNRoutes(rg *gin.RouterGroup, applicationHandler *handlers.PLNApplicationHandler, paymentHandler *handlers.PLNPaymentHandler, trackLimit gin.HandlerFunc) {
	applications := rg.Group(PathPLNApplications)
	{
		applications.POST("", applicationHandler.Submit)
		applications.POST("/track", trackLimit, applicationHandler.Track)
	}

	payments := rg.Group(PathPLNPayments)
	{
		payments.POST("/:reference_id", paymentHandler.CreatePayment)
		payments.GET("/:reference_id", paymentHandler.GetLatestPayment)
	}
}

func addAdminPLNRoutes(admin *gin.RouterGroup, applicationHandler *handlers.PLNApplicationHandler, paymentHandler *handlers.PLNPaymentHandler) {
	applications := admin.Group(PathPLNApplications)
	{
		applications.GET("", applicationHandler.List)
		applications.GET("/by-email", applicationHandler.ListByEmail)
		applications.GET("/:id", applicationHandler.Get)
		applications.PATCH("/:id/status", applicationHandler.UpdateStatus)
		applications.POST("/:id/payment-received", applicationHandler.MarkPaymentReceived)
		applications.POST("/:id/order-plates", applicationHandler.OrderPlates)
		applications.POST("/:id/ready", applicationHandler.MarkReadyForCollection)
	}

	admin.POST("/pln/expire-overdue", applicationHandler.ExpireOverdue)
	admin.GET("/pln/dashboard", applicationHandler.Dashboard)
	admin.GET(PathPLNPayments+"/:id", paymentHandler.GetPayment)
}
