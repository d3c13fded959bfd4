package request

import (
	"roads_authority/internal/domain/entities"
	"roads_authority/internal/usecase"
)

type CreateReportRequest struct {
	DeviceID    string             `json:"device_id" binding:"required"`
	Email       string             `json:"email" binding:"omitempty,email"`
	Location    CoordinatesRequest `json:"location" binding:"required"`
	RoadName    string             `json:"road_name"`
	Town        string             `json:"town"`
	Description string             `json:"description" binding:"max=2000"`
	Severity    string             `json:"severity" binding:"omitempty,oneof=low medium high"`
	PhotoURL    string             `json:"photo_url" binding:"required,url"`
}

func (r CreateReportRequest) ToCommand() usecase.CreateReportCommand {
	return usecase.CreateReportCommand{
		DeviceID:    r.DeviceID,
		Email:       r.Email,
		Location:    entities.Coordinates{Latitude: r.Location.Latitude, Longitude: r.Location.Longitude},
		RoadName:    r.RoadName,
		Town:        r.Town,
		Description: r.Description,
		Severity:    r.Severity,
		PhotoURL:    r.PhotoURL,
	}
}

type MyReportsRequest struct {
	DeviceID string `form:"device_id"`
	Email    string `form:"email" binding:"omitempty,email"`
	Status   string `form:"status"`
}

type UpdateReportStatusRequest struct {
	Status         string `json:"status" binding:"required"`
	AssignedTo     string `json:"assigned_to"`
	AdminNotes     string `json:"admin_notes"`
	Severity       string `json:"severity" binding:"omitempty,oneof=low medium high"`
	RepairPhotoURL string `json:"repair_photo_url" binding:"omitempty,url"`
}

func (r UpdateReportStatusRequest) ToUpdate() usecase.ReportUpdate {
	return usecase.ReportUpdate{
		AssignedTo:     r.AssignedTo,
		AdminNotes:     r.AdminNotes,
		Severity:       r.Severity,
		RepairPhotoURL: r.RepairPhotoURL,
	}
}

type AssignReportRequest struct {
	AssignedTo string `json:"assigned_to" binding:"required"`
}

type ReportNotesRequest struct {
	Notes string `json:"notes" binding:"required"`
}

type ListReportsRequest struct {
	DeviceID string `form:"device_id"`
	Region   string `form:"region"`
	Town     string `form:"town"`
	Severity string `form:"severity"`
	Status   string `form:"status"`
	Search   string `form:"search"`
	From     string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To       string `form:"to" binding:"omitempty,datetime=2006-01-02"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	Limit    int    `form:"limit" binding:"omitempty,min=1,max=100"`
}

func (r ListReportsRequest) ToQuery() usecase.ListReportsQuery {
	from, to := parseDayRange(r.From, r.To)
	return usecase.ListReportsQuery{
		DeviceID: r.DeviceID,
		Region:   r.Region,
		Town:     r.Town,
		Severity: r.Severity,
		Status:   r.Status,
		Search:   r.Search,
		From:     from,
		To:       to,
		Page:     r.Page,
		Limit:    r.Limit,
	}
}
