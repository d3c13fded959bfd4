package request

import (
	"strings"

	"roads_authority/internal/domain/entities"
	"roads_authority/internal/usecase"
)

type CoordinatesRequest struct {
	Latitude  float64 `json:"latitude" binding:"min=-90,max=90"`
	Longitude float64 `json:"longitude" binding:"min=-180,max=180"`
}

type SpecialHoursRequest struct {
	Date   string `json:"date" binding:"required,datetime=2006-01-02"`
	Reason string `json:"reason"`
	Closed bool   `json:"closed"`
	Open   string `json:"open" binding:"omitempty,datetime=15:04"`
	Close  string `json:"close" binding:"omitempty,datetime=15:04"`
}

type OfficeRequest struct {
	Name           string                `json:"name" binding:"required"`
	Address        string                `json:"address" binding:"required"`
	Region         string                `json:"region" binding:"required"`
	Coordinates    *CoordinatesRequest   `json:"coordinates"`
	ContactNumber  string                `json:"contact_number"`
	Email          string                `json:"email" binding:"omitempty,email"`
	Services       []string              `json:"services"`
	OperatingHours map[string]string     `json:"operating_hours"`
	ClosedDays     []string              `json:"closed_days"`
	SpecialHours   []SpecialHoursRequest `json:"special_hours" binding:"omitempty,dive"`
}

func (r OfficeRequest) ToEntity() entities.Office {
	o := entities.Office{
		Name:           r.Name,
		Address:        r.Address,
		Region:         r.Region,
		ContactNumber:  r.ContactNumber,
		Email:          r.Email,
		Services:       r.Services,
		OperatingHours: r.OperatingHours,
		ClosedDays:     r.ClosedDays,
	}
	if r.Coordinates != nil {
		o.Coordinates = &entities.Coordinates{Latitude: r.Coordinates.Latitude, Longitude: r.Coordinates.Longitude}
	}
	for _, s := range r.SpecialHours {
		o.SpecialHours = append(o.SpecialHours, entities.SpecialHours(s))
	}
	return o
}

// NearbyOfficesRequest is the office finder query. Lat and Lon are optional;
// without them offices are grouped by region.
type NearbyOfficesRequest struct {
	Lat    *float64 `form:"lat" binding:"omitempty,min=-90,max=90"`
	Lon    *float64 `form:"lon" binding:"omitempty,min=-180,max=180"`
	Sort   string   `form:"sort" binding:"omitempty,oneof=region name distance"`
	Region string   `form:"region"`
	Search string   `form:"search"`
}

func (r NearbyOfficesRequest) ToQuery() usecase.NearbyQuery {
	q := usecase.NearbyQuery{
		SortBy: strings.TrimSpace(r.Sort),
		Region: r.Region,
		Search: r.Search,
	}
	if r.Lat != nil && r.Lon != nil {
		q.Origin = &entities.Coordinates{Latitude: *r.Lat, Longitude: *r.Lon}
	}
	return q
}
