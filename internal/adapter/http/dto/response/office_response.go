package response

import (
	"roads_authority/internal/domain/entities"
	"roads_authority/internal/usecase"
)

type OfficeListResponse struct {
	Offices []entities.Office `json:"offices"`
	Count   int               `json:"count"`
}

func FromOffices(offices []entities.Office) OfficeListResponse {
	if offices == nil {
		offices = []entities.Office{}
	}
	return OfficeListResponse{Offices: offices, Count: len(offices)}
}

// NearbyOfficesResponse carries both the flat sorted list and the sections
// the office finder renders.
type NearbyOfficesResponse struct {
	SortBy  string                    `json:"sort_by"`
	Offices []entities.OfficeDistance `json:"offices"`
	Groups  []entities.OfficeGroup    `json:"groups"`
}

func FromOfficeListing(l usecase.OfficeListing) NearbyOfficesResponse {
	offices := l.Offices
	if offices == nil {
		offices = []entities.OfficeDistance{}
	}
	groups := l.Groups
	if groups == nil {
		groups = []entities.OfficeGroup{}
	}
	return NearbyOfficesResponse{SortBy: string(l.SortBy), Offices: offices, Groups: groups}
}

type RegionsResponse struct {
	Regions []string `json:"regions"`
}
