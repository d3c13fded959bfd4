package response

import (
	"roads_authority/internal/domain/entities"
	"roads_authority/internal/usecase"
)

type ReportListResponse struct {
	Reports []entities.DamageReport `json:"reports"`
	Count   int                     `json:"count"`
}

func FromReports(list []entities.DamageReport) ReportListResponse {
	if list == nil {
		list = []entities.DamageReport{}
	}
	return ReportListResponse{Reports: list, Count: len(list)}
}

type ReportPageResponse struct {
	Reports    []entities.DamageReport `json:"reports"`
	Pagination Pagination              `json:"pagination"`
}

func FromReportPage(p usecase.ReportPage) ReportPageResponse {
	list := p.Reports
	if list == nil {
		list = []entities.DamageReport{}
	}
	return ReportPageResponse{
		Reports:    list,
		Pagination: Pagination{Total: p.Total, Page: p.Page, Limit: p.Limit, TotalPages: p.TotalPages},
	}
}

type ReportFiltersResponse struct {
	Regions []string `json:"regions"`
	Towns   []string `json:"towns"`
}
