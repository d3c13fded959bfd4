package response

import (
	"time"

	"roads_authority/internal/domain/entities"
	"roads_authority/internal/usecase"
)

// SubmitApplicationResponse is returned once after submission. TrackingPIN is
// not retrievable afterwards.
type SubmitApplicationResponse struct {
	ID          string    `json:"id"`
	ReferenceID string    `json:"reference_id"`
	TrackingPIN string    `json:"tracking_pin"`
	Status      string    `json:"status"`
	StatusLabel string    `json:"status_label"`
	NextSteps   string    `json:"next_steps"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromSubmittedApplication(s usecase.SubmittedApplication) SubmitApplicationResponse {
	a := s.Application
	return SubmitApplicationResponse{
		ID:          a.ID,
		ReferenceID: a.ReferenceID,
		TrackingPIN: s.TrackingPIN,
		Status:      string(entities.NormalizeStatus(string(a.Status))),
		StatusLabel: entities.Label(string(a.Status)),
		NextSteps:   entities.NextStepsMessage(string(a.Status)),
		CreatedAt:   a.CreatedAt,
	}
}

type HistoryEntryResponse struct {
	Status    string    `json:"status"`
	Label     string    `json:"label"`
	Timestamp time.Time `json:"timestamp"`
	Comment   string    `json:"comment,omitempty"`
	ChangedBy string    `json:"changed_by,omitempty"`
}

func fromHistory(history []entities.StatusHistoryEntry) []HistoryEntryResponse {
	out := make([]HistoryEntryResponse, 0, len(history))
	for _, e := range history {
		out = append(out, HistoryEntryResponse{
			Status:    string(e.Status),
			Label:     entities.Label(string(e.Status)),
			Timestamp: e.Timestamp,
			Comment:   e.Comment,
			ChangedBy: e.ChangedBy,
		})
	}
	return out
}

// TrackingResponse is the public tracking screen payload.
type TrackingResponse struct {
	ReferenceID         string                  `json:"reference_id"`
	Status              string                  `json:"status"`
	StatusKnown         bool                    `json:"status_known"`
	StatusLabel         string                  `json:"status_label"`
	StatusTone          string                  `json:"status_tone"`
	NextSteps           string                  `json:"next_steps"`
	TrackingKey         string                  `json:"tracking_key"`
	TrackingLabel       string                  `json:"tracking_label"`
	EstimatedProcessing string                  `json:"estimated_processing"`
	AmountDue           float64                 `json:"amount_due,omitempty"`
	PaymentDeadline     *time.Time              `json:"payment_deadline,omitempty"`
	PaymentOverdue      bool                    `json:"payment_overdue"`
	PlateChoices        []entities.PlateChoice  `json:"plate_choices"`
	History             []HistoryEntryResponse  `json:"status_history"`
	HistoryIssues       []entities.HistoryIssue `json:"history_issues,omitempty"`
	CreatedAt           time.Time               `json:"created_at"`
	UpdatedAt           time.Time               `json:"updated_at"`
}

func FromTrackingView(v usecase.TrackingView) TrackingResponse {
	return TrackingResponse{
		ReferenceID:         v.ReferenceID,
		Status:              string(v.Status),
		StatusKnown:         v.StatusKnown,
		StatusLabel:         v.StatusLabel,
		StatusTone:          string(v.StatusTone),
		NextSteps:           v.NextSteps,
		TrackingKey:         v.TrackingKey,
		TrackingLabel:       v.TrackingLabel,
		EstimatedProcessing: v.EstimatedProcessing,
		AmountDue:           v.AmountDue,
		PaymentDeadline:     v.PaymentDeadline,
		PaymentOverdue:      v.PaymentOverdue,
		PlateChoices:        v.PlateChoices,
		History:             fromHistory(v.History),
		HistoryIssues:       v.HistoryIssues,
		CreatedAt:           v.CreatedAt,
		UpdatedAt:           v.UpdatedAt,
	}
}

// ApplicationResponse is the full application as seen by admins, with the
// derived presentation fields. It carries personal data and is never served on
// public routes.
type ApplicationResponse struct {
	entities.PLNApplication
	StatusLabel    string `json:"status_label"`
	StatusTone     string `json:"status_tone"`
	NextSteps      string `json:"next_steps"`
	PaymentOverdue bool   `json:"payment_overdue"`
}

func FromApplication(a entities.PLNApplication, now time.Time) ApplicationResponse {
	raw := string(a.Status)
	a.Status = entities.NormalizeStatus(raw)
	return ApplicationResponse{
		PLNApplication: a,
		StatusLabel:    entities.Label(raw),
		StatusTone:     string(entities.Tone(raw)),
		NextSteps:      entities.NextStepsMessage(raw),
		PaymentOverdue: a.PaymentOverdue(now),
	}
}

func FromApplications(list []entities.PLNApplication, now time.Time) []ApplicationResponse {
	out := make([]ApplicationResponse, 0, len(list))
	for _, a := range list {
		out = append(out, FromApplication(a, now))
	}
	return out
}

type ApplicationPageResponse struct {
	Applications []ApplicationResponse `json:"applications"`
	Pagination   Pagination            `json:"pagination"`
}

func FromApplicationPage(p usecase.ApplicationPage, now time.Time) ApplicationPageResponse {
	return ApplicationPageResponse{
		Applications: FromApplications(p.Applications, now),
		Pagination:   Pagination{Total: p.Total, Page: p.Page, Limit: p.Limit, TotalPages: p.TotalPages},
	}
}

type MonthlyCountResponse struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

type DashboardResponse struct {
	Total              int                   `json:"total"`
	ByStatus           map[string]int        `json:"by_status"`
	PaymentOverdue     int                   `json:"payment_overdue"`
	RecentApplications []ApplicationResponse `json:"recent_applications"`
	Monthly            []MonthlyCountResponse `json:"monthly"`
}

func FromDashboardStats(s usecase.DashboardStats, now time.Time) DashboardResponse {
	byStatus := make(map[string]int, len(s.ByStatus))
	for k, v := range s.ByStatus {
		byStatus[string(k)] = v
	}
	monthly := make([]MonthlyCountResponse, 0, len(s.Monthly))
	for _, m := range s.Monthly {
		monthly = append(monthly, MonthlyCountResponse(m))
	}
	return DashboardResponse{
		Total:              s.Total,
		ByStatus:           byStatus,
		PaymentOverdue:     s.PaymentOverdue,
		RecentApplications: FromApplications(s.RecentApplications, now),
		Monthly:            monthly,
	}
}
