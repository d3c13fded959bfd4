package entities

import (
	"fmt"
	"strings"
	"time"
)

// ReportStatus is the repair workflow state of a road damage report.
type ReportStatus string

const (
	ReportStatusPending    ReportStatus = "pending"
	ReportStatusAssigned   ReportStatus = "assigned"
	ReportStatusInProgress ReportStatus = "in-progress"
	ReportStatusFixed      ReportStatus = "fixed"
	ReportStatusDuplicate  ReportStatus = "duplicate"
	ReportStatusInvalid    ReportStatus = "invalid"
)

// Severity is the reporter's or inspector's estimate of the damage.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

const (
	UnknownRoad     = "Unknown Road"
	UnknownLocation = "Unknown"
)

// ParseReportStatus normalises case and underscores; ok is false for unknown values.
func ParseReportStatus(v string) (ReportStatus, bool) {
	s := ReportStatus(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(v)), "_", "-"))
	switch s {
	case ReportStatusPending, ReportStatusAssigned, ReportStatusInProgress,
		ReportStatusFixed, ReportStatusDuplicate, ReportStatusInvalid:
		return s, true
	}
	return "", false
}

// ParseSeverity returns ok=false for anything outside low/medium/high.
func ParseSeverity(v string) (Severity, bool) {
	s := Severity(strings.ToLower(strings.TrimSpace(v)))
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh:
		return s, true
	}
	return "", false
}

// IsClosed reports whether the report needs no further work.
func (s ReportStatus) IsClosed() bool {
	return s == ReportStatusFixed || s == ReportStatusDuplicate || s == ReportStatusInvalid
}

// CanMoveReport reports whether a report may go from -> to. Open reports move
// forward through pending, assigned, in-progress and fixed, or close as
// duplicate/invalid. Closed reports do not move.
func CanMoveReport(from, to ReportStatus) bool {
	if from.IsClosed() || from == to {
		return false
	}
	order := map[ReportStatus]int{
		ReportStatusPending:    0,
		ReportStatusAssigned:   1,
		ReportStatusInProgress: 2,
		ReportStatusFixed:      3,
	}
	if to == ReportStatusDuplicate || to == ReportStatusInvalid {
		return true
	}
	fi, okFrom := order[from]
	ti, okTo := order[to]
	return okFrom && okTo && ti > fi
}

// DamageReport is a citizen report of a pothole or other road damage.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (device_id-index): device_id
//   - GSI2 (user_email-index): user_email
type DamageReport struct {
	ID             string       `json:"id"`
	ReferenceCode  string       `json:"reference_code"`
	DeviceID       string       `json:"device_id"`
	UserEmail      string       `json:"user_email,omitempty"`
	Location       Coordinates  `json:"location"`
	RoadName       string       `json:"road_name"`
	Town           string       `json:"town"`
	Region         string       `json:"region"`
	Description    string       `json:"description,omitempty"`
	Severity       Severity     `json:"severity,omitempty"`
	PhotoURL       string       `json:"photo_url,omitempty"`
	RepairPhotoURL string       `json:"repair_photo_url,omitempty"`
	Status         ReportStatus `json:"status"`
	AssignedTo     string       `json:"assigned_to,omitempty"`
	AdminNotes     string       `json:"admin_notes,omitempty"`
	FixedAt        *time.Time   `json:"fixed_at,omitempty"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

// ReportReferenceCode formats a report reference as RA-PT-YYYYMMDD-NNNNNN.
func ReportReferenceCode(at time.Time, n int) string {
	return fmt.Sprintf("RA-PT-%s-%06d", at.UTC().Format("20060102"), n)
}
