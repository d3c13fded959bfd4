package entities

import (
	"fmt"
	"regexp"
	"time"
)

// Identification types accepted on a PLN application.
const (
	IDTypeTrafficRegister = "Traffic Register Number"
	IDTypeNamibiaID       = "Namibia ID-doc"
	IDTypeBusinessReg     = "Business Reg. No"
)

const (
	PlateChoicesRequired = 3
	PlateTextMaxLength   = 8
)

var plateTextPattern = regexp.MustCompile(`^[A-Za-z0-9]+$`)

// ValidPlateText reports whether text can be printed on a personalised plate.
func ValidPlateText(text string) bool {
	return len(text) <= PlateTextMaxLength && plateTextPattern.MatchString(text)
}

// PlateChoice is one personalised text the applicant would like on the plates.
type PlateChoice struct {
	Text    string `json:"text"`
	Meaning string `json:"meaning"`
}

// Address is a three-line postal or street address.
type Address struct {
	Line1 string `json:"line1"`
	Line2 string `json:"line2,omitempty"`
	Line3 string `json:"line3,omitempty"`
}

// StatusHistoryEntry records a single status change. History is append-only
// and ordered oldest first.
type StatusHistoryEntry struct {
	Status    ApplicationStatus `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Comment   string            `json:"comment,omitempty"`
	ChangedBy string            `json:"changed_by,omitempty"`
}

// PLNApplication is a citizen's personalised number plate request.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (reference_key-index): reference_key (upper-cased reference id)
//   - GSI2 (email-index): email
//   - GSI3 (status-index): status
//
// TrackingPINHash holds a bcrypt hash; the clear PIN is only returned on submission.
type PLNApplication struct {
	ID              string `json:"id"`
	ReferenceID     string `json:"reference_id"`
	TrackingPINHash string `json:"-"`
	TransactionType string `json:"transaction_type"`

	IDType           string        `json:"id_type"`
	IDNumber         string        `json:"id_number,omitempty"`
	Surname          string        `json:"surname"`
	Initials         string        `json:"initials"`
	BusinessName     string        `json:"business_name,omitempty"`
	PostalAddress    Address       `json:"postal_address"`
	StreetAddress    Address       `json:"street_address"`
	Email            string        `json:"email,omitempty"`
	CellNumber       string        `json:"cell_number,omitempty"`
	PlateFormat      string        `json:"plate_format"`
	Quantity         int           `json:"quantity"`
	PlateChoices     []PlateChoice `json:"plate_choices"`
	VehicleRegNo     string        `json:"vehicle_register_number,omitempty"`
	DocumentURL      string        `json:"document_url,omitempty"`
	DeclarationAt    time.Time     `json:"declaration_date"`
	DeclarationPlace string        `json:"declaration_place"`

	Status        ApplicationStatus    `json:"status"`
	StatusHistory []StatusHistoryEntry `json:"status_history"`
	AdminComments string               `json:"admin_comments,omitempty"`
	AssignedTo    string               `json:"assigned_to,omitempty"`

	PaymentDeadline   *time.Time `json:"payment_deadline,omitempty"`
	PaymentReceivedAt *time.Time `json:"payment_received_at,omitempty"`
	PaymentReference  string     `json:"payment_reference,omitempty"`
	PlatesOrderedAt   *time.Time `json:"plates_ordered_at,omitempty"`
	ReadyAt           *time.Time `json:"ready_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ApplyStatus moves the application to status and appends the matching history
// entry. It does not validate the transition.
func (a *PLNApplication) ApplyStatus(status ApplicationStatus, actor, comment string, at time.Time) {
	a.Status = status
	a.UpdatedAt = at
	a.StatusHistory = append(a.StatusHistory, StatusHistoryEntry{
		Status:    status,
		Timestamp: at,
		Comment:   comment,
		ChangedBy: actor,
	})
}

// PaymentOverdue reports whether a pending payment has passed its deadline.
func (a PLNApplication) PaymentOverdue(now time.Time) bool {
	return NormalizeStatus(string(a.Status)) == ApplicationStatusPaymentPending &&
		a.PaymentDeadline != nil && now.After(*a.PaymentDeadline)
}

// BuildStatusHistory returns the history a client should display.
//
// A stored history is returned with every status normalised and missing
// timestamps filled from createdAt. An empty history is synthesised from the
// creation time and the current status.
func BuildStatusHistory(history []StatusHistoryEntry, createdAt time.Time, current ApplicationStatus) []StatusHistoryEntry {
	current = NormalizeStatus(string(current))
	if len(history) > 0 {
		out := make([]StatusHistoryEntry, 0, len(history))
		for _, e := range history {
			status := e.Status
			if status == "" {
				status = current
			}
			e.Status = NormalizeStatus(string(status))
			if e.Timestamp.IsZero() {
				e.Timestamp = createdAt
			}
			out = append(out, e)
		}
		return out
	}

	out := []StatusHistoryEntry{{Status: ApplicationStatusSubmitted, Timestamp: createdAt, Comment: "Application submitted"}}
	if current != ApplicationStatusSubmitted {
		out = append(out, StatusHistoryEntry{Status: current, Timestamp: createdAt, Comment: "Current status"})
	}
	return out
}

// HistoryIssue describes a history entry that breaks ordering or consistency.
type HistoryIssue struct {
	Index   int    `json:"index"`
	Problem string `json:"problem"`
}

// CheckHistory verifies that timestamps never decrease and that the last entry
// matches the current status. Violations are reported, not corrected.
func CheckHistory(history []StatusHistoryEntry, current ApplicationStatus) []HistoryIssue {
	var issues []HistoryIssue
	for i := 1; i < len(history); i++ {
		if history[i].Timestamp.Before(history[i-1].Timestamp) {
			issues = append(issues, HistoryIssue{
				Index:   i,
				Problem: fmt.Sprintf("timestamp %s precedes previous entry", history[i].Timestamp.UTC().Format(time.RFC3339)),
			})
		}
	}
	if n := len(history); n > 0 {
		last := NormalizeStatus(string(history[n-1].Status))
		if last != NormalizeStatus(string(current)) {
			issues = append(issues, HistoryIssue{
				Index:   n - 1,
				Problem: fmt.Sprintf("last entry status %s differs from current status %s", last, NormalizeStatus(string(current))),
			})
		}
	}
	return issues
}
