package entities

import (
	"regexp"
	"strings"
)

// ApplicationStatus is the canonical lifecycle state of a PLN application.
//
// Lifecycle:
//   - SUBMITTED -> UNDER_REVIEW -> APPROVED -> PAYMENT_PENDING -> PAID -> PLATES_ORDERED -> READY_FOR_COLLECTION
//   - DECLINED and EXPIRED can be reached from any non-terminal state.
type ApplicationStatus string

const (
	ApplicationStatusSubmitted          ApplicationStatus = "SUBMITTED"
	ApplicationStatusUnderReview        ApplicationStatus = "UNDER_REVIEW"
	ApplicationStatusApproved           ApplicationStatus = "APPROVED"
	ApplicationStatusPaymentPending     ApplicationStatus = "PAYMENT_PENDING"
	ApplicationStatusPaid               ApplicationStatus = "PAID"
	ApplicationStatusPlatesOrdered      ApplicationStatus = "PLATES_ORDERED"
	ApplicationStatusReadyForCollection ApplicationStatus = "READY_FOR_COLLECTION"
	ApplicationStatusDeclined           ApplicationStatus = "DECLINED"
	ApplicationStatusExpired            ApplicationStatus = "EXPIRED"
)

// StatusTone is the colour class a client uses to render a status badge.
type StatusTone string

const (
	StatusTonePrimary StatusTone = "primary"
	StatusToneSuccess StatusTone = "success"
	StatusToneWarning StatusTone = "warning"
	StatusToneError   StatusTone = "error"
	StatusToneNeutral StatusTone = "neutral"
)

const (
	DefaultStatusLabel     = "In Progress"
	DefaultNextStepMessage = "Your application is being processed. Please check back for updates."
)

// CanonicalStatuses lists the lifecycle in progression order followed by the terminal exits.
var CanonicalStatuses = []ApplicationStatus{
	ApplicationStatusSubmitted,
	ApplicationStatusUnderReview,
	ApplicationStatusApproved,
	ApplicationStatusPaymentPending,
	ApplicationStatusPaid,
	ApplicationStatusPlatesOrdered,
	ApplicationStatusReadyForCollection,
	ApplicationStatusDeclined,
	ApplicationStatusExpired,
}

// statusSeparators matches every rune unicode.IsSpace accepts, plus hyphens.
var statusSeparators = regexp.MustCompile(`[\s\v\p{Z}\x{85}-]+`)

var statusAliases = map[string]ApplicationStatus{
	"SUBMITTED":            ApplicationStatusSubmitted,
	"PENDING":              ApplicationStatusSubmitted,
	"PENDING_REVIEW":       ApplicationStatusUnderReview,
	"UNDER_REVIEW":         ApplicationStatusUnderReview,
	"APPROVED":             ApplicationStatusApproved,
	"REJECTED":             ApplicationStatusDeclined,
	"DECLINED":             ApplicationStatusDeclined,
	"PAYMENT_REQUIRED":     ApplicationStatusPaymentPending,
	"PAYMENT_PENDING":      ApplicationStatusPaymentPending,
	"PAYMENT_RECEIVED":     ApplicationStatusPaid,
	"PAID":                 ApplicationStatusPaid,
	"PLATES_ORDERED":       ApplicationStatusPlatesOrdered,
	"READY_FOR_COLLECTION": ApplicationStatusReadyForCollection,
	"COMPLETED":            ApplicationStatusReadyForCollection,
	"EXPIRED":              ApplicationStatusExpired,
}

// StatusAliases returns a copy of the raw-status lookup table used by NormalizeStatus.
func StatusAliases() map[string]ApplicationStatus {
	out := make(map[string]ApplicationStatus, len(statusAliases))
	for k, v := range statusAliases {
		out[k] = v
	}
	return out
}

// NormalizeStatus maps a backend status string onto the canonical vocabulary.
//
// Empty input yields SUBMITTED. Input with no alias is returned in its
// underscored, upper-cased form; use IsKnown to detect it.
func NormalizeStatus(raw string) ApplicationStatus {
	s := strings.ToUpper(strings.TrimSpace(raw))
	if s == "" {
		return ApplicationStatusSubmitted
	}
	s = statusSeparators.ReplaceAllString(s, "_")
	if canonical, ok := statusAliases[s]; ok {
		return canonical
	}
	return ApplicationStatus(s)
}

// IsKnown reports whether s is a member of the canonical vocabulary.
func (s ApplicationStatus) IsKnown() bool {
	for _, c := range CanonicalStatuses {
		if s == c {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transition is allowed out of s.
func (s ApplicationStatus) IsTerminal() bool {
	switch s {
	case ApplicationStatusReadyForCollection, ApplicationStatusDeclined, ApplicationStatusExpired:
		return true
	}
	return false
}

// rank is the position of s on the linear progression, or -1 for terminal exits and unknown values.
func (s ApplicationStatus) rank() int {
	for i, c := range CanonicalStatuses[:7] {
		if s == c {
			return i
		}
	}
	return -1
}

// CanTransition reports whether an application may move from -> to.
//
// Forward moves along the progression may skip steps (an administrator can approve
// straight from SUBMITTED). DECLINED and EXPIRED are reachable from any
// non-terminal state. Nothing leaves a terminal state and nothing moves backwards.
func CanTransition(from, to ApplicationStatus) bool {
	from = NormalizeStatus(string(from))
	to = NormalizeStatus(string(to))
	if !to.IsKnown() || from.IsTerminal() || from == to {
		return false
	}
	if to == ApplicationStatusDeclined || to == ApplicationStatusExpired {
		return true
	}
	fr, tr := from.rank(), to.rank()
	if fr < 0 {
		// Unknown stored statuses may only be resolved by a terminal exit or a
		// fresh review.
		return to == ApplicationStatusUnderReview
	}
	return tr > fr
}

// Label is the human-readable badge text for a status.
func Label(status string) string {
	switch NormalizeStatus(status) {
	case ApplicationStatusSubmitted:
		return "Submitted"
	case ApplicationStatusUnderReview:
		return "Under Review"
	case ApplicationStatusApproved:
		return "Approved"
	case ApplicationStatusPaymentPending:
		return "Payment Pending"
	case ApplicationStatusPaid:
		return "Payment Received"
	case ApplicationStatusPlatesOrdered:
		return "Plates Ordered"
	case ApplicationStatusReadyForCollection:
		return "Ready for Collection"
	case ApplicationStatusDeclined:
		return "Declined"
	case ApplicationStatusExpired:
		return "Expired"
	}
	return DefaultStatusLabel
}

// NextStepsMessage tells the applicant what happens next.
func NextStepsMessage(status string) string {
	switch NormalizeStatus(status) {
	case ApplicationStatusSubmitted:
		return "Your application was received. We will review your documents shortly."
	case ApplicationStatusUnderReview:
		return "Your documents are being verified by our team."
	case ApplicationStatusApproved:
		return "Application approved. Please proceed with payment to continue."
	case ApplicationStatusPaymentPending:
		return "Payment is required to continue processing your plates."
	case ApplicationStatusPaid:
		return "Payment received. Plates are being ordered."
	case ApplicationStatusPlatesOrdered:
		return "Plates ordered. We will notify you once they are ready for collection."
	case ApplicationStatusReadyForCollection:
		return "Your plates are ready for collection. Bring your ID to the nearest office."
	case ApplicationStatusDeclined:
		return "Your application was declined. Contact support for details."
	case ApplicationStatusExpired:
		return "Your application expired. Please submit a new application."
	}
	return DefaultNextStepMessage
}

// Tone returns the badge colour class for a status.
func Tone(status string) StatusTone {
	switch NormalizeStatus(status) {
	case ApplicationStatusSubmitted, ApplicationStatusUnderReview:
		return StatusTonePrimary
	case ApplicationStatusApproved, ApplicationStatusPaid, ApplicationStatusPlatesOrdered, ApplicationStatusReadyForCollection:
		return StatusToneSuccess
	case ApplicationStatusDeclined, ApplicationStatusExpired:
		return StatusToneError
	case ApplicationStatusPaymentPending:
		return StatusToneWarning
	}
	return StatusToneNeutral
}

// Legacy tracking vocabulary, still consumed by older app builds.
const (
	TrackingKeySubmitted       = "submitted"
	TrackingKeyUnderReview     = "under-review"
	TrackingKeyPaymentRequired = "payment-required"
	TrackingKeyPaymentReceived = "payment-received"
	TrackingKeyApproved        = "approved"
	TrackingKeyRejected        = "rejected"
	TrackingKeyCompleted       = "completed"
)

var trackingLabels = map[string]string{
	TrackingKeySubmitted:       "Application Submitted",
	TrackingKeyUnderReview:     "Under Review",
	TrackingKeyPaymentRequired: "Payment Required",
	TrackingKeyPaymentReceived: "Payment Received",
	TrackingKeyApproved:        "Approved",
	TrackingKeyRejected:        "Rejected",
	TrackingKeyCompleted:       "Completed",
}

var trackingTones = map[string]StatusTone{
	TrackingKeySubmitted:       StatusToneWarning,
	TrackingKeyUnderReview:     StatusTonePrimary,
	TrackingKeyPaymentRequired: StatusToneWarning,
	TrackingKeyPaymentReceived: StatusTonePrimary,
	TrackingKeyApproved:        StatusToneSuccess,
	TrackingKeyRejected:        StatusToneError,
	TrackingKeyCompleted:       StatusToneSuccess,
}

// TrackingKey projects a canonical status onto the legacy tracking vocabulary.
// Statuses with no legacy equivalent are returned lower-cased and hyphenated.
func TrackingKey(status string) string {
	switch s := NormalizeStatus(status); s {
	case ApplicationStatusSubmitted:
		return TrackingKeySubmitted
	case ApplicationStatusUnderReview:
		return TrackingKeyUnderReview
	case ApplicationStatusApproved:
		return TrackingKeyApproved
	case ApplicationStatusPaymentPending:
		return TrackingKeyPaymentRequired
	case ApplicationStatusPaid, ApplicationStatusPlatesOrdered:
		return TrackingKeyPaymentReceived
	case ApplicationStatusReadyForCollection:
		return TrackingKeyCompleted
	case ApplicationStatusDeclined:
		return TrackingKeyRejected
	default:
		return strings.ReplaceAll(strings.ToLower(string(s)), "_", "-")
	}
}

// TrackingLabel returns the legacy label for a tracking key, or the key itself.
func TrackingLabel(key string) string {
	if l, ok := trackingLabels[key]; ok {
		return l
	}
	return key
}

// TrackingTone returns the legacy badge colour class for a tracking key.
func TrackingTone(key string) StatusTone {
	if t, ok := trackingTones[key]; ok {
		return t
	}
	return StatusToneNeutral
}
