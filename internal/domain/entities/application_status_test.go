package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeStatus(t *testing.T) {
	cases := []struct {
		in   string
		want ApplicationStatus
	}{
		{"", ApplicationStatusSubmitted},
		{"   ", ApplicationStatusSubmitted},
		{"pending", ApplicationStatusSubmitted},
		{"Pending Review", ApplicationStatusUnderReview},
		{"under-review", ApplicationStatusUnderReview},
		{"  under -  review ", ApplicationStatusUnderReview},
		{"under\u00a0review", ApplicationStatusUnderReview},
		{"payment\u2003received", ApplicationStatusPaid},
		{"ready\u0085for\vcollection", ApplicationStatusReadyForCollection},
		{"plates\u3000ordered", ApplicationStatusPlatesOrdered},
		{"rejected", ApplicationStatusDeclined},
		{"payment-required", ApplicationStatusPaymentPending},
		{"Payment Received", ApplicationStatusPaid},
		{"completed", ApplicationStatusReadyForCollection},
		{"READY_FOR_COLLECTION", ApplicationStatusReadyForCollection},
		{"expired", ApplicationStatusExpired},
		{"on hold", ApplicationStatus("ON_HOLD")},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, NormalizeStatus(tc.in))
		})
	}
}

func TestNormalizeStatus_TotalOverAliasTable(t *testing.T) {
	for raw, canonical := range StatusAliases() {
		got := NormalizeStatus(raw)
		assert.Equal(t, canonical, got, "alias %s", raw)
		assert.True(t, got.IsKnown(), "alias %s maps outside the canonical set", raw)
	}
}

func TestNormalizeStatus_Idempotent(t *testing.T) {
	inputs := []string{"", "pending", "Payment-Required", "completed", "weird status", "a--b  c", "PAID"}
	for raw := range StatusAliases() {
		inputs = append(inputs, raw)
	}
	for _, in := range inputs {
		once := NormalizeStatus(in)
		assert.Equal(t, once, NormalizeStatus(string(once)), "input %q", in)
	}
}

func TestUnknownStatusUsesDefaults(t *testing.T) {
	s := NormalizeStatus("on hold")
	require.False(t, s.IsKnown())
	assert.Equal(t, DefaultStatusLabel, Label(string(s)))
	assert.Equal(t, DefaultNextStepMessage, NextStepsMessage(string(s)))
	assert.Equal(t, StatusToneNeutral, Tone(string(s)))
}

func TestMappersCoverCanonicalStatuses(t *testing.T) {
	for _, s := range CanonicalStatuses {
		assert.NotEqual(t, DefaultStatusLabel, Label(string(s)), s)
		assert.NotEqual(t, DefaultNextStepMessage, NextStepsMessage(string(s)), s)
		assert.NotEqual(t, StatusToneNeutral, Tone(string(s)), s)
	}
	assert.Equal(t, "Payment Received", Label("payment-received"))
	assert.Equal(t, StatusToneWarning, Tone("PAYMENT_PENDING"))
	assert.Equal(t, StatusToneError, Tone("rejected"))
}

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to ApplicationStatus
		want     bool
	}{
		{ApplicationStatusSubmitted, ApplicationStatusUnderReview, true},
		{ApplicationStatusSubmitted, ApplicationStatusApproved, true},
		{ApplicationStatusPaymentPending, ApplicationStatusPaid, true},
		{ApplicationStatusPaid, ApplicationStatusUnderReview, false},
		{ApplicationStatusPaid, ApplicationStatusPaid, false},
		{ApplicationStatusPlatesOrdered, ApplicationStatusDeclined, true},
		{ApplicationStatusUnderReview, ApplicationStatusExpired, true},
		{ApplicationStatusDeclined, ApplicationStatusUnderReview, false},
		{ApplicationStatusExpired, ApplicationStatusDeclined, false},
		{ApplicationStatusReadyForCollection, ApplicationStatusExpired, false},
		{ApplicationStatus("ON_HOLD"), ApplicationStatusUnderReview, true},
		{ApplicationStatus("ON_HOLD"), ApplicationStatusPaid, false},
		{ApplicationStatusSubmitted, ApplicationStatus("ON_HOLD"), false},
	}
	for _, tc := range cases {
		t.Run(string(tc.from)+"->"+string(tc.to), func(t *testing.T) {
			assert.Equal(t, tc.want, CanTransition(tc.from, tc.to))
		})
	}
}

func TestTrackingVocabulary(t *testing.T) {
	assert.Equal(t, TrackingKeyPaymentRequired, TrackingKey("PAYMENT_PENDING"))
	assert.Equal(t, TrackingKeyPaymentReceived, TrackingKey("PLATES_ORDERED"))
	assert.Equal(t, TrackingKeyCompleted, TrackingKey("completed"))
	assert.Equal(t, TrackingKeyRejected, TrackingKey("DECLINED"))
	assert.Equal(t, "expired", TrackingKey("EXPIRED"))
	assert.Equal(t, "on-hold", TrackingKey("on hold"))

	assert.Equal(t, "Application Submitted", TrackingLabel(TrackingKeySubmitted))
	assert.Equal(t, "expired", TrackingLabel("expired"))
	assert.Equal(t, StatusToneNeutral, TrackingTone("expired"))
	assert.Equal(t, StatusToneSuccess, TrackingTone(TrackingKeyCompleted))
}
