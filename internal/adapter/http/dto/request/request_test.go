package request

import (
	"testing"
	"time"

	"roads_authority/internal/domain/entities"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBindingValidator(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	v.SetTagName("binding")
	require.NoError(t, registerOn(v))
	return v
}

func validSubmission() SubmitApplicationRequest {
	return SubmitApplicationRequest{
		IDType:        entities.IDTypeNamibiaID,
		IDNumber:      "85010112345",
		Surname:       "Shikongo",
		Initials:      "T",
		PostalAddress: AddressRequest{Line1: "PO Box 1234", Line2: "Windhoek"},
		StreetAddress: AddressRequest{Line1: "12 Independence Ave"},
		Email:         "t.shikongo@example.com",
		PlateFormat:   "Standard",
		Quantity:      2,
		PlateChoices: []PlateChoiceRequest{
			{Text: "NAMIB1", Meaning: "Home"},
			{Text: "DUNE7", Meaning: "Sossusvlei"},
			{Text: "ETOSHA", Meaning: "Park"},
		},
		DeclarationAccepted: true,
		DeclarationPlace:    "Windhoek",
	}
}

func TestSubmitApplicationRequest_Validation(t *testing.T) {
	v := newBindingValidator(t)

	tests := []struct {
		name    string
		mutate  func(*SubmitApplicationRequest)
		wantErr bool
	}{
		{name: "valid", mutate: func(*SubmitApplicationRequest) {}},
		{name: "plate text too long", mutate: func(r *SubmitApplicationRequest) { r.PlateChoices[0].Text = "TOOLONG99" }, wantErr: true},
		{name: "plate text with symbols", mutate: func(r *SubmitApplicationRequest) { r.PlateChoices[1].Text = "NA-01" }, wantErr: true},
		{name: "two plate choices", mutate: func(r *SubmitApplicationRequest) { r.PlateChoices = r.PlateChoices[:2] }, wantErr: true},
		{name: "quantity three", mutate: func(r *SubmitApplicationRequest) { r.Quantity = 3 }, wantErr: true},
		{name: "bad email", mutate: func(r *SubmitApplicationRequest) { r.Email = "not-an-email" }, wantErr: true},
		{name: "missing surname", mutate: func(r *SubmitApplicationRequest) { r.Surname = "" }, wantErr: true},
		{name: "missing street line1", mutate: func(r *SubmitApplicationRequest) { r.StreetAddress.Line1 = "" }, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validSubmission()
			tt.mutate(&req)
			err := v.Struct(req)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSubmitApplicationRequest_ToCommand(t *testing.T) {
	cmd := validSubmission().ToCommand()

	assert.Equal(t, entities.IDTypeNamibiaID, cmd.IDType)
	assert.Equal(t, entities.Address{Line1: "PO Box 1234", Line2: "Windhoek"}, cmd.PostalAddress)
	assert.Equal(t, 2, cmd.Quantity)
	require.Len(t, cmd.PlateChoices, 3)
	assert.Equal(t, entities.PlateChoice{Text: "DUNE7", Meaning: "Sossusvlei"}, cmd.PlateChoices[1])
	assert.True(t, cmd.DeclarationAccepted)
}

func TestListApplicationsRequest_ToQuery(t *testing.T) {
	q := ListApplicationsRequest{Status: "payment pending", From: "2026-03-01", To: "2026-03-31", Page: 2, Limit: 20}.ToQuery()

	require.NotNil(t, q.From)
	require.NotNil(t, q.To)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), *q.From)
	assert.Equal(t, time.Date(2026, 3, 31, 23, 59, 59, 999999999, time.UTC), *q.To)
	assert.Equal(t, "payment pending", q.Status)
	assert.Equal(t, 2, q.Page)

	empty := ListApplicationsRequest{}.ToQuery()
	assert.Nil(t, empty.From)
	assert.Nil(t, empty.To)
}

func TestNearbyOfficesRequest_ToQuery(t *testing.T) {
	lat, lon := -22.56, 17.08
	q := NearbyOfficesRequest{Lat: &lat, Lon: &lon, Sort: " distance ", Region: "Khomas"}.ToQuery()
	require.NotNil(t, q.Origin)
	assert.Equal(t, entities.Coordinates{Latitude: lat, Longitude: lon}, *q.Origin)
	assert.Equal(t, "distance", q.SortBy)

	onlyLat := NearbyOfficesRequest{Lat: &lat}.ToQuery()
	assert.Nil(t, onlyLat.Origin)
}

func TestOfficeRequest_ToEntity(t *testing.T) {
	o := OfficeRequest{
		Name:         "Windhoek NaTIS",
		Address:      "Rev. Michael Scott St",
		Region:       "Khomas",
		Coordinates:  &CoordinatesRequest{Latitude: -22.57, Longitude: 17.08},
		SpecialHours: []SpecialHoursRequest{{Date: "2026-12-25", Reason: "Christmas", Closed: true}},
	}.ToEntity()

	require.NotNil(t, o.Coordinates)
	assert.Equal(t, -22.57, o.Coordinates.Latitude)
	require.Len(t, o.SpecialHours, 1)
	assert.True(t, o.SpecialHours[0].Closed)

	assert.Nil(t, OfficeRequest{Name: "x"}.ToEntity().Coordinates)
}

func TestDocumentRequest(t *testing.T) {
	v := newBindingValidator(t)

	ok := DocumentRequest{Title: "RA/2026/01 Resealing", Attachments: []AttachmentRequest{{Name: "bid.pdf", Key: "tenders/bid.pdf"}}}
	assert.NoError(t, v.Struct(ok))

	noSource := DocumentRequest{Title: "x", Attachments: []AttachmentRequest{{Name: "bid.pdf"}}}
	assert.Error(t, v.Struct(noSource))

	d := ok.ToEntity(entities.DocumentKindTender)
	assert.Equal(t, entities.DocumentKindTender, d.Kind)
	assert.Equal(t, "tenders/bid.pdf", d.Attachments[0].Key)

	public := ListDocumentsRequest{Sort: "title"}.ToQuery("tender", true)
	require.NotNil(t, public.Published)
	assert.True(t, *public.Published)
	assert.Nil(t, ListDocumentsRequest{}.ToQuery("tender", false).Published)
}

func TestCreateReportRequest(t *testing.T) {
	v := newBindingValidator(t)

	r := CreateReportRequest{DeviceID: "dev-1", Location: CoordinatesRequest{Latitude: -22.5, Longitude: 17.1}, Severity: "high", PhotoURL: "https://cdn.example.com/p.jpg"}
	assert.NoError(t, v.Struct(r))

	noPhoto := r
	noPhoto.PhotoURL = ""
	assert.Error(t, v.Struct(noPhoto))

	r.Severity = "catastrophic"
	assert.Error(t, v.Struct(r))

	cmd := CreateReportRequest{DeviceID: "dev-1", Location: CoordinatesRequest{Latitude: -22.5, Longitude: 17.1}}.ToCommand()
	assert.Equal(t, entities.Coordinates{Latitude: -22.5, Longitude: 17.1}, cmd.Location)
}

func TestRegisterPushTokenRequest(t *testing.T) {
	v := newBindingValidator(t)
	assert.NoError(t, v.Struct(RegisterPushTokenRequest{Token: "fcm", Platform: "android"}))
	assert.Error(t, v.Struct(RegisterPushTokenRequest{Token: "fcm", Platform: "symbian"}))
}
