package request

import (
	"strings"
	"time"

	"roads_authority/internal/domain/entities"
	"roads_authority/internal/usecase"
)

type AddressRequest struct {
	Line1 string `json:"line1" binding:"required"`
	Line2 string `json:"line2"`
	Line3 string `json:"line3"`
}

type PlateChoiceRequest struct {
	Text    string `json:"text" binding:"required,plate_text"`
	Meaning string `json:"meaning" binding:"required"`
}

// SubmitApplicationRequest is the PLN application form as filled in on the
// mobile app. Cross-field rules (id type vs business name, contact method)
// are checked by the use case.
type SubmitApplicationRequest struct {
	TransactionType     string               `json:"transaction_type"`
	IDType              string               `json:"id_type" binding:"required"`
	IDNumber            string               `json:"id_number"`
	Surname             string               `json:"surname" binding:"required"`
	Initials            string               `json:"initials" binding:"required"`
	BusinessName        string               `json:"business_name"`
	PostalAddress       AddressRequest       `json:"postal_address" binding:"required"`
	StreetAddress       AddressRequest       `json:"street_address" binding:"required"`
	Email               string               `json:"email" binding:"omitempty,email"`
	CellNumber          string               `json:"cell_number"`
	PlateFormat         string               `json:"plate_format" binding:"required"`
	Quantity            int                  `json:"quantity" binding:"required,oneof=1 2"`
	PlateChoices        []PlateChoiceRequest `json:"plate_choices" binding:"required,len=3,dive"`
	VehicleRegNo        string               `json:"vehicle_register_number"`
	DocumentURL         string               `json:"document_url" binding:"omitempty,url"`
	DeclarationAccepted bool                 `json:"declaration_accepted"`
	DeclarationPlace    string               `json:"declaration_place" binding:"required"`
}

func (r SubmitApplicationRequest) ToCommand() usecase.SubmitApplicationCommand {
	choices := make([]entities.PlateChoice, 0, len(r.PlateChoices))
	for _, c := range r.PlateChoices {
		choices = append(choices, entities.PlateChoice{Text: c.Text, Meaning: c.Meaning})
	}
	return usecase.SubmitApplicationCommand{
		TransactionType:     r.TransactionType,
		IDType:              r.IDType,
		IDNumber:            r.IDNumber,
		Surname:             r.Surname,
		Initials:            r.Initials,
		BusinessName:        r.BusinessName,
		PostalAddress:       entities.Address(r.PostalAddress),
		StreetAddress:       entities.Address(r.StreetAddress),
		Email:               r.Email,
		CellNumber:          r.CellNumber,
		PlateFormat:         r.PlateFormat,
		Quantity:            r.Quantity,
		PlateChoices:        choices,
		VehicleRegNo:        r.VehicleRegNo,
		DocumentURL:         r.DocumentURL,
		DeclarationAccepted: r.DeclarationAccepted,
		DeclarationPlace:    r.DeclarationPlace,
	}
}

// TrackApplicationRequest identifies an application on the public tracking
// screen. Secret is the PIN issued on submission or the applicant's ID number.
type TrackApplicationRequest struct {
	ReferenceID string `json:"reference_id" binding:"required"`
	Secret      string `json:"secret" binding:"required"`
}

type UpdateApplicationStatusRequest struct {
	Status  string `json:"status" binding:"required"`
	Comment string `json:"comment"`
}

type MarkPaymentReceivedRequest struct {
	PaymentReference string `json:"payment_reference"`
}

// ListApplicationsRequest is bound from the admin list query string. Dates
// use YYYY-MM-DD; To covers the whole day.
type ListApplicationsRequest struct {
	Status string `form:"status"`
	Search string `form:"search"`
	From   string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To     string `form:"to" binding:"omitempty,datetime=2006-01-02"`
	Page   int    `form:"page" binding:"omitempty,min=1"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=100"`
}

func (r ListApplicationsRequest) ToQuery() usecase.ListApplicationsQuery {
	from, to := parseDayRange(r.From, r.To)
	return usecase.ListApplicationsQuery{
		Status: r.Status,
		Search: r.Search,
		From:   from,
		To:     to,
		Page:   r.Page,
		Limit:  r.Limit,
	}
}

// parseDayRange turns YYYY-MM-DD bounds into an inclusive UTC range. Values
// that do not parse are dropped; binding has already rejected them.
func parseDayRange(from, to string) (*time.Time, *time.Time) {
	var f, t *time.Time
	if d, err := time.Parse(time.DateOnly, strings.TrimSpace(from)); err == nil {
		f = &d
	}
	if d, err := time.Parse(time.DateOnly, strings.TrimSpace(to)); err == nil {
		end := d.Add(24*time.Hour - time.Nanosecond)
		t = &end
	}
	return f, t
}
