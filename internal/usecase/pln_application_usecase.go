package usecase

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log"
	"math/big"
	"roads_authority/internal/domain/entities"
	"roads_authority/internal/usecase/interfaces"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/errgroup"
)

var (
	ErrApplicationNotFound     = errors.New("application not found")
	ErrInvalidApplicationID    = errors.New("invalid application id")
	ErrInvalidReferenceID      = errors.New("invalid reference id")
	ErrInvalidTrackingSecret   = errors.New("invalid tracking pin or id number")
	ErrInvalidApplication      = errors.New("invalid application")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
	ErrUnknownStatus           = errors.New("unknown application status")
	ErrReferenceExhausted      = errors.New("could not allocate a unique reference id")
	ErrApplicationConflict     = errors.New("application was modified concurrently")
)

const (
	referenceAlphabet    = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	referenceSuffixLen   = 12
	referenceMaxAttempts = 10
	trackingPINDigits    = 5

	// EstimatedProcessingTime is shown to applicants on the tracking screen.
	EstimatedProcessingTime = "5–7 working days"

	systemActor = "System"
)

// PLNSettings carries the fee and deadline configured for the service.
type PLNSettings struct {
	Fee             float64
	PaymentDeadline time.Duration
}

type SubmitApplicationCommand struct {
	TransactionType     string
	IDType              string
	IDNumber            string
	Surname             string
	Initials            string
	BusinessName        string
	PostalAddress       entities.Address
	StreetAddress       entities.Address
	Email               string
	CellNumber          string
	PlateFormat         string
	Quantity            int
	PlateChoices        []entities.PlateChoice
	VehicleRegNo        string
	DocumentURL         string
	DeclarationAccepted bool
	DeclarationPlace    string
}

// SubmittedApplication is returned once; TrackingPIN is never stored in clear.
type SubmittedApplication struct {
	Application entities.PLNApplication
	TrackingPIN string
}

type ListApplicationsQuery struct {
	Status string
	Search string
	From   *time.Time
	To     *time.Time
	Page   int
	Limit  int
}

type ApplicationPage struct {
	Applications []entities.PLNApplication
	Total        int
	Page         int
	Limit        int
	TotalPages   int
}

// TrackingView is what the public tracking screen renders for an application.
type TrackingView struct {
	ReferenceID         string
	Status              entities.ApplicationStatus
	StatusKnown         bool
	StatusLabel         string
	StatusTone          entities.StatusTone
	NextSteps           string
	TrackingKey         string
	TrackingLabel       string
	EstimatedProcessing string
	AmountDue           float64
	PaymentDeadline     *time.Time
	PaymentOverdue      bool
	PlateChoices        []entities.PlateChoice
	History             []entities.StatusHistoryEntry
	HistoryIssues       []entities.HistoryIssue
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

type MonthlyCount struct {
	Month string
	Count int
}

type DashboardStats struct {
	Total              int
	ByStatus           map[entities.ApplicationStatus]int
	PaymentOverdue     int
	RecentApplications []entities.PLNApplication
	Monthly            []MonthlyCount
}

// IPLNApplicationUseCase covers the personalised number plate workflow:
// public submission and tracking, and the admin status pipeline.
type IPLNApplicationUseCase interface {
	Submit(ctx context.Context, cmd SubmitApplicationCommand) (SubmittedApplication, error)
	Track(ctx context.Context, referenceID, secret string) (TrackingView, error)
	GetByID(ctx context.Context, id string) (entities.PLNApplication, error)
	GetByReference(ctx context.Context, referenceID string) (entities.PLNApplication, error)
	ListByEmail(ctx context.Context, email string) ([]entities.PLNApplication, error)
	List(ctx context.Context, q ListApplicationsQuery) (ApplicationPage, error)
	UpdateStatus(ctx context.Context, id, status, actor, comment string) (entities.PLNApplication, error)
	MarkPaymentReceived(ctx context.Context, id, actor, paymentReference string) (entities.PLNApplication, error)
	OrderPlates(ctx context.Context, id, actor string) (entities.PLNApplication, error)
	MarkReadyForCollection(ctx context.Context, id, actor string) (entities.PLNApplication, error)
	ExpireOverdue(ctx context.Context, now time.Time) (int, error)
	DashboardStats(ctx context.Context) (DashboardStats, error)
	View(a entities.PLNApplication) TrackingView
}

type PLNApplicationUseCase struct {
	repo     interfaces.IPLNApplicationRepository
	notifier interfaces.IStatusNotifier
	settings PLNSettings
	now      func() time.Time
}

var _ IPLNApplicationUseCase = (*PLNApplicationUseCase)(nil)

// NewPLNApplicationUseCase builds the use case; notifier may be nil.
func NewPLNApplicationUseCase(repo interfaces.IPLNApplicationRepository, notifier interfaces.IStatusNotifier, settings PLNSettings) *PLNApplicationUseCase {
	return &PLNApplicationUseCase{
		repo:     repo,
		notifier: notifier,
		settings: settings,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (u *PLNApplicationUseCase) Submit(ctx context.Context, cmd SubmitApplicationCommand) (SubmittedApplication, error) {
	cmd = normalizeSubmission(cmd)
	if problems := validateSubmission(cmd); len(problems) > 0 {
		log.Printf("[pln][usecase] submit rejected problems=%q", problems)
		return SubmittedApplication{}, fmt.Errorf("%w: %s", ErrInvalidApplication, strings.Join(problems, "; "))
	}

	now := u.now()
	referenceID, err := u.allocateReference(ctx, now)
	if err != nil {
		return SubmittedApplication{}, err
	}

	pin, err := randomDigits(trackingPINDigits)
	if err != nil {
		return SubmittedApplication{}, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return SubmittedApplication{}, err
	}

	a := entities.PLNApplication{
		ID:               uuid.NewString(),
		ReferenceID:      referenceID,
		TrackingPINHash:  string(hash),
		TransactionType:  cmd.TransactionType,
		IDType:           cmd.IDType,
		IDNumber:         cmd.IDNumber,
		Surname:          cmd.Surname,
		Initials:         cmd.Initials,
		BusinessName:     cmd.BusinessName,
		PostalAddress:    cmd.PostalAddress,
		StreetAddress:    cmd.StreetAddress,
		Email:            cmd.Email,
		CellNumber:       cmd.CellNumber,
		PlateFormat:      cmd.PlateFormat,
		Quantity:         cmd.Quantity,
		PlateChoices:     cmd.PlateChoices,
		VehicleRegNo:     cmd.VehicleRegNo,
		DocumentURL:      cmd.DocumentURL,
		DeclarationAt:    now,
		DeclarationPlace: cmd.DeclarationPlace,
		CreatedAt:        now,
	}
	a.ApplyStatus(entities.ApplicationStatusSubmitted, systemActor, "Application submitted", now)

	created, err := u.repo.Create(ctx, a)
	if err != nil {
		log.Printf("[pln][usecase] create failed reference_id=%s err=%v", referenceID, err)
		return SubmittedApplication{}, err
	}
	log.Printf("[pln][usecase] application submitted id=%s reference_id=%s", created.ID, created.ReferenceID)
	return SubmittedApplication{Application: created, TrackingPIN: pin}, nil
}

func normalizeSubmission(cmd SubmitApplicationCommand) SubmitApplicationCommand {
	cmd.TransactionType = strings.TrimSpace(cmd.TransactionType)
	if cmd.TransactionType == "" {
		cmd.TransactionType = "New Personalised Licence Number"
	}
	cmd.IDType = strings.TrimSpace(cmd.IDType)
	cmd.IDNumber = strings.TrimSpace(cmd.IDNumber)
	cmd.Surname = strings.TrimSpace(cmd.Surname)
	cmd.Initials = strings.TrimSpace(cmd.Initials)
	cmd.BusinessName = strings.TrimSpace(cmd.BusinessName)
	cmd.Email = strings.ToLower(strings.TrimSpace(cmd.Email))
	cmd.CellNumber = strings.TrimSpace(cmd.CellNumber)
	cmd.PlateFormat = strings.TrimSpace(cmd.PlateFormat)
	cmd.VehicleRegNo = strings.TrimSpace(cmd.VehicleRegNo)
	cmd.DeclarationPlace = strings.TrimSpace(cmd.DeclarationPlace)

	choices := make([]entities.PlateChoice, 0, len(cmd.PlateChoices))
	for _, c := range cmd.PlateChoices {
		choices = append(choices, entities.PlateChoice{
			Text:    strings.ToUpper(strings.TrimSpace(c.Text)),
			Meaning: strings.TrimSpace(c.Meaning),
		})
	}
	cmd.PlateChoices = choices
	return cmd
}

func validateSubmission(cmd SubmitApplicationCommand) []string {
	var problems []string
	add := func(format string, args ...any) { problems = append(problems, fmt.Sprintf(format, args...)) }

	switch cmd.IDType {
	case entities.IDTypeTrafficRegister, entities.IDTypeNamibiaID:
		if cmd.IDNumber == "" {
			add("traffic register or Namibia ID number is required")
		}
	case entities.IDTypeBusinessReg:
		if cmd.IDNumber == "" {
			add("business registration number is required")
		}
		if cmd.BusinessName == "" {
			add("business name is required for business registrations")
		}
	case "":
		add("id type is required")
	default:
		add("unsupported id type %q", cmd.IDType)
	}
	if cmd.Surname == "" {
		add("surname is required")
	}
	if cmd.Initials == "" {
		add("initials are required")
	}
	if strings.TrimSpace(cmd.PostalAddress.Line1) == "" {
		add("postal address line 1 is required")
	}
	if strings.TrimSpace(cmd.StreetAddress.Line1) == "" {
		add("street address line 1 is required")
	}
	if cmd.Email == "" && cmd.CellNumber == "" {
		add("at least one contact method (cell number or email) is required")
	}
	if cmd.PlateFormat == "" {
		add("plate format is required")
	}
	if cmd.Quantity != 1 && cmd.Quantity != 2 {
		add("quantity must be 1 or 2")
	}

	if len(cmd.PlateChoices) != entities.PlateChoicesRequired {
		add("exactly %d plate choices are required", entities.PlateChoicesRequired)
	}
	for i, c := range cmd.PlateChoices {
		switch {
		case c.Text == "":
			add("plate choice %d text is required", i+1)
		case !entities.ValidPlateText(c.Text):
			add("plate choice %d text must be at most %d letters or digits", i+1, entities.PlateTextMaxLength)
		}
		if c.Meaning == "" {
			add("plate choice %d meaning is required", i+1)
		}
	}

	if !cmd.DeclarationAccepted {
		add("declaration must be accepted")
	}
	if cmd.DeclarationPlace == "" {
		add("declaration place is required")
	}
	return problems
}

func (u *PLNApplicationUseCase) allocateReference(ctx context.Context, now time.Time) (string, error) {
	for attempt := 0; attempt < referenceMaxAttempts; attempt++ {
		suffix, err := randomString(referenceAlphabet, referenceSuffixLen)
		if err != nil {
			return "", err
		}
		ref := fmt.Sprintf("PLN-%d-%s", now.Year(), suffix)
		existing, err := u.repo.GetByReference(ctx, ref)
		if err != nil {
			return "", err
		}
		if existing.ID == "" {
			return ref, nil
		}
		log.Printf("[pln][usecase] reference collision reference_id=%s attempt=%d", ref, attempt+1)
	}
	return "", ErrReferenceExhausted
}

func randomString(alphabet string, n int) (string, error) {
	size := big.NewInt(int64(len(alphabet)))
	b := make([]byte, n)
	for i := range b {
		idx, err := rand.Int(rand.Reader, size)
		if err != nil {
			return "", err
		}
		b[i] = alphabet[idx.Int64()]
	}
	return string(b), nil
}

func randomDigits(n int) (string, error) {
	return randomString("0123456789", n)
}

// Track returns the public view of an application. secret is either the
// tracking PIN issued on submission or the applicant's ID number.
func (u *PLNApplicationUseCase) Track(ctx context.Context, referenceID, secret string) (TrackingView, error) {
	a, err := u.GetByReference(ctx, referenceID)
	if err != nil {
		return TrackingView{}, err
	}
	if !matchesTrackingSecret(a, secret) {
		log.Printf("[pln][usecase] tracking secret rejected reference_id=%s", a.ReferenceID)
		return TrackingView{}, ErrInvalidTrackingSecret
	}
	return u.View(a), nil
}

func matchesTrackingSecret(a entities.PLNApplication, secret string) bool {
	secret = strings.TrimSpace(secret)
	if secret == "" {
		return false
	}
	if a.TrackingPINHash != "" && bcrypt.CompareHashAndPassword([]byte(a.TrackingPINHash), []byte(secret)) == nil {
		return true
	}
	return a.IDNumber != "" && strings.EqualFold(strings.TrimSpace(a.IDNumber), secret)
}

// View derives the presentation fields for an application. Unknown stored
// statuses keep their normalised value and fall back to the default label,
// next step and tone.
func (u *PLNApplicationUseCase) View(a entities.PLNApplication) TrackingView {
	status := entities.NormalizeStatus(string(a.Status))
	raw := string(a.Status)
	now := u.now()

	view := TrackingView{
		ReferenceID:         a.ReferenceID,
		Status:              status,
		StatusKnown:         status.IsKnown(),
		StatusLabel:         entities.Label(raw),
		StatusTone:          entities.Tone(raw),
		NextSteps:           entities.NextStepsMessage(raw),
		TrackingKey:         entities.TrackingKey(raw),
		EstimatedProcessing: EstimatedProcessingTime,
		PaymentDeadline:     a.PaymentDeadline,
		PaymentOverdue:      a.PaymentOverdue(now),
		PlateChoices:        a.PlateChoices,
		History:             entities.BuildStatusHistory(a.StatusHistory, a.CreatedAt, a.Status),
		CreatedAt:           a.CreatedAt,
		UpdatedAt:           a.UpdatedAt,
	}
	view.TrackingLabel = entities.TrackingLabel(view.TrackingKey)
	view.HistoryIssues = entities.CheckHistory(view.History, status)
	if status == entities.ApplicationStatusPaymentPending {
		view.AmountDue = u.settings.Fee
	}
	if len(view.HistoryIssues) > 0 {
		log.Printf("[pln][usecase] history issues reference_id=%s count=%d", a.ReferenceID, len(view.HistoryIssues))
	}
	return view
}

func (u *PLNApplicationUseCase) GetByID(ctx context.Context, id string) (entities.PLNApplication, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.PLNApplication{}, ErrInvalidApplicationID
	}
	a, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.PLNApplication{}, err
	}
	if a.ID == "" {
		return entities.PLNApplication{}, ErrApplicationNotFound
	}
	return a, nil
}

func (u *PLNApplicationUseCase) GetByReference(ctx context.Context, referenceID string) (entities.PLNApplication, error) {
	referenceID = strings.TrimSpace(referenceID)
	if referenceID == "" {
		return entities.PLNApplication{}, ErrInvalidReferenceID
	}
	a, err := u.repo.GetByReference(ctx, referenceID)
	if err != nil {
		return entities.PLNApplication{}, err
	}
	if a.ID == "" {
		return entities.PLNApplication{}, ErrApplicationNotFound
	}
	return a, nil
}

func (u *PLNApplicationUseCase) ListByEmail(ctx context.Context, email string) ([]entities.PLNApplication, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrInvalidApplication)
	}
	list, err := u.repo.ListByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	sortNewestFirst(list)
	return list, nil
}

func (u *PLNApplicationUseCase) List(ctx context.Context, q ListApplicationsQuery) (ApplicationPage, error) {
	var (
		all []entities.PLNApplication
		err error
	)
	if status := strings.TrimSpace(q.Status); status != "" {
		all, err = u.repo.ListByStatus(ctx, entities.NormalizeStatus(status))
	} else {
		all, err = u.repo.List(ctx)
	}
	if err != nil {
		return ApplicationPage{}, err
	}

	filtered := make([]entities.PLNApplication, 0, len(all))
	for _, a := range all {
		if q.From != nil && a.CreatedAt.Before(*q.From) {
			continue
		}
		if q.To != nil && a.CreatedAt.After(*q.To) {
			continue
		}
		if !applicationMatches(a, q.Search) {
			continue
		}
		filtered = append(filtered, a)
	}
	sortNewestFirst(filtered)

	page, limit := clampPage(q.Page, q.Limit)
	start, end := pageBounds(len(filtered), page, limit)
	return ApplicationPage{
		Applications: filtered[start:end],
		Total:        len(filtered),
		Page:         page,
		Limit:        limit,
		TotalPages:   totalPages(len(filtered), limit),
	}, nil
}

func applicationMatches(a entities.PLNApplication, term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	for _, f := range []string{a.ReferenceID, a.Surname, a.BusinessName, a.IDNumber, a.CellNumber, a.Email} {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

func sortNewestFirst(list []entities.PLNApplication) {
	sort.SliceStable(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
}

// UpdateStatus applies an admin status change. APPROVED is recorded as
// PAYMENT_PENDING and starts the payment deadline.
func (u *PLNApplicationUseCase) UpdateStatus(ctx context.Context, id, status, actor, comment string) (entities.PLNApplication, error) {
	requested := entities.NormalizeStatus(status)
	if !requested.IsKnown() {
		return entities.PLNApplication{}, fmt.Errorf("%w: %s", ErrUnknownStatus, requested)
	}
	return u.transition(ctx, id, requested, actor, comment, nil)
}

func (u *PLNApplicationUseCase) MarkPaymentReceived(ctx context.Context, id, actor, paymentReference string) (entities.PLNApplication, error) {
	return u.transition(ctx, id, entities.ApplicationStatusPaid, actor, "Payment received", func(a *entities.PLNApplication) {
		if ref := strings.TrimSpace(paymentReference); ref != "" {
			a.PaymentReference = ref
		}
	})
}

func (u *PLNApplicationUseCase) OrderPlates(ctx context.Context, id, actor string) (entities.PLNApplication, error) {
	return u.transition(ctx, id, entities.ApplicationStatusPlatesOrdered, actor, "Plates ordered from manufacturer", nil)
}

func (u *PLNApplicationUseCase) MarkReadyForCollection(ctx context.Context, id, actor string) (entities.PLNApplication, error) {
	return u.transition(ctx, id, entities.ApplicationStatusReadyForCollection, actor, "Plates ready for collection", nil)
}

func (u *PLNApplicationUseCase) transition(ctx context.Context, id string, requested entities.ApplicationStatus, actor, comment string, mutate func(*entities.PLNApplication)) (entities.PLNApplication, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.PLNApplication{}, err
	}
	return u.apply(ctx, current, requested, actor, comment, mutate)
}

func (u *PLNApplicationUseCase) apply(ctx context.Context, current entities.PLNApplication, requested entities.ApplicationStatus, actor, comment string, mutate func(*entities.PLNApplication)) (entities.PLNApplication, error) {
	from := entities.NormalizeStatus(string(current.Status))
	effective := requested
	if requested == entities.ApplicationStatusApproved {
		effective = entities.ApplicationStatusPaymentPending
	}
	if !entities.CanTransition(from, effective) {
		log.Printf("[pln][usecase] transition rejected id=%s from=%s to=%s", current.ID, from, effective)
		return entities.PLNApplication{}, fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, from, effective)
	}

	at := u.now()
	if n := len(current.StatusHistory); n > 0 && at.Before(current.StatusHistory[n-1].Timestamp) {
		at = current.StatusHistory[n-1].Timestamp
	}
	if actor = strings.TrimSpace(actor); actor == "" {
		actor = systemActor
	}

	next := current
	next.StatusHistory = append([]entities.StatusHistoryEntry(nil), current.StatusHistory...)
	next.ApplyStatus(effective, actor, strings.TrimSpace(comment), at)

	switch effective {
	case entities.ApplicationStatusPaymentPending:
		deadline := at.Add(u.settings.PaymentDeadline)
		next.PaymentDeadline = &deadline
	case entities.ApplicationStatusPaid:
		next.PaymentReceivedAt = &at
	case entities.ApplicationStatusPlatesOrdered:
		next.PlatesOrderedAt = &at
	case entities.ApplicationStatusReadyForCollection:
		next.ReadyAt = &at
	}
	if mutate != nil {
		mutate(&next)
	}

	saved, err := u.repo.Save(ctx, next, current)
	if err != nil {
		if errors.Is(err, interfaces.ErrVersionConflict) {
			return entities.PLNApplication{}, ErrApplicationConflict
		}
		log.Printf("[pln][usecase] save failed id=%s err=%v", current.ID, err)
		return entities.PLNApplication{}, err
	}
	log.Printf("[pln][usecase] status changed id=%s from=%s to=%s actor=%s", saved.ID, from, effective, actor)
	u.notify(ctx, saved)
	return saved, nil
}

func (u *PLNApplicationUseCase) notify(ctx context.Context, a entities.PLNApplication) {
	if u.notifier == nil {
		return
	}
	if err := u.notifier.NotifyApplicationStatus(ctx, a); err != nil {
		log.Printf("[pln][usecase] notify failed id=%s err=%v", a.ID, err)
	}
}

// ExpireOverdue moves every PAYMENT_PENDING application past its deadline to
// EXPIRED and returns how many were expired.
func (u *PLNApplicationUseCase) ExpireOverdue(ctx context.Context, now time.Time) (int, error) {
	pending, err := u.repo.ListByStatus(ctx, entities.ApplicationStatusPaymentPending)
	if err != nil {
		return 0, err
	}
	expired := 0
	for _, a := range pending {
		if !a.PaymentOverdue(now) {
			continue
		}
		if _, err := u.apply(ctx, a, entities.ApplicationStatusExpired, systemActor, "Payment deadline passed", nil); err != nil {
			if errors.Is(err, ErrApplicationConflict) || errors.Is(err, ErrInvalidStatusTransition) {
				log.Printf("[pln][usecase] expiry skipped id=%s err=%v", a.ID, err)
				continue
			}
			return expired, err
		}
		expired++
	}
	if expired > 0 {
		log.Printf("[pln][usecase] expired overdue applications count=%d", expired)
	}
	return expired, nil
}

func (u *PLNApplicationUseCase) DashboardStats(ctx context.Context) (DashboardStats, error) {
	var all, pending []entities.PLNApplication
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		all, err = u.repo.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		pending, err = u.repo.ListByStatus(gctx, entities.ApplicationStatusPaymentPending)
		return err
	})
	if err := g.Wait(); err != nil {
		return DashboardStats{}, err
	}

	now := u.now()
	stats := DashboardStats{
		Total:    len(all),
		ByStatus: make(map[entities.ApplicationStatus]int, len(entities.CanonicalStatuses)),
	}
	for _, s := range entities.CanonicalStatuses {
		stats.ByStatus[s] = 0
	}
	for _, a := range all {
		stats.ByStatus[entities.NormalizeStatus(string(a.Status))]++
	}
	for _, a := range pending {
		if a.PaymentOverdue(now) {
			stats.PaymentOverdue++
		}
	}

	sortNewestFirst(all)
	if len(all) > 5 {
		stats.RecentApplications = all[:5]
	} else {
		stats.RecentApplications = all
	}
	stats.Monthly = monthlyHistogram(all, now)
	return stats, nil
}

// monthlyHistogram counts creations over the twelve months ending with now's month.
func monthlyHistogram(list []entities.PLNApplication, now time.Time) []MonthlyCount {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -11, 0)
	counts := make(map[string]int, 12)
	for _, a := range list {
		if a.CreatedAt.Before(start) {
			continue
		}
		counts[a.CreatedAt.UTC().Format("2006-01")]++
	}
	out := make([]MonthlyCount, 0, 12)
	for i := 0; i < 12; i++ {
		m := start.AddDate(0, i, 0).Format("2006-01")
		out = append(out, MonthlyCount{Month: m, Count: counts[m]})
	}
	return out
}
