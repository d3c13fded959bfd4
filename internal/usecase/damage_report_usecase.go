package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"roads_authority/internal/domain/entities"
	"roads_authority/internal/usecase/interfaces"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrReportNotFound         = errors.New("damage report not found")
	ErrInvalidReportID        = errors.New("invalid report id")
	ErrInvalidReport          = errors.New("invalid damage report")
	ErrInvalidReportStatus    = errors.New("invalid report status")
	ErrReportStatusTransition = errors.New("report status change not allowed")
)

const reportReferenceAttempts = 10

type CreateReportCommand struct {
	DeviceID    string
	Email       string
	Location    entities.Coordinates
	RoadName    string
	Town        string
	Description string
	Severity    string
	PhotoURL    string
}

type ListReportsQuery struct {
	DeviceID string
	Region   string
	Town     string
	Severity string
	Status   string
	Search   string
	From     *time.Time
	To       *time.Time
	Page     int
	Limit    int
}

type ReportPage struct {
	Reports    []entities.DamageReport
	Total      int
	Page       int
	Limit      int
	TotalPages int
}

// ReportUpdate carries the optional fields an admin may change with a status.
type ReportUpdate struct {
	AssignedTo     string
	AdminNotes     string
	Severity       string
	RepairPhotoURL string
}

// regionLocator finds the region a position belongs to.
type regionLocator interface {
	NearestRegion(ctx context.Context, at entities.Coordinates) (string, error)
}

type IDamageReportUseCase interface {
	Create(ctx context.Context, cmd CreateReportCommand) (entities.DamageReport, error)
	ListMine(ctx context.Context, deviceID, email, status string) ([]entities.DamageReport, error)
	Get(ctx context.Context, id string) (entities.DamageReport, error)
	List(ctx context.Context, q ListReportsQuery) (ReportPage, error)
	UpdateStatus(ctx context.Context, id, status string, upd ReportUpdate) (entities.DamageReport, error)
	Assign(ctx context.Context, id, assignee string) (entities.DamageReport, error)
	AddNotes(ctx context.Context, id, notes string) (entities.DamageReport, error)
	RegionsAndTowns(ctx context.Context) ([]string, []string, error)
}

type DamageReportUseCase struct {
	repo    interfaces.IDamageReportRepository
	regions regionLocator
	now     func() time.Time
}

var _ IDamageReportUseCase = (*DamageReportUseCase)(nil)

// NewDamageReportUseCase builds the use case; offices is used to fill in the
// region of a report and may be nil.
func NewDamageReportUseCase(repo interfaces.IDamageReportRepository, offices *OfficeUseCase) *DamageReportUseCase {
	uc := &DamageReportUseCase{repo: repo, now: func() time.Time { return time.Now().UTC() }}
	if offices != nil {
		uc.regions = offices
	}
	return uc
}

func (u *DamageReportUseCase) Create(ctx context.Context, cmd CreateReportCommand) (entities.DamageReport, error) {
	cmd.DeviceID = strings.TrimSpace(cmd.DeviceID)
	if cmd.DeviceID == "" {
		return entities.DamageReport{}, fmt.Errorf("%w: device id is required", ErrInvalidReport)
	}
	if !cmd.Location.Valid() {
		return entities.DamageReport{}, fmt.Errorf("%w: a valid location is required", ErrInvalidReport)
	}
	if strings.TrimSpace(cmd.PhotoURL) == "" {
		return entities.DamageReport{}, fmt.Errorf("%w: a photo is required", ErrInvalidReport)
	}
	var severity entities.Severity
	if strings.TrimSpace(cmd.Severity) != "" {
		s, ok := entities.ParseSeverity(cmd.Severity)
		if !ok {
			return entities.DamageReport{}, fmt.Errorf("%w: severity %q", ErrInvalidReport, cmd.Severity)
		}
		severity = s
	}

	now := u.now()
	code, err := u.allocateReferenceCode(ctx, now)
	if err != nil {
		return entities.DamageReport{}, err
	}

	r := entities.DamageReport{
		ID:            uuid.NewString(),
		ReferenceCode: code,
		DeviceID:      cmd.DeviceID,
		UserEmail:     strings.ToLower(strings.TrimSpace(cmd.Email)),
		Location:      cmd.Location,
		RoadName:      fallback(cmd.RoadName, entities.UnknownRoad),
		Town:          fallback(cmd.Town, entities.UnknownLocation),
		Region:        fallback(u.locateRegion(ctx, cmd.Location), entities.UnknownLocation),
		Description:   strings.TrimSpace(cmd.Description),
		Severity:      severity,
		PhotoURL:      strings.TrimSpace(cmd.PhotoURL),
		Status:        entities.ReportStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	created, err := u.repo.Create(ctx, r)
	if err != nil {
		log.Printf("[report][usecase] create failed reference=%s err=%v", code, err)
		return entities.DamageReport{}, err
	}
	log.Printf("[report][usecase] created id=%s reference=%s region=%s", created.ID, created.ReferenceCode, created.Region)
	return created, nil
}

func (u *DamageReportUseCase) locateRegion(ctx context.Context, at entities.Coordinates) string {
	if u.regions == nil {
		return ""
	}
	region, err := u.regions.NearestRegion(ctx, at)
	if err != nil {
		log.Printf("[report][usecase] region lookup failed err=%v", err)
		return ""
	}
	return region
}

func (u *DamageReportUseCase) allocateReferenceCode(ctx context.Context, at time.Time) (string, error) {
	for attempt := 0; attempt < reportReferenceAttempts; attempt++ {
		digits, err := randomDigits(6)
		if err != nil {
			return "", err
		}
		n, err := strconv.Atoi(digits)
		if err != nil {
			return "", err
		}
		code := entities.ReportReferenceCode(at, n)
		exists, err := u.repo.ExistsReferenceCode(ctx, code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}
	return "", ErrReferenceExhausted
}

func fallback(v, def string) string {
	if v = strings.TrimSpace(v); v != "" {
		return v
	}
	return def
}

// ListMine returns the caller's reports, newest first. Reports are looked up
// by email when one is given, otherwise by device.
func (u *DamageReportUseCase) ListMine(ctx context.Context, deviceID, email, status string) ([]entities.DamageReport, error) {
	var (
		list []entities.DamageReport
		err  error
	)
	switch {
	case strings.TrimSpace(email) != "":
		list, err = u.repo.ListByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	case strings.TrimSpace(deviceID) != "":
		list, err = u.repo.ListByDeviceID(ctx, strings.TrimSpace(deviceID))
	default:
		return nil, fmt.Errorf("%w: device id or email is required", ErrInvalidReport)
	}
	if err != nil {
		return nil, err
	}

	var want entities.ReportStatus
	if strings.TrimSpace(status) != "" {
		s, ok := entities.ParseReportStatus(status)
		if !ok {
			return nil, ErrInvalidReportStatus
		}
		want = s
	}
	out := make([]entities.DamageReport, 0, len(list))
	for _, r := range list {
		if want == "" || r.Status == want {
			out = append(out, r)
		}
	}
	sortReportsNewestFirst(out)
	return out, nil
}

func sortReportsNewestFirst(list []entities.DamageReport) {
	sort.SliceStable(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
}

func (u *DamageReportUseCase) Get(ctx context.Context, id string) (entities.DamageReport, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.DamageReport{}, ErrInvalidReportID
	}
	r, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.DamageReport{}, err
	}
	if r.ID == "" {
		return entities.DamageReport{}, ErrReportNotFound
	}
	return r, nil
}

func (u *DamageReportUseCase) List(ctx context.Context, q ListReportsQuery) (ReportPage, error) {
	var want entities.ReportStatus
	if strings.TrimSpace(q.Status) != "" {
		s, ok := entities.ParseReportStatus(q.Status)
		if !ok {
			return ReportPage{}, ErrInvalidReportStatus
		}
		want = s
	}
	all, err := u.repo.List(ctx)
	if err != nil {
		return ReportPage{}, err
	}

	term := strings.ToLower(strings.TrimSpace(q.Search))
	filtered := make([]entities.DamageReport, 0, len(all))
	for _, r := range all {
		switch {
		case q.DeviceID != "" && r.DeviceID != q.DeviceID,
			q.Region != "" && !strings.EqualFold(r.Region, q.Region),
			q.Town != "" && !strings.EqualFold(r.Town, q.Town),
			q.Severity != "" && !strings.EqualFold(string(r.Severity), q.Severity),
			want != "" && r.Status != want,
			q.From != nil && r.CreatedAt.Before(*q.From),
			q.To != nil && r.CreatedAt.After(*q.To):
			continue
		}
		if term != "" && !reportMatches(r, term) {
			continue
		}
		filtered = append(filtered, r)
	}
	sortReportsNewestFirst(filtered)

	page, limit := clampPage(q.Page, q.Limit)
	start, end := pageBounds(len(filtered), page, limit)
	return ReportPage{
		Reports:    filtered[start:end],
		Total:      len(filtered),
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(len(filtered), limit),
	}, nil
}

func reportMatches(r entities.DamageReport, term string) bool {
	for _, f := range []string{r.ReferenceCode, r.RoadName, r.Town, r.Region} {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

// UpdateStatus moves a report along the repair workflow. Reaching fixed stamps
// FixedAt.
func (u *DamageReportUseCase) UpdateStatus(ctx context.Context, id, status string, upd ReportUpdate) (entities.DamageReport, error) {
	to, ok := entities.ParseReportStatus(status)
	if !ok {
		return entities.DamageReport{}, ErrInvalidReportStatus
	}
	r, err := u.Get(ctx, id)
	if err != nil {
		return entities.DamageReport{}, err
	}
	if !entities.CanMoveReport(r.Status, to) {
		return entities.DamageReport{}, fmt.Errorf("%w: %s -> %s", ErrReportStatusTransition, r.Status, to)
	}
	if strings.TrimSpace(upd.Severity) != "" {
		s, ok := entities.ParseSeverity(upd.Severity)
		if !ok {
			return entities.DamageReport{}, fmt.Errorf("%w: severity %q", ErrInvalidReport, upd.Severity)
		}
		r.Severity = s
	}
	if v := strings.TrimSpace(upd.AssignedTo); v != "" {
		r.AssignedTo = v
	}
	if v := strings.TrimSpace(upd.AdminNotes); v != "" {
		r.AdminNotes = v
	}
	if v := strings.TrimSpace(upd.RepairPhotoURL); v != "" {
		r.RepairPhotoURL = v
	}

	now := u.now()
	from := r.Status
	r.Status = to
	r.UpdatedAt = now
	if to == entities.ReportStatusFixed {
		r.FixedAt = &now
	}
	updated, err := u.repo.Update(ctx, r)
	if err != nil {
		return entities.DamageReport{}, err
	}
	log.Printf("[report][usecase] status changed id=%s from=%s to=%s", updated.ID, from, to)
	return updated, nil
}

// Assign records who will repair the damage; a pending report becomes assigned.
func (u *DamageReportUseCase) Assign(ctx context.Context, id, assignee string) (entities.DamageReport, error) {
	assignee = strings.TrimSpace(assignee)
	if assignee == "" {
		return entities.DamageReport{}, fmt.Errorf("%w: assignee is required", ErrInvalidReport)
	}
	r, err := u.Get(ctx, id)
	if err != nil {
		return entities.DamageReport{}, err
	}
	if r.Status.IsClosed() {
		return entities.DamageReport{}, fmt.Errorf("%w: report is %s", ErrReportStatusTransition, r.Status)
	}
	r.AssignedTo = assignee
	if r.Status == entities.ReportStatusPending {
		r.Status = entities.ReportStatusAssigned
	}
	r.UpdatedAt = u.now()
	return u.repo.Update(ctx, r)
}

func (u *DamageReportUseCase) AddNotes(ctx context.Context, id, notes string) (entities.DamageReport, error) {
	r, err := u.Get(ctx, id)
	if err != nil {
		return entities.DamageReport{}, err
	}
	r.AdminNotes = strings.TrimSpace(notes)
	r.UpdatedAt = u.now()
	return u.repo.Update(ctx, r)
}

// RegionsAndTowns lists the distinct known regions and towns across reports.
func (u *DamageReportUseCase) RegionsAndTowns(ctx context.Context) ([]string, []string, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	return distinctKnown(all, func(r entities.DamageReport) string { return r.Region }),
		distinctKnown(all, func(r entities.DamageReport) string { return r.Town }), nil
}

func distinctKnown(list []entities.DamageReport, field func(entities.DamageReport) string) []string {
	seen := map[string]bool{}
	out := []string{}
	for _, r := range list {
		v := strings.TrimSpace(field(r))
		if v == "" || v == entities.UnknownLocation || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
