package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"roads_authority/internal/domain/entities"
	"roads_authority/internal/usecase/interfaces"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrOfficeNotFound  = errors.New("office not found")
	ErrInvalidOfficeID = errors.New("invalid office id")
	ErrInvalidOffice   = errors.New("invalid office")
)

type NearbyQuery struct {
	Origin *entities.Coordinates
	SortBy string
	Region string
	Search string
}

type OfficeListing struct {
	Offices []entities.OfficeDistance
	Groups  []entities.OfficeGroup
	SortBy  entities.OfficeSort
}

type IOfficeUseCase interface {
	List(ctx context.Context, region string) ([]entities.Office, error)
	Regions(ctx context.Context) ([]string, error)
	Nearby(ctx context.Context, q NearbyQuery) (OfficeListing, error)
	NearestRegion(ctx context.Context, at entities.Coordinates) (string, error)
	GetByID(ctx context.Context, id string) (entities.Office, error)
	Create(ctx context.Context, o entities.Office) (entities.Office, error)
	Update(ctx context.Context, id string, o entities.Office) (entities.Office, error)
	Delete(ctx context.Context, id string) error
}

type OfficeUseCase struct {
	repo interfaces.IOfficeRepository
}

var _ IOfficeUseCase = (*OfficeUseCase)(nil)

func NewOfficeUseCase(repo interfaces.IOfficeRepository) *OfficeUseCase {
	return &OfficeUseCase{repo: repo}
}

// List returns offices ordered by region, then name.
func (u *OfficeUseCase) List(ctx context.Context, region string) ([]entities.Office, error) {
	offices, err := u.repo.List(ctx, strings.TrimSpace(region))
	if err != nil {
		return nil, err
	}
	sorted := entities.WithDistances(offices, nil)
	entities.SortOffices(sorted, entities.OfficeSortRegion)
	out := make([]entities.Office, 0, len(sorted))
	for _, o := range sorted {
		out = append(out, o.Office)
	}
	return out, nil
}

func (u *OfficeUseCase) Regions(ctx context.Context) ([]string, error) {
	offices, err := u.repo.List(ctx, "")
	if err != nil {
		return nil, err
	}
	seen := map[string]bool{}
	regions := []string{}
	for _, o := range offices {
		r := strings.TrimSpace(o.Region)
		if r == "" || seen[r] {
			continue
		}
		seen[r] = true
		regions = append(regions, r)
	}
	sort.Strings(regions)
	return regions, nil
}

// Nearby annotates offices with their distance from the origin, filters,
// sorts and groups them for display. A missing or invalid origin still lists
// every office; distance ordering then falls back to region sections.
func (u *OfficeUseCase) Nearby(ctx context.Context, q NearbyQuery) (OfficeListing, error) {
	offices, err := u.repo.List(ctx, strings.TrimSpace(q.Region))
	if err != nil {
		return OfficeListing{}, err
	}
	origin := q.Origin
	if !origin.Valid() {
		origin = nil
	}

	term := strings.ToLower(strings.TrimSpace(q.Search))
	filtered := make([]entities.Office, 0, len(offices))
	for _, o := range offices {
		if term == "" || strings.Contains(strings.ToLower(o.Name), term) ||
			strings.Contains(strings.ToLower(o.Address), term) ||
			strings.Contains(strings.ToLower(o.Region), term) {
			filtered = append(filtered, o)
		}
	}

	by := entities.ParseOfficeSort(q.SortBy)
	list := entities.WithDistances(filtered, origin)
	entities.SortOffices(list, by)
	return OfficeListing{
		Offices: list,
		Groups:  entities.GroupOffices(list, by, origin != nil),
		SortBy:  by,
	}, nil
}

// NearestRegion returns the region of the closest office with coordinates,
// or an empty string when none has a position.
func (u *OfficeUseCase) NearestRegion(ctx context.Context, at entities.Coordinates) (string, error) {
	offices, err := u.repo.List(ctx, "")
	if err != nil {
		return "", err
	}
	list := entities.WithDistances(offices, &at)
	entities.SortOffices(list, entities.OfficeSortDistance)
	if len(list) == 0 || list[0].DistanceKm == nil {
		return "", nil
	}
	return list[0].Region, nil
}

func (u *OfficeUseCase) GetByID(ctx context.Context, id string) (entities.Office, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Office{}, ErrInvalidOfficeID
	}
	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Office{}, err
	}
	if o.ID == "" {
		return entities.Office{}, ErrOfficeNotFound
	}
	return o, nil
}

func (u *OfficeUseCase) Create(ctx context.Context, o entities.Office) (entities.Office, error) {
	o = normalizeOffice(o)
	if err := validateOffice(o); err != nil {
		return entities.Office{}, err
	}
	now := time.Now().UTC()
	o.ID = uuid.NewString()
	o.CreatedAt = now
	o.UpdatedAt = now
	created, err := u.repo.Create(ctx, o)
	if err != nil {
		return entities.Office{}, err
	}
	log.Printf("[office][usecase] created id=%s region=%s", created.ID, created.Region)
	return created, nil
}

func (u *OfficeUseCase) Update(ctx context.Context, id string, o entities.Office) (entities.Office, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Office{}, err
	}
	o = normalizeOffice(o)
	if err := validateOffice(o); err != nil {
		return entities.Office{}, err
	}
	o.ID = current.ID
	o.CreatedAt = current.CreatedAt
	o.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, o)
}

func (u *OfficeUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidOfficeID
	}
	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrOfficeNotFound
	}
	log.Printf("[office][usecase] deleted id=%s", id)
	return nil
}

func normalizeOffice(o entities.Office) entities.Office {
	o.Name = strings.TrimSpace(o.Name)
	o.Address = strings.TrimSpace(o.Address)
	o.Region = strings.TrimSpace(o.Region)
	o.Email = strings.ToLower(strings.TrimSpace(o.Email))
	if !o.Coordinates.Valid() {
		o.Coordinates = nil
	}
	return o
}

func validateOffice(o entities.Office) error {
	var missing []string
	if o.Name == "" {
		missing = append(missing, "name")
	}
	if o.Address == "" {
		missing = append(missing, "address")
	}
	if o.Region == "" {
		missing = append(missing, "region")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s required", ErrInvalidOffice, strings.Join(missing, ", "))
	}
	return nil
}
