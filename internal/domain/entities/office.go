package entities

import (
	"math"
	"sort"
	"strings"
	"time"
)

const earthRadiusKm = 6371.0

// AllOfficesGroup is the single group name used when offices are ordered by distance.
const AllOfficesGroup = "All Offices"

// Coordinates is a WGS84 position.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Valid reports whether c is a usable position. The zero value is treated as missing.
func (c *Coordinates) Valid() bool {
	if c == nil {
		return false
	}
	if c.Latitude == 0 && c.Longitude == 0 {
		return false
	}
	return c.Latitude >= -90 && c.Latitude <= 90 && c.Longitude >= -180 && c.Longitude <= 180
}

// SpecialHours overrides the regular schedule for a single date.
type SpecialHours struct {
	Date   string `json:"date"`
	Reason string `json:"reason"`
	Closed bool   `json:"closed"`
	Open   string `json:"open,omitempty"`
	Close  string `json:"close,omitempty"`
}

// Office is a Roads Authority / NaTIS service point.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (region-index): region
type Office struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Address        string            `json:"address"`
	Region         string            `json:"region"`
	Coordinates    *Coordinates      `json:"coordinates,omitempty"`
	ContactNumber  string            `json:"contact_number,omitempty"`
	Email          string            `json:"email,omitempty"`
	Services       []string          `json:"services,omitempty"`
	OperatingHours map[string]string `json:"operating_hours,omitempty"`
	ClosedDays     []string          `json:"closed_days,omitempty"`
	SpecialHours   []SpecialHours    `json:"special_hours,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

// OfficeDistance pairs an office with its distance from the caller, when known.
type OfficeDistance struct {
	Office
	DistanceKm *float64 `json:"distance_km,omitempty"`
}

// OfficeSort selects the ordering of an office listing.
type OfficeSort string

const (
	OfficeSortRegion   OfficeSort = "region"
	OfficeSortName     OfficeSort = "name"
	OfficeSortDistance OfficeSort = "distance"
)

// ParseOfficeSort falls back to region ordering for anything it does not recognise.
func ParseOfficeSort(v string) OfficeSort {
	switch OfficeSort(strings.ToLower(strings.TrimSpace(v))) {
	case OfficeSortName:
		return OfficeSortName
	case OfficeSortDistance:
		return OfficeSortDistance
	}
	return OfficeSortRegion
}

// HaversineKm returns the great-circle distance between a and b in kilometres.
func HaversineKm(a, b Coordinates) float64 {
	dLat := toRadians(b.Latitude - a.Latitude)
	dLon := toRadians(b.Longitude - a.Longitude)
	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(a.Latitude))*math.Cos(toRadians(b.Latitude))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

// WithDistances annotates offices with their distance from origin. Offices
// without coordinates, or a nil origin, leave DistanceKm unset.
func WithDistances(offices []Office, origin *Coordinates) []OfficeDistance {
	out := make([]OfficeDistance, 0, len(offices))
	for _, o := range offices {
		od := OfficeDistance{Office: o}
		if origin.Valid() && o.Coordinates.Valid() {
			d := HaversineKm(*origin, *o.Coordinates)
			od.DistanceKm = &d
		}
		out = append(out, od)
	}
	return out
}

// SortOffices orders offices in place. Distance ordering puts offices with no
// known distance last; region ordering breaks ties by name.
func SortOffices(offices []OfficeDistance, by OfficeSort) {
	switch by {
	case OfficeSortDistance:
		sort.SliceStable(offices, func(i, j int) bool {
			a, b := offices[i].DistanceKm, offices[j].DistanceKm
			switch {
			case a == nil && b == nil:
				return false
			case a == nil:
				return false
			case b == nil:
				return true
			}
			return *a < *b
		})
	case OfficeSortName:
		sort.SliceStable(offices, func(i, j int) bool {
			return strings.ToLower(offices[i].Name) < strings.ToLower(offices[j].Name)
		})
	default:
		sort.SliceStable(offices, func(i, j int) bool {
			ri, rj := strings.ToLower(offices[i].Region), strings.ToLower(offices[j].Region)
			if ri != rj {
				return ri < rj
			}
			return strings.ToLower(offices[i].Name) < strings.ToLower(offices[j].Name)
		})
	}
}

// OfficeGroup is a titled section of an office listing.
type OfficeGroup struct {
	Name    string           `json:"name"`
	Offices []OfficeDistance `json:"offices"`
}

// GroupOffices splits an already sorted listing into sections. Distance
// ordering with a known origin yields one AllOfficesGroup section; otherwise
// sections are per region, in region name order, keeping the input order inside.
func GroupOffices(offices []OfficeDistance, by OfficeSort, hasOrigin bool) []OfficeGroup {
	if by == OfficeSortDistance && hasOrigin {
		return []OfficeGroup{{Name: AllOfficesGroup, Offices: offices}}
	}
	byRegion := map[string][]OfficeDistance{}
	for _, o := range offices {
		region := strings.TrimSpace(o.Region)
		if region == "" {
			region = "Other"
		}
		byRegion[region] = append(byRegion[region], o)
	}
	names := make([]string, 0, len(byRegion))
	for name := range byRegion {
		names = append(names, name)
	}
	sort.Strings(names)
	groups := make([]OfficeGroup, 0, len(names))
	for _, name := range names {
		groups = append(groups, OfficeGroup{Name: name, Offices: byRegion[name]})
	}
	return groups
}
