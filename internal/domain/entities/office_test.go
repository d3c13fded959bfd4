package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	windhoek   = Coordinates{Latitude: -22.5609, Longitude: 17.0658}
	swakopmund = Coordinates{Latitude: -22.6784, Longitude: 14.5266}
	oshakati   = Coordinates{Latitude: -17.7883, Longitude: 15.7044}
)

func TestHaversineKm(t *testing.T) {
	assert.InDelta(t, 0, HaversineKm(windhoek, windhoek), 1e-9)
	// Windhoek to Swakopmund is roughly 260 km in a straight line.
	assert.InDelta(t, 261, HaversineKm(windhoek, swakopmund), 15)
	assert.InDelta(t, HaversineKm(windhoek, oshakati), HaversineKm(oshakati, windhoek), 1e-9)
}

func testOffices() []Office {
	return []Office{
		{ID: "1", Name: "Swakopmund NaTIS", Region: "Erongo", Coordinates: &swakopmund},
		{ID: "2", Name: "Windhoek Main", Region: "Khomas", Coordinates: &windhoek},
		{ID: "3", Name: "Mobile Unit", Region: "Khomas"},
		{ID: "4", Name: "Oshakati", Region: "Oshana", Coordinates: &oshakati},
		{ID: "5", Name: "Aranos", Region: "Hardap"},
	}
}

func ids(offices []OfficeDistance) []string {
	out := make([]string, 0, len(offices))
	for _, o := range offices {
		out = append(out, o.ID)
	}
	return out
}

func TestSortOffices_Distance(t *testing.T) {
	origin := Coordinates{Latitude: -22.57, Longitude: 17.08}
	list := WithDistances(testOffices(), &origin)
	SortOffices(list, OfficeSortDistance)

	assert.Equal(t, []string{"2", "1", "4", "3", "5"}, ids(list))
	require.NotNil(t, list[0].DistanceKm)
	assert.Less(t, *list[0].DistanceKm, 5.0)
	assert.Nil(t, list[3].DistanceKm)
}

func TestSortOffices_RegionThenName(t *testing.T) {
	list := WithDistances(testOffices(), nil)
	SortOffices(list, OfficeSortRegion)
	assert.Equal(t, []string{"1", "5", "3", "2", "4"}, ids(list))
	for _, o := range list {
		assert.Nil(t, o.DistanceKm)
	}
}

func TestSortOffices_Name(t *testing.T) {
	list := WithDistances(testOffices(), nil)
	SortOffices(list, OfficeSortName)
	assert.Equal(t, []string{"5", "3", "4", "1", "2"}, ids(list))
}

func TestGroupOffices(t *testing.T) {
	origin := windhoek
	list := WithDistances(testOffices(), &origin)
	SortOffices(list, OfficeSortDistance)

	groups := GroupOffices(list, OfficeSortDistance, true)
	require.Len(t, groups, 1)
	assert.Equal(t, AllOfficesGroup, groups[0].Name)
	assert.Len(t, groups[0].Offices, 5)

	// Distance ordering without an origin falls back to region sections.
	groups = GroupOffices(list, OfficeSortDistance, false)
	names := make([]string, 0, len(groups))
	for _, g := range groups {
		names = append(names, g.Name)
	}
	assert.Equal(t, []string{"Erongo", "Hardap", "Khomas", "Oshana"}, names)
}

func TestParseOfficeSort(t *testing.T) {
	assert.Equal(t, OfficeSortDistance, ParseOfficeSort(" Distance "))
	assert.Equal(t, OfficeSortName, ParseOfficeSort("name"))
	assert.Equal(t, OfficeSortRegion, ParseOfficeSort("bogus"))
}

func TestCoordinatesValid(t *testing.T) {
	var nilCoords *Coordinates
	assert.False(t, nilCoords.Valid())
	assert.False(t, (&Coordinates{}).Valid())
	assert.False(t, (&Coordinates{Latitude: 91, Longitude: 10}).Valid())
	assert.True(t, (&windhoek).Valid())
}
