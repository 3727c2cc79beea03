package prices

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travigo/mavfares/pkg/dataaggregator/query"
)

func TestBuildFareQuery(t *testing.T) {
	q, err := BuildFareQuery("008101003", "005510009", Parameters{
		DateTime:       "2026-10-19T18:00:00+02:00",
		Arrival:        true,
		Class:          1,
		Direct:         true,
		LongerTransfer: true,
		Via:            []string{"005501362:30", "005501024"},
		Travellers:     []string{"8", "0", "6:1"},
	})

	require.NoError(t, err)
	assert.Equal(t, "008101003", q.OriginStationCode)
	assert.Equal(t, "005510009", q.DestinationStationCode)
	assert.True(t, q.DateTime.Equal(time.Date(2026, 10, 19, 16, 0, 0, 0, time.UTC)))
	assert.True(t, q.IsArrivalDate)
	assert.True(t, q.SearchesArrival())
	assert.Equal(t, 1, q.Class)
	assert.True(t, q.DirectConnection)
	assert.True(t, q.LongerTransferTime)
	assert.False(t, q.SeatReservation)
	assert.Equal(t, []query.IntermediateStation{
		{StationCode: "005501362", MinDwellMinutes: 30},
		{StationCode: "005501024"},
	}, q.IntermediateStations)
	assert.Equal(t, []query.Traveller{
		{Type: 8, Discounts: []int{}},
		{Type: 0, Discounts: []int{}},
		{Type: 6, Discounts: []int{1}},
	}, q.Travellers)
}

func TestBuildFareQueryDuration(t *testing.T) {
	q, err := BuildFareQuery("008101003", "005510009", Parameters{Duration: "PT18H", Arrival: true})

	require.NoError(t, err)
	assert.Equal(t, 18*time.Hour, q.Duration)
	assert.False(t, q.SearchesArrival())
	assert.True(t, q.DateTime.IsZero())
}

func TestBuildFareQueryCollectsErrors(t *testing.T) {
	_, err := BuildFareQuery("008101003", "005510009", Parameters{
		DateTime:   "19/10/2026",
		Duration:   "eighteen hours",
		Via:        []string{":30"},
		Travellers: []string{"8:x"},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "datetime")
	assert.Contains(t, err.Error(), "duration")
	assert.Contains(t, err.Error(), "no station code")
	assert.Contains(t, err.Error(), "non numeric discount")
}

func TestParseTraveller(t *testing.T) {
	traveller, err := ParseTraveller(" 7:3, 10 ")
	require.NoError(t, err)
	assert.Equal(t, query.Traveller{Type: 7, Discounts: []int{3, 10}}, traveller)

	traveller, err = ParseTraveller("9:")
	require.NoError(t, err)
	assert.Equal(t, query.Traveller{Type: 9, Discounts: []int{}}, traveller)

	_, err = ParseTraveller("")
	assert.Error(t, err)
}

func TestParseIntermediateStation(t *testing.T) {
	_, err := ParseIntermediateStation("005501362:-5")
	assert.Error(t, err)

	station, err := ParseIntermediateStation("005501362:0")
	require.NoError(t, err)
	assert.Equal(t, query.IntermediateStation{StationCode: "005501362"}, station)
}
