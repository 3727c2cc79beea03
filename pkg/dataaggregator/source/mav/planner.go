package mav

import (
	"time"

	"github.com/jinzhu/copier"
	"github.com/travigo/mavfares/pkg/dataaggregator/query"
	"github.com/travigo/mavfares/pkg/util"
)

// WindowLength is the widest span of departures a single provider request covers
const WindowLength = 480 * time.Minute

// planWindows splits a query into the provider requests needed to cover its duration.
// Windowed descriptors always search by departure.
func planWindows(q query.FarePrices) ([]query.FarePrices, error) {
	if !q.IsWindowed() {
		return []query.FarePrices{q}, nil
	}

	requestCount := util.MinutesCeil(q.Duration, WindowLength)
	windowMinutes := int(WindowLength / time.Minute)

	windows := make([]query.FarePrices, 0, requestCount)
	for i := 0; i < requestCount; i++ {
		var window query.FarePrices
		if err := copier.CopyWithOption(&window, &q, copier.Option{DeepCopy: true}); err != nil {
			return nil, err
		}

		window.DateTime = util.AddMinutes(q.DateTime, i*windowMinutes)
		window.IsArrivalDate = false

		windows = append(windows, window)
	}

	return windows, nil
}
