package mav

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"
	"github.com/travigo/mavfares/pkg/ctdf"
	"github.com/travigo/mavfares/pkg/dataaggregator/query"
	mavapi "github.com/travigo/mavfares/pkg/mav"
	"github.com/travigo/mavfares/pkg/util"
	"golang.org/x/exp/slices"
)

type windowResult struct {
	Index    int
	Journeys []*ctdf.Journey
	Err      error
}

func (s Source) queryWindow(ctx context.Context, index int, window query.FarePrices) windowResult {
	response, err := s.Offers.GetOffers(ctx, mavapi.NewOfferRequest(window))
	if err != nil {
		return windowResult{Index: index, Err: err}
	}

	return windowResult{
		Index:    index,
		Journeys: s.Normalizer.Journeys(response),
	}
}

// mergeWindows runs every window concurrently and combines whatever succeeded
func (s Source) mergeWindows(ctx context.Context, q query.FarePrices, windows []query.FarePrices) (*ctdf.FareSearchResults, error) {
	p := pool.NewWithResults[windowResult]()

	for index, window := range windows {
		index, window := index, window
		p.Go(func() windowResult {
			return s.queryWindow(ctx, index, window)
		})
	}

	results := p.Wait()

	slices.SortFunc(results, func(a, b windowResult) int {
		return a.Index - b.Index
	})

	searchResults := &ctdf.FareSearchResults{
		Journeys: []*ctdf.Journey{},
		Metadata: ctdf.SearchMetadata{
			WindowsQueried: len(windows),
		},
	}

	for _, result := range results {
		if result.Err != nil {
			if !q.IsWindowed() {
				return nil, fmt.Errorf("mav offer search: %w", result.Err)
			}

			log.Warn().
				Err(result.Err).
				Int("window", result.Index).
				Str("departure", windows[result.Index].DateTime.String()).
				Msg("MAV search window failed")

			searchResults.Metadata.WindowsFailed++
			continue
		}

		searchResults.Metadata.WindowsSucceeded++
		searchResults.Journeys = append(searchResults.Journeys, result.Journeys...)
	}

	if q.IsWindowed() {
		windowEnd := q.DateTime.Add(q.Duration)

		util.InPlaceFilter(&searchResults.Journeys, func(journey *ctdf.Journey) bool {
			return !journey.DepartureTime().After(windowEnd)
		})
	}

	searchResults.Journeys = ctdf.FilterIdenticalJourneys(searchResults.Journeys)

	return searchResults, nil
}
