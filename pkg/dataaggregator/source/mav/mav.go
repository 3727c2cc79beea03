package mav

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/travigo/mavfares/pkg/ctdf"
	"github.com/travigo/mavfares/pkg/dataaggregator/query"
	"github.com/travigo/mavfares/pkg/dataaggregator/source"
	mavapi "github.com/travigo/mavfares/pkg/mav"
)

var InvalidQueryError = errors.New("invalid fare query")

type OfferRequester interface {
	GetOffers(ctx context.Context, offerRequest *mavapi.OfferRequest) (*mavapi.OfferResponse, error)
}

type Source struct {
	Offers     OfferRequester
	Normalizer *mavapi.Normalizer

	Now func() time.Time
}

func NewSource(offers OfferRequester) Source {
	return Source{
		Offers:     offers,
		Normalizer: mavapi.NewNormalizer(),
		Now:        time.Now,
	}
}

func NewSourceFromEnvironment() (Source, error) {
	client, err := mavapi.NewClientFromEnvironment()
	if err != nil {
		return Source{}, err
	}

	return NewSource(client), nil
}

func (s Source) GetName() string {
	return "MAV Fares"
}

func (s Source) Supports() []reflect.Type {
	return []reflect.Type{
		reflect.TypeOf([]*ctdf.Journey{}),
		reflect.TypeOf(ctdf.FareSearchResults{}),
	}
}

func (s Source) Lookup(ctx context.Context, q any) (interface{}, error) {
	switch q := q.(type) {
	case query.FarePrices:
		searchResults, err := s.Search(ctx, q)
		if err != nil {
			return nil, err
		}

		return searchResults.Journeys, nil
	case query.FareSearch:
		searchResults, err := s.Search(ctx, q.FarePrices)
		if err != nil {
			return nil, err
		}

		return searchResults, nil
	default:
		return nil, source.UnsupportedSourceError
	}
}

// QueryPrices returns the priced journeys between two stations. A zero when means now and
// nil options means the defaults.
func (s Source) QueryPrices(ctx context.Context, origin string, destination string, when time.Time, opts *query.FareOptions) ([]*ctdf.Journey, error) {
	fareOptions := query.DefaultFareOptions()
	if opts != nil {
		fareOptions = *opts
	}

	searchResults, err := s.Search(ctx, query.FarePrices{
		OriginStationCode:      origin,
		DestinationStationCode: destination,
		DateTime:               when,
		FareOptions:            fareOptions,
	})
	if err != nil {
		return nil, err
	}

	return searchResults.Journeys, nil
}

func (s Source) Search(ctx context.Context, q query.FarePrices) (*ctdf.FareSearchResults, error) {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}

	q = q.WithDefaults(now())

	if err := errors.Join(q.Validate(), mavapi.ValidateTravellers(q.Travellers)); err != nil {
		return nil, fmt.Errorf("%w: %w", InvalidQueryError, err)
	}

	windows, err := planWindows(q)
	if err != nil {
		return nil, err
	}

	return s.mergeWindows(ctx, q, windows)
}
