package dataaggregator

import (
	"context"
	"errors"
	"reflect"

	"github.com/rs/zerolog/log"
)

type Aggregator struct {
	Sources []DataSource
}

var GlobalAggregator Aggregator

var NoMatchingSourceError = errors.New("Failed to find a matching Data Source for type")

func (a *Aggregator) RegisterSource(source DataSource) {
	a.Sources = append(a.Sources, source)

	log.Debug().Str("name", source.GetName()).Msg("Registering new Data Source")
}

func Lookup[T any](ctx context.Context, query any) (T, error) {
	return LookupFrom[T](ctx, &GlobalAggregator, query)
}

// LookupFrom asks the first source in a supporting T to answer the query
func LookupFrom[T any](ctx context.Context, a *Aggregator, query any) (T, error) {
	var empty T

	lookupType := reflect.TypeOf(*new(T))
	if lookupType.Kind() == reflect.Pointer {
		lookupType = lookupType.Elem()
	}

	for _, source := range a.Sources {
		matches := false

		for _, supportedType := range source.Supports() {
			if lookupType == supportedType {
				matches = true
				break
			}
		}

		if !matches {
			continue
		}

		returnValue, returnError := source.Lookup(ctx, query)

		if returnValue == nil {
			return empty, returnError
		}

		typedValue, ok := returnValue.(T)
		if !ok {
			return empty, errors.Join(returnError, errors.New("Data Source returned an unexpected type"))
		}

		return typedValue, returnError
	}

	return empty, NoMatchingSourceError
}
