package mav

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travigo/mavfares/pkg/dataaggregator/query"
)

func testClient(endpoint string) *Client {
	client := NewClient()
	client.Endpoint = endpoint
	client.NewSessionID = func() string { return "test-session" }

	return client
}

func testOfferRequest() *OfferRequest {
	return NewOfferRequest(query.FarePrices{
		OriginStationCode:      "008101003",
		DestinationStationCode: "005510009",
		DateTime:               time.Date(2026, 10, 19, 8, 0, 0, 0, time.UTC),
		FareOptions:            query.DefaultFareOptions(),
	})
}

func TestClientGetOffers(t *testing.T) {
	fixture, err := os.ReadFile("testdata/offer_response.json")
	require.NoError(t, err)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "test-session", r.Header.Get("UserSessionId"))
		assert.Equal(t, "en", r.Header.Get("Language"))

		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)

		var offerRequest OfferRequest
		assert.NoError(t, json.Unmarshal(body, &offerRequest))
		assert.Equal(t, "008101003", offerRequest.StartStationCode)
		assert.Equal(t, "2026-10-19T08:00:00.000Z", offerRequest.TravelStartDate)

		w.Header().Set("Content-Type", "application/json")
		w.Write(fixture)
	}))
	defer server.Close()

	response, err := testClient(server.URL).GetOffers(context.Background(), testOfferRequest())

	require.NoError(t, err)
	require.Len(t, response.Route, 3)
	assert.Equal(t, "OFFER-1", response.Route[0].SameOfferID)
}

func TestClientGetOffersStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	response, err := testClient(server.URL).GetOffers(context.Background(), testOfferRequest())

	assert.Nil(t, response)

	var transportError *TransportError
	require.True(t, errors.As(err, &transportError))
	assert.Equal(t, http.StatusServiceUnavailable, transportError.StatusCode)
	assert.Contains(t, err.Error(), "503")
}

func TestClientGetOffersMalformedJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"route": [`))
	}))
	defer server.Close()

	_, err := testClient(server.URL).GetOffers(context.Background(), testOfferRequest())

	var transportError *TransportError
	require.True(t, errors.As(err, &transportError))
	assert.Equal(t, http.StatusOK, transportError.StatusCode)
	assert.Error(t, transportError.Unwrap())
}

func TestClientGetOffersNetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	endpoint := server.URL
	server.Close()

	_, err := testClient(endpoint).GetOffers(context.Background(), testOfferRequest())

	var transportError *TransportError
	require.True(t, errors.As(err, &transportError))
	assert.Zero(t, transportError.StatusCode)
}

func TestNewClientFromEnvironment(t *testing.T) {
	t.Setenv("MAVFARES_ENDPOINT", "http://localhost:9999/offers")
	t.Setenv("MAVFARES_LANGUAGE", "hu")
	t.Setenv("MAVFARES_HTTP_TIMEOUT", "PT45S")

	client, err := NewClientFromEnvironment()

	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9999/offers", client.Endpoint)
	assert.Equal(t, "hu", client.Language)
	assert.Equal(t, 45*time.Second, client.HTTPClient.Timeout)
	assert.NotEmpty(t, client.NewSessionID())
}

func TestNewClientFromEnvironmentInvalidTimeout(t *testing.T) {
	t.Setenv("MAVFARES_HTTP_TIMEOUT", "thirty seconds")

	_, err := NewClientFromEnvironment()

	assert.Error(t, err)
}

func TestParseISODuration(t *testing.T) {
	duration, err := ParseISODuration("PT18H")
	require.NoError(t, err)
	assert.Equal(t, 18*time.Hour, duration)

	duration, err = ParseISODuration("P1DT30M")
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour+30*time.Minute, duration)
}
