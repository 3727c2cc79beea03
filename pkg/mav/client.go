package mav

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	iso8601 "github.com/senseyeio/duration"
	"github.com/travigo/mavfares/pkg/util"
)

const (
	DefaultEndpoint = "https://jegy-a.mav.hu/IK_API_PROD/api/OfferRequestApi/GetOfferRequest"
	DefaultLanguage = "en"
	DefaultTimeout  = 30 * time.Second
)

// Client posts offer requests to the MAV ticketing API
type Client struct {
	HTTPClient *http.Client
	Endpoint   string
	Language   string

	// NewSessionID generates the UserSessionId header, one per call
	NewSessionID func() string
}

func NewClient() *Client {
	return &Client{
		HTTPClient:   &http.Client{Timeout: DefaultTimeout},
		Endpoint:     DefaultEndpoint,
		Language:     DefaultLanguage,
		NewSessionID: uuid.NewString,
	}
}

// NewClientFromEnvironment reads MAVFARES_ENDPOINT, MAVFARES_LANGUAGE and MAVFARES_HTTP_TIMEOUT
func NewClientFromEnvironment() (*Client, error) {
	client := NewClient()

	client.Endpoint = util.GetEnvironmentVariable("ENDPOINT", DefaultEndpoint)
	client.Language = util.GetEnvironmentVariable("LANGUAGE", DefaultLanguage)

	if timeoutString := util.GetEnvironmentVariable("HTTP_TIMEOUT", ""); timeoutString != "" {
		timeout, err := ParseISODuration(timeoutString)
		if err != nil {
			return nil, fmt.Errorf("invalid MAVFARES_HTTP_TIMEOUT: %w", err)
		}

		client.HTTPClient.Timeout = timeout
	}

	return client, nil
}

// ParseISODuration converts an ISO8601 duration such as PT18H into a time.Duration
func ParseISODuration(value string) (time.Duration, error) {
	duration, err := iso8601.ParseISO8601(value)
	if err != nil {
		return 0, err
	}

	// Calendar components are resolved against a fixed date so the result is stable
	reference := time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

	return duration.Shift(reference).Sub(reference), nil
}

// TransportError is any failure to obtain a decoded offer response
type TransportError struct {
	StatusCode int
	Status     string
	Err        error
}

func (e *TransportError) Error() string {
	switch {
	case e.Err != nil && e.StatusCode != 0:
		return fmt.Sprintf("mav offer request (status %d): %v", e.StatusCode, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("mav offer request failed: %v", e.Err)
	default:
		return fmt.Sprintf("mav offer request failed with status %s", e.Status)
	}
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func (c *Client) GetOffers(ctx context.Context, offerRequest *OfferRequest) (*OfferResponse, error) {
	body, err := json.Marshal(offerRequest)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	sessionID := c.NewSessionID()

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("UserSessionId", sessionID)
	req.Header.Set("Language", c.Language)

	startTime := time.Now()

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	log.Debug().
		Str("session", sessionID).
		Str("travelstartdate", offerRequest.TravelStartDate).
		Int("status", resp.StatusCode).
		Str("latency", time.Since(startTime).String()).
		Msg("MAV offer request")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)

		return nil, &TransportError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
		}
	}

	responseBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{StatusCode: resp.StatusCode, Status: resp.Status, Err: err}
	}

	var offerResponse OfferResponse
	if err := json.Unmarshal(responseBytes, &offerResponse); err != nil {
		return nil, &TransportError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Err:        fmt.Errorf("decode offer response: %w", err),
		}
	}

	return &offerResponse, nil
}
