package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// errNotOK is what a non-2xx rooms response is reported as. The body is not read.
var errNotOK = errors.New("Network response was not ok")

// LoadError reports why a hotel's catalog could not be loaded.
type LoadError struct {
	HotelID string
	// Status is the HTTP status of a non-2xx response, zero for transport failures.
	Status int
	Err    error
}

func (e *LoadError) Error() string {
	return e.Err.Error()
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Client reads room catalogs from the hotel API.
type Client struct {
	HTTP    *http.Client
	BaseURL string
}

// NewClient returns a Client for the API at baseURL. A zero timeout means none.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		HTTP:    &http.Client{Timeout: timeout},
		BaseURL: strings.TrimRight(baseURL, "/"),
	}
}

// RoomsURL returns the rooms endpoint for a hotel.
func RoomsURL(baseURL, hotelID string) string {
	return fmt.Sprintf("%s/api/getHotels/%s/rooms", strings.TrimRight(baseURL, "/"), url.PathEscape(hotelID))
}

// FetchRooms issues a single GET for the hotel's room list.
func (c *Client) FetchRooms(ctx context.Context, hotelID string) ([]Room, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, RoomsURL(c.BaseURL, hotelID), nil)
	if err != nil {
		return nil, &LoadError{HotelID: hotelID, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, &LoadError{HotelID: hotelID, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &LoadError{HotelID: hotelID, Status: resp.StatusCode, Err: errNotOK}
	}

	var rooms []Room
	if err := json.NewDecoder(resp.Body).Decode(&rooms); err != nil {
		return nil, &LoadError{HotelID: hotelID, Err: fmt.Errorf("failed to decode rooms: %w", err)}
	}
	return rooms, nil
}
