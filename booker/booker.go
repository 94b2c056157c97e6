package booker

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// errorBody is what the API sends with a non-2xx booking response.
type errorBody struct {
	Message string `json:"message"`
}

// Client writes bookings to the hotel API.
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

// BookingsURL returns the create-booking endpoint for a room.
func BookingsURL(baseURL, hotelID, roomID string) string {
	return fmt.Sprintf("%s/api/getHotels/%s/rooms/%s/bookings",
		strings.TrimRight(baseURL, "/"), url.PathEscape(hotelID), url.PathEscape(roomID))
}

// CreateBooking posts req for the room. A non-2xx answer comes back as a
// *RejectedError carrying the server's message, anything that prevents
// reading a response as a *TransportError.
func (c *Client) CreateBooking(ctx context.Context, hotelID, roomID string, req BookingRequest) error {
	body, err := json.Marshal(req)
	if err != nil {
		return &TransportError{Err: err}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, BookingsURL(c.BaseURL, hotelID, roomID), bytes.NewReader(body))
	if err != nil {
		return &TransportError{Err: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(httpReq)
	if err != nil {
		return &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode <= 299 {
		// The body is not used, drain it so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	var data errorBody
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return &TransportError{Err: fmt.Errorf("failed to decode booking error response: %w", err)}
	}
	return &RejectedError{Status: resp.StatusCode, Message: data.Message}
}
