package form

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/goccy/go-json"

	"github.com/avstrong/stayhotel/internal/booking"
	"github.com/avstrong/stayhotel/internal/i18n"
)

const bookingPath = "/api/rooms"

// HTTPSubmitter posts bookings to the site's booking endpoint.
type HTTPSubmitter struct {
	endpoint string
	client   *http.Client
	locale   i18n.Locale
}

func NewHTTPSubmitter(baseURL string, client *http.Client, locale i18n.Locale) *HTTPSubmitter {
	if client == nil {
		client = http.DefaultClient
	}

	return &HTTPSubmitter{
		endpoint: strings.TrimRight(baseURL, "/") + bookingPath,
		client:   client,
		locale:   locale,
	}
}

// Submit returns the decoded body for any status code; only transport and
// decoding problems are errors.
func (s *HTTPSubmitter) Submit(ctx context.Context, data booking.FormData) (*Response, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("encode booking: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build booking request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	if s.locale != "" {
		req.Header.Set("Accept-Language", string(s.locale))
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("post booking: %w", err)
	}
	defer resp.Body.Close()

	var out Response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode booking response (status %d): %w", resp.StatusCode, err)
	}

	return &out, nil
}
