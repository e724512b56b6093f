package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/clement8426/trail-mosaic-sub000/internal/shared/geo"
)

// Client is a thin reverse-geocoding client. It is best effort: any
// failure is logged and reported as an empty place name, and callers
// leave their location field unset.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		http:    &http.Client{Timeout: 5 * time.Second},
	}
}

type reverseResponse struct {
	Features []struct {
		PlaceName string `json:"place_name"`
	} `json:"features"`
}

// Reverse resolves a coordinate to a place name. An empty string means
// the lookup failed or found nothing.
func (c *Client) Reverse(ctx context.Context, coord geo.Coordinate) string {
	if c.baseURL == "" {
		return ""
	}

	endpoint := fmt.Sprintf("%s/%f,%f.json", c.baseURL, coord.Lng(), coord.Lat())
	u, err := url.Parse(endpoint)
	if err != nil {
		log.Printf("geocode: bad endpoint: %v", err)
		return ""
	}
	q := u.Query()
	if c.token != "" {
		q.Set("access_token", c.token)
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		log.Printf("geocode: build request: %v", err)
		return ""
	}

	resp, err := c.http.Do(req)
	if err != nil {
		log.Printf("geocode: reverse lookup failed: %v", err)
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("geocode: reverse lookup status %d", resp.StatusCode)
		return ""
	}

	var decoded reverseResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		log.Printf("geocode: decode response: %v", err)
		return ""
	}
	if len(decoded.Features) == 0 {
		return ""
	}
	return decoded.Features[0].PlaceName
}
