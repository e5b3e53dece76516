package geonames

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Client клиент GeoNames для обратного геокодирования почтовых индексов
type Client struct {
	baseURL    string
	username   string
	httpClient *http.Client
	log        Logger
}

func NewClient(baseURL, username string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL:  baseURL,
		username: username,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// FindNearbyPostalCodes почтовые индексы в радиусе radiusKm от точки, не более maxRows
func (c *Client) FindNearbyPostalCodes(ctx context.Context, lat, lon float64, radiusKm, maxRows int) ([]PostalCode, error) {
	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("lng", strconv.FormatFloat(lon, 'f', -1, 64))
	q.Set("username", c.username)
	q.Set("radius", strconv.Itoa(radiusKm))
	q.Set("maxRows", strconv.Itoa(maxRows))

	endpoint := fmt.Sprintf("%s/findNearbyPostalCodesJSON?%s", c.baseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var out nearbyResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if out.Status != nil {
		c.log.Warn("GeoNames rejected request: code=%d message=%s", out.Status.Value, out.Status.Message)
		return nil, fmt.Errorf("%w: geonames status %d: %s", ErrInvalidResponse, out.Status.Value, out.Status.Message)
	}

	return out.PostalCodes, nil
}
