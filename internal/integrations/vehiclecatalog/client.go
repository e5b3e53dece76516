package vehiclecatalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Client клиент каталога транспортных средств NHTSA vPIC
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetMakes список марок легковых автомобилей
func (c *Client) GetMakes(ctx context.Context) ([]Make, error) {
	endpoint := fmt.Sprintf("%s/GetMakesForVehicleType/car?format=json", c.baseURL)

	var resp envelope[Make]
	if err := c.get(ctx, endpoint, &resp); err != nil {
		return nil, err
	}

	c.log.Info("Vehicle catalog returned %d makes", len(resp.Results))
	return resp.Results, nil
}

// GetModelsForMake список моделей марки по её названию
func (c *Client) GetModelsForMake(ctx context.Context, makeName string) ([]Model, error) {
	endpoint := fmt.Sprintf("%s/GetModelsForMake/%s?format=json", c.baseURL, url.PathEscape(makeName))

	var resp envelope[Model]
	if err := c.get(ctx, endpoint, &resp); err != nil {
		return nil, err
	}

	c.log.Info("Vehicle catalog returned %d models for make=%s", len(resp.Results), makeName)
	return resp.Results, nil
}

func (c *Client) get(ctx context.Context, endpoint string, dst interface{ results() bool }) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	// ответ без поля Results считается некорректным
	if !dst.results() {
		return fmt.Errorf("%w: response has no Results", ErrInvalidResponse)
	}

	return nil
}

func (e *envelope[T]) results() bool {
	return e.Results != nil
}
