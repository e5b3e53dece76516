package georef

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	localityFields = "id,nombre,provincia,centroide"
	maxLocalities  = 15
)

// Client клиент API нормализации географических данных Аргентины (Georef)
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

// SearchLocalities поиск населённых пунктов по названию
func (c *Client) SearchLocalities(ctx context.Context, name string) ([]Locality, error) {
	q := url.Values{}
	q.Set("nombre", name)
	q.Set("campos", localityFields)
	q.Set("max", fmt.Sprint(maxLocalities))

	var resp localitiesResponse
	if err := c.get(ctx, "/localidades", q, &resp); err != nil {
		return nil, err
	}
	if resp.Localidades == nil {
		return nil, fmt.Errorf("%w: response has no localidades", ErrInvalidResponse)
	}

	return resp.Localidades, nil
}

// GetPostalCodes почтовые индексы населённого пункта
func (c *Client) GetPostalCodes(ctx context.Context, localityID string) ([]string, error) {
	q := url.Values{}
	q.Set("localidad_censal_id", localityID)

	var resp postalCodesResponse
	if err := c.get(ctx, "/codigos-postales", q, &resp); err != nil {
		return nil, err
	}

	codes := make([]string, 0, len(resp.CodigosPostales))
	for _, cp := range resp.CodigosPostales {
		if cp.Code != "" {
			codes = append(codes, cp.Code)
		}
	}
	return codes, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, dst interface{}) error {
	endpoint := fmt.Sprintf("%s%s?%s", c.baseURL, path, query.Encode())

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
		c.log.Warn("Georef %s returned status %d", path, resp.StatusCode)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}
