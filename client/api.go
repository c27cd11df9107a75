package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/lumina-dine/table-order/models"
	"github.com/lumina-dine/table-order/services"
	"github.com/lumina-dine/table-order/utils"
)

// Client is the typed HTTP client both viewers (customer device, kitchen
// display) use against the ordering API. It carries no state beyond the
// connection; all state lives server-side and is re-fetched wholesale.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// APIError is a structured failure from the server, carrying the
// machine-readable kind from the response envelope.
type APIError struct {
	StatusCode int
	Kind       string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d (%s): %s", e.StatusCode, e.Kind, e.Message)
}

// Retryable reports whether re-issuing the same request may succeed. Only
// store faults qualify; not-found, invalid-input and invalid-transition are
// permanent for the given request.
func (e *APIError) Retryable() bool {
	return e.Kind == string(utils.KindStoreFault) || e.Kind == ""
}

type envelope struct {
	Status  bool            `json:"status"`
	Kind    string          `json:"kind"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (c *Client) do(method, path string, body interface{}, out interface{}) error {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, c.BaseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("decode response for %s %s: %w", method, path, err)
	}

	if resp.StatusCode >= 400 || !env.Status {
		return &APIError{StatusCode: resp.StatusCode, Kind: env.Kind, Message: env.Message}
	}
	if out != nil && env.Data != nil {
		return json.Unmarshal(env.Data, out)
	}
	return nil
}

func (c *Client) GetMenu() ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := c.do(http.MethodGet, "/menu", nil, &items)
	return items, err
}

func (c *Client) GetTables() ([]models.Table, error) {
	var tables []models.Table
	err := c.do(http.MethodGet, "/tables", nil, &tables)
	return tables, err
}

func (c *Client) GetTable(code string) (*models.Table, error) {
	var table models.Table
	if err := c.do(http.MethodGet, "/tables/"+url.PathEscape(code), nil, &table); err != nil {
		return nil, err
	}
	return &table, nil
}

func (c *Client) RequestAssistance(code string, needs bool) (*models.Table, error) {
	body := map[string]bool{"needsAssistance": needs}
	var table models.Table
	if err := c.do(http.MethodPatch, "/tables/"+url.PathEscape(code), body, &table); err != nil {
		return nil, err
	}
	return &table, nil
}

// GetOrders fetches the full authoritative order list: every table when
// tableCode is empty (kitchen), one table's orders otherwise (customer).
func (c *Client) GetOrders(tableCode string) ([]models.Order, error) {
	path := "/orders"
	if tableCode != "" {
		path += "?tableId=" + url.QueryEscape(tableCode)
	}
	var orders []models.Order
	err := c.do(http.MethodGet, path, nil, &orders)
	return orders, err
}

func (c *Client) CreateOrder(tableCode string, items []services.OrderItemRequest) (*models.Order, error) {
	body := map[string]interface{}{
		"tableId": tableCode,
		"items":   items,
	}
	var order models.Order
	if err := c.do(http.MethodPost, "/orders", body, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) UpdateOrder(id uint, req services.OrderUpdateRequest) (*models.Order, error) {
	var order models.Order
	if err := c.do(http.MethodPatch, fmt.Sprintf("/orders/%d", id), req, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// SubmitCart converts the cart into a creation request. The cart is cleared
// only on success so the customer can retry a failed submission as-is.
func (c *Client) SubmitCart(tableCode string, cart *Cart) (*models.Order, error) {
	order, err := c.CreateOrder(tableCode, cart.Request())
	if err != nil {
		return nil, err
	}
	cart.Clear()
	return order, nil
}
