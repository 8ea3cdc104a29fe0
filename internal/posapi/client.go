package posapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Client is the POS backend surface the console consumes. The backend owns
// all business logic; every method is a plain request/response round trip
// with no retries or caching.
type Client interface {
	QueueCounts(ctx context.Context) (QueueCounts, error)
	PendingOrderCounts(ctx context.Context) (PendingCounts, error)

	ListWaiters(ctx context.Context) ([]WaiterStats, error)
	ListWaitersDetailed(ctx context.Context) ([]WaiterStats, error)
	CheckWaiterAvailability(ctx context.Context) (WaiterAvailability, error)

	ListTables(ctx context.Context) ([]Table, error)
	TableStatus(ctx context.Context) (TableStatusSummary, error)

	ListPatrons(ctx context.Context) ([]Patron, error)
	PatronsWithoutOrders(ctx context.Context) ([]Patron, error)
	DineInPatronsWithOrders(ctx context.Context) ([]Patron, error)
	GetPatron(ctx context.Context, id int) (Patron, error)
	CheckDineInAvailability(ctx context.Context, groupSize int) (DineInAvailability, error)
	CreatePatron(ctx context.Context, orderType, groupSize int) (CreatedPatron, error)

	MenuWithDescriptions(ctx context.Context) ([]MenuItem, error)
	MenuByCategory(ctx context.Context, category string) ([]MenuItem, error)

	PendingOrders(ctx context.Context) ([]Order, error)
	UnpaidOrders(ctx context.Context) ([]Order, error)
	GetOrder(ctx context.Context, id int) (Order, error)
	OrderByPatron(ctx context.Context, patronID int) (Order, error)
	CreateOrder(ctx context.Context, patronID int, items []OrderItem) (OrderReceiptUpdate, error)
	AddItems(ctx context.Context, orderID int, items []OrderItem) (OrderReceiptUpdate, error)
	MarkPaid(ctx context.Context, orderID int) (PaymentResult, error)

	DailyReport(ctx context.Context) (DailyReport, error)
	OverviewReport(ctx context.Context) (OverviewReport, error)
	StaffReport(ctx context.Context) (StaffReport, error)
	MenuReport(ctx context.Context) (MenuReport, error)
	FinanceReport(ctx context.Context) (FinanceReport, error)
}

// APIError describes a failed backend call: which endpoint, and either the
// HTTP status the backend answered with or the transport error underneath.
type APIError struct {
	Method string
	Path   string
	Status int
	Detail string
	Err    error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("pos backend %s %s: %v", e.Method, e.Path, e.Err)
	}
	if e.Detail != "" {
		return fmt.Sprintf("pos backend %s %s: status %d: %s", e.Method, e.Path, e.Status, e.Detail)
	}
	return fmt.Sprintf("pos backend %s %s: status %d", e.Method, e.Path, e.Status)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// HTTPClient implements Client against the backend's REST surface.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewHTTPClient creates a backend client. baseURL includes the API prefix.
func NewHTTPClient(baseURL string) *HTTPClient {
	if baseURL == "" {
		baseURL = "http://localhost:8080/api" // Default POS backend URL
	}
	return &HTTPClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// errorBody is the backend's uniform error payload.
type errorBody struct {
	Error string `json:"error"`
}

func (c *HTTPClient) do(ctx context.Context, method, path string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return &APIError{Method: method, Path: path, Err: fmt.Errorf("encode request: %w", err)}
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return &APIError{Method: method, Path: path, Err: fmt.Errorf("create request: %w", err)}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &APIError{Method: method, Path: path, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb errorBody
		_ = json.NewDecoder(resp.Body).Decode(&eb)
		return &APIError{Method: method, Path: path, Status: resp.StatusCode, Detail: eb.Error}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &APIError{Method: method, Path: path, Status: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

func (c *HTTPClient) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *HTTPClient) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *HTTPClient) QueueCounts(ctx context.Context) (QueueCounts, error) {
	var qc QueueCounts
	err := c.get(ctx, "/patrons/queue-counts", &qc)
	return qc, err
}

func (c *HTTPClient) PendingOrderCounts(ctx context.Context) (PendingCounts, error) {
	var pc PendingCounts
	err := c.get(ctx, "/patrons/pending-counts", &pc)
	return pc, err
}

func (c *HTTPClient) ListWaiters(ctx context.Context) ([]WaiterStats, error) {
	var ws []WaiterStats
	err := c.get(ctx, "/waiters", &ws)
	return ws, err
}

func (c *HTTPClient) ListWaitersDetailed(ctx context.Context) ([]WaiterStats, error) {
	var ws []WaiterStats
	err := c.get(ctx, "/waiters/detailed", &ws)
	return ws, err
}

func (c *HTTPClient) CheckWaiterAvailability(ctx context.Context) (WaiterAvailability, error) {
	var wa WaiterAvailability
	err := c.get(ctx, "/waiters/availability/check-dinein", &wa)
	return wa, err
}

func (c *HTTPClient) ListTables(ctx context.Context) ([]Table, error) {
	var ts []Table
	err := c.get(ctx, "/tables", &ts)
	return ts, err
}

func (c *HTTPClient) TableStatus(ctx context.Context) (TableStatusSummary, error) {
	var s TableStatusSummary
	err := c.get(ctx, "/tables/status", &s)
	return s, err
}

func (c *HTTPClient) ListPatrons(ctx context.Context) ([]Patron, error) {
	var ps []Patron
	err := c.get(ctx, "/patrons", &ps)
	return ps, err
}

func (c *HTTPClient) PatronsWithoutOrders(ctx context.Context) ([]Patron, error) {
	var ps []Patron
	err := c.get(ctx, "/patrons/without-orders", &ps)
	return ps, err
}

func (c *HTTPClient) DineInPatronsWithOrders(ctx context.Context) ([]Patron, error) {
	var ps []Patron
	err := c.get(ctx, "/patrons/with-orders/dinein", &ps)
	return ps, err
}

func (c *HTTPClient) GetPatron(ctx context.Context, id int) (Patron, error) {
	var p Patron
	err := c.get(ctx, fmt.Sprintf("/patrons/%d", id), &p)
	return p, err
}

func (c *HTTPClient) CheckDineInAvailability(ctx context.Context, groupSize int) (DineInAvailability, error) {
	var da DineInAvailability
	err := c.get(ctx, fmt.Sprintf("/patrons/check-dinein-availability?groupSize=%d", groupSize), &da)
	return da, err
}

func (c *HTTPClient) CreatePatron(ctx context.Context, orderType, groupSize int) (CreatedPatron, error) {
	body := map[string]int{
		"orderType": orderType,
		"groupSize": groupSize,
	}
	var cp CreatedPatron
	err := c.post(ctx, "/patrons/add", body, &cp)
	return cp, err
}

func (c *HTTPClient) MenuWithDescriptions(ctx context.Context) ([]MenuItem, error) {
	var ms []MenuItem
	err := c.get(ctx, "/menu/items-with-descriptions", &ms)
	return ms, err
}

func (c *HTTPClient) MenuByCategory(ctx context.Context, category string) ([]MenuItem, error) {
	var ms []MenuItem
	err := c.get(ctx, "/menu/categories/"+category, &ms)
	return ms, err
}

func (c *HTTPClient) PendingOrders(ctx context.Context) ([]Order, error) {
	var os []Order
	err := c.get(ctx, "/orders/pending", &os)
	return os, err
}

func (c *HTTPClient) UnpaidOrders(ctx context.Context) ([]Order, error) {
	var os []Order
	err := c.get(ctx, "/orders/unpaid", &os)
	return os, err
}

func (c *HTTPClient) GetOrder(ctx context.Context, id int) (Order, error) {
	var o Order
	err := c.get(ctx, fmt.Sprintf("/orders/%d", id), &o)
	return o, err
}

func (c *HTTPClient) OrderByPatron(ctx context.Context, patronID int) (Order, error) {
	var o Order
	err := c.get(ctx, fmt.Sprintf("/orders/patron/%d", patronID), &o)
	return o, err
}

func (c *HTTPClient) CreateOrder(ctx context.Context, patronID int, items []OrderItem) (OrderReceiptUpdate, error) {
	body := struct {
		PatronID int         `json:"patronId"`
		Items    []OrderItem `json:"items"`
	}{PatronID: patronID, Items: items}
	var ru OrderReceiptUpdate
	err := c.post(ctx, "/orders/create", body, &ru)
	return ru, err
}

func (c *HTTPClient) AddItems(ctx context.Context, orderID int, items []OrderItem) (OrderReceiptUpdate, error) {
	var ru OrderReceiptUpdate
	err := c.post(ctx, fmt.Sprintf("/orders/%d/add-items", orderID), items, &ru)
	return ru, err
}

func (c *HTTPClient) MarkPaid(ctx context.Context, orderID int) (PaymentResult, error) {
	var pr PaymentResult
	err := c.post(ctx, fmt.Sprintf("/orders/%d/mark-paid", orderID), nil, &pr)
	return pr, err
}

func (c *HTTPClient) DailyReport(ctx context.Context) (DailyReport, error) {
	var r DailyReport
	err := c.get(ctx, "/reports/daily", &r)
	return r, err
}

func (c *HTTPClient) OverviewReport(ctx context.Context) (OverviewReport, error) {
	var r OverviewReport
	err := c.get(ctx, "/reports/overview", &r)
	return r, err
}

func (c *HTTPClient) StaffReport(ctx context.Context) (StaffReport, error) {
	var r StaffReport
	err := c.get(ctx, "/reports/staff", &r)
	return r, err
}

func (c *HTTPClient) MenuReport(ctx context.Context) (MenuReport, error) {
	var r MenuReport
	err := c.get(ctx, "/reports/menu", &r)
	return r, err
}

func (c *HTTPClient) FinanceReport(ctx context.Context) (FinanceReport, error) {
	var r FinanceReport
	err := c.get(ctx, "/reports/finance", &r)
	return r, err
}
