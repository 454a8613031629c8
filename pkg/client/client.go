// Package client is a Go client for the spendbin API.
//
// Besides plain API calls, it keeps a Projection of a budget up to date
// while expenses are recorded.
package client

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

	"github.com/shopspring/decimal"
)

// Budget is the budget of a day as returned by the API.
type Budget struct {
	ID                  uint64          `json:"id"`
	Day                 string          `json:"day"`
	Amount              decimal.Decimal `json:"amount"`
	Remaining           decimal.Decimal `json:"remaining"`
	NeedsReconciliation bool            `json:"needsReconciliation"`
}

// Expense is an expense as returned by the API.
type Expense struct {
	ID          uint64          `json:"id"`
	BudgetID    uint64          `json:"budgetId"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Date        time.Time       `json:"date"`
}

// APIError is an error response of the API.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("spendbin API returned %d: %s", e.Status, e.Message)
}

// Client calls the spendbin API with a bearer token.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// New returns a client for the API at baseURL. If httpClient is nil,
// http.DefaultClient is used.
func New(baseURL, token string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		token:   token,
		http:    httpClient,
	}
}

// CreateBudget creates the budget for the day. An empty day is today.
func (c *Client) CreateBudget(ctx context.Context, day string, amount decimal.Decimal) (Budget, error) {
	body := map[string]any{"amount": amount}
	if day != "" {
		body["day"] = day
	}

	var budget Budget
	err := c.do(ctx, http.MethodPost, "/v1/budgets", body, &budget)
	return budget, err
}

// Budget returns the budget for the day or nil if there is none.
func (c *Client) Budget(ctx context.Context, day string) (*Budget, error) {
	var budget *Budget
	err := c.do(ctx, http.MethodGet, "/v1/budgets/"+url.PathEscape(day), nil, &budget)
	return budget, err
}

// Load returns a projection of the budget for the day with its expenses.
func (c *Client) Load(ctx context.Context, day string) (*Projection, error) {
	budget, err := c.Budget(ctx, day)
	if err != nil {
		return nil, err
	}

	if budget == nil {
		return nil, &APIError{Status: http.StatusNotFound, Message: fmt.Sprintf("there is no budget for %s", day)}
	}

	var list struct {
		Expenses []Expense `json:"expenses"`
	}
	err = c.do(ctx, http.MethodGet, "/v1/expenses?day="+url.QueryEscape(day), nil, &list)
	if err != nil {
		return nil, err
	}

	return NewProjection(*budget, list.Expenses), nil
}

// AddExpense records an expense against the budget of the projection.
//
// The expense is applied to the projection first. When the server accepts
// it, the projection takes over the server values. Otherwise the expense is
// rolled back and the error is returned.
func (c *Client) AddExpense(ctx context.Context, p *Projection, amount decimal.Decimal, description string) (Expense, error) {
	key := p.ApplyExpense(amount, description)

	var created struct {
		Expense         Expense         `json:"expense"`
		RemainingBudget decimal.Decimal `json:"remainingBudget"`
	}

	err := c.do(ctx, http.MethodPost, "/v1/expenses", map[string]any{
		"budgetId":    p.BudgetID(),
		"amount":      amount,
		"description": description,
	}, &created)
	if err != nil {
		if rerr := p.Rollback(key); rerr != nil {
			return Expense{}, fmt.Errorf("%w, rollback failed: %w", err, rerr)
		}
		return Expense{}, err
	}

	return created.Expense, p.Confirm(key, created.Expense, created.RemainingBudget)
}

// response is the envelope of all API responses.
type response struct {
	Data  json.RawMessage `json:"data"`
	Error *string         `json:"error"`
}

func (c *Client) do(ctx context.Context, method, path string, body, target any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("could not encode request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}

	req.Header.Set("Authorization", "Bearer "+c.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	var r response
	err = json.NewDecoder(res.Body).Decode(&r)
	if err != nil && err != io.EOF {
		return fmt.Errorf("could not decode response with status %d: %w", res.StatusCode, err)
	}

	if res.StatusCode >= http.StatusBadRequest {
		message := http.StatusText(res.StatusCode)
		if r.Error != nil {
			message = *r.Error
		}
		return &APIError{Status: res.StatusCode, Message: message}
	}

	if target == nil || len(r.Data) == 0 {
		return nil
	}

	return json.Unmarshal(r.Data, target)
}
