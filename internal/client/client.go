// ABOUTME: HTTP client for the charity incident reporting API
// ABOUTME: Wraps auth, registration, and incident CRUD calls with tagged errors

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Client is the API client for the incident reporting backend
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a new API client with the given base URL
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Credentials is the login payload for both auth namespaces
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse represents a login endpoint response. The token field is
// optional: a 2xx response without it is treated as a failed login by
// callers.
type LoginResponse struct {
	AccessToken string `json:"accessToken"`
}

// Incident represents a reported case seeking funding, owned by an ONG
type Incident struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ONG         string `json:"ong"`
	Email       string `json:"email"`
	Whatsapp    string `json:"whatsapp"`
	Value       string `json:"value"`
}

// IncidentInput is the create/update payload for an incident
type IncidentInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ONG         string `json:"ong"`
	Email       string `json:"email"`
	Whatsapp    string `json:"whatsapp"`
	Value       string `json:"value"`
}

// UserInput is the user signup payload
type UserInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
}

// ONGInput is the ONG signup payload
type ONGInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
	City     string `json:"city"`
	UF       string `json:"uf"`
}

// serverError is the optional message shape of non-2xx responses
type serverError struct {
	Message string `json:"message"`
}

// Login calls POST /auth/login for the user auth namespace
func (c *Client) Login(ctx context.Context, creds Credentials) (*LoginResponse, error) {
	var resp LoginResponse
	if err := c.post(ctx, "/auth/login", creds, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// LoginONG calls POST /auth-ong/login for the ONG auth namespace
func (c *Client) LoginONG(ctx context.Context, creds Credentials) (*LoginResponse, error) {
	var resp LoginResponse
	if err := c.post(ctx, "/auth-ong/login", creds, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// RegisterUser calls POST /users
func (c *Client) RegisterUser(ctx context.Context, input UserInput) error {
	return c.post(ctx, "/users", input, nil)
}

// RegisterONG calls POST /ongs
func (c *Client) RegisterONG(ctx context.Context, input ONGInput) error {
	return c.post(ctx, "/ongs", input, nil)
}

// ListIncidents calls GET /incidents and returns the full current collection
func (c *Client) ListIncidents(ctx context.Context) ([]Incident, error) {
	var incidents []Incident
	if err := c.get(ctx, "/incidents", &incidents); err != nil {
		return nil, err
	}
	return incidents, nil
}

// GetIncident calls GET /incidents/{id}
func (c *Client) GetIncident(ctx context.Context, id string) (*Incident, error) {
	var incident Incident
	if err := c.get(ctx, "/incidents/"+id, &incident); err != nil {
		return nil, err
	}
	return &incident, nil
}

// CreateIncident calls POST /incidents
func (c *Client) CreateIncident(ctx context.Context, input IncidentInput) (*Incident, error) {
	var incident Incident
	if err := c.post(ctx, "/incidents", input, &incident); err != nil {
		return nil, err
	}
	return &incident, nil
}

// UpdateIncident calls PUT /incidents/{id}
func (c *Client) UpdateIncident(ctx context.Context, id string, input IncidentInput) (*Incident, error) {
	var incident Incident
	if err := c.do(ctx, http.MethodPut, "/incidents/"+id, input, &incident); err != nil {
		return nil, err
	}
	return &incident, nil
}

// DeleteIncident calls DELETE /incidents/{id}
func (c *Client) DeleteIncident(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/incidents/"+id, nil, nil)
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, in, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, in, out)
}

// do issues one request and decodes the response into out when non-nil
func (c *Client) do(ctx context.Context, method, path string, in, out interface{}) error {
	var body []byte
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return &Error{Kind: KindUnexpected, Message: "failed to marshal request", Err: err}
		}
		body = data
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return &Error{Kind: KindUnexpected, Message: "failed to create request", Err: err}
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.requestError(ctx, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return c.responseError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return &Error{Kind: KindUnexpected, Message: "invalid response from backend", Err: err}
		}
	}

	return nil
}

// requestError converts transport failures to KindNetwork errors with
// user-friendly messages
func (c *Client) requestError(ctx context.Context, err error) error {
	if ctx.Err() == context.Canceled {
		return &Error{Kind: KindNetwork, Message: "request canceled"}
	}
	if ctx.Err() == context.DeadlineExceeded {
		return &Error{Kind: KindNetwork, Message: "request timed out"}
	}
	return &Error{
		Kind:    KindNetwork,
		Message: fmt.Sprintf("cannot connect to backend at %s", c.baseURL),
		Err:     err,
	}
}

// responseError parses non-2xx responses, surfacing the server's message
// field when one is present
func (c *Client) responseError(resp *http.Response) error {
	var se serverError
	if err := json.NewDecoder(resp.Body).Decode(&se); err != nil || se.Message == "" {
		return &Error{
			Kind:    KindServerRejected,
			Message: fmt.Sprintf("backend returned status %d", resp.StatusCode),
			Status:  resp.StatusCode,
		}
	}
	return &Error{Kind: KindServerRejected, Message: se.Message, Status: resp.StatusCode}
}
