// Package adminclient is the headless admin layer of the marketing site: a
// typed API client plus the form controllers that drive it. The controllers
// hold form state (add/edit modes, pending delete confirmations) and the
// locally cached lists shown in the admin tables; any UI can sit on top.
package adminclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/noievoi/backend/internal/model"
)

// Client calls the backend API over HTTP. The admin token is sent as a
// bearer token on every request; there is no ambient auth state.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// APIError represents a backend error response body ({"error": "..."}).
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %s (status %d)", e.Message, e.Status)
}

// NewClient constructs an API client for the given backend base URL.
func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader *bytes.Buffer
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewBuffer(b)
	} else {
		reader = &bytes.Buffer{}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var apiErr struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		if apiErr.Error == "" {
			apiErr.Error = http.StatusText(resp.StatusCode)
		}
		return &APIError{Status: resp.StatusCode, Message: apiErr.Error}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// ---------------------------------------------------------------------------
// Contact messages
// ---------------------------------------------------------------------------

// ListContactMessages returns all messages, newest first.
func (c *Client) ListContactMessages(ctx context.Context) ([]*model.ContactMessage, error) {
	var messages []*model.ContactMessage
	if err := c.do(ctx, http.MethodGet, "/api/contact", nil, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

// UpdateContactStatus sets the status of one message and returns the updated
// record. Status is the only field the server will change.
func (c *Client) UpdateContactStatus(ctx context.Context, id, status string) (*model.ContactMessage, error) {
	var msg model.ContactMessage
	body := map[string]string{"status": status}
	if err := c.do(ctx, http.MethodPatch, "/api/contact/"+id, body, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

// DeleteContactMessage removes one message permanently.
func (c *Client) DeleteContactMessage(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/contact/"+id, nil, nil)
}

// ---------------------------------------------------------------------------
// Projects
// ---------------------------------------------------------------------------

// ProjectInput is the form payload for creating or updating a project.
type ProjectInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Client      string `json:"client"`
	Location    string `json:"location"`
	Year        string `json:"year"`
	ImageURL    string `json:"imageUrl"`
	Featured    bool   `json:"featured"`
}

func (c *Client) ListProjects(ctx context.Context) ([]*model.Project, error) {
	var projects []*model.Project
	if err := c.do(ctx, http.MethodGet, "/api/projects", nil, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func (c *Client) CreateProject(ctx context.Context, in ProjectInput) (*model.Project, error) {
	var p model.Project
	if err := c.do(ctx, http.MethodPost, "/api/projects", in, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) UpdateProject(ctx context.Context, id string, in ProjectInput) (*model.Project, error) {
	var p model.Project
	if err := c.do(ctx, http.MethodPut, "/api/projects/"+id, in, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) DeleteProject(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/projects/"+id, nil, nil)
}

// ---------------------------------------------------------------------------
// Services
// ---------------------------------------------------------------------------

// ServiceInput is the form payload for creating or updating a service.
// Order is omitted on create (the server assigns it) and carried through on
// update so toggles do not move the record.
type ServiceInput struct {
	Title       string                 `json:"title"`
	Slug        string                 `json:"slug"`
	Description string                 `json:"description"`
	ImagePath   string                 `json:"imagePath"`
	Icon        string                 `json:"icon"`
	Benefits    []model.ServiceBenefit `json:"benefits"`
	Order       *int                   `json:"order,omitempty"`
	Published   bool                   `json:"published"`
}

func (c *Client) ListServices(ctx context.Context) ([]*model.Service, error) {
	var services []*model.Service
	if err := c.do(ctx, http.MethodGet, "/api/services", nil, &services); err != nil {
		return nil, err
	}
	return services, nil
}

func (c *Client) CreateService(ctx context.Context, in ServiceInput) (*model.Service, error) {
	var s model.Service
	if err := c.do(ctx, http.MethodPost, "/api/services", in, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *Client) UpdateService(ctx context.Context, id string, in ServiceInput) (*model.Service, error) {
	var s model.Service
	if err := c.do(ctx, http.MethodPut, "/api/services/"+id, in, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *Client) DeleteService(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/services/"+id, nil, nil)
}

// ---------------------------------------------------------------------------
// Team members
// ---------------------------------------------------------------------------

// TeamMemberInput is the form payload for creating or updating a team member.
type TeamMemberInput struct {
	Name        string `json:"name"`
	Position    string `json:"position"`
	Location    string `json:"location"`
	Bio         string `json:"bio"`
	ImageColor  string `json:"imageColor"`
	Email       string `json:"email"`
	LinkedinURL string `json:"linkedinUrl"`
	TwitterURL  string `json:"twitterUrl"`
	ImageURL    string `json:"imageUrl"`
}

func (c *Client) ListTeamMembers(ctx context.Context) ([]*model.TeamMember, error) {
	var members []*model.TeamMember
	if err := c.do(ctx, http.MethodGet, "/api/team", nil, &members); err != nil {
		return nil, err
	}
	return members, nil
}

func (c *Client) CreateTeamMember(ctx context.Context, in TeamMemberInput) (*model.TeamMember, error) {
	var m model.TeamMember
	if err := c.do(ctx, http.MethodPost, "/api/team", in, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (c *Client) UpdateTeamMember(ctx context.Context, id string, in TeamMemberInput) (*model.TeamMember, error) {
	var m model.TeamMember
	if err := c.do(ctx, http.MethodPut, "/api/team/"+id, in, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (c *Client) DeleteTeamMember(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/team/"+id, nil, nil)
}
