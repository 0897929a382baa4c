// Package client es el cliente tipado del API de PawCare. Lo usan las apps
// móviles de prueba y los tests end-to-end del router.
package client

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"pawcare-service/internal/platform/httpclient"
)

type Client struct {
	http *httpclient.Client

	// Bearer token; si está vacío y DebugUserID no, se manda X-Debug-User-ID.
	Token       string
	DebugUserID string
}

func New(baseURL string, timeout time.Duration) (*Client, error) {
	hc, err := httpclient.NewWithBaseURL(baseURL, timeout)
	if err != nil {
		return nil, err
	}
	return &Client{http: hc}, nil
}

func (c *Client) headers() map[string]string {
	h := map[string]string{}
	if c.Token != "" {
		h["Authorization"] = "Bearer " + c.Token
	} else if c.DebugUserID != "" {
		h["X-Debug-User-ID"] = c.DebugUserID
	}
	return h
}

type Session struct {
	User         User   `json:"user"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

type User struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	Language    string `json:"language"`
}

type Pet struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Species    string   `json:"species"`
	Breed      string   `json:"breed,omitempty"`
	Gender     string   `json:"gender"`
	BirthDate  string   `json:"birth_date"`
	Age        int      `json:"age"`
	IsNeutered bool     `json:"is_neutered"`
	Allergens  []string `json:"allergens,omitempty"`
}

type WeightRecord struct {
	ID     string  `json:"id"`
	Weight float64 `json:"weight"`
	Date   string  `json:"date"`
	Notes  string  `json:"notes,omitempty"`
}

type WeightDelta struct {
	Delta *float64 `json:"delta"`
}

type HealthRecord struct {
	ID           string `json:"id"`
	Type         string `json:"type"`
	Severity     string `json:"severity"`
	Title        string `json:"title"`
	Notes        string `json:"notes,omitempty"`
	OccurredAt   string `json:"occurred_at"`
	ReminderDate string `json:"reminder_date,omitempty"`
}

func (c *Client) Login(ctx context.Context, email, password string) (Session, error) {
	var out Session
	err := c.http.DoJSON(ctx, http.MethodPost, "/auth/login", nil, map[string]string{
		"email":    email,
		"password": password,
	}, &out)
	return out, err
}

func (c *Client) Register(ctx context.Context, email, password string) (Session, error) {
	var out Session
	err := c.http.DoJSON(ctx, http.MethodPost, "/auth/register", nil, map[string]string{
		"email":            email,
		"password":         password,
		"confirm_password": password,
	}, &out)
	return out, err
}

func (c *Client) CreatePet(ctx context.Context, in map[string]any) (Pet, error) {
	var out Pet
	err := c.http.DoJSON(ctx, http.MethodPost, "/pets", c.headers(), in, &out)
	return out, err
}

func (c *Client) ListPets(ctx context.Context) ([]Pet, error) {
	var out []Pet
	err := c.http.DoJSON(ctx, http.MethodGet, "/pets", c.headers(), nil, &out)
	return out, err
}

func (c *Client) DeletePet(ctx context.Context, petID string) error {
	return c.http.DoJSON(ctx, http.MethodDelete, "/pets/"+petID, c.headers(), nil, nil)
}

func (c *Client) AddWeight(ctx context.Context, petID string, weightKg float64, date time.Time, notes string) (WeightRecord, error) {
	var out WeightRecord
	err := c.http.DoJSON(ctx, http.MethodPost, fmt.Sprintf("/pets/%s/weights", petID), c.headers(), map[string]any{
		"weight": weightKg,
		"date":   date.Format(time.RFC3339),
		"notes":  notes,
	}, &out)
	return out, err
}

func (c *Client) ListWeights(ctx context.Context, petID string) ([]WeightRecord, error) {
	var out []WeightRecord
	err := c.http.DoJSON(ctx, http.MethodGet, fmt.Sprintf("/pets/%s/weights", petID), c.headers(), nil, &out)
	return out, err
}

func (c *Client) LatestWeight(ctx context.Context, petID string) (WeightRecord, error) {
	var out WeightRecord
	err := c.http.DoJSON(ctx, http.MethodGet, fmt.Sprintf("/pets/%s/weights/latest", petID), c.headers(), nil, &out)
	return out, err
}

func (c *Client) WeightDelta(ctx context.Context, petID string) (WeightDelta, error) {
	var out WeightDelta
	err := c.http.DoJSON(ctx, http.MethodGet, fmt.Sprintf("/pets/%s/weights/delta", petID), c.headers(), nil, &out)
	return out, err
}

func (c *Client) AddRecord(ctx context.Context, petID string, in map[string]any) (HealthRecord, error) {
	var out HealthRecord
	err := c.http.DoJSON(ctx, http.MethodPost, fmt.Sprintf("/pets/%s/records", petID), c.headers(), in, &out)
	return out, err
}

func (c *Client) ListRecords(ctx context.Context, petID string) ([]HealthRecord, error) {
	var out []HealthRecord
	err := c.http.DoJSON(ctx, http.MethodGet, fmt.Sprintf("/pets/%s/records", petID), c.headers(), nil, &out)
	return out, err
}
