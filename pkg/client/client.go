// Package client is a typed HTTP client for the Habit Rabbit API, used by the
// dashboard. It carries no business logic beyond presentation-side rollups.
package client

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/bytedance/sonic"

	"github.com/hopfield/habitrabbit/pkg/entity"
)

type Client struct {
	base string
	http *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		base: strings.TrimRight(baseURL, "/"),
		http: &http.Client{Timeout: time.Second * 15},
	}
}

// APIError is a non-2xx answer from the backend, carrying its message.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

type ToggleResult struct {
	Message   string `json:"message"`
	Completed bool   `json:"completed"`
}

type createHabitBody struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type messageBody struct {
	Message string `json:"message"`
}

func (c *Client) ListHabits(ctx context.Context) ([]entity.Habit, error) {
	var habits []entity.Habit
	if err := c.do(ctx, http.MethodGet, "/habits/", nil, &habits); err != nil {
		return nil, err
	}
	return habits, nil
}

func (c *Client) CreateHabit(ctx context.Context, name, description string) (*entity.Habit, error) {
	var habit entity.Habit
	body := createHabitBody{Name: name, Description: description}
	if err := c.do(ctx, http.MethodPost, "/habits/", body, &habit); err != nil {
		return nil, err
	}
	return &habit, nil
}

func (c *Client) TodayStatus(ctx context.Context) ([]entity.HabitStatus, error) {
	var statuses []entity.HabitStatus
	if err := c.do(ctx, http.MethodGet, "/habits/today", nil, &statuses); err != nil {
		return nil, err
	}
	return statuses, nil
}

func (c *Client) ToggleCompletion(ctx context.Context, habitID int64) (*ToggleResult, error) {
	var result ToggleResult
	path := fmt.Sprintf("/habits/%d/complete", habitID)
	if err := c.do(ctx, http.MethodPost, path, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) DeleteHabit(ctx context.Context, habitID int64) (string, error) {
	var result messageBody
	path := fmt.Sprintf("/habits/%d", habitID)
	if err := c.do(ctx, http.MethodDelete, path, nil, &result); err != nil {
		return "", err
	}
	return result.Message, nil
}

func (c *Client) GetHistory(ctx context.Context, habitID int64) ([]entity.HabitEntry, error) {
	var entries []entity.HabitEntry
	path := fmt.Sprintf("/habits/%d/history", habitID)
	if err := c.do(ctx, http.MethodGet, path, nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody *bytes.Reader
	if body != nil {
		raw, err := sonic.ConfigDefault.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reqBody = bytes.NewReader(raw)
	} else {
		reqBody = bytes.NewReader(nil)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reqBody)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("cannot reach backend at %s: %w", c.base, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &APIError{Status: resp.StatusCode}
		var msg messageBody
		if decErr := sonic.ConfigDefault.NewDecoder(resp.Body).Decode(&msg); decErr == nil {
			apiErr.Message = msg.Message
		}
		return apiErr
	}
	if out == nil {
		return nil
	}
	if err = sonic.ConfigDefault.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
