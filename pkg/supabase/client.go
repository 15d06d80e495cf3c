// Package supabase is a thin HTTP client for the Supabase PostgREST and
// auth APIs. The engine always acts with the service role key; row-level
// ownership is enforced in the service layer.
package supabase

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Client represents a Supabase client
type Client struct {
	URL        string
	ServiceKey string
	HTTPClient *http.Client
}

// NewClient creates a new Supabase client
func NewClient(url, serviceKey string) *Client {
	return &Client{
		URL:        url,
		ServiceKey: serviceKey,
		HTTPClient: &http.Client{},
	}
}

func (c *Client) do(method, url string, body interface{}, prefer string) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		return nil, err
	}

	req.Header.Set("apikey", c.ServiceKey)
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.ServiceKey))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if prefer != "" {
		req.Header.Set("Prefer", prefer)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("supabase error: %s", string(respBody))
	}

	return respBody, nil
}

func (c *Client) tableURL(table string, query map[string]interface{}) string {
	url := fmt.Sprintf("%s/rest/v1/%s", c.URL, table)
	if len(query) == 0 {
		return url
	}
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return url
	}
	q := req.URL.Query()
	for key, value := range query {
		q.Add(key, fmt.Sprintf("%v", value))
	}
	req.URL.RawQuery = q.Encode()
	return req.URL.String()
}

// Query executes a filtered select on a PostgREST table
func (c *Client) Query(table string, query map[string]interface{}) ([]byte, error) {
	return c.do("GET", c.tableURL(table, query), nil, "")
}

// Insert inserts one or more records, returning the created rows
func (c *Client) Insert(table string, data interface{}) ([]byte, error) {
	return c.do("POST", c.tableURL(table, nil), data, "return=representation")
}

// Upsert inserts or updates a record. onConflict names the columns that
// detect conflicts (e.g. "user_id,insight_type").
func (c *Client) Upsert(table string, data interface{}, onConflict string) ([]byte, error) {
	url := c.tableURL(table, map[string]interface{}{"on_conflict": onConflict})
	return c.do("POST", url, data, "return=representation,resolution=merge-duplicates")
}

// UpdateWhere updates records matching a query
func (c *Client) UpdateWhere(table string, query map[string]interface{}, data interface{}) ([]byte, error) {
	return c.do("PATCH", c.tableURL(table, query), data, "return=representation")
}

// Delete deletes a record by id
func (c *Client) Delete(table string, id string) error {
	query := map[string]interface{}{"id": fmt.Sprintf("eq.%s", id)}
	_, err := c.do("DELETE", c.tableURL(table, query), nil, "")
	return err
}

// DeleteWhere deletes records matching a query
func (c *Client) DeleteWhere(table string, query map[string]interface{}) error {
	_, err := c.do("DELETE", c.tableURL(table, query), nil, "")
	return err
}

// User represents a Supabase user
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// VerifyToken verifies a user JWT with the Supabase auth API
func (c *Client) VerifyToken(token string) (*User, error) {
	url := fmt.Sprintf("%s/auth/v1/user", c.URL)

	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("apikey", c.ServiceKey)
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to verify token: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("token verification failed (status %d): %s", resp.StatusCode, string(body))
	}

	var user User
	if err := json.Unmarshal(body, &user); err != nil {
		return nil, fmt.Errorf("failed to decode user: %w", err)
	}

	return &user, nil
}
