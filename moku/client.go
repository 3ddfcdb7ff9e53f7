// Package moku talks to a Moku device over its HTTP API: ownership
// claim/relinquish plus the two instruments these scripts use, the arbitrary
// waveform generator and the logic analyzer's pattern generator.
package moku

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// Client holds an owned connection to one device. All instrument calls go
// through it; create with Connect and always RelinquishOwnership when done so
// the GUI and other apps can take the device back.
type Client struct {
	BaseURL string
	http    *http.Client
	key     string
}

type apiResponse struct {
	Success  bool            `json:"success"`
	Data     json.RawMessage `json:"data"`
	Messages []string        `json:"messages"`
}

// Connect claims ownership of the device at ip. With force true an existing
// owner (the desktop GUI, usually) is kicked off.
func Connect(ip string, force bool) (*Client, error) {
	c := &Client{
		BaseURL: "http://" + ip,
		http:    &http.Client{Timeout: 30 * time.Second},
	}

	log.Debugf("Claiming ownership of Moku at %s (force=%v)", ip, force)
	resp, err := c.do("moku/claim_ownership", map[string]any{"force_connect": force}, nil)
	if err != nil {
		return nil, fmt.Errorf("claim ownership: %w", err)
	}
	var key string
	if err := json.Unmarshal(resp.Data, &key); err == nil {
		c.key = key
	}
	log.Debugf("Ownership claimed: %s", c.BaseURL)
	return c, nil
}

// RelinquishOwnership hands the device back. Safe to defer immediately after
// Connect; the waveform keeps running on the hardware.
func (c *Client) RelinquishOwnership() error {
	log.Debug("Relinquishing ownership")
	if _, err := c.do("moku/relinquish_ownership", map[string]any{}, nil); err != nil {
		return fmt.Errorf("relinquish ownership: %w", err)
	}
	return nil
}

// Describe fetches the device's name/serial/firmware description.
func (c *Client) Describe() (map[string]any, error) {
	var desc map[string]any
	if _, err := c.do("moku/describe", map[string]any{}, &desc); err != nil {
		return nil, fmt.Errorf("describe: %w", err)
	}
	return desc, nil
}

func (c *Client) do(endpoint string, payload any, out any) (*apiResponse, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodPost, c.BaseURL+"/api/"+endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.key != "" {
		req.Header.Set("Moku-Client-Key", c.key)
	}

	httpResp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	raw, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, err
	}
	if httpResp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s returned %s", endpoint, httpResp.Status)
	}

	var resp apiResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("%s returned malformed response: %w", endpoint, err)
	}
	if !resp.Success {
		return nil, fmt.Errorf("%s failed: %s", endpoint, strings.Join(resp.Messages, "; "))
	}
	if out != nil && len(resp.Data) > 0 {
		if err := json.Unmarshal(resp.Data, out); err != nil {
			return nil, fmt.Errorf("%s returned malformed data: %w", endpoint, err)
		}
	}
	return &resp, nil
}
