package providers

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"storefront/models"
)

// AppsScriptSubmitter implements OrderSubmitter against a Google Apps Script
// web app. The script only acknowledges receipt; there is no structured
// response body to parse, so anything below 400 counts as accepted.
type AppsScriptSubmitter struct {
	endpoint   string
	httpClient *http.Client
}

// NewAppsScriptSubmitter creates a new AppsScriptSubmitter.
func NewAppsScriptSubmitter(endpoint string) *AppsScriptSubmitter {
	return &AppsScriptSubmitter{
		endpoint: endpoint,
		httpClient: &http.Client{
			// Receipt data URLs make these requests large; allow for slow
			// script cold starts.
			Timeout: 30 * time.Second,
		},
	}
}

// Submit posts the order as url-encoded form fields.
func (s *AppsScriptSubmitter) Submit(ctx context.Context, sub models.OrderSubmission) error {
	form := url.Values{}
	form.Set("name", sub.Name)
	form.Set("address", sub.Address)
	form.Set("phone", sub.Phone)
	form.Set("email", sub.Email)
	form.Set("note", sub.Note)
	form.Set("cart", sub.CartJSON)
	form.Set("receipt", sub.Receipt)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("order submission failed: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("order endpoint returned %d", resp.StatusCode)
	}
	return nil
}
