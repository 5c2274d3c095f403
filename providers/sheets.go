package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"storefront/models"
)

// The gviz endpoint wraps its JSON payload in a JS callback. The payload is
// valid JSON only after stripping a fixed 47-character prefix
// ("/*O_o*/\ngoogle.visualization.Query.setResponse(") and the trailing ");".
const (
	gvizPrefixLen = 47
	gvizSuffixLen = 2
)

// Feed column order: name, price, image1-3, colors, sizes, stock, category,
// description, dateAdded. The sheet has no header enforcement, so rows may
// be short.
const (
	colName = iota
	colPrice
	colImage1
	colImage2
	colImage3
	colColors
	colSizes
	colStock
	colCategory
	colDescription
	colDateAdded
)

// SheetsFeed implements CatalogFeed against a published Google Sheet read
// through the gviz query API.
type SheetsFeed struct {
	feedURL    string
	httpClient *http.Client
}

// NewSheetsFeed creates a new SheetsFeed.
func NewSheetsFeed(feedURL string) *SheetsFeed {
	return &SheetsFeed{
		feedURL: feedURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// ---- gviz response structs ----

type gvizResponse struct {
	Table struct {
		Rows []gvizRow `json:"rows"`
	} `json:"table"`
}

type gvizRow struct {
	C []*gvizCell `json:"c"`
}

type gvizCell struct {
	V interface{} `json:"v"`
}

// Fetch downloads the feed and maps each row to a product, one product per
// row. Malformed cells degrade to zero values instead of failing the load.
func (f *SheetsFeed) Fetch(ctx context.Context) ([]models.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.feedURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("feed request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("feed returned %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading feed response: %w", err)
	}

	if len(body) <= gvizPrefixLen+gvizSuffixLen {
		return nil, fmt.Errorf("feed response too short (%d bytes)", len(body))
	}

	var parsed gvizResponse
	payload := body[gvizPrefixLen : len(body)-gvizSuffixLen]
	if err := json.Unmarshal(payload, &parsed); err != nil {
		return nil, fmt.Errorf("parsing feed payload: %w", err)
	}

	products := make([]models.Product, 0, len(parsed.Table.Rows))
	for _, row := range parsed.Table.Rows {
		name := row.str(colName)
		category := row.str(colCategory)
		products = append(products, models.Product{
			ID:          models.ProductID(name, category),
			Name:        name,
			Price:       row.num(colPrice),
			Image1:      row.str(colImage1),
			Image2:      row.str(colImage2),
			Image3:      row.str(colImage3),
			Colors:      row.str(colColors),
			Sizes:       row.str(colSizes),
			Stock:       int(row.num(colStock)),
			Category:    category,
			Description: row.str(colDescription),
			DateAdded:   row.str(colDateAdded),
		})
	}
	return products, nil
}

// str returns the cell value at index i as a string, "" when the cell is
// missing or null.
func (r gvizRow) str(i int) string {
	if i >= len(r.C) || r.C[i] == nil || r.C[i].V == nil {
		return ""
	}
	switch v := r.C[i].V.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// num returns the cell value at index i as a number, 0 when the cell is
// missing, null or non-numeric.
func (r gvizRow) num(i int) float64 {
	if i >= len(r.C) || r.C[i] == nil || r.C[i].V == nil {
		return 0
	}
	switch v := r.C[i].V.(type) {
	case float64:
		return v
	case string:
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0
		}
		return parsed
	default:
		return 0
	}
}
