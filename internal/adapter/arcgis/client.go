package arcgis

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/nmbmarques/water-ie-outage/internal/domain"
)

// DefaultQueryURL is the query endpoint of the public Water.ie advisory layer.
const DefaultQueryURL = "https://services2.arcgis.com/OqejhVam51LdtxGa/arcgis/rest/services/WaterAdvisoryCR021_DeptView/FeatureServer/0/query"

// Client fetches outage features from an ArcGIS feature service layer.
type Client struct {
	httpClient *http.Client
	queryURL   string
	logger     *slog.Logger
}

// NewClient creates a feature service client. An empty queryURL selects
// DefaultQueryURL.
func NewClient(queryURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if queryURL == "" {
		queryURL = DefaultQueryURL
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		queryURL: queryURL,
		logger:   logger,
	}
}

// FetchOpenOutages returns the raw attribute maps of every open, approved
// outage in the given county, newest start date first. A response with no
// features yields an empty slice.
func (c *Client) FetchOpenOutages(ctx context.Context, county string) ([]domain.RawRecord, error) {
	where := fmt.Sprintf("STATUS='Open' AND APPROVALSTATUS='Approved' AND COUNTY='%s'", county)
	params := url.Values{
		"f":              {"json"},
		"where":          {where},
		"outFields":      {"*"},
		"returnGeometry": {"true"},
		"returnIdsOnly":  {"false"},
		"orderByFields":  {"STARTDATE DESC"},
		"outSR":          {"4326"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.queryURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("feature query: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("feature service error: status %d: %s", resp.StatusCode, body)
	}

	var qr queryResponse
	if err := json.NewDecoder(resp.Body).Decode(&qr); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	records := make([]domain.RawRecord, 0, len(qr.Features))
	for _, f := range qr.Features {
		records = append(records, f.record())
	}

	c.logger.Debug("feature query complete", "county", county, "features", len(records))
	return records, nil
}

// Feature service response types. Depending on the output format the layer
// serves each feature's attribute map under "properties" or "attributes".

type queryResponse struct {
	Features []feature `json:"features"`
}

type feature struct {
	Properties map[string]any `json:"properties"`
	Attributes map[string]any `json:"attributes"`
}

// record picks the populated attribute container, preferring properties.
func (f feature) record() domain.RawRecord {
	if len(f.Properties) > 0 {
		return domain.RawRecord(f.Properties)
	}
	if len(f.Attributes) > 0 {
		return domain.RawRecord(f.Attributes)
	}
	return domain.RawRecord{}
}
