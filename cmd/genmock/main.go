// Command genmock writes a mock feature service query response for the
// arcgis client tests and for offline runs of cmd/query against a local
// file server. Records pass through the actual domain package so the
// fixture is guaranteed to normalize cleanly.
//
// Usage:
//
//	go run ./cmd/genmock \
//	  -out internal/adapter/arcgis/testdata/query_response.json
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/nmbmarques/water-ie-outage/internal/domain"
)

// sampleRecords hold two Mayo outages: one with an explicit reference
// number and one whose reference only appears inside the description.
var sampleRecords = []domain.RawRecord{
	{
		"OBJECTID":       101,
		"GLOBALID":       "{5E2D1C9A-4F63-4E5B-9B71-000000000101}",
		"TITLE":          "Water Outage",
		"STATUS":         "Open",
		"APPROVALSTATUS": "Approved",
		"LOCATION":       "Foxford Road, Ballina",
		"COUNTY":         "Mayo",
		"STARTDATE":      1700000000000,
		"ENDDATE":        1700086400000,
		"REFERENCENUM":   "MAY00102991",
		"DESCRIPTION":    "<div>Burst water main at Foxford Road.</div><br>Crews on site until further notice.",
	},
	{
		"OBJECTID":       102,
		"GLOBALID":       "{5E2D1C9A-4F63-4E5B-9B71-000000000102}",
		"TITLE":          "Water Outage",
		"STATUS":         "Open",
		"APPROVALSTATUS": "Approved",
		"LOCATION":       "Quay Road, Westport",
		"COUNTY":         "Mayo",
		"STARTDATE":      1700050000000,
		"ENDDATE":        nil,
		"REFERENCENUM":   "",
		"DESCRIPTION":    "Leak repair scheduled. Ref MAY00200000 applies.<br/>Traffic management in place.",
	},
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	out := flag.String("out", "internal/adapter/arcgis/testdata/query_response.json", "output path for the fixture")
	container := flag.String("container", "attributes", "feature container key: attributes or properties")
	flag.Parse()

	if *container != "attributes" && *container != "properties" {
		return fmt.Errorf("unknown container %q", *container)
	}

	// Every sample must keep a recoverable reference after normalization,
	// otherwise tests built on the fixture lose their filtering cases.
	for i, rec := range sampleRecords {
		if domain.NormalizeOutage(rec).Reference == nil {
			return fmt.Errorf("sample %d has no recoverable reference", i)
		}
	}

	features := make([]map[string]any, 0, len(sampleRecords))
	for _, rec := range sampleRecords {
		features = append(features, map[string]any{*container: rec})
	}

	if err := writeJSON(*out, map[string]any{"features": features}); err != nil {
		return fmt.Errorf("writing fixture: %w", err)
	}
	log.Printf("wrote fixture: %s (%d features, %s)", *out, len(features), *container)
	return nil
}

func writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o600)
}
