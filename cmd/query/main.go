// Command query fetches the current open outages for a county once and
// prints the rendered report to stdout. Useful for checking the feature
// service and trying out filters before leaving the monitor running.
//
// Usage:
//
//	go run ./cmd/query -county Mayo -location-contains Ballina
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"time"

	"github.com/nmbmarques/water-ie-outage/internal/adapter/arcgis"
	"github.com/nmbmarques/water-ie-outage/internal/domain"
	"github.com/nmbmarques/water-ie-outage/internal/report"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	county := flag.String("county", "", "county name, e.g. Mayo")
	refnum := flag.String("refnum", "", "optional outage reference code to filter")
	locationContains := flag.String("location-contains", "", "optional location/description substring filter")
	endpoint := flag.String("endpoint", "", "feature service query URL override")
	timeout := flag.Duration("timeout", 15*time.Second, "HTTP timeout for the query")
	flag.Parse()

	if *county == "" {
		flag.Usage()
		return fmt.Errorf("missing required flag: -county")
	}

	client := arcgis.NewClient(*endpoint, *timeout, slog.Default())

	records, err := client.FetchOpenOutages(context.Background(), *county)
	if err != nil {
		return fmt.Errorf("fetching outages: %w", err)
	}

	outages := make([]domain.Outage, 0, len(records))
	for _, rec := range records {
		outages = append(outages, domain.NormalizeOutage(rec))
	}
	outages = domain.ApplyFilters(outages, *refnum, *locationContains)

	fmt.Print(report.Render(outages, *county, *refnum, *locationContains))
	return nil
}
