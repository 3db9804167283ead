// Package report renders outage sets as the plain-text update used for both
// console output and email bodies.
package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nmbmarques/water-ie-outage/internal/domain"
)

const separator = "------------------------------------------------------------"

// Render produces the outage update text for a filtered outage set, in slice
// order. refnum and locationFilter appear in the header only when set. The
// result always ends with a newline.
func Render(outages []domain.Outage, county, refnum, locationFilter string) string {
	if len(outages) == 0 {
		lines := []string{"No matching open outages found.", "County: " + county}
		if refnum != "" {
			lines = append(lines, "Reference filter: "+refnum)
		}
		if locationFilter != "" {
			lines = append(lines, "Location filter: "+locationFilter)
		}
		return strings.Join(lines, "\n") + "\n"
	}

	lines := []string{"Water.ie outage update", "", "County: " + county}
	if refnum != "" {
		lines = append(lines, "Reference filter: "+refnum)
	}
	if locationFilter != "" {
		lines = append(lines, "Location filter: "+locationFilter)
	}
	lines = append(lines, "")

	for _, o := range outages {
		lines = append(lines,
			separator,
			fmt.Sprintf("Location : %s, %s", o.Location, o.County),
			fmt.Sprintf("Status   : %s", o.Status),
			fmt.Sprintf("Reference: %s", orUnknown(o.Reference)),
			fmt.Sprintf("Start    : %s (raw: %s)", orUnknown(o.Start), rawEpoch(o.StartRaw)),
			fmt.Sprintf("End      : %s (raw: %s)", orUnknown(o.End), rawEpoch(o.EndRaw)),
		)
		if o.Description != "" {
			lines = append(lines, "", "Description:", o.Description)
		}
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}

// Subject builds the change notification subject: prefix, then the county and
// any active filters joined by " / ".
func Subject(prefix, county, refnum, locationFilter string) string {
	parts := []string{county}
	if refnum != "" {
		parts = append(parts, refnum)
	}
	if locationFilter != "" {
		parts = append(parts, locationFilter)
	}
	return fmt.Sprintf("%s Change in outage data (%s)", prefix, strings.Join(parts, " / "))
}

func orUnknown(s *string) string {
	if s == nil {
		return "(unknown)"
	}
	return *s
}

// rawEpoch renders the feed's raw epoch without exponent notation.
func rawEpoch(v *float64) string {
	if v == nil {
		return "none"
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
