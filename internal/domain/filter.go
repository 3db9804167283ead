package domain

import "strings"

// FilterByReference keeps outages whose reference equals ref exactly.
// An empty ref disables the filter.
func FilterByReference(outages []Outage, ref string) []Outage {
	if ref == "" {
		return outages
	}
	kept := make([]Outage, 0, len(outages))
	for _, o := range outages {
		if o.Reference != nil && *o.Reference == ref {
			kept = append(kept, o)
		}
	}
	return kept
}

// FilterByLocation keeps outages whose "<location>, <county>" string or
// cleaned description contains needle, case-insensitively. An empty needle
// disables the filter.
func FilterByLocation(outages []Outage, needle string) []Outage {
	if needle == "" {
		return outages
	}
	n := strings.ToLower(needle)
	kept := make([]Outage, 0, len(outages))
	for _, o := range outages {
		combined := strings.ToLower(o.Location + ", " + o.County)
		if strings.Contains(combined, n) || strings.Contains(strings.ToLower(o.Description), n) {
			kept = append(kept, o)
		}
	}
	return kept
}

// ApplyFilters runs the reference filter then the location filter.
// Both preserve input order and the two commute.
func ApplyFilters(outages []Outage, ref, needle string) []Outage {
	return FilterByLocation(FilterByReference(outages, ref), needle)
}
