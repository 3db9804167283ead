package domain

// RawRecord is one feature's attribute map exactly as decoded from the feed.
// Keys are the upstream ArcGIS column names (OBJECTID, GLOBALID, TITLE,
// STATUS, LOCATION, COUNTY, STARTDATE, ENDDATE, REFERENCENUM, DESCRIPTION).
type RawRecord map[string]any

// Outage is the normalized form of one outage record. The struct field order
// fixes the canonical encoding used by [Fingerprint]. Identifiers and
// timestamps are nullable; human-facing strings default to empty.
type Outage struct {
	ObjectID    *int64   `json:"objectid"`
	GlobalID    *string  `json:"globalid"`
	Title       string   `json:"title"`
	Status      string   `json:"status"`
	Location    string   `json:"location"`
	County      string   `json:"county"`
	StartRaw    *float64 `json:"startdate_raw"`
	EndRaw      *float64 `json:"enddate_raw"`
	Start       *string  `json:"startdate"`
	End         *string  `json:"enddate"`
	Reference   *string  `json:"reference"`
	Description string   `json:"description"`
}
