// Package domain models Water.ie (Uisce Éireann) water outage data.
//
// # Data Source
//
// Outages are published through a public ArcGIS FeatureServer layer
// (WaterAdvisoryCR021_DeptView). A query returns a feature collection where
// each feature carries a flat attribute map, arriving under "properties" or
// "attributes" depending on the endpoint revision. Column names are the
// uppercase ArcGIS field names: OBJECTID, GLOBALID, TITLE, STATUS, LOCATION,
// COUNTY, STARTDATE, ENDDATE, REFERENCENUM, DESCRIPTION.
//
// # Field Conventions
//
// Timestamps:
//
//	STARTDATE and ENDDATE are Unix epochs. The layer usually emits
//	milliseconds, but second-precision values have been observed. Values
//	above 1e12 are taken as milliseconds: an epoch in seconds stays below
//	1e12 until the year 33658, while any millisecond epoch after
//	September 2001 exceeds it. Rendered in UTC as "2023-11-14 22:13:20 UTC".
//
// Reference codes:
//
//	An outage reference is three uppercase letters followed by eight
//	digits, e.g. "COR00098700" (Cork) or "MAY00102991" (Mayo). The
//	REFERENCENUM column is authoritative when present; otherwise the code
//	is recovered from the free-text DESCRIPTION by [ExtractReference].
//
// Descriptions:
//
//	DESCRIPTION is HTML-ish rich text. <br> variants and closing </div>
//	tags mark line structure; other tags are presentation noise.
//	[StripMarkup] reduces it to trimmed, non-blank plain text lines.
//
// Missing data:
//
//	Absent or wrongly typed attributes degrade per field: identifiers and
//	timestamps to null, display strings to "". Normalization never fails.
//
// # Change Detection
//
// A poll cycle's outage set is reduced to a single SHA-256 digest by
// [Fingerprint] over sorted canonical JSON. Equal sets produce equal digests
// regardless of arrival order, so upstream reordering alone never raises an
// alert.
package domain
