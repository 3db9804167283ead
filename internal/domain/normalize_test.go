package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestStripMarkup(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text unchanged", "Mains repair in progress.", "Mains repair in progress."},
		{"br becomes newline", "First line.<br>Second line.", "First line.\nSecond line."},
		{"self-closing br variants", "First.<br/>Second.<br />Third.", "First.\nSecond.\nThird."},
		{"uppercase br", "First.<BR>Second.", "First.\nSecond."},
		{"closing div becomes newline", "<div>Area affected:</div><div>Ballina town</div>", "Area affected:\nBallina town"},
		{"other tags removed", `<span class="x">Water off</span> until <b>18:00</b>`, "Water off until 18:00"},
		{"blank lines dropped", "<br><br>  <br>Line.<br>   ", "Line."},
		{"lines trimmed", "  padded line  <br>\t tabbed \t", "padded line\ntabbed"},
		{"angle pair treated as tag", "5 < 6 but 7 > 3", "5  3"},
		{"lone open bracket survives", "temp < 40 degrees", "temp < 40 degrees"},
		{"empty input", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripMarkup(tt.in))
		})
	}
}

func TestStripMarkup_Idempotent(t *testing.T) {
	inputs := []string{
		"<div>Supply restored</div><br>Ref COR00098700",
		"First.<br/>Second.",
		"plain text",
		"",
		"5 < 6 but 7 > 3",
		"temp < 40 degrees",
	}

	for _, in := range inputs {
		once := StripMarkup(in)
		assert.Equal(t, once, StripMarkup(once), "input %q", in)
	}
}

func TestExtractReference(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"embedded code", "Leak near town centre. Ref COR00098700 reported.", "COR00098700"},
		{"first of several", "MAY00102991 supersedes COR00098700", "MAY00102991"},
		{"no code", "Burst main at Main Street", ""},
		{"lowercase is not a code", "ref cor00098700", ""},
		{"too few digits", "COR0009870", ""},
		{"must stand alone", "XCOR00098700", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractReference(tt.in))
		})
	}
}

func TestFormatEpoch(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want string
	}{
		{"milliseconds", 1700000000000, "2023-11-14 22:13:20 UTC"},
		{"seconds", 1700000000, "2023-11-14 22:13:20 UTC"},
		{"just above threshold is milliseconds", 1000000000001, "2001-09-09 01:46:40 UTC"},
		{"fractional seconds truncate in display", 1700000000.9, "2023-11-14 22:13:20 UTC"},
		{"epoch zero", 0, "1970-01-01 00:00:00 UTC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatEpoch(tt.in))
		})
	}

	t.Run("threshold value itself is seconds", func(t *testing.T) {
		// 1e12 as milliseconds would be 2001-09-09; as seconds it is far future.
		assert.NotEqual(t, "2001-09-09 01:46:40 UTC", FormatEpoch(1e12))
	})
}

func TestNormalizeOutage(t *testing.T) {
	t.Run("full record", func(t *testing.T) {
		rec := RawRecord{
			"OBJECTID":     float64(42),
			"GLOBALID":     "{8A9C2E1F-0000-0000-0000-000000000000}",
			"TITLE":        "Water Outage",
			"STATUS":       "Open",
			"LOCATION":     "Foxford Road",
			"COUNTY":       "Mayo",
			"STARTDATE":    float64(1700000000000),
			"ENDDATE":      float64(1700086400000),
			"REFERENCENUM": "MAY00102991",
			"DESCRIPTION":  "<div>Burst main.</div><br>Crews on site.",
		}

		o := NormalizeOutage(rec)

		require.NotNil(t, o.ObjectID)
		assert.Equal(t, int64(42), *o.ObjectID)
		require.NotNil(t, o.GlobalID)
		assert.Equal(t, "{8A9C2E1F-0000-0000-0000-000000000000}", *o.GlobalID)
		assert.Equal(t, "Water Outage", o.Title)
		assert.Equal(t, "Open", o.Status)
		assert.Equal(t, "Foxford Road", o.Location)
		assert.Equal(t, "Mayo", o.County)
		require.NotNil(t, o.StartRaw)
		assert.Equal(t, float64(1700000000000), *o.StartRaw)
		require.NotNil(t, o.Start)
		assert.Equal(t, "2023-11-14 22:13:20 UTC", *o.Start)
		require.NotNil(t, o.End)
		assert.Equal(t, "2023-11-15 22:13:20 UTC", *o.End)
		require.NotNil(t, o.Reference)
		assert.Equal(t, "MAY00102991", *o.Reference)
		assert.Equal(t, "Burst main.\nCrews on site.", o.Description)
	})

	t.Run("reference recovered from description", func(t *testing.T) {
		rec := RawRecord{
			"DESCRIPTION": "Leak near town centre. Ref COR00098700 reported.",
		}

		o := NormalizeOutage(rec)

		require.NotNil(t, o.Reference)
		assert.Equal(t, "COR00098700", *o.Reference)
	})

	t.Run("explicit reference wins over description", func(t *testing.T) {
		rec := RawRecord{
			"REFERENCENUM": "COR00000001",
			"DESCRIPTION":  "Supersedes MAY00102991.",
		}

		o := NormalizeOutage(rec)

		require.NotNil(t, o.Reference)
		assert.Equal(t, "COR00000001", *o.Reference)
	})

	t.Run("empty record", func(t *testing.T) {
		o := NormalizeOutage(RawRecord{})

		assert.Nil(t, o.ObjectID)
		assert.Nil(t, o.GlobalID)
		assert.Empty(t, o.Title)
		assert.Empty(t, o.Status)
		assert.Empty(t, o.Location)
		assert.Empty(t, o.County)
		assert.Nil(t, o.StartRaw)
		assert.Nil(t, o.Start)
		assert.Nil(t, o.EndRaw)
		assert.Nil(t, o.End)
		assert.Nil(t, o.Reference)
		assert.Empty(t, o.Description)
	})

	t.Run("malformed fields degrade", func(t *testing.T) {
		rec := RawRecord{
			"OBJECTID":    "not a number",
			"GLOBALID":    float64(1),
			"STARTDATE":   "not a date",
			"DESCRIPTION": float64(12),
		}

		o := NormalizeOutage(rec)

		assert.Nil(t, o.ObjectID)
		assert.Nil(t, o.GlobalID)
		assert.Nil(t, o.StartRaw)
		assert.Nil(t, o.Start)
		assert.Empty(t, o.Description)
	})

	t.Run("numeric string epoch accepted", func(t *testing.T) {
		rec := RawRecord{"STARTDATE": "1700000000000"}

		o := NormalizeOutage(rec)

		require.NotNil(t, o.StartRaw)
		assert.Equal(t, float64(1700000000000), *o.StartRaw)
		require.NotNil(t, o.Start)
		assert.Equal(t, "2023-11-14 22:13:20 UTC", *o.Start)
	})
}
