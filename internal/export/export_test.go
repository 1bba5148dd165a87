package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/sadopc/exlog/internal/exercise"
)

func ptr(f float64) *float64 { return &f }

func sampleData() []exercise.Exercise {
	created := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	updated := created.Add(15 * time.Minute)

	return []exercise.Exercise{
		{
			ID:              "ex-1",
			Name:            "Barbell Bench Press",
			PrimaryMovement: exercise.MovementBenchPress,
			Resistances: []exercise.ResistanceEntry{
				{ID: "r1", Type: exercise.ResistanceBarbell, Weight: ptr(135)},
				{ID: "r2", Type: exercise.ResistanceChains, IsDual: true},
			},
			RepConfiguration: exercise.TempoReps{Count: 8, EccentricSeconds: 3, PauseBottomSeconds: 1, ConcentricSeconds: 1, PauseTopSeconds: 1},
			Notes:            "pause on chest",
			CreatedAt:        created,
			UpdatedAt:        updated,
		},
		{
			ID:                 "ex-2",
			Name:               "Farmer Carry",
			PrimaryMovement:    exercise.MovementOther,
			CustomMovementName: "Farmer Carry",
			RepConfiguration:   exercise.HoldReps{DurationSeconds: 45},
			CreatedAt:          created,
			UpdatedAt:          created,
		},
	}
}

func readCSV(t *testing.T, data []byte) [][]string {
	t.Helper()
	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("invalid CSV: %v", err)
	}
	return records
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

// ============================================================
// CSV
// ============================================================

func TestToCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := ToCSV(&buf, sampleData()); err != nil {
		t.Fatalf("ToCSV: %v", err)
	}

	records := readCSV(t, buf.Bytes())
	if len(records) != 3 {
		t.Fatalf("expected 3 rows (1 header + 2 data), got %d", len(records))
	}

	for i, h := range csvHeader {
		if records[0][i] != h {
			t.Fatalf("header[%d] = %q, want %q", i, records[0][i], h)
		}
	}

	row := records[1]
	if row[0] != "ex-1" || row[1] != "Barbell Bench Press" || row[2] != "Bench Press" {
		t.Fatalf("unexpected identity columns: %q", row[:3])
	}
	if row[3] != "Barbell - 135 lbs; Chains - (Dual)" {
		t.Fatalf("Resistances = %q", row[3])
	}
	if row[4] != "Tempo Reps" {
		t.Fatalf("Rep Type = %q", row[4])
	}
	if row[5] != "8 reps @ 3-1-1-1 tempo" {
		t.Fatalf("Reps = %q", row[5])
	}
	if row[6] != "pause on chest" {
		t.Fatalf("Notes = %q", row[6])
	}
	if _, err := time.Parse(time.RFC3339, row[7]); err != nil {
		t.Fatalf("Created is not RFC3339: %q", row[7])
	}

	custom := records[2]
	if custom[2] != "Farmer Carry" {
		t.Fatalf("custom movement should use its custom name, got %q", custom[2])
	}
	if custom[3] != "" {
		t.Fatalf("no resistances should give an empty cell, got %q", custom[3])
	}
	if custom[5] != "Hold for 45s" {
		t.Fatalf("Reps = %q", custom[5])
	}
}

func TestToCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := ToCSV(&buf, nil); err != nil {
		t.Fatal(err)
	}
	if records := readCSV(t, buf.Bytes()); len(records) != 1 {
		t.Fatalf("expected 1 row (header only), got %d", len(records))
	}
}

func TestToCSVSpecialCharacters(t *testing.T) {
	data := sampleData()[:1]
	data[0].Name = `Press "Heavy"`
	data[0].Notes = `notes with "quotes" and, commas
and a newline`

	var buf bytes.Buffer
	if err := ToCSV(&buf, data); err != nil {
		t.Fatal(err)
	}

	records := readCSV(t, buf.Bytes())
	if records[1][1] != `Press "Heavy"` {
		t.Fatalf("name mangled: %q", records[1][1])
	}
	if records[1][6] != data[0].Notes {
		t.Fatalf("notes mangled: %q", records[1][6])
	}
}

func TestToCSVWriteError(t *testing.T) {
	if err := ToCSV(failingWriter{}, sampleData()); err == nil {
		t.Fatal("expected error from failing writer")
	}
}

// ============================================================
// JSON
// ============================================================

func TestToJSON(t *testing.T) {
	var buf bytes.Buffer
	now := time.Date(2026, 4, 2, 12, 0, 0, 0, time.UTC)
	if err := toJSON(&buf, sampleData(), now); err != nil {
		t.Fatalf("ToJSON: %v", err)
	}

	var result jsonExport
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	if result.ExportedAt != "2026-04-02T12:00:00Z" {
		t.Fatalf("exported_at = %q", result.ExportedAt)
	}
	if result.Count != 2 || len(result.Exercises) != 2 {
		t.Fatalf("count = %d, exercises = %d, want 2", result.Count, len(result.Exercises))
	}

	e := result.Exercises[0]
	if e.ID != "ex-1" || e.PrimaryMovement != "bench_press" {
		t.Fatalf("unexpected exercise: %+v", e)
	}
	if e.CreatedAt != "2026-03-01T09:30:00Z" || e.UpdatedAt != "2026-03-01T09:45:00Z" {
		t.Fatalf("timestamps = %q / %q", e.CreatedAt, e.UpdatedAt)
	}
	if len(e.Resistances) != 2 {
		t.Fatalf("resistances = %d, want 2", len(e.Resistances))
	}
	if e.Resistances[0].Weight == nil || *e.Resistances[0].Weight != 135 {
		t.Fatal("weight lost")
	}
	if e.Resistances[1].Weight != nil || !e.Resistances[1].IsDual {
		t.Fatalf("second resistance = %+v", e.Resistances[1])
	}

	rc, err := exercise.UnmarshalRepConfiguration(e.RepConfiguration)
	if err != nil {
		t.Fatalf("rep configuration should decode: %v", err)
	}
	if rc != sampleData()[0].RepConfiguration {
		t.Fatalf("rep configuration = %#v", rc)
	}
}

func TestToJSONTaggedRepConfiguration(t *testing.T) {
	var buf bytes.Buffer
	if err := ToJSON(&buf, sampleData()[1:]); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `"type": "hold"`) {
		t.Fatalf("rep configuration should carry its type tag:\n%s", buf.String())
	}
	if !strings.Contains(buf.String(), `"custom_movement_name": "Farmer Carry"`) {
		t.Fatal("custom movement name missing")
	}
}

func TestToJSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := ToJSON(&buf, nil); err != nil {
		t.Fatal(err)
	}

	var result jsonExport
	json.Unmarshal(buf.Bytes(), &result)
	if result.Count != 0 {
		t.Fatalf("count = %d, want 0", result.Count)
	}
	if !strings.Contains(buf.String(), `"exercises": []`) {
		t.Fatal("empty export should carry an empty array, not null")
	}
}

func TestToJSONPrettyPrinted(t *testing.T) {
	var buf bytes.Buffer
	ToJSON(&buf, nil)

	if !strings.Contains(buf.String(), "\n  ") {
		t.Fatal("JSON should be indented with spaces")
	}
}

func TestToJSONMissingRepConfiguration(t *testing.T) {
	data := sampleData()
	data[1].RepConfiguration = nil
	if err := ToJSON(&bytes.Buffer{}, data); err == nil {
		t.Fatal("expected error for exercise without rep configuration")
	}
}

func TestToJSONWriteError(t *testing.T) {
	if err := ToJSON(failingWriter{}, sampleData()); err == nil {
		t.Fatal("expected error from failing writer")
	}
}

// ============================================================
// Format
// ============================================================

func TestParseFormat(t *testing.T) {
	for _, f := range Formats {
		got, err := ParseFormat(string(f))
		if err != nil || got != f {
			t.Fatalf("ParseFormat(%q) = %q, %v", f, got, err)
		}
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestWriteDispatches(t *testing.T) {
	var j, c bytes.Buffer
	if err := Write(&j, FormatJSON, sampleData()); err != nil {
		t.Fatal(err)
	}
	if err := Write(&c, FormatCSV, sampleData()); err != nil {
		t.Fatal(err)
	}
	if !json.Valid(j.Bytes()) {
		t.Fatal("json format should produce JSON")
	}
	if !strings.HasPrefix(c.String(), "ID,Name,") {
		t.Fatalf("csv format should start with header, got %q", c.String()[:20])
	}
	if err := Write(&bytes.Buffer{}, Format("xml"), nil); err == nil {
		t.Fatal("expected error for unknown format")
	}
}
