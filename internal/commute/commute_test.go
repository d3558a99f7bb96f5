package commute

import (
	"encoding/json"
	"testing"
	"time"
)

func TestFormatTime(t *testing.T) {
	cases := map[int64]string{
		0:         "00:00",
		999:       "00:00",
		5_000:     "00:05",
		65_000:    "01:05",
		3_599_000: "59:59",
		3_600_000: "1:00:00",
		7_384_000: "2:03:04",
		-10:       "00:00",
	}
	for ms, want := range cases {
		if got := FormatTime(ms); got != want {
			t.Fatalf("FormatTime(%d) = %q, want %q", ms, got, want)
		}
	}
	if got := FormatDuration(90 * time.Second); got != "01:30" {
		t.Fatalf("FormatDuration = %q", got)
	}
}

func samples(times ...int64) []Sample {
	out := make([]Sample, len(times))
	for i, ms := range times {
		out[i] = Sample{Time: ms}
	}
	return out
}

func TestMedian(t *testing.T) {
	if got := Median(nil); got != 0 {
		t.Fatalf("expected 0 for no samples, got %d", got)
	}
	if got := Median(samples(30, 10, 20)); got != 20 {
		t.Fatalf("expected odd median 20, got %d", got)
	}
	if got := Median(samples(40, 10, 30, 20)); got != 25 {
		t.Fatalf("expected even median 25, got %d", got)
	}
}

func TestAddAndRemoveSampleUpdatesMedian(t *testing.T) {
	r := &Route{Name: "bus"}
	start := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	r.AddSample(start, start.Add(10*time.Minute))
	r.AddSample(start, start.Add(20*time.Minute))
	if r.MedianTime != (15 * time.Minute).Milliseconds() {
		t.Fatalf("expected 15m median, got %d", r.MedianTime)
	}
	if !r.RemoveLastSample() {
		t.Fatalf("expected removal")
	}
	if r.MedianTime != (10 * time.Minute).Milliseconds() {
		t.Fatalf("expected 10m median, got %d", r.MedianTime)
	}
	r.RemoveLastSample()
	if r.RemoveLastSample() {
		t.Fatalf("expected no removal from empty route")
	}
	if r.MedianTime != 0 {
		t.Fatalf("expected zero median, got %d", r.MedianTime)
	}
}

func TestSorting(t *testing.T) {
	d := Empty()
	d.AddCommute("work")
	d.AddCommute(" gym ")
	d.SortCommutes()
	if d.Commutes[0].Name != "gym" || d.Commutes[1].Name != "work" {
		t.Fatalf("expected commutes sorted by trimmed name, got %s, %s", d.Commutes[0].Name, d.Commutes[1].Name)
	}
	c := d.Commutes[1]
	slow := c.AddRoute("slow")
	slow.MedianTime = 500
	fast := c.AddRoute("fast")
	fast.MedianTime = 100
	c.SortRoutes()
	if c.Routes[0] != fast {
		t.Fatalf("expected fastest route first")
	}
	if _, r, ok := d.FindRoute(slow.ID); !ok || r != slow {
		t.Fatalf("expected to find route by id")
	}
}

func TestNormalizeLegacyTree(t *testing.T) {
	raw := `{"commutes":[{"name":"work","routes":[{"name":"bus","medianTime":60000,"samples":[{"startDate":"2024-05-01T08:00:00.000Z","endDate":"2024-05-01T08:01:00.000Z","time":60000}]}]},null]}`
	var d Data
	if err := json.Unmarshal([]byte(raw), &d); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	Normalize(&d)
	if d.Version != Version {
		t.Fatalf("expected version default, got %d", d.Version)
	}
	if len(d.Commutes) != 1 {
		t.Fatalf("expected nil commute dropped, got %d", len(d.Commutes))
	}
	c := d.Commutes[0]
	if c.ID == "" || c.Routes[0].ID == "" {
		t.Fatalf("expected ids assigned")
	}
	if got := c.Routes[0].Samples[0].EndDate.Sub(c.Routes[0].Samples[0].StartDate); got != time.Minute {
		t.Fatalf("expected ISO dates to decode, got %v", got)
	}
	if Normalize(nil).Commutes == nil {
		t.Fatalf("expected empty tree for nil input")
	}
}
