package commute

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Version is the schema version written with every data tree.
const Version = 1

// Data is the persisted tree of commutes, routes and samples.
type Data struct {
	Version  int        `json:"version"`
	Commutes []*Commute `json:"commutes"`
}

type Commute struct {
	ID     string   `json:"id,omitempty"`
	Name   string   `json:"name"`
	Routes []*Route `json:"routes"`
}

type Route struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
	// MedianTime is in milliseconds, recomputed whenever samples change.
	MedianTime int64    `json:"medianTime"`
	Samples    []Sample `json:"samples"`
}

// Sample is one timed trip. Time is EndDate-StartDate in milliseconds.
type Sample struct {
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	Time      int64     `json:"time"`
}

// Empty returns the initial data tree.
func Empty() *Data {
	return &Data{Version: Version, Commutes: []*Commute{}}
}

// Normalize fills defaults on a decoded tree: missing version, nil slices and
// ids for entries written before ids existed.
func Normalize(d *Data) *Data {
	if d == nil {
		return Empty()
	}
	if d.Version == 0 {
		d.Version = Version
	}
	if d.Commutes == nil {
		d.Commutes = []*Commute{}
	}
	kept := d.Commutes[:0]
	for _, c := range d.Commutes {
		if c == nil {
			continue
		}
		if c.ID == "" {
			c.ID = uuid.NewString()
		}
		if c.Routes == nil {
			c.Routes = []*Route{}
		}
		routes := c.Routes[:0]
		for _, r := range c.Routes {
			if r == nil {
				continue
			}
			if r.ID == "" {
				r.ID = uuid.NewString()
			}
			if r.Samples == nil {
				r.Samples = []Sample{}
			}
			routes = append(routes, r)
		}
		c.Routes = routes
		kept = append(kept, c)
	}
	d.Commutes = kept
	return d
}

// AddCommute appends a commute with a trimmed name.
func (d *Data) AddCommute(name string) *Commute {
	c := &Commute{ID: uuid.NewString(), Name: strings.TrimSpace(name), Routes: []*Route{}}
	d.Commutes = append(d.Commutes, c)
	return c
}

// SortCommutes orders commutes by name.
func (d *Data) SortCommutes() {
	sort.SliceStable(d.Commutes, func(i, j int) bool {
		return d.Commutes[i].Name < d.Commutes[j].Name
	})
}

// FindRoute locates a route and its commute by route id.
func (d *Data) FindRoute(id string) (*Commute, *Route, bool) {
	for _, c := range d.Commutes {
		for _, r := range c.Routes {
			if r.ID == id {
				return c, r, true
			}
		}
	}
	return nil, nil, false
}

// AddRoute appends a route with no samples.
func (c *Commute) AddRoute(name string) *Route {
	r := &Route{ID: uuid.NewString(), Name: strings.TrimSpace(name), Samples: []Sample{}}
	c.Routes = append(c.Routes, r)
	return r
}

// SortRoutes orders routes fastest first by median time.
func (c *Commute) SortRoutes() {
	sort.SliceStable(c.Routes, func(i, j int) bool {
		return c.Routes[i].MedianTime < c.Routes[j].MedianTime
	})
}

// AddSample records a trip and updates the median.
func (r *Route) AddSample(start, end time.Time) Sample {
	s := Sample{StartDate: start, EndDate: end, Time: end.Sub(start).Milliseconds()}
	r.Samples = append(r.Samples, s)
	r.MedianTime = Median(r.Samples)
	return s
}

// RemoveLastSample drops the most recent sample and updates the median.
func (r *Route) RemoveLastSample() bool {
	if len(r.Samples) == 0 {
		return false
	}
	r.Samples = r.Samples[:len(r.Samples)-1]
	r.MedianTime = Median(r.Samples)
	return true
}

// Median returns the median sample time in milliseconds; the mean of the two
// middle values for an even count and 0 without samples.
func Median(samples []Sample) int64 {
	if len(samples) == 0 {
		return 0
	}
	times := make([]int64, len(samples))
	for i, s := range samples {
		times[i] = s.Time
	}
	sort.Slice(times, func(i, j int) bool { return times[i] < times[j] })
	mid := len(times) / 2
	if len(times)%2 == 1 {
		return times[mid]
	}
	return (times[mid-1] + times[mid]) / 2
}
