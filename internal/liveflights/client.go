// Package liveflights proxies the OpenSky network's state-vector snapshot.
// The feed is an opaque external source: rows are mapped and filtered, never
// persisted.
package liveflights

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const DefaultBaseURL = "https://opensky-network.org/api"

type LiveFlight struct {
	Callsign      string     `json:"callsign"`
	OriginCountry string     `json:"origin_country"`
	TimePosition  *time.Time `json:"time_position"`
	Longitude     *float64   `json:"longitude"`
	Latitude      *float64   `json:"latitude"`
	BaroAltitude  *float64   `json:"baro_alt_m"`
	OnGround      bool       `json:"on_ground"`
}

// Filter narrows a snapshot. Country and Callsign match as case-insensitive
// substrings; Limit caps the number of rows returned (0 means no cap).
type Filter struct {
	Country  string
	Callsign string
	Limit    int
}

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// statesResponse mirrors the OpenSky payload: each state is a positional
// array of mixed types.
type statesResponse struct {
	Time   int64   `json:"time"`
	States [][]any `json:"states"`
}

func (c *Client) Snapshot(ctx context.Context, filter Filter) ([]LiveFlight, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/states/all", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch live flights: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch live flights: unexpected status %d", resp.StatusCode)
	}

	var payload statesResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode live flights: %w", err)
	}

	flights := make([]LiveFlight, 0)
	for _, state := range payload.States {
		f := mapState(state)
		if !matches(f, filter) {
			continue
		}
		flights = append(flights, f)
		if filter.Limit > 0 && len(flights) >= filter.Limit {
			break
		}
	}
	return flights, nil
}

// mapState reads the positional fields this service cares about:
// 1 callsign, 2 origin country, 3 time of position, 5 longitude,
// 6 latitude, 7 barometric altitude, 8 on ground.
func mapState(state []any) LiveFlight {
	var f LiveFlight
	if s, ok := index[string](state, 1); ok {
		f.Callsign = strings.TrimSpace(s)
	}
	f.OriginCountry, _ = index[string](state, 2)
	if ts, ok := index[float64](state, 3); ok {
		t := time.Unix(int64(ts), 0).UTC()
		f.TimePosition = &t
	}
	if v, ok := index[float64](state, 5); ok {
		f.Longitude = &v
	}
	if v, ok := index[float64](state, 6); ok {
		f.Latitude = &v
	}
	if v, ok := index[float64](state, 7); ok {
		f.BaroAltitude = &v
	}
	f.OnGround, _ = index[bool](state, 8)
	return f
}

func index[T any](state []any, i int) (T, bool) {
	var zero T
	if i >= len(state) {
		return zero, false
	}
	v, ok := state[i].(T)
	if !ok {
		return zero, false
	}
	return v, true
}

func matches(f LiveFlight, filter Filter) bool {
	if filter.Country != "" && !strings.Contains(strings.ToLower(f.OriginCountry), strings.ToLower(filter.Country)) {
		return false
	}
	if filter.Callsign != "" && !strings.Contains(strings.ToLower(f.Callsign), strings.ToLower(filter.Callsign)) {
		return false
	}
	return true
}
