package models

import (
	"encoding/json"
	"fmt"
)

// Coordinates is a WGS84 latitude/longitude pair.
type Coordinates struct {
	Lat float64
	Lng float64
}

// Valid reports whether the pair lies within [-90,90] x [-180,180].
func (c Coordinates) Valid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lng >= -180 && c.Lng <= 180
}

func (c Coordinates) String() string {
	return fmt.Sprintf("%f,%f", c.Lat, c.Lng)
}

// MarshalJSON encodes the pair as [lat, lng].
func (c Coordinates) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{c.Lat, c.Lng})
}

// UnmarshalJSON decodes a [lat, lng] pair.
func (c *Coordinates) UnmarshalJSON(data []byte) error {
	var pair [2]float64
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("models: coordinates must be a [lat, lng] pair: %w", err)
	}
	c.Lat, c.Lng = pair[0], pair[1]
	return nil
}

// Location is a classified place near a search center.
type Location struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Category    Category    `json:"category"`
	Coordinates Coordinates `json:"coordinates"`
	Distance    int         `json:"distance"`
	Address     string      `json:"address,omitempty"`
}

// SearchResult holds the two disjoint location sets of one search.
type SearchResult struct {
	SensitivePlaces []Location `json:"sensitivePlaces"`
	BettingShops    []Location `json:"bettingShops"`
	TotalCount      int        `json:"totalCount"`
}

// NearbySearch is a SearchResult together with the query that produced it.
type NearbySearch struct {
	Center Coordinates `json:"center"`
	Radius int         `json:"radius"`
	SearchResult
	Stats SearchStats `json:"stats"`
}
