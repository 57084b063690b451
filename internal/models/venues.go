package models

import (
	"database/sql/driver"
	"fmt"
	"strconv"
	"strings"
)

// Coordinates is a WGS84 point. JSON uses the short lat/lng keys the frontend expects.
type Coordinates struct {
	Latitude  float64 `json:"lat" bson:"lat"`
	Longitude float64 `json:"lng" bson:"lng"`
}

// Scan reads coordinates from "lat,lng" or WKT "POINT(lng lat)" text.
func (c *Coordinates) Scan(src interface{}) error {
	var dataStr string

	switch v := src.(type) {
	case []byte:
		dataStr = string(v)
	case string:
		dataStr = v
	case nil:
		c.Latitude = 0
		c.Longitude = 0
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Coordinates", src)
	}
	dataStr = strings.TrimSpace(dataStr)

	var lon, lat float64
	if _, err := fmt.Sscanf(dataStr, "POINT(%f %f)", &lon, &lat); err == nil {
		c.Latitude = lat
		c.Longitude = lon
		return c.validate()
	}

	if parts := strings.Split(dataStr, ","); len(parts) == 2 {
		if lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64); err == nil {
			if lng, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64); err == nil {
				c.Latitude = lat
				c.Longitude = lng
				return c.validate()
			}
		}
	}

	return fmt.Errorf("failed to parse coordinates from: %q", dataStr)
}

func (c *Coordinates) validate() error {
	if c.Latitude < -90 || c.Latitude > 90 {
		return fmt.Errorf("latitude out of range: %f", c.Latitude)
	}
	if c.Longitude < -180 || c.Longitude > 180 {
		return fmt.Errorf("longitude out of range: %f", c.Longitude)
	}
	return nil
}

// Value writes coordinates as "lat,lng".
func (c Coordinates) Value() (driver.Value, error) {
	return fmt.Sprintf("%f,%f", c.Latitude, c.Longitude), nil
}

// Venue is immutable reference data used by the catalog generator.
type Venue struct {
	Name        string      `json:"name"`
	City        string      `json:"city"`
	State       string      `json:"state"`
	Capacity    int         `json:"capacity"`
	Coordinates Coordinates `json:"coordinates"`
}
