package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"sensitive-places-api/internal/models"
	"sensitive-places-api/internal/repository"
)

// parsePlaces reads id,name,lat,lng,tags,locality rows. Tags are
// '|'-separated; empty lat and lng leave the location unset.
func parsePlaces(r io.Reader) ([]models.RawPlace, error) {
	rows, err := readRows(r, 5)
	if err != nil {
		return nil, err
	}

	places := make([]models.RawPlace, 0, len(rows))
	for i, record := range rows {
		p := models.RawPlace{
			ID:   strings.TrimSpace(record[0]),
			Name: strings.TrimSpace(record[1]),
		}

		if strings.TrimSpace(record[2]) != "" || strings.TrimSpace(record[3]) != "" {
			loc, err := parseCoordinates(record[2], record[3])
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", i+2, err)
			}
			p.Location = &loc
		}

		for _, tag := range strings.Split(record[4], "|") {
			if tag = strings.TrimSpace(tag); tag != "" {
				p.Tags = append(p.Tags, tag)
			}
		}
		if len(record) > 5 {
			p.Locality = strings.TrimSpace(record[5])
		}
		places = append(places, p)
	}
	return places, nil
}

// parseAddresses reads full_address,lat,lng rows.
func parseAddresses(r io.Reader, country string) ([]repository.AddressRecord, error) {
	rows, err := readRows(r, 3)
	if err != nil {
		return nil, err
	}

	records := make([]repository.AddressRecord, 0, len(rows))
	for i, record := range rows {
		address := strings.TrimSpace(record[0])
		if address == "" {
			return nil, fmt.Errorf("row %d: empty address", i+2)
		}
		loc, err := parseCoordinates(record[1], record[2])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		records = append(records, repository.AddressRecord{
			FullAddress: address,
			Country:     strings.ToUpper(country),
			Location:    loc,
		})
	}
	return records, nil
}

func readRows(r io.Reader, minFields int) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // Allow variable number of fields

	// Skip header
	if _, err := reader.Read(); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	var rows [][]string
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record: %w", err)
		}
		if len(record) < minFields {
			return nil, fmt.Errorf("invalid record length: %d, expected at least %d columns", len(record), minFields)
		}
		rows = append(rows, record)
	}
	return rows, nil
}

func parseCoordinates(latStr, lngStr string) (models.Coordinates, error) {
	lat, err := strconv.ParseFloat(strings.TrimSpace(latStr), 64)
	if err != nil {
		return models.Coordinates{}, fmt.Errorf("invalid latitude: %s", latStr)
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(lngStr), 64)
	if err != nil {
		return models.Coordinates{}, fmt.Errorf("invalid longitude: %s", lngStr)
	}
	c := models.Coordinates{Lat: lat, Lng: lng}
	if !c.Valid() {
		return models.Coordinates{}, fmt.Errorf("coordinates out of range: %s", c)
	}
	return c, nil
}
