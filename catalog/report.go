package catalog

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// Report is a YAML snapshot of one or more hotel catalogs.
type Report struct {
	Hotels []HotelRooms `yaml:"hotels"`
}

// HotelRooms is the catalog of a single hotel.
type HotelRooms struct {
	HotelID string `yaml:"hotel_id"`
	Rooms   []Room `yaml:"rooms"`
}

// Rooms returns the catalog for hotelID.
func (r *Report) Rooms(hotelID string) ([]Room, bool) {
	for _, h := range r.Hotels {
		if h.HotelID == hotelID {
			return h.Rooms, true
		}
	}
	return nil, false
}

// WriteReport writes r sorted by hotel id, rooms sorted by title.
// r itself is left untouched.
func WriteReport(w io.Writer, r Report) error {
	hotels := make([]HotelRooms, len(r.Hotels))
	for i, h := range r.Hotels {
		rooms := slices.Clone(h.Rooms)
		slices.SortStableFunc(rooms, func(a, b Room) int {
			return strings.Compare(a.Title, b.Title)
		})
		hotels[i] = HotelRooms{HotelID: h.HotelID, Rooms: rooms}
	}
	slices.SortStableFunc(hotels, func(a, b HotelRooms) int {
		return strings.Compare(a.HotelID, b.HotelID)
	})

	if _, err := io.WriteString(w, "# Room catalog report\n\n"); err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(Report{Hotels: hotels}); err != nil {
		return fmt.Errorf("failed to encode room report: %w", err)
	}
	return enc.Close()
}

// ReadReport parses a report written by WriteReport (or by hand).
func ReadReport(r io.Reader) (*Report, error) {
	var report Report
	if err := yaml.NewDecoder(r).Decode(&report); err != nil {
		return nil, fmt.Errorf("failed to decode room report: %w", err)
	}
	return &report, nil
}
