package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Room is one bookable unit as served by the rooms endpoint.
// Field names follow the API's JSON, which capitalises most of them.
// The id is opaque: some backends send it as a number.
type Room struct {
	ID       Attribute `json:"id" yaml:"id"`
	Title    string    `json:"Title" yaml:"title"`
	Price    Price     `json:"Price" yaml:"price"`
	Size     Attribute `json:"Size" yaml:"size"`
	Capacity Attribute `json:"Capacity" yaml:"capacity"`
	Bed      string    `json:"Bed" yaml:"bed"`
	Services Services  `json:"Services" yaml:"services"`
	Image    string    `json:"image" yaml:"image"`
}

// Attribute is a display value the API sends either as a string ("30 ft")
// or as a bare number (3).
type Attribute string

// UnmarshalJSON accepts a JSON string, number or null.
func (a *Attribute) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*a = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*a = Attribute(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("room attribute must be a string or number, got %s", b)
	}
	*a = Attribute(n.String())
	return nil
}

func (a Attribute) String() string {
	return string(a)
}

// Price is the nightly rate. The API sends a number or a numeric string ("150").
type Price float64

// UnmarshalJSON accepts a JSON number, a numeric string or null.
func (p *Price) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*p = 0
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		if s = strings.TrimSpace(s); s == "" {
			*p = 0
			return nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("room price must be a number, got %q", s)
		}
		*p = Price(f)
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return fmt.Errorf("room price must be a number, got %s", b)
	}
	*p = Price(f)
	return nil
}

func (p Price) String() string {
	return strconv.FormatFloat(float64(p), 'f', -1, 64)
}

// Services lists a room's amenities. The API sends either an array or a
// single comma-separated string.
type Services []string

// UnmarshalJSON accepts a JSON array of strings, a comma-separated string or null.
func (s *Services) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*s = nil
		return nil
	}
	if len(b) > 0 && b[0] == '[' {
		var list []string
		if err := json.Unmarshal(b, &list); err != nil {
			return err
		}
		*s = list
		return nil
	}
	var joined string
	if err := json.Unmarshal(b, &joined); err != nil {
		return fmt.Errorf("room services must be a list or a string, got %s", b)
	}
	var list []string
	for _, part := range strings.Split(joined, ",") {
		if part = strings.TrimSpace(part); part != "" {
			list = append(list, part)
		}
	}
	*s = list
	return nil
}

func (s Services) String() string {
	return strings.Join(s, ", ")
}
