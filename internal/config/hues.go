package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/tidwall/gjson"
)

// Hue is one named entry of the theme's colour mapping.
type Hue struct {
	Name  string
	Value float64
}

// Hues is an insertion-ordered name → hue mapping. The order is the order in which
// custom properties are emitted, so it is kept exactly as written in seyuna.json.
// A nil Hues means "not specified".
type Hues []Hue

// Get returns the hue stored under name.
func (h Hues) Get(name string) (float64, bool) {
	for _, e := range h {
		if e.Name == name {
			return e.Value, true
		}
	}
	return 0, false
}

// Set replaces the value of an existing name in place, or appends a new entry.
func (h *Hues) Set(name string, value float64) {
	for i := range *h {
		if (*h)[i].Name == name {
			(*h)[i].Value = value
			return
		}
	}
	*h = append(*h, Hue{Name: name, Value: value})
}

// Names returns the keys in order.
func (h Hues) Names() []string {
	names := make([]string, len(h))
	for i, e := range h {
		names[i] = e.Name
	}
	return names
}

// Clone returns an independent copy (nil stays nil).
func (h Hues) Clone() Hues {
	if h == nil {
		return nil
	}
	out := make(Hues, len(h))
	copy(out, h)
	return out
}

// MarshalJSON writes the mapping as a JSON object, preserving order.
func (h Hues) MarshalJSON() ([]byte, error) {
	if h == nil {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range h {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.Name)
		if err != nil {
			return nil, err
		}
		if math.IsNaN(e.Value) || math.IsInf(e.Value, 0) {
			return nil, fmt.Errorf("hue %q is not a finite number", e.Name)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.WriteString(strconv.FormatFloat(e.Value, 'f', -1, 64))
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object in document order. encoding/json decodes objects
// into Go maps, which would lose the ordering, so the raw object is walked with gjson.
func (h *Hues) UnmarshalJSON(data []byte) error {
	if !gjson.ValidBytes(data) {
		return errors.New("colors: invalid JSON")
	}
	res := gjson.ParseBytes(data)
	if res.Type == gjson.Null {
		*h = nil
		return nil
	}
	if !res.IsObject() {
		return fmt.Errorf("colors: expected an object of name → hue, got %s", res.Type)
	}

	out := Hues{}
	var err error
	res.ForEach(func(key, value gjson.Result) bool {
		if value.Type != gjson.Number {
			err = fmt.Errorf("colors.%s: hue must be a number, got %s", key.String(), value.Type)
			return false
		}
		out.Set(key.String(), value.Float())
		return true
	})
	if err != nil {
		return err
	}
	*h = out
	return nil
}
