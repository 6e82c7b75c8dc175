package model

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

const (
	fechaLayout     = "2006-01-02"
	fechaHoraLayout = "2006-01-02 15:04:05"
)

// Fecha is a calendar date serialized as "YYYY-MM-DD", matching the wire
// format the frontend already sends for fecha and fecha_nacimiento fields.
type Fecha struct {
	time.Time
}

func NewFecha(t time.Time) Fecha {
	return Fecha{Time: t}
}

func (f Fecha) MarshalJSON() ([]byte, error) {
	if f.IsZero() {
		return []byte(`null`), nil
	}
	return []byte(`"` + f.Format(fechaLayout) + `"`), nil
}

func (f *Fecha) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		f.Time = time.Time{}
		return nil
	}
	t, err := parseDate(s)
	if err != nil {
		return err
	}
	f.Time = t
	return nil
}

func (f Fecha) Value() (driver.Value, error) {
	if f.IsZero() {
		return nil, nil
	}
	return f.Time, nil
}

func (f *Fecha) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		f.Time = time.Time{}
		return nil
	case time.Time:
		f.Time = v
		return nil
	case []byte:
		t, err := parseDate(string(v))
		if err != nil {
			return err
		}
		f.Time = t
		return nil
	case string:
		t, err := parseDate(v)
		if err != nil {
			return err
		}
		f.Time = t
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Fecha", src)
	}
}

// FechaHora is a timestamp serialized as "YYYY-MM-DD HH:MM:SS", the format
// the citas endpoints have always used for fecha_hora.
type FechaHora struct {
	time.Time
}

func NewFechaHora(t time.Time) FechaHora {
	return FechaHora{Time: t}
}

func (f FechaHora) MarshalJSON() ([]byte, error) {
	if f.IsZero() {
		return []byte(`null`), nil
	}
	return []byte(`"` + f.Format(fechaHoraLayout) + `"`), nil
}

func (f *FechaHora) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		f.Time = time.Time{}
		return nil
	}
	t, err := parseDateTime(s)
	if err != nil {
		return err
	}
	f.Time = t
	return nil
}

func (f FechaHora) Value() (driver.Value, error) {
	if f.IsZero() {
		return nil, nil
	}
	return f.Time, nil
}

func (f *FechaHora) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		f.Time = time.Time{}
		return nil
	case time.Time:
		f.Time = v
		return nil
	case []byte:
		t, err := parseDateTime(string(v))
		if err != nil {
			return err
		}
		f.Time = t
		return nil
	case string:
		t, err := parseDateTime(v)
		if err != nil {
			return err
		}
		f.Time = t
		return nil
	default:
		return fmt.Errorf("cannot scan %T into FechaHora", src)
	}
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range []string{fechaLayout, time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q, expected %s", s, fechaLayout)
}

func parseDateTime(s string) (time.Time, error) {
	for _, layout := range []string{fechaHoraLayout, "2006-01-02T15:04", "2006-01-02 15:04", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid datetime %q, expected %s", s, fechaHoraLayout)
}
