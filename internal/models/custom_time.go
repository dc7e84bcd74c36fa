package models

import (
	"strings"
	"time"
)

// FlexibleDate is a calendar day that unmarshals from both RFC3339
// timestamps and plain "YYYY-MM-DD" strings. The engine works in whole
// days, so it always marshals back to the date-only form.
type FlexibleDate struct {
	time.Time
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (f *FlexibleDate) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)

	if t, err := time.Parse(time.RFC3339, s); err == nil {
		f.Time = t
		return nil
	}

	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return err
	}
	f.Time = t
	return nil
}

// MarshalJSON implements the json.Marshaler interface.
func (f FlexibleDate) MarshalJSON() ([]byte, error) {
	return []byte(`"` + f.Time.Format("2006-01-02") + `"`), nil
}
