package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// CalendarLayout is the wire format for exercise dates: a human-readable
// calendar day with no time component.
const CalendarLayout = "Mon Jan 02 2006"

// Date is a calendar day. It stores as a plain date column and marshals to
// JSON as a CalendarLayout string, so every serialized exercise renders its
// date the same way without per-handler formatting.
type Date struct {
	time.Time
}

func NewDate(t time.Time) Date {
	return Date{t}
}

func (d Date) String() string {
	return d.Format(CalendarLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	t, err := time.Parse(CalendarLayout, s)
	if err != nil {
		return err
	}

	d.Time = t
	return nil
}

func (d Date) Value() (driver.Value, error) {
	return d.Time, nil
}

func (d *Date) Scan(src any) error {
	switch src := src.(type) {
	case time.Time:
		d.Time = src
		return nil
	case string:
		t, err := time.Parse(time.DateOnly, src)
		if err != nil {
			return err
		}
		d.Time = t
		return nil
	default:
		return fmt.Errorf("model: cannot scan %T into Date", src)
	}
}
