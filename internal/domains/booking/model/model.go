package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID          = "id"
	FieldType        = "booking_type"
	FieldTitle       = "title"
	FieldReferenceNo = "reference_no"
	FieldFlightDate  = "flight_date"
	FieldFlightTime  = "flight_time"
	FieldStatus      = "status"
)

const (
	TypeFlight = "flight"

	StatusConfirmed = "confirmed"
)

// detailLayoverKey flags a segment as a connection in the details map; the
// ticket renders with the layover accent when it is present with this value.
const (
	detailLayoverKey   = "備註"
	detailLayoverValue = "轉機航班"
)

// Details is the free-form label/value block printed on the ticket body,
// stored as JSONB. Keys are display labels (出發, 抵達, 飛行時間, 備註).
type Details map[string]string

func (d Details) Value() (driver.Value, error) {
	if len(d) == 0 {
		return nil, nil
	}

	raw, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal booking details: %w", err)
	}

	return raw, nil
}

func (d *Details) Scan(src any) error {
	if src == nil {
		*d = nil

		return nil
	}

	raw, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("unsupported booking details source type %T", src)
	}

	if err := json.Unmarshal(raw, d); err != nil {
		return fmt.Errorf("failed to unmarshal booking details: %w", err)
	}

	return nil
}

type Booking struct {
	ID          string  `db:"id"`
	Type        string  `db:"booking_type"`
	Title       string  `db:"title"`
	SubTitle    string  `db:"sub_title"`
	ReferenceNo string  `db:"reference_no"`
	FlightDate  string  `db:"flight_date"`
	FlightTime  string  `db:"flight_time"`
	Details     Details `db:"details"`
	Status      string  `db:"status"`
}

// Layover reports whether the segment is a connecting flight.
func (b Booking) Layover() bool {
	return b.Details[detailLayoverKey] == detailLayoverValue
}
