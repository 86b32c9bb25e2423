package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
)

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "Pending"
	PaymentStatusPaid    PaymentStatus = "Paid"
	PaymentStatusPartial PaymentStatus = "Partial"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusPartial:
		return true
	}
	return false
}

// BillItem is a stored line item. Only items that pass the billing
// engine's filter end up here.
type BillItem struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Price       float64 `json:"price"`
}

// BillItems round-trips the line items through a JSONB column.
type BillItems []BillItem

func (b BillItems) Value() (driver.Value, error) {
	return json.Marshal(b)
}

func (b *BillItems) Scan(v interface{}) error {
	switch data := v.(type) {
	case []byte:
		return json.Unmarshal(data, b)
	case string:
		return json.Unmarshal([]byte(data), b)
	case nil:
		*b = nil
		return nil
	default:
		return fmt.Errorf("cannot scan %T into BillItems", v)
	}
}

type Bill struct {
	Base
	PatientID     uuid.UUID     `db:"patient_id" json:"-"`
	AppointmentID *uuid.UUID    `db:"appointment_id" json:"-"`
	Amount        float64       `db:"amount" json:"amount"`
	Items         BillItems     `db:"items" json:"items"`
	PaymentStatus PaymentStatus `db:"payment_status" json:"paymentStatus"`
	PaymentDate   *time.Time    `db:"payment_date" json:"paymentDate,omitempty"`

	// Resolved at read time; nil when the reference dangles.
	Patient     *PatientRef     `db:"-" json:"patient,omitempty"`
	Appointment *AppointmentRef `db:"-" json:"appointment,omitempty"`
}

// BillItemInput is a raw line item as submitted by a client. Quantity
// and price are accepted in whatever shape the client sent them and
// coerced to numbers by the billing engine; anything non-numeric
// counts as zero.
type BillItemInput struct {
	Description string      `json:"description"`
	Quantity    interface{} `json:"quantity"`
	Price       interface{} `json:"price"`
}

// Coerce converts a raw quantity/price value to a float64, treating
// missing and non-numeric values as zero.
func Coerce(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0
		}
		return f
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

type CreateBillRequest struct {
	Patient       *uuid.UUID      `json:"patient"`
	Appointment   *uuid.UUID      `json:"appointment"`
	Items         []BillItemInput `json:"items"`
	PaymentStatus PaymentStatus   `json:"paymentStatus" binding:"omitempty,enum"`
	PaymentDate   string          `json:"paymentDate"`
}

// UpdateBillRequest carries a partial update. Nil fields were absent
// from the payload and leave the stored value untouched. Appointment
// and PaymentDate are strings so that an explicit empty value can
// clear the stored one.
type UpdateBillRequest struct {
	Patient       *uuid.UUID       `json:"patient"`
	Appointment   *string          `json:"appointment"`
	Amount        *float64         `json:"amount"`
	Items         *[]BillItemInput `json:"items"`
	PaymentStatus *PaymentStatus   `json:"paymentStatus" binding:"omitempty,enum"`
	PaymentDate   *string          `json:"paymentDate"`
}
