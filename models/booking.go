package models

import (
	"strings"
	"time"
)

// Booking represents a patient's reservation of one slot of one treatment on one date.
type Booking struct {
	ID            string    `bson:"id" json:"id"`
	PatientName   string    `bson:"patientName" json:"patientName"`
	Email         string    `bson:"email" json:"email"`
	Phone         string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Treatment     string    `bson:"treatment" json:"treatment"`
	Date          string    `bson:"date" json:"date"` // calendar day as sent by the client
	Slot          string    `bson:"slot" json:"slot"`
	Price         float64   `bson:"price,omitempty" json:"price,omitempty"`
	Paid          bool      `bson:"paid" json:"paid"`
	TransactionID string    `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
}

// BookingKey is the duplicate-detection key. Values are compared verbatim.
type BookingKey struct {
	Treatment string
	Date      string
	Email     string
}

// Key returns the duplicate-detection key of the booking.
func (b Booking) Key() BookingKey {
	return BookingKey{Treatment: b.Treatment, Date: b.Date, Email: b.Email}
}

// BookingRequest is the payload accepted by POST /booking.
type BookingRequest struct {
	PatientName string  `json:"patientName"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
	Treatment   string  `json:"treatment"`
	Date        string  `json:"date"`
	Slot        string  `json:"slot"`
	Price       float64 `json:"price"`
}

// Validate reports the first missing required field.
func (r BookingRequest) Validate() error {
	required := []struct{ field, value string }{
		{"patientName", r.PatientName},
		{"email", r.Email},
		{"treatment", r.Treatment},
		{"date", r.Date},
		{"slot", r.Slot},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return NewValidationError(f.field, "is required")
		}
	}
	if !strings.Contains(r.Email, "@") {
		return NewValidationError("email", "is not a valid address")
	}
	if r.Price < 0 {
		return NewValidationError("price", "must not be negative")
	}
	return nil
}

// ToBooking builds an unsaved booking from the request without normalising any field.
func (r BookingRequest) ToBooking() Booking {
	return Booking{
		PatientName: r.PatientName,
		Email:       r.Email,
		Phone:       r.Phone,
		Treatment:   r.Treatment,
		Date:        r.Date,
		Slot:        r.Slot,
		Price:       r.Price,
	}
}
