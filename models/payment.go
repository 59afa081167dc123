package models

import "time"

// Payment records a settled card payment for a booking.
type Payment struct {
	ID            string    `bson:"id" json:"id"`
	BookingID     string    `bson:"bookingId" json:"bookingId"`
	Email         string    `bson:"email" json:"email"`
	TransactionID string    `bson:"transactionId" json:"transactionId"`
	Amount        float64   `bson:"amount" json:"amount"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
}

// PaymentRequest is the payload accepted by POST /payments.
type PaymentRequest struct {
	BookingID     string  `json:"bookingId"`
	Email         string  `json:"email"`
	TransactionID string  `json:"transactionId"`
	Amount        float64 `json:"amount"`
}

func (r PaymentRequest) Validate() error {
	switch {
	case r.BookingID == "":
		return NewValidationError("bookingId", "is required")
	case r.TransactionID == "":
		return NewValidationError("transactionId", "is required")
	case r.Amount <= 0:
		return NewValidationError("amount", "must be positive")
	}
	return nil
}
