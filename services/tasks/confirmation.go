package tasks

import (
	"encoding/json"
	"time"

	"doctorsportal/models"

	"github.com/hibiken/asynq"
)

const TypeBookingConfirmation = "booking:confirmation"

// ConfirmationPayload is the JSON body of a TypeBookingConfirmation task.
type ConfirmationPayload struct {
	Booking models.Booking `json:"booking"`
}

// NewConfirmationTask builds the mail task for one stored booking. The task id is derived
// from the booking id, so a booking is queued at most once.
func NewConfirmationTask(b models.Booking) (*asynq.Task, error) {
	payload, err := json.Marshal(ConfirmationPayload{Booking: b})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeBookingConfirmation, payload,
		asynq.MaxRetry(5),
		asynq.Timeout(30*time.Second),
		asynq.TaskID("confirm:"+b.ID),
	), nil
}

// DecodeConfirmation parses the payload of a confirmation task.
func DecodeConfirmation(task *asynq.Task) (ConfirmationPayload, error) {
	var p ConfirmationPayload
	err := json.Unmarshal(task.Payload(), &p)
	return p, err
}
