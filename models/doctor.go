package models

import "strings"

// Doctor is a clinic doctor managed by admins.
type Doctor struct {
	ID        string `bson:"id" json:"id"`
	Name      string `bson:"name" json:"name"`
	Email     string `bson:"email" json:"email"`
	Specialty string `bson:"specialty" json:"specialty"`
	Image     string `bson:"image,omitempty" json:"image,omitempty"`
}

func (d Doctor) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return NewValidationError("name", "is required")
	}
	if !strings.Contains(d.Email, "@") {
		return NewValidationError("email", "is not a valid address")
	}
	return nil
}
