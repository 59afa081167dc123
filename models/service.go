package models

// Service is a treatment offered by the clinic together with its daily slot catalog.
type Service struct {
	ID    string   `bson:"id" json:"id"`
	Name  string   `bson:"name" json:"name"`
	Slots []string `bson:"slots" json:"slots"`
	Price float64  `bson:"price" json:"price"`
}

// ServiceSummary is the minimal projection returned by the service listing.
type ServiceSummary struct {
	ID   string `bson:"id" json:"id"`
	Name string `bson:"name" json:"name"`
}

// AvailabilityView is a service with only the slots still open on a given date.
// It is computed on demand and never stored.
type AvailabilityView struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Slots []string `json:"slots"`
	Price float64  `json:"price"`
}
