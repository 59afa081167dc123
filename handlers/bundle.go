package handlers

import "doctorsportal/middleware"

// HandlerBundle groups every endpoint handler, plus the auth pieces the routes need.
type HandlerBundle struct {
	Tokens middleware.Verifier
	Gate   middleware.AdminGate

	CatalogHandler *CatalogHandler
	BookingHandler *BookingHandler
	UserHandler    *UserHandler
	AdminHandler   *AdminHandler
	PaymentHandler *PaymentHandler
}
