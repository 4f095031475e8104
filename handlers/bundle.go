package handlers

// HandlerBundle aggregates the handlers wired in main so routes can be
// registered in one place.
type HandlerBundle struct {
	Catalog *CatalogHandler
	Booking *BookingHandler
	Payment *PaymentHandler
	Quote   *QuoteHandler
}
