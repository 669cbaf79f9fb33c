package models

import "time"

// Response is the envelope of every successful JSON response that is not a
// listing. Data and Message are omitted when empty.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// CustomerListResponse is the body of GET /api/customers.
type CustomerListResponse struct {
	Success    bool               `json:"success"`
	Data       []CustomerListItem `json:"data"`
	Pagination Pagination         `json:"pagination"`
	Filters    ListFilters        `json:"filters"`
}

// AddressListResponse is the body of GET /api/customers/{id}/addresses.
type AddressListResponse struct {
	Success bool      `json:"success"`
	Data    []Address `json:"data"`
}

// CustomerAddressesResponse is the body of
// GET /api/addresses/customer/{customerId}.
type CustomerAddressesResponse struct {
	Success bool      `json:"success"`
	Data    []Address `json:"data"`
	Total   int       `json:"total"`

	// CustomerID is nil when the path segment is not an integer.
	CustomerID *int64 `json:"customer_id"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`

	// Error carries detail that is only echoed outside production.
	Error string `json:"error,omitempty"`

	// MissingFields maps each required field to true when it was absent.
	MissingFields map[string]bool `json:"missing_fields,omitempty"`
}

// Health is the body of GET /api/health.
type Health struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`

	// Uptime is the number of seconds since the process started.
	Uptime   float64 `json:"uptime"`
	Database string  `json:"database"`
	Version  string  `json:"version,omitempty"`
}

// Health statuses.
const (
	HealthStatusOK       = "OK"
	HealthStatusDegraded = "DEGRADED"

	DatabaseConnected    = "Connected"
	DatabaseDisconnected = "Disconnected"
)
