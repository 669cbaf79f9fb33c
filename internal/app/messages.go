// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the message strings written into HTTP response bodies
// by the customer API handlers and the error translator.
package app

// Success messages.
const (
	MsgAPIRunning = "Customer Management API is running"

	MsgCustomerCreated = "Customer created successfully"
	MsgCustomerUpdated = "Customer updated successfully"
	MsgCustomerDeleted = "Customer deleted successfully"

	MsgAddressCreated = "Address added successfully"
	MsgAddressUpdated = "Address updated successfully"
	MsgAddressDeleted = "Address deleted successfully"
)

// Resource failures reported by the handlers themselves.
const (
	MsgCustomerNotFound = "Customer not found"
	MsgAddressNotFound  = "Address not found"

	// MsgPhoneAlreadyExists and MsgEmailAlreadyExists accompany a 409.
	MsgPhoneAlreadyExists = "Phone number already exists"
	MsgEmailAlreadyExists = "Email already exists"

	// MsgDatabaseError accompanies a 500 on a failed customer write.
	MsgDatabaseError = "Database error"

	// MsgNotFoundPrefix is followed by the requested path.
	MsgNotFoundPrefix = "Not Found - "
)

// Messages of the error translator, in its order of precedence.
const (
	MsgDatabaseErrorOccurred = "Database error occurred"
	MsgInvalidDataProvided   = "Invalid data provided"

	MsgInvalidJSON = "Invalid JSON format in request body"

	MsgResourceNotFound = "Requested resource not found"
	MsgAccessDenied     = "Access denied"

	MsgInternalServerError = "Internal server error"
	MsgSomethingWentWrong  = "Something went wrong"
)
