// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
)

// ErrUnsupportedJSONValue is returned when a loosely typed request field
// receives a JSON value of a kind it cannot represent (object, array, ...).
var ErrUnsupportedJSONValue = errors.New("unsupported JSON value")

// FlexString is a request field that accepts either a JSON string or a JSON
// number and keeps its textual form. Clients send phone numbers, PIN codes and
// customer IDs both ways.
//
// JSON null decodes to the empty string, which the validators treat as absent.
type FlexString string

// UnmarshalJSON implements [json.Unmarshaler].
func (s *FlexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*s = ""
		return nil
	}

	if len(b) > 0 && b[0] == '"' {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		*s = FlexString(str)
		return nil
	}

	var num json.Number
	if err := json.Unmarshal(b, &num); err != nil {
		return ErrUnsupportedJSONValue
	}
	*s = FlexString(num.String())
	return nil
}

// String returns the raw textual value.
func (s FlexString) String() string {
	return string(s)
}

// Flag is a boolean request field that also accepts the integers 0 and 1,
// matching how the store persists it.
type Flag bool

// UnmarshalJSON implements [json.Unmarshaler].
func (f *Flag) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch string(b) {
	case "null", "false", "0", `"0"`, `"false"`, `""`:
		*f = false
		return nil
	case "true", "1", `"1"`, `"true"`:
		*f = true
		return nil
	}

	// any other non-zero number counts as set
	if n, err := strconv.ParseFloat(string(b), 64); err == nil {
		*f = n != 0
		return nil
	}

	return ErrUnsupportedJSONValue
}

// Int returns 1 for a set flag and 0 otherwise.
func (f Flag) Int() int {
	if f {
		return 1
	}
	return 0
}
