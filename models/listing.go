// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"slices"
	"strings"
)

// Listing defaults applied when the corresponding query parameter is absent.
const (
	DefaultPage  = 1
	DefaultLimit = 10

	DefaultSortField = "id"

	SortOrderAsc  = "ASC"
	SortOrderDesc = "DESC"
)

// SortableCustomerFields is the allow-list of customer columns the listing
// may be ordered by. Anything else falls back to [DefaultSortField].
var SortableCustomerFields = []string{"id", "first_name", "last_name", "phone_number", "created_at"}

// CustomerListQuery holds the parameters of a customer listing request.
// Page and Limit are passed to the store as-is; zero or negative values are
// not corrected.
type CustomerListQuery struct {
	Page  int
	Limit int

	// Search is matched as a substring against first name, last name,
	// phone number and email.
	Search string

	// City, State and PinCode are matched as substrings against the
	// customer's addresses.
	City    string
	State   string
	PinCode string

	SortBy    string
	SortOrder string
}

// SortField returns the effective sort column.
func (q CustomerListQuery) SortField() string {
	if slices.Contains(SortableCustomerFields, q.SortBy) {
		return q.SortBy
	}
	return DefaultSortField
}

// SortDirection returns DESC only when SortOrder is "desc" in any letter
// case, ASC otherwise.
func (q CustomerListQuery) SortDirection() string {
	if strings.ToUpper(q.SortOrder) == SortOrderDesc {
		return SortOrderDesc
	}
	return SortOrderAsc
}

// Offset returns the number of rows skipped before the requested page.
func (q CustomerListQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

// Filters echoes the effective listing parameters back to the client.
func (q CustomerListQuery) Filters() ListFilters {
	return ListFilters{
		Search:    q.Search,
		City:      q.City,
		State:     q.State,
		PinCode:   q.PinCode,
		SortBy:    q.SortField(),
		SortOrder: q.SortDirection(),
	}
}

// ListFilters is the "filters" object of a listing response.
type ListFilters struct {
	Search    string `json:"search"`
	City      string `json:"city"`
	State     string `json:"state"`
	PinCode   string `json:"pin_code"`
	SortBy    string `json:"sort_by"`
	SortOrder string `json:"sort_order"`
}

// Pagination is the "pagination" object of a listing response.
type Pagination struct {
	CurrentPage int  `json:"current_page"`
	PerPage     int  `json:"per_page"`
	Total       int  `json:"total"`
	TotalPages  int  `json:"total_pages"`
	HasNextPage bool `json:"has_next_page"`
	HasPrevPage bool `json:"has_prev_page"`
}

// NewPagination derives pagination metadata for page of size limit over
// total matching rows. TotalPages is ceil(total/limit), or 0 when limit is
// not positive.
func NewPagination(page, limit, total int) Pagination {
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}

	return Pagination{
		CurrentPage: page,
		PerPage:     limit,
		Total:       total,
		TotalPages:  totalPages,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1,
	}
}

// CustomerPage is one page of the customer listing.
type CustomerPage struct {
	Data       []CustomerListItem
	Pagination Pagination
	Filters    ListFilters
}
