// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// DefaultPageSize is the number of rows in a page when only a page number
// is known.
const DefaultPageSize = 30

// Page limits a listing query. The zero value means "everything".
type Page struct {
	Limit  uint64 `json:"limit"`
	Offset uint64 `json:"offset"`
}

// PageNumber returns the page with the given 1-based number and
// DefaultPageSize rows. Numbers below 1 are treated as 1.
func PageNumber(n uint64) Page {
	if n < 1 {
		n = 1
	}

	return Page{Limit: DefaultPageSize, Offset: (n - 1) * DefaultPageSize}
}
