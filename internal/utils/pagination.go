// Package utils provides small, generic helper functions used across
// different layers of the application. These utilities are independent
// of domain or business logic.
package utils

import "strconv"

// AtoiDefault converts a string to an int using strconv.Atoi.
// If the string is empty or cannot be parsed as an integer,
// it returns the provided default value instead.
//
// Example:
//
//	n := utils.AtoiDefault("42", 0) // returns 42
//	n = utils.AtoiDefault("", 10)   // returns 10
//	n = utils.AtoiDefault("x", 5)   // returns 5
func AtoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	return def
}

// PageParams parses raw page and page_size values and bounds them: page is
// floored at 1, page_size is floored at 1 and capped at maxSize. Unparseable
// or empty values fall back to 1 and defSize respectively.
//
// Every paginated listing (catalog pages, admin product and order searches,
// account lists) funnels through this so the bounds stay uniform.
func PageParams(pageRaw, sizeRaw string, defSize, maxSize int) (page, pageSize int) {
	page = AtoiDefault(pageRaw, 1)
	if page < 1 {
		page = 1
	}
	pageSize = AtoiDefault(sizeRaw, defSize)
	if pageSize < 1 {
		pageSize = 1
	}
	if pageSize > maxSize {
		pageSize = maxSize
	}
	return page, pageSize
}
