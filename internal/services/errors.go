// Package services defines the business logic for the catalog, orders, and
// user accounts. This file centralizes common service-level error values so
// that they can be consistently returned by service methods and checked by
// callers.
//
// These errors are intended for internal use by the service layer and
// translation into user-facing messages or HTTP status codes should be
// performed at the handler/controller layer.
package services

import "errors"

// Order placement errors.
var (
	// ErrUnauthorized indicates that the purchasing account does not exist
	// or has been deleted.
	ErrUnauthorized = errors.New("user is not authorized to order")

	// ErrProductUnavailable indicates that the product cannot be bought at
	// this instant: it has no active detail fact, is deactivated, or the
	// requested option combination does not exist.
	ErrProductUnavailable = errors.New("product is not available")

	// ErrInvalidQuantity is returned when the requested quantity falls
	// outside the product's per-order bounds.
	ErrInvalidQuantity = errors.New("quantity outside allowed bounds")

	// ErrOutOfStock is returned when the option holds fewer units than
	// requested. The reservation writes nothing in that case.
	ErrOutOfStock = errors.New("insufficient stock")
)

// Catalog errors.
var (
	// ErrProductNotFound indicates that the product identity row does not
	// exist or was soft-deleted.
	ErrProductNotFound = errors.New("product not found")

	// ErrColorNotFound indicates that the (product, color) combination has
	// no sellable options.
	ErrColorNotFound = errors.New("color not found for product")

	// ErrOptionNotFound indicates that the product option does not exist.
	ErrOptionNotFound = errors.New("product option not found")

	// ErrInvalidPrice is returned when a submitted list price is negative.
	ErrInvalidPrice = errors.New("price must not be negative")

	// ErrInvalidDiscount is returned when a submitted discount rate is
	// outside 0-100.
	ErrInvalidDiscount = errors.New("discount rate must be between 0 and 100")

	// ErrInvalidSalesBounds is returned when a submitted per-order quantity
	// range is empty or starts below one.
	ErrInvalidSalesBounds = errors.New("invalid sales quantity bounds")
)

// Order lookup errors.
var (
	// ErrOrderNotFound indicates that the requested order detail does not
	// exist.
	ErrOrderNotFound = errors.New("order not found")
)

// Account errors.
var (
	// ErrUserNotFound indicates that the requested account does not exist or
	// was deleted.
	ErrUserNotFound = errors.New("user not found")

	// ErrDuplicateEmail is returned when registering an account with an
	// email that is already taken.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrInvalidEmail is returned when a submitted email address is blank or
	// malformed.
	ErrInvalidEmail = errors.New("invalid email address")
)
