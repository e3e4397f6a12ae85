// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package slugfield

import "errors"

var (
	// ErrNoChecker is returned when uniqueness is enforced but no Checker was supplied.
	ErrNoChecker = errors.New("slugfield: existence checker required")

	// ErrSuffixOverflow is returned when the disambiguation suffix alone is
	// longer than the field's max length, so no candidate can fit.
	ErrSuffixOverflow = errors.New("slugfield: suffix exceeds max length")

	// ErrTooManyAttempts is returned when MaxAttempts candidates all collided.
	ErrTooManyAttempts = errors.New("slugfield: too many disambiguation attempts")

	// ErrAttrType is returned when a record attribute holds a value of an
	// unexpected type.
	ErrAttrType = errors.New("slugfield: unsupported attribute type")

	// ErrMissingDate is returned when a day-scoped field reads an unset date.
	ErrMissingDate = errors.New("slugfield: date attribute is not set")
)
