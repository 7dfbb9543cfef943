// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks plugin method arguments before they reach the
// backend services.
//
// A Validator accepts any request value it knows about and may be scoped to
// a subset of fields. Callers pass the Field* constants to restrict the
// checks, or nothing to validate every field the request carries.
package validators

import "context"

// Validator validates request values, optionally restricted to named fields.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
