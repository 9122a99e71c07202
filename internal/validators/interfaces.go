// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request bodies before they reach the identity
// core. Each validator accepts values or pointers of the models it knows and
// can be scoped to a subset of fields:
//
//	v.Validate(ctx, creds)                       // every field
//	v.Validate(ctx, creds, validators.FieldUsername)
package validators

import "context"

// Validator validates obj, optionally restricted to the named fields.
// Unknown types yield [ErrUnsupportedType] and unknown fields
// [ErrUnknownField].
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
