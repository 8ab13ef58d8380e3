// Package repository implements the generic record store behind every
// domain entity.  These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios without
// string matching.
package repository

import "errors"

// ErrNoFillableFields is returned by Store.Create when the payload
// contains no whitelisted columns after filtering.  No insert is
// attempted in that case.  Handlers should let this propagate to the
// top-level error handler, which translates it into an HTTP 500.
var ErrNoFillableFields = errors.New("no fillable fields to write")
