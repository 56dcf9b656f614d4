// Package builders provides fluent builders for the service and schema value
// objects. Builders are the single mutation point for those values: fields
// are accumulated through chained calls, in any order, and Build materializes
// an immutable snapshot.
//
// All builder inputs are permissive. Absent inputs (empty strings, nil
// slices, nil maps) degrade to no-ops or empty collections depending on the
// documented semantics of each setter; no builder returns an error and Build
// performs no validation.
//
// Builders are not safe for concurrent use. Create one builder per value and
// use it from a single goroutine.
package builders
