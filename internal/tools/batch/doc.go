// Package batch provides helpers for tools that operate on several items in
// a single call: parsing string-or-array parameters, running each item while
// tolerating partial failures, and formatting an aggregated JSON summary.
package batch
