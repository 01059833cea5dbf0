// Package intervals provides validation and construction of the time-interval
// sets used by annotation data. An interval set is an ordered sequence of
// [start, end) second pairs; annotations supplied as plain timestamps are
// converted to consecutive half-open intervals.
package intervals
