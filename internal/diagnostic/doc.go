// Package diagnostic provides structured errors, warnings and infos found
// while checking an almanac document.
//
// Key capabilities:
//   - Stable codes for each kind of finding (e.g. "unknown_stage")
//   - Stage and line context for every finding
//   - Aggregation into a single error for callers that only need pass/fail
package diagnostic
