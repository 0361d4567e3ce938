// Package document reads and writes almanac documents and turns them into
// an almanac.Almanac.
//
// Two encodings are supported.
//
// # Text
//
// The puzzle form: a seeds line, then one block per stage transition with
// "destination source length" rule lines:
//
//	seeds: 79 14 55 13
//
//	seed-to-soil map:
//	50 98 2
//	52 50 48
//
// # YAML
//
// The same content with optional start and target stages. Rules may be
// written as mappings or as [destination, source, length] sequences:
//
//	version: "1"
//	seeds: [79, 14, 55, 13]
//	start: seed
//	target: location
//	maps:
//	  - from: seed
//	    to: soil
//	    rules:
//	      - [50, 98, 2]
//	      - {destination: 52, source: 50, length: 48}
//
// # Validation
//
// Validate reports structural problems as diagnostics without building
// anything: unknown or duplicate stages, an unreachable target, loops,
// overlapping or empty rules and seed lists that cannot form pairs.
package document
