// Package main provides the CLI entrypoint for remapper.
//
// remapper reads an almanac document (text or YAML), walks its seed ranges
// through every stage map and prints the lowest value reached:
//   - solve prints the minimum at the target stage
//   - trace prints the range set after every stage
//   - validate reports structural problems in a document
//   - convert rewrites a document as YAML or text
package main

func main() {
	execute()
}
