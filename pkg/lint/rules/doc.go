// Package rules provides the built-in line rules for mdstylecheck.
//
// Rules run on every line in this order:
//
//   - MS001: no-trailing-whitespace - whitespace before the line ending
//   - MS002: ol-marker-space - "1." followed by other than one space
//   - MS003: ul-marker-space - "-" followed by other than one space
//   - MS004: header-blank-line - blank line before headers (inert, never reports)
//
// Importing this package registers the rules with lint.DefaultRegistry.
package rules
