// Package verbs holds the data-cleaning verbs. Every verb takes a table plus
// named parameters and returns a new table, leaving its input untouched.
package verbs
