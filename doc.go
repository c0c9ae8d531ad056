// Package argopt is a declarative command-line-argument binder for
// Go that uses reflection and struct tags to describe how a contract
// struct's fields map onto option tokens.
//
// It supports named options with aliases and per-field case
// sensitivity, boolean flags with +/- toggles, complex flags that
// route a trailing value into an auxiliary field, delimiter-split
// slice values, leftover-token collection, and generation of aligned,
// word-wrapped usage text from the same metadata.
package argopt

//go:generate gomarkdoc ./ -o docs/argopt.md
