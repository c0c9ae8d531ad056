package argopt

import (
	"github.com/tmont/argopt/core"
	"github.com/tmont/argopt/display"
)

// Parse binds raw argument tokens into the provided contract struct.
//
// The target must be a pointer to a struct whose fields describe
// options via `argopt` struct tags: `name` overrides the option name
// (the Go field name by default), `alias` lists extra names,
// `case:"sensitive"` demands exact-case matching, `opt` selects the
// field kind (flag, complex, collect, exclude), `aux` names a complex
// flag's value target, `delim` splits slice values, and `desc`,
// `value` and `required` feed the usage formatter.
//
// Tokens that match no field are returned as leftovers, in stream
// order, and bound to the collector field if the contract declares
// one. Values that fail conversion are collected per token in the
// Result; they never abort the parse. The error return is reserved
// for mistakes in the contract itself, such as a complex flag whose
// auxiliary field does not exist.
//
// Usage:
//
//	target := struct {
//		Verbose bool     `opt:"flag" alias:"v" desc:"Enable verbose output"`
//		Workers int      `alias:"j" value:"N" desc:"Number of parallel workers"`
//		Paths   []string `opt:"collect" desc:"Input paths"`
//	}{}
//
//	res, err := argopt.Parse(&target, os.Args[1:], argopt.Unix)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if !res.Valid() {
//		// inspect res.Errors
//	}
var Parse = core.Parse

// New constructs a fresh contract of type T, binds args into it and
// returns the populated instance alongside the parse Result. It is
// the construct-internally form of Parse.
func New[T any](args []string, style core.Style) (*T, *core.Result, error) {
	target := new(T)
	res, err := core.Parse(target, args, style)
	if err != nil {
		return nil, nil, err
	}
	return target, res, nil
}

// Describe renders usage text for the contract from the same field
// metadata Parse binds with: a word-wrapped invocation summary, an
// ARGUMENTS section for the collector field and an OPTIONS section
// for the rest, with descriptions aligned to a shared column.
//
// An empty execName falls back to the base of os.Args[0]; a
// non-positive width defaults to display.DefaultWidth (100 columns).
//
// Example:
//
//	text, err := argopt.Describe(&target, "mytool", 80, argopt.Unix)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(text)
var Describe = display.Describe
