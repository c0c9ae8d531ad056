package core

import (
	"fmt"
	"reflect"

	"github.com/tmont/argopt/errors"
	"github.com/tmont/argopt/internal/common"
)

// TokenError records one token whose value could not be bound. The
// token is the original, unmodified argument text.
type TokenError struct {
	Token string
	Cause error
}

func (e TokenError) Error() string { return fmt.Sprintf("%s: %v", e.Token, e.Cause) }

// Result is the outcome of one parse call. The populated contract is
// the caller's own pointer; Result carries everything else.
type Result struct {
	// Leftover holds the tokens that matched no field, in original
	// stream order.
	Leftover []string
	// Errors holds one entry per token whose value failed coercion,
	// in arrival order.
	Errors []TokenError
}

// Valid reports whether binding completed without coercion errors.
func (r *Result) Valid() bool { return len(r.Errors) == 0 }

func (r *Result) fail(token string, cause error) {
	r.Errors = append(r.Errors, TokenError{Token: token, Cause: cause})
}

// Parse binds the raw argument tokens into the provided contract
// struct, which must be a pointer to a struct. The returned error
// reports configuration mistakes in the contract itself; user-input
// problems never abort the parse and are accumulated in the Result.
func Parse(target any, args []string, style Style) (*Result, error) {
	if !common.IsStructPtr(target) {
		return nil, errors.NewParseError("invalid type: must pass pointer to struct")
	}

	v := reflect.ValueOf(target).Elem()
	descs, err := DescribeFields(v.Type())
	if err != nil {
		return nil, err
	}

	res := &Result{}
	for i := 0; i < len(args); i++ {
		arg := args[i]

		tok, ok := matchOption(arg, style)
		if !ok {
			res.Leftover = append(res.Leftover, arg)
			continue
		}

		name, implied, hasSwitch := stripSwitch(tok.name)
		d := resolve(descs, name)
		if d == nil {
			// Unknown options are not errors; keep the original,
			// unstripped token.
			res.Leftover = append(res.Leftover, arg)
			continue
		}

		// The field currently being valued. A complex flag toggled
		// with +/- redirects the rest of the token's value handling
		// to its auxiliary field.
		valued := d

		if hasSwitch {
			switch d.Kind {
			case KindFlag:
				v.Field(d.index).SetBool(implied)
				continue
			case KindComplexFlag:
				v.Field(d.index).SetBool(implied)
				valued = findField(descs, d.AuxField)
			default:
				res.fail(arg, errors.NewParseError(fmt.Sprintf("option %s does not take a +/- switch", name)))
				continue
			}
		}

		var raw string
		switch {
		case tok.hasInline:
			raw = tok.inline
		case valued.Kind == KindFlag:
			// A bare flag reference means true; the next token is
			// left alone.
			v.Field(valued.index).SetBool(true)
			continue
		case i+1 < len(args):
			i++
			raw = args[i]
		default:
			// No value available: coercion sees empty text, which
			// booleans and strings accept and numerics reject.
		}

		if err := coerce(v.Field(valued.index), valued.Name, raw, valued.Delimiter); err != nil {
			res.fail(arg, err)
		}
	}

	bindCollector(v, descs, res)
	return res, nil
}

// bindCollector assigns the leftover tokens to the collector field,
// if the contract declares one. A []string collector takes the list
// as-is; other slice types coerce per element; a scalar collector
// receives only the first leftover. Leftovers stay reported in the
// Result either way.
func bindCollector(v reflect.Value, descs []Descriptor, res *Result) {
	c := collectorOf(descs)
	if c == nil || len(res.Leftover) == 0 {
		return
	}

	cv := v.Field(c.index)
	if cv.Kind() != reflect.Slice {
		if err := coerce(cv, c.Name, res.Leftover[0], ""); err != nil {
			res.fail(res.Leftover[0], err)
		}
		return
	}

	if cv.Type() == reflect.TypeOf([]string(nil)) {
		cv.Set(reflect.ValueOf(append([]string(nil), res.Leftover...)))
		return
	}
	out := reflect.MakeSlice(cv.Type(), 0, len(res.Leftover))
	for _, tok := range res.Leftover {
		ev := reflect.New(cv.Type().Elem()).Elem()
		if err := coerce(ev, c.Name, tok, ""); err != nil {
			res.fail(tok, err)
			continue
		}
		out = reflect.Append(out, ev)
	}
	cv.Set(out)
}
