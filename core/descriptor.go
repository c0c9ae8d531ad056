package core

import (
	"reflect"
	"strings"

	"github.com/tmont/argopt/errors"
	"github.com/tmont/argopt/internal/common"
)

// Kind classifies how a contract field participates in binding.
type Kind int

const (
	// KindPlain fields take a value from an inline or following token.
	KindPlain Kind = iota
	// KindFlag fields are booleans that need no value token.
	KindFlag
	// KindComplexFlag fields are flags that, when toggled with a
	// trailing +/-, direct their value into an auxiliary field.
	KindComplexFlag
	// KindCollector marks the single field receiving leftover tokens.
	KindCollector
	// KindExcluded fields never resolve by name; they are only
	// reachable as a complex flag's auxiliary target.
	KindExcluded
)

// Descriptor is the normalized view of one bindable field's metadata.
// Descriptors are rebuilt from the contract type on every parse or
// format call and discarded afterwards.
type Descriptor struct {
	Name          string
	Aliases       []string
	CaseSensitive bool
	Kind          Kind
	AuxField      string
	Delimiter     string
	Desc          string
	ValueName     string
	Required      bool

	field string // Go field name
	index int    // struct field index
}

// Matches reports whether the descriptor answers to the given option
// name. Excluded fields and the collector never match; all other
// fields compare their name and aliases, exactly when case sensitive
// and case-insensitively otherwise.
func (d *Descriptor) Matches(name string) bool {
	if d.Kind == KindExcluded || d.Kind == KindCollector {
		return false
	}
	if d.CaseSensitive {
		if d.Name == name {
			return true
		}
		for _, alias := range d.Aliases {
			if alias == name {
				return true
			}
		}
		return false
	}
	if strings.EqualFold(d.Name, name) {
		return true
	}
	for _, alias := range d.Aliases {
		if strings.EqualFold(alias, name) {
			return true
		}
	}
	return false
}

// DescribeFields builds descriptors for every exported field of the
// contract type, in declaration order. Metadata problems are
// configuration errors and fail the whole call: they indicate a
// mistake by the contract's author, not bad user input.
func DescribeFields(t reflect.Type) ([]Descriptor, error) {
	descs := make([]Descriptor, 0, t.NumField())
	haveCollector := false

	for i := range t.NumField() {
		field := t.Field(i)
		if field.PkgPath != "" {
			continue // unexported
		}

		d := Descriptor{Name: field.Name, field: field.Name, index: i}
		if v := field.Tag.Get("name"); v != "" {
			d.Name = v
		}
		if v, ok := field.Tag.Lookup("alias"); ok {
			d.Aliases = common.SplitList(v)
			if len(d.Aliases) == 0 {
				return nil, errors.NewContractError("field %s declares an empty alias list", field.Name)
			}
		}
		d.CaseSensitive = field.Tag.Get("case") == "sensitive"
		d.AuxField = field.Tag.Get("aux")
		d.Delimiter = field.Tag.Get("delim")
		d.Desc = field.Tag.Get("desc")
		d.ValueName = field.Tag.Get("value")
		d.Required = field.Tag.Get("required") == "true"

		switch opt := field.Tag.Get("opt"); opt {
		case "":
			d.Kind = KindPlain
		case "flag":
			d.Kind = KindFlag
		case "complex":
			d.Kind = KindComplexFlag
		case "collect":
			d.Kind = KindCollector
		case "exclude":
			d.Kind = KindExcluded
		default:
			return nil, errors.NewContractError("field %s has unknown opt value %q", field.Name, opt)
		}

		if err := validateField(&d, field); err != nil {
			return nil, err
		}
		if d.Kind == KindCollector {
			if haveCollector {
				return nil, errors.NewContractError("field %s: only one collector is allowed", field.Name)
			}
			haveCollector = true
		}
		descs = append(descs, d)
	}

	// Auxiliary targets must exist on the same contract.
	for i := range descs {
		if descs[i].Kind != KindComplexFlag {
			continue
		}
		if findField(descs, descs[i].AuxField) == nil {
			return nil, errors.NewContractError("field %s: auxiliary field %s does not exist",
				descs[i].field, descs[i].AuxField)
		}
	}
	return descs, nil
}

func validateField(d *Descriptor, field reflect.StructField) error {
	t := field.Type

	switch d.Kind {
	case KindFlag, KindComplexFlag:
		if t.Kind() != reflect.Bool {
			return errors.NewContractError("field %s: flags must be bool, have %s", d.field, t.Kind())
		}
		if d.Kind == KindComplexFlag && d.AuxField == "" {
			return errors.NewContractError("field %s: complex flag needs an aux field", d.field)
		}
		return nil
	case KindCollector:
		if t.Kind() == reflect.Slice {
			t = t.Elem()
		}
		if !coercibleKind(t) {
			return errors.NewUnsupportedField(d.field, field.Type.String())
		}
		return nil
	}

	if t.Kind() == reflect.Slice {
		if d.Delimiter == "" {
			return errors.NewContractError("field %s: slice fields need a delimiter", d.field)
		}
		t = t.Elem()
	} else if d.Delimiter != "" {
		return errors.NewContractError("field %s: delimiter on non-slice field", d.field)
	}
	if !coercibleKind(t) {
		return errors.NewUnsupportedField(d.field, field.Type.String())
	}
	return nil
}

// findField locates a descriptor by its Go field name.
func findField(descs []Descriptor, field string) *Descriptor {
	for i := range descs {
		if descs[i].field == field {
			return &descs[i]
		}
	}
	return nil
}

// resolve returns the first descriptor, in declaration order, that
// matches the resolved option name.
func resolve(descs []Descriptor, name string) *Descriptor {
	for i := range descs {
		if descs[i].Matches(name) {
			return &descs[i]
		}
	}
	return nil
}

// collectorOf returns the contract's collector descriptor, if any.
func collectorOf(descs []Descriptor) *Descriptor {
	for i := range descs {
		if descs[i].Kind == KindCollector {
			return &descs[i]
		}
	}
	return nil
}
