package core

import "strings"

// Style selects the option syntax the binder recognizes.
type Style int

const (
	// Unix options use a "-" or "--" prefix and "=" to attach an
	// inline value, e.g. --name=value.
	Unix Style = iota
	// Windows options use a "/" prefix and ":" to attach an inline
	// value, e.g. /name:value.
	Windows
)

func (s Style) prefixes() []string {
	if s == Windows {
		return []string{"/"}
	}
	return []string{"--", "-"}
}

// Separator returns the character joining an option name to its
// inline value.
func (s Style) Separator() string {
	if s == Windows {
		return ":"
	}
	return "="
}

// DisplayPrefix returns the prefix used when rendering option names
// in usage text.
func (s Style) DisplayPrefix() string {
	if s == Windows {
		return "/"
	}
	return "--"
}

// optionToken is the result of recognizing a raw argument as an
// option reference. hasInline distinguishes "--x=" (separator with an
// empty value) from "--x" (no separator at all).
type optionToken struct {
	name      string
	inline    string
	hasInline bool
}

// matchOption reports whether arg is an option reference under the
// given style and, if so, extracts the option name and any inline
// value. A token without the active prefix is never an option,
// regardless of contract metadata.
func matchOption(arg string, style Style) (optionToken, bool) {
	for _, prefix := range style.prefixes() {
		if !strings.HasPrefix(arg, prefix) {
			continue
		}
		rest := arg[len(prefix):]
		if rest == "" {
			return optionToken{}, false
		}
		if name, value, ok := strings.Cut(rest, style.Separator()); ok {
			return optionToken{name: name, inline: value, hasInline: true}, true
		}
		return optionToken{name: rest}, true
	}
	return optionToken{}, false
}

// stripSwitch removes a trailing "+" or "-" toggle from an option
// name. It returns the bare name, the implied boolean ("+" is true,
// "-" is false) and whether a toggle was present.
func stripSwitch(name string) (string, bool, bool) {
	if name == "" {
		return name, false, false
	}
	switch name[len(name)-1] {
	case '+':
		return name[:len(name)-1], true, true
	case '-':
		return name[:len(name)-1], false, true
	}
	return name, false, false
}
