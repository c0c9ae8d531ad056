package errors

import "fmt"

// ParseError indicates the binder was handed an unusable target,
// such as a value that is not a pointer to a struct.
// It is intended for user-facing messages.
type ParseError struct{ Msg string }

func (e ParseError) Error() string { return e.Msg }

// ContractError indicates invalid binding metadata on the contract
// type itself: a complex flag whose auxiliary field does not exist, a
// duplicate collector, a delimiter on a non-slice field, and so on.
// These are programming errors and are reported before any token is
// consumed.
type ContractError struct{ Msg string }

func (e ContractError) Error() string {
	return fmt.Sprintf("invalid contract: %s", e.Msg)
}

// FormatError indicates a raw token value could not be converted to
// the target field's type. These are user-input errors: they are
// accumulated per token and never abort a parse.
type FormatError struct{ Field, Value string }

func (e FormatError) Error() string {
	return fmt.Sprintf("invalid value %q for %s", e.Value, e.Field)
}

// UnsupportedFieldTypeError indicates the contract contains a field
// whose type the binder cannot populate.
type UnsupportedFieldTypeError struct{ Field, Type string }

func (e UnsupportedFieldTypeError) Error() string {
	return fmt.Sprintf("unsupported type for field %s: %s", e.Field, e.Type)
}

// Helper constructors
func NewParseError(msg string) error { return ParseError{Msg: msg} }
func NewContractError(format string, args ...any) error {
	return ContractError{Msg: fmt.Sprintf(format, args...)}
}
func NewFormatError(field, value string) error {
	return FormatError{Field: field, Value: value}
}
func NewUnsupportedField(field, typ string) error {
	return UnsupportedFieldTypeError{Field: field, Type: typ}
}
