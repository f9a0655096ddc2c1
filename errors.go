// errors.go - Typed error kinds surfaced by the matching engine.
// SPDX-License-Identifier: GPL-3.0-or-later

package getopt

import "fmt"

// ErrorKind identifies one of the closed set of failure modes the
// engine can raise. It never grows a new variant inside a fallible
// operation that callers can already match on.
type ErrorKind int

const (
	// ErrInvalidOptionStr means a raw token matched no configured
	// prefix or left an empty name, or a declaration string or index
	// expression was malformed.
	ErrInvalidOptionStr ErrorKind = iota
	// ErrInvalidOptionType means a schema string named an unknown type.
	ErrInvalidOptionType
	// ErrInvalidOptionValue means a value failed to coerce into the entry's type.
	ErrInvalidOptionValue
	// ErrInvalidNextArgument means there was no raw token to tokenize
	// (Tokenize was given nil).
	ErrInvalidNextArgument
	// ErrNullOptionType means a schema string had an empty type.
	ErrNullOptionType
	// ErrNullOptionName means a schema string had an empty name.
	ErrNullOptionName
	// ErrDuplicateOptionType means a type name was registered twice.
	ErrDuplicateOptionType
	// ErrUtilsNotSupportDeactivateStyle means "/" was requested on a
	// non-Bool entry.
	ErrUtilsNotSupportDeactivateStyle
	// ErrUtilsNotSupportTypeName means a type mismatch was requested
	// where the engine expected a different one.
	ErrUtilsNotSupportTypeName
	// ErrArgumentRequired means an Argument-style context had no value
	// to consume.
	ErrArgumentRequired
	// ErrOptionForceRequired means a non-optional option entry has no
	// value at check time.
	ErrOptionForceRequired
	// ErrNonOptionForceRequired means a group of positional candidates
	// has no member with a value at check time.
	ErrNonOptionForceRequired
)

var errorKindNames = map[ErrorKind]string{
	ErrInvalidOptionStr:               "InvalidOptionStr",
	ErrInvalidOptionType:              "InvalidOptionType",
	ErrInvalidOptionValue:             "InvalidOptionValue",
	ErrInvalidNextArgument:            "InvalidNextArgument",
	ErrNullOptionType:                 "NullOptionType",
	ErrNullOptionName:                 "NullOptionName",
	ErrDuplicateOptionType:            "DuplicateOptionType",
	ErrUtilsNotSupportDeactivateStyle: "UtilsNotSupportDeactivateStyle",
	ErrUtilsNotSupportTypeName:        "UtilsNotSupportTypeName",
	ErrArgumentRequired:               "ArgumentRequired",
	ErrOptionForceRequired:            "OptionForceRequired",
	ErrNonOptionForceRequired:         "NonOptionForceRequired",
}

// String implements [fmt.Stringer].
func (k ErrorKind) String() string {
	if name, ok := errorKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Error is the concrete error type returned by this package. Every
// fallible operation returns one of these, never a bare string error,
// so callers can switch on [Error.Kind].
type Error struct {
	Kind ErrorKind
	// Args holds the kind-specific formatting arguments (token name,
	// reason, joined candidate names, ...).
	Args []string
}

// newError builds an [*Error] for kind with the given formatting args.
func newError(kind ErrorKind, args ...string) *Error {
	return &Error{Kind: kind, Args: args}
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch e.Kind {
	case ErrInvalidOptionStr:
		return fmt.Sprintf("invalid option string: `%s`", arg(e, 0))
	case ErrInvalidOptionType:
		return fmt.Sprintf("invalid option type: `%s`", arg(e, 0))
	case ErrInvalidOptionValue:
		return fmt.Sprintf("invalid option value `%s`: %s", arg(e, 0), arg(e, 1))
	case ErrInvalidNextArgument:
		return "no available argument left"
	case ErrNullOptionType:
		return "option type can not be null"
	case ErrNullOptionName:
		return "option name can not be null"
	case ErrDuplicateOptionType:
		return fmt.Sprintf("the given type already exists: `%s`", arg(e, 0))
	case ErrUtilsNotSupportDeactivateStyle:
		return fmt.Sprintf("utils `%s` does not support deactivate style", arg(e, 0))
	case ErrUtilsNotSupportTypeName:
		return fmt.Sprintf("utils does not support current type: expected `%s`, got `%s`", arg(e, 0), arg(e, 1))
	case ErrArgumentRequired:
		return fmt.Sprintf("`%s` needs an argument", arg(e, 0))
	case ErrOptionForceRequired:
		return fmt.Sprintf("option `%s` is force required", arg(e, 0))
	case ErrNonOptionForceRequired:
		return fmt.Sprintf("need non-option: %s", arg(e, 0))
	default:
		return "unknown getopt error"
	}
}

func arg(e *Error, idx int) string {
	if idx < len(e.Args) {
		return e.Args[idx]
	}
	return ""
}

// Is implements errors.Is support keyed on [ErrorKind].
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == other.Kind
}
