package gnuflag

import (
	"errors"
	"fmt"
)

// Configuration errors. These describe a broken option table and are
// returned by NewRegistry before any argument is looked at.
var (
	ErrInvalidArity   = errors.New("invalid argument arity")
	ErrUnnamedOption  = errors.New("option has neither long nor short name")
	ErrNilValue       = errors.New("option has no value")
	ErrInvalidName    = errors.New("malformed option name")
	ErrDuplicateLong  = errors.New("duplicate long option")
	ErrDuplicateShort = errors.New("duplicate short option")
)

// Per-token errors. Parsing continues after any of these.
var (
	ErrUnknownOption      = errors.New("unknown option")
	ErrAmbiguousOption    = errors.New("ambiguous option")
	ErrMissingArgument    = errors.New("missing argument")
	ErrUnexpectedArgument = errors.New("option does not take an argument")
	ErrRepeated           = errors.New("option can only be used once")
	ErrNoDefault          = errors.New("no default value")
	ErrInvalidValue       = errors.New("invalid value")
	ErrOutOfRange         = errors.New("value out of range")
)

// ConfigError reports a structural problem with one option definition.
type ConfigError struct {
	Option string // display name, eg "--int" or "-i"; position if unnamed
	Err    error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%v: %s", e.Err, e.Option)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// ParseError reports a problem with one command-line token. Index is the
// position in the argument slice of the token that caused it.
type ParseError struct {
	Option string
	Index  int
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%v: %s", e.Err, e.Option)
}

func (e *ParseError) Unwrap() error { return e.Err }
