package gnuflag

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Value converts an option's argument and stores it in a variable owned
// by the caller. Implement it to support additional types.
type Value interface {
	// Set stores arg. present is false when the option was given without
	// an argument, in which case arg is empty.
	Set(arg string, present bool) error

	// DefaultValue returns the default as a string. An OptionalArgument
	// option given without argument is set to it; help output shows it.
	DefaultValue() (string, bool)

	// ArgHint names the kind of argument accepted, eg "NUMBER".
	ArgHint() string

	// String returns the current value of the target variable.
	String() string
}

// StoreFlag selects the value a Bool option stores when given.
type StoreFlag int

const (
	StoreFalse StoreFlag = iota
	StoreTrue
)

// defaults holds the optional default and the hint shared by all
// built-in values.
type defaults struct {
	def    string
	hasDef bool
	hint   string
}

func (d *defaults) DefaultValue() (string, bool) { return d.def, d.hasDef }
func (d *defaults) ArgHint() string              { return d.hint }

// -----

// StringValue stores its argument verbatim.
type StringValue struct {
	defaults
	target *string
}

// String returns a Value writing to target. It requires an argument.
func String(target *string) *StringValue {
	return &StringValue{defaults: defaults{hint: "STRING"}, target: target}
}

func (v *StringValue) WithDefault(def string) *StringValue {
	v.def, v.hasDef = def, true
	return v
}

func (v *StringValue) WithHint(hint string) *StringValue {
	v.hint = hint
	return v
}

func (v *StringValue) Set(arg string, present bool) error {
	if !present {
		return ErrMissingArgument
	}
	*v.target = arg
	return nil
}

func (v *StringValue) String() string { return *v.target }

// -----

// IntValue parses a base-10 integer.
type IntValue struct {
	defaults
	target *int
}

// Int returns a Value writing to target. On a malformed or out-of-range
// argument the target is left unchanged.
func Int(target *int) *IntValue {
	return &IntValue{defaults: defaults{hint: "NUMBER"}, target: target}
}

func (v *IntValue) WithDefault(def int) *IntValue {
	v.def, v.hasDef = strconv.Itoa(def), true
	return v
}

func (v *IntValue) WithHint(hint string) *IntValue {
	v.hint = hint
	return v
}

func (v *IntValue) Set(arg string, present bool) error {
	if !present {
		return ErrMissingArgument
	}
	i, err := strconv.ParseInt(arg, 10, 0)
	if err != nil {
		return numError(arg, err)
	}
	*v.target = int(i)
	return nil
}

func (v *IntValue) String() string { return strconv.Itoa(*v.target) }

// -----

// FloatValue parses a 64-bit floating point number.
type FloatValue struct {
	defaults
	target *float64
}

// Float returns a Value writing to target.
func Float(target *float64) *FloatValue {
	return &FloatValue{defaults: defaults{hint: "FLOAT"}, target: target}
}

func (v *FloatValue) WithDefault(def float64) *FloatValue {
	v.def, v.hasDef = strconv.FormatFloat(def, 'g', -1, 64), true
	return v
}

func (v *FloatValue) WithHint(hint string) *FloatValue {
	v.hint = hint
	return v
}

func (v *FloatValue) Set(arg string, present bool) error {
	if !present {
		return ErrMissingArgument
	}
	f, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return numError(arg, err)
	}
	*v.target = f
	return nil
}

func (v *FloatValue) String() string {
	return strconv.FormatFloat(*v.target, 'g', -1, 64)
}

// numError maps strconv failures onto ErrInvalidValue and ErrOutOfRange.
func numError(arg string, err error) error {
	if errors.Is(err, strconv.ErrRange) {
		return fmt.Errorf("%w: %q", ErrOutOfRange, arg)
	}
	return fmt.Errorf("%w: %q", ErrInvalidValue, arg)
}

// -----

// DurationValue parses a time.Duration, eg "1m30s".
type DurationValue struct {
	defaults
	target *time.Duration
}

// Duration returns a Value writing to target.
func Duration(target *time.Duration) *DurationValue {
	return &DurationValue{defaults: defaults{hint: "DURATION"}, target: target}
}

func (v *DurationValue) WithDefault(def time.Duration) *DurationValue {
	v.def, v.hasDef = def.String(), true
	return v
}

func (v *DurationValue) WithHint(hint string) *DurationValue {
	v.hint = hint
	return v
}

func (v *DurationValue) Set(arg string, present bool) error {
	if !present {
		return ErrMissingArgument
	}
	d, err := time.ParseDuration(arg)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidValue, arg)
	}
	*v.target = d
	return nil
}

func (v *DurationValue) String() string { return v.target.String() }

// -----

// BoolValue ignores its argument and stores a fixed value.
type BoolValue struct {
	defaults
	target *bool
	store  StoreFlag
}

// Bool returns a Value that sets target to true (StoreTrue) or false
// (StoreFalse) whenever the option is given. It never fails.
func Bool(target *bool, store StoreFlag) *BoolValue {
	return &BoolValue{target: target, store: store}
}

// WithDefault records the default for help output only; the target is
// not touched.
func (v *BoolValue) WithDefault(def bool) *BoolValue {
	v.def, v.hasDef = strconv.FormatBool(def), true
	return v
}

func (v *BoolValue) Set(string, bool) error {
	*v.target = v.store == StoreTrue
	return nil
}

func (v *BoolValue) String() string { return strconv.FormatBool(*v.target) }

// -----

// StringListValue appends each argument to a slice. Use it with
// Repeatable options.
type StringListValue struct {
	defaults
	target *[]string
}

// StringList returns a Value appending to target. It has no default.
func StringList(target *[]string) *StringListValue {
	return &StringListValue{defaults: defaults{hint: "STRING"}, target: target}
}

func (v *StringListValue) WithHint(hint string) *StringListValue {
	v.hint = hint
	return v
}

func (v *StringListValue) Set(arg string, present bool) error {
	if !present {
		return ErrMissingArgument
	}
	*v.target = append(*v.target, arg)
	return nil
}

func (v *StringListValue) String() string {
	return "[" + strings.Join(*v.target, " ") + "]"
}
