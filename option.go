package gnuflag

import "fmt"

// Arity describes whether an option takes an argument.
type Arity int

const (
	NoArgument Arity = iota
	RequiredArgument
	OptionalArgument
)

func (a Arity) String() string {
	switch a {
	case NoArgument:
		return "none"
	case RequiredArgument:
		return "required"
	case OptionalArgument:
		return "optional"
	default:
		return fmt.Sprintf("Arity(%d)", int(a))
	}
}

func (a Arity) valid() bool {
	return a == NoArgument || a == RequiredArgument || a == OptionalArgument
}

// Option defines one command-line option. At least one of Name and Short
// must be set.
type Option struct {
	Name       string // long name without the leading "--"
	Short      rune   // short name, 0 if none
	Arity      Arity
	Repeatable bool // may be given more than once
	Value      Value
	Help       string
}

// Display returns the name used in diagnostics: the long form if the
// option has one, the short form otherwise.
func (o *Option) Display() string {
	if o.Name != "" {
		return "--" + o.Name
	}
	if o.Short != 0 {
		return "-" + string(o.Short)
	}
	return ""
}

// Group is a named list of options. Groups only affect help output.
type Group struct {
	Name    string
	Options []Option
}
