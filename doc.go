/*
Package gnuflag implements a command-line option parser following the
POSIX and GNU getopt conventions. Options are declared as a list of
groups; each option names the variable it populates through a typed
Value. Parsing stops at the first positional argument, and the index of
that argument is returned to the caller.


# Declaring Options

Options are plain struct values, collected into named groups. Groups
only matter for the help text.

	var (
		count   = 10
		verbose bool
		name    string
		tags    []string
	)

	groups := []gnuflag.Group{
		{Name: "Default", Options: []gnuflag.Option{
			{Name: "count", Short: 'c', Arity: gnuflag.RequiredArgument,
				Value: gnuflag.Int(&count).WithDefault(count), Help: "Number of runs."},
			{Name: "verbose", Short: 'v',
				Value: gnuflag.Bool(&verbose, gnuflag.StoreTrue), Help: "Talk more."},
		}},
		{Name: "Extended", Options: []gnuflag.Option{
			{Name: "name", Arity: gnuflag.OptionalArgument,
				Value: gnuflag.String(&name).WithDefault("anonymous"), Help: "Set the name."},
			{Name: "tag", Short: 't', Arity: gnuflag.RequiredArgument, Repeatable: true,
				Value: gnuflag.StringList(&tags), Help: "Add a tag."},
		}},
	}

	res, err := gnuflag.FromCommandLine(groups)
	if err != nil {
		// The option table itself is broken
		panic(err)
	}
	files := res.Rest

An option has a long name, a short name, or both. Long names and short
names must be unique across all groups; NewRegistry (and therefore Parse)
returns a *ConfigError otherwise.

The following values are available: String, Int, Float, Duration, Bool
and StringList. Other types can be supported by implementing Value.


# Option Syntax

	-x               short option without argument
	-abc             cluster of short options, same as -a -b -c
	-x VALUE, -xVALUE    short option with required argument
	-xVALUE          short option with optional argument (attached only)
	--name           long option without argument
	--name=VALUE     long option with required or optional argument
	--name VALUE     long option with required argument

Long names may be abbreviated to any unambiguous prefix; an exact match
always wins. An attached argument of zero length, as in "--name=", is
treated as no argument.

If an option with an optional argument is given without one, it is set
to the default of its Value. Without a default, this is an error.

Option scanning stops at the first argument that is not an option (a
lone "-" counts as positional), or after the special token "--". Options
following a positional argument are not processed.


# Repeated Options

By default, each option may be given once; later occurrences are
reported and ignored, the variable keeps the value of the first one.
An occurrence counts even if its argument could not be converted. Set
Repeatable to allow repetition; every occurrence then calls the Value,
which is what StringList is made for.


# Errors

Problems with individual arguments (unknown or ambiguous options, missing
arguments, conversion failures, repeated options) never abort the parse.
Each is written to the diagnostics logger, which defaults to a text
logger on standard error, and is collected in Result.Errors. The
offending option is skipped and scanning continues. Use WithLogger or
WithDiagnostics to redirect the diagnostics.


# Help

WriteHelp renders the groups as a help text, showing argument hints and
default values. WriteValues lists the current value of every option.
*/
package gnuflag
