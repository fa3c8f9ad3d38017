package gnuflag

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"github.com/samber/lo"
)

// PrintHelp writes the help text for groups to standard output. Group
// headings are highlighted when the output is a terminal.
func PrintHelp(groups []Group) error {
	return writeHelp(color.Output, groups, !color.NoColor)
}

// WriteHelp writes the help text for groups to w, without colors.
//
// Each group starts with its name, followed by one line per option:
//
//	-i, --int <NUMBER>  Set the Int value. Default: 10
//	    --name <STRING> Option without short name.
//	-o, --opt[=STRING]  Option with optional argument.
func WriteHelp(w io.Writer, groups []Group) error {
	return writeHelp(w, groups, false)
}

func writeHelp(w io.Writer, groups []Group, colored bool) error {
	heading := color.New(color.Bold)
	if colored {
		heading.EnableColor()
	} else {
		heading.DisableColor()
	}

	for _, grp := range groups {
		if _, err := fmt.Fprintf(w, "%s\n\n", heading.Sprint(grp.Name+":")); err != nil {
			return err
		}

		syntax := lo.Map(grp.Options, func(o Option, _ int) string {
			return optionSyntax(&o)
		})
		width := lo.Max(lo.Map(syntax, func(s string, _ int) int {
			return runewidth.StringWidth(s)
		}))

		for i := range grp.Options {
			line := runewidth.FillRight(syntax[i], width) + "  " + optionHelp(&grp.Options[i])
			if _, err := fmt.Fprintln(w, strings.TrimRight(line, " ")); err != nil {
				return err
			}
		}

		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}

	return nil
}

// OptionSyntax renders the left column: names and argument hint.
func optionSyntax(opt *Option) string {
	var sb strings.Builder

	switch {
	case opt.Short != 0 && opt.Name != "":
		fmt.Fprintf(&sb, "-%c, --%s", opt.Short, opt.Name)
	case opt.Short != 0:
		fmt.Fprintf(&sb, "-%c", opt.Short)
	default:
		fmt.Fprintf(&sb, "    --%s", opt.Name)
	}

	hint := ""
	if opt.Value != nil {
		hint = opt.Value.ArgHint()
	}
	if hint == "" || opt.Arity == NoArgument {
		return sb.String()
	}

	switch {
	case opt.Arity == OptionalArgument && opt.Name != "":
		fmt.Fprintf(&sb, "[=%s]", hint)
	case opt.Arity == OptionalArgument:
		fmt.Fprintf(&sb, "[%s]", hint)
	default:
		fmt.Fprintf(&sb, " <%s>", hint)
	}

	return sb.String()
}

// OptionHelp renders the right column: help text, default, repeatability.
func optionHelp(opt *Option) string {
	help := opt.Help

	if opt.Value != nil {
		if def, ok := opt.Value.DefaultValue(); ok {
			help += " Default: " + def
		}
	}
	if opt.Repeatable {
		help += " (repeatable)"
	}

	return strings.TrimSpace(help)
}

// -----

// PrintValues writes the current value of every option to standard error.
func PrintValues(groups []Group) error {
	return WriteValues(os.Stderr, groups)
}

// WriteValues writes one line per option to w: its name, argument hint and
// the current value of its target variable. Useful to check the outcome of
// a parse.
func WriteValues(w io.Writer, groups []Group) error {
	all := lo.FlatMap(groups, func(g Group, _ int) []Option { return g.Options })

	// Find max width of names and hints
	mxName, mxHint := 0, 0
	for i := range all {
		mxName = max(mxName, runewidth.StringWidth(all[i].Display()))
		if all[i].Value != nil {
			mxHint = max(mxHint, runewidth.StringWidth(all[i].Value.ArgHint()))
		}
	}

	for i := range all {
		opt := &all[i]
		if opt.Value == nil {
			continue
		}

		line := runewidth.FillRight(opt.Display(), mxName) + "   " +
			runewidth.FillRight(opt.Value.ArgHint(), mxHint) + "   " +
			opt.Value.String()
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	return nil
}
