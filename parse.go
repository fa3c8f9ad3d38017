package gnuflag

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/kballard/go-shellquote"
)

// Result describes the outcome of one parse.
type Result struct {
	// Next is the index in args of the first argument that was not
	// consumed, ie the first positional argument, or len(args).
	Next int

	// Rest is args[Next:].
	Rest []string

	// Errors lists the per-token problems in the order they were found.
	// Each has already been reported to the diagnostics logger.
	Errors []*ParseError
}

// Err returns all per-token errors joined, or nil if there were none.
func (r *Result) Err() error {
	errs := make([]error, len(r.Errors))
	for i, e := range r.Errors {
		errs[i] = e
	}
	return errors.Join(errs...)
}

// -----

type parseConfig struct {
	logger *slog.Logger
}

// ParseOption configures a parse.
type ParseOption func(*parseConfig)

// WithLogger sends diagnostics to logger. Per-token errors are logged at
// Warn level, successfully set options at Debug level.
func WithLogger(logger *slog.Logger) ParseOption {
	return func(c *parseConfig) { c.logger = logger }
}

// WithDiagnostics writes diagnostics as text lines to w.
func WithDiagnostics(w io.Writer) ParseOption {
	return WithLogger(newDiagnosticsLogger(w))
}

// NewDiagnosticsLogger returns a text logger without timestamps, so that
// diagnostics read like those of other command-line tools.
func newDiagnosticsLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))
}

func newParseConfig(opts []ParseOption) *parseConfig {
	c := &parseConfig{}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = newDiagnosticsLogger(os.Stderr)
	}
	return c
}

// -----

// parseRun holds the state of a single parse.
type parseRun struct {
	cfg    *parseConfig
	used   map[*Option]bool
	errors []*ParseError
}

// Parse consumes options from args, which must not include the program
// name, and sets the matching values. Problems with individual tokens do
// not stop the parse: they are logged, collected in Result.Errors, and the
// offending token is skipped.
func (r *Registry) Parse(args []string, opts ...ParseOption) *Result {
	run := &parseRun{
		cfg:  newParseConfig(opts),
		used: map[*Option]bool{},
	}

	tz := newTokenizer(r, args)
	for {
		tok, ok := tz.next()
		if !ok {
			break
		}
		run.handle(tok)
	}

	return &Result{
		Next:   tz.idx,
		Rest:   args[tz.idx:],
		Errors: run.errors,
	}
}

// ParseLine splits line into words using shell quoting rules and parses
// them. It only fails if line is not properly quoted.
func (r *Registry) ParseLine(line string, opts ...ParseOption) (*Result, error) {
	args, err := shellquote.Split(line)
	if err != nil {
		return nil, fmt.Errorf("split %q: %w", line, err)
	}
	return r.Parse(args, opts...), nil
}

// Parse builds a registry from groups and parses args against it. The
// error is non-nil only for a malformed option table (see NewRegistry).
func Parse(args []string, groups []Group, opts ...ParseOption) (*Result, error) {
	reg, err := NewRegistry(groups)
	if err != nil {
		return nil, err
	}
	return reg.Parse(args, opts...), nil
}

// FromCommandLine is like Parse, using the process arguments without the
// program name. Result.Next is therefore an index into os.Args[1:].
func FromCommandLine(groups []Group, opts ...ParseOption) (*Result, error) {
	return Parse(os.Args[1:], groups, opts...)
}

// -----

func (run *parseRun) handle(tok token) {
	if tok.err != nil {
		run.fail(tok, tok.err)
		return
	}

	// An attached argument of zero length counts as no argument at all
	hasArg := tok.hasArg && tok.arg != ""

	if err := run.set(tok.opt, tok.arg, hasArg); err != nil {
		run.fail(tok, err)
		return
	}

	run.cfg.logger.Debug("option set", "option", tok.text, "index", tok.index)
}

// Set applies the arity and repeat rules before calling the option's
// Value. An option counts as used as soon as it is seen, whether or not
// the value could be set.
func (run *parseRun) set(opt *Option, arg string, hasArg bool) error {
	if run.used[opt] && !opt.Repeatable {
		return ErrRepeated
	}
	run.used[opt] = true

	switch {
	case !hasArg && opt.Arity == OptionalArgument:
		def, ok := opt.Value.DefaultValue()
		if !ok {
			return ErrNoDefault
		}
		return opt.Value.Set(def, true)

	case hasArg || opt.Arity == NoArgument:
		return opt.Value.Set(arg, hasArg)
	}

	return ErrMissingArgument
}

func (run *parseRun) fail(tok token, err error) {
	perr := &ParseError{Option: tok.text, Index: tok.index, Err: err}
	run.errors = append(run.errors, perr)

	run.cfg.logger.LogAttrs(context.Background(), slog.LevelWarn, err.Error(),
		slog.String("option", tok.text), slog.Int("index", tok.index))
}
