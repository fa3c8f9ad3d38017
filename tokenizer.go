package gnuflag

import (
	"strings"
	"unicode/utf8"
)

const endOptionsIndicator = "--"

// token is one classified option occurrence.
type token struct {
	opt    *Option // nil if err is set and no option could be resolved
	arg    string
	hasArg bool
	text   string // the option as written, eg "-x" or "--name"
	index  int    // position in args of the token the option came from
	err    error
}

// tokenizer walks args in strict POSIX order: scanning stops at the first
// argument that is not an option. It owns all scan state, so parses do not
// interfere with each other.
type tokenizer struct {
	reg  *Registry
	args []string
	idx  int // next argument to look at
	pos  int // offset into args[idx] while inside a short option cluster
}

func newTokenizer(reg *Registry, args []string) *tokenizer {
	return &tokenizer{reg: reg, args: args}
}

// Next returns the next option token. The boolean is false once scanning
// has ended; t.idx then holds the index of the first unconsumed argument.
func (t *tokenizer) next() (token, bool) {
	if t.pos > 0 {
		return t.nextShort(), true
	}

	if t.idx >= len(t.args) {
		return token{}, false
	}

	arg := t.args[t.idx]
	switch {
	case arg == endOptionsIndicator:
		t.idx++
		return token{}, false

	case arg == "-", !strings.HasPrefix(arg, "-"):
		// Positional: ends option scanning
		return token{}, false

	case strings.HasPrefix(arg, "--"):
		return t.nextLong(), true

	default:
		t.pos = 1
		return t.nextShort(), true
	}
}

// NextLong handles "--name", "--name=value" and "--name value".
func (t *tokenizer) nextLong() token {
	index := t.idx
	name, val, hasEq := strings.Cut(t.args[t.idx][2:], "=")
	t.idx++

	tok := token{text: "--" + name, index: index}

	if name == "" {
		tok.err = ErrUnknownOption
		return tok
	}

	opt, candidates := t.reg.matchLong(name)
	switch {
	case opt == nil && len(candidates) > 1:
		tok.err = ErrAmbiguousOption
		return tok
	case opt == nil:
		tok.err = ErrUnknownOption
		return tok
	}

	tok.opt = opt
	tok.text = "--" + opt.Name

	switch opt.Arity {
	case NoArgument:
		if hasEq {
			tok.err = ErrUnexpectedArgument
		}

	case RequiredArgument:
		if hasEq {
			tok.arg, tok.hasArg = val, true
		} else if t.idx < len(t.args) {
			tok.arg, tok.hasArg = t.args[t.idx], true
			t.idx++
		} else {
			tok.err = ErrMissingArgument
		}

	case OptionalArgument:
		// Only the attached form: "--name value" leaves value positional
		tok.arg, tok.hasArg = val, hasEq
	}

	return tok
}

// NextShort handles one character of a short option cluster such as
// "-abc", "-xVALUE" or "-x VALUE".
func (t *tokenizer) nextShort() token {
	arg := t.args[t.idx]
	index := t.idx

	c, size := utf8.DecodeRuneInString(arg[t.pos:])
	t.pos += size
	rest := arg[t.pos:]

	tok := token{text: "-" + string(c), index: index}

	// Advances past the current argument once the cluster is exhausted
	finish := func() {
		t.idx++
		t.pos = 0
	}

	opt, ok := t.reg.LookupShort(c)
	if !ok {
		tok.err = ErrUnknownOption
		if rest == "" {
			finish()
		}
		return tok
	}
	tok.opt = opt

	switch opt.Arity {
	case NoArgument:
		if rest == "" {
			finish()
		}

	case RequiredArgument:
		finish()
		if rest != "" {
			tok.arg, tok.hasArg = rest, true
		} else if t.idx < len(t.args) {
			tok.arg, tok.hasArg = t.args[t.idx], true
			t.idx++
		} else {
			tok.err = ErrMissingArgument
		}

	case OptionalArgument:
		finish()
		tok.arg, tok.hasArg = rest, rest != ""
	}

	return tok
}
