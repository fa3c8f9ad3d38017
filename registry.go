package gnuflag

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/samber/lo"
)

// Registry is the validated, flattened option table. It is not modified
// after NewRegistry returns, so one Registry may be parsed any number of
// times, also concurrently.
type Registry struct {
	groups  []Group
	options []*Option // flattened, in group and declaration order
	long    map[string]*Option
	short   map[rune]*Option
}

// NewRegistry flattens groups and builds the long and short name indices.
// It returns a *ConfigError if an option is malformed or a name is used
// twice. These errors depend only on the option table, never on user input.
func NewRegistry(groups []Group) (*Registry, error) {
	r := &Registry{
		groups: groups,
		long:   map[string]*Option{},
		short:  map[rune]*Option{},
	}

	// Copy options so that later changes to groups cannot alter the indices
	flat := lo.FlatMap(groups, func(g Group, _ int) []Option { return g.Options })

	for i := range flat {
		opt := &flat[i]

		if err := validateOption(opt, i); err != nil {
			return nil, err
		}

		if opt.Name != "" {
			if _, ok := r.long[opt.Name]; ok {
				return nil, &ConfigError{Option: "--" + opt.Name, Err: ErrDuplicateLong}
			}
			r.long[opt.Name] = opt
		}

		if opt.Short != 0 {
			if _, ok := r.short[opt.Short]; ok {
				return nil, &ConfigError{Option: "-" + string(opt.Short), Err: ErrDuplicateShort}
			}
			r.short[opt.Short] = opt
		}

		r.options = append(r.options, opt)
	}

	return r, nil
}

// ValidateOption checks a single option in isolation; pos is its index in
// the flattened table and names the option if it has no name.
func validateOption(opt *Option, pos int) error {
	name := opt.Display()
	if name == "" {
		name = fmt.Sprintf("option #%d", pos)
	}

	switch {
	case !opt.Arity.valid():
		return &ConfigError{Option: name, Err: ErrInvalidArity}
	case opt.Name == "" && opt.Short == 0:
		return &ConfigError{Option: name, Err: ErrUnnamedOption}
	case opt.Value == nil:
		return &ConfigError{Option: name, Err: ErrNilValue}
	}

	if opt.Name != "" {
		if strings.HasPrefix(opt.Name, "-") ||
			strings.ContainsAny(opt.Name, "=") ||
			strings.ContainsFunc(opt.Name, unicode.IsSpace) {
			return &ConfigError{Option: name, Err: ErrInvalidName}
		}
	}

	if opt.Short != 0 {
		if opt.Short == '-' || opt.Short == ':' || opt.Short == '=' ||
			unicode.IsSpace(opt.Short) || !unicode.IsPrint(opt.Short) {
			return &ConfigError{Option: "-" + string(opt.Short), Err: ErrInvalidName}
		}
	}

	return nil
}

// Groups returns the groups the registry was built from.
func (r *Registry) Groups() []Group { return r.groups }

// Options returns all options in declaration order.
func (r *Registry) Options() []*Option { return r.options }

// Len returns the number of options.
func (r *Registry) Len() int { return len(r.options) }

// Lookup returns the option with the exact long name.
func (r *Registry) Lookup(name string) (*Option, bool) {
	opt, ok := r.long[name]
	return opt, ok
}

// LookupShort returns the option with the given short name.
func (r *Registry) LookupShort(c rune) (*Option, bool) {
	opt, ok := r.short[c]
	return opt, ok
}

// matchLong resolves a long name the way getopt_long does: an exact match
// wins, otherwise the name may be an unambiguous prefix of one long option.
// Candidates are returned in declaration order if there is more than one.
func (r *Registry) matchLong(name string) (*Option, []*Option) {
	if opt, ok := r.long[name]; ok {
		return opt, nil
	}

	candidates := lo.Filter(r.options, func(o *Option, _ int) bool {
		return o.Name != "" && strings.HasPrefix(o.Name, name)
	})
	if len(candidates) == 1 {
		return candidates[0], nil
	}
	return nil, candidates
}
