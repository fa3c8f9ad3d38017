package gnuflag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// demoTarget holds the variables bound by demoGroups.
type demoTarget struct {
	str      string
	optional string
	list     []string
	flag     bool
	num      int
}

// demoGroups returns the option table used throughout the tests, bound to
// a fresh demoTarget.
func demoGroups() ([]Group, *demoTarget) {
	d := &demoTarget{
		str:      "I was untouched",
		optional: "I'm optional",
		num:      10,
	}

	groups := []Group{
		{Name: "Default", Options: []Option{
			{Name: "int", Short: 'i', Arity: RequiredArgument,
				Value: Int(&d.num).WithDefault(d.num), Help: "Set the Int value."},
			{Name: "bool", Short: 'b', Arity: NoArgument,
				Value: Bool(&d.flag, StoreTrue).WithDefault(d.flag), Help: "Enable the bool switch."},
		}},
		{Name: "Extended", Options: []Option{
			{Name: "string", Short: 's', Arity: RequiredArgument,
				Value: String(&d.str).WithDefault(d.str), Help: "Set the String value."},
			{Name: "ostring", Short: 'o', Arity: OptionalArgument, Repeatable: true,
				Value: String(&d.optional).WithDefault("Seen, i was seen"), Help: "Set the optional String value."},
			{Name: "cstring", Short: 'c', Arity: RequiredArgument, Repeatable: true,
				Value: StringList(&d.list), Help: "Add value to list of strings."},
		}},
	}

	return groups, d
}

func TestNewRegistry(t *testing.T) {
	groups, _ := demoGroups()

	reg, err := NewRegistry(groups)
	require.NoError(t, err)

	assert.Equal(t, 5, reg.Len())
	assert.Len(t, reg.long, 5)
	assert.Len(t, reg.short, 5)

	// Declaration order is kept across groups
	names := []string{}
	for _, opt := range reg.Options() {
		names = append(names, opt.Name)
	}
	assert.Equal(t, []string{"int", "bool", "string", "ostring", "cstring"}, names)

	opt, ok := reg.Lookup("ostring")
	require.True(t, ok)
	assert.Equal(t, 'o', opt.Short)

	opt, ok = reg.LookupShort('c')
	require.True(t, ok)
	assert.Equal(t, "cstring", opt.Name)

	_, ok = reg.Lookup("ostr")
	assert.False(t, ok, "Lookup must not match prefixes")

	_, ok = reg.LookupShort('x')
	assert.False(t, ok)

	assert.Equal(t, groups, reg.Groups())
}

func TestNewRegistryPartialNames(t *testing.T) {
	var a, b bool
	groups := []Group{
		{Name: "g", Options: []Option{
			{Name: "long-only", Value: Bool(&a, StoreTrue)},
			{Short: 's', Value: Bool(&b, StoreTrue)},
		}},
	}

	reg, err := NewRegistry(groups)
	require.NoError(t, err)

	assert.Equal(t, 2, reg.Len())
	assert.Len(t, reg.long, 1)
	assert.Len(t, reg.short, 1)
}

func TestNewRegistryEmpty(t *testing.T) {
	reg, err := NewRegistry(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, reg.Len())

	res := reg.Parse([]string{"a", "b"})
	assert.Equal(t, 0, res.Next)
}

func TestNewRegistryErrors(t *testing.T) {
	var s string
	v := String(&s)

	tests := []struct {
		name    string
		groups  []Group
		wantErr error
		option  string
	}{
		{"duplicate long in group",
			[]Group{{Options: []Option{{Name: "a", Value: v}, {Name: "a", Value: v}}}},
			ErrDuplicateLong, "--a"},
		{"duplicate long across groups",
			[]Group{{Options: []Option{{Name: "a", Short: 'x', Value: v}}},
				{Options: []Option{{Name: "a", Short: 'y', Value: v}}}},
			ErrDuplicateLong, "--a"},
		{"duplicate short",
			[]Group{{Options: []Option{{Name: "a", Short: 'x', Value: v}}},
				{Options: []Option{{Name: "b", Short: 'x', Value: v}}}},
			ErrDuplicateShort, "-x"},
		{"duplicate short only",
			[]Group{{Options: []Option{{Short: 'x', Value: v}, {Short: 'x', Value: v}}}},
			ErrDuplicateShort, "-x"},
		{"invalid arity",
			[]Group{{Options: []Option{{Name: "a", Arity: RequiredArgument | OptionalArgument, Value: v}}}},
			ErrInvalidArity, "--a"},
		{"unnamed",
			[]Group{{Options: []Option{{Name: "a", Value: v}, {Value: v}}}},
			ErrUnnamedOption, "option #1"},
		{"nil value",
			[]Group{{Options: []Option{{Name: "a"}}}},
			ErrNilValue, "--a"},
		{"long with dashes",
			[]Group{{Options: []Option{{Name: "--a", Value: v}}}},
			ErrInvalidName, "----a"},
		{"long with equals",
			[]Group{{Options: []Option{{Name: "a=b", Value: v}}}},
			ErrInvalidName, "--a=b"},
		{"long with space",
			[]Group{{Options: []Option{{Name: "a b", Value: v}}}},
			ErrInvalidName, "--a b"},
		{"short dash",
			[]Group{{Options: []Option{{Name: "a", Short: '-', Value: v}}}},
			ErrInvalidName, "--"},
		{"short colon",
			[]Group{{Options: []Option{{Short: ':', Value: v}}}},
			ErrInvalidName, "-:"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			reg, err := NewRegistry(test.groups)
			assert.Nil(t, reg)
			require.ErrorIs(t, err, test.wantErr)

			var cerr *ConfigError
			require.ErrorAs(t, err, &cerr)
			assert.Equal(t, test.option, cerr.Option)
		})
	}
}

func TestNewRegistryConflictIgnoresInput(t *testing.T) {
	var a, b bool
	groups := []Group{
		{Options: []Option{
			{Name: "x", Value: Bool(&a, StoreTrue)},
			{Name: "x", Value: Bool(&b, StoreTrue)},
		}},
	}

	for _, args := range [][]string{nil, {"--x"}, {"positional"}} {
		res, err := Parse(args, groups)
		assert.Nil(t, res)
		assert.ErrorIs(t, err, ErrDuplicateLong)
	}
	assert.False(t, a || b)
}

func TestMatchLong(t *testing.T) {
	var s string
	groups := []Group{{Options: []Option{
		{Name: "verbose", Value: String(&s)},
		{Name: "version", Value: String(&s)},
		{Name: "ver", Value: String(&s)},
		{Name: "quiet", Value: String(&s)},
	}}}

	reg, err := NewRegistry(groups)
	require.NoError(t, err)

	tests := []struct {
		name       string
		want       string
		candidates int
	}{
		{"ver", "ver", 0},
		{"verb", "verbose", 0},
		{"vers", "version", 0},
		{"q", "quiet", 0},
		{"ve", "", 3},
		{"x", "", 0},
	}

	for _, test := range tests {
		opt, candidates := reg.matchLong(test.name)
		if test.want == "" {
			assert.Nil(t, opt, test.name)
		} else if assert.NotNil(t, opt, test.name) {
			assert.Equal(t, test.want, opt.Name)
		}
		assert.Len(t, candidates, test.candidates, test.name)
	}
}
