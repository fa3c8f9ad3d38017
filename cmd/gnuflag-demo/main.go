// Command gnuflag-demo declares a few options, prints their help, parses
// its arguments and prints the resulting values.
package main

import (
	"fmt"
	"os"

	"github.com/janert/gnuflag"
)

func main() {
	myString := "I was untouched"
	optional := "I'm optional"
	var list []string
	myFlag := false
	myInt := 10

	groups := []gnuflag.Group{
		{Name: "Default", Options: []gnuflag.Option{
			{Name: "int", Short: 'i', Arity: gnuflag.RequiredArgument,
				Value: gnuflag.Int(&myInt).WithDefault(myInt), Help: "Set the Int value."},
			{Name: "bool", Short: 'b', Arity: gnuflag.NoArgument,
				Value: gnuflag.Bool(&myFlag, gnuflag.StoreTrue).WithDefault(myFlag), Help: "Enable the bool switch."},
		}},
		{Name: "Extended", Options: []gnuflag.Option{
			{Name: "string", Short: 's', Arity: gnuflag.RequiredArgument,
				Value: gnuflag.String(&myString).WithDefault(myString), Help: "Set the String value."},
			{Name: "ostring", Short: 'o', Arity: gnuflag.OptionalArgument, Repeatable: true,
				Value: gnuflag.String(&optional).WithDefault("Seen, i was seen"), Help: "Set the optional String value."},
			{Name: "cstring", Short: 'c', Arity: gnuflag.RequiredArgument, Repeatable: true,
				Value: gnuflag.StringList(&list), Help: "Add value to list of strings."},
		}},
	}

	fmt.Println("My options:")
	if err := gnuflag.PrintHelp(groups); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	res, err := gnuflag.FromCommandLine(groups)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if err := gnuflag.WriteValues(os.Stdout, groups); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if len(res.Rest) > 0 {
		fmt.Printf("next in argv: %s\n", res.Rest[0])
	}
	if len(res.Errors) > 0 {
		fmt.Printf("%d argument(s) could not be used\n", len(res.Errors))
	}
}
