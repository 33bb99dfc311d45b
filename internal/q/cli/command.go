// Package cli is a small command-tree framework: typed flags, positional
// arg validation, generated help, and usage-error exit codes. It exists so
// the binary doesn't drag in a general-purpose CLI dependency for a handful
// of subcommands.
package cli

import "fmt"

// RunFunc is a command handler.
type RunFunc func(c *Context) error

// ArgsFunc validates positional args. It should return a UsageError for
// user-facing mistakes.
type ArgsFunc func(args []string) error

// Command is one node of a CLI command tree.
type Command struct {
	// Name is the token that invokes this command.
	Name string

	Short   string
	Long    string
	Example string

	Args ArgsFunc // optional
	Run  RunFunc  // optional for commands that only group children

	parent   *Command
	children []*Command
	flags    *FlagSet
}

// AddCommand attaches child commands under c.
func (c *Command) AddCommand(children ...*Command) {
	for _, child := range children {
		if child == nil {
			panic("cli: AddCommand called with nil child")
		}
		if child.Name == "" {
			panic("cli: AddCommand called with a child with empty Name")
		}
		if child.parent != nil {
			panic("cli: AddCommand called with a child already attached to a parent")
		}
		child.parent = c
		c.children = append(c.children, child)
	}
}

// Flags returns c's flag set, creating it on first use. Flags registered on
// the root command are accepted by every subcommand.
func (c *Command) Flags() *FlagSet {
	if c.flags == nil {
		c.flags = newFlagSet()
	}
	return c.flags
}

func (c *Command) childByName(token string) *Command {
	for _, child := range c.children {
		if child.Name == token {
			return child
		}
	}
	return nil
}

func (c *Command) pathFromRoot() []*Command {
	var path []*Command
	for node := c; node != nil; node = node.parent {
		path = append([]*Command{node}, path...)
	}
	return path
}

// NoArgs validates that no positional args are given.
func NoArgs(args []string) error {
	if len(args) == 0 {
		return nil
	}
	return usageErrorf("expected no args, got %d", len(args))
}

// ExactArgs validates that exactly n positional args are given.
func ExactArgs(n int) ArgsFunc {
	return func(args []string) error {
		if len(args) == n {
			return nil
		}
		return usageErrorf("expected %d arg(s), got %d", n, len(args))
	}
}

// MaximumArgs validates that at most n positional args are given.
func MaximumArgs(n int) ArgsFunc {
	return func(args []string) error {
		if len(args) <= n {
			return nil
		}
		return usageErrorf("expected at most %d arg(s), got %d", n, len(args))
	}
}

func displayFlag(def *flagDef) string {
	if def.shorthand != 0 {
		return fmt.Sprintf("-%c/--%s", def.shorthand, def.name)
	}
	return "--" + def.name
}
