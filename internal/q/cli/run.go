package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

type Options struct {
	// Args is the argv excluding the program name (typically os.Args[1:]).
	Args []string

	// In/Out/Err override standard I/O. If nil, defaults are used.
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// Context is passed to a command handler. Flag values are read via the
// pointers bound at command construction time.
type Context struct {
	context.Context

	Command *Command
	Args    []string

	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// Run executes a command tree as a CLI program and returns a process exit
// code: 0 on success, 2 for usage errors, the ExitCoder code otherwise, 1
// for any other error.
func Run(ctx context.Context, root *Command, opts Options) int {
	if root == nil || root.Name == "" {
		panic("cli: Run needs a root command with a name")
	}

	in := opts.In
	if in == nil {
		in = os.Stdin
	}
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	errOut := opts.Err
	if errOut == nil {
		errOut = os.Stderr
	}

	selected, args, parseErr := parseArgv(root, opts.Args, out)
	if parseErr != nil {
		if errors.Is(parseErr, errHelpPrinted) {
			return 0
		}
		printUsageError(root, selected, parseErr, errOut)
		return 2
	}

	if selected.Run == nil {
		if len(args) == 0 {
			printUsageError(root, selected, usageErrorf("missing subcommand"), errOut)
		} else {
			printUsageError(root, selected, usageErrorf("unknown subcommand: %s", args[0]), errOut)
		}
		return 2
	}

	if selected.Args != nil {
		if err := selected.Args(args); err != nil {
			return exitCode(root, selected, err, errOut, true)
		}
	}

	c := &Context{
		Context: ctx,
		Command: selected,
		Args:    args,
		In:      in,
		Out:     out,
		Err:     errOut,
	}
	if err := selected.Run(c); err != nil {
		return exitCode(root, selected, err, errOut, false)
	}
	return 0
}

var errHelpPrinted = errors.New("help printed")

func parseArgv(root *Command, argv []string, out io.Writer) (*Command, []string, error) {
	selected := root
	selectionEnded := false
	var positional []string

	for i := 0; i < len(argv); i++ {
		token := argv[i]

		if token == "--" {
			positional = append(positional, argv[i+1:]...)
			break
		}

		if token == "-h" || token == "--help" {
			writeHelp(out, root, selected)
			return selected, nil, errHelpPrinted
		}

		if strings.HasPrefix(token, "-") && token != "-" {
			consumed, err := parseFlagToken(selected.activeFlags(), token, argv, i)
			if err != nil {
				return selected, nil, err
			}
			i += consumed
			continue
		}

		if !selectionEnded {
			if child := selected.childByName(token); child != nil {
				selected = child
				continue
			}
			selectionEnded = true
		}

		positional = append(positional, token)
	}

	return selected, positional, nil
}

// parseFlagToken handles --name, --name=value, -s, and -s=value. Non-bool
// flags without an inline value consume the next token. It returns how many
// extra tokens were consumed.
func parseFlagToken(active activeFlags, token string, argv []string, idx int) (int, error) {
	body := strings.TrimLeft(token, "-")
	name, inline, hasInline := body, "", false
	if i := strings.IndexByte(body, '='); i >= 0 {
		name, inline, hasInline = body[:i], body[i+1:], true
	}

	var def *flagDef
	if strings.HasPrefix(token, "--") {
		def = active.byLong[name]
	} else if len([]rune(name)) == 1 {
		def = active.byShort[[]rune(name)[0]]
	}
	if def == nil {
		return 0, usageErrorf("unknown flag: %s", token)
	}

	raw := inline
	consumed := 0
	if !hasInline {
		if def.kind == flagBool {
			raw = "true"
		} else {
			if idx+1 >= len(argv) {
				return 0, usageErrorf("flag needs a value: %s", token)
			}
			raw = argv[idx+1]
			consumed = 1
		}
	}

	if err := def.set(raw); err != nil {
		return 0, usageErrorf("invalid value for %s: %v", displayFlag(def), err)
	}
	return consumed, nil
}

func exitCode(root, cmd *Command, err error, errOut io.Writer, argsPhase bool) int {
	var ec ExitCoder
	if errors.As(err, &ec) {
		code := ec.ExitCode()
		switch {
		case code == 2:
			printUsageError(root, cmd, err, errOut)
			return 2
		case code == 0:
			return 0
		default:
			if msg := err.Error(); msg != "" {
				fmt.Fprintln(errOut, msg)
			}
			return code
		}
	}

	if argsPhase {
		printUsageError(root, cmd, err, errOut)
		return 2
	}

	if msg := err.Error(); msg != "" {
		fmt.Fprintln(errOut, msg)
	}
	return 1
}

func printUsageError(root, cmd *Command, err error, errOut io.Writer) {
	if err != nil && !errors.Is(err, errHelpPrinted) {
		if msg := err.Error(); msg != "" {
			fmt.Fprintln(errOut, msg)
			fmt.Fprintln(errOut)
		}
	}
	writeHelp(errOut, root, cmd)
}
