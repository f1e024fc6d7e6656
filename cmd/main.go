// inputctl - one-shot input injector
// Performs a single mouse or keyboard action described by a JSON argument, e.g.
//
//	inputctl '{"type":"click","x":100,"y":200}'
package main

import (
	"io"
	"log"
	"os"

	"inputctl/internal/input"
)

func main() {
	run(os.Args[1:], os.Stderr, input.NewInjector())
	// Callers only read stderr; the exit status stays 0 even when the command failed.
	os.Exit(0)
}

// run executes the command in args[0], if any, and reports failures to stderr.
func run(args []string, stderr io.Writer, inj input.InputInjector, opts ...input.Option) {
	if len(args) < 1 {
		return
	}
	logger := log.New(stderr, "", 0)

	cmd, err := input.ParseCommand([]byte(args[0]))
	if err != nil {
		logger.Print(err)
		return
	}

	if err := input.NewDispatcher(inj, opts...).Dispatch(cmd); err != nil {
		logger.Printf("%s: %v", cmd.Kind, err)
	}
}
