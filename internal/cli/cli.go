// Package cli implements the tetrisplay command surface: tessellate,
// graph-build, pc-table-dump, and bench. The command-dispatch shape is
// restructured from a stdin REPL loop into an os.Args-driven subcommand
// switch, each subcommand resolving its flags with an environment-variable
// fallback the way cmd/chessplay-uci/main.go resolves CPUPROFILE.
package cli

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
)

// Exit codes match SPEC_FULL.md's external-interface contract: 0 success, 1
// error, 2 cancellation.
const (
	ExitOK   = 0
	ExitErr  = 1
	ExitStop = 2
)

// Logger is the package-level diagnostic logger every subcommand uses,
// writing to stderr with a microsecond timestamp, the same plain
// log.Printf idiom used throughout cmd/chessplay-uci/main.go and
// internal/engine/engine.go's OnInfo callback.
var Logger = log.New(os.Stderr, "", log.Lmicroseconds)

// Run dispatches args[0] (a subcommand name) to its handler and returns the
// process exit code. args is os.Args[1:].
func Run(args []string) int {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "usage: tetrisplay <tessellate|graph-build|pc-table-dump|bench> [flags]")
		return ExitErr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmd, rest := args[0], args[1:]
	var err error
	switch cmd {
	case "tessellate":
		err = runTessellate(ctx, rest)
	case "graph-build":
		err = runGraphBuild(ctx, rest)
	case "pc-table-dump":
		err = runPcTableDump(ctx, rest)
	case "bench":
		err = runBench(ctx, rest)
	default:
		fmt.Fprintf(os.Stderr, "unknown subcommand %q\n", cmd)
		return ExitErr
	}

	if err == nil {
		return ExitOK
	}
	if ctx.Err() != nil {
		Logger.Printf("cancelled: %v", err)
		return ExitStop
	}
	Logger.Printf("error: %v", err)
	return ExitErr
}

// envOrDefault returns the value of env if set, else def — the
// flag-then-environment-variable fallback cmd/chessplay-uci/main.go uses
// for CPUPROFILE, generalized to any flag.
func envOrDefault(env, def string) string {
	if v := os.Getenv(env); v != "" {
		return v
	}
	return def
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	return fs
}
