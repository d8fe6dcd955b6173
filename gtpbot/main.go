// =============================================================================
// main.go - gtpbot Entry Point
// =============================================================================
//
// gtpbot plays Go over the Go Text Protocol (GTP version 2).
//
// Usage:
//
//	gtpbot                          Serve GTP on stdin/stdout (bundled engine)
//	gtpbot --plain                  Never start the interactive session
//	gtpbot --attach "gnugo --mode gtp"
//	                                Drive an external engine interactively
//	gtpbot --config gtpbot.toml     Read settings from a TOML file
//	gtpbot --help                   Show help
//
// When a controller (GoGui, Sabaki, a tournament manager) starts gtpbot,
// stdin is a pipe and gtpbot simply serves GTP. When a human starts it in
// a terminal, an interactive session with line editing runs instead.
//
// Exit codes: 0 on a normal end, 1 for usage, configuration or I/O errors,
// 2 when the engine breaks its contract with the protocol adapter, and
// 128 plus the signal number after SIGINT or SIGTERM.
//
// =============================================================================

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/elinorbgr/gtp-go/gtpprotocol"
	"github.com/rs/zerolog"
)

const (
	// version is the gtpbot version, also reported by the version command.
	version = "0.1.0"

	// appName is the program name and the default engine name.
	appName = "gtpbot"

	copyright = "Copyright (c) 2026"
)

// Process exit codes.
const (
	exitOK       = 0
	exitFailure  = 1
	exitContract = 2
)

func fullTitle() string {
	return fmt.Sprintf("%s v%s (GTP %s)", appName, version, gtpprotocol.ProtocolVersion)
}

// welcomeBanner is printed when the interactive session starts.
func welcomeBanner(engineName, engineVersion string) string {
	return fmt.Sprintf(`%s
%s

Engine: %s %s
Type '.help' for available commands.
Type '.quit' to exit.
`, fullTitle(), copyright, engineName, engineVersion)
}

// arguments holds the parsed command-line flags.
type arguments struct {
	// configPath is the TOML file given with --config.
	configPath string

	// plain disables the interactive session even on a terminal.
	plain bool

	// attach is the command line of an external engine.
	attach string

	showHelp    bool
	showVersion bool
}

// GO CONCEPT: Manual Argument Parsing
// -----------------------------------
// The standard flag package only knows single-dash flags and stops at the
// first non-flag argument. gtpbot has a handful of GNU-style options, so a
// small loop over the arguments is clearer than bending flag to fit.

// parseArguments parses the command-line arguments, without the program
// name.
func parseArguments(argv []string) (arguments, error) {
	var args arguments

	remaining := argv
	for len(remaining) > 0 {
		arg := remaining[0]
		remaining = remaining[1:]

		switch arg {
		case "--config":
			if len(remaining) == 0 {
				return arguments{}, errors.New("--config requires a path argument")
			}
			args.configPath = remaining[0]
			remaining = remaining[1:]

		case "--attach":
			if len(remaining) == 0 {
				return arguments{}, errors.New("--attach requires an engine command line")
			}
			args.attach = remaining[0]
			remaining = remaining[1:]

		case "--plain":
			args.plain = true

		case "--help", "-h":
			args.showHelp = true

		case "--version", "-v":
			args.showVersion = true

		default:
			return arguments{}, fmt.Errorf("unknown argument: %s", arg)
		}
	}

	return args, nil
}

func printUsage(w io.Writer) {
	fmt.Fprint(w, `USAGE: gtpbot [options]

OPTIONS:
  --config <path>     Read settings from a TOML file
  --plain             Serve GTP even when stdin is a terminal
  --attach <command>  Launch an external GTP engine and drive it interactively
  --help, -h          Show this help
  --version, -v       Show version

ENVIRONMENT:
  GTPBOT_NAME, GTPBOT_BOARDSIZE, GTPBOT_KOMI
  GTPBOT_LOG_LEVEL    trace, debug, info, warn, error or disabled
  GTPBOT_LOG_TIMESTAMP, GTPBOT_LOG_NOCOLOR
  GTPBOT_REPL_PROMPT, GTPBOT_REPL_HISTORY_FILE, GTPBOT_REPL_HISTORY_LIMIT

EXAMPLES:
  gtpbot                                  Play through a GTP controller
  gtpbot --attach "gnugo --mode gtp"      Talk GTP to GNU Go by hand

Diagnostics are written to stderr; stdout carries only GTP.
`)
}

func printVersion() {
	fmt.Println(fullTitle())
}

func printError(message string) {
	fmt.Fprintf(os.Stderr, "Error: %s\n", message)
}

// setupSignalHandler runs cleanup and exits on SIGINT or SIGTERM.
func setupSignalHandler(cleanup func()) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigCh
		fmt.Fprintln(os.Stderr)
		cleanup()
		os.Exit(signalExitCode(sig))
	}()
}

func signalExitCode(sig os.Signal) int {
	if s, ok := sig.(syscall.Signal); ok {
		return 128 + int(s)
	}
	return exitFailure
}

func main() {
	os.Exit(run(os.Args[1:]))
}

// run is main without the os.Exit, returning the exit code.
func run(argv []string) int {
	args, err := parseArguments(argv)
	if err != nil {
		printError(err.Error())
		printUsage(os.Stderr)
		return exitFailure
	}

	if args.showHelp {
		printUsage(os.Stdout)
		return exitOK
	}
	if args.showVersion {
		printVersion()
		return exitOK
	}

	cfg, err := loadConfig(args.configPath)
	if err != nil {
		printError(err.Error())
		return exitFailure
	}
	log := configureLogging(cfg.Log)

	if args.attach != "" {
		return runAttached(args.attach, cfg, log)
	}
	return runBundled(args.plain, cfg, log)
}

// runBundled serves the bundled engine, interactively on a terminal.
func runBundled(plain bool, cfg config, log zerolog.Logger) int {
	engine := newBoardEngine(cfg.Name, cfg.BoardSize, cfg.Komi)
	handler := gtpprotocol.NewHandler(engine, gtpprotocol.WithLogger(log))

	var err error
	if isTerminal(os.Stdin) && !plain {
		err = runInteractive(localBackend{handler: handler}, engine.Name(), engine.Version(), cfg.REPL)
	} else {
		log.Debug().Int("boardsize", cfg.BoardSize).Float64("komi", cfg.Komi).Msg("serving GTP on stdin")
		err = gtpprotocol.Serve(os.Stdin, os.Stdout, handler)
	}
	return exitCode(err, log)
}

// runAttached drives an external engine through the interactive session.
func runAttached(commandLine string, cfg config, log zerolog.Logger) int {
	engine, err := attachEngine(commandLine, log)
	if err != nil {
		printError(err.Error())
		return exitFailure
	}
	setupSignalHandler(engine.terminate)

	err = runInteractive(engine, engine.name, engine.version, cfg.REPL)
	if closeErr := engine.Close(); closeErr != nil {
		log.Warn().Err(closeErr).Msg("engine did not exit cleanly")
	}
	return exitCode(err, log)
}

func runInteractive(b backend, engineName, engineVersion string, cfg replConfig) error {
	editor := NewLineEditor(os.Stdin, os.Stdout, cfg)
	defer editor.Close()

	fmt.Print(welcomeBanner(engineName, engineVersion))
	return runREPL(&session{
		editor:  editor,
		out:     os.Stdout,
		backend: b,
		prompt:  cfg.Prompt,
	})
}

// exitCode logs err and maps it to a process exit code.
func exitCode(err error, log zerolog.Logger) int {
	if err == nil {
		return exitOK
	}
	var ce *gtpprotocol.ContractError
	if errors.As(err, &ce) {
		log.WithLevel(zerolog.FatalLevel).Err(ce.Err).Str("command", ce.Command).Msg("engine contract violation")
		return exitContract
	}
	log.Error().Err(err).Msg("session failed")
	return exitFailure
}
