/*
Logikusi starts an interactive Logikus session.

It optionally consults a Logikus program file at startup and then reads
lines from the console, treating each one as either a new axiom (if it ends
in '.') or a query to prove. For a query with more than one solution, typing
';' after a reported solution asks for the next one, exactly as a
traditional Prolog top level does; any other input stops the search.

Usage:

	logikusi [flags]

The flags are:

	-v, --version
		Give the current version of Logikus and then exit.

	-f, --facts FILE
		Consult the given Logikus program file before starting the session.

	-c, --config FILE
		Read startup defaults from the given TOML config file. Defaults to
		"logikusi.toml" in the current working directory; it is fine for
		this file not to exist.

	-d, --direct
		Force reading directly from stdin instead of using GNU-readline-style
		line editing, even when attached to a terminal.

	-t, --trace
		Print a line for every clause attempt and write/N call made during
		query resolution.

	-q, --query QUERY
		Immediately run the given query at start and exit after reporting
		its solutions, rather than entering an interactive session.

To exit the interpreter, type "quit" or send EOF (Ctrl-D).
*/
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"

	"github.com/dekarrin/logikus"
	"github.com/dekarrin/logikus/engine"
	"github.com/dekarrin/logikus/internal/repl"
)

const version = "0.1.0"

const (
	// ExitSuccess indicates a successful program execution.
	ExitSuccess = iota

	// ExitInitError indicates an unsuccessful program execution due to an
	// issue loading the config or the program file.
	ExitInitError

	// ExitSessionError indicates an unsuccessful program execution due to a
	// problem reading input during the session.
	ExitSessionError
)

var (
	returnCode  = ExitSuccess
	flagVersion = pflag.BoolP("version", "v", false, "Gives the version info")
	factsFile   = pflag.StringP("facts", "f", "", "A Logikus program file to consult before starting the session")
	configFile  = pflag.StringP("config", "c", "logikusi.toml", "A TOML file of startup defaults")
	forceDirect = pflag.BoolP("direct", "d", false, "Force reading directly from stdin instead of GNU-readline-style editing")
	traceFlag   = pflag.BoolP("trace", "t", false, "Trace clause attempts and write/N calls to stdout")
	queryFlag   = pflag.StringP("query", "q", "", "Run the given query immediately and exit")
)

func main() {
	defer func() {
		os.Exit(returnCode)
	}()

	pflag.Parse()

	if *flagVersion {
		fmt.Printf("logikusi %s\n", version)
		return
	}

	cfg, err := loadConfig(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: loading config: %s\n", err.Error())
		returnCode = ExitInitError
		return
	}
	if *traceFlag {
		cfg.Trace = true
	}
	if *factsFile != "" {
		cfg.ProgramFile = *factsFile
	}

	prog := engine.NewProgram()
	if cfg.ProgramFile != "" {
		data, err := os.ReadFile(cfg.ProgramFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: reading %s: %s\n", cfg.ProgramFile, err.Error())
			returnCode = ExitInitError
			return
		}
		loaded, err := logikus.ParseProgram(string(data))
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: parsing %s: %s\n", cfg.ProgramFile, err.Error())
			returnCode = ExitInitError
			return
		}
		for _, ax := range loaded.Axioms() {
			prog.Add(ax)
		}
	}

	var listener logikus.Listener = logikus.NopListener{}
	if cfg.Trace {
		listener = logikus.NewTraceListener(os.Stdout)
	}

	if *queryFlag != "" {
		runQueryOnce(prog, listener, *queryFlag)
		return
	}

	useReadline := !*forceDirect && isatty.IsTerminal(os.Stdin.Fd())

	var in repl.LineReader
	if useReadline {
		in, err = repl.NewInteractiveReader(cfg.Prompt)
	} else {
		in = repl.NewDirectReader(os.Stdin)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: initializing input reader: %s\n", err.Error())
		returnCode = ExitInitError
		return
	}
	defer in.Close()

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	if err := runSession(prog, listener, in, out, cfg.Prompt); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitSessionError
	}
}

// runQueryOnce runs a single query non-interactively and prints every
// solution it finds to stdout, one per line, until exhausted.
func runQueryOnce(prog *engine.Program, listener logikus.Listener, queryText string) {
	q, err := logikus.NewQuery(queryText, prog, logikus.WithListener(listener))
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitInitError
		return
	}
	found := false
	for {
		bindings, ok := q.Next()
		if !ok {
			break
		}
		found = true
		fmt.Println(formatBindings(bindings))
	}
	if !found {
		fmt.Println("false.")
	}
}

// runSession drives the interactive read-axiom-or-query loop until the user
// quits or input reaches EOF.
func runSession(prog *engine.Program, listener logikus.Listener, in repl.LineReader, out *bufio.Writer, prompt string) error {
	fmt.Fprintln(out, "Logikus interactive session")
	fmt.Fprintln(out, "Type an axiom ending in '.' to add a clause, or a query to prove it.")
	fmt.Fprintln(out, "Type 'quit' to exit.")
	out.Flush()

	for {
		in.SetPrompt(prompt)
		line, err := in.ReadLine()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}

		switch strings.ToLower(line) {
		case "quit", "exit":
			return nil
		}

		if strings.HasSuffix(strings.TrimSpace(line), ".") {
			ax, err := logikus.ParseAxiom(line)
			if err != nil {
				fmt.Fprintln(out, err.Error())
				out.Flush()
				continue
			}
			prog.Add(ax)
			fmt.Fprintln(out, "ok.")
			out.Flush()
			continue
		}

		runInteractiveQuery(prog, listener, in, out, line)
	}
}

// runInteractiveQuery proves line against prog, printing each solution and,
// for as long as there might be another one, asking the user whether to
// backtrack for it (answered by typing ';').
func runInteractiveQuery(prog *engine.Program, listener logikus.Listener, in repl.LineReader, out *bufio.Writer, line string) {
	q, err := logikus.NewQuery(line, prog, logikus.WithListener(listener))
	if err != nil {
		fmt.Fprintln(out, err.Error())
		out.Flush()
		return
	}

	foundSolution := false
	for {
		bindings, ok := q.Next()
		if !ok {
			break
		}
		foundSolution = true
		fmt.Fprintln(out, formatBindings(bindings))
		out.Flush()

		in.SetPrompt("")
		more, err := in.ReadLine()
		if err != nil || strings.TrimSpace(more) != ";" {
			break
		}
	}
	if !foundSolution {
		fmt.Fprintln(out, "false.")
		out.Flush()
	}
}

// formatBindings renders a solution's variable bindings the way a Prolog
// top level does: "X = 1, Y = foo." or "true." when there are none.
func formatBindings(bindings map[string]logikus.Term) string {
	if len(bindings) == 0 {
		return "true."
	}
	names := make([]string, 0, len(bindings))
	for name := range bindings {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s = %s", name, bindings[name].String()))
	}
	return strings.Join(parts, ", ") + "."
}
