package main

import (
	"basic/eval"
	"basic/parser"
	"basic/trace"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"
	"os/signal"
	"strings"

	"github.com/goforj/godump"
	"golang.org/x/term"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("basic: ")

	maxSteps := flag.Int("max-steps", 0, "Stop after this many statements (0 = unlimited)")
	seed := flag.Uint64("seed", 0, "Seed for RANDOM() (0 = unseeded)")

	// Trace flags
	traceEnabled := flag.Bool("trace", false, "Trace executed statements to stderr")
	traceFilter := flag.String("trace-filter", "", "Trace filter pattern (glob over statement kinds, e.g., 'GOSUB,RET*')")

	// Inspection flags
	showTokens := flag.Bool("tokens", false, "Print the token stream and exit")
	showAST := flag.Bool("ast", false, "Print the parsed program and exit")
	dumpAST := flag.Bool("dump", false, "Dump the parsed program structure and exit")
	showVars := flag.Bool("vars", false, "Print all variables after the run")

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: basic [flags] program.bas\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	path := flag.Arg(0)
	source, err := readProgram(path)
	if err != nil {
		log.Fatalf("Failed to read program: %v", err)
	}

	tokens, err := parser.NewLexer(source).Lex()
	if err != nil {
		log.Fatalf("%s:%v", path, err)
	}
	if *showTokens {
		fmt.Println(parser.RenderTokens(tokens))
		return
	}

	prog, err := parser.NewParser(tokens).ParseProgram()
	if err != nil {
		log.Fatalf("%s:%v", path, err)
	}
	if *showAST {
		for _, line := range parser.UnparseProgram(prog.Statements) {
			fmt.Println(line)
		}
		return
	}
	if *dumpAST {
		godump.Dump(prog)
		return
	}

	prepared, err := eval.Prepare(prog)
	if err != nil {
		log.Fatalf("%s:%v", path, err)
	}

	if *traceEnabled {
		var filters []string
		if *traceFilter != "" {
			filters = strings.Split(*traceFilter, ",")
			for i := range filters {
				filters[i] = strings.TrimSpace(filters[i])
			}
		}
		trace.Init(true, filters, os.Stderr)
	} else {
		trace.Init(false, nil, nil)
	}

	opts := eval.Options{MaxSteps: *maxSteps}
	if *seed != 0 {
		opts.Rand = rand.New(rand.NewPCG(*seed, *seed))
	}

	os.Exit(execute(path, prepared, opts, *showVars))
}

// execute runs the prepared program against the process's stdio and
// returns the exit status
func execute(path string, prepared *eval.Prepared, opts eval.Options, showVars bool) int {
	var input eval.LineSource
	switch {
	case path == "-":
		// Program text consumed stdin; INPUT fails with E_INPUT
	case term.IsTerminal(int(os.Stdin.Fd())):
		console := newConsoleSource()
		defer console.Close()
		input = console
	default:
		input = eval.NewReaderSource(os.Stdin)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	interp := eval.NewInterpreter(prepared, os.Stdout, input, opts)
	err := interp.Run(ctx)

	if showVars {
		printVars(os.Stderr, interp.Env())
	}
	if err == nil {
		return 0
	}

	var re *eval.RuntimeError
	if !errors.As(err, &re) {
		log.Printf("%v", err)
		return 1
	}
	for i, line := range eval.FormatTraceback(re) {
		if i == 0 {
			line = path + ":" + line
		}
		fmt.Fprintln(os.Stderr, line)
	}
	return 1
}

// readProgram reads the program from path, or stdin for "-"
func readProgram(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		return string(data), err
	}
	data, err := os.ReadFile(path)
	return string(data), err
}

// printVars writes every variable as "name = value", in name order
func printVars(w io.Writer, env *eval.Environment) {
	for _, name := range env.Names() {
		v, _ := env.Get(name)
		fmt.Fprintf(w, "%s = %s\n", name, v)
	}
}
