package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/tmont/argopt"
)

// CLIArgs is an example contract demonstrating argopt features.
type CLIArgs struct {
	Verbose bool     `opt:"flag" alias:"v" desc:"Enable verbose output"`
	Trace   bool     `opt:"complex" aux:"TraceFile" value:"PATH" desc:"Write a trace, optionally to the given file"`
	Workers int      `alias:"j" value:"N" desc:"Number of parallel workers"`
	Include []string `delim:"," value:"PATTERNS" desc:"Comma-separated include patterns"`
	Token   string   `case:"sensitive" value:"TOKEN" desc:"API token, name matched exactly"`
	Paths   []string `opt:"collect" desc:"Input paths to process"`

	TraceFile string `opt:"exclude"`
}

func main() {
	args := os.Args[1:]

	target, res, err := argopt.New[CLIArgs](args, argopt.Unix)
	if err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	if len(args) == 0 {
		width := 0
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width = w
		}
		usage, err := argopt.Describe(target, "argopt-demo", width, argopt.Unix)
		if err != nil {
			color.New(color.FgRed).Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
		fmt.Println(usage)
		return
	}

	for _, te := range res.Errors {
		color.New(color.FgYellow).Fprintf(os.Stderr, "bad argument %s: %v\n", te.Token, te.Cause)
	}

	fmt.Printf("Parsed Arguments: %+v\n", target)
	fmt.Printf("Leftovers: %v\n", res.Leftover)
}
