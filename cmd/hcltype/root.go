package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ava12/hcltype/parser"
)

var errFailed = errors.New("validation failed")

type app struct {
	out, errOut io.Writer
	log         *slog.Logger
	verbose     bool
	maxDepth    int
}

func (a *app) parser() *parser.Parser {
	return parser.New(parser.WithMaxDepth(a.maxDepth))
}

func (a *app) printf(format string, params ...any) {
	fmt.Fprintf(a.out, format, params...)
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut, log: slog.New(slog.NewTextHandler(io.Discard, nil))}
	root := &cobra.Command{
		Use:   "hcltype",
		Short: "Checks HCL2 type expressions",
		Long: `hcltype checks HCL2 type expressions like

  ${object({'name':'${string}','ports':'${[number]}'})}

either given as arguments or stored in attribute documents.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if a.verbose {
				level = slog.LevelDebug
			}
			a.log = slog.New(slog.NewTextHandler(a.errOut, &slog.HandlerOptions{Level: level}))
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug output to stderr")
	root.PersistentFlags().IntVar(&a.maxDepth, "max-depth", parser.DefaultMaxDepth, "type nesting limit, 0 means no limit")
	root.AddCommand(newCheckCmd(a), newParseCmd(a))
	return root
}

func execute(args []string, out, errOut io.Writer) error {
	root := newRootCmd(out, errOut)
	root.SetArgs(args)
	e := root.Execute()
	if e != nil && !errors.Is(e, errFailed) {
		fmt.Fprintln(errOut, "error:", e)
	}
	return e
}
