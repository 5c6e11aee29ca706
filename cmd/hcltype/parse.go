package main

import (
	"github.com/spf13/cobra"
)

func newParseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <type>...",
		Short: "Parses type expressions",
		Long:  `Parses type expressions and prints their kinds, e.g. "${[string]}: list".`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := a.parser()
			failed := false
			for _, text := range args {
				t, e := p.Parse(text)
				if e != nil {
					a.log.Debug("parse failed", "type", text, "error", e)
					a.printf("%s: %s\n", text, e)
					failed = true
					continue
				}

				a.printf("%s: %s\n", text, t.Kind())
			}
			if failed {
				return errFailed
			}
			return nil
		},
	}
}
