package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ava12/hcltype/attrs"
)

func newCheckCmd(a *app) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "check <file>...",
		Short: "Checks attribute documents",
		Long: `Loads attribute documents and parses every type expression.
Each failed attribute is reported as "file:line: name: error".`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, e := attrs.ParseFormat(format)
			if e != nil {
				return e
			}

			failed := false
			for _, path := range args {
				if !a.checkFile(path, f) {
					failed = true
				}
			}
			if failed {
				return errFailed
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", attrs.FormatAuto.String(), "document format: auto, yaml, json, or toml")
	return cmd
}

func (a *app) loadDocument(path string, f attrs.Format) (*attrs.Document, error) {
	if f == attrs.FormatAuto {
		return attrs.Load(path, a.parser())
	}

	data, e := os.ReadFile(path)
	if e != nil {
		return nil, e
	}
	entries, e := attrs.Decode(path, data, f)
	if e != nil {
		return nil, e
	}
	return attrs.NewDocument(path, entries, a.parser()), nil
}

func (a *app) checkFile(path string, f attrs.Format) bool {
	a.log.Debug("loading document", "path", path, "format", f.String())
	d, e := a.loadDocument(path, f)
	if e != nil {
		a.printf("%s: %s\n", path, e)
		return false
	}

	for _, at := range d.Attributes {
		a.log.Debug("attribute parsed", "path", path, "name", at.Name, "kind", at.Type.Kind().String())
	}
	for _, ae := range d.Errors {
		if ae.Line > 0 {
			a.printf("%s:%d: %s\n", path, ae.Line, ae)
		} else {
			a.printf("%s: %s\n", path, ae)
		}
	}

	if d.HasErrors() {
		a.log.Debug("document failed", "path", path, "errors", len(d.Errors))
		return false
	}

	a.printf("%s: ok, %d attributes\n", path, len(d.Attributes))
	return true
}
