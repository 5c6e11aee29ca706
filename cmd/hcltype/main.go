/*
hcltype is a console utility checking HCL2 type expressions.
Usage is

	hcltype check [--format <name>] [--max-depth <n>] <file>...
	hcltype parse [--max-depth <n>] <type>...

check loads attribute documents (YAML, JSON, or TOML mappings of attribute names to type expressions)
and reports every attribute that fails to parse;

parse parses type expressions given as arguments and prints their kinds;

--max-depth <n> limits type nesting, 0 means no limit;

--format <name> is one of auto, yaml, json, or toml, default is auto (detect by file extension);

-v (--verbose) flag enables debug output to stderr.

Exit status is 1 if any document or type expression is invalid.
*/
package main

import (
	"os"
)

func main() {
	if e := execute(os.Args[1:], os.Stdout, os.Stderr); e != nil {
		os.Exit(1)
	}
}
