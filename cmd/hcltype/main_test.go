package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	e := execute(args, out, errOut)
	return out.String(), errOut.String(), e
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if e := os.WriteFile(path, []byte(content), 0o644); e != nil {
		t.Fatal(e)
	}
	return path
}

func TestParseCommand(t *testing.T) {
	out, _, e := run(t, "parse", "${string}", "${[map(bool)]}", "${object({})}")
	if e != nil {
		t.Fatalf("unexpected error: %s", e)
	}
	expected := "${string}: string\n${[map(bool)]}: list\n${object({})}: object\n"
	if out != expected {
		t.Errorf("expecting %q, got %q", expected, out)
	}

	out, _, e = run(t, "parse", "${number}", "${strin}")
	if !errors.Is(e, errFailed) {
		t.Fatalf("expecting failure, got %v", e)
	}
	if !strings.Contains(out, "${number}: number\n") || !strings.Contains(out, `${strin}: unexpected type name "strin"`) {
		t.Errorf("unexpected output: %q", out)
	}

	_, _, e = run(t, "parse", "--max-depth", "1", "${[[string]]}")
	if !errors.Is(e, errFailed) {
		t.Errorf("expecting depth failure, got %v", e)
	}

	_, _, e = run(t, "parse")
	if e == nil {
		t.Errorf("expecting argument error")
	}
}

func TestCheckCommand(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.yaml", "name: ${string}\nports: ${[number]}\n")
	bad := writeFile(t, dir, "bad.yaml", "name: ${string}\nports: ${[numbr]}\n")
	broken := writeFile(t, dir, "broken.json", `{"a": 1}`)
	plain := writeFile(t, dir, "attrs.txt", "name = \"${string}\"\n")

	out, _, e := run(t, "check", good)
	if e != nil {
		t.Fatalf("unexpected error: %s", e)
	}
	if out != good+": ok, 2 attributes\n" {
		t.Errorf("unexpected output: %q", out)
	}

	out, _, e = run(t, "check", good, bad, broken)
	if !errors.Is(e, errFailed) {
		t.Fatalf("expecting failure, got %v", e)
	}
	if !strings.Contains(out, bad+":2: ports: unexpected type name \"numbr\"") {
		t.Errorf("missing attribute error: %q", out)
	}
	if !strings.Contains(out, broken+": type of attribute a must be a string") {
		t.Errorf("missing document error: %q", out)
	}

	out, _, e = run(t, "check", "--format", "toml", plain)
	if e != nil || out != plain+": ok, 1 attributes\n" {
		t.Errorf("unexpected result %v: %q", e, out)
	}

	_, errOut, e := run(t, "check", "--format", "xml", plain)
	if e == nil || !strings.Contains(errOut, "unknown document format") {
		t.Errorf("expecting format error, got %v: %q", e, errOut)
	}
}

func TestVerbose(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.yaml", "name: ${string}\n")

	_, errOut, e := run(t, "-v", "check", good)
	if e != nil {
		t.Fatalf("unexpected error: %s", e)
	}
	if !strings.Contains(errOut, "loading document") || !strings.Contains(errOut, "name=name") {
		t.Errorf("missing debug output: %q", errOut)
	}

	_, errOut, _ = run(t, "check", good)
	if errOut != "" {
		t.Errorf("unexpected stderr output: %q", errOut)
	}
}
