// Package main provides x12, a tool for inspecting and editing X12 EDI documents.
package main

import (
	"os"
	"strings"

	"github.com/865charlesw/x12tools/internal/cli"
)

func main() {
	environ := os.Environ()
	env := make(map[string]string, len(environ))

	for _, e := range environ {
		if k, v, ok := strings.Cut(e, "="); ok {
			env[k] = v
		}
	}

	exitCode := cli.Run(os.Stdin, os.Stdout, os.Stderr, os.Args, env)

	os.Exit(exitCode)
}
