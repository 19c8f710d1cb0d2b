// Package main provides the seyuna CLI for compiling design tokens into CSS.
package main

import (
	"fmt"
	"os"

	"github.com/seyuna/seyuna"
	"github.com/seyuna/seyuna/internal/term"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		useColors := term.ShouldUseColors(os.Stderr, getBoolWithFallback("color", "color", false))
		fmt.Fprintln(os.Stderr, term.ErrorText(err, useColors))
		if seyuna.IsConfigError(err) {
			fmt.Fprintln(os.Stderr, term.RenderStyle(term.StyleGray, "Run `seyuna config init` to create a default seyuna.json.", useColors))
		}
		os.Exit(1)
	}
}
