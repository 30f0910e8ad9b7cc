package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/kievzenit/ylang/internal/compiler_errors"
	l "github.com/kievzenit/ylang/internal/lexer"
	"github.com/sanity-io/litter"
)

var cli struct {
	File       string `arg:"" help:"Source file to lex."`
	Dump       bool   `help:"Dump the full []Lexeme slice with litter instead of printing kinds."`
	TokensOnly bool   `help:"Print only the token-kind stream, one per line." name:"tokens-only"`
}

func main() {
	kong.Parse(&cli, kong.Description("Runs the ylang lexer core over a source file."))

	fileData, err := os.ReadFile(cli.File)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	eh := compiler_errors.NewErrorHandler(os.Stderr)

	lexer := l.NewLexer(fileData)
	lexemes := lexer.AllLexemes()

	for _, lx := range lexemes {
		if lx.Error != nil {
			eh.AddError(lx.Error)
		}
	}

	if eh.HasErrors() {
		eh.Report()
	}

	switch {
	case cli.Dump:
		litter.Dump(lexemes)
	case cli.TokensOnly:
		for _, lx := range lexemes {
			fmt.Println(lx.Kind.String())
		}
	default:
		for _, lx := range lexemes {
			fmt.Println(lx.WithText(fileData))
		}
	}
}
