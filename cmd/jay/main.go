package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/peterh/liner"

	"jay/pkg/errors"
	"jay/pkg/lexer"
	"jay/pkg/literal"
	"jay/pkg/source"
)

const historyFile = ".jay_history"

func main() {
	exprFlag := flag.String("e", "", "Tokenize the given expression and exit")
	valuesFlag := flag.Bool("values", false, "Evaluate number and regex literals while printing")
	triviaFlag := flag.Bool("no-trivia", false, "Skip comment and hashbang tokens")

	flag.Parse()

	if *exprFlag != "" {
		sf := source.NewEvalSource(*exprFlag)
		if !tokenize(sf, sf.Reader(), *valuesFlag, *triviaFlag) {
			os.Exit(65) // Exit code 65: data format error
		}
		return
	}

	switch flag.NArg() {
	case 0:
		runRepl(*valuesFlag, *triviaFlag)
	case 1:
		if !runFile(flag.Arg(0), *valuesFlag, *triviaFlag) {
			os.Exit(65)
		}
	default:
		fmt.Fprintf(os.Stderr, "Usage: jay [script.js] or jay -e \"expression\"\n")
		os.Exit(64) // Exit code 64: command line usage error
	}
}

// runFile tokenizes a script file, or stdin when path is "-".
func runFile(path string, values, noTrivia bool) bool {
	if path == "-" {
		// Stream stdin through the BOM-aware decoder; no source text is
		// retained, so error display degrades to position-only.
		sf := source.NewStdinSource("")
		return tokenize(sf, source.NewStreamReader(os.Stdin), values, noTrivia)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading file '%s': %v\n", path, err)
		os.Exit(66) // Exit code 66: cannot open input
	}
	sf := source.FromFile(path, string(content))
	return tokenize(sf, sf.Reader(), values, noTrivia)
}

// tokenize pulls tokens until EOF or the first lexical error, printing each.
func tokenize(sf *source.SourceFile, r source.Reader, values, noTrivia bool) bool {
	lx := lexer.New(r)
	for {
		tok, err := lx.NextToken()
		if err != nil {
			if jayErr, ok := err.(errors.JayError); ok {
				errors.DisplayErrors(sf.Content, []errors.JayError{jayErr})
			} else {
				fmt.Fprintln(os.Stderr, err)
			}
			return false
		}
		if noTrivia && (tok.Type == lexer.COMMENT || tok.Type == lexer.HASHBANG) {
			continue
		}
		printToken(tok, values)
		if tok.Type == lexer.EOF {
			return true
		}
	}
}

func printToken(tok lexer.Token, values bool) {
	switch tok.Type {
	case lexer.REGEXP:
		fmt.Printf("%d:%d\t%s\t/%s/%s", tok.Line, tok.Column, tok.Type, tok.Literal, tok.Flags)
		if values {
			if _, err := literal.CompileRegExp(tok.Literal, tok.Flags); err != nil {
				fmt.Printf("\t(%v)", err)
			} else {
				fmt.Printf("\t(ok)")
			}
		}
	case lexer.NUMBER:
		fmt.Printf("%d:%d\t%s\t%s", tok.Line, tok.Column, tok.Type, tok.Literal)
		if values {
			if v, ok := literal.ToBigInt(tok.Literal); ok && tok.Literal[len(tok.Literal)-1] == 'n' {
				fmt.Printf("\t(= %sn)", v.String())
			} else {
				fmt.Printf("\t(= %v)", literal.ToNumber(tok.Literal))
			}
		}
	default:
		fmt.Printf("%d:%d\t%s\t%q", tok.Line, tok.Column, tok.Type, tok.Literal)
	}
	fmt.Println()
}

func runRepl(values, noTrivia bool) {
	fmt.Println("Jay tokenizer REPL. Ctrl+C cancels input, Ctrl+D exits.")

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	for {
		input, err := ln.Prompt("jay> ")
		if err != nil {
			if err == liner.ErrPromptAborted {
				continue
			}
			fmt.Println()
			return
		}
		if input == "" {
			continue
		}
		ln.AppendHistory(input)

		sf := source.NewReplSource(input)
		tokenize(sf, sf.Reader(), values, noTrivia)
	}
}
