/*
 * textscan tokens Command
 *
 * Reads a file (or stdin when no file is given) and scans it into a token
 * stream with the primitives from go/scan: quoted strings, bracketed spans,
 * numbers, words and symbols.
 */

package command

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/textscan/textscan/go/scan"
	"github.com/textscan/textscan/go/scanerr"
)

// TokenType names the lexical class of a token.
type TokenType string

const (
	TokenWord     TokenType = "word"
	TokenNumber   TokenType = "number"
	TokenString   TokenType = "string"
	TokenBrackets TokenType = "brackets"
	TokenSymbol   TokenType = "symbol"
)

// Token is one extracted lexical token. Value is set for number tokens only.
type Token struct {
	Type  TokenType `yaml:"type"`
	Text  string    `yaml:"text"`
	Value float64   `yaml:"value,omitempty"`
}

func newTokensCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "tokens [file]",
		Short: "Scan input into a token stream",
		Long: `Scan a file, or stdin when no file is given, into a stream of lexical
tokens: quoted strings, bracketed spans, numbers, words and symbols.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var input []byte
			var err error
			if len(args) == 1 {
				input, err = afero.ReadFile(fs, args[0])
				if err != nil {
					return fmt.Errorf("failed to read %s: %w", args[0], err)
				}
			} else {
				input, err = io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("failed to read stdin: %w", err)
				}
			}

			tokens, err := scanTokens(string(input))
			if err != nil {
				return fmt.Errorf("failed to scan input: %w", err)
			}
			return writeTokens(cmd.OutOrStdout(), tokens, v.GetString("format"))
		},
	}
}

// scanTokens runs the primitives over input until it is exhausted. Spans
// that open like a string or bracket pair but never close fall back to
// being scanned as a plain symbol.
func scanTokens(input string) ([]Token, error) {
	sc := scan.NewString(input)
	src := sc.Source()
	var tokens []Token
	for {
		if err := sc.ConsumeWhitespace(); err != nil {
			return nil, err
		}
		c, ok, err := src.Peek()
		if err != nil {
			return nil, err
		}
		if !ok {
			return tokens, nil
		}

		switch {
		case c.R == '\'' || c.R == '"':
			if s, err := sc.ParseString(); err == nil {
				tokens = append(tokens, Token{Type: TokenString, Text: s})
				continue
			}
		case c.R == '(' || c.R == '[' || c.R == '{' || c.R == '<':
			if s, err := sc.ParseBrackets(); err == nil {
				tokens = append(tokens, Token{Type: TokenBrackets, Text: s})
				continue
			}
		case startsNumber(src, c.R):
			if v, err := scan.ParseNum(sc, scan.Float64); err == nil {
				tokens = append(tokens, Token{
					Type:  TokenNumber,
					Text:  scan.Float64.Format(v),
					Value: v,
				})
				continue
			}
		}

		if word, err := sc.ParseWord(); err == nil && word != "" {
			tokens = append(tokens, Token{Type: TokenWord, Text: word})
			continue
		}
		sym, err := sc.ParseSymbol()
		if err != nil {
			slog.Warn("token scan stopped early", "error", err)
			return nil, scanerr.Context(err, "could not scan tokens")
		}
		tokens = append(tokens, Token{Type: TokenSymbol, Text: string(sym)})
	}
}

// startsNumber reports whether r opens a numeric literal at the current
// position: a digit, or a sign directly followed by a digit. The sign case
// needs one character of lookahead, which is rolled back before returning.
func startsNumber(src scan.Source, r rune) bool {
	if r >= '0' && r <= '9' {
		return true
	}
	if r != '+' && r != '-' {
		return false
	}
	if _, _, err := src.Next(); err != nil {
		src.ResetPointer()
		return false
	}
	c, ok, err := src.Peek()
	src.ResetPointer()
	return err == nil && ok && c.R >= '0' && c.R <= '9'
}

// writeTokens renders the token stream in the requested format.
func writeTokens(w io.Writer, tokens []Token, format string) error {
	switch format {
	case "yaml":
		data, err := yaml.Marshal(tokens)
		if err != nil {
			return fmt.Errorf("failed to marshal tokens to YAML: %w", err)
		}
		_, err = w.Write(data)
		return err
	case "text":
		for _, tok := range tokens {
			if _, err := fmt.Fprintf(w, "%-9s %s\n", tok.Type, tok.Text); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown output format %q (want text or yaml)", format)
	}
}
