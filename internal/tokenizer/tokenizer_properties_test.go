package tokenizer_test

import (
	"strings"
	"testing"

	"pgregory.net/rapid"

	"github.com/danhart/clarg/internal/tokenizer"
)

// TestTokenizeRoundTripsThroughReassembledInput exercises the tokenizer
// round-trip invariant: concatenating token texts with single spaces
// and re-tokenizing the result yields the same token sequence.
func TestTokenizeRoundTripsThroughReassembledInput(t *testing.T) {
	vocab := []string{
		"--name", "--help", "-v", "-x", "bob", "build", "extra", "one", "two", "[", "]",
	}

	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(0, 6).Draw(rt, "n")
		words := make([]string, n)

		for i := range words {
			words[i] = rapid.SampledFrom(vocab).Draw(rt, "word")
		}

		input := strings.Join(words, " ")
		first := tokenizer.Tokenize(input, cfg())

		reassembled := make([]string, len(first.Tokens))
		for i, tok := range first.Tokens {
			reassembled[i] = tok.Text
		}

		second := tokenizer.Tokenize(strings.Join(reassembled, " "), cfg())

		if len(first.Tokens) != len(second.Tokens) {
			rt.Fatalf("token count changed on round-trip: %d vs %d (input %q)",
				len(first.Tokens), len(second.Tokens), input)
		}

		for i := range first.Tokens {
			if first.Tokens[i].Kind != second.Tokens[i].Kind {
				rt.Fatalf("token %d kind changed: %v vs %v (input %q)",
					i, first.Tokens[i].Kind, second.Tokens[i].Kind, input)
			}

			if first.Tokens[i].Text != second.Tokens[i].Text {
				rt.Fatalf("token %d text changed: %q vs %q (input %q)",
					i, first.Tokens[i].Text, second.Tokens[i].Text, input)
			}
		}
	})
}
