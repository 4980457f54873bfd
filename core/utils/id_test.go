package utils

import (
	"strings"
	"testing"
)

func TestGenerateRandomString(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		token := GenerateRandomString(32)
		if len(token) != 32 {
			t.Fatalf("expected length 32, got %d", len(token))
		}
		for _, r := range token {
			if !strings.ContainsRune(idAlphabet, r) {
				t.Fatalf("token %q contains %q outside the alphabet", token, r)
			}
		}
		if seen[token] {
			t.Fatalf("token %q repeated", token)
		}
		seen[token] = true
	}
}
