package utils

import (
	"math/rand"
	"testing"
)

func TestAlnumStrings(t *testing.T) {
	strs := AlnumStrings(rand.New(rand.NewSource(1)), 100, 2)
	if len(strs) != 100 {
		t.Errorf("expected 100 strings, got %d", len(strs))
	}
	seen := make(map[string]bool)
	for _, s := range strs {
		if len(s) != 2 {
			t.Error("wrong length: " + s)
		}
		if seen[s] {
			t.Error("duplicated: " + s)
		}
		seen[s] = true
	}
}

func TestEmptyOrElse(t *testing.T) {
	if EmptyOrElse("", "d") != "d" || EmptyOrElse("v", "d") != "v" {
		t.Error("EmptyOrElse failed")
	}
}
