package utils

import (
	"testing"

	"github.com/google/uuid"
)

func TestRequestIDGenerator_Generate(t *testing.T) {
	g := NewRequestIDGenerator()

	a := g.Generate()
	b := g.Generate()

	if a == b {
		t.Fatal("expected distinct request ids")
	}
	if _, err := uuid.Parse(a); err != nil {
		t.Fatalf("expected a valid UUID, got %q: %v", a, err)
	}
}
