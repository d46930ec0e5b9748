package proc

import (
	"strings"
	"testing"
)

func TestOutputCapture_Consume(t *testing.T) {
	c := NewOutputCapture(0)

	input := "first\nsecond\nthird\n"
	if err := c.Consume(strings.NewReader(input)); err != nil {
		t.Fatalf("Consume() failed: %v", err)
	}

	lines := c.Lines()
	expected := []string{"first", "second", "third"}
	if len(lines) != len(expected) {
		t.Fatalf("expected %d lines, got %d", len(expected), len(lines))
	}
	for i, want := range expected {
		if lines[i] != want {
			t.Errorf("line %d = %q, expected %q", i, lines[i], want)
		}
	}
}

func TestOutputCapture_ConsumeAsync(t *testing.T) {
	c := NewOutputCapture(0)

	done := c.ConsumeAsync(strings.NewReader("a\nb\n"))
	if err, ok := <-done; ok && err != nil {
		t.Fatalf("ConsumeAsync() failed: %v", err)
	}

	if got := len(c.Lines()); got != 2 {
		t.Errorf("expected 2 lines, got %d", got)
	}
}

func TestOutputCapture_TokenTooLong(t *testing.T) {
	c := NewOutputCapture(8)

	err := c.Consume(strings.NewReader("this line is longer than eight bytes\n"))
	if err == nil {
		t.Error("expected scanner error for oversized line")
	}
}

func TestOutputCapture_LinesCopy(t *testing.T) {
	c := NewOutputCapture(0)
	if err := c.Consume(strings.NewReader("x\n")); err != nil {
		t.Fatalf("Consume() failed: %v", err)
	}

	lines := c.Lines()
	lines[0] = "mutated"

	if c.Lines()[0] != "x" {
		t.Error("Lines() must return a copy")
	}
}
