package cmd

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/kamal-hamza/ams-cli/internal/core/domain"
)

func TestPrompter_Ask(t *testing.T) {
	var out strings.Builder
	p := newPrompter(strings.NewReader("  hello  \nlast line"), &out)

	got, err := p.Ask("Greeting")
	if err != nil || got != "hello" {
		t.Errorf("Ask = %q, %v; want trimmed answer", got, err)
	}
	if !strings.Contains(out.String(), "Greeting: ") {
		t.Errorf("label not printed: %q", out.String())
	}

	got, err = p.Ask("Next")
	if err != nil || got != "last line" {
		t.Errorf("final line without newline should be returned, got %q, %v", got, err)
	}

	if _, err := p.Ask("More"); !errors.Is(err, io.EOF) {
		t.Errorf("expected io.EOF after input ends, got %v", err)
	}
}

func TestPrompter_Confirm(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
		warnings int
	}{
		{"y\n", true, 0},
		{"YES\n", true, 0},
		{"n\n", false, 0},
		{"later\n\nN\n", false, 2},
	}

	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.input), func(t *testing.T) {
			var out strings.Builder
			p := newPrompter(strings.NewReader(tt.input), &out)

			got, err := p.Confirm("Sure?")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("Confirm = %v, want %v", got, tt.expected)
			}
			if n := strings.Count(out.String(), "Invalid response"); n != tt.warnings {
				t.Errorf("expected %d warnings, got %d", tt.warnings, n)
			}
		})
	}
}

func TestPrompter_PasswordWithoutTerminal(t *testing.T) {
	p := newPrompter(strings.NewReader("hunter2\n"), io.Discard)

	got, err := p.Password("Password")
	if err != nil || got != "hunter2" {
		t.Errorf("Password = %q, %v", got, err)
	}
}

func TestPrompter_PasswordKeepsSurroundingSpaces(t *testing.T) {
	p := newPrompter(strings.NewReader("  pass word \r\n last "), io.Discard)

	got, err := p.Password("Password")
	if err != nil || got != "  pass word " {
		t.Errorf("Password = %q, %v; want only the line ending removed", got, err)
	}

	got, err = p.Password("Password")
	if err != nil || got != " last " {
		t.Errorf("final secret without newline = %q, %v", got, err)
	}
}

func TestPrompter_AskAsset(t *testing.T) {
	input := "sn-1\nlaptop\nthinkpad\nroom 4\nbob\nblack t14\nblack\nin use\n"
	p := newPrompter(strings.NewReader(input), io.Discard)

	got, err := p.AskAsset()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := domain.AssetInput{
		SerialNumber: "sn-1",
		Category:     "laptop",
		Type:         "thinkpad",
		Location:     "room 4",
		Assignee:     "bob",
		Description:  "black t14",
		Color:        "black",
		Status:       "in use",
	}
	if got != want {
		t.Errorf("AskAsset = %+v, want %+v", got, want)
	}
}

func TestReadNewPassword(t *testing.T) {
	t.Setenv("AMS_PASSWORD", "")

	var out strings.Builder
	p := newPrompter(strings.NewReader("one\ntwo\nsame\nsame\n"), &out)

	got, err := readNewPassword(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "same" {
		t.Errorf("readNewPassword = %q, want %q", got, "same")
	}
	if !strings.Contains(out.String(), "Passwords do not match") {
		t.Error("mismatch should be reported")
	}

	t.Setenv("AMS_PASSWORD", "from-env")
	if got, _ := readNewPassword(p); got != "from-env" {
		t.Errorf("AMS_PASSWORD should win, got %q", got)
	}
}
