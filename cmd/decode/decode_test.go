package decode

import (
	"bytes"
	"strings"
	"testing"
)

func TestRunDecode_Args(t *testing.T) {
	params := &Params{Morse: []string{"...", "---", "..."}}
	var stdin strings.Reader
	var stdout, stderr bytes.Buffer

	if err := Run(params, &stdin, &stdout, &stderr); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if stdout.String() != "SOS\n" {
		t.Errorf("stdout = %q, want %q", stdout.String(), "SOS\n")
	}
	if stderr.Len() != 0 {
		t.Errorf("unexpected stderr: %q", stderr.String())
	}
}

func TestRunDecode_Stdin(t *testing.T) {
	params := &Params{}
	stdin := strings.NewReader(".... ..   - .... . .-. .\n")
	var stdout, stderr bytes.Buffer

	if err := Run(params, stdin, &stdout, &stderr); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if stdout.String() != "HI THERE\n" {
		t.Errorf("stdout = %q, want %q", stdout.String(), "HI THERE\n")
	}
}

func TestRunDecode_MalformedMarkDiagnostics(t *testing.T) {
	params := &Params{}
	stdin := strings.NewReader("..x. ...\n")
	var stdout, stderr bytes.Buffer

	if err := Run(params, stdin, &stdout, &stderr); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	// The bad code decodes to the placeholder, the rest still decodes,
	// and the diagnostic lands on stderr.
	if stdout.String() != "?S\n" {
		t.Errorf("stdout = %q, want %q", stdout.String(), "?S\n")
	}
	if !strings.Contains(stderr.String(), "invalid morse symbol") {
		t.Errorf("stderr = %q, want a malformed-mark diagnostic", stderr.String())
	}
}

func TestRunDecode_Copy(t *testing.T) {
	var captured string
	originalWrite := clipboardWriteAll
	clipboardWriteAll = func(text string) error {
		captured = text
		return nil
	}
	defer func() { clipboardWriteAll = originalWrite }()

	params := &Params{Morse: []string{"... --- ..."}, Copy: true}
	var stdin strings.Reader
	var stdout, stderr bytes.Buffer

	if err := Run(params, &stdin, &stdout, &stderr); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if captured != "SOS" {
		t.Errorf("clipboard = %q, want %q", captured, "SOS")
	}
}
