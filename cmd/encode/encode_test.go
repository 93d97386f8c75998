package encode

import (
	"bytes"
	"strings"
	"testing"
)

func TestRunEncode_Args(t *testing.T) {
	params := &Params{Text: []string{"HI", "THERE"}}
	var stdin strings.Reader
	var stdout bytes.Buffer

	if err := Run(params, &stdin, &stdout); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	expected := ".... ..   - .... . .-. .\n"
	if stdout.String() != expected {
		t.Errorf("stdout = %q, want %q", stdout.String(), expected)
	}
}

func TestRunEncode_Stdin(t *testing.T) {
	params := &Params{}
	stdin := strings.NewReader("sos\nhi\n")
	var stdout bytes.Buffer

	if err := Run(params, stdin, &stdout); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	expected := "... --- ...\n.... ..\n"
	if stdout.String() != expected {
		t.Errorf("stdout = %q, want %q", stdout.String(), expected)
	}
}

func TestRunEncode_Copy(t *testing.T) {
	var captured string
	originalWrite := clipboardWriteAll
	clipboardWriteAll = func(text string) error {
		captured = text
		return nil
	}
	defer func() { clipboardWriteAll = originalWrite }()

	params := &Params{Text: []string{"SOS"}, Copy: true}
	var stdin strings.Reader
	var stdout bytes.Buffer

	if err := Run(params, &stdin, &stdout); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if captured != "... --- ..." {
		t.Errorf("clipboard = %q, want %q", captured, "... --- ...")
	}
}
