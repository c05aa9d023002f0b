package trmarkup

import (
	"strings"
	"testing"
)

func TestValidateTextRejectsInvalidUTF8(t *testing.T) {
	if err := ValidateText("\xff\xfe\xfd"); err != ErrInvalidUTF8 {
		t.Fatalf("expected ErrInvalidUTF8, got %v", err)
	}
}

func TestValidateTextRejectsBinary(t *testing.T) {
	if err := ValidateText("hello\x00"); err != ErrBinaryInput {
		t.Fatalf("expected ErrBinaryInput, got %v", err)
	}
}

func TestValidateTextRejectsDenseControlBytes(t *testing.T) {
	text := strings.Repeat("abcdefghi\x01", 10)
	if err := ValidateText(text); err != ErrBinaryInput {
		t.Fatalf("expected ErrBinaryInput, got %v", err)
	}
}

func TestValidateTextAcceptsMarkup(t *testing.T) {
	if err := ValidateText("Click [link:x]here[/link]\n\tfor cookies! :)"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSanitizeText(t *testing.T) {
	got := SanitizeText("a\x01b\xffc\n\td\x7f")
	if got != "abc\n\td" {
		t.Fatalf("unexpected sanitized text %q", got)
	}
}
