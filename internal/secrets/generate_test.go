package secrets

import (
	"os"
	"strings"
	"testing"
)

func TestGenerateRandomSecret_Length(t *testing.T) {
	tests := []struct {
		bytes       int
		wantEncoded int
	}{
		{16, 22},
		{32, 43},
		{48, 64},
		{1, 2},
	}

	for _, tt := range tests {
		value, err := GenerateRandomSecret(tt.bytes)
		if err != nil {
			t.Fatalf("GenerateRandomSecret(%d) failed: %v", tt.bytes, err)
		}

		if len(value) != tt.wantEncoded {
			t.Errorf("GenerateRandomSecret(%d) length = %d, want %d", tt.bytes, len(value), tt.wantEncoded)
		}
		if EncodedLength(tt.bytes) != tt.wantEncoded {
			t.Errorf("EncodedLength(%d) = %d, want %d", tt.bytes, EncodedLength(tt.bytes), tt.wantEncoded)
		}
	}
}

func TestGenerateRandomSecret_URLSafeCharset(t *testing.T) {
	const urlSafe = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"

	value, err := GenerateRandomSecret(64)
	if err != nil {
		t.Fatalf("GenerateRandomSecret failed: %v", err)
	}

	for _, r := range value {
		if !strings.ContainsRune(urlSafe, r) {
			t.Errorf("Generated secret contains non-URL-safe character %q in %q", r, value)
		}
	}

	// Unpadded encoding must never emit '='.
	if strings.Contains(value, "=") {
		t.Errorf("Generated secret contains padding: %q", value)
	}
}

func TestGenerateRandomSecret_Unique(t *testing.T) {
	first, err := GenerateRandomSecret(32)
	if err != nil {
		t.Fatalf("First generation failed: %v", err)
	}
	second, err := GenerateRandomSecret(32)
	if err != nil {
		t.Fatalf("Second generation failed: %v", err)
	}

	if first == second {
		t.Errorf("Two generated secrets are identical: %q", first)
	}
}

func TestReadSecretValue_PipedInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"PlainLine", "hunter2\n", "hunter2"},
		{"CRLFLine", "hunter2\r\n", "hunter2"},
		{"NoTrailingNewline", "hunter2", "hunter2"},
		{"EmptyInput", "", ""},
		{"LeadingWhitespacePreserved", "  spaced \n", "  spaced "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := readWithStdin(t, tt.input)
			if got != tt.want {
				t.Errorf("ReadSecretValue with piped %q = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// readWithStdin swaps os.Stdin for a pipe carrying input and runs
// ReadSecretValue against it.
func readWithStdin(t *testing.T, input string) string {
	t.Helper()

	reader, writer, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}

	originalStdin := os.Stdin
	os.Stdin = reader
	t.Cleanup(func() {
		os.Stdin = originalStdin
		reader.Close()
	})

	go func() {
		defer writer.Close()
		_, _ = writer.WriteString(input)
	}()

	value, err := ReadSecretValue("Secret Value: ")
	if err != nil {
		t.Fatalf("ReadSecretValue failed: %v", err)
	}
	return value
}
