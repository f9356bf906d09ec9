package crypto

import (
	"errors"
	"strings"
	"testing"
)

func TestGeneratePassword(t *testing.T) {
	tests := []struct {
		name    string
		opts    GeneratorOptions
		wantErr error
	}{
		{name: "default options", opts: DefaultGeneratorOptions()},
		{name: "uppercase only", opts: GeneratorOptions{Length: 16, Uppercase: true}},
		{name: "lowercase only", opts: GeneratorOptions{Length: 16, Lowercase: true}},
		{name: "numbers only", opts: GeneratorOptions{Length: 16, Numbers: true}},
		{name: "symbols only", opts: GeneratorOptions{Length: 16, Symbols: true}},
		{name: "minimum length", opts: GeneratorOptions{Length: GeneratedMinLength, Uppercase: true}},
		{name: "maximum length", opts: GeneratorOptions{Length: GeneratedMaxLength, Lowercase: true}},
		{
			name:    "length too short",
			opts:    GeneratorOptions{Length: 4, Uppercase: true},
			wantErr: ErrLengthTooShort,
		},
		{
			name:    "length too long",
			opts:    GeneratorOptions{Length: 200, Uppercase: true},
			wantErr: ErrLengthTooLong,
		},
		{
			name:    "no character types",
			opts:    GeneratorOptions{Length: 16},
			wantErr: ErrNoCharacterTypes,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			password, err := GeneratePassword(tt.opts)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("GeneratePassword() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				return
			}
			if len(password) != tt.opts.Length {
				t.Errorf("GeneratePassword() length = %d, want %d", len(password), tt.opts.Length)
			}
		})
	}
}

func TestGeneratePasswordCoversSelectedSets(t *testing.T) {
	opts := DefaultGeneratorOptions()

	for i := 0; i < 20; i++ {
		password, err := GeneratePassword(opts)
		if err != nil {
			t.Fatalf("GeneratePassword() unexpected error: %v", err)
		}

		if !strings.ContainsAny(password, "ABCDEFGHIJKLMNOPQRSTUVWXYZ") {
			t.Errorf("password %q missing uppercase", password)
		}
		if !strings.ContainsAny(password, "abcdefghijklmnopqrstuvwxyz") {
			t.Errorf("password %q missing lowercase", password)
		}
		if !strings.ContainsAny(password, "0123456789") {
			t.Errorf("password %q missing number", password)
		}
		if !strings.ContainsAny(password, "!@#$%^&*()_+-=[]{}|;:,.<>?") {
			t.Errorf("password %q missing symbol", password)
		}
	}
}

func TestGeneratePasswordUnique(t *testing.T) {
	first, err := GeneratePassword(DefaultGeneratorOptions())
	if err != nil {
		t.Fatalf("GeneratePassword() unexpected error: %v", err)
	}
	second, err := GeneratePassword(DefaultGeneratorOptions())
	if err != nil {
		t.Fatalf("GeneratePassword() unexpected error: %v", err)
	}

	if first == second {
		t.Error("GeneratePassword() produced identical passwords")
	}
}
