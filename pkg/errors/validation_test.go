package errors

import (
	"testing"
)

func TestValidateColumnName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "Group", false},
		{"valid with underscore", "Sample_1", false},
		{"valid with space", "sample id", false},

		{"empty", "", true},
		{"too long", string(make([]byte, 300)), true},
		{"tab", "foo\tbar", true},
		{"newline", "foo\nbar", true},
		{"null byte", "foo\x00bar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateColumnName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateColumnName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePrefix(t *testing.T) {
	if err := ValidatePrefix("Sample"); err != nil {
		t.Errorf("ValidatePrefix(Sample) = %v, want nil", err)
	}
	err := ValidatePrefix("")
	if !Is(err, ErrCodeSchema) {
		t.Errorf("ValidatePrefix(\"\") = %v, want SCHEMA_ERROR", err)
	}
}

func TestValidateOutputPath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"relative file", "wide_facets_plot.png", false},
		{"absolute file", "/tmp/out/plot.png", false},
		{"nested", "out/plots/plot.png", false},

		{"empty", "", true},
		{"too long", string(make([]byte, 600)), true},
		{"directory", "out/", true},
		{"control char", "plot\x01.png", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputPath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputPath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateDPI(t *testing.T) {
	tests := []struct {
		dpi     int
		wantErr bool
	}{
		{72, false},
		{300, false},
		{1200, false},
		{0, true},
		{9, true},
		{5000, true},
	}

	for _, tt := range tests {
		if err := ValidateDPI(tt.dpi); (err != nil) != tt.wantErr {
			t.Errorf("ValidateDPI(%d) error = %v, wantErr %v", tt.dpi, err, tt.wantErr)
		}
	}
}

func TestValidateDimension(t *testing.T) {
	if err := ValidateDimension("width", 10); err != nil {
		t.Errorf("ValidateDimension(10) = %v", err)
	}
	for _, bad := range []float64{0, -1, 101} {
		if err := ValidateDimension("width", bad); err == nil {
			t.Errorf("ValidateDimension(%v) = nil, want error", bad)
		}
	}
}
