package detector

import (
	"testing"

	"vykaz/pkg/vykaz/models"
)

func TestInferPattern(t *testing.T) {
	tests := []struct {
		sample   string
		expected models.CodePattern
	}{
		{"231112", models.PatternURS},
		{"27114", models.PatternURS},
		{"  231112  ", models.PatternURS},
		{"821.27.11", models.PatternRTS},
		{"1.2.3", models.PatternRTS},
		{"K12345", models.PatternOTSKP},
		{"SO01", models.PatternOTSKP},
		{"45262300-4", models.PatternCPV},
		{"45000000-7", models.PatternCPV},
		{"1234", models.PatternUnknown},
		{"1234567", models.PatternUnknown},
		{"12.5", models.PatternUnknown},
		{"Beton", models.PatternUnknown},
		{"", models.PatternUnknown},
		{"   ", models.PatternUnknown},
	}

	for _, tt := range tests {
		result := InferPattern(tt.sample)
		if result != tt.expected {
			t.Errorf("InferPattern(%q) = %q, expected %q", tt.sample, result, tt.expected)
		}
	}
}
