package detector

import (
	"regexp"
	"strings"

	"vykaz/pkg/vykaz/models"
)

// codePatterns lists the known code conventions in test order. The
// conventions are mutually exclusive; the first match wins.
var codePatterns = []struct {
	pattern models.CodePattern
	re      *regexp.Regexp
}{
	{models.PatternURS, regexp.MustCompile(`^\d{5,6}$`)},
	{models.PatternRTS, regexp.MustCompile(`^\d+\.\d+\.\d+$`)},
	{models.PatternOTSKP, regexp.MustCompile(`^[A-Za-z]+\d+$`)},
	{models.PatternCPV, regexp.MustCompile(`^\d+(-\d+)+$`)},
}

// InferPattern classifies a code sample against the known conventions.
// Returns PatternUnknown for blank samples and unrecognized shapes.
func InferPattern(sample string) models.CodePattern {
	s := strings.TrimSpace(sample)
	if s == "" {
		return models.PatternUnknown
	}
	for _, cp := range codePatterns {
		if cp.re.MatchString(s) {
			return cp.pattern
		}
	}
	return models.PatternUnknown
}
