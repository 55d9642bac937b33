package models

// CodePattern classifies the structural convention of line-item codes.
type CodePattern string

const (
	// PatternURS is a pure-digit code of 5-6 characters.
	PatternURS CodePattern = "urs"
	// PatternRTS is a dotted triplet code (e.g. "821.27.11").
	PatternRTS CodePattern = "rts"
	// PatternOTSKP is a letter-prefixed numeric code (e.g. "K12345").
	PatternOTSKP CodePattern = "otskp"
	// PatternCPV is a dash-separated numeric code (e.g. "45262300-4").
	PatternCPV CodePattern = "cpv"
	// PatternUnknown means no convention matched.
	PatternUnknown CodePattern = "unknown"
)

// Confidence is the coarse trust bucket of a detection result.
type Confidence string

const (
	// ConfidenceHigh means score >= 75.
	ConfidenceHigh Confidence = "high"
	// ConfidenceMedium means score >= 50.
	ConfidenceMedium Confidence = "medium"
	// ConfidenceLow means score < 50.
	ConfidenceLow Confidence = "low"
)

// DetectionResult is the outcome of scoring one template against a sheet.
// Created once per detection call, immutable afterwards.
type DetectionResult struct {
	// Template is the catalog entry this result scores.
	Template ImportTemplate `json:"template"`
	// Score is the match score, clamped to [0,100].
	Score int `json:"score"`
	// Confidence buckets the score (>=75 high, >=50 medium, else low).
	Confidence Confidence `json:"confidence"`
	// Columns maps resolved logical fields to 1-based column indexes.
	// Partial; unresolved fields are absent.
	Columns map[Field]int `json:"columns"`
	// FirstDataRow is the detected 1-based first data row (2 when no
	// header row was found).
	FirstDataRow int `json:"first_data_row"`
	// Pattern is the code convention inferred from the first data sample.
	Pattern CodePattern `json:"pattern"`
	// Reasons lists human-readable scoring explanations in order.
	Reasons []string `json:"reasons"`
}
