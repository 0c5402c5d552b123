package domain

// Status values for a scored (or unresolved) product lookup.
const (
	StatusApproved    = "Approved"
	StatusCaution     = "Caution"
	StatusNotApproved = "Not Approved"
	StatusUnknown     = "Unknown"
)

// Highlight is one matched additive surfaced to the client, including
// green matches.
type Highlight struct {
	Name  string `json:"name"`
	Level string `json:"level"`
	Note  string `json:"note"`
}

// ScoreResult is the outcome of scoring one product against the additive
// knowledge base. Score is always clamped to [0, 100]. Reasons and
// Highlights preserve rule-evaluation order.
type ScoreResult struct {
	Score      int         `json:"score"`
	Status     string      `json:"status"`
	Reasons    []string    `json:"reasons"`
	Highlights []Highlight `json:"highlights"`
}

// LookupResult is the externally visible result of a product lookup.
// Status is StatusUnknown with nil Score/Product when the barcode could not
// be resolved anywhere; that is a normal outcome, not an error.
type LookupResult struct {
	Status  string       `json:"status"`
	Score   *ScoreResult `json:"score,omitempty"`
	Product *Product     `json:"product,omitempty"`
}

// Submission is a persisted user-submitted product correction.
type Submission struct {
	ID          int            `json:"id"`
	SubmittedAt string         `json:"submitted_at"` // RFC 3339 UTC
	Payload     map[string]any `json:"payload"`
}
