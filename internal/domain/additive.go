package domain

// Additive risk levels used in the knowledge base.
const (
	LevelRed   = "red"   // avoid
	LevelAmber = "amber" // caution
	LevelGreen = "green" // safe
)

// AdditiveRecord is one entry in the additive knowledge base.
type AdditiveRecord struct {
	Name    string   `json:"name"`
	Aliases []string `json:"aliases,omitempty"`
	Level   string   `json:"level"`
	// Severity is the score penalty magnitude. Zero means not provided,
	// in which case the level default applies (red 10, amber 5).
	Severity int    `json:"severity,omitempty"`
	Short    string `json:"short,omitempty"`
}
