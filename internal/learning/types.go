package learning

import "time"

// Fields the assistant suggests and the user may override.
const (
	FieldPriority  = "priority"
	FieldCategory  = "category"
	FieldDuration  = "duration"
	FieldTimeOfDay = "time_of_day"
)

// CorrectionRecord is one user override of an AI suggestion. Never mutated.
type CorrectionRecord struct {
	ID                 string    `json:"id"`
	Field              string    `json:"field"`
	OriginalSuggestion string    `json:"original_suggestion"`
	UserChoice         string    `json:"user_choice"`
	Keywords           []string  `json:"keywords"`
	Timestamp          time.Time `json:"timestamp"`
}

func (r CorrectionRecord) Time() time.Time { return r.Timestamp }

// DurationAccuracyRecord compares an AI estimate with the actual duration.
type DurationAccuracyRecord struct {
	ID               string    `json:"id"`
	Category         string    `json:"category"`
	EstimatedMinutes int       `json:"estimated_minutes"`
	ActualMinutes    int       `json:"actual_minutes"`
	Ratio            float64   `json:"ratio"`
	Timestamp        time.Time `json:"timestamp"`
}

func (r DurationAccuracyRecord) Time() time.Time { return r.Timestamp }

// ImpressionRecord marks one suggestion shown to the user.
type ImpressionRecord struct {
	Timestamp time.Time `json:"timestamp"`
}

func (r ImpressionRecord) Time() time.Time { return r.Timestamp }

// Config bounds the stored history.
type Config struct {
	CorrectionCapacity int
	AccuracyCapacity   int
	ImpressionCapacity int
	MaxAge             time.Duration
}

// DefaultConfig returns the standard bounds.
func DefaultConfig() Config {
	return Config{
		CorrectionCapacity: 100,
		AccuracyCapacity:   100,
		ImpressionCapacity: 200,
		MaxAge:             90 * 24 * time.Hour,
	}
}

// Stats counts retained records.
type Stats struct {
	Corrections      int `json:"corrections"`
	DurationAccuracy int `json:"duration_accuracy"`
	Impressions      int `json:"impressions"`
}
