package score

// Request is the payload for POST /v1/score
type Request struct {
	// Transcript may be empty; an empty transcript yields a floor-score
	// report rather than an error.
	Transcript string `json:"transcript"`
	// DurationMinutes is the spoken duration. Zero means "not provided".
	DurationMinutes float64 `json:"duration_minutes" validate:"nonneg"`
}
