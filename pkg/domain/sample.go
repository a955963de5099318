package domain

import "time"

// Sample is the record of one generation.
// Weight holds the exact rational probability in "n/d" form.
type Sample struct {
	ID        string    `json:"id"`
	Model     string    `json:"model"`
	Seed      int64     `json:"seed"`
	Symbols   []Symbol  `json:"symbols"`
	Text      string    `json:"text"`
	Weight    string    `json:"weight"`
	Steps     int       `json:"steps"`
	CreatedAt time.Time `json:"created_at"`
}
