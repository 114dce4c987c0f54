package models

// Video is a learning video in the catalog
type Video struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Subject     Subject `json:"subject"`
	Duration    string  `json:"duration"`
	Difficulty  string  `json:"difficulty"`
	Icon        string  `json:"icon"`
	Description string  `json:"description"`
	VideoURL    string  `json:"videoUrl"`
}

// Question is a single multiple-choice quiz question. Correct is the
// index into Options.
type Question struct {
	Text        string   `json:"question"`
	Options     []string `json:"options"`
	Correct     int      `json:"correct"`
	Explanation string   `json:"explanation"`
}

// Game is a quiz game in the catalog
type Game struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	Subject    Subject    `json:"subject"`
	Difficulty string     `json:"difficulty"`
	Icon       string     `json:"icon"`
	Questions  []Question `json:"questions"`
}
