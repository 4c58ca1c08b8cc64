package model

// AnalyzeRequest carries the password to evaluate. It is never stored.
type AnalyzeRequest struct {
	Password string `json:"password"`
}

// AnalyzeResponse is the strength report returned to API clients.
type AnalyzeResponse struct {
	Length       int      `json:"length"`
	HasUppercase bool     `json:"has_uppercase"`
	HasLowercase bool     `json:"has_lowercase"`
	HasNumbers   bool     `json:"has_numbers"`
	HasSymbols   bool     `json:"has_symbols"`
	Entropy      float64  `json:"entropy"`
	Strength     string   `json:"strength"`
	Diversity    float64  `json:"diversity"`
	Suggestions  []string `json:"suggestions"`
}
