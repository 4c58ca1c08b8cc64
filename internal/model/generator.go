package model

// GenerateRequest represents a password generation request.
// Pointer bools allow distinguishing between missing (nil -> default true) and explicit false.
type GenerateRequest struct {
	Length    int   `json:"length"`
	Uppercase *bool `json:"uppercase"`
	Lowercase *bool `json:"lowercase"`
	Numbers   *bool `json:"numbers"`
	Symbols   *bool `json:"symbols"`
}

// CustomGenerateRequest generates from a caller-supplied character pool.
type CustomGenerateRequest struct {
	Length  int    `json:"length"`
	Charset string `json:"charset"`
}

// PronounceableRequest generates an alternating consonant/vowel password.
type PronounceableRequest struct {
	Length         int   `json:"length"`
	IncludeNumbers *bool `json:"include_numbers"`
}

// Batch generation modes.
const (
	ModeStandard      = "standard"
	ModeCustom        = "custom"
	ModePronounceable = "pronounceable"
)

// BatchRequest generates several passwords with one mode's options.
type BatchRequest struct {
	Count          int    `json:"count"`
	Mode           string `json:"mode"`
	Length         int    `json:"length"`
	Uppercase      *bool  `json:"uppercase"`
	Lowercase      *bool  `json:"lowercase"`
	Numbers        *bool  `json:"numbers"`
	Symbols        *bool  `json:"symbols"`
	Charset        string `json:"charset"`
	IncludeNumbers *bool  `json:"include_numbers"`
}

// GenerateResponse represents a password generation response.
type GenerateResponse struct {
	Password string  `json:"password"`
	Length   int     `json:"length"`
	Entropy  float64 `json:"entropy"`
	Strength string  `json:"strength"`
}

// BatchResponse carries the passwords of a batch request.
type BatchResponse struct {
	Passwords []string `json:"passwords"`
	Count     int      `json:"count"`
	Entropy   float64  `json:"entropy"`
	Strength  string   `json:"strength"`
}
