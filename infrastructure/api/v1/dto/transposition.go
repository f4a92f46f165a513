// Package dto holds request and response schemas for the v1 API.
package dto

// TranspositionAttributes represents transposition request attributes in
// JSON:API format. The singer range comes either from singer_low and
// singer_high or from a named voice preset.
type TranspositionAttributes struct {
	SingerLow     string  `json:"singer_low,omitempty"`
	SingerHigh    string  `json:"singer_high,omitempty"`
	Voice         *string `json:"voice,omitempty"`
	SongLow       string  `json:"song_low"`
	SongHigh      string  `json:"song_high"`
	SongKey       string  `json:"song_key"`
	SongMode      string  `json:"song_mode,omitempty"`
	ComfortMargin *int    `json:"comfort_margin,omitempty"`
	PreferFlats   *bool   `json:"prefer_flats,omitempty"`
	Notation      string  `json:"notation,omitempty"`
}

// TranspositionData represents transposition request data in JSON:API format.
type TranspositionData struct {
	Type       string                  `json:"type"`
	Attributes TranspositionAttributes `json:"attributes"`
}

// TranspositionRequest represents a JSON:API transposition request.
type TranspositionRequest struct {
	Data TranspositionData `json:"data"`
}

// AlternativeSchema represents one additional fitting transposition.
type AlternativeSchema struct {
	Shift       int    `json:"shift"`
	Key         string `json:"key"`
	Low         string `json:"low"`
	High        string `json:"high"`
	MarginBelow int    `json:"margin_below"`
	MarginAbove int    `json:"margin_above"`
}

// TranspositionResultAttributes represents the computed suggestion in
// JSON:API format.
type TranspositionResultAttributes struct {
	Shift            int                 `json:"shift"`
	ShiftDescription string              `json:"shift_description"`
	SuggestedKey     string              `json:"suggested_key"`
	LocalizedKey     string              `json:"localized_key"`
	TransposedLow    string              `json:"transposed_low"`
	TransposedHigh   string              `json:"transposed_high"`
	MarginBelow      int                 `json:"margin_below"`
	MarginAbove      int                 `json:"margin_above"`
	Fits             bool                `json:"fits"`
	Alternatives     []AlternativeSchema `json:"alternatives"`
}
