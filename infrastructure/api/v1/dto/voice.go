package dto

// VoiceAttributes represents a voice-type preset in JSON:API format.
type VoiceAttributes struct {
	Name string `json:"name"`
	Low  string `json:"low"`
	High string `json:"high"`
}
