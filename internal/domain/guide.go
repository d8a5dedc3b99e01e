package domain

// DefaultGuideKey names the fallback entry used when no destination key matches.
const DefaultGuideKey = "default"

// Phrase is a single traveller phrase in English and the local language.
type Phrase struct {
	English       string `json:"english" yaml:"english"`
	Local         string `json:"local" yaml:"local"`
	Pronunciation string `json:"pronunciation" yaml:"pronunciation"`
}

// Tip is a titled piece of advice (etiquette, food culture, practical tips).
type Tip struct {
	Title   string `json:"title" yaml:"title"`
	Content string `json:"content" yaml:"content"`
}

// GuideEntry is the culture and language content for one destination key.
// Key is a lowercase country name matched as a substring of the destination
// text. Etiquette and Food may be empty; callers fill them from the default entry.
type GuideEntry struct {
	Key       string   `json:"key" yaml:"key"`
	Language  string   `json:"language" yaml:"language"`
	Phrases   []Phrase `json:"phrases" yaml:"phrases"`
	Etiquette []Tip    `json:"etiquette,omitempty" yaml:"etiquette,omitempty"`
	Food      []Tip    `json:"food,omitempty" yaml:"food,omitempty"`
}

// Culture is the resolved content of the culture tabs for a destination.
type Culture struct {
	Language  string   `json:"language"`
	Phrases   []Phrase `json:"phrases"`
	Etiquette []Tip    `json:"etiquette"`
	Food      []Tip    `json:"food"`
	Tips      []Tip    `json:"tips"`
}

// SeasonalInfo describes what to expect when travelling in a given month.
type SeasonalInfo struct {
	Season     string `json:"season"`
	Month      string `json:"month"`
	Days       int    `json:"days"`
	Activities string `json:"activities"`
	Events     string `json:"events"`
	Packing    string `json:"packing"`
	Foods      string `json:"foods"`
}
