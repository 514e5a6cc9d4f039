package models

// SummaryOutput is what the summarise commands print.
type SummaryOutput struct {
	Source     string            `yaml:"source,omitempty"`
	Language   string            `yaml:"language,omitempty"`
	Vocabulary []string          `yaml:"vocabulary"`
	Params     SummaryConfig     `yaml:"params"`
	Total      int               `yaml:"total_sentences"`
	Iterations int               `yaml:"iterations"`
	Converged  bool              `yaml:"converged"`
	Sentences  []SummarySentence `yaml:"sentences"`
}

// SummarySentence is one selected sentence with its position and score.
type SummarySentence struct {
	Index    int     `yaml:"index" json:"index"`
	Score    float64 `yaml:"score" json:"score"`
	Sentence string  `yaml:"sentence" json:"sentence"`
}
