package models

// Record is one OHSUMED document: its medline key and abstract text.
type Record struct {
	Key  string `yaml:"key" json:"key"`
	Text string `yaml:"text" json:"text"`
}

// Question is one OHSUMED query: its number and title plus description.
type Question struct {
	Key  string `yaml:"key" json:"key"`
	Text string `yaml:"text" json:"text"`
}

// Judgments maps a query key to the set of document keys judged relevant.
type Judgments map[string]map[string]struct{}

// Add records docKey as relevant for queryKey.
func (j Judgments) Add(queryKey, docKey string) {
	docs, ok := j[queryKey]
	if !ok {
		docs = make(map[string]struct{})
		j[queryKey] = docs
	}
	docs[docKey] = struct{}{}
}

// Corpus is the full OHSUMED collection held in memory.
type Corpus struct {
	Documents map[string]string
	Questions map[string]string
	Answers   Judgments
}

// NewCorpus returns an empty corpus with initialised maps.
func NewCorpus() *Corpus {
	return &Corpus{
		Documents: make(map[string]string),
		Questions: make(map[string]string),
		Answers:   make(Judgments),
	}
}

// Judgment is one line of a relevance file.
type Judgment struct {
	QueryKey  string `yaml:"query" json:"query"`
	DocKey    string `yaml:"doc" json:"doc"`
	Relevance string `yaml:"relevance" json:"relevance"`
}
