package analytics

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Stopwords is a case-insensitive set of tokens dropped before stemming.
// Keys are stored lowercased.
type Stopwords map[string]struct{}

// englishWords is the NLTK English stopword list.
var englishWords = []string{
	"i", "me", "my", "myself", "we", "our", "ours", "ourselves",
	"you", "you're", "you've", "you'll", "you'd", "your", "yours", "yourself", "yourselves",
	"he", "him", "his", "himself", "she", "she's", "her", "hers", "herself",
	"it", "it's", "its", "itself", "they", "them", "their", "theirs", "themselves",
	"what", "which", "who", "whom", "this", "that", "that'll", "these", "those",
	"am", "is", "are", "was", "were", "be", "been", "being",
	"have", "has", "had", "having", "do", "does", "did", "doing",
	"a", "an", "the", "and", "but", "if", "or", "because", "as", "until", "while",
	"of", "at", "by", "for", "with", "about", "against", "between", "into", "through",
	"during", "before", "after", "above", "below", "to", "from", "up", "down",
	"in", "out", "on", "off", "over", "under", "again", "further", "then", "once",
	"here", "there", "when", "where", "why", "how", "all", "any", "both", "each",
	"few", "more", "most", "other", "some", "such", "no", "nor", "not", "only",
	"own", "same", "so", "than", "too", "very", "s", "t", "can", "will", "just",
	"don", "don't", "should", "should've", "now", "d", "ll", "m", "o", "re", "ve", "y",
	"ain", "aren", "aren't", "couldn", "couldn't", "didn", "didn't", "doesn", "doesn't",
	"hadn", "hadn't", "hasn", "hasn't", "haven", "haven't", "isn", "isn't", "ma",
	"mightn", "mightn't", "mustn", "mustn't", "needn", "needn't", "shan", "shan't",
	"shouldn", "shouldn't", "wasn", "wasn't", "weren", "weren't", "won", "won't",
	"wouldn", "wouldn't",
}

// punctuationTokens are tokenizer outputs that carry no content.
var punctuationTokens = []string{",", ".", ";", "''", ":", "``", "?", "--", "!"}

// commonWords is the default stopword set: English words plus punctuation tokens.
var commonWords = NewStopwords(append(append([]string{}, englishWords...), punctuationTokens...)...)

// NewStopwords builds a set from words, folding case.
func NewStopwords(words ...string) Stopwords {
	s := make(Stopwords, len(words))
	for _, w := range words {
		s.Add(w)
	}
	return s
}

// EnglishStopwords returns a fresh copy of the default English set.
func EnglishStopwords() Stopwords {
	s := make(Stopwords, len(commonWords))
	for w := range commonWords {
		s[w] = struct{}{}
	}
	return s
}

// Add inserts a word. Surrounding whitespace is ignored; blank words are skipped.
func (s Stopwords) Add(word string) {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		return
	}
	s[word] = struct{}{}
}

// Contains reports whether word is a stopword, ignoring case.
func (s Stopwords) Contains(word string) bool {
	_, exists := s[strings.ToLower(word)]
	return exists
}

// Merge adds every word of other to s.
func (s Stopwords) Merge(other Stopwords) {
	for w := range other {
		s[w] = struct{}{}
	}
}

// LoadStopwords reads one stopword per line. Blank lines and lines starting
// with '#' are skipped.
func LoadStopwords(r io.Reader) (Stopwords, error) {
	s := make(Stopwords)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		s.Add(line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read stopwords: %w", err)
	}
	return s, nil
}
