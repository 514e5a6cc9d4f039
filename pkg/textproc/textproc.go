// Package textproc holds the language primitives the ranking code is built on:
// a word tokenizer, a stemmer and a sentence splitter. Each one is a plain
// function value so callers and tests can swap in their own.
package textproc

import "strings"

// TokenizeFunc splits a text into word and punctuation tokens.
type TokenizeFunc func(text string) []string

// StemFunc reduces a single token to its stem.
type StemFunc func(token string) string

// SplitFunc segments a text into sentences.
type SplitFunc func(text string) []string

// Pipeline bundles the three primitives.
type Pipeline struct {
	Tokenize TokenizeFunc
	Stem     StemFunc
	Split    SplitFunc
}

// Default returns the pipeline backed by prose and the Porter stemmer.
func Default() *Pipeline {
	return &Pipeline{
		Tokenize: ProseTokenize,
		Stem:     PorterStem,
		Split:    ProseSentences,
	}
}

// orDefault fills any missing primitive from Default.
func (p *Pipeline) orDefault() *Pipeline {
	if p == nil {
		return Default()
	}
	out := *p
	if out.Tokenize == nil {
		out.Tokenize = ProseTokenize
	}
	if out.Stem == nil {
		out.Stem = PorterStem
	}
	if out.Split == nil {
		out.Split = ProseSentences
	}
	return &out
}

// Stems tokenizes text and returns the lowercased stem of every token in order.
func (p *Pipeline) Stems(text string) []string {
	p = p.orDefault()
	tokens := p.Tokenize(text)
	stems := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if tok == "" {
			continue
		}
		stems = append(stems, strings.ToLower(p.Stem(tok)))
	}
	return stems
}

// Tokens tokenizes text with the configured tokenizer.
func (p *Pipeline) Tokens(text string) []string {
	return p.orDefault().Tokenize(text)
}

// StemToken stems one token and lowercases the result.
func (p *Pipeline) StemToken(token string) string {
	return strings.ToLower(p.orDefault().Stem(token))
}

// Sentences splits text into trimmed, non-empty sentences.
func (p *Pipeline) Sentences(text string) []string {
	raw := p.orDefault().Split(text)
	out := make([]string, 0, len(raw))
	for _, s := range raw {
		s = strings.TrimSpace(s)
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
