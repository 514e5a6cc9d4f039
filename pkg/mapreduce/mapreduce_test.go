package mapreduce

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/COMP3220/2020S1/pkg/analytics"
	"github.com/COMP3220/2020S1/pkg/textproc"
)

// fieldsPipeline keeps tests independent of the tokenizer and stemmer models.
var fieldsPipeline = &textproc.Pipeline{
	Tokenize: func(text string) []string {
		var out []string
		for _, f := range bytes.Fields([]byte(text)) {
			out = append(out, string(f))
		}
		return out
	},
	Stem: func(token string) string { return token },
}

func TestMap(t *testing.T) {
	a := analytics.New(fieldsPipeline)
	got := Map("b a b the c", a, analytics.NewStopwords("the"))
	assert.Equal(t, []analytics.StemCount{
		{Stem: "b", Count: 2},
		{Stem: "a", Count: 1},
		{Stem: "c", Count: 1},
	}, got)
}

func TestReduce(t *testing.T) {
	got := Reduce([][]analytics.StemCount{
		{{Stem: "x", Count: 1}, {Stem: "y", Count: 2}},
		nil,
		{{Stem: "z", Count: 3}, {Stem: "x", Count: 2}},
	})
	assert.Equal(t, []analytics.StemCount{
		{Stem: "x", Count: 3},
		{Stem: "z", Count: 3},
		{Stem: "y", Count: 2},
	}, got)
}

func TestReduceEmpty(t *testing.T) {
	assert.Empty(t, Reduce(nil))
}

func TestRunMatchesSequential(t *testing.T) {
	a := analytics.New(fieldsPipeline)
	docs := []string{
		"alpha beta gamma",
		"beta delta",
		"gamma gamma epsilon",
		"",
		"delta alpha zeta",
	}

	var seq [][]analytics.StemCount
	for _, d := range docs {
		seq = append(seq, Map(d, a, nil))
	}
	want := Reduce(seq)

	for _, workers := range []int{0, 1, 3, 10} {
		assert.Equal(t, want, Run(docs, workers, a, nil, nil), "workers=%d", workers)
	}
}

func TestTopKeywords(t *testing.T) {
	counts := []analytics.StemCount{
		{Stem: "patient", Count: 9},
		{Stem: "(broken", Count: 8},
		{Stem: "trial", Count: 5},
		{Stem: "dose", Count: 2},
	}

	assert.Equal(t, []string{"patient:9", "trial:5"}, TopKeywords(counts, 2))
	assert.Equal(t, []string{"patient:9", "trial:5", "dose:2"}, TopKeywords(counts, 10))
	assert.Empty(t, TopKeywords(counts, 0))
	assert.Empty(t, TopKeywords(counts, -1))
}

func TestIsValidKeyword(t *testing.T) {
	tests := map[string]bool{
		"x_train":  true,
		"f(x)":     true,
		"key:":     false,
		"a=":       false,
		"[idx":     false,
		"{obj":     false,
		`"quoted"`: true,
		`"open`:    false,
	}
	for word, want := range tests {
		assert.Equal(t, want, isValidKeyword(word), word)
	}
}

func TestPrintTopKeywords(t *testing.T) {
	var buf bytes.Buffer
	err := PrintTopKeywords(&buf, []analytics.StemCount{{Stem: "a", Count: 2}, {Stem: "b", Count: 1}}, 5)
	assert.NoError(t, err)
	assert.Equal(t, "1. a: 2\n2. b: 1\n", buf.String())
}
