package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/COMP3220/2020S1/models"
)

const fourSentences = "This is sentence 1. This is another sentence 2. This is another sentence 3. Another 3 sentences above."

// runApp runs the CLI with stdin and returns stdout.
func runApp(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	app := newApp()
	app.Reader = strings.NewReader(stdin)
	app.Writer = &out
	app.ErrWriter = &errOut
	err := app.Run(append([]string{"sentrank"}, args...))
	return out.String(), err
}

func TestSummariseCommand(t *testing.T) {
	out, err := runApp(t, fourSentences,
		"--quiet", "summarise", "--stems", "thi,sentenc,anoth,3", "--threshold", "0.7", "--n", "2", "-")
	require.NoError(t, err)

	var got models.SummaryOutput
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))

	assert.Equal(t, "stdin", got.Source)
	assert.Equal(t, 4, got.Total)
	assert.True(t, got.Converged)
	require.Len(t, got.Sentences, 2)
	assert.Equal(t, "This is sentence 1.", got.Sentences[0].Sentence)
	assert.Equal(t, "This is another sentence 3.", got.Sentences[1].Sentence)
	assert.Equal(t, 0.7, got.Params.Threshold)
}

func TestSummariseCommandRejectsBadConfig(t *testing.T) {
	_, err := runApp(t, fourSentences, "--quiet", "summarise", "--stems", "thi", "--damping", "1.5", "-")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "damping")
}

func TestSummariseCommandConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sentrank.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sentences: 1\nthreshold: 0.7\n"), 0644))

	out, err := runApp(t, fourSentences, "--quiet", "--config", path, "summarise", "--stems", "thi,sentenc,anoth,3", "-")
	require.NoError(t, err)

	var got models.SummaryOutput
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	require.Len(t, got.Sentences, 1)
	assert.Equal(t, 0.85, got.Params.Damping)
}

func TestSimilarityCommand(t *testing.T) {
	out, err := runApp(t, "", "similarity", "--stems", "thi,sentenc,anoth",
		"This is a sentence.", "This is another sentence.")
	require.NoError(t, err)

	var got struct {
		Set1       []string `yaml:"set1"`
		Set2       []string `yaml:"set2"`
		Similarity float64  `yaml:"similarity"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, []string{"sentenc", "thi"}, got.Set1)
	assert.Equal(t, []string{"anoth", "sentenc", "thi"}, got.Set2)
	assert.InDelta(t, 2.0/3.0, got.Similarity, 1e-9)
}

func TestSimilarityCommandNeedsTwoSentences(t *testing.T) {
	_, err := runApp(t, "", "similarity", "--stems", "thi", "only one")
	require.Error(t, err)
}

func TestMatrixCommand(t *testing.T) {
	out, err := runApp(t, fourSentences, "matrix", "--stems", "thi,sentenc,anoth,3", "--threshold", "0.7", "-")
	require.NoError(t, err)

	var got struct {
		Matrix [][]float64 `yaml:"matrix"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	require.Len(t, got.Matrix, 4)
	for j := 0; j < 4; j++ {
		var sum float64
		for i := 0; i < 4; i++ {
			sum += got.Matrix[i][j]
		}
		assert.InDelta(t, 1.0, sum, 1e-9, "column %d", j)
	}
}

func TestStemsCommand(t *testing.T) {
	out, err := runApp(t, "This is a sentence. This is another sentence. Here is one more sentence. And another one.",
		"stems", "--n", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "stem: sentenc")
	assert.Contains(t, out, "count: 3")
}

func TestQuickstartCommand(t *testing.T) {
	out, err := runApp(t, "", "quickstart")
	require.NoError(t, err)

	var doc map[string]interface{}
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	assert.Contains(t, doc, "commands")
}

func TestOhsumedCommands(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) string {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte(content), 0644))
		return p
	}
	corpus := write("ohsumed.87", ".I 1\n.U\n87049087\n.W\n"+fourSentences+"\n.I 2\n.U\n87049088\n.W\nSecond abstract about fibrillation.\n")
	queries := write("query.ohsu.1-63", "<top>\n<num> Number: OHSU1\n<title> fibrillation\n<desc> Description:\nrefibrillation in the field\n</top>\n")
	qrels := write("qrels.ohsu.batch.87", "OHSU1\t87049088\t1\nOHSU1\t87049087\t2\n")
	dbPath := filepath.Join(dir, "test.db")

	out, err := runApp(t, "", "--quiet", "--db", dbPath, "ohsumed", "import",
		"--corpus", corpus, "--queries", queries, "--qrels", qrels)
	require.NoError(t, err)
	assert.Contains(t, out, "documents: 2")

	out, err = runApp(t, "", "--quiet", "--db", dbPath, "ohsumed", "query", "OHSU1")
	require.NoError(t, err)
	assert.Contains(t, out, "fibrillation refibrillation in the field")
	assert.Contains(t, out, "- \"87049087\"")

	out, err = runApp(t, "", "--quiet", "--db", dbPath, "ohsumed", "summarise",
		"--stems", "thi,sentenc,anoth,3", "--threshold", "0.7", "--n", "2", "87049087")
	require.NoError(t, err)
	assert.Contains(t, out, "This is sentence 1.")

	out, err = runApp(t, "", "--quiet", "--db", dbPath, "ohsumed", "show", "87049087")
	require.NoError(t, err)
	assert.Contains(t, out, "summaries:")

	_, err = runApp(t, "", "--quiet", "--db", dbPath, "ohsumed", "show", "missing")
	require.Error(t, err)

	out, err = runApp(t, "", "--quiet", "--db", dbPath, "ohsumed", "stems", "--n", "3", "--workers", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "documents: 2")
	assert.Contains(t, out, "stem: sentenc")

	out, err = runApp(t, "", "--quiet", "--db", dbPath, "ohsumed", "stems", "--n", "1", "--format", "keywords")
	require.NoError(t, err)
	assert.Equal(t, "sentenc:4\n", out)

	out, err = runApp(t, "", "--quiet", "--db", dbPath, "ohsumed", "stems", "--n", "1", "--format", "list")
	require.NoError(t, err)
	assert.Equal(t, "1. sentenc: 4\n", out)

	_, err = runApp(t, "", "--quiet", "--db", dbPath, "ohsumed", "stems", "--format", "csv")
	require.Error(t, err)
}

func TestSummariseCommandFetch(t *testing.T) {
	page := "<html><head><title>Test</title></head><body><article>" +
		"<p>This is sentence 1.</p><p>This is another sentence 2.</p>" +
		"<p>This is another sentence 3.</p><p>Another 3 sentences above.</p>" +
		"</article></body></html>"
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(page))
	}))
	defer srv.Close()

	out, err := runApp(t, "", "--quiet", "summarise", "--fetch", "--url", srv.URL,
		"--stems", "thi,sentenc,anoth,3", "--threshold", "0.7", "--n", "2")
	require.NoError(t, err)

	var got models.SummaryOutput
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, srv.URL, got.Source)
	assert.NotZero(t, got.Total)
	assert.NotEmpty(t, got.Sentences)
}

func TestSummariseCommandFetchNeedsURL(t *testing.T) {
	_, err := runApp(t, "", "--quiet", "summarise", "--fetch", "--stems", "thi")
	require.Error(t, err)
}
