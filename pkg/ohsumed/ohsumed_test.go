package ohsumed

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/COMP3220/2020S1/models"
)

const corpusSample = `.I 1
.U
87049087
.S
Am J Emerg Med 8703; 4(6):491-5
.M
Allied Health Personnel/*; Electric Countershock/*; Emergency Medical Technicians/*.
.T
Refibrillation managed by EMT-Ds:
.P
JOURNAL ARTICLE.
.W
Some patients converted from ventricular fibrillation to organized rhythms by defibrillation-trained ambulance technicians.
.A
Stults KR; Brown DD.
.I 2
.U
87049088
.T
A second title without an abstract.
.I 3
.U
87049089
.W
  Third abstract with surrounding spaces.
`

const questionsSample = `<top>
<num> Number: OHSU1
<title> 60 year old menopausal woman without hormone replacement therapy
<desc> Description:
Are there adverse effects on lipids when progesterone is given with estrogen replacement therapy
</top>

<top>
<num> Number: OHSU2
<title> 60 yo male with disseminated intravascular coagulation
<desc> Description:
pathophysiology and treatment
of disseminated intravascular coagulation
</top>
`

const answersSample = `OHSU1	87049087	1
OHSU1	87049089	2

OHSU2	87049088	1
`

func TestReadRecords(t *testing.T) {
	got, err := ReadRecords(strings.NewReader(corpusSample))
	require.NoError(t, err)

	assert.Equal(t, []models.Record{
		{Key: "87049087", Text: "Some patients converted from ventricular fibrillation to organized rhythms by defibrillation-trained ambulance technicians."},
		{Key: "87049088", Text: ""},
		{Key: "87049089", Text: "Third abstract with surrounding spaces."},
	}, got)
}

func TestReadRecordsEmpty(t *testing.T) {
	got, err := ReadRecords(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRecordScannerStopsAfterEnd(t *testing.T) {
	s := NewRecordScanner(strings.NewReader(".I 1\n.U\nk1\n.W\ntext\n"))
	require.True(t, s.Scan())
	assert.Equal(t, models.Record{Key: "k1", Text: "text"}, s.Record())
	assert.False(t, s.Scan())
	assert.False(t, s.Scan())
	assert.NoError(t, s.Err())
}

func TestReadQuestions(t *testing.T) {
	got, err := ReadQuestions(strings.NewReader(questionsSample))
	require.NoError(t, err)

	assert.Equal(t, []models.Question{
		{
			Key:  "OHSU1",
			Text: "60 year old menopausal woman without hormone replacement therapy Are there adverse effects on lipids when progesterone is given with estrogen replacement therapy",
		},
		{
			Key:  "OHSU2",
			Text: "60 yo male with disseminated intravascular coagulation pathophysiology and treatment of disseminated intravascular coagulation",
		},
	}, got)
}

func TestReadJudgments(t *testing.T) {
	got, err := ReadJudgments(strings.NewReader(answersSample))
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, models.Judgment{QueryKey: "OHSU1", DocKey: "87049089", Relevance: "2"}, got[1])

	grouped := GroupJudgments(got)
	assert.Len(t, grouped, 2)
	assert.Contains(t, grouped["OHSU1"], "87049087")
	assert.Contains(t, grouped["OHSU1"], "87049089")
	assert.Contains(t, grouped["OHSU2"], "87049088")
}

func TestReadJudgmentsMalformed(t *testing.T) {
	_, err := ReadJudgments(strings.NewReader("OHSU1 87049087 1\nOHSU1 87049089\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	files := Files{
		Corpus:    filepath.Join(dir, DefaultFiles.Corpus),
		Questions: filepath.Join(dir, DefaultFiles.Questions),
		Answers:   filepath.Join(dir, DefaultFiles.Answers),
	}
	require.NoError(t, os.WriteFile(files.Corpus, []byte(corpusSample), 0644))
	require.NoError(t, os.WriteFile(files.Questions, []byte(questionsSample), 0644))
	require.NoError(t, os.WriteFile(files.Answers, []byte(answersSample), 0644))

	c, err := Load(files)
	require.NoError(t, err)

	assert.Len(t, c.Corpus.Documents, 3)
	assert.Equal(t, "Third abstract with surrounding spaces.", c.Corpus.Documents["87049089"])
	assert.Len(t, c.Corpus.Questions, 2)
	assert.Len(t, c.Corpus.Answers["OHSU1"], 2)
	assert.Len(t, c.Judgments, 3)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(Files{Corpus: filepath.Join(t.TempDir(), "nope")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open")
}
