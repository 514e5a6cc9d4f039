package rank

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/COMP3220/2020S1/internal/common"
	rankpkg "github.com/COMP3220/2020S1/pkg/rank"
	"github.com/COMP3220/2020S1/pkg/textproc"
)

type similarityOutput struct {
	Vocabulary []string `yaml:"vocabulary"`
	Set1       []string `yaml:"set1"`
	Set2       []string `yaml:"set2"`
	Similarity float64  `yaml:"similarity"`
}

type matrixOutput struct {
	Vocabulary []string    `yaml:"vocabulary"`
	Threshold  float64     `yaml:"threshold"`
	Sentences  []string    `yaml:"sentences"`
	Matrix     [][]float64 `yaml:"matrix,flow"`
}

type scoredSentence struct {
	Index    int     `yaml:"index"`
	Score    float64 `yaml:"score"`
	Sentence string  `yaml:"sentence"`
}

type pageRankOutput struct {
	Vocabulary []string         `yaml:"vocabulary"`
	Iterations int              `yaml:"iterations"`
	Converged  bool             `yaml:"converged"`
	Delta      float64          `yaml:"delta"`
	Sentences  []scoredSentence `yaml:"sentences"`
}

// SimilarityAction prints the stem sets and Jaccard similarity of the two
// sentence arguments.
func SimilarityAction(c *cli.Context) error {
	logger := common.NewLogger(c)

	if c.NArg() != 2 {
		return fmt.Errorf("similarity needs exactly two sentences, got %d", c.NArg())
	}
	vocab := common.ParseStems(c.String("stems"))
	if len(vocab) == 0 {
		return common.ErrNoStems
	}

	r := rankpkg.New(nil, logger)
	s1, s2 := c.Args().Get(0), c.Args().Get(1)
	return common.PrintYAML(c, similarityOutput{
		Vocabulary: vocab,
		Set1:       r.StemSet(s1, vocab).Sorted(),
		Set2:       r.StemSet(s2, vocab).Sorted(),
		Similarity: r.Similarity(s1, s2, vocab),
	})
}

// MatrixAction prints the column-stochastic transition matrix of the input's
// sentences.
func MatrixAction(c *cli.Context) error {
	logger := common.NewLogger(c)

	cfg, err := common.BuildConfig(c)
	if err != nil {
		return err
	}
	text, err := common.ReadInput(c)
	if err != nil {
		return err
	}
	stop, err := common.LoadStopwords(c, cfg)
	if err != nil {
		return err
	}
	vocab, err := common.Vocabulary(c, text, cfg, stop)
	if err != nil {
		return err
	}

	sentences := textproc.Default().Sentences(text)
	m, err := rankpkg.New(nil, logger).TransitionMatrix(sentences, vocab, cfg.Threshold)
	if err != nil {
		return err
	}

	out := matrixOutput{
		Vocabulary: vocab,
		Threshold:  cfg.Threshold,
		Sentences:  sentences,
		Matrix:     make([][]float64, len(sentences)),
	}
	for i := range sentences {
		out.Matrix[i] = m.RawRowView(i)
	}
	return common.PrintYAML(c, out)
}

// PageRankAction prints the PageRank score of every sentence of the input.
func PageRankAction(c *cli.Context) error {
	logger := common.NewLogger(c)

	cfg, err := common.BuildConfig(c)
	if err != nil {
		return err
	}
	text, err := common.ReadInput(c)
	if err != nil {
		return err
	}
	stop, err := common.LoadStopwords(c, cfg)
	if err != nil {
		return err
	}
	vocab, err := common.Vocabulary(c, text, cfg, stop)
	if err != nil {
		return err
	}

	sentences := textproc.Default().Sentences(text)
	res, err := rankpkg.New(nil, logger).PageRank(sentences, vocab, common.RankParams(cfg))
	if err != nil {
		return err
	}

	out := pageRankOutput{
		Vocabulary: vocab,
		Iterations: res.Iterations,
		Converged:  res.Converged,
		Delta:      res.Delta,
	}
	for i, score := range res.Values() {
		out.Sentences = append(out.Sentences, scoredSentence{Index: i, Score: score, Sentence: sentences[i]})
	}
	return common.PrintYAML(c, out)
}
