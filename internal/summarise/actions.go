package summarise

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/COMP3220/2020S1/internal/common"
	"github.com/COMP3220/2020S1/models"
	"github.com/COMP3220/2020S1/pkg/detector"
	"github.com/COMP3220/2020S1/pkg/fetcher"
	"github.com/COMP3220/2020S1/pkg/parser"
	"github.com/COMP3220/2020S1/pkg/rank"
)

// SummariseAction prints an extractive summary of the input text or HTML page.
func SummariseAction(c *cli.Context) error {
	logger := common.NewLogger(c)

	cfg, err := common.BuildConfig(c)
	if err != nil {
		return err
	}

	source := c.Args().First()
	if source == "" || source == "-" {
		source = "stdin"
	}

	rawURL := c.String("url")
	isHTML := c.Bool("html")

	var input string
	if c.Bool("fetch") {
		if rawURL == "" {
			return fmt.Errorf("--fetch needs --url")
		}
		logger.Info("Fetching page", "url", rawURL)
		input, err = fetcher.NewFetcher().GetHTML(c.Context, rawURL)
		if err != nil {
			return err
		}
		isHTML = true
	} else {
		input, err = common.ReadInput(c)
		if err != nil {
			return err
		}
	}

	text := input
	if isHTML {
		text, err = parser.ExtractText(rawURL, input)
		if err != nil {
			return fmt.Errorf("failed to extract text: %w", err)
		}
		if rawURL != "" {
			source = rawURL
		}
		logger.Debug("Extracted text from HTML", "source", source, "chars", len(text))
	}

	out, err := Run(c, logger, cfg, text)
	if err != nil {
		return err
	}
	out.Source = source
	return common.PrintYAML(c, out)
}

// Run checks the language of text, resolves the vocabulary and ranks the
// sentences. It backs both the plain and the corpus summarise commands.
func Run(c *cli.Context, logger *slog.Logger, cfg models.SummaryConfig, text string) (models.SummaryOutput, error) {
	out := models.SummaryOutput{Params: cfg}

	if strings.TrimSpace(text) != "" {
		lang, err := detector.New().Check(text, cfg.StrictLanguage, logger)
		if err != nil {
			return out, err
		}
		out.Language = lang.Language
	}

	stop, err := common.LoadStopwords(c, cfg)
	if err != nil {
		return out, err
	}
	vocab, err := common.Vocabulary(c, text, cfg, stop)
	if err != nil {
		return out, err
	}
	out.Vocabulary = vocab

	summary, err := rank.New(nil, logger).SummariseRanked(text, vocab, cfg.Sentences, common.RankParams(cfg))
	if err != nil {
		return out, err
	}

	out.Total = summary.Total
	out.Iterations = summary.Iterations
	out.Converged = summary.Converged
	out.Sentences = make([]models.SummarySentence, len(summary.Sentences))
	for i, s := range summary.Sentences {
		out.Sentences[i] = models.SummarySentence{Index: s.Index, Score: s.Score, Sentence: s.Sentence}
	}
	return out, nil
}
