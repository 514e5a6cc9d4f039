package ohsumed

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/COMP3220/2020S1/internal/common"
	"github.com/COMP3220/2020S1/internal/summarise"
	"github.com/COMP3220/2020S1/pkg/analytics"
	dbpkg "github.com/COMP3220/2020S1/pkg/db"
	"github.com/COMP3220/2020S1/pkg/mapreduce"
	ohsumedpkg "github.com/COMP3220/2020S1/pkg/ohsumed"
)

type documentOutput struct {
	DocKey    string             `yaml:"doc_key"`
	Text      string             `yaml:"text"`
	Summaries []dbpkg.SummaryRun `yaml:"summaries,omitempty"`
}

type queryOutput struct {
	QueryKey  string   `yaml:"query_key"`
	Text      string   `yaml:"text"`
	Relevant  []string `yaml:"relevant"`
	Judgments int      `yaml:"judgments"`
}

type corpusStemsOutput struct {
	Documents int                   `yaml:"documents"`
	Stems     []analytics.StemCount `yaml:"stems"`
}

func openDB(c *cli.Context) (*dbpkg.DB, error) {
	database, err := dbpkg.Open(c.String("db"))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return database, nil
}

func requireKey(c *cli.Context, what string) (string, error) {
	if c.NArg() != 1 {
		return "", fmt.Errorf("expected one %s argument, got %d", what, c.NArg())
	}
	return c.Args().First(), nil
}

// ImportAction loads the corpus, query and relevance files into the database.
func ImportAction(c *cli.Context) error {
	logger := common.NewLogger(c)

	files := ohsumedpkg.Files{
		Corpus:    c.String("corpus"),
		Questions: c.String("queries"),
		Answers:   c.String("qrels"),
	}
	logger.Info("Reading OHSUMED files", "corpus", files.Corpus, "queries", files.Questions, "qrels", files.Answers)

	collection, err := ohsumedpkg.Load(files)
	if err != nil {
		return err
	}

	database, err := openDB(c)
	if err != nil {
		return err
	}
	defer database.Close()

	stats, err := database.ImportCorpus(collection.Records, collection.Questions, collection.Judgments)
	if err != nil {
		return fmt.Errorf("failed to import corpus: %w", err)
	}
	logger.Info("Imported corpus", "db", database.Path(), "documents", stats.Documents, "queries", stats.Queries, "judgments", stats.Judgments)

	return common.PrintYAML(c, stats)
}

// ShowAction prints a stored document and its recent summaries.
func ShowAction(c *cli.Context) error {
	docKey, err := requireKey(c, "document key")
	if err != nil {
		return err
	}

	database, err := openDB(c)
	if err != nil {
		return err
	}
	defer database.Close()

	text, err := database.GetDocument(docKey)
	if err != nil {
		return err
	}
	runs, err := database.ListSummaries(docKey, c.Int("limit"))
	if err != nil {
		return err
	}

	return common.PrintYAML(c, documentOutput{DocKey: docKey, Text: text, Summaries: runs})
}

// QueryAction prints a query and the documents judged relevant to it.
func QueryAction(c *cli.Context) error {
	queryKey, err := requireKey(c, "query key")
	if err != nil {
		return err
	}

	database, err := openDB(c)
	if err != nil {
		return err
	}
	defer database.Close()

	text, err := database.GetQuery(queryKey)
	if err != nil {
		return err
	}
	relevant, err := database.RelevantDocuments(queryKey)
	if err != nil {
		return err
	}

	return common.PrintYAML(c, queryOutput{
		QueryKey:  queryKey,
		Text:      text,
		Relevant:  relevant,
		Judgments: len(relevant),
	})
}

// SummariseAction summarises a stored document and records the run.
func SummariseAction(c *cli.Context) error {
	logger := common.NewLogger(c)

	docKey, err := requireKey(c, "document key")
	if err != nil {
		return err
	}
	cfg, err := common.BuildConfig(c)
	if err != nil {
		return err
	}

	database, err := openDB(c)
	if err != nil {
		return err
	}
	defer database.Close()

	text, err := database.GetDocument(docKey)
	if err != nil {
		return err
	}

	out, err := summarise.Run(c, logger, cfg, text)
	if err != nil {
		return err
	}
	out.Source = docKey

	if !c.Bool("no-record") {
		runID, err := database.RecordSummary(dbpkg.SummaryRun{
			DocKey:     docKey,
			Params:     cfg,
			Vocabulary: out.Vocabulary,
			Sentences:  out.Sentences,
			Iterations: out.Iterations,
			Converged:  out.Converged,
		})
		if err != nil {
			return err
		}
		logger.Debug("Recorded summary run", "doc_key", docKey, "run_id", runID)
	}

	return common.PrintYAML(c, out)
}

// StemsAction prints the most frequent stems across every stored document.
func StemsAction(c *cli.Context) error {
	logger := common.NewLogger(c)

	cfg, err := common.BuildConfig(c)
	if err != nil {
		return err
	}
	stop, err := common.LoadStopwords(c, cfg)
	if err != nil {
		return err
	}

	database, err := openDB(c)
	if err != nil {
		return err
	}
	defer database.Close()

	var docs []string
	if err := database.EachDocument(func(_, text string) error {
		docs = append(docs, text)
		return nil
	}); err != nil {
		return err
	}

	workers := c.Int("workers")
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	counts := mapreduce.Run(docs, workers, analytics.New(nil), stop, logger)
	logger.Info("Counted corpus stems", "documents", len(docs), "distinct", len(counts))

	n := c.Int("n")
	switch c.String("format") {
	case "yaml":
		return common.PrintYAML(c, corpusStemsOutput{
			Documents: len(docs),
			Stems:     mapreduce.Top(counts, n),
		})
	case "keywords":
		_, err := fmt.Fprintln(c.App.Writer, strings.Join(mapreduce.TopKeywords(counts, n), " "))
		return err
	case "list":
		return mapreduce.PrintTopKeywords(c.App.Writer, counts, n)
	default:
		return fmt.Errorf("unknown format %q (want yaml, keywords or list)", c.String("format"))
	}
}
