package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/COMP3220/2020S1/internal/common"
	"github.com/COMP3220/2020S1/internal/ohsumed"
	"github.com/COMP3220/2020S1/internal/rank"
	"github.com/COMP3220/2020S1/internal/stems"
	"github.com/COMP3220/2020S1/internal/summarise"
	"github.com/COMP3220/2020S1/models"
	"github.com/COMP3220/2020S1/pkg/help"
)

func main() {
	if err := models.LoadEnv(); err != nil {
		slog.Warn("Ignoring .env", "error", err)
	}

	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "sentrank",
		Usage: "Extractive text summaries ranked with PageRank",
		Flags: common.GlobalFlags(),
		Commands: []*cli.Command{
			{
				Name:      "stems",
				Usage:     "Print the most frequent stems of a text",
				ArgsUsage: "[FILE|-]",
				Flags: append([]cli.Flag{
					&cli.IntFlag{Name: "n", Usage: "Number of stems", Value: 10},
				}, common.StopwordFlags()...),
				Action: stems.StemsAction,
			},
			{
				Name:      "similarity",
				Usage:     "Jaccard similarity of two sentences over a stem vocabulary",
				ArgsUsage: "SENTENCE1 SENTENCE2",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "stems", Usage: "Comma-separated vocabulary of stems", Required: true},
				},
				Action: rank.SimilarityAction,
			},
			{
				Name:      "matrix",
				Usage:     "Print the transition matrix of a text's sentences",
				ArgsUsage: "[FILE|-]",
				Flags:     append(common.VocabularyFlags(), common.ThresholdFlag()),
				Action:    rank.MatrixAction,
			},
			{
				Name:      "pagerank",
				Usage:     "Print the PageRank score of every sentence",
				ArgsUsage: "[FILE|-]",
				Flags:     append(common.VocabularyFlags(), common.RankFlags()...),
				Action:    rank.PageRankAction,
			},
			{
				Name:      "summarise",
				Aliases:   []string{"summarize"},
				Usage:     "Print the top-ranked sentences in their original order",
				ArgsUsage: "[FILE|-]",
				Flags: append(append(common.VocabularyFlags(), common.SummaryFlags()...),
					&cli.BoolFlag{Name: "html", Usage: "Input is an HTML page"},
					&cli.StringFlag{Name: "url", Usage: "Page URL, used to resolve links with --html"},
					&cli.BoolFlag{Name: "fetch", Usage: "Download --url instead of reading input (implies --html)"},
				),
				Action: summarise.SummariseAction,
			},
			{
				Name:  "ohsumed",
				Usage: "Work with an OHSUMED collection stored in SQLite",
				Subcommands: []*cli.Command{
					{
						Name:  "import",
						Usage: "Import corpus, queries and relevance judgments",
						Flags: []cli.Flag{
							&cli.StringFlag{Name: "corpus", Value: "ohsumed.87", Usage: "Corpus file"},
							&cli.StringFlag{Name: "queries", Value: "query.ohsu.1-63", Usage: "Query file"},
							&cli.StringFlag{Name: "qrels", Value: "qrels.ohsu.batch.87", Usage: "Relevance judgments file"},
						},
						Action: ohsumed.ImportAction,
					},
					{
						Name:      "show",
						Usage:     "Show a document and its stored summaries",
						ArgsUsage: "DOC_KEY",
						Flags: []cli.Flag{
							&cli.IntFlag{Name: "limit", Value: 5, Usage: "Number of summaries to show (0 for all)"},
						},
						Action: ohsumed.ShowAction,
					},
					{
						Name:      "query",
						Usage:     "Show a query and its relevant documents",
						ArgsUsage: "QUERY_KEY",
						Action:    ohsumed.QueryAction,
					},
					{
						Name:      "summarise",
						Aliases:   []string{"summarize"},
						Usage:     "Summarise a stored document",
						ArgsUsage: "DOC_KEY",
						Flags: append(append(common.VocabularyFlags(), common.SummaryFlags()...),
							&cli.BoolFlag{Name: "no-record", Usage: "Do not store the summary run"},
						),
						Action: ohsumed.SummariseAction,
					},
					{
						Name:  "stems",
						Usage: "Most frequent stems across the stored corpus",
						Flags: append([]cli.Flag{
							&cli.IntFlag{Name: "n", Usage: "Number of stems", Value: 20},
							&cli.IntFlag{Name: "workers", Usage: "Map workers (0 for one per CPU)"},
							&cli.StringFlag{Name: "format", Value: "yaml", Usage: "Output format: yaml, keywords (stem:count) or list"},
						}, common.StopwordFlags()...),
						Action: ohsumed.StemsAction,
					},
				},
			},
			{
				Name:  "quickstart",
				Usage: "Print a YAML cheat-sheet",
				Action: func(c *cli.Context) error {
					_, err := fmt.Fprint(c.App.Writer, help.ColdstartYAML)
					return err
				},
			},
		},
	}
}
