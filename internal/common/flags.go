package common

import (
	"github.com/urfave/cli/v2"

	"github.com/COMP3220/2020S1/pkg/rank"
)

// GlobalFlags are accepted before any command.
func GlobalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:    "quiet",
			Aliases: []string{"q"},
			Usage:   "Only log errors",
		},
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: "Log debug output",
		},
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "YAML file with summary parameters",
			EnvVars: []string{"SENTRANK_CONFIG"},
		},
		&cli.StringFlag{
			Name:    "db",
			Usage:   "Corpus database path (default: sentrank.db next to the binary)",
			EnvVars: []string{"SENTRANK_DB"},
		},
	}
}

// StopwordFlags control stopword filtering for stem extraction.
func StopwordFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "stopwords",
			Usage: "File with extra stopwords, one per line",
		},
		&cli.BoolFlag{
			Name:  "no-default-stopwords",
			Usage: "Do not filter the built-in English stopwords",
		},
	}
}

// VocabularyFlags pick the stems that define sentence similarity.
func VocabularyFlags() []cli.Flag {
	return append([]cli.Flag{
		&cli.StringFlag{
			Name:  "stems",
			Usage: "Comma-separated vocabulary of stems",
		},
		&cli.IntFlag{
			Name:    "top-stems",
			Aliases: []string{"k"},
			Usage:   "Use the K most frequent stems when --stems is not given",
			Value:   10,
			EnvVars: []string{"SENTRANK_TOP_STEMS"},
		},
	}, StopwordFlags()...)
}

// ThresholdFlag is the similarity cut-off for graph edges.
func ThresholdFlag() cli.Flag {
	return &cli.Float64Flag{
		Name:    "threshold",
		Aliases: []string{"t"},
		Usage:   "Minimum Jaccard similarity for a link",
		Value:   rank.DefaultThreshold,
		EnvVars: []string{"SENTRANK_THRESHOLD"},
	}
}

// RankFlags are the PageRank parameters.
func RankFlags() []cli.Flag {
	return []cli.Flag{
		ThresholdFlag(),
		&cli.Float64Flag{
			Name:    "damping",
			Aliases: []string{"d"},
			Usage:   "PageRank damping factor",
			Value:   rank.DefaultDamping,
			EnvVars: []string{"SENTRANK_DAMPING"},
		},
		&cli.Float64Flag{
			Name:    "epsilon",
			Usage:   "Convergence tolerance (L1)",
			Value:   rank.DefaultEpsilon,
			EnvVars: []string{"SENTRANK_EPSILON"},
		},
		&cli.IntFlag{
			Name:    "max-iterations",
			Usage:   "Maximum number of power iterations",
			Value:   rank.DefaultMaxIterations,
			EnvVars: []string{"SENTRANK_MAX_ITERATIONS"},
		},
	}
}

// SummaryFlags are RankFlags plus the summary length and language gate.
func SummaryFlags() []cli.Flag {
	return append([]cli.Flag{
		&cli.IntFlag{
			Name:    "n",
			Usage:   "Number of sentences in the summary",
			Value:   rank.DefaultSentences,
			EnvVars: []string{"SENTRANK_N"},
		},
		&cli.BoolFlag{
			Name:  "strict-language",
			Usage: "Fail instead of warning when the text is not English",
		},
	}, RankFlags()...)
}
