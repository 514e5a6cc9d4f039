package stems

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/COMP3220/2020S1/internal/common"
	"github.com/COMP3220/2020S1/pkg/analytics"
)

type output struct {
	Stems []analytics.StemCount `yaml:"stems"`
}

// StemsAction prints the most frequent non-stopword stems of the input.
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

	text, err := common.ReadInput(c)
	if err != nil {
		return err
	}

	n := c.Int("n")
	counts, err := analytics.New(nil).TopStemCounts(text, n, stop)
	if err != nil {
		return fmt.Errorf("failed to count stems: %w", err)
	}
	logger.Debug("Counted stems", "requested", n, "returned", len(counts))

	return common.PrintYAML(c, output{Stems: counts})
}
