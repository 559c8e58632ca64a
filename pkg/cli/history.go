package cli

import (
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/atmoforge/atmoctl/pkg/data"
)

const historyLimitDefault = 10

var (
	historyLimitFlag = &cli.IntFlag{
		Name:  "limit",
		Usage: "Limits number of results returned",
		Value: historyLimitDefault,
	}

	historyCmd = &cli.Command{
		Name:    "history",
		Aliases: []string{"h"},
		Usage:   "List previously recorded predictions",
		Action:  cmdHistory,
		Flags: []cli.Flag{
			historyLimitFlag,
		},
	}
)

func cmdHistory(c *cli.Context) error {
	cfg := getConfig(c)

	limit := c.Int(historyLimitFlag.Name)
	if limit < 1 {
		limit = historyLimitDefault
	}

	list, err := data.ListPredictions(cfg.DB, limit)
	if err != nil {
		return errors.Wrap(err, "failed to list predictions")
	}
	return encode(list)
}
