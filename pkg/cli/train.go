package cli

import (
	"fmt"
	"path/filepath"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/atmoforge/atmoctl/pkg/model"
)

var (
	trainCmd = &cli.Command{
		Name:    "train",
		Aliases: []string{"t"},
		Usage:   "Train the composition model on synthetic data and save the artifact",
		Action:  cmdTrain,
	}
)

func cmdTrain(c *cli.Context) error {
	cfg := getConfig(c)

	log.Debugf("generating %d synthetic samples (seed: %d)", cfg.Conf.Samples, cfg.Conf.Seed)
	x, y := model.SyntheticDataset(cfg.Conf.Samples, cfg.Conf.Seed)

	forest := model.NewForest(
		model.WithTrees(cfg.Conf.Trees),
		model.WithSeed(cfg.Conf.Seed),
	)

	log.Debugf("fitting forest (%d trees)", cfg.Conf.Trees)
	if err := forest.Fit(c.Context, x, y); err != nil {
		return errors.Wrap(err, "failed to fit model")
	}

	path := filepath.Join(cfg.Dir, cfg.Conf.ModelFile)
	if err := model.SaveArtifact(path, forest); err != nil {
		return errors.Wrap(err, "failed to save model artifact")
	}

	fmt.Println("Atmospheric composition model trained and saved.")
	return nil
}
