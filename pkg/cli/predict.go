package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/atmoforge/atmoctl/pkg/atmo"
	"github.com/atmoforge/atmoctl/pkg/data"
	"github.com/atmoforge/atmoctl/pkg/model"
)

var (
	inputFileFlag = &cli.StringFlag{
		Name:    "input",
		Aliases: []string{"i"},
		Usage:   "Path to a YAML file with the eight parameters (optional)",
	}

	predictCmd = &cli.Command{
		Name:    "predict",
		Aliases: []string{"p"},
		Usage:   "Predict atmospheric gas composition for the given exoplanet parameters",
		Action:  cmdPredict,
		Flags:   predictFlags(),
	}
)

// predictFlags returns the input file flag plus one float flag per
// essential feature. Values not provided as flags or via the input
// file are collected interactively.
func predictFlags() []cli.Flag {
	flags := []cli.Flag{inputFileFlag}
	for _, f := range atmo.Features {
		usage := f.Label
		if f.Unit != "" {
			usage = fmt.Sprintf("%s (%s)", f.Label, f.Unit)
		}
		flags = append(flags, &cli.Float64Flag{
			Name:  f.Key,
			Usage: usage,
		})
	}
	return flags
}

func cmdPredict(c *cli.Context) error {
	cfg := getConfig(c)

	params, err := resolveParams(c)
	if err != nil {
		return err
	}

	path := filepath.Join(cfg.Dir, cfg.Conf.ModelFile)
	forest, err := model.LoadArtifact(path)
	if err != nil {
		return errors.Wrapf(err, "no usable model, run `%s train` first", name)
	}

	raw, err := forest.Predict(params.Vector())
	if err != nil {
		return errors.Wrap(err, "prediction failed")
	}

	normalized := atmo.Normalize(raw)
	log.Debugf("raw: %v, normalized: %s", raw, normalized)

	if err := atmo.WriteReport(os.Stdout, normalized); err != nil {
		return errors.Wrap(err, "failed to write report")
	}

	if err := data.SavePrediction(cfg.DB, params, normalized); err != nil {
		log.Warnf("failed to record prediction: %v", err)
	}
	return nil
}

func resolveParams(c *cli.Context) (*atmo.Params, error) {
	if path := c.String(inputFileFlag.Name); path != "" {
		return paramsFromFile(path)
	}

	all := true
	for _, f := range atmo.Features {
		if !c.IsSet(f.Key) {
			all = false
			break
		}
	}
	if all {
		m := make(map[string]float64, len(atmo.Features))
		for _, f := range atmo.Features {
			m[f.Key] = c.Float64(f.Key)
		}
		return atmo.ParamsFromMap(m)
	}

	return atmo.Collect(os.Stdin, os.Stdout)
}

func paramsFromFile(path string) (*atmo.Params, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read input file: %s", path)
	}
	m := make(map[string]float64)
	if err := yaml.Unmarshal(b, &m); err != nil {
		return nil, errors.Wrapf(err, "failed to parse input file: %s", path)
	}
	return atmo.ParamsFromMap(m)
}
