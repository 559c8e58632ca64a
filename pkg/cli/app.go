package cli

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/atmoforge/atmoctl/pkg/config"
	"github.com/atmoforge/atmoctl/pkg/data"
	"github.com/atmoforge/atmoctl/pkg/logging"
)

const (
	name         = "atmoctl"
	appConfigKey = "app-config"

	formatJSON = "json"
	formatYAML = "yaml"
)

var (
	version = "v0.0.1-default"
	commit  = ""
	date    = ""

	outputFormat = formatJSON

	debugFlag = &cli.BoolFlag{
		Name:  "debug",
		Usage: "Prints verbose logs (optional, default: false)",
	}

	dirFlag = &cli.StringFlag{
		Name:  "dir",
		Usage: fmt.Sprintf("App directory holding config, model artifact, and history (optional, defaults to $HOME/.%s)", name),
	}

	formatFlag = &cli.StringFlag{
		Name:  "format",
		Usage: "Output format for list commands [json, yaml]",
		Value: formatJSON,
	}
)

// Execute creates and runs the CLI application.
func Execute() {
	logging.Init(false)

	app := newApp()
	if err := app.Run(os.Args); err != nil {
		log.Fatalf("fatal error: %v", err)
	}
}

type appConfig struct {
	Dir  string
	Conf *config.Config
	DB   *sql.DB
}

func getConfig(c *cli.Context) *appConfig {
	return c.App.Metadata[appConfigKey].(*appConfig)
}

func newApp() *cli.App {
	return &cli.App{
		Name:                 name,
		Version:              fmt.Sprintf("%s (%s - %s)", version, commit, date),
		Compiled:             time.Now(),
		EnableBashCompletion: true,
		HideHelpCommand:      true,
		Usage:                "CLI for exoplanet atmospheric composition prediction",
		Flags: []cli.Flag{
			debugFlag,
			dirFlag,
			formatFlag,
		},
		Commands: []*cli.Command{
			trainCmd,
			predictCmd,
			historyCmd,
		},
		Before: func(c *cli.Context) error {
			if c.Bool(debugFlag.Name) {
				logging.Init(true)
			}

			f := c.String(formatFlag.Name)
			if f == formatYAML || f == "yml" {
				outputFormat = formatYAML
			}

			dir := c.String(dirFlag.Name)
			if dir == "" {
				var err error
				dir, _, err = config.GetOrCreateHomeDir(name)
				if err != nil {
					return fmt.Errorf("resolving app dir: %w", err)
				}
			}

			conf, err := config.ReadOrCreate(dir)
			if err != nil {
				return fmt.Errorf("reading config: %w", err)
			}

			dbPath := path.Join(dir, data.DataFileName)
			if err := data.Init(dbPath); err != nil {
				return fmt.Errorf("initializing database: %w", err)
			}

			db, err := data.GetDB(dbPath)
			if err != nil {
				return fmt.Errorf("opening database: %w", err)
			}

			c.App.Metadata[appConfigKey] = &appConfig{
				Dir:  dir,
				Conf: conf,
				DB:   db,
			}
			return nil
		},
		After: func(c *cli.Context) error {
			if cfg, ok := c.App.Metadata[appConfigKey].(*appConfig); ok && cfg.DB != nil {
				cfg.DB.Close()
			}
			return nil
		},
	}
}

func encode(v any) error {
	if outputFormat == formatYAML {
		return yaml.NewEncoder(os.Stdout).Encode(v)
	}
	e := json.NewEncoder(os.Stdout)
	e.SetIndent("", "  ")
	return e.Encode(v)
}
