package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"linky/internal/app"
	"linky/internal/observability"
)

var (
	configPath string
	linksDir   string
	imagesDir  string
	verbose    bool

	cfg    app.Config
	wire   *app.Wire
	logger zerolog.Logger
)

func Execute() error {
	root := &cobra.Command{
		Use:   "linky",
		Short: "Capture Linktree pages into a Jekyll links site",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger = observability.InitLogger("linky", verbose)

			var err error
			cfg, err = app.Load(configPath)
			if err != nil {
				return err
			}
			if linksDir != "" {
				cfg.LinkDir = linksDir
			}
			if imagesDir != "" {
				cfg.ImageDir = imagesDir
			}

			wire, err = app.NewWire(cfg, logger)
			return err
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", app.DefaultConfigFile, "config file")
	root.PersistentFlags().StringVar(&linksDir, "links-dir", "", "override link file directory")
	root.PersistentFlags().StringVar(&imagesDir, "images-dir", "", "override image directory")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(initCmd(), captureCmd(), reorderCmd())
	return root.Execute()
}
