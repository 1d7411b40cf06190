package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/msto63/mdwx/core/config"
	"github.com/msto63/mdwx/core/log"
)

// options is shared by all sub-commands of one root command
type options struct {
	cfgFile string
	verbose bool

	cfg    *config.Config
	logger *log.Logger
}

// NewRootCmd builds the mdwx command tree
func NewRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "mdwx",
		Short: "meinDENKWERK Utilities",
		Long: `mdwx bündelt die Hilfsfunktionen von meinDENKWERK als Kommandozeile.

Befehle:
  hash     - Prüfsummen von Dateien (SHA-256/384/512)
  shuffle  - Zeilen zufällig mischen
  chunk    - Datei in Blöcke fester Größe zerlegen
  convert  - Werte parsen und konvertieren`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(cmd.ErrOrStderr())
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "Config-Datei (default: $MDWX_CONFIG oder ./mdwx.toml)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Verbose Output")

	rootCmd.AddCommand(
		newVersionCmd(),
		newHashCmd(opts),
		newShuffleCmd(opts),
		newChunkCmd(opts),
		newConvertCmd(),
	)
	return rootCmd
}

// Execute runs the root command and prints a failure to stderr
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		printError(rootCmd.ErrOrStderr(), err)
		return err
	}
	return nil
}

func (o *options) load(stderr io.Writer) error {
	cfg, err := config.Load(o.cfgFile)
	if err != nil {
		return err
	}
	if o.verbose {
		cfg.General.LogLevel = "debug"
	}

	o.cfg = cfg
	o.logger = cfg.Logger(stderr)
	o.logger.Debug("configuration loaded", log.Fields{
		"chunk_size":  cfg.IO.ChunkSize,
		"algorithm":   cfg.Crypto.Algorithm,
		"parallelism": cfg.Execution.Parallelism,
	})
	return nil
}

func printError(w io.Writer, err error) {
	fmt.Fprintln(w, newStyles(w).err.Render("Fehler: "+err.Error()))
}
