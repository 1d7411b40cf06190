package cmd

import (
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/mdwx/core/error"
	"github.com/msto63/mdwx/core/log"
	"github.com/msto63/mdwx/utils/collectionx"
	"github.com/msto63/mdwx/utils/iox"
	"github.com/msto63/mdwx/utils/stringx"
)

type shuffleFlags struct {
	seed      uint64
	fair      bool
	randomize bool
}

func newShuffleCmd(opts *options) *cobra.Command {
	var flags shuffleFlags

	cmd := &cobra.Command{
		Use:   "shuffle [datei]",
		Short: "Mischt Zeilen zufällig",
		Long: `Mischt die Zeilen einer Datei (ohne Argument: stdin).

Standard ist das einfache Vertauschen mit einer beliebigen Position.
--fair verwendet Fisher-Yates, --randomize sortiert nach Zufallsschlüsseln.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("seed") {
				flags.seed = opts.cfg.Random.Seed
			}
			if !cmd.Flags().Changed("fair") {
				flags.fair = opts.cfg.Random.Fair
			}

			in := cmd.InOrStdin()
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return mdwerror.Wrap(err, "cannot open file").
						WithCode(mdwerror.CodeIOError).
						WithDetail("path", args[0])
				}
				defer f.Close()
				in = f
			}

			lines, err := shuffleLines(in, flags)
			if err != nil {
				return err
			}
			opts.logger.Debug("shuffled", log.Fields{"lines": len(lines), "fair": flags.fair, "seed": flags.seed})

			out := cmd.OutOrStdout()
			for _, line := range lines {
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}

	cmd.Flags().Uint64Var(&flags.seed, "seed", 0, "Startwert für reproduzierbare Reihenfolge (0 = zufällig)")
	cmd.Flags().BoolVar(&flags.fair, "fair", false, "Fisher-Yates statt einfachem Vertauschen")
	cmd.Flags().BoolVar(&flags.randomize, "randomize", false, "Nach Zufallsschlüsseln sortieren")
	cmd.MarkFlagsMutuallyExclusive("fair", "randomize")
	return cmd
}

func shuffleLines(r io.Reader, flags shuffleFlags) ([]string, error) {
	text, err := iox.ReadAllString(r)
	if err != nil {
		return nil, err
	}
	lines := stringx.SplitLines(text)
	if lines == nil {
		lines = []string{}
	}

	var rng collectionx.RandomSource
	if flags.seed != 0 {
		rng = collectionx.NewRandomSource(flags.seed)
	}

	switch {
	case flags.randomize:
		seq, err := collectionx.Randomize(slices.Values(lines), rng)
		if err != nil {
			return nil, err
		}
		return slices.Collect(seq), nil
	case flags.fair:
		err = collectionx.ShuffleFair(lines, rng)
	default:
		err = collectionx.Shuffle(lines, rng)
	}
	return lines, err
}
