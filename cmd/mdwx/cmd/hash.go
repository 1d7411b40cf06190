package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/mdwx/core/error"
	"github.com/msto63/mdwx/core/execution"
	"github.com/msto63/mdwx/core/log"
	"github.com/msto63/mdwx/utils/cryptox"
)

func newHashCmd(opts *options) *cobra.Command {
	var algorithm string

	cmd := &cobra.Command{
		Use:   "hash [dateien...]",
		Short: "Berechnet Prüfsummen",
		Long: `Berechnet die Prüfsumme jeder Datei, ohne Argumente von stdin.

Mehrere Dateien werden parallel gelesen (execution.parallelism).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := algorithm
			if name == "" {
				name = opts.cfg.Crypto.Algorithm
			}
			alg, err := cryptox.ParseAlgorithm(name)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(args) == 0 {
				sum, err := cryptox.SumHex(alg, cmd.InOrStdin())
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s  -\n", sum)
				return nil
			}

			sums, err := hashFiles(cmd.Context(), opts, alg, args)
			for i, sum := range sums {
				if sum != "" {
					fmt.Fprintf(out, "%s  %s\n", sum, args[i])
				}
			}
			return err
		},
	}

	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", "", "sha256, sha384 oder sha512 (default: crypto.algorithm)")
	return cmd
}

// hashFiles returns one hex digest per path, empty for paths that failed
func hashFiles(ctx context.Context, opts *options, alg cryptox.Algorithm, paths []string) ([]string, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	sums := make([]string, len(paths))

	task, err := execution.StartTask(ctx, func(ctx context.Context) (*[]string, error) {
		err := execution.ForEachItemParallel(ctx, paths, sums, opts.cfg.Execution.Parallelism,
			func(ic execution.ItemContext[string, []string]) error {
				sum, err := hashFile(alg, ic.Item())
				if err != nil {
					opts.logger.LogError(err)
					return err
				}
				ic.State()[ic.Index()] = sum
				opts.logger.Debug("hashed", log.Fields{"path": ic.Item(), "algorithm": string(alg)})
				return nil
			})
		return &sums, err
	})
	if err != nil {
		return nil, err
	}

	timeout := opts.cfg.Execution.Timeout.Duration
	err = task.WaitWithTimeout(ctx, timeout)
	if !task.IsCompleted() {
		task.Cancel()
		return nil, mdwerror.Wrap(err, "hashing did not finish").
			WithCode(mdwerror.CodeTimeout).
			WithDetail("timeout", timeout.String())
	}
	return sums, err
}

func hashFile(alg cryptox.Algorithm, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", mdwerror.Wrap(err, "cannot open file").
			WithCode(mdwerror.CodeIOError).
			WithDetail("path", path)
	}
	defer f.Close()

	sum, err := cryptox.SumHex(alg, f)
	if err != nil {
		return "", mdwerror.Wrap(err, "cannot hash file").WithDetail("path", path)
	}
	return sum, nil
}
