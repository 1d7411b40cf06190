package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/mdwx/core/error"
	"github.com/msto63/mdwx/utils/cryptox"
	"github.com/msto63/mdwx/utils/iox"
)

func newChunkCmd(opts *options) *cobra.Command {
	var (
		size   int
		digest bool
	)

	cmd := &cobra.Command{
		Use:   "chunk <datei>",
		Short: "Zerlegt eine Datei in Blöcke",
		Long: `Liest eine Datei in Blöcken fester Größe und gibt Anzahl und Größe aus.
Nur der letzte Block kann kürzer sein.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("size") {
				size = opts.cfg.IO.ChunkSize
			}

			f, err := os.Open(args[0])
			if err != nil {
				return mdwerror.Wrap(err, "cannot open file").
					WithCode(mdwerror.CodeIOError).
					WithDetail("path", args[0])
			}
			defer f.Close()

			chunks, err := iox.ReadChunks(f, size)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			st := newStyles(out)
			fmt.Fprintln(out, st.title.Render(fmt.Sprintf("%s (Blockgröße %d)", args[0], size)))

			var count, total int
			for chunk, err := range chunks {
				if err != nil {
					return err
				}
				line := fmt.Sprintf("  Block %d: %d Bytes", count, len(chunk))
				if digest {
					sum, err := cryptox.SHA384Hex(chunk)
					if err != nil {
						return err
					}
					line += "  " + sum
				}
				fmt.Fprintln(out, line)
				count++
				total += len(chunk)
			}

			fmt.Fprintln(out, st.muted.Render(fmt.Sprintf("%d Blöcke, %d Bytes", count, total)))
			return nil
		},
	}

	cmd.Flags().IntVarP(&size, "size", "s", iox.DefaultChunkSize, "Blockgröße in Bytes (default: io.chunk_size)")
	cmd.Flags().BoolVar(&digest, "digest", false, "SHA-384 je Block ausgeben")
	return cmd
}
