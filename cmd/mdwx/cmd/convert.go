package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/mdwx/core/error"
	"github.com/msto63/mdwx/utils/convertx"
)

// converters parse a value and render it, "<no value>" for blank input
var converters = map[string]func(string) (string, error){
	"int32":    render(convertx.ToInt32),
	"int64":    render(convertx.ToInt64),
	"uint64":   render(convertx.ToUint64),
	"float":    render(convertx.ToFloat64),
	"bool":     render(convertx.ToBool),
	"duration": render(convertx.ToDuration),
	"guid":     render(convertx.ToGUID),
}

func render[T fmt.Stringer](parse func(string) (T, error)) func(string) (string, error) {
	return func(s string) (string, error) {
		v, err := parse(s)
		if err != nil {
			return "", err
		}
		return v.String(), nil
	}
}

func converterNames() []string {
	names := make([]string, 0, len(converters))
	for name := range converters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func newConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <typ> <wert>",
		Short: "Parst einen Wert",
		Long: fmt.Sprintf(`Parst einen Wert mit den Konvertierungsfunktionen.
Leere Eingaben ergeben "<no value>".

Typen: %s`, strings.Join(converterNames(), ", ")),
		Args: cobra.ExactArgs(2),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			convert, ok := converters[strings.ToLower(args[0])]
			if !ok {
				return mdwerror.OutOfRange("typ", args[0])
			}
			result, err := convert(args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), result)
			return nil
		},
	}

	// values such as -5 are arguments, not shorthand flags
	cmd.Flags().SetInterspersed(false)
	return cmd
}
