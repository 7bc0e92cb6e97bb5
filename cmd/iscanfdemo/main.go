// Command iscanfdemo exercises the iscanf package against standard input
// or an explicit string, for manual testing and as a worked example of the
// public API.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hisahi/scanf/iscanf"
)

var (
	flagInput      string
	flagVerbose    bool
	flagBinary     bool
	flagASCII      bool
	flagSecure     bool
	flagNoLongLong bool
	flagNoFloat    bool
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "iscanfdemo FORMAT",
		Short: "Scan formatted text using the iscanf engine",
		Long: "iscanfdemo reads from --input (or standard input if omitted) and\n" +
			"applies a scanf-style format string, printing each scanned field.",
		Args: cobra.ExactArgs(1),
		RunE: runScan,
	}
	cmd.Flags().StringVar(&flagInput, "input", "", "literal string to scan instead of stdin")
	cmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug-level logging")
	cmd.Flags().BoolVar(&flagBinary, "binary", false, "enable %b binary integer conversions")
	cmd.Flags().BoolVar(&flagASCII, "ascii", false, "set Options.ASCII (not read by the engine; classification is unchanged)")
	cmd.Flags().BoolVar(&flagSecure, "secure", false, "require an explicit width on %s and %[ directives")
	cmd.Flags().BoolVar(&flagNoLongLong, "no-long-long", false, "treat the ll length modifier as l")
	cmd.Flags().BoolVar(&flagNoFloat, "no-float", false, "disable floating point conversions")

	viper.BindPFlag("input", cmd.Flags().Lookup("input"))
	viper.BindPFlag("verbose", cmd.Flags().Lookup("verbose"))
	viper.BindPFlag("binary", cmd.Flags().Lookup("binary"))
	viper.BindPFlag("ascii", cmd.Flags().Lookup("ascii"))
	viper.BindPFlag("secure", cmd.Flags().Lookup("secure"))
	viper.BindPFlag("no-long-long", cmd.Flags().Lookup("no-long-long"))
	viper.BindPFlag("no-float", cmd.Flags().Lookup("no-float"))
	return cmd
}

// destsForFormat builds one destination pointer per non-suppressed, non-'%%'
// directive in format, typed by the directive's conversion verb, so the
// demo can accept arbitrary formats from the command line without the
// caller wiring up Go types by hand.
func destsForFormat(format string) []interface{} {
	var dests []interface{}
	for i := 0; i < len(format); i++ {
		if format[i] != '%' || i+1 >= len(format) {
			continue
		}
		j := i + 1
		suppressed := false
		if j < len(format) && format[j] == '*' {
			suppressed = true
			j++
		}
		for j < len(format) && format[j] >= '0' && format[j] <= '9' {
			j++
		}
		for j < len(format) && strings.ContainsRune("hlLjzt", rune(format[j])) {
			j++
		}
		if j >= len(format) {
			break
		}
		verb := format[j]
		if verb == '[' {
			for j < len(format) && format[j] != ']' {
				j++
			}
		}
		i = j
		if verb == '%' || suppressed {
			continue
		}
		switch verb {
		case 'd', 'u', 'i', 'o', 'x', 'X', 'b', 'n':
			dests = append(dests, new(int64))
		case 'e', 'E', 'f', 'F', 'g', 'G', 'a', 'A':
			dests = append(dests, new(float64))
		case 'c':
			dests = append(dests, new(rune))
		case 'p':
			dests = append(dests, new(uintptr))
		default:
			dests = append(dests, new(string))
		}
	}
	return dests
}

func optionsFromViper() iscanf.Options {
	opt := iscanf.DefaultOptions()
	opt.Binary = viper.GetBool("binary")
	opt.ASCII = viper.GetBool("ascii")
	opt.Secure = viper.GetBool("secure")
	opt.DisableLongLong = viper.GetBool("no-long-long")
	opt.DisableFloat = viper.GetBool("no-float")
	return opt
}

func runScan(cmd *cobra.Command, args []string) error {
	if viper.GetBool("verbose") {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	format := args[0]
	dests := destsForFormat(format)

	opt := optionsFromViper()
	log.Debug().Str("format", format).Int("dests", len(dests)).Msg("starting scan")

	var n int
	var err error
	if in := viper.GetString("input"); in != "" {
		n, err = iscanf.SscanfOpts(opt, in, format, dests...)
	} else {
		var sb strings.Builder
		if _, rerr := sb.ReadFrom(os.Stdin); rerr != nil {
			return rerr
		}
		n, err = iscanf.SscanfOpts(opt, sb.String(), format, dests...)
	}

	for i, d := range dests {
		if i >= n {
			break
		}
		switch v := d.(type) {
		case *string:
			fmt.Printf("field %d: %q\n", i, *v)
		case *int64:
			fmt.Printf("field %d: %d\n", i, *v)
		case *float64:
			fmt.Printf("field %d: %g\n", i, *v)
		case *rune:
			fmt.Printf("field %d: %q\n", i, *v)
		case *uintptr:
			fmt.Printf("field %d: 0x%x\n", i, *v)
		}
	}
	log.Info().Int("scanned", n).Msg("scan complete")
	if err != nil {
		return err
	}
	return nil
}

func main() {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if err := newRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("scan failed")
		os.Exit(1)
	}
}
