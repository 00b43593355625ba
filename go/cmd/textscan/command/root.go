/*
 * textscan Root Command
 *
 * Wires the cobra command tree and the viper configuration binding. Every
 * flag can also be set through the environment with the TEXTSCAN_ prefix,
 * for example TEXTSCAN_FORMAT=yaml.
 */

package command

import (
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// fs is the filesystem the commands read input from. Tests swap in an
// in-memory filesystem.
var fs afero.Fs = afero.NewOsFs()

// GetRootCommand creates and returns the root command with all subcommands.
func GetRootCommand() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("TEXTSCAN")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	root := &cobra.Command{
		Use:           "textscan",
		Short:         "Inspect how the scanning primitives break text into tokens",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().String("format", "text", "Output format, one of: text, yaml")
	_ = v.BindPFlag("format", root.PersistentFlags().Lookup("format"))

	root.AddCommand(newTokensCommand(v))
	return root
}
