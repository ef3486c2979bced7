// This binary computes the linker and preprocessor command lines for
// Haiku targets.
//
// Optional linker variables:
// - main.ConfigName: Name of the configuration to use.
//   See config.go for the supported values.
// - main.CIncludeDirs: Colon separated C include directories that replace
//   the Haiku system header directories.
//
// Examples:
// - print the link command for a shared library without running it:
//		haiku_driver link -- -shared a.o -o liba.so -###
// - print the system include arguments for C++:
//		haiku_driver includes -- --driver-mode=g++
// - use an alternate configuration file:
//		haiku_driver --config-file=haiku.toml link -- main.o
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "haiku_driver",
		Short:         "Haiku target configuration for the compiler driver",
		Args:          userArgs(cobra.NoArgs),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			colorMode, err := cmd.Flags().GetString("color")
			if err != nil {
				return err
			}
			return applyColorMode(colorMode)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	// A driver flag given before "--" ends up here.
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return newUserErrorf("%s (pass driver arguments after --)", err)
	})
	rootCmd.PersistentFlags().String("config", "", "configuration name (default "+ConfigName+")")
	rootCmd.PersistentFlags().String("config-file", "", "TOML file overriding the configuration")
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "link [flags] -- [driver args]",
		Short: "Build the linker command and run it",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithConfig(cmd, args, callLinker)
		},
	})
	rootCmd.AddCommand(&cobra.Command{
		Use:   "includes [flags] -- [driver args]",
		Short: "Print the system include arguments for the preprocessor",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithConfig(cmd, args, callIncludes)
		},
	})
	rootCmd.AddCommand(&cobra.Command{
		Use:   "config",
		Short: "Print the effective target configuration as TOML",
		Args:  userArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfigFromFlags(cmd)
			if err != nil {
				return err
			}
			return writeConfigFile(cmd.OutOrStdout(), cfg)
		},
	})
	rootCmd.AddCommand(&cobra.Command{
		Use:   "log FILE",
		Short: "Print the commands recorded in a " + commandLogEnvVar + " file",
		Args:  userArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmds, err := readCommandLogFile(args[0])
			if err != nil {
				return newUserErrorf("failed to read command log: %s", err)
			}
			for _, c := range cmds {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %q -> %s\n", c.Path, c.Args, c.Output)
			}
			return nil
		},
	})
	return rootCmd
}

// userArgs reports positional argument errors as user errors.
func userArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return newUserErrorf("%s", err)
		}
		return nil
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		printDriverError(os.Stderr, err)
		os.Exit(1)
	}
}

func runWithConfig(cmd *cobra.Command, args []string, call func(env, *config, *command) int) error {
	cfg, err := loadConfigFromFlags(cmd)
	if err != nil {
		return err
	}
	env, err := newProcessEnv()
	if err != nil {
		return err
	}
	// Note: call will exec the linker. Only in case of an error or when
	// nothing is executed will this os.Exit be called.
	os.Exit(call(env, cfg, &command{Path: cmd.CommandPath(), Args: args}))
	return nil
}

func loadConfigFromFlags(cmd *cobra.Command) (*config, error) {
	configName, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	cfg, err := getRealConfig(configName)
	if err != nil {
		return nil, err
	}
	configFile, err := cmd.Flags().GetString("config-file")
	if err != nil {
		return nil, err
	}
	if configFile != "" {
		if err := loadConfigFile(configFile, cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func applyColorMode(mode string) error {
	switch mode {
	case "auto":
		color.NoColor = !term.IsTerminal(int(os.Stderr.Fd()))
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	default:
		return newUserErrorf("invalid --color value %q (expected auto, on or off)", mode)
	}
	return nil
}
