// Command cudafind locates the CUDA toolkit installed on the host and prints
// what it found.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/adamkeys/cudafind"
)

var (
	verbose bool
	yamlOut bool
)

// output is the YAML shape of a discovery report.
type output struct {
	Available  bool              `yaml:"available"`
	Roots      []string          `yaml:"roots"`
	Components map[string]string `yaml:"components"`
}

var rootCmd = &cobra.Command{
	Use:   "cudafind",
	Short: "Locate the installed CUDA toolkit",
	Long: `cudafind searches environment overrides, PATH, the dynamic linker's
default directories, and conventional install locations for a CUDA toolkit,
then resolves and loads its component libraries.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := log.New(os.Stderr)
		if verbose {
			logger.SetLevel(log.DebugLevel)
		}

		report, err := cudafind.Discover(cudafind.Options{Logger: logger})
		if err != nil {
			logger.Error("discovery failed", "err", err)
		}

		if yamlOut {
			out := output{
				Available:  report.Available,
				Roots:      report.Roots,
				Components: make(map[string]string),
			}
			for _, name := range report.Components() {
				rp, _ := report.Lookup(name)
				out.Components[name] = rp.Path
			}
			data, err := yaml.Marshal(out)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), string(data))
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "available: %v\n", report.Available)
			for _, root := range report.Roots {
				fmt.Fprintf(cmd.OutOrStdout(), "root: %s\n", root)
			}
			for _, name := range report.Components() {
				rp, _ := report.Lookup(name)
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", name, rp.Path)
			}
		}

		if !report.Available {
			os.Exit(1)
		}
		return nil
	},
}

func init() {
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log discovery decisions")
	rootCmd.Flags().BoolVar(&yamlOut, "yaml", false, "print the report as YAML")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
