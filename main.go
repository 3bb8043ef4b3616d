package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/go-stack/stack"
	"github.com/spf13/cobra"

	"github.com/KennyACSAI/pearlmap/app"
	"github.com/KennyACSAI/pearlmap/app/core"
)

var (
	configPath string
	peoplePath string
)

var rootCmd = &cobra.Command{
	Use:   "pearlmap",
	Short: "An interactive map of your relationships",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, people, err := loadInputs()
		if err != nil {
			return err
		}

		defer func() {
			if r := recover(); r != nil {
				color.Red("pearlmap crashed: %v", r)
				fmt.Fprintln(os.Stderr, stack.Trace().TrimRuntime())
				os.Exit(1)
			}
		}()

		app.Main(cfg, people)
		return nil
	},
}

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Print the computed layout and edge set as JSON, without a window",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, people, err := loadInputs()
		if err != nil {
			return err
		}
		out, err := app.HeadlessLayout(cfg, people)
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	},
}

func loadInputs() (core.Config, []core.Person, error) {
	cfg, err := core.LoadConfig(configPath)
	if err != nil {
		return cfg, nil, err
	}

	people := core.SamplePeople()
	if peoplePath != "" {
		people, err = core.LoadPeople(peoplePath)
		if err != nil {
			return cfg, nil, fmt.Errorf("loading people: %w", err)
		}
	}
	return cfg, people, nil
}

func main() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "TOML file overriding layout/camera/motion constants")
	rootCmd.PersistentFlags().StringVar(&peoplePath, "people", "", "JSON file with the people snapshot (default: built-in sample)")
	rootCmd.AddCommand(layoutCmd)
	rootCmd.SilenceUsage = true

	if err := rootCmd.Execute(); err != nil {
		color.Red("pearlmap: %v", err)
		os.Exit(1)
	}
}
