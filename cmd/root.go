/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"log"
	"os"

	"github.com/spf13/cobra"
)

var cfgFile string
var assumeYes bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "dayspark",
	Short: "A personal daily journal for notes, tasks, moods and photos",
	Long: `DaySpark keeps a small daily journal: notes, quick logs, photos, a schedule,
tasks and moods, with a streak of consecutive active days and a memories feed.

Data lives in a local JSON file by default; SQLite and Redis are also supported.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		log.Printf("❌ %v", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $DAYSPARK_CONFIG or <user config dir>/dayspark/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&assumeYes, "yes", "y", false, "Skip confirmation prompts")
}

// initConfig points the config lookup at --config when given.
func initConfig() {
	if cfgFile != "" {
		os.Setenv("DAYSPARK_CONFIG", cfgFile)
	}
}
