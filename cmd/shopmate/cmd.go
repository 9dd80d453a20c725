package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/shopmate/shopmate/internal"
	"github.com/shopmate/shopmate/pkg/testutils"
)

var (
	log *logrus.Logger

	cfgFile     string
	showVersion bool
	dumpConfig  bool
	generateKey bool
)

var cmd = &cobra.Command{
	Use:   "shopmate",
	Short: "shopmate is a rule-based shopping assistant that classifies intents, extracts entities, and answers storefront queries",
	Run:   func(cmd *cobra.Command, args []string) { run() },
}

var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Test utilities",
}

var createFixturesCmd = &cobra.Command{
	Use:   "create-fixtures",
	Short: "Create a fake product catalog for testing",
	Run: func(cmd *cobra.Command, args []string) {
		fixtureCount, _ := cmd.Flags().GetInt("count")
		outputDir, _ := cmd.Flags().GetString("outputDir")
		if err := testutils.GenerateFixtureData(fixtureCount, outputDir); err != nil {
			log.Fatalf("Failed to create fixtures: %v", err)
		}
		fmt.Println("Fixtures created successfully.")
	},
}

func init() {
	testCmd.AddCommand(createFixturesCmd)
	cmd.AddCommand(testCmd)

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default config.yaml)")
	cmd.PersistentFlags().BoolVarP(&showVersion, "version", "v", false, "print version number")
	cmd.PersistentFlags().BoolVarP(&dumpConfig, "dump-config", "d", false, "dump config")
	cmd.PersistentFlags().
		BoolVarP(&generateKey, "generate-token", "g", false, "generate a new JWT token")

	createFixturesCmd.Flags().Int("count", 25, "Number of products to generate")
	createFixturesCmd.Flags().String("outputDir", "./test_data", "Path to output fixtures")
}

// Execute executes the root cobra command.
func Execute() {
	log = internal.GetLogger()
	log.SetLevel(logrus.InfoLevel)

	err := cmd.Execute()

	if err != nil {
		os.Exit(1)
	}
}
