package main

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const app = "trainer"

var rootCmd = &cobra.Command{
	Use:   app,
	Short: "trainer fits and evaluates the resume classification artifacts",
}

func init() {
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")
	rootCmd.PersistentFlags().String("dataset", "", "path to the labelled resume CSV (category, resume_text)")
	rootCmd.PersistentFlags().String("model-dir", "models", "directory holding the model artifacts")

	for _, f := range []string{"debug", "json", "dataset", "model-dir"} {
		if err := viper.BindPFlag(f, rootCmd.PersistentFlags().Lookup(f)); err != nil {
			log.Fatalf("binding %s flag: %v", f, err)
		}
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
