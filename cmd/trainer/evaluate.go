package main

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/careerfit/screening/pkg/logger"
	"github.com/careerfit/screening/pkg/model"
	"github.com/careerfit/screening/pkg/training"
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Score saved artifacts against a labelled CSV",
	Run: func(cmd *cobra.Command, _ []string) {
		evaluate()
	},
}

func init() {
	rootCmd.AddCommand(evaluateCmd)
}

func evaluate() {
	zlog, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	dataset := viper.GetString("dataset")
	if dataset == "" {
		zlog.Fatal("--dataset is required")
	}

	bundle, err := model.LoadBundle(viper.GetString("model-dir"))
	if err != nil {
		zlog.Fatal("loading artifacts", zap.String("dir", viper.GetString("model-dir")), zap.Error(err))
	}

	samples, err := training.LoadDataset(dataset)
	if err != nil {
		zlog.Fatal("loading dataset", zap.Error(err))
	}
	zlog.Info("evaluating", zap.String("path", dataset), zap.Int("samples", len(samples)))

	report := training.Evaluate(bundle, samples)
	zlog.Info("evaluation finished",
		zap.Float64("accuracy", report.Accuracy),
		zap.Int("correct", report.Correct),
		zap.Int("total", report.Total))
	log.Print("\n" + report.String())
}
