package main

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/careerfit/screening/pkg/logger"
	"github.com/careerfit/screening/pkg/training"
)

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Fit the vectorizer, classifier and label encoder on a labelled CSV",
	Run: func(cmd *cobra.Command, _ []string) {
		train()
	},
}

func init() {
	rootCmd.AddCommand(trainCmd)

	trainCmd.Flags().Int("max-features", 7000, "vocabulary size cap")
	trainCmd.Flags().Int("min-df", 2, "minimum documents a term must appear in")
	trainCmd.Flags().Float64("max-df", 0.9, "maximum share of documents a term may appear in")
	trainCmd.Flags().Int("epochs", 2000, "maximum training epochs")
	trainCmd.Flags().Float64("learning-rate", 0.5, "initial learning rate")
	trainCmd.Flags().Float64("test-share", 0.2, "held-out share for evaluation")
	trainCmd.Flags().Int64("seed", 42, "random seed for splitting and training")
	trainCmd.Flags().StringSlice("categories", nil, "restrict training to these categories")

	for _, f := range []string{"max-features", "min-df", "max-df", "epochs", "learning-rate", "test-share", "seed", "categories"} {
		if err := viper.BindPFlag(f, trainCmd.Flags().Lookup(f)); err != nil {
			log.Fatalf("binding %s flag: %v", f, err)
		}
	}
}

func train() {
	zlog, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	dataset := viper.GetString("dataset")
	if dataset == "" {
		zlog.Fatal("--dataset is required")
	}

	samples, err := training.LoadDataset(dataset)
	if err != nil {
		zlog.Fatal("loading dataset", zap.Error(err))
	}
	if allowed := viper.GetStringSlice("categories"); len(allowed) > 0 {
		samples = training.FilterCategories(samples, allowed)
	}
	zlog.Info("dataset loaded", zap.String("path", dataset), zap.Int("samples", len(samples)))

	opts := training.DefaultOptions()
	opts.Vectorizer.MaxFeatures = viper.GetInt("max-features")
	opts.Vectorizer.MinDocFreq = viper.GetInt("min-df")
	opts.Vectorizer.MaxDocShare = viper.GetFloat64("max-df")
	opts.Classifier.MaxEpochs = viper.GetInt("epochs")
	opts.Classifier.LearningRate = viper.GetFloat64("learning-rate")
	opts.Classifier.Seed = viper.GetInt64("seed")
	opts.TestShare = viper.GetFloat64("test-share")
	opts.Seed = viper.GetInt64("seed")

	bundle, report, err := training.Fit(samples, opts, zlog)
	if err != nil {
		zlog.Fatal("training failed", zap.Error(err))
	}

	modelDir := viper.GetString("model-dir")
	if err := bundle.Save(modelDir); err != nil {
		zlog.Fatal("saving artifacts", zap.String("dir", modelDir), zap.Error(err))
	}

	zlog.Info("artifacts saved",
		zap.String("dir", modelDir),
		zap.Int("vocabulary", bundle.Vectorizer.Dim()),
		zap.Strings("classes", bundle.Labels.Classes),
		zap.Float64("held_out_accuracy", report.Accuracy))
	log.Print("\n" + report.String())
}
