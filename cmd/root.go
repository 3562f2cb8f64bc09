package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/passcheck/internal/app"
	"github.com/abhisek/passcheck/internal/config"
	"github.com/abhisek/passcheck/internal/model"
	"github.com/abhisek/passcheck/internal/predict"
)

var rootCmd = &cobra.Command{
	Use:   "passcheck",
	Short: "Student pass/fail predictor",
	Long:  "Passcheck predicts whether a student is likely to pass or fail from exam scores and background.",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, _, err := loadPredictor(cmd)
		if err != nil {
			return err
		}
		return app.Run(app.Options{Predictor: p})
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to YAML config file")
	rootCmd.PersistentFlags().String("model", "", "Path to classifier artifact (overrides PASSCHECK_MODEL)")
	rootCmd.PersistentFlags().String("scaler", "", "Path to scaler artifact (overrides PASSCHECK_SCALER)")

	rootCmd.AddCommand(predictCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveConfig loads the config file and environment, then applies the
// --model and --scaler flags on top.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}
	if p, _ := cmd.Flags().GetString("model"); p != "" {
		cfg.ModelPath = p
	}
	if p, _ := cmd.Flags().GetString("scaler"); p != "" {
		cfg.ScalerPath = p
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// loadPredictor resolves the config and builds a Predictor over the shared
// artifacts.
func loadPredictor(cmd *cobra.Command) (*predict.Predictor, config.Config, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, config.Config{}, err
	}
	art, err := model.Shared(cfg.Paths())
	if err != nil {
		return nil, config.Config{}, err
	}
	return predict.FromArtifacts(art), cfg, nil
}
