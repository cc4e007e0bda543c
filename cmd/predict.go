package main

import (
	"encoding/json"
	"math/rand/v2"
	"os"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/siamdraw/lotto-cli/internal/drawdate"
	"github.com/siamdraw/lotto-cli/internal/model"
	"github.com/siamdraw/lotto-cli/internal/predict"
	"github.com/siamdraw/lotto-cli/pkg/gemini"
)

var (
	predictMode string
	predictSeed int64
)

var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Generate a number set for the next draw",
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := model.ParseMode(predictMode)
		if err != nil {
			return err
		}

		drawDate := drawdate.Label(drawdate.NextDraw(time.Now()))

		var set *model.NumberSet
		if mode == model.ModeRandom {
			var opts []predict.RandomOption
			if predictSeed != 0 {
				opts = append(opts, predict.WithSource(rand.New(rand.NewPCG(uint64(predictSeed), uint64(predictSeed)))))
			}
			set = predict.RandomSet(drawDate, opts...)
		} else {
			if cfg.Gemini.Key == "" {
				return eris.New("gemini.key is required for prediction modes")
			}
			client, err := gemini.NewClient(cmd.Context(), cfg.Gemini.Key,
				gemini.WithModel(cfg.Gemini.Model),
				gemini.WithRateLimit(cfg.Gemini.RequestsPerMinute),
			)
			if err != nil {
				return err
			}

			svc := predict.NewService(client, cfg.Gemini.Model)
			set, err = svc.Predict(cmd.Context(), mode, drawDate)
			if err != nil {
				zap.L().Error("prediction failed",
					zap.String("mode", string(mode)),
					zap.String("kind", string(predict.KindOf(err))),
					zap.Error(err),
				)
				return err
			}
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(set)
	},
}

func init() {
	predictCmd.Flags().StringVar(&predictMode, "mode", "random", "generation mode: random, ai, stats, guru")
	predictCmd.Flags().Int64Var(&predictSeed, "seed", 0, "seed for random mode (0 = system entropy)")
	rootCmd.AddCommand(predictCmd)
}
