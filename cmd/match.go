package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/job-matcher/internal/logger"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Match one candidate against one job and print the result",
	Run: func(cmd *cobra.Command, _ []string) {
		match(cmd)
	},
}

func init() {
	rootCmd.AddCommand(matchCmd)

	matchCmd.Flags().String("job", "", "job id or title from the catalog")
	matchCmd.Flags().String("vacancy", "", "hh.ru vacancy json file to match against")
	matchCmd.Flags().StringP("candidate", "c", "", "candidate profile file (yaml or json)")
	matchCmd.Flags().StringP("resume", "r", "", "resume file (txt, pdf or docx) appended to the candidate summary")

	matchCmd.MarkFlagRequired("candidate")
	matchCmd.MarkFlagsMutuallyExclusive("job", "vacancy")
}

func match(cmd *cobra.Command) {
	ctx := context.Background()

	zapLogger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		zapLogger.Fatal("getting a config", zap.Error(err))
	}

	engine, err := newEngine(ctx, config, zapLogger)
	if err != nil {
		zapLogger.Fatal("building the engine", zap.Error(err))
	}

	job, err := resolveJob(cmd, loadCatalog(config))
	if err != nil {
		zapLogger.Fatal("selecting a job", zap.Error(err))
	}

	candidatePath, _ := cmd.Flags().GetString("candidate")
	resumePath, _ := cmd.Flags().GetString("resume")
	candidate, err := loadCandidate(candidatePath, resumePath)
	if err != nil {
		zapLogger.Fatal("loading the candidate", zap.Error(err))
	}

	result, err := engine.ComputeMatch(ctx, job, candidate)
	if err != nil {
		zapLogger.Fatal("matching", zap.Error(err))
	}

	zapLogger.Info("match computed",
		append(logger.MatchFields(job.Title, candidate.ID),
			zap.Int("percentage", result.MatchPercentage),
			zap.String("semantic_source", string(result.SemanticSource)),
		)...,
	)

	pretty, _ := json.MarshalIndent(result, "", "  ")
	fmt.Println(string(pretty))
}
