package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"runtime"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/spigell/job-matcher/internal/logger"
	"github.com/spigell/job-matcher/internal/matching"
	"github.com/spigell/job-matcher/internal/screening"
)

type rankReport struct {
	RunID      string                   `json:"run_id"`
	Job        *matching.JobRequirement `json:"job"`
	Candidates int                      `json:"candidates"`
	Screening  []screening.Status       `json:"screening"`
	Shortlist  []*screening.Applicant   `json:"shortlist"`
}

var rankCmd = &cobra.Command{
	Use:   "rank CANDIDATE_FILE...",
	Short: "Match many candidates against one job and print the shortlist",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		rank(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(rankCmd)

	rankCmd.Flags().String("job", "", "job id or title from the catalog")
	rankCmd.Flags().String("vacancy", "", "hh.ru vacancy json file to match against")
	rankCmd.Flags().Int("minimum-match", 0, "drop candidates below this match percentage")
	rankCmd.Flags().Int("max-missing-skills", 0, "drop candidates missing more required skills than this")
	rankCmd.Flags().Int("top", 0, "keep only the best N candidates")
	rankCmd.Flags().StringSlice("skip-step", nil, "screening steps to disable (minimum_match, missing_skills, top)")

	rankCmd.MarkFlagsMutuallyExclusive("job", "vacancy")

	viper.BindPFlag("screening.minimum-match", rankCmd.Flags().Lookup("minimum-match"))
	viper.BindPFlag("screening.max-missing-skills", rankCmd.Flags().Lookup("max-missing-skills"))
	viper.BindPFlag("screening.top", rankCmd.Flags().Lookup("top"))
}

func rank(cmd *cobra.Command, paths []string) {
	ctx := context.Background()

	zapLogger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	runID := uuid.NewString()
	zapLogger = logger.WithFields(zapLogger, zap.String(logger.FieldRunID, runID))

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

	zapLogger.Info("ranking candidates", zap.String(logger.FieldJob, job.Title), zap.Int("candidates", len(paths)))

	applicants, err := matchAll(ctx, engine, job, paths, zapLogger)
	if err != nil {
		zapLogger.Fatal("matching candidates", zap.Error(err))
	}

	steps := screening.Default()
	skipped, _ := cmd.Flags().GetStringSlice("skip-step")
	for _, name := range skipped {
		if !screening.DisableByName(steps, name, "skipped from the command line") {
			zapLogger.Fatal("unknown screening step", zap.String("name", name))
		}
	}
	if screening.DisableForDerivedSkills(steps, applicants) {
		zapLogger.Info("missing skills check disabled, the job lists no required skills")
	}
	shortlist, err := screening.Run(ctx, &config.Screening, screening.Deps{Logger: zapLogger}, steps, applicants)
	if err != nil {
		zapLogger.Fatal("screening failed", zap.Error(err))
	}

	report := rankReport{
		RunID:      runID,
		Job:        job,
		Candidates: len(paths),
		Screening:  screening.Describe(steps),
		Shortlist:  shortlist.Items,
	}

	pretty, _ := json.MarshalIndent(report, "", "  ")
	fmt.Println(string(pretty))
}

// matchAll scores every candidate file concurrently. Files that cannot be
// read are logged and left out of the batch.
func matchAll(ctx context.Context, engine *matching.Engine, job *matching.JobRequirement, paths []string, log *zap.Logger) (*screening.Applicants, error) {
	results := make([]*screening.Applicant, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range paths {
		g.Go(func() error {
			candidate, err := loadCandidate(path, "")
			if err != nil {
				log.Warn("skipping candidate", zap.String("file", path), zap.Error(err))
				return nil
			}

			result, err := engine.ComputeMatch(gctx, job, candidate)
			if err != nil {
				return fmt.Errorf("candidate %s: %w", candidate.ID, err)
			}

			log.Debug("candidate scored",
				append(logger.MatchFields(job.Title, candidate.ID), zap.Int("percentage", result.MatchPercentage))...,
			)
			results[i] = &screening.Applicant{ID: candidate.ID, Name: candidate.Name, Result: result}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	applicants := &screening.Applicants{Items: make([]*screening.Applicant, 0, len(results))}
	for _, a := range results {
		if a != nil {
			applicants.Items = append(applicants.Items, a)
		}
	}
	return applicants, nil
}
