package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/job-matcher/internal/ai/gemini"
	"github.com/spigell/job-matcher/internal/catalog"
	"github.com/spigell/job-matcher/internal/jobsource"
	"github.com/spigell/job-matcher/internal/logger"
	"github.com/spigell/job-matcher/internal/matching"
	"github.com/spigell/job-matcher/internal/resume"
	"github.com/spigell/job-matcher/internal/secrets"
	"github.com/spigell/job-matcher/internal/similarity"
)

var errNoJob = errors.New("a job is required: pass --job or --vacancy")

// newEngine wires the engine from config. Problems with the embedding
// service never stop the command; matching continues on lexical similarity.
func newEngine(ctx context.Context, config *Config, log *zap.Logger) (*matching.Engine, error) {
	idf, err := similarity.IDFByName(config.Matching.IDF)
	if err != nil {
		return nil, err
	}
	provider := similarity.New(nil, similarity.Options{IDF: idf})

	embedder, err := newEmbedder(ctx, config, log)
	switch {
	case err != nil:
		log.Warn("embedding similarity disabled", zap.Error(err))
	case embedder != nil:
		opts := similarity.Options{IDF: idf, Logger: log}
		if g := config.AI.Gemini; g != nil {
			opts.Timeout = g.Timeout
			opts.RequestsPerSecond = g.RequestsPerSecond
		}
		provider = similarity.New(embedder, opts)
	}

	return matching.NewEngine(config.Matching,
		matching.WithProvider(provider),
		matching.WithLogger(log),
	)
}

func newEmbedder(ctx context.Context, config *Config, log *zap.Logger) (similarity.Embedder, error) {
	if config.AI == nil || !config.AI.Enabled {
		log.Info("embedding similarity is not enabled, using lexical similarity")
		return nil, nil
	}
	if config.AI.Gemini == nil {
		return nil, errors.New("gemini configuration is required when ai is enabled")
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name:  "gemini api key",
		Value: config.AI.Gemini.APIKey,
		File:  config.AI.Gemini.APIKeyFile,
	})
	if err != nil {
		return nil, fmt.Errorf("%w (set ai.gemini.api-key-file or GEMINI_API_KEY_FILE)", err)
	}

	embedder, err := gemini.NewEmbedder(ctx, apiKey, config.AI.Gemini.Model, log)
	if err != nil {
		return nil, err
	}

	cacheOpts := similarity.CacheOptions{
		Namespace: embedder.Model(),
		Logger:    logger.WithCommonFields(log, gemini.Provider, embedder.Model()),
	}
	if config.Cache != nil {
		cacheOpts.TTL = config.Cache.TTL
		if url := strings.TrimSpace(config.Cache.RedisURL); url != "" {
			rdb, err := similarity.ConnectRedis(ctx, url)
			if err != nil {
				log.Warn("embedding cache: redis unavailable, memory only", zap.Error(err))
			} else {
				cacheOpts.Redis = rdb
				log.Info("embedding cache: redis connected")
			}
		}
	}

	return similarity.NewCachedEmbedder(embedder, cacheOpts), nil
}

func loadCatalog(config *Config) *catalog.Catalog {
	if len(config.Jobs) == 0 {
		return catalog.Default()
	}
	return catalog.FromRecords(config.Jobs)
}

// resolveJob picks the posting from --vacancy, --job or, on a terminal, an interactive prompt.
func resolveJob(cmd *cobra.Command, jobs *catalog.Catalog) (*matching.JobRequirement, error) {
	if path, _ := cmd.Flags().GetString("vacancy"); path != "" {
		loaded, err := jobsource.LoadVacancyFile(path)
		if err != nil {
			return nil, err
		}
		return &loaded[0], nil
	}

	if ref, _ := cmd.Flags().GetString("job"); ref != "" {
		return jobs.Find(ref)
	}

	if !interactive() {
		return nil, errNoJob
	}
	return promptJob(jobs)
}

func promptJob(jobs *catalog.Catalog) (*matching.JobRequirement, error) {
	items := make([]string, 0, jobs.Len())
	for _, job := range jobs.Jobs() {
		items = append(items, fmt.Sprintf("%s %s", job.ID, job.Title))
	}

	jobPrompt := promptui.Select{
		Label: "Choose a job and press ENTER",
		Items: items,
	}

	idx, _, err := jobPrompt.Run()
	if err != nil {
		return nil, err
	}
	return jobs.Find(jobs.Jobs()[idx].ID)
}

func interactive() bool {
	info, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

// loadCandidate reads a résumé-parse record (yaml, json or toml) and
// optionally appends the text of a résumé file to its summary.
func loadCandidate(path, resumePath string) (*matching.CandidateProfile, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read candidate %q: %w", path, err)
	}

	candidate := matching.DecodeCandidate(v.AllSettings())
	if candidate.ID == "" {
		candidate.ID = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	if resumePath != "" {
		text, err := resume.ExtractFile(resumePath)
		if err != nil {
			return nil, err
		}
		candidate.SummaryText = strings.TrimSpace(candidate.SummaryText + " " + text)
	}

	return &candidate, nil
}
