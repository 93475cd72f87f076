// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/poiesic/matchpoint"
	"github.com/poiesic/matchpoint/ai"
	"github.com/poiesic/matchpoint/core"
	"github.com/poiesic/matchpoint/ingest"
	"github.com/poiesic/matchpoint/pipeline"
)

func main() {
	app := &cli.App{
		Name:  "matchpoint",
		Usage: "Job and candidate matching engine",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "run",
				Usage:  "Ingest source collections and compute rankings for every job",
				Action: runCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "jobs",
						Usage:    "Path to the jobs JSON collection",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "applicants",
						Usage:    "Path to the applicants JSON collection",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "prospects",
						Usage: "Path to the prospects JSON collection (optional)",
					},
					&cli.StringFlag{
						Name:  "embedding-host",
						Usage: "Embedding service host URL",
						Value: "http://localhost:11434/v1",
					},
					&cli.StringFlag{
						Name:  "embedding-model",
						Usage: "Embedding model name",
						Value: "embeddinggemma",
					},
					&cli.IntFlag{
						Name:  "batch-size",
						Usage: "Number of texts to embed in each provider call",
						Value: 100,
					},
					&cli.IntFlag{
						Name:  "shortlist-limit",
						Usage: "Number of candidates that survive the shortlist per job",
						Value: 1000,
					},
					&cli.IntFlag{
						Name:  "pool-size",
						Usage: "Worker count for concurrent job matching (0 = auto)",
					},
					&cli.IntFlag{
						Name:  "max-retries",
						Usage: "Maximum retry attempts for embedding calls",
						Value: 3,
					},
					&cli.DurationFlag{
						Name:  "retry-delay",
						Usage: "Base delay for exponential backoff",
						Value: 1 * time.Second,
					},
				},
			},
			{
				Name:   "rank",
				Usage:  "Print the stored ranking for one job",
				Action: rankCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "job",
						Aliases:  []string{"j"},
						Usage:    "Job id to print the ranking for",
						Required: true,
					},
					&cli.IntFlag{
						Name:    "top",
						Aliases: []string{"n"},
						Usage:   "Number of candidates to print",
						Value:   10,
					},
				},
			},
			{
				Name:   "evaluate",
				Usage:  "Compute the top-N hit rate against recorded hirings",
				Action: evaluateCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.IntFlag{
						Name:    "top",
						Aliases: []string{"n"},
						Usage:   "Ranking depth to count hits within",
						Value:   10,
					},
				},
			},
			{
				Name:   "reset",
				Usage:  "Clear pipeline checkpoints so the next run starts from scratch",
				Action: resetCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func runCommand(c *cli.Context) error {
	ctx := context.Background()

	aiConfig := ai.NewConfig(
		ai.WithHost(c.String("embedding-host")),
		ai.WithModel(c.String("embedding-model")),
	)
	if err := aiConfig.Validate(); err != nil {
		return fmt.Errorf("invalid AI configuration: %w", err)
	}

	engine, err := matchpoint.NewEngine(c.String("db"), matchpoint.WithAIConfig(aiConfig))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer engine.Close()

	loader := ingest.NewLoader()
	corpus, err := loader.LoadCorpus(c.String("jobs"), c.String("applicants"), c.String("prospects"))
	if err != nil {
		return fmt.Errorf("loading source collections: %w", err)
	}

	opts := []pipeline.Option{
		pipeline.WithEmbedBatchSize(c.Int("batch-size")),
		pipeline.WithShortlistLimit(c.Int("shortlist-limit")),
		pipeline.WithRetry(c.Int("max-retries"), c.Duration("retry-delay")),
		pipeline.WithProgressWriter(os.Stderr),
	}
	if size := c.Int("pool-size"); size > 0 {
		opts = append(opts, pipeline.WithPoolSize(size))
	}

	p, err := engine.NewPipeline(opts...)
	if err != nil {
		return fmt.Errorf("failed to create pipeline: %w", err)
	}
	defer p.Release()

	fmt.Fprintf(os.Stderr, "Database: %s\n", c.String("db"))
	fmt.Fprintf(os.Stderr, "Jobs: %d, applicants: %d, hirings: %d\n",
		len(corpus.Jobs), len(corpus.Candidates), len(corpus.Hirings))
	fmt.Fprintf(os.Stderr, "Embedding host: %s\n", c.String("embedding-host"))
	fmt.Fprintf(os.Stderr, "Embedding model: %s\n", c.String("embedding-model"))
	fmt.Fprintln(os.Stderr)

	if err := p.Run(ctx, pipeline.Input{
		Jobs:       corpus.Jobs,
		Candidates: corpus.Candidates,
		Hirings:    corpus.Hirings,
	}); err != nil {
		return fmt.Errorf("pipeline run failed: %w", err)
	}

	return nil
}

func rankCommand(c *cli.Context) error {
	ctx := context.Background()

	engine, err := openReadOnly(c)
	if err != nil {
		return err
	}
	defer engine.Close()

	jobID := core.RecordID(c.String("job"))
	ranked, err := engine.RankedCandidates(ctx, jobID, c.Int("top"))
	if err != nil {
		return fmt.Errorf("failed to load ranking: %w", err)
	}

	fmt.Printf("Top %d candidates for job %s:\n\n", len(ranked), jobID)
	for i, candidate := range ranked {
		hiredMark := ""
		if candidate.Hired {
			hiredMark = " [hired]"
		}
		fmt.Printf("%3d. %-10s %.4f  %s%s\n",
			i+1, candidate.CandidateId, candidate.Detail.FinalScore, candidate.Name, hiredMark)
		fmt.Printf("     semantic=%.3f keywords=%.3f location=%.3f professional=%.3f academic=%.3f english=%.3f spanish=%.3f\n",
			candidate.Detail.Semantic, candidate.Detail.Keywords, candidate.Detail.Location,
			candidate.Detail.ProfessionalLevel, candidate.Detail.AcademicLevel,
			candidate.Detail.EnglishLevel, candidate.Detail.SpanishLevel)
	}
	return nil
}

func evaluateCommand(c *cli.Context) error {
	ctx := context.Background()

	engine, err := openReadOnly(c)
	if err != nil {
		return err
	}
	defer engine.Close()

	evaluation, err := engine.NewEvaluator().Evaluate(ctx, c.Int("top"))
	if err != nil {
		return fmt.Errorf("evaluation failed: %w", err)
	}

	fmt.Printf("Jobs with hirings: %d\n", evaluation.Jobs)
	fmt.Printf("Hired candidates:  %d\n", evaluation.Hires)
	fmt.Printf("Hits in top %d:    %d\n", evaluation.TopN, evaluation.Hits)
	fmt.Printf("Hit rate:          %.2f%%\n", evaluation.HitRate()*100)
	return nil
}

func resetCommand(c *cli.Context) error {
	ctx := context.Background()

	engine, err := openReadOnly(c)
	if err != nil {
		return err
	}
	defer engine.Close()

	p, err := engine.NewPipeline()
	if err != nil {
		return fmt.Errorf("failed to create pipeline: %w", err)
	}
	defer p.Release()

	if err := p.Reset(ctx); err != nil {
		return fmt.Errorf("reset failed: %w", err)
	}
	fmt.Fprintln(os.Stderr, "Pipeline checkpoints cleared.")
	return nil
}

// openReadOnly opens the engine for commands that never call the embedding
// provider. The default config satisfies validation without contacting the
// host.
func openReadOnly(c *cli.Context) (*matchpoint.Engine, error) {
	engine, err := matchpoint.NewEngine(c.String("db"))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return engine, nil
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
