// Command corpuschat builds a JSON corpus from a public catalogue and chats
// with a remote model grounded on it.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/custodia-labs/corpuschat/internal/adapters/driven/ai"
	"github.com/custodia-labs/corpuschat/internal/adapters/driven/config/env"
	"github.com/custodia-labs/corpuschat/internal/adapters/driven/config/file"
	"github.com/custodia-labs/corpuschat/internal/adapters/driven/storage/jsonfile"
	"github.com/custodia-labs/corpuschat/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/corpuschat/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/corpuschat/internal/adapters/driving/cli"
	"github.com/custodia-labs/corpuschat/internal/connectors"
	"github.com/custodia-labs/corpuschat/internal/core/domain"
	"github.com/custodia-labs/corpuschat/internal/core/ports/driven"
	"github.com/custodia-labs/corpuschat/internal/core/ports/driving"
	"github.com/custodia-labs/corpuschat/internal/core/services"
	"github.com/custodia-labs/corpuschat/internal/logger"
	"github.com/custodia-labs/corpuschat/internal/mappers"
)

// version is set via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cleanup, err := wire()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Setup error: %v\n", err)
		return 1
	}
	defer cleanup()

	cli.SetVersion(version)
	if err := cli.Execute(ctx); err != nil {
		return 1
	}
	return 0
}

// wire builds the adapters and services and hands them to the CLI.
func wire() (func(), error) {
	envCfg, home, err := loadEnv()
	if err != nil {
		return nil, err
	}

	configStore, err := file.NewConfigStore(home)
	if err != nil {
		return nil, fmt.Errorf("loading settings: %w", err)
	}

	prompts, err := file.NewPromptStore(filepath.Join(home, "prompts"))
	if err != nil {
		return nil, fmt.Errorf("loading prompts: %w", err)
	}

	var runs driven.RunStore
	closeRuns := func() {}
	if db, err := sqlite.NewStore(filepath.Join(home, "data")); err != nil {
		logger.Warn("run history unavailable, keeping it in memory: %v", err)
		runs = memory.NewRunStore()
	} else {
		runs = db.RunStore()
		closeRuns = func() { _ = db.Close() }
	}

	models := ai.NewModelFactory(envCfg.APIKeys())
	if envCfg.OpenAIBaseURL != "" {
		models.SetBaseURL(domain.AIProviderOpenAI, envCfg.OpenAIBaseURL)
	}
	keyStore := env.NewKeyStore(filepath.Join(home, env.DotEnvFile), envCfg.APIKeys(), models.SetAPIKey)

	corpus := jsonfile.NewStore()
	builder := services.NewCorpusBuilder(connectors.NewFactory(), mappers.NewDefaultRegistry(), corpus, runs)
	grounding := services.NewGroundingService(corpus, prompts)

	settings := services.NewSettingsService(configStore, models)
	settings.SetOverrides(services.SettingsOverrides{
		Provider: envCfg.Provider,
		Model:    envCfg.Model,
		BaseURL:  envCfg.BaseURL,
	})

	cli.Configure(cli.Services{
		Ingest:   builder,
		Corpus:   services.NewCorpusService(corpus),
		Settings: settings,
		StartChat: func(ctx context.Context, llm domain.LLMSettings, corpusPath string) (driving.ChatService, error) {
			session, err := services.NewChatSession(ctx, models, grounding, llm, corpusPath)
			if err != nil {
				return nil, err
			}
			return session, nil
		},
		APIKeys: keyStore,
	})

	return closeRuns, nil
}

// loadEnv reads the working directory .env first so CORPUSCHAT_HOME can be
// set there, then the .env in the config directory.
func loadEnv() (*env.Config, string, error) {
	cfg, err := env.Load(env.DotEnvFile)
	if err != nil {
		return nil, "", fmt.Errorf("loading environment: %w", err)
	}

	home := cfg.Home
	if home == "" {
		userHome, err := os.UserHomeDir()
		if err != nil {
			return nil, "", fmt.Errorf("getting home directory: %w", err)
		}
		home = filepath.Join(userHome, ".corpuschat")
	}

	cfg, err = env.Load(env.DefaultFiles(home)...)
	if err != nil {
		return nil, "", fmt.Errorf("loading environment: %w", err)
	}
	return cfg, home, nil
}
