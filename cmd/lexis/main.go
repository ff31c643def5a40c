// Command lexis answers factual questions from institution records, a
// built-in legal-code corpus, and user-uploaded documents.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/lexislabs/lexis-cli/internal/adapters/driven/ai"
	configfile "github.com/lexislabs/lexis-cli/internal/adapters/driven/config/file"
	"github.com/lexislabs/lexis-cli/internal/adapters/driven/fetch"
	"github.com/lexislabs/lexis-cli/internal/adapters/driven/loader/docx"
	"github.com/lexislabs/lexis-cli/internal/adapters/driven/loader/pdf"
	"github.com/lexislabs/lexis-cli/internal/adapters/driven/loader/plaintext"
	"github.com/lexislabs/lexis-cli/internal/adapters/driven/storage/sqlite"
	vecmem "github.com/lexislabs/lexis-cli/internal/adapters/driven/vectorindex/memory"
	"github.com/lexislabs/lexis-cli/internal/adapters/driving/cli"
	"github.com/lexislabs/lexis-cli/internal/chunker"
	"github.com/lexislabs/lexis-cli/internal/core/ports/driven"
	"github.com/lexislabs/lexis-cli/internal/core/services"
	"github.com/lexislabs/lexis-cli/internal/logger"
)

func main() {
	// Environment overrides (API keys) may live in a .env file.
	_ = godotenv.Load()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configStore, err := configfile.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("opening config store: %w", err)
	}

	settingsService := services.NewSettingsService(configStore, ai.NewConfigValidator())
	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}

	fetcher := fetch.New(fetch.WithTimeout(settings.Scrape.Timeout))
	catalog := services.NewDefaultCatalog()
	institution := services.NewInstitutionResolver(fetcher, catalog, settings.Scrape.BaseURL)

	svcs := cli.Services{
		Institution: institution,
		Settings:    settingsService,
	}

	// The QA services need both an embedding and an LLM provider. When
	// either is missing the commands that need them report it themselves.
	embedder, err := ai.CreateEmbeddingService(&settings.Embedding)
	if err != nil {
		logger.Warn("Embedding service unavailable: %v", err)
	}
	llm, err := ai.CreateLLMService(&settings.LLM)
	if err != nil {
		logger.Warn("LLM service unavailable: %v", err)
	}

	if embedder != nil && llm != nil {
		defer embedder.Close()
		defer llm.Close()

		splitter := chunker.New(
			chunker.WithChunkSize(settings.Retrieval.ChunkSize),
			chunker.WithOverlap(settings.Retrieval.ChunkOverlap),
		)
		newIndex := func() driven.VectorIndex { return vecmem.New() }
		loaders := []driven.DocumentLoader{pdf.New(), plaintext.New(), docx.New()}
		ingestor := services.NewIngestor(loaders, splitter, embedder, newIndex)

		qa := services.NewRetrievalQA(llm,
			services.WithTopK(settings.Retrieval.TopK),
			services.WithTemperature(settings.LLM.Temperature),
		)
		if prompts, promptErr := configfile.NewPromptStore(""); promptErr == nil {
			qa.SetPromptStore(prompts)
		}

		svcs.Corpus = services.NewCorpusQA(settings.Corpus.Path, ingestor, qa)

		var docStore driven.DocumentStore
		if store, storeErr := sqlite.NewStore(""); storeErr != nil {
			logger.Warn("Document store unavailable, documents will not persist: %v", storeErr)
		} else {
			defer store.Close()
			docStore = store
		}
		svcs.Document = services.NewDocumentQA(ingestor, qa, docStore, embedder, newIndex)
	}

	cli.SetServices(svcs)
	return cli.Execute()
}
