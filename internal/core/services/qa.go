package services

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/lexislabs/lexis-cli/internal/core/domain"
	"github.com/lexislabs/lexis-cli/internal/core/ports/driven"
	"github.com/lexislabs/lexis-cli/internal/logger"
)

// defaultAnswerPrompt instructs the model to answer strictly from the
// supplied context. Used when no PromptStore is configured.
const defaultAnswerPrompt = `Answer the question using ONLY the context below.
If the context does not contain the answer, say so plainly.

Context:
%s

Question: %s

Answer:`

// maxContextChars bounds the concatenated retrieval context passed to
// the model in one generation request.
const maxContextChars = 8000

// Retry policy for the generation call.
const (
	maxGenerateRetries = 2
	retryBaseDelay     = 500 * time.Millisecond
)

// RetrievalQA answers questions against a DocumentIndex: retrieve
// top-K chunks, concatenate them into a bounded context, issue a single
// generation request.
type RetrievalQA struct {
	llm         driven.LLMService
	prompts     driven.PromptStore
	topK        int
	temperature float64
	retryDelay  time.Duration
}

// QAOption configures the retrieval QA engine.
type QAOption func(*RetrievalQA)

// WithTopK sets the number of chunks retrieved per question.
func WithTopK(k int) QAOption {
	return func(qa *RetrievalQA) {
		if k > 0 {
			qa.topK = k
		}
	}
}

// WithTemperature sets the generation temperature.
func WithTemperature(t float64) QAOption {
	return func(qa *RetrievalQA) {
		if t >= 0 {
			qa.temperature = t
		}
	}
}

// NewRetrievalQA creates a retrieval QA engine.
func NewRetrievalQA(llm driven.LLMService, opts ...QAOption) *RetrievalQA {
	qa := &RetrievalQA{
		llm:         llm,
		topK:        domain.DefaultTopK,
		temperature: domain.DefaultTemperature,
		retryDelay:  retryBaseDelay,
	}
	for _, opt := range opts {
		opt(qa)
	}
	return qa
}

// SetPromptStore sets the prompt store for loading the answer prompt.
// If unset, the hardcoded default prompt is used.
func (qa *RetrievalQA) SetPromptStore(store driven.PromptStore) {
	qa.prompts = store
}

// Answer retrieves relevant chunks for the question and asks the model
// to answer from them. When retrieval yields nothing (zero-score matches
// on an empty-ish index), the generation call still runs with empty
// context and the model's response is returned as-is.
func (qa *RetrievalQA) Answer(ctx context.Context, idx *DocumentIndex, question string) (string, error) {
	if qa.llm == nil {
		return "", domain.ErrLLMUnavailable
	}

	logger.Section("Retrieval QA")
	logger.Debug("Question: %q", question)

	results, err := idx.Search(ctx, question, qa.topK)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyIndex) {
			// Keep the baseline behaviour: generate with empty context
			// rather than short-circuiting locally.
			logger.Warn("Index is empty, generating with no context")
			results = nil
		} else {
			return "", err
		}
	}

	logger.Debug("Retrieved %d chunks", len(results))

	prompt := fmt.Sprintf(qa.answerPrompt(), buildContext(results), question)

	answer, err := qa.generateWithRetry(ctx, prompt)
	if err != nil {
		return "", err
	}
	return answer, nil
}

// answerPrompt returns the prompt template, preferring the store.
func (qa *RetrievalQA) answerPrompt() string {
	if qa.prompts != nil {
		if p, err := qa.prompts.Load(driven.PromptAnswer); err == nil && p != "" {
			return p
		}
	}
	return defaultAnswerPrompt
}

// buildContext concatenates chunk text in retrieval order, bounded by
// maxContextChars.
func buildContext(results []domain.ScoredChunk) string {
	var b strings.Builder
	for _, r := range results {
		if b.Len()+len(r.Chunk.Content) > maxContextChars {
			remaining := maxContextChars - b.Len()
			if remaining > 0 {
				b.WriteString(r.Chunk.Content[:remaining])
			}
			break
		}
		b.WriteString(r.Chunk.Content)
		b.WriteString("\n\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// generateWithRetry issues the generation call with up to two retries
// on transient failures, backing off exponentially. Auth and
// malformed-request errors are never retried.
func (qa *RetrievalQA) generateWithRetry(ctx context.Context, prompt string) (string, error) {
	opts := driven.GenerateOptions{Temperature: qa.temperature}

	var lastErr error
	for attempt := 0; attempt <= maxGenerateRetries; attempt++ {
		if attempt > 0 {
			delay := qa.retryDelay << (attempt - 1)
			logger.Debug("Generation retry %d after %s", attempt, delay)
			select {
			case <-ctx.Done():
				return "", fmt.Errorf("%w: %w", domain.ErrGenerationFailure, ctx.Err())
			case <-time.After(delay):
			}
		}

		answer, err := qa.llm.Generate(ctx, prompt, opts)
		if err == nil {
			if strings.TrimSpace(answer) == "" {
				lastErr = errors.New("model returned empty output")
				continue
			}
			return answer, nil
		}

		lastErr = err
		if !isTransient(err) {
			logger.Warn("Generation failed permanently: %v", err)
			break
		}
		logger.Warn("Transient generation failure: %v", err)
	}

	return "", fmt.Errorf("%w: %w", domain.ErrGenerationFailure, lastErr)
}

// isTransient reports whether a provider error is worth retrying.
// Timeouts and 5xx-class failures are transient; authentication and
// malformed-request failures are not.
func isTransient(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	if errors.Is(err, context.Canceled) {
		return false
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	msg := strings.ToLower(err.Error())
	for _, marker := range []string{"status 400", "status 401", "status 403", "api key", "invalid request", "authentication"} {
		if strings.Contains(msg, marker) {
			return false
		}
	}
	return true
}
