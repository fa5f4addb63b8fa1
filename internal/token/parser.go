package token

import (
	"context"
	"encoding/json"
	"fmt"
	"iter"
	"net/http"
	"os"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/glossa-dev/glossa/internal/cache"
	"github.com/glossa-dev/glossa/internal/model"
	"github.com/glossa-dev/glossa/internal/util"
	"github.com/glossa-dev/glossa/internal/worker"
)

// parserPrompt pins the annotation contract: token records only, no
// prose, no extra pipeline stages.
const parserPrompt = `You are a dependency parser. Tokenize the user text and return ONLY a JSON object of the form {"tokens": [{"text": "...", "lemma": "...", "pos": "...", "dep": "...", "head": 0}, ...]}. Use Universal Dependencies POS tags and spaCy dependency labels. "head" is the 0-based index of the token's syntactic parent in the same array; the root token points at itself. Do not include sentiment, entities, or any other annotation.`

// ParserBackend is the rich backend: an adapter around a pretrained
// dependency parser exposed through an OpenAI-compatible endpoint.
// Responses are requested at temperature zero and cached by text
// hash, and calls are rate-limited per endpoint host.
type ParserBackend struct {
	client   *openai.Client
	model    string
	timeout  time.Duration
	endpoint string
	limiter  *worker.Limiter
	cache    cache.Cache
	cacheTTL time.Duration
}

// NewParserBackend creates the rich backend. It fails when no API key
// is configured, which callers treat as the signal to fall back to
// the rule backend.
func NewParserBackend(cfg model.ParserConfig, cacheCfg model.CacheConfig) (*ParserBackend, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("parser API key is required")
	}

	timeout := time.Duration(cfg.Timeout) * time.Second
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}
	clientConfig.HTTPClient = &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			Proxy: util.NewProxyFunc(cfg.HTTPProxy, cfg.HTTPSProxy, cfg.NoProxy),
		},
	}

	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 2
	}

	backend := &ParserBackend{
		client:   openai.NewClientWithConfig(clientConfig),
		model:    cfg.Model,
		timeout:  timeout,
		endpoint: clientConfig.BaseURL,
		limiter:  worker.NewLimiter(rps, cfg.Burst),
	}

	if cacheCfg.Enabled {
		backend.cache = cache.NewMemoryCache(cacheCfg.TTL, cacheCfg.CleanupInterval)
		backend.cacheTTL = cacheCfg.TTL
	}

	return backend, nil
}

// Tokens yields the annotated sequence for text. Annotation failures
// yield an empty sequence; the budget logic in Tokenizer cannot
// preempt a backend stuck inside a single request, so the request
// itself carries the HTTP timeout.
func (p *ParserBackend) Tokens(text string) iter.Seq[model.Token] {
	return func(yield func(model.Token) bool) {
		tokens, err := p.parse(context.Background(), text)
		if err != nil {
			fmt.Fprintf(os.Stderr, "parser backend: %v\n", err)
			return
		}
		for _, tok := range tokens {
			if !yield(tok) {
				return
			}
		}
	}
}

type parseResponse struct {
	Tokens []model.Token `json:"tokens"`
}

func (p *ParserBackend) parse(ctx context.Context, text string) ([]model.Token, error) {
	key := cache.Key(text)
	if p.cache != nil {
		if raw, ok := p.cache.Get(key); ok {
			var cached parseResponse
			if err := json.Unmarshal(raw, &cached); err == nil {
				return cached.Tokens, nil
			}
		}
	}

	if err := p.limiter.Wait(ctx, p.endpoint); err != nil {
		return nil, fmt.Errorf("rate limit: %w", err)
	}

	parserModel := p.model
	if parserModel == "" {
		parserModel = openai.GPT4oMini
	}

	ctxWithTimeout, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	resp, err := p.client.CreateChatCompletion(ctxWithTimeout, openai.ChatCompletionRequest{
		Model:       parserModel,
		Temperature: 0,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: parserPrompt},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("annotation request: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("annotation request: empty response")
	}

	var parsed parseResponse
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &parsed); err != nil {
		return nil, fmt.Errorf("decode annotations: %w", err)
	}

	if p.cache != nil {
		if raw, err := json.Marshal(parsed); err == nil {
			_ = p.cache.Set(key, raw, p.cacheTTL)
		}
	}

	return parsed.Tokens, nil
}
