package summarizer

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/nguyentantai21042004/gptube/internal/config"
	"github.com/nguyentantai21042004/gptube/internal/logger"
)

// New creates the Summarizer selected by settings.LLM.Provider.
func New(settings config.LLMSettings, apiKey string, log logger.Logger) (Summarizer, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("api key is required")
	}

	switch settings.Provider {
	case config.ProviderOpenAI, "":
		return &openAISummarizer{
			apiKey:     apiKey,
			baseURL:    strings.TrimRight(settings.APIURL, "/"),
			model:      settings.Model,
			httpClient: &http.Client{Timeout: settings.Timeout},
			logger:     log,
		}, nil
	case config.ProviderGemini:
		return &geminiSummarizer{
			apiKey:  apiKey,
			baseURL: settings.APIURL,
			model:   settings.Model,
			logger:  log,
		}, nil
	default:
		return nil, fmt.Errorf("unknown llm provider %q", settings.Provider)
	}
}
