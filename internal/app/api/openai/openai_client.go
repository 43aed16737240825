package openai

import (
	"sync"

	"github.com/sashabaranov/go-openai"
)

var (
	once      sync.Once
	singleton *openai.Client
)

// GetClient returns a shared client for the given API key. The key comes from
// the validated configuration, which has already trimmed it; the environment
// is not consulted here.
func GetClient(apiKey string) *openai.Client {
	once.Do(func() {
		singleton = openai.NewClient(apiKey)
	})

	return singleton
}
