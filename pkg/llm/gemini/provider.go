package gemini

import (
	"context"
	"fmt"
	"sync"
	"time"

	"neurostudy-be/pkg/llm"

	"google.golang.org/genai"
)

const (
	providerName = "gemini"
	DefaultModel = "gemini-3-flash-preview"
	jsonMIMEType = "application/json"
)

// Provider talks to the Gemini API through the genai SDK. The API key is
// passed in explicitly; nothing here reads the environment.
type Provider struct {
	apiKey  string
	model   string
	timeout time.Duration

	once      sync.Once
	client    *genai.Client
	clientErr error
}

var _ llm.LLMProvider = &Provider{}

func NewProvider(apiKey, model string, timeout time.Duration) *Provider {
	if model == "" {
		model = DefaultModel
	}
	return &Provider{
		apiKey:  apiKey,
		model:   model,
		timeout: timeout,
	}
}

func (p *Provider) Name() string {
	return providerName
}

// HasCredential reports whether an API key was configured.
func (p *Provider) HasCredential() bool {
	return p.apiKey != ""
}

// getClient builds the SDK client on first use, after the credential check.
func (p *Provider) getClient(ctx context.Context) (*genai.Client, error) {
	p.once.Do(func() {
		p.client, p.clientErr = genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  p.apiKey,
			Backend: genai.BackendGeminiAPI,
		})
	})
	if p.clientErr != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", p.clientErr)
	}
	return p.client, nil
}

func (p *Provider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	if !p.HasCredential() {
		return "", llm.ErrMissingCredential
	}

	options := llm.ApplyOptions(opts...)
	config := buildConfig(options)

	contents := make([]*genai.Content, 0, len(history))
	for _, msg := range history {
		switch msg.Role {
		case "system":
			config.SystemInstruction = genai.NewContentFromText(msg.Content, genai.RoleUser)
		case "assistant", "model":
			contents = append(contents, genai.NewContentFromText(msg.Content, genai.RoleModel))
		default:
			contents = append(contents, genai.NewContentFromText(msg.Content, genai.RoleUser))
		}
	}

	model := p.model
	if options.Model != "" {
		model = options.Model
	}

	client, err := p.getClient(ctx)
	if err != nil {
		return "", llm.NewGenerationError(providerName, err)
	}

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	resp, err := client.Models.GenerateContent(ctx, model, contents, config)
	if err != nil {
		return "", llm.NewGenerationError(providerName, err)
	}

	return resp.Text(), nil
}

func (p *Provider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return p.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, opts...)
}

func buildConfig(options *llm.Options) *genai.GenerateContentConfig {
	config := &genai.GenerateContentConfig{}
	if options.Temperature > 0 {
		config.Temperature = genai.Ptr(float32(options.Temperature))
	}
	if options.MaxTokens > 0 {
		config.MaxOutputTokens = int32(options.MaxTokens)
	}
	if options.Format == llm.FormatJSON {
		config.ResponseMIMEType = jsonMIMEType
	}
	return config
}
