// Package gemini wraps the Google GenAI SDK behind a small interface so the
// rest of the codebase depends on our own request/response types rather than
// SDK ones.
package gemini

import (
	"context"
	"time"

	"github.com/rotisserie/eris"
	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

const defaultModel = "gemini-2.5-flash"

// Client performs structured text generation against the Gemini API.
type Client interface {
	GenerateContent(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)
}

// GenerateRequest is our own request type for GenerateContent.
type GenerateRequest struct {
	Model       string
	Prompt      string
	System      string   // persona / system instruction
	Schema      *Schema  // constrained JSON output; nil for free text
	WebSearch   bool     // enable Google Search grounding
	Temperature *float64
}

// GenerateResponse is the flattened completion result.
type GenerateResponse struct {
	Text string
}

// Schema describes the output structure the endpoint is contracted to honor.
type Schema struct {
	Type        SchemaType
	Description string
	Properties  map[string]*Schema
	Required    []string
	Items       *Schema
}

// SchemaType enumerates the JSON types used in output schemas.
type SchemaType string

const (
	TypeObject SchemaType = "object"
	TypeArray  SchemaType = "array"
	TypeString SchemaType = "string"
	TypeNumber SchemaType = "number"
)

// Option configures the client.
type Option func(*sdkClient)

// WithModel overrides the default model.
func WithModel(model string) Option {
	return func(c *sdkClient) {
		c.model = model
	}
}

// WithRateLimit throttles requests to n per minute. Zero disables the limiter.
func WithRateLimit(perMinute int) Option {
	return func(c *sdkClient) {
		if perMinute > 0 {
			c.limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), 1)
		}
	}
}

// sdkClient implements Client using the official google.golang.org/genai SDK.
type sdkClient struct {
	client  *genai.Client
	model   string
	limiter *rate.Limiter
}

// NewClient creates a Gemini client backed by the SDK.
func NewClient(ctx context.Context, apiKey string, opts ...Option) (Client, error) {
	sdk, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, eris.Wrap(err, "gemini: create client")
	}

	c := &sdkClient{
		client: sdk,
		model:  defaultModel,
	}
	for _, o := range opts {
		o(c)
	}
	return c, nil
}

func (c *sdkClient) GenerateContent(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, eris.Wrap(err, "gemini: rate limit wait")
		}
	}

	model := req.Model
	if model == "" {
		model = c.model
	}

	cfg := &genai.GenerateContentConfig{}
	if req.System != "" {
		cfg.SystemInstruction = genai.NewContentFromText(req.System, genai.RoleUser)
	}
	if req.Temperature != nil {
		cfg.Temperature = genai.Ptr(float32(*req.Temperature))
	}
	if req.WebSearch {
		cfg.Tools = []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}}
	}
	// The API rejects responseSchema combined with search grounding, so a
	// searching request falls back to prompt-level JSON instructions.
	if req.Schema != nil && !req.WebSearch {
		cfg.ResponseMIMEType = "application/json"
		cfg.ResponseSchema = toSDKSchema(req.Schema)
	}

	resp, err := c.client.Models.GenerateContent(ctx, model, genai.Text(req.Prompt), cfg)
	if err != nil {
		return nil, eris.Wrap(err, "gemini: generate content")
	}

	return &GenerateResponse{Text: resp.Text()}, nil
}

func toSDKSchema(s *Schema) *genai.Schema {
	if s == nil {
		return nil
	}

	out := &genai.Schema{
		Description: s.Description,
		Required:    s.Required,
		Items:       toSDKSchema(s.Items),
	}

	switch s.Type {
	case TypeObject:
		out.Type = genai.TypeObject
	case TypeArray:
		out.Type = genai.TypeArray
	case TypeNumber:
		out.Type = genai.TypeNumber
	default:
		out.Type = genai.TypeString
	}

	if len(s.Properties) > 0 {
		out.Properties = make(map[string]*genai.Schema, len(s.Properties))
		for k, v := range s.Properties {
			out.Properties[k] = toSDKSchema(v)
		}
	}

	return out
}
