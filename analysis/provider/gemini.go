package provider

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// GeminiClient implements Model with the Gemini API.
type GeminiClient struct {
	settings Settings
}

func NewGemini(s Settings) *GeminiClient {
	return &GeminiClient{settings: s}
}

func (g *GeminiClient) Complete(ctx context.Context, req Request) (string, error) {
	if strings.TrimSpace(g.settings.APIKey) == "" {
		return "", missingKeyError(Gemini)
	}
	if strings.TrimSpace(g.settings.Model) == "" {
		return "", errors.New("gemini: model is empty")
	}

	cc := &genai.ClientConfig{
		APIKey:  g.settings.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if g.settings.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: g.settings.BaseURL}
	}
	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return "", fmt.Errorf("gemini: new client: %w", err)
	}

	gc := &genai.GenerateContentConfig{
		Temperature:      genai.Ptr[float32](Temperature),
		ResponseMIMEType: "application/json",
	}
	if req.Schema != nil {
		gc.ResponseSchema = geminiSchema(req.Schema)
	}
	resp, err := client.Models.GenerateContent(ctx, g.settings.Model, genai.Text(req.Prompt), gc)
	if err != nil {
		return "", fmt.Errorf("gemini: generate content: %w", err)
	}
	if resp == nil || len(resp.Candidates) == 0 {
		return "", errors.New("gemini: response has no candidates")
	}
	return resp.Text(), nil
}

// geminiSchema converts a reflected JSON schema into the OpenAPI subset Gemini
// accepts. Keywords it does not support, such as additionalProperties, are dropped.
func geminiSchema(m map[string]any) *genai.Schema {
	s := &genai.Schema{}
	if t, ok := m[typeKey].(string); ok {
		s.Type = genai.Type(strings.ToUpper(t))
	}
	if d, ok := m["description"].(string); ok {
		s.Description = d
	}
	if enum, ok := m["enum"].([]any); ok {
		for _, v := range enum {
			if str, ok := v.(string); ok {
				s.Enum = append(s.Enum, str)
			}
		}
	}
	switch req := m[requiredKey].(type) {
	case []string:
		s.Required = append([]string(nil), req...)
	case []any:
		for _, v := range req {
			if str, ok := v.(string); ok {
				s.Required = append(s.Required, str)
			}
		}
	}
	if props, ok := m[propertiesKey].(map[string]any); ok {
		s.Properties = make(map[string]*genai.Schema, len(props))
		for name, p := range props {
			if sub, ok := p.(map[string]any); ok {
				s.Properties[name] = geminiSchema(sub)
			}
		}
	}
	if items, ok := m[itemsKey].(map[string]any); ok {
		s.Items = geminiSchema(items)
	}
	return s
}
