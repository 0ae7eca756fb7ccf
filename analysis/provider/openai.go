package provider

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/responses"
)

// openAIMaxOutputTokens bounds the response size.
const openAIMaxOutputTokens = 2500

// OpenAIClient implements Model with the OpenAI Responses API. When the request
// carries a schema the response is constrained to it in strict mode.
type OpenAIClient struct {
	settings Settings
}

func NewOpenAI(s Settings) *OpenAIClient {
	return &OpenAIClient{settings: s}
}

func (o *OpenAIClient) Complete(ctx context.Context, req Request) (string, error) {
	if strings.TrimSpace(o.settings.APIKey) == "" {
		return "", missingKeyError(OpenAI)
	}
	if strings.TrimSpace(o.settings.Model) == "" {
		return "", errors.New("openai: model is empty")
	}

	opts := []option.RequestOption{
		option.WithAPIKey(o.settings.APIKey),
		option.WithMaxRetries(0),
	}
	if o.settings.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(o.settings.BaseURL))
	}
	client := openai.NewClient(opts...)

	params := responses.ResponseNewParams{
		Model:           o.settings.Model,
		MaxOutputTokens: openai.Int(openAIMaxOutputTokens),
		Temperature:     openai.Float(Temperature),
		Input: responses.ResponseNewParamsInputUnion{
			OfInputItemList: []responses.ResponseInputItemUnionParam{
				responses.ResponseInputItemParamOfMessage(req.Prompt, responses.EasyInputMessageRoleUser),
			},
		},
	}
	if req.Schema != nil {
		name := req.SchemaName
		if name == "" {
			name = "Response"
		}
		params.Text = responses.ResponseTextConfigParam{
			Format: responses.ResponseFormatTextConfigUnionParam{
				OfJSONSchema: &responses.ResponseFormatTextJSONSchemaConfigParam{
					Name:   name,
					Schema: req.Schema,
					Strict: openai.Bool(true),
					Type:   "json_schema",
				},
			},
		}
	}

	resp, err := client.Responses.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("openai: responses: %w", err)
	}
	return resp.OutputText(), nil
}
