package vision

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/azure"
	"github.com/openai/openai-go/option"
	"github.com/rs/zerolog/log"
)

const defaultOpenAIModel = "gpt-4o-mini"

// gpt-4o-mini pricing (per million tokens), used as the cost estimate for
// both the OpenAI and Azure endpoints.
const (
	openaiInputPricePerMillion  = 0.15
	openaiOutputPricePerMillion = 0.60
)

// OpenAIQuerier answers vision queries through OpenAI-compatible chat
// completions. It backs both the "openai" and "azure" providers; the
// difference is the client options and the default model, which for Azure is
// the deployment name.
type OpenAIQuerier struct {
	client openai.Client
	model  string
	label  string
}

// NewOpenAIQuerier creates a querier against the public OpenAI API. An empty
// model selects the package default.
func NewOpenAIQuerier(apiKey, model string) *OpenAIQuerier {
	if model == "" {
		model = defaultOpenAIModel
	}
	return &OpenAIQuerier{
		client: openai.NewClient(option.WithAPIKey(apiKey)),
		model:  model,
		label:  "openai",
	}
}

// NewAzureQuerier creates a querier against an Azure OpenAI deployment. The
// deployment name doubles as the model identifier.
func NewAzureQuerier(endpoint, apiVersion, apiKey, deployment string) *OpenAIQuerier {
	return &OpenAIQuerier{
		client: openai.NewClient(
			azure.WithEndpoint(endpoint, apiVersion),
			azure.WithAPIKey(apiKey),
		),
		model: deployment,
		label: "azure",
	}
}

// Query implements the Querier interface using a chat completion with the
// image attached as a base64 data URL.
func (o *OpenAIQuerier) Query(ctx context.Context, req Request) (string, error) {
	imgData, err := os.ReadFile(req.ImagePath)
	if err != nil {
		return "", fmt.Errorf("failed to read staged image: %w", err)
	}

	model := o.model
	if req.Model != "" {
		model = req.Model
	}
	mimeType := req.MIMEType
	if mimeType == "" {
		mimeType = "image/jpeg"
	}
	dataURL := fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(imgData))

	resp, err := o.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage([]openai.ChatCompletionContentPartUnionParam{
				openai.TextContentPart(req.Prompt),
				openai.ImageContentPart(openai.ChatCompletionContentPartImageImageURLParam{
					URL: dataURL,
				}),
			}),
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to create chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", nil
	}

	log.Info().
		Str("provider", o.label).
		Str("model", model).
		Int64("inputTokens", resp.Usage.PromptTokens).
		Int64("outputTokens", resp.Usage.CompletionTokens).
		Float64("costUSD", calculateCost(resp.Usage.PromptTokens, resp.Usage.CompletionTokens, openaiInputPricePerMillion, openaiOutputPricePerMillion)).
		Msg("vision llm call")

	return resp.Choices[0].Message.Content, nil
}
