package genai

//go:generate go run go.uber.org/mock/mockgen -source=./genai.go -destination=./mocks/genai_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"time"
	"zentravel/config"
	"zentravel/infras/otel"
	"zentravel/shared/constant"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"
)

const (
	RoleUser  = "user"
	RoleModel = "model"
)

// ErrNoCandidates marks a 2xx reply that carried no generated text, which
// callers treat differently from a transport failure.
var ErrNoCandidates = errors.New("generative endpoint returned no candidates")

// Content is one turn of the conversation forwarded to the model.
type Content struct {
	Role string
	Text string
}

type part struct {
	Text string `json:"text"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type generationConfig struct {
	Temperature float64 `json:"temperature"`
}

type generateRequest struct {
	Contents          []content        `json:"contents"`
	SystemInstruction *content         `json:"systemInstruction,omitempty"`
	GenerationConfig  generationConfig `json:"generationConfig"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

type Client interface {
	GenerateContent(ctx context.Context, systemInstruction string, history []Content) (string, error)
}

type client struct {
	rest        *resty.Client
	otel        otel.Otel
	apiKey      string
	model       string
	temperature float64
}

func New(cfg *config.Config, ot otel.Otel) Client {
	rest := resty.New().
		SetBaseURL(cfg.External.GenAI.BaseURL).
		SetTimeout(time.Duration(cfg.External.GenAI.TimeoutSeconds) * time.Second)

	return &client{
		rest:        rest,
		otel:        ot,
		apiKey:      cfg.External.GenAI.APIKey,
		model:       cfg.External.GenAI.Model,
		temperature: cfg.External.GenAI.Temperature,
	}
}

// GenerateContent implements Client. The whole conversation history is sent
// on every call; the endpoint is stateless.
func (c *client) GenerateContent(ctx context.Context, systemInstruction string, history []Content) (text string, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".genai.GenerateContent")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute("model", c.model)

	body := generateRequest{
		GenerationConfig: generationConfig{Temperature: c.temperature},
	}

	if systemInstruction != "" {
		body.SystemInstruction = &content{Parts: []part{{Text: systemInstruction}}}
	}

	for _, turn := range history {
		body.Contents = append(body.Contents, content{
			Role:  turn.Role,
			Parts: []part{{Text: turn.Text}},
		})
	}

	result := generateResponse{}

	resp, err := c.rest.R().
		SetContext(ctx).
		SetHeader(constant.RequestHeaderContentType, constant.ContentTypeJSON).
		SetQueryParam("key", c.apiKey).
		SetBody(body).
		SetResult(&result).
		Post(fmt.Sprintf("/v1beta/models/%s:generateContent", c.model))

	if err != nil {
		log.Error().Err(err).Str("GenAIClient", "GenerateContent").Msg("failed to call generative endpoint")

		return "", fmt.Errorf("failed to call generative endpoint: %w", err)
	}

	if resp.IsError() {
		err = fmt.Errorf("generative endpoint returned status %d", resp.StatusCode())
		log.Error().Err(err).Str("GenAIClient", "GenerateContent").Msg("generative endpoint error response")

		return "", err
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		err = ErrNoCandidates

		return "", err
	}

	return result.Candidates[0].Content.Parts[0].Text, nil
}
