package anthropic

import (
	"context"
	"encoding/base64"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/financegpt/internal/logger"
	"max.ks1230/financegpt/internal/model/assistant"
)

type configGetter interface {
	ApiKey() string
	Model() string
	MaxTokens() int64
	BaseURL() string
}

// Client answers assistant requests with one Messages API call each.
type Client struct {
	client    anthropic.Client
	model     string
	maxTokens int64
}

func New(cfg configGetter) *Client {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.ApiKey()),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL() != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL()))
	}

	return &Client{
		client:    anthropic.NewClient(opts...),
		model:     cfg.Model(),
		maxTokens: cfg.MaxTokens(),
	}
}

func (c *Client) Complete(ctx context.Context, req assistant.Request) (string, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "anthropic.Complete")
	defer span.Finish()

	blocks := []anthropic.ContentBlockParamUnion{anthropic.NewTextBlock(req.Prompt)}
	if req.Image != nil && len(req.Image.Data) > 0 {
		encoded := base64.StdEncoding.EncodeToString(req.Image.Data)
		blocks = append(blocks, anthropic.NewImageBlockBase64(req.Image.MimeType, encoded))
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: c.maxTokens,
		Messages:  []anthropic.MessageParam{anthropic.NewUserMessage(blocks...)},
	}
	if req.System != "" {
		params.System = []anthropic.TextBlockParam{{Text: req.System}}
	}

	logger.Debug("sending request to Anthropic", zap.String("model", c.model), zap.Bool("image", req.Image != nil))
	resp, err := c.client.Messages.New(ctx, params)
	if err != nil {
		span.SetTag("error", true)
		return "", errors.Wrap(err, "anthropic messages call")
	}

	var sb strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	if sb.Len() == 0 {
		return "", errors.New("empty response from Anthropic")
	}
	return sb.String(), nil
}
