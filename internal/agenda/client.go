package agenda

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fachebot/forum-meet-bot/internal/config"
	"github.com/sashabaranov/go-openai"
)

// openAIClientInterface 定义 OpenAI 客户端接口，便于测试
type openAIClientInterface interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Client 会议议程生成器。根据议题文本生成一段简短的 HTML 议程，
// 失败时由调用方回退为纯文本正文。
type Client struct {
	config       *config.LLM
	openaiClient openAIClientInterface
}

func NewClient(cfg *config.LLM) *Client {
	openaiConfig := openai.DefaultConfig(cfg.APIKey)
	openaiConfig.BaseURL = cfg.BaseURL

	return &Client{
		config:       cfg,
		openaiClient: openai.NewClientWithConfig(openaiConfig),
	}
}

// GenerateAgenda 为指定议题生成 HTML 格式的讨论议程
func (c *Client) GenerateAgenda(ctx context.Context, topicText string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 1*time.Minute)
	defer cancel()

	systemPrompt := `你是一个会议议程助手。根据用户提供的讨论议题，生成一段简短的 HTML 议程，
格式为一个 <ul> 列表，包含 3~5 个讨论要点。只输出 HTML，不要其他内容。`

	maxTokens := c.config.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 500
	}

	req := openai.ChatCompletionRequest{
		Model: c.config.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: "讨论议题：" + topicText},
		},
		Temperature: 0.3,
		MaxTokens:   maxTokens,
	}

	resp, err := c.openaiClient.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("调用 LLM API 失败: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("LLM API 返回空结果")
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	content = strings.TrimPrefix(content, "```html")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)
	return content, nil
}
