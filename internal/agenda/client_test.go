package agenda

import (
	"context"
	"errors"
	"testing"

	"github.com/fachebot/forum-meet-bot/internal/config"
	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// mockOpenAIClient 模拟 OpenAI 客户端
type mockOpenAIClient struct {
	mock.Mock
}

func (m *mockOpenAIClient) CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(openai.ChatCompletionResponse), args.Error(1)
}

func newTestClient(mockClient openAIClientInterface) *Client {
	return &Client{
		config:       &config.LLM{Model: "test-model", MaxTokens: 500},
		openaiClient: mockClient,
	}
}

func chatResponse(content string) openai.ChatCompletionResponse {
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: content}},
		},
	}
}

func TestGenerateAgenda(t *testing.T) {
	mockClient := &mockOpenAIClient{}
	mockClient.On("CreateChatCompletion", mock.Anything, mock.Anything).
		Return(chatResponse("<ul><li>要点一</li></ul>"), nil)

	c := newTestClient(mockClient)
	got, err := c.GenerateAgenda(context.Background(), "如何改进代码评审流程")
	assert.NoError(t, err)
	assert.Equal(t, "<ul><li>要点一</li></ul>", got)
}

func TestGenerateAgenda_去除代码块围栏(t *testing.T) {
	mockClient := &mockOpenAIClient{}
	mockClient.On("CreateChatCompletion", mock.Anything, mock.Anything).
		Return(chatResponse("```html\n<ul><li>要点一</li></ul>\n```"), nil)

	c := newTestClient(mockClient)
	got, err := c.GenerateAgenda(context.Background(), "议题")
	assert.NoError(t, err)
	assert.Equal(t, "<ul><li>要点一</li></ul>", got)
}

func TestGenerateAgenda_API错误(t *testing.T) {
	mockClient := &mockOpenAIClient{}
	mockClient.On("CreateChatCompletion", mock.Anything, mock.Anything).
		Return(openai.ChatCompletionResponse{}, errors.New("连接超时"))

	c := newTestClient(mockClient)
	_, err := c.GenerateAgenda(context.Background(), "议题")
	assert.Error(t, err)
}

func TestGenerateAgenda_空结果(t *testing.T) {
	mockClient := &mockOpenAIClient{}
	mockClient.On("CreateChatCompletion", mock.Anything, mock.Anything).
		Return(openai.ChatCompletionResponse{}, nil)

	c := newTestClient(mockClient)
	_, err := c.GenerateAgenda(context.Background(), "议题")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "空结果")
}
