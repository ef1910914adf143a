package msgraph

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fachebot/forum-meet-bot/internal/config"
	"github.com/stretchr/testify/assert"
)

// newTestServer 模拟令牌端点和事件端点
func newTestServer(t *testing.T, eventStatus int, eventResp map[string]any) (*httptest.Server, *int) {
	tokenCalls := 0
	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		tokenCalls++
		assert.Equal(t, http.MethodPost, r.Method)
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "client_credentials", r.PostForm.Get("grant_type"))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token": "test-token",
			"expires_in":   3600,
		})
	})
	mux.HandleFunc("/users/me/calendar/events", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		w.WriteHeader(eventStatus)
		_ = json.NewEncoder(w).Encode(eventResp)
	})
	mux.HandleFunc("/users/me/calendar/events/", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"id": "evt-1", "webLink": "https://outlook.example.com/evt-1"})
	})
	return httptest.NewServer(mux), &tokenCalls
}

func newTestClient(server *httptest.Server) *Client {
	return &Client{
		config:     &config.MSGraph{TenantId: "t", ClientId: "c", ClientSecret: "s", UserId: "me"},
		httpClient: server.Client(),
		tokenURL:   server.URL + "/token",
		baseURL:    server.URL,
	}
}

func TestCreateCalendarEvent(t *testing.T) {
	server, tokenCalls := newTestServer(t, http.StatusCreated, map[string]any{
		"id":      "evt-1",
		"webLink": "https://outlook.example.com/evt-1",
	})
	defer server.Close()

	c := newTestClient(server)
	start := time.Date(2025, 3, 7, 10, 0, 0, 0, time.UTC)
	result, err := c.CreateCalendarEvent(context.Background(), "主题", "<p>正文</p>", start, start.Add(time.Hour), []string{"1@example.com"})
	assert.NoError(t, err)
	assert.Equal(t, "evt-1", result.Id)
	assert.Equal(t, "https://outlook.example.com/evt-1", result.WebLink)
	assert.Equal(t, 1, *tokenCalls)
}

func TestCreateCalendarEvent_令牌缓存(t *testing.T) {
	server, tokenCalls := newTestServer(t, http.StatusCreated, map[string]any{"id": "evt-1"})
	defer server.Close()

	c := newTestClient(server)
	start := time.Now().UTC()
	_, err := c.CreateCalendarEvent(context.Background(), "主题A", "", start, start.Add(time.Hour), nil)
	assert.NoError(t, err)
	_, err = c.CreateCalendarEvent(context.Background(), "主题B", "", start, start.Add(time.Hour), nil)
	assert.NoError(t, err)

	// 令牌在有效期内只请求一次
	assert.Equal(t, 1, *tokenCalls)
}

func TestCreateCalendarEvent_非2xx返回错误(t *testing.T) {
	server, _ := newTestServer(t, http.StatusForbidden, map[string]any{"error": "denied"})
	defer server.Close()

	c := newTestClient(server)
	start := time.Now().UTC()
	_, err := c.CreateCalendarEvent(context.Background(), "主题", "", start, start.Add(time.Hour), nil)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}

func TestGetEventLink(t *testing.T) {
	server, _ := newTestServer(t, http.StatusCreated, nil)
	defer server.Close()

	c := newTestClient(server)
	link := c.GetEventLink(context.Background(), "evt-1")
	assert.Equal(t, "https://outlook.example.com/evt-1", link)
}
