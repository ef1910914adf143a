package msgraph

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/fachebot/forum-meet-bot/internal/config"
	"github.com/fachebot/forum-meet-bot/internal/logger"
)

const (
	tokenEndpoint = "https://login.microsoftonline.com/%s/oauth2/v2.0/token"
	graphBaseURL  = "https://graph.microsoft.com/v1.0"
)

// EventResult 创建日历事件后 Graph 返回的关键字段
type EventResult struct {
	Id      string `json:"id"`
	WebLink string `json:"webLink"`
}

// Client Microsoft Graph 日历接口的瘦客户端，使用 client_credentials 方式取票
type Client struct {
	config     *config.MSGraph
	httpClient *http.Client
	tokenURL   string
	baseURL    string

	tokenMu     sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

// NewClient 创建 Graph 客户端，transport 可为 nil（不走代理）
func NewClient(cfg *config.MSGraph, transport *http.Transport) *Client {
	httpClient := &http.Client{Timeout: 30 * time.Second}
	if transport != nil {
		httpClient.Transport = transport
	}
	return &Client{
		config:     cfg,
		httpClient: httpClient,
		tokenURL:   fmt.Sprintf(tokenEndpoint, cfg.TenantId),
		baseURL:    graphBaseURL,
	}
}

// getAccessToken 获取或刷新访问令牌，过期前 5 分钟视为失效
func (c *Client) getAccessToken(ctx context.Context) (string, error) {
	c.tokenMu.Lock()
	defer c.tokenMu.Unlock()

	if c.accessToken != "" && time.Now().Before(c.tokenExpiry) {
		return c.accessToken, nil
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", c.config.ClientId)
	form.Set("client_secret", c.config.ClientSecret)
	form.Set("scope", "https://graph.microsoft.com/.default")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("请求访问令牌失败: %w", err)
	}
	defer resp.Body.Close()

	var tokenResp struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err = json.NewDecoder(resp.Body).Decode(&tokenResp); err != nil {
		return "", fmt.Errorf("解析令牌响应失败: %w", err)
	}
	if tokenResp.AccessToken == "" {
		return "", fmt.Errorf("获取访问令牌失败, status: %d", resp.StatusCode)
	}

	c.accessToken = tokenResp.AccessToken
	c.tokenExpiry = time.Now().Add(time.Duration(tokenResp.ExpiresIn-300) * time.Second)
	return c.accessToken, nil
}

type dateTimeZone struct {
	DateTime string `json:"dateTime"`
	TimeZone string `json:"timeZone"`
}

type emailAddress struct {
	Address string `json:"address"`
	Name    string `json:"name"`
}

type attendee struct {
	EmailAddress emailAddress `json:"emailAddress"`
	Type         string       `json:"type"`
}

type eventPayload struct {
	Subject string `json:"subject"`
	Body    struct {
		ContentType string `json:"contentType"`
		Content     string `json:"content"`
	} `json:"body"`
	Start     dateTimeZone `json:"start"`
	End       dateTimeZone `json:"end"`
	Attendees []attendee   `json:"attendees"`
}

// CreateCalendarEvent 创建日历事件，时间按 UTC 提交，attendees 为参会人邮箱列表
func (c *Client) CreateCalendarEvent(ctx context.Context, subject, bodyHTML string, start, end time.Time, attendees []string) (*EventResult, error) {
	token, err := c.getAccessToken(ctx)
	if err != nil {
		return nil, err
	}

	payload := eventPayload{Subject: subject}
	payload.Body.ContentType = "HTML"
	payload.Body.Content = bodyHTML
	payload.Start = dateTimeZone{DateTime: start.UTC().Format("2006-01-02T15:04:05"), TimeZone: "UTC"}
	payload.End = dateTimeZone{DateTime: end.UTC().Format("2006-01-02T15:04:05"), TimeZone: "UTC"}
	for _, email := range attendees {
		payload.Attendees = append(payload.Attendees, attendee{
			EmailAddress: emailAddress{Address: email},
			Type:         "required",
		})
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	eventsURL := fmt.Sprintf("%s/users/%s/calendar/events", c.baseURL, c.config.UserId)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, eventsURL, strings.NewReader(string(data)))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("创建日历事件请求失败: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("创建日历事件失败, status: %d, body: %s", resp.StatusCode, string(body))
	}

	var result EventResult
	if err = json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("解析事件响应失败: %w", err)
	}
	return &result, nil
}

// GetEventLink 查询事件的网页链接，创建响应中缺少 webLink 时兜底使用
func (c *Client) GetEventLink(ctx context.Context, eventId string) string {
	token, err := c.getAccessToken(ctx)
	if err != nil {
		logger.Errorf("[MSGraph] 获取访问令牌失败: %v", err)
		return ""
	}

	eventURL := fmt.Sprintf("%s/users/%s/calendar/events/%s", c.baseURL, c.config.UserId, eventId)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, eventURL, nil)
	if err != nil {
		return ""
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Errorf("[MSGraph] 查询事件链接失败: %v", err)
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Errorf("[MSGraph] 查询事件链接失败, status: %d", resp.StatusCode)
		return ""
	}

	var result EventResult
	if err = json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return ""
	}
	return result.WebLink
}
