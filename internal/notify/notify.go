package notify

import (
	"fmt"
	"strings"
	"time"

	"github.com/fachebot/forum-meet-bot/internal/logger"
	"github.com/fachebot/forum-meet-bot/internal/planner"
	"github.com/fachebot/forum-meet-bot/internal/session"
	"github.com/zelenin/go-tdlib/client"
)

const (
	MaxMessageLength = 5000 // Telegram 消息最大长度
)

var weekdayLabels = map[time.Weekday]string{
	time.Sunday:    "周日",
	time.Monday:    "周一",
	time.Tuesday:   "周二",
	time.Wednesday: "周三",
	time.Thursday:  "周四",
	time.Friday:    "周五",
	time.Saturday:  "周六",
}

type Notifier struct {
	tdClient *client.Client
}

func NewNotifier(tdClient *client.Client) *Notifier {
	return &Notifier{
		tdClient: tdClient,
	}
}

// Send 发送一条消息到指定会话，过长时按段拆分
func (n *Notifier) Send(chatID int64, content string) error {
	if content == "" {
		return nil
	}

	for _, msg := range n.splitMessage(content) {
		formatted := n.parseHTMLText(msg)
		_, err := n.tdClient.SendMessage(&client.SendMessageRequest{
			ChatId: chatID,
			InputMessageContent: &client.InputMessageText{
				Text: formatted,
			},
		})
		if err != nil {
			return fmt.Errorf("发送消息到会话 %d 失败: %w", chatID, err)
		}
	}
	return nil
}

// AnnounceGatheringStarted 宣布议题征集开始
func (n *Notifier) AnnounceGatheringStarted(chatID int64, minutes int, deadline time.Time) error {
	text := fmt.Sprintf(
		"📢 <b>议题征集开始！</b>\n请在 %d 分钟内（截止 %s）私聊我提交你想讨论的议题。",
		minutes, deadline.Format("15:04:05"),
	)
	return n.Send(chatID, text)
}

// AnnounceBallot 宣布投票开始并列出议题清单
func (n *Notifier) AnnounceBallot(chatID int64, topics []session.Topic, minutes int, deadline time.Time) error {
	return n.Send(chatID, FormatBallot(topics, minutes, deadline))
}

// AnnounceNoTopics 宣布征集结束但没有收到议题
func (n *Notifier) AnnounceNoTopics(chatID int64) error {
	return n.Send(chatID, "议题征集已结束，本次没有收到任何议题。")
}

// AnnounceVotingClosed 宣布投票结束
func (n *Notifier) AnnounceVotingClosed(chatID int64, topicCount int) error {
	text := fmt.Sprintf("🗳 投票已结束，共 %d 个议题参与投票，正在为票数最高的议题安排会议……", topicCount)
	return n.Send(chatID, text)
}

// AnnounceEvent 宣布一条排期成功的会议
func (n *Notifier) AnnounceEvent(chatID int64, event *planner.ScheduledEvent) error {
	return n.Send(chatID, FormatEventAnnouncement(event))
}

// FormatBallot 生成带编号的议题清单文本。展示编号从 1 开始，
// 命令入口负责换算回内部的议题ID。
func FormatBallot(topics []session.Topic, minutes int, deadline time.Time) string {
	var sb strings.Builder
	sb.WriteString("🗳 <b>投票开始！</b>\n")
	fmt.Fprintf(&sb, "请在 %d 分钟内（截止 %s）使用 /vote 编号 给想讨论的议题投票：\n\n", minutes, deadline.Format("15:04:05"))
	for _, topic := range topics {
		fmt.Fprintf(&sb, "%d. %s\n", topic.ID+1, topic.Text)
	}
	return strings.TrimRight(sb.String(), "\n")
}

// FormatEventAnnouncement 生成会议排期公告，参会人超过 5 名时截断显示
func FormatEventAnnouncement(event *planner.ScheduledEvent) string {
	mentions := make([]string, len(event.AttendeeIds))
	for i, userID := range event.AttendeeIds {
		mentions[i] = mention(userID)
	}
	attendeeText := strings.Join(mentions, ", ")
	if len(mentions) > 5 {
		attendeeText = strings.Join(mentions[:5], ", ") + fmt.Sprintf(" 等 %d 人", len(mentions))
	}

	var sb strings.Builder
	sb.WriteString("📅 <b>会议已排期</b>\n\n")
	fmt.Fprintf(&sb, "<b>议题:</b> %s\n", event.Topic.Text)
	fmt.Fprintf(&sb, "<b>时间:</b> %s %s %s ~ %s\n",
		weekdayLabels[event.Start.Weekday()],
		event.Start.Format("2006-01-02"),
		event.Start.Format("15:04"),
		event.End.Format("15:04"),
	)
	fmt.Fprintf(&sb, "<b>提交者:</b> %s\n", mention(event.Topic.AuthorID))
	fmt.Fprintf(&sb, "<b>参会人:</b> %s\n", attendeeText)
	if event.WebLink != "" {
		fmt.Fprintf(&sb, "\n<a href=\"%s\">在 Outlook 日历中查看</a>\n", event.WebLink)
	}
	sb.WriteString("\n日历邀请已发送给所有参会人。")
	return sb.String()
}

// mention 生成指向用户的提及链接
func mention(userID int64) string {
	return fmt.Sprintf("<a href=\"tg://user?id=%d\">用户%d</a>", userID, userID)
}

// parseHTMLText 使用 TDLib 的 HTML 解析能力，将 HTML 文本转换为带实体的 FormattedText。
// 支持的 HTML 标签：<b>粗体</b>、<a href="url">链接</a>
func (n *Notifier) parseHTMLText(text string) *client.FormattedText {
	if text == "" {
		return &client.FormattedText{Text: text}
	}

	formatted, err := client.ParseTextEntities(&client.ParseTextEntitiesRequest{
		Text:      text,
		ParseMode: &client.TextParseModeHTML{},
	})
	if err != nil {
		logger.Warnf("[Notify] 解析 HTML 文本失败，回退为纯文本发送: %v", err)
		return &client.FormattedText{Text: text}
	}
	return formatted
}

// splitMessage 将消息按长度拆分为多条
func (n *Notifier) splitMessage(content string) []string {
	if len(content) <= MaxMessageLength {
		return []string{content}
	}

	paragraphs := strings.Split(content, "\n\n")
	if len(paragraphs) == 1 {
		paragraphs = strings.Split(content, "\n")
	}

	messages := make([]string, 0)
	currentMsg := ""

	for _, para := range paragraphs {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}

		testMsg := currentMsg
		if testMsg != "" {
			testMsg += "\n\n"
		}
		testMsg += para

		if len(testMsg) <= MaxMessageLength {
			currentMsg = testMsg
			continue
		}

		if currentMsg != "" {
			messages = append(messages, currentMsg)
		}
		currentMsg = para
	}

	if currentMsg != "" {
		messages = append(messages, currentMsg)
	}

	return messages
}
