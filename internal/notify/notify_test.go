package notify

import (
	"testing"
	"time"

	"github.com/fachebot/forum-meet-bot/internal/planner"
	"github.com/fachebot/forum-meet-bot/internal/session"
	"github.com/stretchr/testify/assert"
)

func TestFormatBallot(t *testing.T) {
	topics := []session.Topic{
		{ID: 0, Text: "如何改进代码评审流程"},
		{ID: 1, Text: "下个季度的技术选型"},
	}
	deadline := time.Date(2025, 3, 5, 10, 30, 0, 0, time.UTC)

	got := FormatBallot(topics, 10, deadline)
	assert.Contains(t, got, "投票开始")
	assert.Contains(t, got, "10 分钟")
	assert.Contains(t, got, "10:30:00")
	// 展示编号从 1 开始
	assert.Contains(t, got, "1. 如何改进代码评审流程")
	assert.Contains(t, got, "2. 下个季度的技术选型")
	assert.NotContains(t, got, "0. ")
}

func TestFormatEventAnnouncement(t *testing.T) {
	event := &planner.ScheduledEvent{
		Topic:       session.Topic{ID: 1, AuthorID: 2, Text: "下个季度的技术选型", VoteCount: 2},
		Start:       time.Date(2025, 3, 7, 10, 0, 0, 0, time.UTC),
		End:         time.Date(2025, 3, 7, 11, 0, 0, 0, time.UTC),
		AttendeeIds: []int64{1, 2, 3},
		EventId:     "evt-1",
		WebLink:     "https://outlook.example.com/evt-1",
	}

	got := FormatEventAnnouncement(event)
	assert.Contains(t, got, "会议已排期")
	assert.Contains(t, got, "下个季度的技术选型")
	assert.Contains(t, got, "周五 2025-03-07 10:00 ~ 11:00")
	assert.Contains(t, got, "https://outlook.example.com/evt-1")
	assert.Contains(t, got, "tg://user?id=2")
}

func TestFormatEventAnnouncement_参会人超过五名时截断(t *testing.T) {
	event := &planner.ScheduledEvent{
		Topic:       session.Topic{ID: 0, AuthorID: 1, Text: "议题"},
		Start:       time.Date(2025, 3, 7, 10, 0, 0, 0, time.UTC),
		End:         time.Date(2025, 3, 7, 11, 0, 0, 0, time.UTC),
		AttendeeIds: []int64{1, 2, 3, 4, 5, 6, 7},
	}

	got := FormatEventAnnouncement(event)
	assert.Contains(t, got, "等 7 人")
	assert.NotContains(t, got, "tg://user?id=6")
}

func TestFormatEventAnnouncement_无链接时不输出链接行(t *testing.T) {
	event := &planner.ScheduledEvent{
		Topic:       session.Topic{ID: 0, AuthorID: 1, Text: "议题"},
		Start:       time.Date(2025, 3, 7, 10, 0, 0, 0, time.UTC),
		End:         time.Date(2025, 3, 7, 11, 0, 0, 0, time.UTC),
		AttendeeIds: []int64{1},
	}

	got := FormatEventAnnouncement(event)
	assert.NotContains(t, got, "Outlook")
}

func TestSplitMessage(t *testing.T) {
	n := &Notifier{}

	short := "一条短消息"
	assert.Equal(t, []string{short}, n.splitMessage(short))

	// 构造超长消息，按段落拆分后每条都不超过上限
	para := make([]byte, 3000)
	for i := range para {
		para[i] = 'a'
	}
	long := string(para) + "\n\n" + string(para) + "\n\n" + string(para)
	messages := n.splitMessage(long)
	assert.Greater(t, len(messages), 1)
	for _, msg := range messages {
		assert.LessOrEqual(t, len(msg), MaxMessageLength)
	}
}
