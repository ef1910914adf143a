package planner

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fachebot/forum-meet-bot/internal/clock"
	"github.com/fachebot/forum-meet-bot/internal/config"
	"github.com/fachebot/forum-meet-bot/internal/msgraph"
	"github.com/fachebot/forum-meet-bot/internal/session"
	"github.com/fachebot/forum-meet-bot/internal/timeslot"
	"github.com/stretchr/testify/assert"
)

// mockGateway 用于测试的日历网关 mock
type mockGateway struct {
	calls       []createCall
	failSubject map[string]bool
	webLink     string
}

type createCall struct {
	subject   string
	body      string
	start     time.Time
	end       time.Time
	attendees []string
}

func (g *mockGateway) CreateCalendarEvent(ctx context.Context, subject, bodyHTML string, start, end time.Time, attendees []string) (*msgraph.EventResult, error) {
	if g.failSubject[subject] {
		return nil, errors.New("网关返回 500")
	}
	g.calls = append(g.calls, createCall{subject, bodyHTML, start, end, attendees})
	return &msgraph.EventResult{Id: "evt-1", WebLink: g.webLink}, nil
}

func (g *mockGateway) GetEventLink(ctx context.Context, eventId string) string {
	return "https://outlook.example.com/" + eventId
}

// mockSlots 固定返回同一个时间窗口
type mockSlots struct {
	slot  timeslot.Slot
	empty bool
}

func (s *mockSlots) Pick() (timeslot.Slot, bool) {
	if s.empty {
		return timeslot.Slot{}, false
	}
	return s.slot, true
}

func (s *mockSlots) Resolve(slot timeslot.Slot, now time.Time) (time.Time, time.Time) {
	start := now.Add(48 * time.Hour)
	return start, start.Add(time.Hour)
}

// mockAgenda 用于测试的议程生成 mock
type mockAgenda struct {
	content string
	err     error
}

func (a *mockAgenda) GenerateAgenda(ctx context.Context, topicText string) (string, error) {
	return a.content, a.err
}

func newTestPlanner(gateway *mockGateway, slots *mockSlots, topCount int) *Planner {
	cfg := &config.Forum{
		TopTopicsCount:       topCount,
		EventDurationMinutes: 60,
		AttendeeEmailDomain:  "example.com",
	}
	fake := &clock.Fake{Current: time.Date(2025, 3, 5, 10, 0, 0, 0, time.UTC)}
	return NewPlanner(gateway, slots, nil, fake, cfg)
}

func votingResult(topics []session.Topic, votersByTopic map[int][]int64) *session.VotingResult {
	if votersByTopic == nil {
		votersByTopic = map[int][]int64{}
	}
	return &session.VotingResult{
		ChatID:        1001,
		Topics:        topics,
		VotersByTopic: votersByTopic,
	}
}

func TestSortTopics_平票保持提交顺序(t *testing.T) {
	topics := []session.Topic{
		{ID: 0, Text: "A", VoteCount: 1},
		{ID: 1, Text: "B", VoteCount: 3},
		{ID: 2, Text: "C", VoteCount: 1},
		{ID: 3, Text: "D", VoteCount: 3},
	}

	sorted := sortTopics(topics)
	assert.Equal(t, []int{1, 3, 0, 2}, []int{sorted[0].ID, sorted[1].ID, sorted[2].ID, sorted[3].ID})
	// 原切片不被修改
	assert.Equal(t, 0, topics[0].ID)
}

func TestAttendeesOf(t *testing.T) {
	topic := session.Topic{ID: 0, AuthorID: 2}

	// 提交者即使没给自己投票也参会
	attendees := attendeesOf(topic, map[int][]int64{0: {1, 3}})
	assert.Equal(t, []int64{1, 3, 2}, attendees)

	// 提交者投了自己的议题时不重复
	attendees = attendeesOf(topic, map[int][]int64{0: {1, 2, 3}})
	assert.Equal(t, []int64{1, 2, 3}, attendees)

	// 没有任何投票时只有提交者
	attendees = attendeesOf(topic, map[int][]int64{})
	assert.Equal(t, []int64{2}, attendees)
}

func TestEventSubject_超长截断(t *testing.T) {
	assert.Equal(t, "论坛议题: 短议题", eventSubject("短议题"))

	long := ""
	for i := 0; i < 60; i++ {
		long += "长"
	}
	subject := eventSubject(long)
	assert.Contains(t, subject, "...")
	assert.Len(t, []rune(subject), len([]rune("论坛议题: "))+50+3)
}

func TestCreateEvents_TopK不超过议题数(t *testing.T) {
	gateway := &mockGateway{webLink: "https://outlook.example.com/evt-1"}
	slots := &mockSlots{slot: timeslot.Slot{Weekday: time.Friday}}
	p := newTestPlanner(gateway, slots, 3)

	topics := []session.Topic{
		{ID: 0, AuthorID: 1, Text: "A", VoteCount: 1},
		{ID: 1, AuthorID: 2, Text: "B", VoteCount: 2},
	}

	events := p.CreateEvents(context.Background(), votingResult(topics, nil))
	assert.Len(t, events, 2)
	// 按票数降序排期
	assert.Equal(t, "B", events[0].Topic.Text)
	assert.Equal(t, "A", events[1].Topic.Text)
}

func TestCreateEvents_网关失败跳过继续(t *testing.T) {
	gateway := &mockGateway{
		webLink:     "https://outlook.example.com/evt-1",
		failSubject: map[string]bool{"论坛议题: B": true},
	}
	slots := &mockSlots{slot: timeslot.Slot{Weekday: time.Friday}}
	p := newTestPlanner(gateway, slots, 2)

	topics := []session.Topic{
		{ID: 0, AuthorID: 1, Text: "A", VoteCount: 1},
		{ID: 1, AuthorID: 2, Text: "B", VoteCount: 5},
	}

	// 排名第一的 B 创建失败，第二名 A 仍然被尝试并成功
	events := p.CreateEvents(context.Background(), votingResult(topics, nil))
	assert.Len(t, events, 1)
	assert.Equal(t, "A", events[0].Topic.Text)
}

func TestCreateEvents_无可用时间窗口(t *testing.T) {
	gateway := &mockGateway{}
	slots := &mockSlots{empty: true}
	p := newTestPlanner(gateway, slots, 3)

	topics := []session.Topic{
		{ID: 0, AuthorID: 1, Text: "A", VoteCount: 1},
	}

	events := p.CreateEvents(context.Background(), votingResult(topics, nil))
	assert.Empty(t, events)
	assert.Empty(t, gateway.calls)
}

func TestCreateEvents_完整场景(t *testing.T) {
	gateway := &mockGateway{webLink: "https://outlook.example.com/evt-1"}
	slots := &mockSlots{slot: timeslot.Slot{Weekday: time.Friday}}
	p := newTestPlanner(gateway, slots, 1)

	// U1 提交 A，U2 提交 B；U1、U3 投 B
	topics := []session.Topic{
		{ID: 0, AuthorID: 1, Text: "A", VoteCount: 0},
		{ID: 1, AuthorID: 2, Text: "B", VoteCount: 2},
	}
	voters := map[int][]int64{1: {1, 3}}

	events := p.CreateEvents(context.Background(), votingResult(topics, voters))
	assert.Len(t, events, 1)
	assert.Equal(t, "B", events[0].Topic.Text)
	assert.ElementsMatch(t, []int64{1, 2, 3}, events[0].AttendeeIds)
	assert.Equal(t, "evt-1", events[0].EventId)
	assert.Equal(t, "https://outlook.example.com/evt-1", events[0].WebLink)
	assert.True(t, events[0].Start.After(time.Date(2025, 3, 5, 10, 0, 0, 0, time.UTC)))

	// 参会人邮箱使用固定域名映射
	assert.ElementsMatch(t, []string{"1@example.com", "2@example.com", "3@example.com"}, gateway.calls[0].attendees)
}

func TestCreateEvents_创建响应缺少WebLink时兜底查询(t *testing.T) {
	gateway := &mockGateway{webLink: ""}
	slots := &mockSlots{slot: timeslot.Slot{Weekday: time.Friday}}
	p := newTestPlanner(gateway, slots, 1)

	topics := []session.Topic{
		{ID: 0, AuthorID: 1, Text: "A", VoteCount: 1},
	}

	events := p.CreateEvents(context.Background(), votingResult(topics, nil))
	assert.Len(t, events, 1)
	assert.Equal(t, "https://outlook.example.com/evt-1", events[0].WebLink)
}

func TestEventBody_议程生成失败时回退默认正文(t *testing.T) {
	gateway := &mockGateway{webLink: "https://outlook.example.com/evt-1"}
	slots := &mockSlots{slot: timeslot.Slot{Weekday: time.Friday}}
	p := newTestPlanner(gateway, slots, 1)
	p.agenda = &mockAgenda{err: errors.New("LLM 超时")}

	topic := session.Topic{ID: 0, AuthorID: 1, Text: "A", VoteCount: 1}
	body := p.eventBody(context.Background(), topic)
	assert.Contains(t, body, "论坛议题讨论")
	assert.NotContains(t, body, "建议议程")

	p.agenda = &mockAgenda{content: "<ul><li>要点一</li></ul>"}
	body = p.eventBody(context.Background(), topic)
	assert.Contains(t, body, "建议议程")
	assert.Contains(t, body, "要点一")
}
