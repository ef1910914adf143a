package forum

import (
	"context"
	"testing"
	"time"

	"github.com/fachebot/forum-meet-bot/internal/clock"
	"github.com/fachebot/forum-meet-bot/internal/config"
	"github.com/fachebot/forum-meet-bot/internal/ent"
	"github.com/fachebot/forum-meet-bot/internal/model"
	"github.com/fachebot/forum-meet-bot/internal/planner"
	"github.com/fachebot/forum-meet-bot/internal/session"
	"github.com/stretchr/testify/assert"
)

// mockNotifier 记录各类公告调用
type mockNotifier struct {
	gatheringStarted []int64
	ballotTopics     [][]session.Topic
	noTopics         []int64
	votingClosed     []int
	events           []*planner.ScheduledEvent
}

func (n *mockNotifier) AnnounceGatheringStarted(chatID int64, minutes int, deadline time.Time) error {
	n.gatheringStarted = append(n.gatheringStarted, chatID)
	return nil
}

func (n *mockNotifier) AnnounceBallot(chatID int64, topics []session.Topic, minutes int, deadline time.Time) error {
	n.ballotTopics = append(n.ballotTopics, topics)
	return nil
}

func (n *mockNotifier) AnnounceNoTopics(chatID int64) error {
	n.noTopics = append(n.noTopics, chatID)
	return nil
}

func (n *mockNotifier) AnnounceVotingClosed(chatID int64, topicCount int) error {
	n.votingClosed = append(n.votingClosed, topicCount)
	return nil
}

func (n *mockNotifier) AnnounceEvent(chatID int64, event *planner.ScheduledEvent) error {
	n.events = append(n.events, event)
	return nil
}

// mockPlanner 返回预设的排期结果并记录收到的投票快照
type mockPlanner struct {
	results  []planner.ScheduledEvent
	received *session.VotingResult
}

func (p *mockPlanner) CreateEvents(ctx context.Context, result *session.VotingResult) []planner.ScheduledEvent {
	p.received = result
	return p.results
}

type markCall struct {
	id       int
	count    int
	closedAt time.Time
}

// mockSessionArchive 记录会话归档调用
type mockSessionArchive struct {
	createdChatID int64
	startedAt     time.Time
	voting        []markCall
	completed     []markCall
	cancelled     []markCall
}

func (a *mockSessionArchive) Create(ctx context.Context, chatID int64, startedAt time.Time) (*ent.ForumSession, error) {
	a.createdChatID = chatID
	a.startedAt = startedAt
	return &ent.ForumSession{ID: 7}, nil
}

func (a *mockSessionArchive) MarkVoting(ctx context.Context, id int, topicCount int) error {
	a.voting = append(a.voting, markCall{id: id, count: topicCount})
	return nil
}

func (a *mockSessionArchive) MarkCompleted(ctx context.Context, id int, eventCount int, closedAt time.Time) error {
	a.completed = append(a.completed, markCall{id: id, count: eventCount, closedAt: closedAt})
	return nil
}

func (a *mockSessionArchive) MarkCancelled(ctx context.Context, id int, topicCount int, closedAt time.Time) error {
	a.cancelled = append(a.cancelled, markCall{id: id, count: topicCount, closedAt: closedAt})
	return nil
}

// mockEventArchive 记录会议归档调用
type mockEventArchive struct {
	created []*model.MeetingEventData
	recent  []*ent.MeetingEvent
}

func (a *mockEventArchive) Create(ctx context.Context, data *model.MeetingEventData) (*ent.MeetingEvent, error) {
	a.created = append(a.created, data)
	return &ent.MeetingEvent{}, nil
}

func (a *mockEventArchive) ListRecent(ctx context.Context, chatID int64, limit int) ([]*ent.MeetingEvent, error) {
	return a.recent, nil
}

type testDeps struct {
	fake     *clock.Fake
	manager  *session.Manager
	notifier *mockNotifier
	planner  *mockPlanner
	sessions *mockSessionArchive
	events   *mockEventArchive
}

func newTestCoordinator() (*Coordinator, *testDeps) {
	deps := &testDeps{
		fake:     &clock.Fake{Current: time.Date(2025, 3, 5, 10, 0, 0, 0, time.UTC)},
		notifier: &mockNotifier{},
		planner:  &mockPlanner{},
		sessions: &mockSessionArchive{},
		events:   &mockEventArchive{},
	}
	deps.manager = session.NewManager(deps.fake)
	cfg := &config.Forum{
		TopTopicsCount:       3,
		EventDurationMinutes: 60,
		DefaultGatherMinutes: 30,
		DefaultVoteMinutes:   10,
		SweepCron:            "* * * * *",
		AttendeeEmailDomain:  "example.com",
	}
	c := NewCoordinator(deps.manager, deps.planner, deps.notifier, deps.sessions, deps.events, deps.fake, cfg)
	return c, deps
}

func TestStartForum(t *testing.T) {
	c, deps := newTestCoordinator()

	deadline, err := c.StartForum(1001, 30, 10)
	assert.NoError(t, err)
	assert.Equal(t, deps.fake.Current.Add(30*time.Minute), deadline)
	assert.Equal(t, []int64{1001}, deps.notifier.gatheringStarted)
	assert.Equal(t, int64(1001), deps.sessions.createdChatID)
	assert.True(t, deps.sessions.startedAt.Equal(deps.fake.Current))

	// 已有会话时拒绝
	_, err = c.StartForum(1002, 30, 10)
	assert.ErrorIs(t, err, session.ErrSessionActive)
}

func Test零议题时跳过投票并结束会话(t *testing.T) {
	c, deps := newTestCoordinator()

	_, err := c.StartForum(1001, 30, 10)
	assert.NoError(t, err)

	deps.fake.Advance(31 * time.Minute)
	assert.True(t, deps.manager.CheckExpiry())

	// 公告空议题并归档取消状态，不进入投票
	assert.Equal(t, []int64{1001}, deps.notifier.noTopics)
	assert.Empty(t, deps.notifier.ballotTopics)
	assert.Len(t, deps.sessions.cancelled, 1)
	assert.Equal(t, 7, deps.sessions.cancelled[0].id)
	assert.Equal(t, session.PhaseIdle, c.GetStatus().Phase)

	// 议题清单已被丢弃，新会话可以正常开启
	_, err = c.StartForum(1001, 30, 10)
	assert.NoError(t, err)
}

func Test征集结束后进入投票(t *testing.T) {
	c, deps := newTestCoordinator()

	_, err := c.StartForum(1001, 30, 10)
	assert.NoError(t, err)
	assert.True(t, c.SubmitTopic(1, "主题A"))
	assert.True(t, c.SubmitTopic(2, "主题B"))

	deps.fake.Advance(31 * time.Minute)
	assert.True(t, deps.manager.CheckExpiry())

	// 自动开启投票、公告选票并归档投票状态
	assert.Equal(t, session.PhaseVoting, c.GetStatus().Phase)
	assert.Len(t, deps.notifier.ballotTopics, 1)
	assert.Len(t, deps.notifier.ballotTopics[0], 2)
	assert.Len(t, deps.sessions.voting, 1)
	assert.Equal(t, markCall{id: 7, count: 2}, deps.sessions.voting[0])
}

func Test投票结束后排期并归档(t *testing.T) {
	c, deps := newTestCoordinator()

	_, err := c.StartForum(1001, 1, 1)
	assert.NoError(t, err)
	c.SubmitTopic(1, "A")
	c.SubmitTopic(2, "B")
	deps.fake.Advance(2 * time.Minute)
	deps.manager.CheckExpiry()

	_, err = c.CastVote(1, 1)
	assert.NoError(t, err)
	_, err = c.CastVote(3, 1)
	assert.NoError(t, err)

	start := time.Date(2025, 3, 7, 10, 0, 0, 0, time.UTC)
	deps.planner.results = []planner.ScheduledEvent{
		{
			Topic:       session.Topic{ID: 1, AuthorID: 2, Text: "B", VoteCount: 2},
			Start:       start,
			End:         start.Add(time.Hour),
			AttendeeIds: []int64{1, 2, 3},
			EventId:     "evt-1",
			WebLink:     "https://outlook.example.com/evt-1",
		},
	}

	deps.fake.Advance(2 * time.Minute)
	deps.manager.CheckExpiry()

	// 投票结果快照交给排期器
	assert.NotNil(t, deps.planner.received)
	assert.Equal(t, []int64{1, 3}, deps.planner.received.VotersByTopic[1])

	// 公告与归档
	assert.Equal(t, []int{2}, deps.notifier.votingClosed)
	assert.Len(t, deps.notifier.events, 1)
	assert.Len(t, deps.events.created, 1)
	archived := deps.events.created[0]
	assert.Equal(t, "B", archived.TopicText)
	assert.Equal(t, int64(1001), archived.ChatID)
	assert.Equal(t, "1,2,3", archived.Attendees)
	assert.Len(t, deps.sessions.completed, 1)
	assert.Equal(t, 7, deps.sessions.completed[0].id)
	assert.Equal(t, 1, deps.sessions.completed[0].count)
	// 归档时间来自注入的时间源
	assert.True(t, deps.sessions.completed[0].closedAt.Equal(deps.fake.Current))
}

func TestStopForum(t *testing.T) {
	c, deps := newTestCoordinator()

	assert.ErrorIs(t, c.StopForum(), ErrNoActiveSession)

	_, err := c.StartForum(1001, 30, 10)
	assert.NoError(t, err)
	c.SubmitTopic(1, "主题A")

	// 征集中停止会直接进入投票
	assert.NoError(t, c.StopForum())
	assert.Equal(t, session.PhaseVoting, c.GetStatus().Phase)

	// 投票中停止会触发排期流程并回到空闲
	assert.NoError(t, c.StopForum())
	assert.Equal(t, session.PhaseIdle, c.GetStatus().Phase)
	assert.Equal(t, []int{1}, deps.notifier.votingClosed)
	assert.Len(t, deps.sessions.completed, 1)
}

func TestFormatHistory(t *testing.T) {
	c, deps := newTestCoordinator()

	text, err := c.FormatHistory(1001, 10)
	assert.NoError(t, err)
	assert.Contains(t, text, "还没有排期过会议")

	deps.events.recent = []*ent.MeetingEvent{
		{TopicText: "B", StartTime: time.Date(2025, 3, 7, 10, 0, 0, 0, time.UTC), Votes: 2},
	}
	text, err = c.FormatHistory(1001, 10)
	assert.NoError(t, err)
	assert.Contains(t, text, "B")
	assert.Contains(t, text, "2025-03-07 10:00")
	assert.Contains(t, text, "2 票")
}
