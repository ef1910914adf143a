package session

import (
	"testing"
	"time"

	"github.com/fachebot/forum-meet-bot/internal/clock"
	"github.com/stretchr/testify/assert"
)

// recordingHandler 用于测试的过期通知记录器
type recordingHandler struct {
	gathering []*GatheringResult
	voting    []*VotingResult
}

func (h *recordingHandler) OnGatheringExpired(result *GatheringResult) {
	h.gathering = append(h.gathering, result)
}

func (h *recordingHandler) OnVotingExpired(result *VotingResult) {
	h.voting = append(h.voting, result)
}

func newTestManager() (*Manager, *clock.Fake, *recordingHandler) {
	fake := &clock.Fake{Current: time.Date(2025, 3, 5, 10, 0, 0, 0, time.UTC)}
	m := NewManager(fake)
	h := &recordingHandler{}
	m.SetHandler(h)
	return m, fake, h
}

func TestStartGathering(t *testing.T) {
	m, fake, _ := newTestManager()

	deadline, err := m.StartGathering(30, 10, 1001)
	assert.NoError(t, err)
	assert.Equal(t, fake.Current.Add(30*time.Minute), deadline)
	assert.True(t, m.IsGatheringActive())
}

func TestStartGathering_已激活时拒绝(t *testing.T) {
	m, _, _ := newTestManager()

	_, err := m.StartGathering(30, 10, 1001)
	assert.NoError(t, err)

	// 征集中不允许再次开启，且状态不变
	_, err = m.StartGathering(30, 10, 1002)
	assert.ErrorIs(t, err, ErrSessionActive)
	st := m.GetStatus()
	assert.Equal(t, PhaseGathering, st.Phase)

	// 投票中同样拒绝
	result, err := m.StopGathering()
	assert.NoError(t, err)
	assert.Equal(t, 0, result.Count)
	_, err = m.StartVoting(0)
	assert.NoError(t, err)
	_, err = m.StartGathering(30, 10, 1003)
	assert.ErrorIs(t, err, ErrSessionActive)
}

func Test两个阶段不会同时活跃(t *testing.T) {
	m, fake, _ := newTestManager()

	assert.False(t, m.IsGatheringActive() && m.IsVotingActive())

	_, err := m.StartGathering(30, 10, 1001)
	assert.NoError(t, err)
	assert.False(t, m.IsGatheringActive() && m.IsVotingActive())

	fake.Advance(31 * time.Minute)
	m.CheckExpiry()
	_, err = m.StartVoting(0)
	assert.NoError(t, err)
	assert.False(t, m.IsGatheringActive() && m.IsVotingActive())
	assert.True(t, m.IsVotingActive())
}

func TestSubmitTopic(t *testing.T) {
	m, _, _ := newTestManager()

	// 未开启征集时拒绝
	assert.False(t, m.SubmitTopic(1, "主题A"))

	_, err := m.StartGathering(30, 10, 1001)
	assert.NoError(t, err)

	assert.True(t, m.SubmitTopic(1, "主题A"))
	assert.True(t, m.SubmitTopic(2, "主题B"))
	assert.False(t, m.SubmitTopic(3, "   "))

	st := m.GetStatus()
	assert.Equal(t, 2, st.TopicCount)
}

func TestSubmitTopic_截止后触发惰性过期(t *testing.T) {
	m, fake, h := newTestManager()

	_, err := m.StartGathering(30, 10, 1001)
	assert.NoError(t, err)
	assert.True(t, m.SubmitTopic(1, "主题A"))

	// 截止时间已过但尚未有任何过期检查运行过，提交必须先完成过期转换再被拒绝
	fake.Advance(31 * time.Minute)
	assert.False(t, m.SubmitTopic(2, "迟到的主题"))
	assert.Len(t, h.gathering, 1)
	assert.Equal(t, 1, h.gathering[0].Count)
	assert.Equal(t, int64(1001), h.gathering[0].ChatID)
}

func TestCheckExpiry_只返回一次结果(t *testing.T) {
	m, fake, h := newTestManager()

	_, err := m.StartGathering(30, 10, 1001)
	assert.NoError(t, err)
	m.SubmitTopic(1, "主题A")

	fake.Advance(31 * time.Minute)

	// 第一次调用观察到过期并完成转换
	assert.True(t, m.CheckExpiry())
	// 之后的任何调用都只看到阶段已结束
	assert.False(t, m.CheckExpiry())
	assert.False(t, m.CheckExpiry())
	assert.Len(t, h.gathering, 1)
}

func TestStartVoting_没有议题清单时拒绝(t *testing.T) {
	m, _, _ := newTestManager()

	_, err := m.StartVoting(10)
	assert.ErrorIs(t, err, ErrNoBallot)
}

func TestDiscardBallot(t *testing.T) {
	m, fake, _ := newTestManager()

	_, err := m.StartGathering(30, 10, 1001)
	assert.NoError(t, err)
	fake.Advance(31 * time.Minute)
	m.CheckExpiry()

	// 丢弃清单后不能开启投票，但可以开启新的征集
	m.DiscardBallot()
	_, err = m.StartVoting(0)
	assert.ErrorIs(t, err, ErrNoBallot)
	_, err = m.StartGathering(30, 10, 1001)
	assert.NoError(t, err)
}

func TestCastVote(t *testing.T) {
	m, fake, _ := newTestManager()

	_, err := m.StartGathering(30, 10, 1001)
	assert.NoError(t, err)
	m.SubmitTopic(1, "主题A")
	m.SubmitTopic(2, "主题B")

	// 征集阶段不能投票
	_, err = m.CastVote(1, 0)
	assert.ErrorIs(t, err, ErrNotVoting)

	fake.Advance(31 * time.Minute)
	m.CheckExpiry()
	_, err = m.StartVoting(0)
	assert.NoError(t, err)

	tally, err := m.CastVote(1, 1)
	assert.NoError(t, err)
	assert.Equal(t, 1, tally)

	// 同一用户重复投票不改变票数（幂等）
	tally, err = m.CastVote(1, 1)
	assert.NoError(t, err)
	assert.Equal(t, 1, tally)

	// 编号越界拒绝
	_, err = m.CastVote(1, 5)
	assert.ErrorIs(t, err, ErrTopicOutOfRange)
	_, err = m.CastVote(1, -1)
	assert.ErrorIs(t, err, ErrTopicOutOfRange)
}

func TestCastVote_截止后触发惰性过期(t *testing.T) {
	m, fake, h := newTestManager()

	_, err := m.StartGathering(30, 10, 1001)
	assert.NoError(t, err)
	m.SubmitTopic(1, "主题A")
	fake.Advance(31 * time.Minute)
	m.CheckExpiry()
	_, err = m.StartVoting(0)
	assert.NoError(t, err)

	// 投票截止后、任何过期检查运行前投票，必须先完成过期转换再被拒绝
	fake.Advance(11 * time.Minute)
	_, err = m.CastVote(1, 0)
	assert.ErrorIs(t, err, ErrNotVoting)
	assert.Len(t, h.voting, 1)
}

func TestStopGathering_取消定时器后迟到触发为空操作(t *testing.T) {
	m, fake, h := newTestManager()

	_, err := m.StartGathering(30, 10, 1001)
	assert.NoError(t, err)

	// 记录挂起定时器的代数，模拟 Stop 之后定时器回调仍然迟到触发
	m.mu.Lock()
	armedGen := m.gen
	m.mu.Unlock()

	_, err = m.StopGathering()
	assert.NoError(t, err)

	fake.Advance(31 * time.Minute)
	m.handleTimer(armedGen)
	assert.Empty(t, h.gathering)
	assert.Empty(t, h.voting)
}

func TestStopVoting(t *testing.T) {
	m, fake, _ := newTestManager()

	_, err := m.StopVoting()
	assert.ErrorIs(t, err, ErrNotVoting)

	_, err = m.StartGathering(30, 10, 1001)
	assert.NoError(t, err)
	m.SubmitTopic(1, "主题A")
	fake.Advance(31 * time.Minute)
	m.CheckExpiry()
	_, err = m.StartVoting(0)
	assert.NoError(t, err)

	m.CastVote(2, 0)
	result, err := m.StopVoting()
	assert.NoError(t, err)
	assert.Equal(t, int64(1001), result.ChatID)
	assert.Len(t, result.Topics, 1)
	assert.Equal(t, 1, result.Topics[0].VoteCount)
	assert.Equal(t, []int64{2}, result.VotersByTopic[0])

	// 结束后回到 Idle
	st := m.GetStatus()
	assert.Equal(t, PhaseIdle, st.Phase)
	assert.Equal(t, 0, st.TopicCount)
}

func TestGetStatus(t *testing.T) {
	m, fake, _ := newTestManager()

	st := m.GetStatus()
	assert.Equal(t, PhaseIdle, st.Phase)

	_, err := m.StartGathering(30, 10, 1001)
	assert.NoError(t, err)
	m.SubmitTopic(1, "主题A")

	fake.Advance(10 * time.Minute)
	st = m.GetStatus()
	assert.Equal(t, PhaseGathering, st.Phase)
	assert.Equal(t, 20, st.RemainingMinutes)
	assert.Equal(t, 1, st.TopicCount)
}

func Test完整流程(t *testing.T) {
	m, fake, h := newTestManager()

	// 征集 1 分钟：U1 提交 A，U2 提交 B
	_, err := m.StartGathering(1, 1, 1001)
	assert.NoError(t, err)
	assert.True(t, m.SubmitTopic(1, "A"))
	assert.True(t, m.SubmitTopic(2, "B"))

	// 征集到期
	fake.Advance(2 * time.Minute)
	assert.True(t, m.CheckExpiry())
	assert.Len(t, h.gathering, 1)
	assert.Equal(t, 2, h.gathering[0].Count)

	// 投票 1 分钟：U1、U3 投 B
	_, err = m.StartVoting(1)
	assert.NoError(t, err)
	tally, err := m.CastVote(1, 1)
	assert.NoError(t, err)
	assert.Equal(t, 1, tally)
	tally, err = m.CastVote(3, 1)
	assert.NoError(t, err)
	assert.Equal(t, 2, tally)

	// 投票到期：A 0 票，B 2 票
	fake.Advance(2 * time.Minute)
	assert.True(t, m.CheckExpiry())
	assert.Len(t, h.voting, 1)

	result := h.voting[0]
	assert.Equal(t, int64(1001), result.ChatID)
	assert.Equal(t, 0, result.Topics[0].VoteCount)
	assert.Equal(t, 2, result.Topics[1].VoteCount)
	assert.Empty(t, result.VotersByTopic[0])
	assert.Equal(t, []int64{1, 3}, result.VotersByTopic[1])
}
