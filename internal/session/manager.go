package session

import (
	"strings"
	"sync"
	"time"

	"github.com/fachebot/forum-meet-bot/internal/clock"
	"github.com/fachebot/forum-meet-bot/internal/logger"
)

// Handler 接收过期转换（定时器触发或惰性检查触发）的通知。
// 显式 StopGathering/StopVoting 的结果由调用方直接拿到，不经过 Handler。
type Handler interface {
	OnGatheringExpired(result *GatheringResult)
	OnVotingExpired(result *VotingResult)
}

// Manager 会话状态机：Idle -> Gathering -> Voting -> Idle。
// 所有读写操作都在同一把互斥锁内完成，定时器与用户命令并发触发过期检查时，
// 过期转换只会发生一次。
type Manager struct {
	mu      sync.Mutex
	clock   clock.Clock
	handler Handler

	phase          Phase
	chatID         int64
	topics         []Topic
	ledger         *VoteLedger
	gatherDeadline time.Time
	voteDeadline   time.Time
	voteMinutes    int
	ballotReady    bool // 征集已结束、等待 StartVoting 接手议题清单

	// gen 为定时器代数。每次转换或取消都会递增，旧定时器迟到触发时
	// 发现代数不匹配即为空操作。
	gen   uint64
	timer *time.Timer
}

func NewManager(clk clock.Clock) *Manager {
	return &Manager{
		clock:  clk,
		phase:  PhaseIdle,
		ledger: NewVoteLedger(),
	}
}

// SetHandler 设置过期通知的接收方，需在会话开始前调用
func (m *Manager) SetHandler(h Handler) {
	m.mu.Lock()
	m.handler = h
	m.mu.Unlock()
}

// StartGathering 开启议题征集，仅允许从 Idle 发起。
// 返回征集截止时间，内部同时挂起一个一次性过期定时器。
func (m *Manager) StartGathering(gatherMinutes, voteMinutes int, chatID int64) (time.Time, error) {
	m.mu.Lock()
	pending := m.expireLocked(m.clock.Now())
	if m.phase != PhaseIdle || m.ballotReady {
		m.mu.Unlock()
		m.dispatch(pending)
		return time.Time{}, ErrSessionActive
	}

	now := m.clock.Now()
	m.phase = PhaseGathering
	m.chatID = chatID
	m.topics = nil
	m.ledger = NewVoteLedger()
	m.gatherDeadline = now.Add(time.Duration(gatherMinutes) * time.Minute)
	m.voteDeadline = time.Time{}
	m.voteMinutes = voteMinutes
	m.armTimerLocked(time.Duration(gatherMinutes) * time.Minute)
	deadline := m.gatherDeadline
	m.mu.Unlock()

	m.dispatch(pending)
	return deadline, nil
}

// SubmitTopic 提交议题，仅在征集阶段且未过截止时间时接受。
// 提交前会先执行惰性过期检查，截止后未被任何路径检查过的会话也会被拒绝。
func (m *Manager) SubmitTopic(userID int64, text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}

	m.mu.Lock()
	pending := m.expireLocked(m.clock.Now())
	if m.phase != PhaseGathering {
		m.mu.Unlock()
		m.dispatch(pending)
		return false
	}

	m.topics = append(m.topics, Topic{
		ID:          len(m.topics),
		AuthorID:    userID,
		Text:        text,
		SubmittedAt: m.clock.Now(),
	})
	m.mu.Unlock()

	m.dispatch(pending)
	return true
}

// StartVoting 在征集结束后立即开启投票。voteMinutes <= 0 时沿用开启征集时指定的时长。
func (m *Manager) StartVoting(voteMinutes int) (time.Time, error) {
	m.mu.Lock()
	if m.phase != PhaseIdle || !m.ballotReady {
		m.mu.Unlock()
		return time.Time{}, ErrNoBallot
	}

	if voteMinutes <= 0 {
		voteMinutes = m.voteMinutes
	}
	now := m.clock.Now()
	m.phase = PhaseVoting
	m.ballotReady = false
	m.voteDeadline = now.Add(time.Duration(voteMinutes) * time.Minute)
	m.armTimerLocked(time.Duration(voteMinutes) * time.Minute)
	deadline := m.voteDeadline
	m.mu.Unlock()

	return deadline, nil
}

// DiscardBallot 丢弃等待投票的议题清单。编排层决定跳过投票（如零议题）时调用，
// 否则残留的清单会阻止下一次 StartGathering。
func (m *Manager) DiscardBallot() {
	m.mu.Lock()
	m.ballotReady = false
	m.topics = nil
	m.ledger = NewVoteLedger()
	m.mu.Unlock()
}

// CastVote 投票，仅在投票阶段且未过截止时间时接受，议题编号越界时拒绝。
// 同一用户对同一议题重复投票不改变计票结果，返回该议题的最新票数。
func (m *Manager) CastVote(userID int64, topicID int) (int, error) {
	m.mu.Lock()
	pending := m.expireLocked(m.clock.Now())
	if m.phase != PhaseVoting {
		m.mu.Unlock()
		m.dispatch(pending)
		return 0, ErrNotVoting
	}
	if topicID < 0 || topicID >= len(m.topics) {
		m.mu.Unlock()
		return 0, ErrTopicOutOfRange
	}

	if m.ledger.Record(userID, topicID) {
		m.topics[topicID].VoteCount++
	}
	tally := m.topics[topicID].VoteCount
	m.mu.Unlock()

	m.dispatch(pending)
	return tally, nil
}

// StopGathering 提前结束征集，取消挂起的定时器，返回收集到的议题
func (m *Manager) StopGathering() (*GatheringResult, error) {
	m.mu.Lock()
	pending := m.expireLocked(m.clock.Now())
	if m.phase != PhaseGathering {
		m.mu.Unlock()
		m.dispatch(pending)
		return nil, ErrNotGathering
	}

	result := m.closeGatheringLocked()
	m.mu.Unlock()

	m.dispatch(pending)
	return result, nil
}

// StopVoting 提前结束投票，取消挂起的定时器，返回投票结果快照
func (m *Manager) StopVoting() (*VotingResult, error) {
	m.mu.Lock()
	pending := m.expireLocked(m.clock.Now())
	if m.phase != PhaseVoting {
		m.mu.Unlock()
		m.dispatch(pending)
		return nil, ErrNotVoting
	}

	result := m.closeVotingLocked()
	m.mu.Unlock()

	m.dispatch(pending)
	return result, nil
}

// IsGatheringActive 征集是否进行中；截止时间已过时本次调用会先完成过期转换
func (m *Manager) IsGatheringActive() bool {
	m.mu.Lock()
	pending := m.expireLocked(m.clock.Now())
	active := m.phase == PhaseGathering
	m.mu.Unlock()

	m.dispatch(pending)
	return active
}

// IsVotingActive 投票是否进行中；截止时间已过时本次调用会先完成过期转换
func (m *Manager) IsVotingActive() bool {
	m.mu.Lock()
	pending := m.expireLocked(m.clock.Now())
	active := m.phase == PhaseVoting
	m.mu.Unlock()

	m.dispatch(pending)
	return active
}

// CheckExpiry 过期检查入口，定时器回调、cron 兜底和惰性检查共用同一条路径。
// 返回本次调用是否发生了阶段转换；转换结果通过 Handler 通知。
func (m *Manager) CheckExpiry() bool {
	m.mu.Lock()
	pending := m.expireLocked(m.clock.Now())
	m.mu.Unlock()

	m.dispatch(pending)
	return pending != nil
}

// GetStatus 当前状态摘要，查询前同样先执行惰性过期检查
func (m *Manager) GetStatus() Status {
	m.mu.Lock()
	now := m.clock.Now()
	pending := m.expireLocked(now)

	st := Status{Phase: m.phase, TopicCount: len(m.topics)}
	var deadline time.Time
	switch m.phase {
	case PhaseGathering:
		deadline = m.gatherDeadline
	case PhaseVoting:
		deadline = m.voteDeadline
	}
	if !deadline.IsZero() {
		st.RemainingMinutes = int(deadline.Sub(now).Minutes())
	}
	m.mu.Unlock()

	m.dispatch(pending)
	return st
}

// pendingNotify 锁内完成的过期转换，待释放锁后再向 Handler 派发
type pendingNotify struct {
	gathering *GatheringResult
	voting    *VotingResult
}

// expireLocked 幂等的过期转换原语。只有观察到“阶段进行中且已过截止时间”的那一次
// 调用会返回转换结果，之后的任何调用都会看到阶段已经结束。
func (m *Manager) expireLocked(now time.Time) *pendingNotify {
	switch m.phase {
	case PhaseGathering:
		if now.After(m.gatherDeadline) {
			return &pendingNotify{gathering: m.closeGatheringLocked()}
		}
	case PhaseVoting:
		if now.After(m.voteDeadline) {
			return &pendingNotify{voting: m.closeVotingLocked()}
		}
	}
	return nil
}

// closeGatheringLocked 结束征集阶段：回到 Idle 并保留议题清单等待 StartVoting
func (m *Manager) closeGatheringLocked() *GatheringResult {
	m.phase = PhaseIdle
	m.ballotReady = true
	m.gatherDeadline = time.Time{}
	m.cancelTimerLocked()

	topics := make([]Topic, len(m.topics))
	copy(topics, m.topics)
	return &GatheringResult{
		ChatID: m.chatID,
		Count:  len(topics),
		Topics: topics,
	}
}

// closeVotingLocked 结束投票阶段：生成结果快照并清空会话数据
func (m *Manager) closeVotingLocked() *VotingResult {
	m.phase = PhaseIdle
	m.voteDeadline = time.Time{}
	m.cancelTimerLocked()

	topics := make([]Topic, len(m.topics))
	copy(topics, m.topics)
	votersByTopic := make(map[int][]int64, len(topics))
	for _, topic := range topics {
		votersByTopic[topic.ID] = m.ledger.VotersOf(topic.ID)
	}

	result := &VotingResult{
		ChatID:        m.chatID,
		Topics:        topics,
		VotersByTopic: votersByTopic,
	}

	m.topics = nil
	m.ledger = NewVoteLedger()
	return result
}

// armTimerLocked 挂起一次性过期定时器，携带当前代数
func (m *Manager) armTimerLocked(d time.Duration) {
	m.cancelTimerLocked()
	gen := m.gen
	m.timer = time.AfterFunc(d, func() {
		m.handleTimer(gen)
	})
}

// cancelTimerLocked 取消挂起的定时器并递增代数。Stop 返回 false 说明回调已在路上，
// 此时由代数检查保证迟到触发为空操作。
func (m *Manager) cancelTimerLocked() {
	m.gen++
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
}

// handleTimer 定时器回调，代数不匹配说明定时器已被取消
func (m *Manager) handleTimer(gen uint64) {
	m.mu.Lock()
	if gen != m.gen {
		m.mu.Unlock()
		return
	}
	pending := m.expireLocked(m.clock.Now())
	m.mu.Unlock()

	if pending != nil {
		logger.Debugf("[Session] 定时器触发过期转换")
	}
	m.dispatch(pending)
}

// dispatch 在锁外向 Handler 派发过期通知
func (m *Manager) dispatch(pending *pendingNotify) {
	if pending == nil {
		return
	}
	m.mu.Lock()
	h := m.handler
	m.mu.Unlock()
	if h == nil {
		return
	}
	if pending.gathering != nil {
		h.OnGatheringExpired(pending.gathering)
	}
	if pending.voting != nil {
		h.OnVotingExpired(pending.voting)
	}
}
