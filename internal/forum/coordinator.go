package forum

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/fachebot/forum-meet-bot/internal/clock"
	"github.com/fachebot/forum-meet-bot/internal/config"
	"github.com/fachebot/forum-meet-bot/internal/ent"
	"github.com/fachebot/forum-meet-bot/internal/logger"
	"github.com/fachebot/forum-meet-bot/internal/model"
	"github.com/fachebot/forum-meet-bot/internal/planner"
	"github.com/fachebot/forum-meet-bot/internal/session"
	"github.com/robfig/cron/v3"
)

// locUTC UTC 标准时间（UTC）
var locUTC = time.UTC

// sessionNotifier 公告发送接口，便于测试
type sessionNotifier interface {
	AnnounceGatheringStarted(chatID int64, minutes int, deadline time.Time) error
	AnnounceBallot(chatID int64, topics []session.Topic, minutes int, deadline time.Time) error
	AnnounceNoTopics(chatID int64) error
	AnnounceVotingClosed(chatID int64, topicCount int) error
	AnnounceEvent(chatID int64, event *planner.ScheduledEvent) error
}

// eventPlanner 排期接口
type eventPlanner interface {
	CreateEvents(ctx context.Context, result *session.VotingResult) []planner.ScheduledEvent
}

// sessionArchive 会话归档接口
type sessionArchive interface {
	Create(ctx context.Context, chatID int64, startedAt time.Time) (*ent.ForumSession, error)
	MarkVoting(ctx context.Context, id int, topicCount int) error
	MarkCompleted(ctx context.Context, id int, eventCount int, closedAt time.Time) error
	MarkCancelled(ctx context.Context, id int, topicCount int, closedAt time.Time) error
}

// eventArchive 会议归档接口
type eventArchive interface {
	Create(ctx context.Context, data *model.MeetingEventData) (*ent.MeetingEvent, error)
	ListRecent(ctx context.Context, chatID int64, limit int) ([]*ent.MeetingEvent, error)
}

// Coordinator 论坛流程编排：串起会话状态机、排期器、通知器和归档层。
// 状态机的过期通知（定时器、惰性检查、cron 兜底）最终都汇到这里处理。
type Coordinator struct {
	cron         *cron.Cron
	manager      *session.Manager
	planner      eventPlanner
	notifier     sessionNotifier
	sessionModel sessionArchive
	eventModel   eventArchive
	clock        clock.Clock
	config       *config.Forum
	ctx          context.Context
	cancel       context.CancelFunc
	mu           sync.Mutex

	// 当前会话的归档记录ID与投票时长，跨阶段回调之间传递
	archiveID   int
	voteMinutes int
}

func NewCoordinator(
	manager *session.Manager,
	plannerInstance eventPlanner,
	notifier sessionNotifier,
	sessionModel sessionArchive,
	eventModel eventArchive,
	clk clock.Clock,
	cfg *config.Forum,
) *Coordinator {
	c := &Coordinator{
		cron:         cron.New(cron.WithLocation(locUTC)),
		manager:      manager,
		planner:      plannerInstance,
		notifier:     notifier,
		sessionModel: sessionModel,
		eventModel:   eventModel,
		clock:        clk,
		config:       cfg,
	}
	manager.SetHandler(c)
	return c
}

// Start 启动过期兜底检查任务
func (c *Coordinator) Start() error {
	c.mu.Lock()
	c.ctx, c.cancel = context.WithCancel(context.Background())
	c.mu.Unlock()

	_, err := c.cron.AddFunc(c.config.SweepCron, c.sweepExpiry)
	if err != nil {
		return fmt.Errorf("注册过期检查任务失败: %w", err)
	}

	c.cron.Start()
	logger.Infof("[Forum] 协调器已启动，过期兜底检查: %s", c.config.SweepCron)
	return nil
}

// Stop 停止协调器
func (c *Coordinator) Stop() {
	c.mu.Lock()
	if c.cancel != nil {
		c.cancel()
	}
	c.mu.Unlock()

	ctx := c.cron.Stop()
	<-ctx.Done()
	logger.Infof("[Forum] 协调器已停止")
}

// sweepExpiry 过期兜底检查。一次性定时器在进程内可靠触发时这里只是空转，
// 转换本身经由状态机的幂等过期原语，不会重复。
func (c *Coordinator) sweepExpiry() {
	if c.manager.CheckExpiry() {
		logger.Infof("[Forum] 兜底检查触发了过期转换")
	}
}

// StartForum 开启一次论坛会话。gatherMinutes/voteMinutes 小于等于 0 时使用配置默认值。
func (c *Coordinator) StartForum(chatID int64, gatherMinutes, voteMinutes int) (time.Time, error) {
	if gatherMinutes <= 0 {
		gatherMinutes = c.config.DefaultGatherMinutes
	}
	if voteMinutes <= 0 {
		voteMinutes = c.config.DefaultVoteMinutes
	}

	deadline, err := c.manager.StartGathering(gatherMinutes, voteMinutes, chatID)
	if err != nil {
		return time.Time{}, err
	}

	c.mu.Lock()
	ctx := c.ctx
	c.voteMinutes = voteMinutes
	c.archiveID = 0
	c.mu.Unlock()

	if ctx == nil {
		ctx = context.Background()
	}
	record, dbErr := c.sessionModel.Create(ctx, chatID, c.clock.Now().In(locUTC))
	if dbErr != nil {
		logger.Errorf("[Forum] 归档会话记录失败: %v", dbErr)
	} else {
		c.mu.Lock()
		c.archiveID = record.ID
		c.mu.Unlock()
	}

	logger.Infof("[Forum] 议题征集开始: chatID=%d, 征集 %d 分钟, 投票 %d 分钟", chatID, gatherMinutes, voteMinutes)
	if err = c.notifier.AnnounceGatheringStarted(chatID, gatherMinutes, deadline); err != nil {
		logger.Errorf("[Forum] 发送征集开始公告失败: %v", err)
	}
	return deadline, nil
}

// ErrNoActiveSession 当前既不在征集也不在投票
var ErrNoActiveSession = errors.New("当前没有进行中的会话")

// StopForum 提前结束当前阶段：征集中则结束征集并进入投票，投票中则结束投票并排期
func (c *Coordinator) StopForum() error {
	if result, err := c.manager.StopGathering(); err == nil {
		c.handleGatheringEnd(result)
		return nil
	}
	if result, err := c.manager.StopVoting(); err == nil {
		c.handleVotingEnd(result)
		return nil
	}
	return ErrNoActiveSession
}

// GetStatus 当前会话状态
func (c *Coordinator) GetStatus() session.Status {
	return c.manager.GetStatus()
}

// SubmitTopic 提交议题
func (c *Coordinator) SubmitTopic(userID int64, text string) bool {
	return c.manager.SubmitTopic(userID, text)
}

// CastVote 投票，返回该议题的最新票数
func (c *Coordinator) CastVote(userID int64, topicID int) (int, error) {
	return c.manager.CastVote(userID, topicID)
}

// FormatHistory 查询群组最近排期的会议并格式化为文本
func (c *Coordinator) FormatHistory(chatID int64, limit int) (string, error) {
	c.mu.Lock()
	ctx := c.ctx
	c.mu.Unlock()
	if ctx == nil {
		ctx = context.Background()
	}

	events, err := c.eventModel.ListRecent(ctx, chatID, limit)
	if err != nil {
		return "", fmt.Errorf("查询会议历史失败: %w", err)
	}
	if len(events) == 0 {
		return "本群还没有排期过会议。", nil
	}

	var sb strings.Builder
	sb.WriteString("📖 <b>最近排期的会议</b>\n\n")
	for _, event := range events {
		fmt.Fprintf(&sb, "- %s（%s, %d 票）\n",
			event.TopicText,
			event.StartTime.Format("2006-01-02 15:04"),
			event.Votes,
		)
	}
	return strings.TrimRight(sb.String(), "\n"), nil
}

// OnGatheringExpired 实现 session.Handler，处理定时器或惰性检查触发的征集结束
func (c *Coordinator) OnGatheringExpired(result *session.GatheringResult) {
	logger.Infof("[Forum] 议题征集到期结束: chatID=%d, 收到 %d 个议题", result.ChatID, result.Count)
	c.handleGatheringEnd(result)
}

// OnVotingExpired 实现 session.Handler，处理定时器或惰性检查触发的投票结束
func (c *Coordinator) OnVotingExpired(result *session.VotingResult) {
	logger.Infof("[Forum] 投票到期结束: chatID=%d, %d 个议题", result.ChatID, len(result.Topics))
	c.handleVotingEnd(result)
}

// handleGatheringEnd 征集结束后的编排：零议题时跳过投票直接收尾，否则开启投票。
// 跳过投票是编排层的策略选择，状态机本身支持空白选票走完投票阶段。
func (c *Coordinator) handleGatheringEnd(result *session.GatheringResult) {
	c.mu.Lock()
	ctx := c.ctx
	archiveID := c.archiveID
	voteMinutes := c.voteMinutes
	c.mu.Unlock()
	if ctx == nil {
		ctx = context.Background()
	}

	if result.Count == 0 {
		c.manager.DiscardBallot()
		if err := c.notifier.AnnounceNoTopics(result.ChatID); err != nil {
			logger.Errorf("[Forum] 发送空议题公告失败: %v", err)
		}
		if archiveID > 0 {
			if err := c.sessionModel.MarkCancelled(ctx, archiveID, 0, c.clock.Now().In(locUTC)); err != nil {
				logger.Errorf("[Forum] 归档会话取消状态失败: %v", err)
			}
		}
		return
	}

	deadline, err := c.manager.StartVoting(voteMinutes)
	if err != nil {
		logger.Errorf("[Forum] 开启投票失败: %v", err)
		return
	}

	if archiveID > 0 {
		if err = c.sessionModel.MarkVoting(ctx, archiveID, result.Count); err != nil {
			logger.Errorf("[Forum] 归档投票状态失败: %v", err)
		}
	}
	if err = c.notifier.AnnounceBallot(result.ChatID, result.Topics, voteMinutes, deadline); err != nil {
		logger.Errorf("[Forum] 发送投票公告失败: %v", err)
	}
}

// handleVotingEnd 投票结束后的编排：执行排期、逐条公告并归档。
// 此时状态机已回到 Idle 并释放了锁，缓慢的日历网关调用不会阻塞新的会话操作。
func (c *Coordinator) handleVotingEnd(result *session.VotingResult) {
	c.mu.Lock()
	ctx := c.ctx
	archiveID := c.archiveID
	c.mu.Unlock()
	if ctx == nil {
		ctx = context.Background()
	}

	if err := c.notifier.AnnounceVotingClosed(result.ChatID, len(result.Topics)); err != nil {
		logger.Errorf("[Forum] 发送投票结束公告失败: %v", err)
	}

	events := c.planner.CreateEvents(ctx, result)
	for i := range events {
		event := &events[i]
		if err := c.notifier.AnnounceEvent(result.ChatID, event); err != nil {
			logger.Errorf("[Forum] 发送会议排期公告失败: %v", err)
		}

		attendees := make([]string, len(event.AttendeeIds))
		for j, userID := range event.AttendeeIds {
			attendees[j] = fmt.Sprintf("%d", userID)
		}
		_, err := c.eventModel.Create(ctx, &model.MeetingEventData{
			ChatID:    result.ChatID,
			TopicText: event.Topic.Text,
			AuthorID:  event.Topic.AuthorID,
			Votes:     event.Topic.VoteCount,
			StartTime: event.Start,
			EndTime:   event.End,
			EventID:   event.EventId,
			WebLink:   event.WebLink,
			Attendees: strings.Join(attendees, ","),
		})
		if err != nil {
			logger.Errorf("[Forum] 归档会议记录失败: %v", err)
		}
	}

	if archiveID > 0 {
		if err := c.sessionModel.MarkCompleted(ctx, archiveID, len(events), c.clock.Now().In(locUTC)); err != nil {
			logger.Errorf("[Forum] 归档会话完成状态失败: %v", err)
		}
	}
	logger.Infof("[Forum] 本次会话排期完成: 成功 %d 个会议", len(events))
}
