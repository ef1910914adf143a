package planner

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/fachebot/forum-meet-bot/internal/clock"
	"github.com/fachebot/forum-meet-bot/internal/config"
	"github.com/fachebot/forum-meet-bot/internal/logger"
	"github.com/fachebot/forum-meet-bot/internal/msgraph"
	"github.com/fachebot/forum-meet-bot/internal/session"
	"github.com/fachebot/forum-meet-bot/internal/timeslot"
)

// calendarGateway 日历网关接口，便于测试
type calendarGateway interface {
	CreateCalendarEvent(ctx context.Context, subject, bodyHTML string, start, end time.Time, attendees []string) (*msgraph.EventResult, error)
	GetEventLink(ctx context.Context, eventId string) string
}

// agendaGenerator 议程生成接口，可为空（不启用 LLM 议程）
type agendaGenerator interface {
	GenerateAgenda(ctx context.Context, topicText string) (string, error)
}

// slotAllocator 时间窗口分配接口
type slotAllocator interface {
	Pick() (timeslot.Slot, bool)
	Resolve(slot timeslot.Slot, now time.Time) (time.Time, time.Time)
}

// ScheduledEvent 排期成功的会议记录
type ScheduledEvent struct {
	Topic       session.Topic
	Slot        timeslot.Slot
	Start       time.Time
	End         time.Time
	AttendeeIds []int64
	EventId     string
	WebLink     string
}

// Planner 在投票结束后把得票最高的议题排期为日历会议。
// 每个议题独立处理：缺少时间窗口或网关失败只跳过当前议题，不中断整批。
type Planner struct {
	gateway calendarGateway
	slots   slotAllocator
	agenda  agendaGenerator
	clock   clock.Clock
	config  *config.Forum
}

func NewPlanner(
	gateway calendarGateway,
	slots slotAllocator,
	agenda agendaGenerator,
	clk clock.Clock,
	cfg *config.Forum,
) *Planner {
	return &Planner{
		gateway: gateway,
		slots:   slots,
		agenda:  agenda,
		clock:   clk,
		config:  cfg,
	}
}

// sortTopics 按票数降序稳定排序，票数相同的议题保持提交顺序
func sortTopics(topics []session.Topic) []session.Topic {
	sorted := make([]session.Topic, len(topics))
	copy(sorted, topics)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].VoteCount > sorted[j].VoteCount
	})
	return sorted
}

// attendeesOf 聚合参会人：投票者与议题提交者的并集，提交者即使没投自己的议题也参会
func attendeesOf(topic session.Topic, votersByTopic map[int][]int64) []int64 {
	voters := votersByTopic[topic.ID]
	attendees := make([]int64, 0, len(voters)+1)
	hasAuthor := false
	for _, userID := range voters {
		if userID == topic.AuthorID {
			hasAuthor = true
		}
		attendees = append(attendees, userID)
	}
	if !hasAuthor {
		attendees = append(attendees, topic.AuthorID)
	}
	return attendees
}

// attendeeEmail 将用户ID映射为邮箱。目前使用固定域名拼接的简化映射，
// 接入真实目录服务时替换此处即可。
func (p *Planner) attendeeEmail(userID int64) string {
	return fmt.Sprintf("%d@%s", userID, p.config.AttendeeEmailDomain)
}

// eventSubject 事件标题，议题文本超过 50 个字符时截断
func eventSubject(topicText string) string {
	runes := []rune(topicText)
	if len(runes) > 50 {
		return "论坛议题: " + string(runes[:50]) + "..."
	}
	return "论坛议题: " + topicText
}

// eventBody 事件正文 HTML；启用议程生成时在正文后附加 LLM 生成的议程
func (p *Planner) eventBody(ctx context.Context, topic session.Topic) string {
	body := fmt.Sprintf(
		"<h3>论坛议题讨论</h3><p><strong>议题:</strong> %s</p><p><strong>提交者:</strong> %d</p><p><strong>得票数:</strong> %d</p>",
		topic.Text, topic.AuthorID, topic.VoteCount,
	)

	if p.agenda == nil {
		return body
	}
	generated, err := p.agenda.GenerateAgenda(ctx, topic.Text)
	if err != nil {
		logger.Warnf("[Planner] 议程生成失败，使用默认正文: %v", err)
		return body
	}
	if generated != "" {
		body += "<h4>建议议程</h4>" + generated
	}
	return body
}

// CreateEvents 为得票最高的议题创建日历会议，返回创建成功的会议列表。
// 返回数量可能少于 TopTopicsCount：议题不足、无可用时间窗口或网关失败都会缩短结果。
func (p *Planner) CreateEvents(ctx context.Context, result *session.VotingResult) []ScheduledEvent {
	sorted := sortTopics(result.Topics)

	topCount := p.config.TopTopicsCount
	if topCount > len(sorted) {
		topCount = len(sorted)
	}

	events := make([]ScheduledEvent, 0, topCount)
	for _, topic := range sorted[:topCount] {
		attendeeIds := attendeesOf(topic, result.VotersByTopic)
		emails := make([]string, len(attendeeIds))
		for i, userID := range attendeeIds {
			emails[i] = p.attendeeEmail(userID)
		}

		slot, ok := p.slots.Pick()
		if !ok {
			logger.Warnf("[Planner] 未配置可用时间窗口，跳过议题: %s", topic.Text)
			continue
		}

		start, end := p.slots.Resolve(slot, p.clock.Now())
		if !end.After(start) {
			end = start.Add(time.Duration(p.config.EventDurationMinutes) * time.Minute)
		}

		subject := eventSubject(topic.Text)
		body := p.eventBody(ctx, topic)

		eventResult, err := p.gateway.CreateCalendarEvent(ctx, subject, body, start, end, emails)
		if err != nil {
			logger.Errorf("[Planner] 创建日历事件失败，跳过议题 %q: %v", topic.Text, err)
			continue
		}

		webLink := eventResult.WebLink
		if webLink == "" && eventResult.Id != "" {
			webLink = p.gateway.GetEventLink(ctx, eventResult.Id)
		}

		events = append(events, ScheduledEvent{
			Topic:       topic,
			Slot:        slot,
			Start:       start,
			End:         end,
			AttendeeIds: attendeeIds,
			EventId:     eventResult.Id,
			WebLink:     webLink,
		})
		logger.Infof("[Planner] 已排期议题 %q: %s ~ %s, 参会人 %d 名",
			topic.Text, start.Format("2006-01-02 15:04"), end.Format("15:04"), len(attendeeIds))
	}

	return events
}
