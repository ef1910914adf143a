package model

import (
	"context"
	"time"

	"github.com/fachebot/forum-meet-bot/internal/ent"
	"github.com/fachebot/forum-meet-bot/internal/ent/meetingevent"
)

type MeetingEventModel struct {
	client *ent.MeetingEventClient
}

func NewMeetingEventModel(client *ent.MeetingEventClient) *MeetingEventModel {
	return &MeetingEventModel{client: client}
}

type MeetingEventData struct {
	ChatID    int64
	TopicText string
	AuthorID  int64
	Votes     int
	StartTime time.Time
	EndTime   time.Time
	EventID   string
	WebLink   string
	Attendees string
}

// Create 归档一条排期成功的会议
func (m *MeetingEventModel) Create(ctx context.Context, data *MeetingEventData) (*ent.MeetingEvent, error) {
	create := m.client.Create().
		SetChatID(data.ChatID).
		SetTopicText(data.TopicText).
		SetAuthorID(data.AuthorID).
		SetVotes(data.Votes).
		SetStartTime(data.StartTime).
		SetEndTime(data.EndTime)

	if data.EventID != "" {
		create.SetEventID(data.EventID)
	}
	if data.WebLink != "" {
		create.SetWebLink(data.WebLink)
	}
	if data.Attendees != "" {
		create.SetAttendees(data.Attendees)
	}
	return create.Save(ctx)
}

// ListRecent 查询群组最近排期的会议，按开始时间倒序
func (m *MeetingEventModel) ListRecent(ctx context.Context, chatID int64, limit int) ([]*ent.MeetingEvent, error) {
	return m.client.Query().
		Where(meetingevent.ChatIDEQ(chatID)).
		Order(ent.Desc(meetingevent.FieldStartTime)).
		Limit(limit).
		All(ctx)
}
