// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fachebot/forum-meet-bot/internal/ent/meetingevent"
)

// MeetingEvent is the model entity for the MeetingEvent schema.
type MeetingEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// CreateTime holds the value of the "create_time" field.
	CreateTime time.Time `json:"create_time,omitempty"`
	// UpdateTime holds the value of the "update_time" field.
	UpdateTime time.Time `json:"update_time,omitempty"`
	// 所属群组ID
	ChatID int64 `json:"chat_id,omitempty"`
	// 议题内容
	TopicText string `json:"topic_text,omitempty"`
	// 议题提交者ID
	AuthorID int64 `json:"author_id,omitempty"`
	// 得票数
	Votes int `json:"votes,omitempty"`
	// 会议开始时间
	StartTime time.Time `json:"start_time,omitempty"`
	// 会议结束时间
	EndTime time.Time `json:"end_time,omitempty"`
	// 日历网关返回的事件ID
	EventID string `json:"event_id,omitempty"`
	// 日历事件的网页链接
	WebLink string `json:"web_link,omitempty"`
	// 参会用户ID列表，逗号分隔
	Attendees    string `json:"attendees,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MeetingEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case meetingevent.FieldID, meetingevent.FieldChatID, meetingevent.FieldAuthorID, meetingevent.FieldVotes:
			values[i] = new(sql.NullInt64)
		case meetingevent.FieldTopicText, meetingevent.FieldEventID, meetingevent.FieldWebLink, meetingevent.FieldAttendees:
			values[i] = new(sql.NullString)
		case meetingevent.FieldCreateTime, meetingevent.FieldUpdateTime, meetingevent.FieldStartTime, meetingevent.FieldEndTime:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MeetingEvent fields.
func (me *MeetingEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case meetingevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			me.ID = int(value.Int64)
		case meetingevent.FieldCreateTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field create_time", values[i])
			} else if value.Valid {
				me.CreateTime = value.Time
			}
		case meetingevent.FieldUpdateTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field update_time", values[i])
			} else if value.Valid {
				me.UpdateTime = value.Time
			}
		case meetingevent.FieldChatID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field chat_id", values[i])
			} else if value.Valid {
				me.ChatID = value.Int64
			}
		case meetingevent.FieldTopicText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic_text", values[i])
			} else if value.Valid {
				me.TopicText = value.String
			}
		case meetingevent.FieldAuthorID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field author_id", values[i])
			} else if value.Valid {
				me.AuthorID = value.Int64
			}
		case meetingevent.FieldVotes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field votes", values[i])
			} else if value.Valid {
				me.Votes = int(value.Int64)
			}
		case meetingevent.FieldStartTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field start_time", values[i])
			} else if value.Valid {
				me.StartTime = value.Time
			}
		case meetingevent.FieldEndTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field end_time", values[i])
			} else if value.Valid {
				me.EndTime = value.Time
			}
		case meetingevent.FieldEventID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field event_id", values[i])
			} else if value.Valid {
				me.EventID = value.String
			}
		case meetingevent.FieldWebLink:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field web_link", values[i])
			} else if value.Valid {
				me.WebLink = value.String
			}
		case meetingevent.FieldAttendees:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field attendees", values[i])
			} else if value.Valid {
				me.Attendees = value.String
			}
		default:
			me.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the MeetingEvent.
// This includes values selected through modifiers, order, etc.
func (me *MeetingEvent) Value(name string) (ent.Value, error) {
	return me.selectValues.Get(name)
}

// Update returns a builder for updating this MeetingEvent.
// Note that you need to call MeetingEvent.Unwrap() before calling this method if this MeetingEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (me *MeetingEvent) Update() *MeetingEventUpdateOne {
	return NewMeetingEventClient(me.config).UpdateOne(me)
}

// Unwrap unwraps the MeetingEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (me *MeetingEvent) Unwrap() *MeetingEvent {
	_tx, ok := me.config.driver.(*txDriver)
	if !ok {
		panic("ent: MeetingEvent is not a transactional entity")
	}
	me.config.driver = _tx.drv
	return me
}

// String implements the fmt.Stringer.
func (me *MeetingEvent) String() string {
	var builder strings.Builder
	builder.WriteString("MeetingEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", me.ID))
	builder.WriteString("create_time=")
	builder.WriteString(me.CreateTime.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("update_time=")
	builder.WriteString(me.UpdateTime.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("chat_id=")
	builder.WriteString(fmt.Sprintf("%v", me.ChatID))
	builder.WriteString(", ")
	builder.WriteString("topic_text=")
	builder.WriteString(me.TopicText)
	builder.WriteString(", ")
	builder.WriteString("author_id=")
	builder.WriteString(fmt.Sprintf("%v", me.AuthorID))
	builder.WriteString(", ")
	builder.WriteString("votes=")
	builder.WriteString(fmt.Sprintf("%v", me.Votes))
	builder.WriteString(", ")
	builder.WriteString("start_time=")
	builder.WriteString(me.StartTime.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("end_time=")
	builder.WriteString(me.EndTime.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("event_id=")
	builder.WriteString(me.EventID)
	builder.WriteString(", ")
	builder.WriteString("web_link=")
	builder.WriteString(me.WebLink)
	builder.WriteString(", ")
	builder.WriteString("attendees=")
	builder.WriteString(me.Attendees)
	builder.WriteByte(')')
	return builder.String()
}

// MeetingEvents is a parsable slice of MeetingEvent.
type MeetingEvents []*MeetingEvent
