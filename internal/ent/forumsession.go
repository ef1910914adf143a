// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fachebot/forum-meet-bot/internal/ent/forumsession"
)

// ForumSession is the model entity for the ForumSession schema.
type ForumSession struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// CreateTime holds the value of the "create_time" field.
	CreateTime time.Time `json:"create_time,omitempty"`
	// UpdateTime holds the value of the "update_time" field.
	UpdateTime time.Time `json:"update_time,omitempty"`
	// 发起会话的群组ID
	ChatID int64 `json:"chat_id,omitempty"`
	// 征集开始时间
	StartedAt time.Time `json:"started_at,omitempty"`
	// 会话结束时间
	ClosedAt time.Time `json:"closed_at,omitempty"`
	// 征集到的议题数
	TopicCount int `json:"topic_count,omitempty"`
	// 排期成功的会议数
	EventCount int `json:"event_count,omitempty"`
	// 会话状态：gathering=征集中, voting=投票中, completed=已完成, cancelled=已取消
	Status       forumsession.Status `json:"status,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ForumSession) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case forumsession.FieldID, forumsession.FieldChatID, forumsession.FieldTopicCount, forumsession.FieldEventCount:
			values[i] = new(sql.NullInt64)
		case forumsession.FieldStatus:
			values[i] = new(sql.NullString)
		case forumsession.FieldCreateTime, forumsession.FieldUpdateTime, forumsession.FieldStartedAt, forumsession.FieldClosedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ForumSession fields.
func (fs *ForumSession) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case forumsession.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			fs.ID = int(value.Int64)
		case forumsession.FieldCreateTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field create_time", values[i])
			} else if value.Valid {
				fs.CreateTime = value.Time
			}
		case forumsession.FieldUpdateTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field update_time", values[i])
			} else if value.Valid {
				fs.UpdateTime = value.Time
			}
		case forumsession.FieldChatID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field chat_id", values[i])
			} else if value.Valid {
				fs.ChatID = value.Int64
			}
		case forumsession.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				fs.StartedAt = value.Time
			}
		case forumsession.FieldClosedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field closed_at", values[i])
			} else if value.Valid {
				fs.ClosedAt = value.Time
			}
		case forumsession.FieldTopicCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field topic_count", values[i])
			} else if value.Valid {
				fs.TopicCount = int(value.Int64)
			}
		case forumsession.FieldEventCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field event_count", values[i])
			} else if value.Valid {
				fs.EventCount = int(value.Int64)
			}
		case forumsession.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				fs.Status = forumsession.Status(value.String)
			}
		default:
			fs.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ForumSession.
// This includes values selected through modifiers, order, etc.
func (fs *ForumSession) Value(name string) (ent.Value, error) {
	return fs.selectValues.Get(name)
}

// Update returns a builder for updating this ForumSession.
// Note that you need to call ForumSession.Unwrap() before calling this method if this ForumSession
// was returned from a transaction, and the transaction was committed or rolled back.
func (fs *ForumSession) Update() *ForumSessionUpdateOne {
	return NewForumSessionClient(fs.config).UpdateOne(fs)
}

// Unwrap unwraps the ForumSession entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (fs *ForumSession) Unwrap() *ForumSession {
	_tx, ok := fs.config.driver.(*txDriver)
	if !ok {
		panic("ent: ForumSession is not a transactional entity")
	}
	fs.config.driver = _tx.drv
	return fs
}

// String implements the fmt.Stringer.
func (fs *ForumSession) String() string {
	var builder strings.Builder
	builder.WriteString("ForumSession(")
	builder.WriteString(fmt.Sprintf("id=%v, ", fs.ID))
	builder.WriteString("create_time=")
	builder.WriteString(fs.CreateTime.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("update_time=")
	builder.WriteString(fs.UpdateTime.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("chat_id=")
	builder.WriteString(fmt.Sprintf("%v", fs.ChatID))
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(fs.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("closed_at=")
	builder.WriteString(fs.ClosedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("topic_count=")
	builder.WriteString(fmt.Sprintf("%v", fs.TopicCount))
	builder.WriteString(", ")
	builder.WriteString("event_count=")
	builder.WriteString(fmt.Sprintf("%v", fs.EventCount))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", fs.Status))
	builder.WriteByte(')')
	return builder.String()
}

// ForumSessions is a parsable slice of ForumSession.
type ForumSessions []*ForumSession
