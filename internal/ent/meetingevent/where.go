// Code generated by ent, DO NOT EDIT.

package meetingevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/fachebot/forum-meet-bot/internal/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldLTE(FieldID, id))
}

// CreateTime applies equality check predicate on the "create_time" field. It's identical to CreateTimeEQ.
func CreateTime(v time.Time) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldEQ(FieldCreateTime, v))
}

// UpdateTime applies equality check predicate on the "update_time" field. It's identical to UpdateTimeEQ.
func UpdateTime(v time.Time) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldEQ(FieldUpdateTime, v))
}

// ChatID applies equality check predicate on the "chat_id" field. It's identical to ChatIDEQ.
func ChatID(v int64) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldEQ(FieldChatID, v))
}

// TopicText applies equality check predicate on the "topic_text" field. It's identical to TopicTextEQ.
func TopicText(v string) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldEQ(FieldTopicText, v))
}

// AuthorID applies equality check predicate on the "author_id" field. It's identical to AuthorIDEQ.
func AuthorID(v int64) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldEQ(FieldAuthorID, v))
}

// Votes applies equality check predicate on the "votes" field. It's identical to VotesEQ.
func Votes(v int) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldEQ(FieldVotes, v))
}

// StartTime applies equality check predicate on the "start_time" field. It's identical to StartTimeEQ.
func StartTime(v time.Time) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldEQ(FieldStartTime, v))
}

// EndTime applies equality check predicate on the "end_time" field. It's identical to EndTimeEQ.
func EndTime(v time.Time) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldEQ(FieldEndTime, v))
}

// EventID applies equality check predicate on the "event_id" field. It's identical to EventIDEQ.
func EventID(v string) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldEQ(FieldEventID, v))
}

// WebLink applies equality check predicate on the "web_link" field. It's identical to WebLinkEQ.
func WebLink(v string) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldEQ(FieldWebLink, v))
}

// Attendees applies equality check predicate on the "attendees" field. It's identical to AttendeesEQ.
func Attendees(v string) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldEQ(FieldAttendees, v))
}

// CreateTimeEQ applies the EQ predicate on the "create_time" field.
func CreateTimeEQ(v time.Time) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldEQ(FieldCreateTime, v))
}

// CreateTimeNEQ applies the NEQ predicate on the "create_time" field.
func CreateTimeNEQ(v time.Time) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldNEQ(FieldCreateTime, v))
}

// CreateTimeIn applies the In predicate on the "create_time" field.
func CreateTimeIn(vs ...time.Time) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldIn(FieldCreateTime, vs...))
}

// CreateTimeNotIn applies the NotIn predicate on the "create_time" field.
func CreateTimeNotIn(vs ...time.Time) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldNotIn(FieldCreateTime, vs...))
}

// CreateTimeGT applies the GT predicate on the "create_time" field.
func CreateTimeGT(v time.Time) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldGT(FieldCreateTime, v))
}

// CreateTimeGTE applies the GTE predicate on the "create_time" field.
func CreateTimeGTE(v time.Time) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldGTE(FieldCreateTime, v))
}

// CreateTimeLT applies the LT predicate on the "create_time" field.
func CreateTimeLT(v time.Time) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldLT(FieldCreateTime, v))
}

// CreateTimeLTE applies the LTE predicate on the "create_time" field.
func CreateTimeLTE(v time.Time) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldLTE(FieldCreateTime, v))
}

// UpdateTimeEQ applies the EQ predicate on the "update_time" field.
func UpdateTimeEQ(v time.Time) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldEQ(FieldUpdateTime, v))
}

// UpdateTimeNEQ applies the NEQ predicate on the "update_time" field.
func UpdateTimeNEQ(v time.Time) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldNEQ(FieldUpdateTime, v))
}

// UpdateTimeIn applies the In predicate on the "update_time" field.
func UpdateTimeIn(vs ...time.Time) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldIn(FieldUpdateTime, vs...))
}

// UpdateTimeNotIn applies the NotIn predicate on the "update_time" field.
func UpdateTimeNotIn(vs ...time.Time) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldNotIn(FieldUpdateTime, vs...))
}

// UpdateTimeGT applies the GT predicate on the "update_time" field.
func UpdateTimeGT(v time.Time) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldGT(FieldUpdateTime, v))
}

// UpdateTimeGTE applies the GTE predicate on the "update_time" field.
func UpdateTimeGTE(v time.Time) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldGTE(FieldUpdateTime, v))
}

// UpdateTimeLT applies the LT predicate on the "update_time" field.
func UpdateTimeLT(v time.Time) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldLT(FieldUpdateTime, v))
}

// UpdateTimeLTE applies the LTE predicate on the "update_time" field.
func UpdateTimeLTE(v time.Time) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldLTE(FieldUpdateTime, v))
}

// ChatIDEQ applies the EQ predicate on the "chat_id" field.
func ChatIDEQ(v int64) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldEQ(FieldChatID, v))
}

// ChatIDNEQ applies the NEQ predicate on the "chat_id" field.
func ChatIDNEQ(v int64) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldNEQ(FieldChatID, v))
}

// ChatIDIn applies the In predicate on the "chat_id" field.
func ChatIDIn(vs ...int64) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldIn(FieldChatID, vs...))
}

// ChatIDNotIn applies the NotIn predicate on the "chat_id" field.
func ChatIDNotIn(vs ...int64) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldNotIn(FieldChatID, vs...))
}

// ChatIDGT applies the GT predicate on the "chat_id" field.
func ChatIDGT(v int64) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldGT(FieldChatID, v))
}

// ChatIDGTE applies the GTE predicate on the "chat_id" field.
func ChatIDGTE(v int64) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldGTE(FieldChatID, v))
}

// ChatIDLT applies the LT predicate on the "chat_id" field.
func ChatIDLT(v int64) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldLT(FieldChatID, v))
}

// ChatIDLTE applies the LTE predicate on the "chat_id" field.
func ChatIDLTE(v int64) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldLTE(FieldChatID, v))
}

// TopicTextEQ applies the EQ predicate on the "topic_text" field.
func TopicTextEQ(v string) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldEQ(FieldTopicText, v))
}

// TopicTextNEQ applies the NEQ predicate on the "topic_text" field.
func TopicTextNEQ(v string) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldNEQ(FieldTopicText, v))
}

// TopicTextIn applies the In predicate on the "topic_text" field.
func TopicTextIn(vs ...string) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldIn(FieldTopicText, vs...))
}

// TopicTextNotIn applies the NotIn predicate on the "topic_text" field.
func TopicTextNotIn(vs ...string) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldNotIn(FieldTopicText, vs...))
}

// TopicTextGT applies the GT predicate on the "topic_text" field.
func TopicTextGT(v string) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldGT(FieldTopicText, v))
}

// TopicTextGTE applies the GTE predicate on the "topic_text" field.
func TopicTextGTE(v string) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldGTE(FieldTopicText, v))
}

// TopicTextLT applies the LT predicate on the "topic_text" field.
func TopicTextLT(v string) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldLT(FieldTopicText, v))
}

// TopicTextLTE applies the LTE predicate on the "topic_text" field.
func TopicTextLTE(v string) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldLTE(FieldTopicText, v))
}

// TopicTextContains applies the Contains predicate on the "topic_text" field.
func TopicTextContains(v string) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldContains(FieldTopicText, v))
}

// TopicTextHasPrefix applies the HasPrefix predicate on the "topic_text" field.
func TopicTextHasPrefix(v string) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldHasPrefix(FieldTopicText, v))
}

// TopicTextHasSuffix applies the HasSuffix predicate on the "topic_text" field.
func TopicTextHasSuffix(v string) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldHasSuffix(FieldTopicText, v))
}

// TopicTextEqualFold applies the EqualFold predicate on the "topic_text" field.
func TopicTextEqualFold(v string) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldEqualFold(FieldTopicText, v))
}

// TopicTextContainsFold applies the ContainsFold predicate on the "topic_text" field.
func TopicTextContainsFold(v string) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldContainsFold(FieldTopicText, v))
}

// AuthorIDEQ applies the EQ predicate on the "author_id" field.
func AuthorIDEQ(v int64) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldEQ(FieldAuthorID, v))
}

// AuthorIDNEQ applies the NEQ predicate on the "author_id" field.
func AuthorIDNEQ(v int64) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldNEQ(FieldAuthorID, v))
}

// AuthorIDIn applies the In predicate on the "author_id" field.
func AuthorIDIn(vs ...int64) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldIn(FieldAuthorID, vs...))
}

// AuthorIDNotIn applies the NotIn predicate on the "author_id" field.
func AuthorIDNotIn(vs ...int64) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldNotIn(FieldAuthorID, vs...))
}

// AuthorIDGT applies the GT predicate on the "author_id" field.
func AuthorIDGT(v int64) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldGT(FieldAuthorID, v))
}

// AuthorIDGTE applies the GTE predicate on the "author_id" field.
func AuthorIDGTE(v int64) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldGTE(FieldAuthorID, v))
}

// AuthorIDLT applies the LT predicate on the "author_id" field.
func AuthorIDLT(v int64) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldLT(FieldAuthorID, v))
}

// AuthorIDLTE applies the LTE predicate on the "author_id" field.
func AuthorIDLTE(v int64) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldLTE(FieldAuthorID, v))
}

// VotesEQ applies the EQ predicate on the "votes" field.
func VotesEQ(v int) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldEQ(FieldVotes, v))
}

// VotesNEQ applies the NEQ predicate on the "votes" field.
func VotesNEQ(v int) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldNEQ(FieldVotes, v))
}

// VotesIn applies the In predicate on the "votes" field.
func VotesIn(vs ...int) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldIn(FieldVotes, vs...))
}

// VotesNotIn applies the NotIn predicate on the "votes" field.
func VotesNotIn(vs ...int) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldNotIn(FieldVotes, vs...))
}

// VotesGT applies the GT predicate on the "votes" field.
func VotesGT(v int) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldGT(FieldVotes, v))
}

// VotesGTE applies the GTE predicate on the "votes" field.
func VotesGTE(v int) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldGTE(FieldVotes, v))
}

// VotesLT applies the LT predicate on the "votes" field.
func VotesLT(v int) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldLT(FieldVotes, v))
}

// VotesLTE applies the LTE predicate on the "votes" field.
func VotesLTE(v int) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldLTE(FieldVotes, v))
}

// StartTimeEQ applies the EQ predicate on the "start_time" field.
func StartTimeEQ(v time.Time) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldEQ(FieldStartTime, v))
}

// StartTimeNEQ applies the NEQ predicate on the "start_time" field.
func StartTimeNEQ(v time.Time) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldNEQ(FieldStartTime, v))
}

// StartTimeIn applies the In predicate on the "start_time" field.
func StartTimeIn(vs ...time.Time) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldIn(FieldStartTime, vs...))
}

// StartTimeNotIn applies the NotIn predicate on the "start_time" field.
func StartTimeNotIn(vs ...time.Time) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldNotIn(FieldStartTime, vs...))
}

// StartTimeGT applies the GT predicate on the "start_time" field.
func StartTimeGT(v time.Time) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldGT(FieldStartTime, v))
}

// StartTimeGTE applies the GTE predicate on the "start_time" field.
func StartTimeGTE(v time.Time) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldGTE(FieldStartTime, v))
}

// StartTimeLT applies the LT predicate on the "start_time" field.
func StartTimeLT(v time.Time) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldLT(FieldStartTime, v))
}

// StartTimeLTE applies the LTE predicate on the "start_time" field.
func StartTimeLTE(v time.Time) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldLTE(FieldStartTime, v))
}

// EndTimeEQ applies the EQ predicate on the "end_time" field.
func EndTimeEQ(v time.Time) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldEQ(FieldEndTime, v))
}

// EndTimeNEQ applies the NEQ predicate on the "end_time" field.
func EndTimeNEQ(v time.Time) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldNEQ(FieldEndTime, v))
}

// EndTimeIn applies the In predicate on the "end_time" field.
func EndTimeIn(vs ...time.Time) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldIn(FieldEndTime, vs...))
}

// EndTimeNotIn applies the NotIn predicate on the "end_time" field.
func EndTimeNotIn(vs ...time.Time) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldNotIn(FieldEndTime, vs...))
}

// EndTimeGT applies the GT predicate on the "end_time" field.
func EndTimeGT(v time.Time) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldGT(FieldEndTime, v))
}

// EndTimeGTE applies the GTE predicate on the "end_time" field.
func EndTimeGTE(v time.Time) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldGTE(FieldEndTime, v))
}

// EndTimeLT applies the LT predicate on the "end_time" field.
func EndTimeLT(v time.Time) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldLT(FieldEndTime, v))
}

// EndTimeLTE applies the LTE predicate on the "end_time" field.
func EndTimeLTE(v time.Time) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldLTE(FieldEndTime, v))
}

// EventIDEQ applies the EQ predicate on the "event_id" field.
func EventIDEQ(v string) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldEQ(FieldEventID, v))
}

// EventIDNEQ applies the NEQ predicate on the "event_id" field.
func EventIDNEQ(v string) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldNEQ(FieldEventID, v))
}

// EventIDIn applies the In predicate on the "event_id" field.
func EventIDIn(vs ...string) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldIn(FieldEventID, vs...))
}

// EventIDNotIn applies the NotIn predicate on the "event_id" field.
func EventIDNotIn(vs ...string) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldNotIn(FieldEventID, vs...))
}

// EventIDGT applies the GT predicate on the "event_id" field.
func EventIDGT(v string) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldGT(FieldEventID, v))
}

// EventIDGTE applies the GTE predicate on the "event_id" field.
func EventIDGTE(v string) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldGTE(FieldEventID, v))
}

// EventIDLT applies the LT predicate on the "event_id" field.
func EventIDLT(v string) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldLT(FieldEventID, v))
}

// EventIDLTE applies the LTE predicate on the "event_id" field.
func EventIDLTE(v string) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldLTE(FieldEventID, v))
}

// EventIDContains applies the Contains predicate on the "event_id" field.
func EventIDContains(v string) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldContains(FieldEventID, v))
}

// EventIDHasPrefix applies the HasPrefix predicate on the "event_id" field.
func EventIDHasPrefix(v string) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldHasPrefix(FieldEventID, v))
}

// EventIDHasSuffix applies the HasSuffix predicate on the "event_id" field.
func EventIDHasSuffix(v string) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldHasSuffix(FieldEventID, v))
}

// EventIDIsNil applies the IsNil predicate on the "event_id" field.
func EventIDIsNil() predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldIsNull(FieldEventID))
}

// EventIDNotNil applies the NotNil predicate on the "event_id" field.
func EventIDNotNil() predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldNotNull(FieldEventID))
}

// EventIDEqualFold applies the EqualFold predicate on the "event_id" field.
func EventIDEqualFold(v string) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldEqualFold(FieldEventID, v))
}

// EventIDContainsFold applies the ContainsFold predicate on the "event_id" field.
func EventIDContainsFold(v string) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldContainsFold(FieldEventID, v))
}

// WebLinkEQ applies the EQ predicate on the "web_link" field.
func WebLinkEQ(v string) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldEQ(FieldWebLink, v))
}

// WebLinkNEQ applies the NEQ predicate on the "web_link" field.
func WebLinkNEQ(v string) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldNEQ(FieldWebLink, v))
}

// WebLinkIn applies the In predicate on the "web_link" field.
func WebLinkIn(vs ...string) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldIn(FieldWebLink, vs...))
}

// WebLinkNotIn applies the NotIn predicate on the "web_link" field.
func WebLinkNotIn(vs ...string) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldNotIn(FieldWebLink, vs...))
}

// WebLinkGT applies the GT predicate on the "web_link" field.
func WebLinkGT(v string) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldGT(FieldWebLink, v))
}

// WebLinkGTE applies the GTE predicate on the "web_link" field.
func WebLinkGTE(v string) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldGTE(FieldWebLink, v))
}

// WebLinkLT applies the LT predicate on the "web_link" field.
func WebLinkLT(v string) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldLT(FieldWebLink, v))
}

// WebLinkLTE applies the LTE predicate on the "web_link" field.
func WebLinkLTE(v string) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldLTE(FieldWebLink, v))
}

// WebLinkContains applies the Contains predicate on the "web_link" field.
func WebLinkContains(v string) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldContains(FieldWebLink, v))
}

// WebLinkHasPrefix applies the HasPrefix predicate on the "web_link" field.
func WebLinkHasPrefix(v string) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldHasPrefix(FieldWebLink, v))
}

// WebLinkHasSuffix applies the HasSuffix predicate on the "web_link" field.
func WebLinkHasSuffix(v string) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldHasSuffix(FieldWebLink, v))
}

// WebLinkIsNil applies the IsNil predicate on the "web_link" field.
func WebLinkIsNil() predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldIsNull(FieldWebLink))
}

// WebLinkNotNil applies the NotNil predicate on the "web_link" field.
func WebLinkNotNil() predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldNotNull(FieldWebLink))
}

// WebLinkEqualFold applies the EqualFold predicate on the "web_link" field.
func WebLinkEqualFold(v string) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldEqualFold(FieldWebLink, v))
}

// WebLinkContainsFold applies the ContainsFold predicate on the "web_link" field.
func WebLinkContainsFold(v string) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldContainsFold(FieldWebLink, v))
}

// AttendeesEQ applies the EQ predicate on the "attendees" field.
func AttendeesEQ(v string) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldEQ(FieldAttendees, v))
}

// AttendeesNEQ applies the NEQ predicate on the "attendees" field.
func AttendeesNEQ(v string) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldNEQ(FieldAttendees, v))
}

// AttendeesIn applies the In predicate on the "attendees" field.
func AttendeesIn(vs ...string) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldIn(FieldAttendees, vs...))
}

// AttendeesNotIn applies the NotIn predicate on the "attendees" field.
func AttendeesNotIn(vs ...string) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldNotIn(FieldAttendees, vs...))
}

// AttendeesGT applies the GT predicate on the "attendees" field.
func AttendeesGT(v string) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldGT(FieldAttendees, v))
}

// AttendeesGTE applies the GTE predicate on the "attendees" field.
func AttendeesGTE(v string) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldGTE(FieldAttendees, v))
}

// AttendeesLT applies the LT predicate on the "attendees" field.
func AttendeesLT(v string) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldLT(FieldAttendees, v))
}

// AttendeesLTE applies the LTE predicate on the "attendees" field.
func AttendeesLTE(v string) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldLTE(FieldAttendees, v))
}

// AttendeesContains applies the Contains predicate on the "attendees" field.
func AttendeesContains(v string) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldContains(FieldAttendees, v))
}

// AttendeesHasPrefix applies the HasPrefix predicate on the "attendees" field.
func AttendeesHasPrefix(v string) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldHasPrefix(FieldAttendees, v))
}

// AttendeesHasSuffix applies the HasSuffix predicate on the "attendees" field.
func AttendeesHasSuffix(v string) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldHasSuffix(FieldAttendees, v))
}

// AttendeesIsNil applies the IsNil predicate on the "attendees" field.
func AttendeesIsNil() predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldIsNull(FieldAttendees))
}

// AttendeesNotNil applies the NotNil predicate on the "attendees" field.
func AttendeesNotNil() predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldNotNull(FieldAttendees))
}

// AttendeesEqualFold applies the EqualFold predicate on the "attendees" field.
func AttendeesEqualFold(v string) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldEqualFold(FieldAttendees, v))
}

// AttendeesContainsFold applies the ContainsFold predicate on the "attendees" field.
func AttendeesContainsFold(v string) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.FieldContainsFold(FieldAttendees, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MeetingEvent) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MeetingEvent) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MeetingEvent) predicate.MeetingEvent {
	return predicate.MeetingEvent(sql.NotPredicates(p))
}
