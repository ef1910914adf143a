// Code generated by ent, DO NOT EDIT.

package forumsession

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/fachebot/forum-meet-bot/internal/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ForumSession {
	return predicate.ForumSession(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ForumSession {
	return predicate.ForumSession(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ForumSession {
	return predicate.ForumSession(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ForumSession {
	return predicate.ForumSession(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ForumSession {
	return predicate.ForumSession(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ForumSession {
	return predicate.ForumSession(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ForumSession {
	return predicate.ForumSession(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ForumSession {
	return predicate.ForumSession(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ForumSession {
	return predicate.ForumSession(sql.FieldLTE(FieldID, id))
}

// CreateTime applies equality check predicate on the "create_time" field. It's identical to CreateTimeEQ.
func CreateTime(v time.Time) predicate.ForumSession {
	return predicate.ForumSession(sql.FieldEQ(FieldCreateTime, v))
}

// UpdateTime applies equality check predicate on the "update_time" field. It's identical to UpdateTimeEQ.
func UpdateTime(v time.Time) predicate.ForumSession {
	return predicate.ForumSession(sql.FieldEQ(FieldUpdateTime, v))
}

// ChatID applies equality check predicate on the "chat_id" field. It's identical to ChatIDEQ.
func ChatID(v int64) predicate.ForumSession {
	return predicate.ForumSession(sql.FieldEQ(FieldChatID, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.ForumSession {
	return predicate.ForumSession(sql.FieldEQ(FieldStartedAt, v))
}

// ClosedAt applies equality check predicate on the "closed_at" field. It's identical to ClosedAtEQ.
func ClosedAt(v time.Time) predicate.ForumSession {
	return predicate.ForumSession(sql.FieldEQ(FieldClosedAt, v))
}

// TopicCount applies equality check predicate on the "topic_count" field. It's identical to TopicCountEQ.
func TopicCount(v int) predicate.ForumSession {
	return predicate.ForumSession(sql.FieldEQ(FieldTopicCount, v))
}

// EventCount applies equality check predicate on the "event_count" field. It's identical to EventCountEQ.
func EventCount(v int) predicate.ForumSession {
	return predicate.ForumSession(sql.FieldEQ(FieldEventCount, v))
}

// CreateTimeEQ applies the EQ predicate on the "create_time" field.
func CreateTimeEQ(v time.Time) predicate.ForumSession {
	return predicate.ForumSession(sql.FieldEQ(FieldCreateTime, v))
}

// CreateTimeNEQ applies the NEQ predicate on the "create_time" field.
func CreateTimeNEQ(v time.Time) predicate.ForumSession {
	return predicate.ForumSession(sql.FieldNEQ(FieldCreateTime, v))
}

// CreateTimeIn applies the In predicate on the "create_time" field.
func CreateTimeIn(vs ...time.Time) predicate.ForumSession {
	return predicate.ForumSession(sql.FieldIn(FieldCreateTime, vs...))
}

// CreateTimeNotIn applies the NotIn predicate on the "create_time" field.
func CreateTimeNotIn(vs ...time.Time) predicate.ForumSession {
	return predicate.ForumSession(sql.FieldNotIn(FieldCreateTime, vs...))
}

// CreateTimeGT applies the GT predicate on the "create_time" field.
func CreateTimeGT(v time.Time) predicate.ForumSession {
	return predicate.ForumSession(sql.FieldGT(FieldCreateTime, v))
}

// CreateTimeGTE applies the GTE predicate on the "create_time" field.
func CreateTimeGTE(v time.Time) predicate.ForumSession {
	return predicate.ForumSession(sql.FieldGTE(FieldCreateTime, v))
}

// CreateTimeLT applies the LT predicate on the "create_time" field.
func CreateTimeLT(v time.Time) predicate.ForumSession {
	return predicate.ForumSession(sql.FieldLT(FieldCreateTime, v))
}

// CreateTimeLTE applies the LTE predicate on the "create_time" field.
func CreateTimeLTE(v time.Time) predicate.ForumSession {
	return predicate.ForumSession(sql.FieldLTE(FieldCreateTime, v))
}

// UpdateTimeEQ applies the EQ predicate on the "update_time" field.
func UpdateTimeEQ(v time.Time) predicate.ForumSession {
	return predicate.ForumSession(sql.FieldEQ(FieldUpdateTime, v))
}

// UpdateTimeNEQ applies the NEQ predicate on the "update_time" field.
func UpdateTimeNEQ(v time.Time) predicate.ForumSession {
	return predicate.ForumSession(sql.FieldNEQ(FieldUpdateTime, v))
}

// UpdateTimeIn applies the In predicate on the "update_time" field.
func UpdateTimeIn(vs ...time.Time) predicate.ForumSession {
	return predicate.ForumSession(sql.FieldIn(FieldUpdateTime, vs...))
}

// UpdateTimeNotIn applies the NotIn predicate on the "update_time" field.
func UpdateTimeNotIn(vs ...time.Time) predicate.ForumSession {
	return predicate.ForumSession(sql.FieldNotIn(FieldUpdateTime, vs...))
}

// UpdateTimeGT applies the GT predicate on the "update_time" field.
func UpdateTimeGT(v time.Time) predicate.ForumSession {
	return predicate.ForumSession(sql.FieldGT(FieldUpdateTime, v))
}

// UpdateTimeGTE applies the GTE predicate on the "update_time" field.
func UpdateTimeGTE(v time.Time) predicate.ForumSession {
	return predicate.ForumSession(sql.FieldGTE(FieldUpdateTime, v))
}

// UpdateTimeLT applies the LT predicate on the "update_time" field.
func UpdateTimeLT(v time.Time) predicate.ForumSession {
	return predicate.ForumSession(sql.FieldLT(FieldUpdateTime, v))
}

// UpdateTimeLTE applies the LTE predicate on the "update_time" field.
func UpdateTimeLTE(v time.Time) predicate.ForumSession {
	return predicate.ForumSession(sql.FieldLTE(FieldUpdateTime, v))
}

// ChatIDEQ applies the EQ predicate on the "chat_id" field.
func ChatIDEQ(v int64) predicate.ForumSession {
	return predicate.ForumSession(sql.FieldEQ(FieldChatID, v))
}

// ChatIDNEQ applies the NEQ predicate on the "chat_id" field.
func ChatIDNEQ(v int64) predicate.ForumSession {
	return predicate.ForumSession(sql.FieldNEQ(FieldChatID, v))
}

// ChatIDIn applies the In predicate on the "chat_id" field.
func ChatIDIn(vs ...int64) predicate.ForumSession {
	return predicate.ForumSession(sql.FieldIn(FieldChatID, vs...))
}

// ChatIDNotIn applies the NotIn predicate on the "chat_id" field.
func ChatIDNotIn(vs ...int64) predicate.ForumSession {
	return predicate.ForumSession(sql.FieldNotIn(FieldChatID, vs...))
}

// ChatIDGT applies the GT predicate on the "chat_id" field.
func ChatIDGT(v int64) predicate.ForumSession {
	return predicate.ForumSession(sql.FieldGT(FieldChatID, v))
}

// ChatIDGTE applies the GTE predicate on the "chat_id" field.
func ChatIDGTE(v int64) predicate.ForumSession {
	return predicate.ForumSession(sql.FieldGTE(FieldChatID, v))
}

// ChatIDLT applies the LT predicate on the "chat_id" field.
func ChatIDLT(v int64) predicate.ForumSession {
	return predicate.ForumSession(sql.FieldLT(FieldChatID, v))
}

// ChatIDLTE applies the LTE predicate on the "chat_id" field.
func ChatIDLTE(v int64) predicate.ForumSession {
	return predicate.ForumSession(sql.FieldLTE(FieldChatID, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.ForumSession {
	return predicate.ForumSession(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.ForumSession {
	return predicate.ForumSession(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.ForumSession {
	return predicate.ForumSession(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.ForumSession {
	return predicate.ForumSession(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.ForumSession {
	return predicate.ForumSession(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.ForumSession {
	return predicate.ForumSession(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.ForumSession {
	return predicate.ForumSession(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.ForumSession {
	return predicate.ForumSession(sql.FieldLTE(FieldStartedAt, v))
}

// ClosedAtEQ applies the EQ predicate on the "closed_at" field.
func ClosedAtEQ(v time.Time) predicate.ForumSession {
	return predicate.ForumSession(sql.FieldEQ(FieldClosedAt, v))
}

// ClosedAtNEQ applies the NEQ predicate on the "closed_at" field.
func ClosedAtNEQ(v time.Time) predicate.ForumSession {
	return predicate.ForumSession(sql.FieldNEQ(FieldClosedAt, v))
}

// ClosedAtIn applies the In predicate on the "closed_at" field.
func ClosedAtIn(vs ...time.Time) predicate.ForumSession {
	return predicate.ForumSession(sql.FieldIn(FieldClosedAt, vs...))
}

// ClosedAtNotIn applies the NotIn predicate on the "closed_at" field.
func ClosedAtNotIn(vs ...time.Time) predicate.ForumSession {
	return predicate.ForumSession(sql.FieldNotIn(FieldClosedAt, vs...))
}

// ClosedAtGT applies the GT predicate on the "closed_at" field.
func ClosedAtGT(v time.Time) predicate.ForumSession {
	return predicate.ForumSession(sql.FieldGT(FieldClosedAt, v))
}

// ClosedAtGTE applies the GTE predicate on the "closed_at" field.
func ClosedAtGTE(v time.Time) predicate.ForumSession {
	return predicate.ForumSession(sql.FieldGTE(FieldClosedAt, v))
}

// ClosedAtLT applies the LT predicate on the "closed_at" field.
func ClosedAtLT(v time.Time) predicate.ForumSession {
	return predicate.ForumSession(sql.FieldLT(FieldClosedAt, v))
}

// ClosedAtLTE applies the LTE predicate on the "closed_at" field.
func ClosedAtLTE(v time.Time) predicate.ForumSession {
	return predicate.ForumSession(sql.FieldLTE(FieldClosedAt, v))
}

// ClosedAtIsNil applies the IsNil predicate on the "closed_at" field.
func ClosedAtIsNil() predicate.ForumSession {
	return predicate.ForumSession(sql.FieldIsNull(FieldClosedAt))
}

// ClosedAtNotNil applies the NotNil predicate on the "closed_at" field.
func ClosedAtNotNil() predicate.ForumSession {
	return predicate.ForumSession(sql.FieldNotNull(FieldClosedAt))
}

// TopicCountEQ applies the EQ predicate on the "topic_count" field.
func TopicCountEQ(v int) predicate.ForumSession {
	return predicate.ForumSession(sql.FieldEQ(FieldTopicCount, v))
}

// TopicCountNEQ applies the NEQ predicate on the "topic_count" field.
func TopicCountNEQ(v int) predicate.ForumSession {
	return predicate.ForumSession(sql.FieldNEQ(FieldTopicCount, v))
}

// TopicCountIn applies the In predicate on the "topic_count" field.
func TopicCountIn(vs ...int) predicate.ForumSession {
	return predicate.ForumSession(sql.FieldIn(FieldTopicCount, vs...))
}

// TopicCountNotIn applies the NotIn predicate on the "topic_count" field.
func TopicCountNotIn(vs ...int) predicate.ForumSession {
	return predicate.ForumSession(sql.FieldNotIn(FieldTopicCount, vs...))
}

// TopicCountGT applies the GT predicate on the "topic_count" field.
func TopicCountGT(v int) predicate.ForumSession {
	return predicate.ForumSession(sql.FieldGT(FieldTopicCount, v))
}

// TopicCountGTE applies the GTE predicate on the "topic_count" field.
func TopicCountGTE(v int) predicate.ForumSession {
	return predicate.ForumSession(sql.FieldGTE(FieldTopicCount, v))
}

// TopicCountLT applies the LT predicate on the "topic_count" field.
func TopicCountLT(v int) predicate.ForumSession {
	return predicate.ForumSession(sql.FieldLT(FieldTopicCount, v))
}

// TopicCountLTE applies the LTE predicate on the "topic_count" field.
func TopicCountLTE(v int) predicate.ForumSession {
	return predicate.ForumSession(sql.FieldLTE(FieldTopicCount, v))
}

// EventCountEQ applies the EQ predicate on the "event_count" field.
func EventCountEQ(v int) predicate.ForumSession {
	return predicate.ForumSession(sql.FieldEQ(FieldEventCount, v))
}

// EventCountNEQ applies the NEQ predicate on the "event_count" field.
func EventCountNEQ(v int) predicate.ForumSession {
	return predicate.ForumSession(sql.FieldNEQ(FieldEventCount, v))
}

// EventCountIn applies the In predicate on the "event_count" field.
func EventCountIn(vs ...int) predicate.ForumSession {
	return predicate.ForumSession(sql.FieldIn(FieldEventCount, vs...))
}

// EventCountNotIn applies the NotIn predicate on the "event_count" field.
func EventCountNotIn(vs ...int) predicate.ForumSession {
	return predicate.ForumSession(sql.FieldNotIn(FieldEventCount, vs...))
}

// EventCountGT applies the GT predicate on the "event_count" field.
func EventCountGT(v int) predicate.ForumSession {
	return predicate.ForumSession(sql.FieldGT(FieldEventCount, v))
}

// EventCountGTE applies the GTE predicate on the "event_count" field.
func EventCountGTE(v int) predicate.ForumSession {
	return predicate.ForumSession(sql.FieldGTE(FieldEventCount, v))
}

// EventCountLT applies the LT predicate on the "event_count" field.
func EventCountLT(v int) predicate.ForumSession {
	return predicate.ForumSession(sql.FieldLT(FieldEventCount, v))
}

// EventCountLTE applies the LTE predicate on the "event_count" field.
func EventCountLTE(v int) predicate.ForumSession {
	return predicate.ForumSession(sql.FieldLTE(FieldEventCount, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.ForumSession {
	return predicate.ForumSession(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.ForumSession {
	return predicate.ForumSession(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.ForumSession {
	return predicate.ForumSession(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.ForumSession {
	return predicate.ForumSession(sql.FieldNotIn(FieldStatus, vs...))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ForumSession) predicate.ForumSession {
	return predicate.ForumSession(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ForumSession) predicate.ForumSession {
	return predicate.ForumSession(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ForumSession) predicate.ForumSession {
	return predicate.ForumSession(sql.NotPredicates(p))
}
