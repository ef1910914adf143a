// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/fachebot/forum-meet-bot/internal/ent/forumsession"
	"github.com/fachebot/forum-meet-bot/internal/ent/meetingevent"
	"github.com/fachebot/forum-meet-bot/internal/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	forumsessionMixin := schema.ForumSession{}.Mixin()
	forumsessionMixinFields0 := forumsessionMixin[0].Fields()
	_ = forumsessionMixinFields0
	forumsessionFields := schema.ForumSession{}.Fields()
	_ = forumsessionFields
	// forumsessionDescCreateTime is the schema descriptor for create_time field.
	forumsessionDescCreateTime := forumsessionMixinFields0[0].Descriptor()
	// forumsession.DefaultCreateTime holds the default value on creation for the create_time field.
	forumsession.DefaultCreateTime = forumsessionDescCreateTime.Default.(func() time.Time)
	// forumsessionDescUpdateTime is the schema descriptor for update_time field.
	forumsessionDescUpdateTime := forumsessionMixinFields0[1].Descriptor()
	// forumsession.DefaultUpdateTime holds the default value on creation for the update_time field.
	forumsession.DefaultUpdateTime = forumsessionDescUpdateTime.Default.(func() time.Time)
	// forumsession.UpdateDefaultUpdateTime holds the default value on update for the update_time field.
	forumsession.UpdateDefaultUpdateTime = forumsessionDescUpdateTime.UpdateDefault.(func() time.Time)
	// forumsessionDescTopicCount is the schema descriptor for topic_count field.
	forumsessionDescTopicCount := forumsessionFields[3].Descriptor()
	// forumsession.DefaultTopicCount holds the default value on creation for the topic_count field.
	forumsession.DefaultTopicCount = forumsessionDescTopicCount.Default.(int)
	// forumsessionDescEventCount is the schema descriptor for event_count field.
	forumsessionDescEventCount := forumsessionFields[4].Descriptor()
	// forumsession.DefaultEventCount holds the default value on creation for the event_count field.
	forumsession.DefaultEventCount = forumsessionDescEventCount.Default.(int)
	meetingeventMixin := schema.MeetingEvent{}.Mixin()
	meetingeventMixinFields0 := meetingeventMixin[0].Fields()
	_ = meetingeventMixinFields0
	meetingeventFields := schema.MeetingEvent{}.Fields()
	_ = meetingeventFields
	// meetingeventDescCreateTime is the schema descriptor for create_time field.
	meetingeventDescCreateTime := meetingeventMixinFields0[0].Descriptor()
	// meetingevent.DefaultCreateTime holds the default value on creation for the create_time field.
	meetingevent.DefaultCreateTime = meetingeventDescCreateTime.Default.(func() time.Time)
	// meetingeventDescUpdateTime is the schema descriptor for update_time field.
	meetingeventDescUpdateTime := meetingeventMixinFields0[1].Descriptor()
	// meetingevent.DefaultUpdateTime holds the default value on creation for the update_time field.
	meetingevent.DefaultUpdateTime = meetingeventDescUpdateTime.Default.(func() time.Time)
	// meetingevent.UpdateDefaultUpdateTime holds the default value on update for the update_time field.
	meetingevent.UpdateDefaultUpdateTime = meetingeventDescUpdateTime.UpdateDefault.(func() time.Time)
	// meetingeventDescVotes is the schema descriptor for votes field.
	meetingeventDescVotes := meetingeventFields[3].Descriptor()
	// meetingevent.DefaultVotes holds the default value on creation for the votes field.
	meetingevent.DefaultVotes = meetingeventDescVotes.Default.(int)
}
