// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ForumSession is the predicate function for forumsession builders.
type ForumSession func(*sql.Selector)

// MeetingEvent is the predicate function for meetingevent builders.
type MeetingEvent func(*sql.Selector)
