package timeslot

import (
	"testing"
	"time"

	"github.com/fachebot/forum-meet-bot/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantHour int
		wantMin  int
		wantErr  bool
	}{
		{"正常时刻", "14:30", 14, 30, false},
		{"零点", "00:00", 0, 0, false},
		{"缺少分钟", "14", 0, 0, true},
		{"小时越界", "25:00", 0, 0, true},
		{"分钟越界", "14:60", 0, 0, true},
		{"非数字", "ab:cd", 0, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hour, minute, err := parseClock(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantHour, hour)
			assert.Equal(t, tt.wantMin, minute)
		})
	}
}

func TestNewManager_跳过非法配置(t *testing.T) {
	m := NewManager([]config.TimeSlot{
		{Weekday: "Friday", StartTime: "10:00", EndTime: "11:00"},
		{Weekday: "Someday", StartTime: "10:00", EndTime: "11:00"},
		{Weekday: "Monday", StartTime: "xx", EndTime: "11:00"},
	})
	assert.Len(t, m.slots, 1)
	assert.Equal(t, time.Friday, m.slots[0].Weekday)
}

func TestPick_无配置时返回false(t *testing.T) {
	m := NewManager(nil)
	_, ok := m.Pick()
	assert.False(t, ok)
}

func TestPick(t *testing.T) {
	m := NewManager([]config.TimeSlot{
		{Weekday: "Friday", StartTime: "10:00", EndTime: "11:00"},
	})
	slot, ok := m.Pick()
	assert.True(t, ok)
	assert.Equal(t, time.Friday, slot.Weekday)
}

func TestResolve(t *testing.T) {
	m := NewManager(nil)
	// 2025-03-05 是周三
	now := time.Date(2025, 3, 5, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		weekday   time.Weekday
		wantDate  time.Time
	}{
		{"两天后的周五", time.Friday, time.Date(2025, 3, 7, 0, 0, 0, 0, time.UTC)},
		{"五天后的周一", time.Monday, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)},
		{"四天后的周日", time.Sunday, time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slot := Slot{Weekday: tt.weekday, StartHour: 10, StartMin: 30, EndHour: 11, EndMin: 0}
			start, end := m.Resolve(slot, now)

			assert.True(t, start.After(now))
			assert.Equal(t, tt.weekday, start.Weekday())
			assert.Equal(t, tt.wantDate.Year(), start.Year())
			assert.Equal(t, tt.wantDate.Month(), start.Month())
			assert.Equal(t, tt.wantDate.Day(), start.Day())
			assert.Equal(t, 10, start.Hour())
			assert.Equal(t, 30, start.Minute())
			assert.Equal(t, 11, end.Hour())
			assert.Equal(t, 0, end.Minute())
		})
	}
}

func TestResolve_非UTC输入时按UTC计算(t *testing.T) {
	m := NewManager(nil)
	// 东八区周四凌晨 1 点，对应 UTC 周三 17 点
	cst := time.FixedZone("CST", 8*3600)
	now := time.Date(2025, 3, 6, 1, 0, 0, 0, cst)

	slot := Slot{Weekday: time.Thursday, StartHour: 10, StartMin: 30, EndHour: 11, EndMin: 30}
	start, end := m.Resolve(slot, now)

	// 按 UTC 的周三推算，周四窗口落在次日而不是下周
	assert.Equal(t, time.Date(2025, 3, 6, 10, 30, 0, 0, time.UTC), start)
	assert.Equal(t, time.UTC, start.Location())
	assert.Equal(t, time.UTC, end.Location())
}

func TestResolve_当天同星期一律排到下周(t *testing.T) {
	m := NewManager(nil)
	// 2025-03-05 是周三，当前时刻 9 点，窗口 10:30 尚未开始
	now := time.Date(2025, 3, 5, 9, 0, 0, 0, time.UTC)
	slot := Slot{Weekday: time.Wednesday, StartHour: 10, StartMin: 30, EndHour: 11, EndMin: 30}

	start, _ := m.Resolve(slot, now)
	assert.Equal(t, time.Date(2025, 3, 12, 10, 30, 0, 0, time.UTC), start)
}
