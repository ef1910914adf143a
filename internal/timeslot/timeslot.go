package timeslot

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/fachebot/forum-meet-bot/internal/config"
	"github.com/fachebot/forum-meet-bot/internal/logger"
)

// Slot 每周循环的时间窗口，只含星期和当天时刻，不含具体日期
type Slot struct {
	Weekday   time.Weekday
	StartHour int
	StartMin  int
	EndHour   int
	EndMin    int
}

// Manager 持有配置的循环时间窗口。Pick 不记录历史，同一轮排期内
// 多个议题可能拿到相同的窗口（设计上允许，见配置说明）。
type Manager struct {
	slots []Slot
}

var weekdayNames = map[string]time.Weekday{
	"Sunday":    time.Sunday,
	"Monday":    time.Monday,
	"Tuesday":   time.Tuesday,
	"Wednesday": time.Wednesday,
	"Thursday":  time.Thursday,
	"Friday":    time.Friday,
	"Saturday":  time.Saturday,
}

// NewManager 从配置构建时间窗口管理器，单条配置非法时跳过并告警
func NewManager(entries []config.TimeSlot) *Manager {
	slots := make([]Slot, 0, len(entries))
	for i, entry := range entries {
		slot, err := parseSlot(entry)
		if err != nil {
			logger.Warnf("[TimeSlot] 跳过非法时间窗口配置 TimeSlots[%d]: %v", i, err)
			continue
		}
		slots = append(slots, slot)
	}
	return &Manager{slots: slots}
}

func parseSlot(entry config.TimeSlot) (Slot, error) {
	weekday, ok := weekdayNames[entry.Weekday]
	if !ok {
		return Slot{}, fmt.Errorf("未知的星期: %s", entry.Weekday)
	}
	startHour, startMin, err := parseClock(entry.StartTime)
	if err != nil {
		return Slot{}, fmt.Errorf("开始时间非法: %w", err)
	}
	endHour, endMin, err := parseClock(entry.EndTime)
	if err != nil {
		return Slot{}, fmt.Errorf("结束时间非法: %w", err)
	}
	return Slot{
		Weekday:   weekday,
		StartHour: startHour,
		StartMin:  startMin,
		EndHour:   endHour,
		EndMin:    endMin,
	}, nil
}

// parseClock 解析 "HH:MM" 格式的时刻
func parseClock(s string) (int, int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("时刻格式应为 HH:MM, 实际: %s", s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("小时非法: %s", parts[0])
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("分钟非法: %s", parts[1])
	}
	return hour, minute, nil
}

// Pick 随机选择一个时间窗口，没有可用配置时返回 false
func (m *Manager) Pick() (Slot, bool) {
	if len(m.slots) == 0 {
		return Slot{}, false
	}
	return m.slots[rand.Intn(len(m.slots))], true
}

// Resolve 将时间窗口投影到 now 之后最近的具体日期，统一按 UTC 计算。
// 规则：今天恰好是窗口所在星期时，无论当天时刻是否已过，一律排到下周。
func (m *Manager) Resolve(slot Slot, now time.Time) (time.Time, time.Time) {
	now = now.In(time.UTC)
	daysAhead := (int(slot.Weekday) - int(now.Weekday()) + 7) % 7
	if daysAhead == 0 {
		daysAhead = 7
	}
	date := now.AddDate(0, 0, daysAhead)

	start := time.Date(date.Year(), date.Month(), date.Day(), slot.StartHour, slot.StartMin, 0, 0, time.UTC)
	end := time.Date(date.Year(), date.Month(), date.Day(), slot.EndHour, slot.EndMin, 0, 0, time.UTC)
	return start, end
}
