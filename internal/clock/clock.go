package clock

import "time"

// Clock 时间源抽象，便于在测试中注入固定时间
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// System 返回使用系统时间的 Clock
func System() Clock {
	return systemClock{}
}

// Fake 固定时间源，仅用于测试
type Fake struct {
	Current time.Time
}

func (f *Fake) Now() time.Time {
	return f.Current
}

// Advance 推进固定时间
func (f *Fake) Advance(d time.Duration) {
	f.Current = f.Current.Add(d)
}
