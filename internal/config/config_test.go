package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validConfig() *Config {
	c := &Config{
		TelegramApp: TelegramApp{ApiId: 12345, ApiHash: "hash"},
		MSGraph:     MSGraph{TenantId: "t", ClientId: "c", ClientSecret: "s"},
	}
	c.applyDefaults()
	return c
}

func TestValidate(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestValidate_缺少必填项(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"缺少 ApiId", func(c *Config) { c.TelegramApp.ApiId = 0 }},
		{"缺少 ApiHash", func(c *Config) { c.TelegramApp.ApiHash = "" }},
		{"缺少 TenantId", func(c *Config) { c.MSGraph.TenantId = "" }},
		{"缺少 ClientId", func(c *Config) { c.MSGraph.ClientId = "" }},
		{"缺少 ClientSecret", func(c *Config) { c.MSGraph.ClientSecret = "" }},
		{"启用 LLM 但缺少 APIKey", func(c *Config) { c.LLM.Enable = true }},
		{"时间窗口缺少星期", func(c *Config) {
			c.TimeSlots = []TimeSlot{{StartTime: "10:00", EndTime: "11:00"}}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validConfig()
			tt.mutate(c)
			assert.Error(t, c.Validate())
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	c := &Config{}
	c.applyDefaults()

	assert.Equal(t, 3, c.Forum.TopTopicsCount)
	assert.Equal(t, 60, c.Forum.EventDurationMinutes)
	assert.Equal(t, 30, c.Forum.DefaultGatherMinutes)
	assert.Equal(t, 10, c.Forum.DefaultVoteMinutes)
	assert.Equal(t, "* * * * *", c.Forum.SweepCron)
	assert.Equal(t, "example.com", c.Forum.AttendeeEmailDomain)
	assert.Equal(t, "me", c.MSGraph.UserId)
}
