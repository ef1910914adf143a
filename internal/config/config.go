package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Sock5Proxy struct {
	Host   string `yaml:"Host"`
	Port   int32  `yaml:"Port"`
	Enable bool   `yaml:"Enable"`
}

type TelegramApp struct {
	ApiId   int32  `yaml:"ApiId"`
	ApiHash string `yaml:"ApiHash"`
}

type MSGraph struct {
	TenantId     string `yaml:"TenantId"`
	ClientId     string `yaml:"ClientId"`
	ClientSecret string `yaml:"ClientSecret"`
	UserId       string `yaml:"UserId"` // 日历所属用户，默认 "me"
}

type LLM struct {
	Enable    bool   `yaml:"Enable"`    // 是否启用 LLM 生成会议议程
	BaseURL   string `yaml:"BaseURL"`   // 兼容 OpenAI API 的端点
	APIKey    string `yaml:"APIKey"`
	Model     string `yaml:"Model"`     // 如 gpt-4o, deepseek-chat, qwen-plus
	MaxTokens int    `yaml:"MaxTokens"` // 单次议程生成的输出上限
}

type Forum struct {
	TopTopicsCount       int    `yaml:"TopTopicsCount"`       // 排期议题数上限，默认 3
	EventDurationMinutes int    `yaml:"EventDurationMinutes"` // 会议时长（分钟），默认 60
	DefaultGatherMinutes int    `yaml:"DefaultGatherMinutes"` // 默认征集时长（分钟），默认 30
	DefaultVoteMinutes   int    `yaml:"DefaultVoteMinutes"`   // 默认投票时长（分钟），默认 10
	SweepCron            string `yaml:"SweepCron"`            // 过期兜底检查的 cron 表达式，默认每分钟
	AttendeeEmailDomain  string `yaml:"AttendeeEmailDomain"`  // 参会人邮箱域名，默认 example.com
}

type TimeSlot struct {
	Weekday   string `yaml:"Weekday"`   // Monday ~ Sunday
	StartTime string `yaml:"StartTime"` // "HH:MM"
	EndTime   string `yaml:"EndTime"`   // "HH:MM"
}

type Config struct {
	Sock5Proxy  Sock5Proxy  `yaml:"Sock5Proxy"`
	TelegramApp TelegramApp `yaml:"TelegramApp"`
	MSGraph     MSGraph     `yaml:"MSGraph"`
	LLM         LLM         `yaml:"LLM"`
	Forum       Forum       `yaml:"Forum"`
	TimeSlots   []TimeSlot  `yaml:"TimeSlots"`
}

func LoadFromFile(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var c Config
	err = yaml.Unmarshal([]byte(data), &c)
	if err != nil {
		return nil, err
	}

	// 填充默认值
	c.applyDefaults()

	// 验证配置
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

func (c *Config) applyDefaults() {
	if c.Forum.TopTopicsCount <= 0 {
		c.Forum.TopTopicsCount = 3
	}
	if c.Forum.EventDurationMinutes <= 0 {
		c.Forum.EventDurationMinutes = 60
	}
	if c.Forum.DefaultGatherMinutes <= 0 {
		c.Forum.DefaultGatherMinutes = 30
	}
	if c.Forum.DefaultVoteMinutes <= 0 {
		c.Forum.DefaultVoteMinutes = 10
	}
	if c.Forum.SweepCron == "" {
		c.Forum.SweepCron = "* * * * *"
	}
	if c.Forum.AttendeeEmailDomain == "" {
		c.Forum.AttendeeEmailDomain = "example.com"
	}
	if c.MSGraph.UserId == "" {
		c.MSGraph.UserId = "me"
	}
}

// Validate 验证配置的有效性
func (c *Config) Validate() error {
	// 验证 TelegramApp
	if c.TelegramApp.ApiId == 0 {
		return fmt.Errorf("TelegramApp.ApiId 不能为空")
	}
	if c.TelegramApp.ApiHash == "" {
		return fmt.Errorf("TelegramApp.ApiHash 不能为空")
	}

	// 验证 MSGraph
	if c.MSGraph.TenantId == "" {
		return fmt.Errorf("MSGraph.TenantId 不能为空")
	}
	if c.MSGraph.ClientId == "" {
		return fmt.Errorf("MSGraph.ClientId 不能为空")
	}
	if c.MSGraph.ClientSecret == "" {
		return fmt.Errorf("MSGraph.ClientSecret 不能为空")
	}

	// 验证 LLM（仅在启用议程生成时检查）
	if c.LLM.Enable {
		if c.LLM.APIKey == "" {
			return fmt.Errorf("LLM.APIKey 不能为空")
		}
		if c.LLM.BaseURL == "" {
			return fmt.Errorf("LLM.BaseURL 不能为空")
		}
		if c.LLM.Model == "" {
			return fmt.Errorf("LLM.Model 不能为空")
		}
		if c.LLM.MaxTokens <= 0 {
			return fmt.Errorf("LLM.MaxTokens 必须大于 0")
		}
	}

	// 验证 TimeSlots（允许为空，排期时逐条跳过并告警）
	for i, slot := range c.TimeSlots {
		if slot.Weekday == "" {
			return fmt.Errorf("TimeSlots[%d].Weekday 不能为空", i)
		}
		if slot.StartTime == "" {
			return fmt.Errorf("TimeSlots[%d].StartTime 不能为空", i)
		}
		if slot.EndTime == "" {
			return fmt.Errorf("TimeSlots[%d].EndTime 不能为空", i)
		}
	}

	return nil
}
