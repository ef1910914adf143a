package teleapp

import (
	"testing"

	"github.com/fachebot/forum-meet-bot/internal/session"
	"github.com/stretchr/testify/assert"
)

func TestParseBallotNumber(t *testing.T) {
	id, err := parseBallotNumber("1")
	assert.NoError(t, err)
	assert.Equal(t, 0, id)

	id, err = parseBallotNumber(" 3 ")
	assert.NoError(t, err)
	assert.Equal(t, 2, id)

	// 编号 0 换算为越界的内部ID，由状态机拒绝
	id, err = parseBallotNumber("0")
	assert.NoError(t, err)
	assert.Equal(t, -1, id)

	_, err = parseBallotNumber("abc")
	assert.Error(t, err)
	_, err = parseBallotNumber("")
	assert.Error(t, err)
}

func TestFormatStatus(t *testing.T) {
	got := formatStatus(session.Status{Phase: session.PhaseGathering, RemainingMinutes: 20, TopicCount: 2})
	assert.Contains(t, got, "议题征集进行中")
	assert.Contains(t, got, "20 分钟")

	got = formatStatus(session.Status{Phase: session.PhaseVoting, RemainingMinutes: 5, TopicCount: 2})
	assert.Contains(t, got, "投票进行中")

	got = formatStatus(session.Status{Phase: session.PhaseIdle})
	assert.Contains(t, got, "没有进行中")
}
