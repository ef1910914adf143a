package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVoteLedger_Record幂等(t *testing.T) {
	ledger := NewVoteLedger()

	assert.True(t, ledger.Record(1, 0))
	assert.False(t, ledger.Record(1, 0))
	assert.False(t, ledger.Record(1, 0))

	// 不同议题、不同用户互不影响
	assert.True(t, ledger.Record(1, 1))
	assert.True(t, ledger.Record(2, 0))
}

func TestVoteLedger_VotersOf(t *testing.T) {
	ledger := NewVoteLedger()

	assert.Empty(t, ledger.VotersOf(0))

	ledger.Record(3, 0)
	ledger.Record(1, 0)
	ledger.Record(2, 1)
	ledger.Record(1, 0)

	// 结果按用户ID升序
	assert.Equal(t, []int64{1, 3}, ledger.VotersOf(0))
	assert.Equal(t, []int64{2}, ledger.VotersOf(1))
	assert.Empty(t, ledger.VotersOf(2))
}
