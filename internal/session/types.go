package session

import (
	"errors"
	"time"
)

// Phase 会话阶段
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseGathering
	PhaseVoting
)

func (p Phase) String() string {
	switch p {
	case PhaseGathering:
		return "gathering"
	case PhaseVoting:
		return "voting"
	default:
		return "idle"
	}
}

// Topic 征集到的议题，ID 为会话内的顺序编号
type Topic struct {
	ID          int
	AuthorID    int64
	Text        string
	SubmittedAt time.Time
	VoteCount   int
}

// GatheringResult 征集阶段结束时的结果，用于通知和开启投票
type GatheringResult struct {
	ChatID int64
	Count  int
	Topics []Topic
}

// VotingResult 投票阶段结束时的结果快照，交给排期流程使用
type VotingResult struct {
	ChatID        int64
	Topics        []Topic
	VotersByTopic map[int][]int64
}

// Status 当前会话状态摘要
type Status struct {
	Phase            Phase
	RemainingMinutes int
	TopicCount       int
}

var (
	ErrSessionActive   = errors.New("会话已在进行中")
	ErrNotGathering    = errors.New("当前不在议题征集阶段")
	ErrNotVoting       = errors.New("当前不在投票阶段")
	ErrNoBallot        = errors.New("没有待投票的议题清单")
	ErrTopicOutOfRange = errors.New("议题编号超出范围")
)
