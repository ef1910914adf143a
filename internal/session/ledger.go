package session

import "sort"

// VoteLedger 记录每个用户投过票的议题集合，生命周期为一次投票阶段
type VoteLedger struct {
	votes map[int64]map[int]struct{}
}

func NewVoteLedger() *VoteLedger {
	return &VoteLedger{
		votes: make(map[int64]map[int]struct{}),
	}
}

// Record 记录一票，返回该票是否为新增。
// 同一用户对同一议题重复投票不改变任何状态（幂等）。
func (l *VoteLedger) Record(userID int64, topicID int) bool {
	voted, ok := l.votes[userID]
	if !ok {
		voted = make(map[int]struct{})
		l.votes[userID] = voted
	}
	if _, exists := voted[topicID]; exists {
		return false
	}
	voted[topicID] = struct{}{}
	return true
}

// VotersOf 返回给该议题投过票的用户ID列表，按ID升序保证结果稳定
func (l *VoteLedger) VotersOf(topicID int) []int64 {
	voters := make([]int64, 0)
	for userID, voted := range l.votes {
		if _, ok := voted[topicID]; ok {
			voters = append(voters, userID)
		}
	}
	sort.Slice(voters, func(i, j int) bool { return voters[i] < voters[j] })
	return voters
}
