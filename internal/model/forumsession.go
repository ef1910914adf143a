package model

import (
	"context"
	"time"

	"github.com/fachebot/forum-meet-bot/internal/ent"
	"github.com/fachebot/forum-meet-bot/internal/ent/forumsession"
)

type ForumSessionModel struct {
	client *ent.ForumSessionClient
}

func NewForumSessionModel(client *ent.ForumSessionClient) *ForumSessionModel {
	return &ForumSessionModel{client: client}
}

// Create 创建会话记录，征集开始时调用
func (m *ForumSessionModel) Create(ctx context.Context, chatID int64, startedAt time.Time) (*ent.ForumSession, error) {
	return m.client.Create().
		SetChatID(chatID).
		SetStartedAt(startedAt).
		SetStatus(forumsession.StatusGathering).
		Save(ctx)
}

// MarkVoting 标记会话进入投票阶段，并记录征集到的议题数
func (m *ForumSessionModel) MarkVoting(ctx context.Context, id int, topicCount int) error {
	return m.client.UpdateOneID(id).
		SetStatus(forumsession.StatusVoting).
		SetTopicCount(topicCount).
		Exec(ctx)
}

// MarkCompleted 标记会话完成，记录排期成功的会议数
func (m *ForumSessionModel) MarkCompleted(ctx context.Context, id int, eventCount int, closedAt time.Time) error {
	return m.client.UpdateOneID(id).
		SetStatus(forumsession.StatusCompleted).
		SetEventCount(eventCount).
		SetClosedAt(closedAt).
		Exec(ctx)
}

// MarkCancelled 标记会话取消（征集为空或被提前终止且未进入排期）
func (m *ForumSessionModel) MarkCancelled(ctx context.Context, id int, topicCount int, closedAt time.Time) error {
	return m.client.UpdateOneID(id).
		SetStatus(forumsession.StatusCancelled).
		SetTopicCount(topicCount).
		SetClosedAt(closedAt).
		Exec(ctx)
}
