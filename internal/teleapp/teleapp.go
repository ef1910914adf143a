package teleapp

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/fachebot/forum-meet-bot/internal/forum"
	"github.com/fachebot/forum-meet-bot/internal/logger"
	"github.com/fachebot/forum-meet-bot/internal/notify"
	"github.com/fachebot/forum-meet-bot/internal/session"

	"github.com/zelenin/go-tdlib/client"
)

const historyLimit = 10

type TeleApp struct {
	user        *client.User
	tdClient    *client.Client
	listener    *client.Listener
	parameters  *client.SetTdlibParametersRequest
	coordinator *forum.Coordinator
	notifier    *notify.Notifier
	chatsMu     sync.RWMutex
	chatsCache  map[int64]*client.Chat
	ctx         context.Context
	cancel      context.CancelFunc
	ctxMu       sync.Mutex
}

func NewApp(apiId int32, apiHash, dataDir string) *TeleApp {
	_, err := client.SetLogVerbosityLevel(&client.SetLogVerbosityLevelRequest{
		NewVerbosityLevel: 1,
	})
	if err != nil {
		logger.Fatalf("[TeleApp] 设置日志级别错误, %s", err)
	}

	parameters := &client.SetTdlibParametersRequest{
		UseTestDc:           false,
		DatabaseDirectory:   filepath.Join(dataDir, ".tdlib", "database"),
		FilesDirectory:      filepath.Join(dataDir, ".tdlib", "files"),
		UseFileDatabase:     true,
		UseChatInfoDatabase: true,
		UseMessageDatabase:  true,
		UseSecretChats:      false,
		ApiId:               apiId,
		ApiHash:             apiHash,
		SystemLanguageCode:  "en",
		DeviceModel:         "Server",
		SystemVersion:       "1.0.0",
		ApplicationVersion:  "1.0.0",
	}

	app := &TeleApp{
		parameters: parameters,
		chatsCache: make(map[int64]*client.Chat),
	}
	return app
}

// SetForum 注入论坛协调器和通知器，需在 Login 之后、消息处理开始前调用
func (app *TeleApp) SetForum(coordinator *forum.Coordinator, notifier *notify.Notifier) {
	app.coordinator = coordinator
	app.notifier = notifier
}

func (app *TeleApp) Login(options ...client.Option) (*client.User, error) {
	if app.user != nil {
		return app.user, nil
	}

	authorizer := client.ClientAuthorizer(app.parameters)
	go client.CliInteractor(authorizer)

	tdlibClient, err := client.NewClient(authorizer, options...)
	if err != nil {
		return nil, err
	}

	me, err := tdlibClient.GetMe()
	if err != nil {
		return nil, err
	}

	app.user = me
	app.tdClient = tdlibClient

	listener := tdlibClient.GetListener()
	app.listener = listener

	app.ctxMu.Lock()
	app.ctx, app.cancel = context.WithCancel(context.Background())
	app.ctxMu.Unlock()

	go app.getUpdates(listener)

	return me, nil
}

func (app *TeleApp) Client() *client.Client {
	return app.tdClient
}

func (app *TeleApp) Close() error {
	if app.tdClient == nil {
		return nil
	}

	app.ctxMu.Lock()
	if app.cancel != nil {
		app.cancel()
	}
	app.ctxMu.Unlock()

	if app.listener != nil {
		app.listener.Close()
	}

	_, err := app.tdClient.Close()
	return err
}

func (app *TeleApp) getChat(chatId int64) (*client.Chat, error) {
	// 先尝试读锁读取缓存
	app.chatsMu.RLock()
	chat, ok := app.chatsCache[chatId]
	app.chatsMu.RUnlock()
	if ok {
		return chat, nil
	}

	// 缓存未命中，获取数据
	chat, err := app.tdClient.GetChat(&client.GetChatRequest{ChatId: chatId})
	if err != nil {
		return nil, err
	}

	// 写锁更新缓存
	app.chatsMu.Lock()
	app.chatsCache[chatId] = chat
	app.chatsMu.Unlock()
	return chat, nil
}

func (app *TeleApp) getUpdates(listener *client.Listener) {
	app.ctxMu.Lock()
	ctx := app.ctx
	app.ctxMu.Unlock()

	for listener.IsActive() {
		select {
		case <-ctx.Done():
			logger.Infof("[TeleApp] 更新循环已取消，退出")
			return
		case update := <-listener.Updates:
			if update.GetType() != "updateNewMessage" {
				continue
			}

			// 仅处理文本消息
			updateNewMessage := update.(*client.UpdateNewMessage)
			message := updateNewMessage.Message
			if message.IsOutgoing {
				continue
			}
			if message.Content.MessageContentType() != "messageText" {
				continue
			}

			text := message.Content.(*client.MessageText)
			if text.Text == nil || text.Text.Text == "" {
				continue
			}

			// 获取来源Chat信息
			chat, err := app.getChat(message.ChatId)
			if err != nil {
				logger.Warnf("[TeleApp] 获取聊天信息失败, id: %d, %v", message.ChatId, err)
				continue
			}

			// 获取发送者信息
			senderID := int64(0)
			if message.SenderId != nil {
				if sender, ok := message.SenderId.(*client.MessageSenderUser); ok {
					senderID = sender.UserId
				}
			}
			if senderID == 0 {
				continue
			}

			logger.Debugf("[TeleApp] 接收消息: %s[%d] -> %s", chat.Title, chat.Id, text.Text.Text)
			app.handleMessage(chat, senderID, text.Text.Text)
		}
	}
}

// handleMessage 消息路由：私聊中的非命令文本视为议题提交，
// 群聊与私聊中的 /forum、/vote 命令交给对应处理函数。
func (app *TeleApp) handleMessage(chat *client.Chat, senderID int64, text string) {
	if app.coordinator == nil || app.notifier == nil {
		return
	}

	text = strings.TrimSpace(text)
	isPrivate := chat.Type.ChatTypeType() == client.TypeChatTypePrivate

	switch {
	case strings.HasPrefix(text, "/forum"):
		app.handleForumCommand(chat.Id, strings.TrimSpace(strings.TrimPrefix(text, "/forum")))
	case strings.HasPrefix(text, "/vote"):
		app.handleVote(chat.Id, senderID, strings.TrimSpace(strings.TrimPrefix(text, "/vote")))
	case isPrivate:
		app.handleTopicSubmission(chat.Id, senderID, text)
	}
}

// handleForumCommand 处理 /forum 子命令：start [征集分钟] [投票分钟]、stop、status、history
func (app *TeleApp) handleForumCommand(chatID int64, args string) {
	fields := strings.Fields(args)
	subcommand := ""
	if len(fields) > 0 {
		subcommand = fields[0]
	}

	switch subcommand {
	case "start":
		gatherMinutes, voteMinutes := 0, 0
		if len(fields) > 1 {
			gatherMinutes, _ = strconv.Atoi(fields[1])
		}
		if len(fields) > 2 {
			voteMinutes, _ = strconv.Atoi(fields[2])
		}
		_, err := app.coordinator.StartForum(chatID, gatherMinutes, voteMinutes)
		if err != nil {
			app.reply(chatID, "已有进行中的论坛会话，请先等它结束或使用 /forum stop。")
		}
		// 成功时由协调器发送征集开始公告，这里无需重复回复

	case "stop":
		if err := app.coordinator.StopForum(); err != nil {
			app.reply(chatID, "当前没有进行中的论坛会话。")
		}

	case "status":
		app.reply(chatID, formatStatus(app.coordinator.GetStatus()))

	case "history":
		text, err := app.coordinator.FormatHistory(chatID, historyLimit)
		if err != nil {
			logger.Errorf("[TeleApp] 查询会议历史失败: %v", err)
			app.reply(chatID, "查询会议历史失败，请稍后再试。")
			return
		}
		app.reply(chatID, text)

	default:
		app.reply(chatID, "可用命令: /forum start [征集分钟] [投票分钟], /forum stop, /forum status, /forum history")
	}
}

// handleVote 处理 /vote 编号
func (app *TeleApp) handleVote(chatID, senderID int64, args string) {
	topicID, err := parseBallotNumber(args)
	if err != nil {
		app.reply(chatID, "用法: /vote 议题编号")
		return
	}

	tally, err := app.coordinator.CastVote(senderID, topicID)
	switch {
	case err == nil:
		app.reply(chatID, fmt.Sprintf("已记录你对议题 %d 的投票，当前 %d 票。", topicID+1, tally))
	case errors.Is(err, session.ErrTopicOutOfRange):
		app.reply(chatID, "没有这个编号的议题，请检查投票清单。")
	default:
		app.reply(chatID, "现在不在投票阶段。")
	}
}

// parseBallotNumber 将选票上展示的 1 基编号换算为内部的 0 基议题ID
func parseBallotNumber(args string) (int, error) {
	number, err := strconv.Atoi(strings.TrimSpace(args))
	if err != nil {
		return 0, err
	}
	return number - 1, nil
}

// handleTopicSubmission 私聊文本视为议题提交
func (app *TeleApp) handleTopicSubmission(chatID, senderID int64, text string) {
	if app.coordinator.SubmitTopic(senderID, text) {
		app.reply(chatID, fmt.Sprintf("谢谢！你的议题已记录: %q", text))
	} else {
		app.reply(chatID, "当前不在议题征集阶段，暂时无法提交议题。")
	}
}

func (app *TeleApp) reply(chatID int64, text string) {
	if err := app.notifier.Send(chatID, text); err != nil {
		logger.Errorf("[TeleApp] 发送回复失败, chatID=%d: %v", chatID, err)
	}
}

// formatStatus 格式化会话状态
func formatStatus(st session.Status) string {
	switch st.Phase {
	case session.PhaseGathering:
		return fmt.Sprintf("议题征集进行中，剩余约 %d 分钟，已收到 %d 个议题。", st.RemainingMinutes, st.TopicCount)
	case session.PhaseVoting:
		return fmt.Sprintf("投票进行中，剩余约 %d 分钟，共 %d 个议题。", st.RemainingMinutes, st.TopicCount)
	default:
		return "当前没有进行中的论坛会话。"
	}
}
