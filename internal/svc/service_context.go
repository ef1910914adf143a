package svc

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"

	"github.com/fachebot/forum-meet-bot/internal/agenda"
	"github.com/fachebot/forum-meet-bot/internal/config"
	"github.com/fachebot/forum-meet-bot/internal/ent"
	"github.com/fachebot/forum-meet-bot/internal/logger"
	"github.com/fachebot/forum-meet-bot/internal/model"
	"github.com/fachebot/forum-meet-bot/internal/msgraph"
	"github.com/fachebot/forum-meet-bot/internal/timeslot"

	_ "github.com/mattn/go-sqlite3"
	"golang.org/x/net/proxy"
)

type ServiceContext struct {
	Config            *config.Config
	DbClient          *ent.Client
	TransportProxy    *http.Transport
	ForumSessionModel *model.ForumSessionModel
	MeetingEventModel *model.MeetingEventModel
	GraphClient       *msgraph.Client
	AgendaClient      *agenda.Client
	SlotManager       *timeslot.Manager
}

func NewServiceContext(c *config.Config) *ServiceContext {
	// 创建数据库连接
	client, err := ent.Open("sqlite3", "file:data/sqlite.db?mode=rwc&_journal_mode=WAL&_fk=1")
	if err != nil {
		logger.Fatalf("打开数据库失败, %v", err)
	}
	if err := client.Schema.Create(context.Background()); err != nil {
		logger.Fatalf("创建数据库Schema失败, %v", err)
	}

	// 创建SOCKS5代理
	var transportProxy *http.Transport
	if c.Sock5Proxy.Enable {
		socks5Proxy := fmt.Sprintf("%s:%d", c.Sock5Proxy.Host, c.Sock5Proxy.Port)
		dialer, err := proxy.SOCKS5("tcp", socks5Proxy, nil, proxy.Direct)
		if err != nil {
			logger.Fatalf("创建SOCKS5代理失败, %v", err)
		}

		transportProxy = &http.Transport{
			Dial:            dialer.Dial,
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		}
	}

	// 议程生成器按需启用
	var agendaClient *agenda.Client
	if c.LLM.Enable {
		agendaClient = agenda.NewClient(&c.LLM)
	}

	svcCtx := &ServiceContext{
		Config:            c,
		DbClient:          client,
		TransportProxy:    transportProxy,
		ForumSessionModel: model.NewForumSessionModel(client.ForumSession),
		MeetingEventModel: model.NewMeetingEventModel(client.MeetingEvent),
		GraphClient:       msgraph.NewClient(&c.MSGraph, transportProxy),
		AgendaClient:      agendaClient,
		SlotManager:       timeslot.NewManager(c.TimeSlots),
	}
	return svcCtx
}

func (svcCtx *ServiceContext) Close() {
	if err := svcCtx.DbClient.Close(); err != nil {
		logger.Errorf("关闭数据库失败, %v", err)
	}
}
