//go:build linux
// +build linux

package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/fachebot/forum-meet-bot/internal/clock"
	"github.com/fachebot/forum-meet-bot/internal/config"
	"github.com/fachebot/forum-meet-bot/internal/forum"
	"github.com/fachebot/forum-meet-bot/internal/logger"
	"github.com/fachebot/forum-meet-bot/internal/notify"
	"github.com/fachebot/forum-meet-bot/internal/planner"
	"github.com/fachebot/forum-meet-bot/internal/session"
	"github.com/fachebot/forum-meet-bot/internal/svc"
	"github.com/fachebot/forum-meet-bot/internal/teleapp"

	"github.com/zelenin/go-tdlib/client"
)

var configFile = flag.String("f", "etc/config.yaml", "the config file")

func main() {
	flag.Parse()

	// 读取配置文件
	c, err := config.LoadFromFile(*configFile)
	if err != nil {
		logger.Fatalf("读取配置文件失败, %s", err)
	}

	// 创建数据目录
	if _, err := os.Stat("data"); os.IsNotExist(err) {
		err := os.Mkdir("data", 0755)
		if err != nil {
			logger.Fatalf("创建数据目录失败, %s", err)
		}
	}

	// 创建服务上下文
	svcCtx := svc.NewServiceContext(c)

	// 运行Telegram App
	options := make([]client.Option, 0)
	if c.Sock5Proxy.Enable {
		options = append(options, client.WithProxy(&client.AddProxyRequest{
			Server: c.Sock5Proxy.Host,
			Port:   c.Sock5Proxy.Port,
			Enable: c.Sock5Proxy.Enable,
			Type:   &client.ProxyTypeSocks5{},
		}))
	}

	// 创建TeleApp
	app := teleapp.NewApp(c.TelegramApp.ApiId, c.TelegramApp.ApiHash, "data")
	user, err := app.Login(options...)
	if err != nil {
		logger.Fatalf("[TeleApp] 用户登录失败, %s", err)
	}
	logger.Infof("[TeleApp] 用户 <%s %s>(%d) 登录成功", user.FirstName, user.LastName, user.Id)

	// 创建排期器和通知器
	clk := clock.System()
	var plannerInstance *planner.Planner
	if svcCtx.AgendaClient != nil {
		plannerInstance = planner.NewPlanner(svcCtx.GraphClient, svcCtx.SlotManager, svcCtx.AgendaClient, clk, &c.Forum)
	} else {
		plannerInstance = planner.NewPlanner(svcCtx.GraphClient, svcCtx.SlotManager, nil, clk, &c.Forum)
	}
	notifierInstance := notify.NewNotifier(app.Client())

	// 创建会话状态机和论坛协调器
	sessionManager := session.NewManager(clk)
	coordinator := forum.NewCoordinator(
		sessionManager,
		plannerInstance,
		notifierInstance,
		svcCtx.ForumSessionModel,
		svcCtx.MeetingEventModel,
		clk,
		&c.Forum,
	)
	if err := coordinator.Start(); err != nil {
		logger.Fatalf("[Forum] 启动协调器失败: %s", err)
	}
	app.SetForum(coordinator, notifierInstance)

	// 等待程序退出
	ch := make(chan os.Signal, 2)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch

	// 优雅关闭
	logger.Infof("正在关闭服务...")
	coordinator.Stop()
	err = app.Close()
	if err != nil {
		logger.Infof("[TeleApp] 关闭失败, %v", err)
	}
	svcCtx.Close()
	logger.Infof("服务已停止")
}
