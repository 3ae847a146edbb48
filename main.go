package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	glog "github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	hertzadapter "github.com/hertz-contrib/logger/zerolog"
	"github.com/spf13/pflag"

	"ats-match-go/internal/api/handler"
	"ats-match-go/internal/api/router"
	"ats-match-go/internal/config"
	appCoreLogger "ats-match-go/internal/logger"
	"ats-match-go/internal/matcher"
	"ats-match-go/internal/storage"
	"ats-match-go/internal/taxonomy"
	"ats-match-go/pkg/ratelimit"
)

func main() {
	var configPath string
	pflag.StringVarP(&configPath, "config", "c", "", "Path to config file")
	pflag.Parse()

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		glog.Fatalf("加载配置失败: %v", err)
	}

	initLogger(cfg)
	glog.Info("配置加载成功")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 技能词表与评分权重是版本化的静态配置，进程启动时构造一次，
	// 之后所有匹配调用共享同一份只读实例
	skillDB := cfg.Match.SkillDatabase
	if len(skillDB) == 0 {
		skillDB = taxonomy.DefaultSkillDatabase()
	}
	skillTaxonomy, err := taxonomy.New(skillDB)
	if err != nil {
		glog.Fatalf("构造技能词表失败: %v", err)
	}
	glog.Infof("技能词表构造成功, 共 %d 项规范技能", skillTaxonomy.Size())

	storageManager, err := storage.NewStorage(ctx, cfg)
	if err != nil {
		glog.Fatalf("初始化存储失败: %v", err)
	}
	defer storageManager.Close()
	glog.Info("存储服务初始化成功")

	atsMatcher := matcher.New(skillTaxonomy, cfg.ScoringWeights())
	glog.Info("匹配引擎初始化成功")

	matchHandler := handler.NewMatchHandler(cfg, storageManager, atsMatcher)
	glog.Info("MatchHandler初始化成功")

	h := server.New(
		server.WithHostPorts(cfg.Server.Address),
		server.WithHandleMethodNotAllowed(true),
	)
	h.Use(func(c context.Context, ctx *app.RequestContext) {
		glog.CtxInfof(c, "Request: %s %s", string(ctx.Method()), string(ctx.Path()))
		ctx.Next(c)
		glog.CtxInfof(c, "Response: status %d", ctx.Response.StatusCode())
	})
	if cfg.Server.RateLimitQPM > 0 {
		limiter := ratelimit.NewTokenBucket(cfg.Server.RateLimitQPM, cfg.Server.RateLimitCapacity)
		h.Use(func(c context.Context, ctx *app.RequestContext) {
			if !limiter.Allow() {
				ctx.AbortWithStatusJSON(consts.StatusTooManyRequests, map[string]string{"error": "请求过于频繁，请稍后再试"})
				return
			}
			ctx.Next(c)
		})
		glog.Infof("限流已启用: %d 请求/分钟", cfg.Server.RateLimitQPM)
	}

	router.RegisterRoutes(h, matchHandler)
	glog.Info("HTTP路由注册成功")

	glog.Infof("HTTP 服务器启动中，监听地址: %s", cfg.Server.Address)

	go func() {
		if err := h.Run(); err != nil {
			glog.Fatalf("启动HTTP服务器失败: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	glog.Info("接收到终止信号，正在优雅退出...")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := h.Shutdown(shutdownCtx); err != nil {
		glog.Fatalf("服务器关闭失败: %v", err)
	}
	glog.Info("优雅退出完成")
}

// initLogger 初始化zerolog，并通过适配器接管Hertz的日志输出
func initLogger(cfg *config.Config) {
	appCoreLogger.Init(appCoreLogger.Config{
		Level:        cfg.Logger.Level,
		Format:       cfg.Logger.Format,
		TimeFormat:   cfg.Logger.TimeFormat,
		ReportCaller: cfg.Logger.ReportCaller,
	})

	hertzCompatibleLogger := hertzadapter.From(appCoreLogger.Logger)
	glog.SetLogger(hertzCompatibleLogger)
}
