package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"vidtube/internal/config"
	"vidtube/internal/infra/database"
	infraES "vidtube/internal/infra/elasticsearch"
	infraKafka "vidtube/internal/infra/kafka"
	"vidtube/internal/model"
	"vidtube/internal/repository"
	"vidtube/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// 搜索索引同步 worker：消费视频事件，把视频写入或移出 ES 索引
func main() {
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.Format, cfg.Log.Output, cfg.Log.FilePath); err != nil {
		panic(fmt.Sprintf("Failed to init logger: %v", err))
	}
	defer logger.Sync()

	if err := database.Init(&cfg.Database); err != nil {
		logger.Fatal("Failed to init database", zap.Error(err))
	}
	defer database.Close()

	if err := infraES.Init(&cfg.Elasticsearch); err != nil {
		logger.Fatal("Failed to init elasticsearch", zap.Error(err))
	}
	defer infraES.Close()

	if err := infraES.InitIndexes(); err != nil {
		logger.Fatal("Failed to init elasticsearch indexes", zap.Error(err))
	}

	videoRepo := repository.NewVideoRepository(database.Get())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 监听系统信号，优雅退出
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigCh
		logger.Info("Received signal, shutting down", zap.String("signal", sig.String()))
		cancel()
	}()

	groupID := cfg.Kafka.GroupID
	if groupID == "" {
		groupID = "vidtube-search-sync"
	}

	handler := func(event *infraKafka.VideoEvent) error {
		return syncVideoEvent(ctx, videoRepo, event)
	}

	logger.Info("Search sync worker started",
		zap.String("topic", cfg.Kafka.VideoEventTopic()),
		zap.String("group", groupID),
		zap.Strings("brokers", cfg.Kafka.Brokers),
	)

	infraKafka.StartVideoEventConsumer(ctx, cfg.Kafka.Brokers, cfg.Kafka.VideoEventTopic(), groupID, handler)
}

// syncVideoEvent 按事件类型同步 ES 索引。
// 发布和更新都走 upsert；视频在消费前已被删除时按删除处理。
func syncVideoEvent(ctx context.Context, videoRepo *repository.VideoRepository, event *infraKafka.VideoEvent) error {
	if event.Type == infraKafka.VideoEventDeleted {
		return infraES.DeleteVideo(ctx, event.VideoID)
	}

	video, err := videoRepo.GetByID(event.VideoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return infraES.DeleteVideo(ctx, event.VideoID)
		}
		return err
	}

	return infraES.SyncVideo(ctx, video, ownerName(video))
}

func ownerName(video *model.Video) string {
	if video.Owner.ID != 0 {
		return video.Owner.UserName
	}
	return ""
}
