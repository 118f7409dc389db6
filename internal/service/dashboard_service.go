package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"vidtube/internal/api/dto"
	"vidtube/internal/repository"
	"vidtube/pkg/logger"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// 统计数据缓存时长
const statsCacheTTL = 60 * time.Second

type DashboardService struct {
	videoRepo   *repository.VideoRepository
	subRepo     *repository.SubscriptionRepository
	likeRepo    *repository.LikeRepository
	commentRepo *repository.CommentRepository
	userRepo    *repository.UserRepository
	rdb         *redis.Client
}

func NewDashboardService(
	videoRepo *repository.VideoRepository,
	subRepo *repository.SubscriptionRepository,
	likeRepo *repository.LikeRepository,
	commentRepo *repository.CommentRepository,
	userRepo *repository.UserRepository,
	rdb *redis.Client,
) *DashboardService {
	return &DashboardService{
		videoRepo:   videoRepo,
		subRepo:     subRepo,
		likeRepo:    likeRepo,
		commentRepo: commentRepo,
		userRepo:    userRepo,
		rdb:         rdb,
	}
}

// GetStats 获取频道仪表盘统计数据，短时缓存在 Redis
func (s *DashboardService) GetStats(ctx context.Context, channelID int64) (*dto.ChannelStats, error) {
	if _, err := s.userRepo.GetByID(channelID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	cacheKey := fmt.Sprintf("dashboard:stats:%d", channelID)
	if cached := s.readCache(ctx, cacheKey); cached != nil {
		return cached, nil
	}

	stats, err := s.computeStats(channelID)
	if err != nil {
		return nil, err
	}

	s.writeCache(ctx, cacheKey, stats)
	return stats, nil
}

// computeStats 逐项聚合频道统计
func (s *DashboardService) computeStats(channelID int64) (*dto.ChannelStats, error) {
	totalVideos, err := s.videoRepo.CountByOwner(channelID)
	if err != nil {
		return nil, err
	}

	totalViews, err := s.videoRepo.SumViewsByOwner(channelID)
	if err != nil {
		return nil, err
	}

	totalSubscribers, err := s.subRepo.CountSubscribers(channelID)
	if err != nil {
		return nil, err
	}

	totalLikes, err := s.likeRepo.CountVideoLikesByOwner(channelID)
	if err != nil {
		return nil, err
	}

	totalComments, err := s.commentRepo.CountByVideoOwner(channelID)
	if err != nil {
		return nil, err
	}

	// 没有视频时平均播放量为 0，避免除零
	var avgViews int64
	if totalVideos > 0 {
		avgViews = int64(math.Round(float64(totalViews) / float64(totalVideos)))
	}

	return &dto.ChannelStats{
		TotalVideos:          totalVideos,
		TotalViews:           totalViews,
		TotalSubscribers:     totalSubscribers,
		TotalLikes:           totalLikes,
		TotalComments:        totalComments,
		AverageViewsPerVideo: avgViews,
	}, nil
}

func (s *DashboardService) readCache(ctx context.Context, key string) *dto.ChannelStats {
	if s.rdb == nil {
		return nil
	}

	raw, err := s.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.Warn("Read stats cache failed", zap.String("key", key), zap.Error(err))
		}
		return nil
	}

	var stats dto.ChannelStats
	if err := json.Unmarshal(raw, &stats); err != nil {
		logger.Warn("Decode stats cache failed", zap.String("key", key), zap.Error(err))
		return nil
	}
	return &stats
}

func (s *DashboardService) writeCache(ctx context.Context, key string, stats *dto.ChannelStats) {
	if s.rdb == nil {
		return
	}

	raw, err := json.Marshal(stats)
	if err != nil {
		return
	}
	if err := s.rdb.Set(ctx, key, raw, statsCacheTTL).Err(); err != nil {
		logger.Warn("Write stats cache failed", zap.String("key", key), zap.Error(err))
	}
}
