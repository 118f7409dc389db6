package service

import (
	"context"
	"testing"

	"vidtube/internal/model"
	"vidtube/internal/repository"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newDashboardService(db *gorm.DB, rdb *redis.Client) *DashboardService {
	return NewDashboardService(
		repository.NewVideoRepository(db),
		repository.NewSubscriptionRepository(db),
		repository.NewLikeRepository(db),
		repository.NewCommentRepository(db),
		repository.NewUserRepository(db),
		rdb,
	)
}

func TestGetStats(t *testing.T) {
	db := newTestDB(t)
	svc := newDashboardService(db, nil)

	channel := createTestUser(t, db, "channel")
	viewer := createTestUser(t, db, "viewer")
	other := createTestUser(t, db, "other")

	v1 := createTestVideo(t, db, channel.ID, "v1")
	v2 := createTestVideo(t, db, channel.ID, "v2")
	require.NoError(t, db.Model(&model.Video{}).Where("id = ?", v1.ID).Update("view_count", 10).Error)
	require.NoError(t, db.Model(&model.Video{}).Where("id = ?", v2.ID).Update("view_count", 11).Error)

	// 2 个订阅者
	for _, u := range []*model.User{viewer, other} {
		require.NoError(t, db.Create(&model.Subscription{SubscriberID: u.ID, ChannelID: channel.ID}).Error)
	}

	// 3 个视频点赞 + 1 个无关的动态点赞
	require.NoError(t, db.Create(&model.Like{UserID: viewer.ID, TargetType: model.LikeTargetVideo, TargetID: v1.ID}).Error)
	require.NoError(t, db.Create(&model.Like{UserID: viewer.ID, TargetType: model.LikeTargetVideo, TargetID: v2.ID}).Error)
	require.NoError(t, db.Create(&model.Like{UserID: other.ID, TargetType: model.LikeTargetVideo, TargetID: v1.ID}).Error)
	require.NoError(t, db.Create(&model.Like{UserID: other.ID, TargetType: model.LikeTargetTweet, TargetID: 1}).Error)

	// 2 条评论，其中 1 条在别人的视频下不计入
	otherVideo := createTestVideo(t, db, other.ID, "ov")
	require.NoError(t, db.Create(&model.Comment{VideoID: v1.ID, OwnerID: viewer.ID, Content: "不错"}).Error)
	require.NoError(t, db.Create(&model.Comment{VideoID: v2.ID, OwnerID: other.ID, Content: "赞"}).Error)
	require.NoError(t, db.Create(&model.Comment{VideoID: otherVideo.ID, OwnerID: viewer.ID, Content: "别人的"}).Error)

	stats, err := svc.GetStats(context.Background(), channel.ID)
	require.NoError(t, err)

	assert.Equal(t, int64(2), stats.TotalVideos)
	assert.Equal(t, int64(21), stats.TotalViews)
	assert.Equal(t, int64(2), stats.TotalSubscribers)
	assert.Equal(t, int64(3), stats.TotalLikes)
	assert.Equal(t, int64(2), stats.TotalComments)
	// 21 / 2 四舍五入
	assert.Equal(t, int64(11), stats.AverageViewsPerVideo)
}

func TestGetStatsEmptyChannel(t *testing.T) {
	db := newTestDB(t)
	svc := newDashboardService(db, nil)
	channel := createTestUser(t, db, "channel")

	stats, err := svc.GetStats(context.Background(), channel.ID)
	require.NoError(t, err)

	assert.Equal(t, int64(0), stats.TotalVideos)
	assert.Equal(t, int64(0), stats.TotalViews)
	assert.Equal(t, int64(0), stats.TotalSubscribers)
	assert.Equal(t, int64(0), stats.TotalLikes)
	assert.Equal(t, int64(0), stats.TotalComments)
	// 没有视频时平均播放量为 0，不触发除零
	assert.Equal(t, int64(0), stats.AverageViewsPerVideo)
}

func TestGetStatsUserNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newDashboardService(db, nil)

	_, err := svc.GetStats(context.Background(), 9999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestGetStatsCached(t *testing.T) {
	db := newTestDB(t)

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	svc := newDashboardService(db, rdb)

	channel := createTestUser(t, db, "channel")
	createTestVideo(t, db, channel.ID, "v1")

	stats, err := svc.GetStats(context.Background(), channel.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.TotalVideos)

	// 缓存有效期内新发布的视频不会体现在统计里
	createTestVideo(t, db, channel.ID, "v2")

	cached, err := svc.GetStats(context.Background(), channel.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), cached.TotalVideos)

	// 缓存过期后重新聚合
	mr.FastForward(statsCacheTTL + 1)

	fresh, err := svc.GetStats(context.Background(), channel.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), fresh.TotalVideos)
}
