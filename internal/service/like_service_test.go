package service

import (
	"testing"
	"time"

	"vidtube/internal/model"
	"vidtube/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newLikeService(db *gorm.DB) *LikeService {
	return NewLikeService(
		repository.NewLikeRepository(db),
		repository.NewVideoRepository(db),
		repository.NewCommentRepository(db),
		repository.NewTweetRepository(db),
	)
}

func TestToggleVideoLike(t *testing.T) {
	db := newTestDB(t)
	svc := newLikeService(db)

	owner := createTestUser(t, db, "owner")
	viewer := createTestUser(t, db, "viewer")
	video := createTestVideo(t, db, owner.ID, "v1")

	// 第一次切换：点赞
	result, err := svc.ToggleVideoLike(viewer.ID, video.ID)
	require.NoError(t, err)
	assert.True(t, result.Liked)
	assert.Equal(t, int64(1), result.LikeCount)
	assert.Equal(t, string(model.LikeTargetVideo), result.TargetType)

	// 第二次切换：取消点赞
	result, err = svc.ToggleVideoLike(viewer.ID, video.ID)
	require.NoError(t, err)
	assert.False(t, result.Liked)
	assert.Equal(t, int64(0), result.LikeCount)

	// 再切换回来，不会产生重复记录
	result, err = svc.ToggleVideoLike(viewer.ID, video.ID)
	require.NoError(t, err)
	assert.True(t, result.Liked)

	var count int64
	require.NoError(t, db.Model(&model.Like{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestToggleVideoLikeNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newLikeService(db)
	user := createTestUser(t, db, "user")

	_, err := svc.ToggleVideoLike(user.ID, 9999)
	assert.ErrorIs(t, err, ErrVideoNotFound)
}

func TestToggleLikeTargetTypesIndependent(t *testing.T) {
	db := newTestDB(t)
	svc := newLikeService(db)

	owner := createTestUser(t, db, "owner")
	viewer := createTestUser(t, db, "viewer")
	video := createTestVideo(t, db, owner.ID, "v1")

	// 让评论和动态拿到与视频相同的数字 ID
	comment := &model.Comment{OwnerID: owner.ID, VideoID: video.ID, Content: "评论"}
	require.NoError(t, db.Create(comment).Error)
	tweet := &model.Tweet{OwnerID: owner.ID, Content: "动态"}
	require.NoError(t, db.Create(tweet).Error)

	_, err := svc.ToggleVideoLike(viewer.ID, video.ID)
	require.NoError(t, err)
	_, err = svc.ToggleCommentLike(viewer.ID, comment.ID)
	require.NoError(t, err)
	_, err = svc.ToggleTweetLike(viewer.ID, tweet.ID)
	require.NoError(t, err)

	// 三种目标类型互不影响
	likeRepo := repository.NewLikeRepository(db)
	videoCount, err := likeRepo.CountByTarget(model.LikeTargetVideo, video.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), videoCount)

	commentCount, err := likeRepo.CountByTarget(model.LikeTargetComment, comment.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), commentCount)

	tweetCount, err := likeRepo.CountByTarget(model.LikeTargetTweet, tweet.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), tweetCount)

	// 取消视频点赞不影响其他类型
	_, err = svc.ToggleVideoLike(viewer.ID, video.ID)
	require.NoError(t, err)

	commentCount, err = likeRepo.CountByTarget(model.LikeTargetComment, comment.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), commentCount)
}

func TestToggleCommentLikeNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newLikeService(db)
	user := createTestUser(t, db, "user")

	_, err := svc.ToggleCommentLike(user.ID, 9999)
	assert.ErrorIs(t, err, ErrCommentNotFound)

	_, err = svc.ToggleTweetLike(user.ID, 9999)
	assert.ErrorIs(t, err, ErrTweetNotFound)
}

func TestGetLikedVideos(t *testing.T) {
	db := newTestDB(t)
	svc := newLikeService(db)

	owner := createTestUser(t, db, "owner")
	viewer := createTestUser(t, db, "viewer")
	v1 := createTestVideo(t, db, owner.ID, "v1")
	v2 := createTestVideo(t, db, owner.ID, "v2")
	v3 := createTestVideo(t, db, owner.ID, "v3")

	for _, v := range []*model.Video{v1, v2, v3} {
		_, err := svc.ToggleVideoLike(viewer.ID, v.ID)
		require.NoError(t, err)
		time.Sleep(10 * time.Millisecond)
	}

	data, err := svc.GetLikedVideos(viewer.ID, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(3), data.Total)
	require.Len(t, data.Videos, 3)

	// 按点赞时间倒序
	assert.Equal(t, v3.ID, data.Videos[0].ID)
	assert.Equal(t, v2.ID, data.Videos[1].ID)
	assert.Equal(t, v1.ID, data.Videos[2].ID)
}

func TestGetLikedVideosFiltersDeleted(t *testing.T) {
	db := newTestDB(t)
	svc := newLikeService(db)

	owner := createTestUser(t, db, "owner")
	viewer := createTestUser(t, db, "viewer")
	v1 := createTestVideo(t, db, owner.ID, "v1")
	v2 := createTestVideo(t, db, owner.ID, "v2")

	for _, v := range []*model.Video{v1, v2} {
		_, err := svc.ToggleVideoLike(viewer.ID, v.ID)
		require.NoError(t, err)
	}

	// 绕过服务直接删除视频，模拟残留的悬空点赞记录
	require.NoError(t, db.Delete(&model.Video{}, v1.ID).Error)

	data, err := svc.GetLikedVideos(viewer.ID, 1, 10)
	require.NoError(t, err)

	// total 为过滤后的数量，列表中不出现已删除视频
	assert.Equal(t, int64(1), data.Total)
	require.Len(t, data.Videos, 1)
	assert.Equal(t, v2.ID, data.Videos[0].ID)
}
