package service

import (
	"testing"
	"time"

	"vidtube/internal/api/dto"
	"vidtube/internal/model"
	"vidtube/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTweetService(db *gorm.DB) *TweetService {
	return NewTweetService(
		repository.NewTweetRepository(db),
		repository.NewUserRepository(db),
		repository.NewLikeRepository(db),
	)
}

func TestTweetCreate(t *testing.T) {
	db := newTestDB(t)
	svc := newTweetService(db)
	owner := createTestUser(t, db, "owner")

	info, err := svc.Create(owner.ID, &dto.TweetCreateRequest{Content: "第一条动态"})
	require.NoError(t, err)
	assert.Equal(t, "第一条动态", info.Content)
	require.NotNil(t, info.Owner)
	assert.Equal(t, owner.ID, info.Owner.ID)
	assert.Equal(t, int64(0), info.LikeCount)

	// 纯空白内容被拒绝
	_, err = svc.Create(owner.ID, &dto.TweetCreateRequest{Content: " \n\t "})
	assert.ErrorIs(t, err, ErrBlankContent)
}

func TestTweetUpdateOwnership(t *testing.T) {
	db := newTestDB(t)
	svc := newTweetService(db)
	owner := createTestUser(t, db, "owner")
	stranger := createTestUser(t, db, "stranger")

	info, err := svc.Create(owner.ID, &dto.TweetCreateRequest{Content: "旧内容"})
	require.NoError(t, err)

	_, err = svc.Update(stranger.ID, info.ID, &dto.TweetUpdateRequest{Content: "篡改"})
	assert.ErrorIs(t, err, ErrNotOwner)

	_, err = svc.Update(stranger.ID, 9999, &dto.TweetUpdateRequest{Content: "篡改"})
	assert.ErrorIs(t, err, ErrTweetNotFound)

	updated, err := svc.Update(owner.ID, info.ID, &dto.TweetUpdateRequest{Content: "新内容"})
	require.NoError(t, err)
	assert.Equal(t, "新内容", updated.Content)
}

func TestTweetDeleteCleansLikes(t *testing.T) {
	db := newTestDB(t)
	svc := newTweetService(db)
	owner := createTestUser(t, db, "owner")
	viewer := createTestUser(t, db, "viewer")

	info, err := svc.Create(owner.ID, &dto.TweetCreateRequest{Content: "动态"})
	require.NoError(t, err)
	require.NoError(t, db.Create(&model.Like{
		UserID: viewer.ID, TargetType: model.LikeTargetTweet, TargetID: info.ID,
	}).Error)

	err = svc.Delete(viewer.ID, info.ID)
	assert.ErrorIs(t, err, ErrNotOwner)

	require.NoError(t, svc.Delete(owner.ID, info.ID))

	var tweets, likes int64
	require.NoError(t, db.Model(&model.Tweet{}).Count(&tweets).Error)
	require.NoError(t, db.Model(&model.Like{}).Count(&likes).Error)
	assert.Equal(t, int64(0), tweets)
	assert.Equal(t, int64(0), likes)

	err = svc.Delete(owner.ID, info.ID)
	assert.ErrorIs(t, err, ErrTweetNotFound)
}

func TestTweetListByUser(t *testing.T) {
	db := newTestDB(t)
	svc := newTweetService(db)
	owner := createTestUser(t, db, "owner")
	other := createTestUser(t, db, "other")

	for _, content := range []string{"第一条", "第二条"} {
		_, err := svc.Create(owner.ID, &dto.TweetCreateRequest{Content: content})
		require.NoError(t, err)
		time.Sleep(10 * time.Millisecond)
	}
	_, err := svc.Create(other.ID, &dto.TweetCreateRequest{Content: "别人的"})
	require.NoError(t, err)

	data, err := svc.ListByUser(owner.ID, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), data.Total)
	require.Len(t, data.Tweets, 2)
	assert.Equal(t, "第二条", data.Tweets[0].Content)
	assert.Equal(t, "第一条", data.Tweets[1].Content)

	_, err = svc.ListByUser(9999, 1, 10)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
