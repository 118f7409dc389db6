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

func newSubscriptionService(db *gorm.DB) *SubscriptionService {
	return NewSubscriptionService(
		repository.NewSubscriptionRepository(db),
		repository.NewUserRepository(db),
	)
}

func TestToggleSubscription(t *testing.T) {
	db := newTestDB(t)
	svc := newSubscriptionService(db)

	channel := createTestUser(t, db, "channel")
	subscriber := createTestUser(t, db, "subscriber")

	// 订阅
	result, err := svc.Toggle(subscriber.ID, channel.ID)
	require.NoError(t, err)
	assert.True(t, result.Subscribed)
	assert.Equal(t, int64(1), result.SubscriberCount)

	// 退订
	result, err = svc.Toggle(subscriber.ID, channel.ID)
	require.NoError(t, err)
	assert.False(t, result.Subscribed)
	assert.Equal(t, int64(0), result.SubscriberCount)

	// 重复切换不产生重复记录
	_, err = svc.Toggle(subscriber.ID, channel.ID)
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&model.Subscription{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestToggleSubscriptionSelf(t *testing.T) {
	db := newTestDB(t)
	svc := newSubscriptionService(db)
	user := createTestUser(t, db, "user")

	_, err := svc.Toggle(user.ID, user.ID)
	assert.ErrorIs(t, err, ErrSelfSubscribe)
}

func TestToggleSubscriptionChannelNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newSubscriptionService(db)
	user := createTestUser(t, db, "user")

	_, err := svc.Toggle(user.ID, 9999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestListSubscribedChannels(t *testing.T) {
	db := newTestDB(t)
	svc := newSubscriptionService(db)

	subscriber := createTestUser(t, db, "subscriber")
	c1 := createTestUser(t, db, "channel1")
	c2 := createTestUser(t, db, "channel2")

	for _, c := range []*model.User{c1, c2} {
		_, err := svc.Toggle(subscriber.ID, c.ID)
		require.NoError(t, err)
		time.Sleep(10 * time.Millisecond)
	}

	data, err := svc.ListSubscribedChannels(subscriber.ID, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), data.Total)
	require.Len(t, data.Channels, 2)

	// 按订阅时间倒序
	assert.Equal(t, c2.ID, data.Channels[0].ID)
	assert.Equal(t, c1.ID, data.Channels[1].ID)
	assert.Equal(t, int64(1), data.Channels[0].SubscriberCount)
}

func TestListSubscribers(t *testing.T) {
	db := newTestDB(t)
	svc := newSubscriptionService(db)

	channel := createTestUser(t, db, "channel")
	s1 := createTestUser(t, db, "sub1")
	s2 := createTestUser(t, db, "sub2")

	for _, s := range []*model.User{s1, s2} {
		_, err := svc.Toggle(s.ID, channel.ID)
		require.NoError(t, err)
	}

	data, err := svc.ListSubscribers(channel.ID, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), data.Total)
	assert.Len(t, data.Channels, 2)
}
