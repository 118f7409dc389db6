package service

import (
	"testing"

	"vidtube/internal/api/dto"
	"vidtube/internal/model"
	"vidtube/internal/repository"
	"vidtube/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newUserService(db *gorm.DB) *UserService {
	return NewUserService(
		repository.NewUserRepository(db),
		repository.NewSubscriptionRepository(db),
	)
}

func TestUpdateProfile(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db)
	user := createTestUser(t, db, "alice")

	fullName := "Alice Chen"
	avatar := "http://minio.local/avatars/alice.jpg"
	info, err := svc.UpdateProfile(user.ID, &dto.UserUpdateRequest{
		FullName: &fullName,
		Avatar:   &avatar,
	})
	require.NoError(t, err)
	assert.Equal(t, "Alice Chen", info.FullName)
	assert.Equal(t, avatar, info.Avatar)

	// 空更新报错
	_, err = svc.UpdateProfile(user.ID, &dto.UserUpdateRequest{})
	assert.ErrorIs(t, err, ErrEmptyUpdate)

	_, err = svc.UpdateProfile(9999, &dto.UserUpdateRequest{FullName: &fullName})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestChangePassword(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db)
	user := createTestUser(t, db, "alice")

	err := svc.ChangePassword(user.ID, &dto.ChangePasswordRequest{
		OldPassword: "wrong",
		NewPassword: "newpassword1",
	})
	assert.ErrorIs(t, err, ErrWrongOldPassword)

	require.NoError(t, svc.ChangePassword(user.ID, &dto.ChangePasswordRequest{
		OldPassword: "password123",
		NewPassword: "newpassword1",
	}))

	var stored model.User
	require.NoError(t, db.First(&stored, user.ID).Error)
	assert.True(t, utils.VerifyPassword("newpassword1", stored.Password))
	assert.False(t, utils.VerifyPassword("password123", stored.Password))
}

func TestGetChannelProfile(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db)
	channel := createTestUser(t, db, "channel")
	fan1 := createTestUser(t, db, "fan1")
	fan2 := createTestUser(t, db, "fan2")

	require.NoError(t, db.Create(&model.Subscription{
		SubscriberID: fan1.ID, ChannelID: channel.ID,
	}).Error)
	require.NoError(t, db.Create(&model.Subscription{
		SubscriberID: fan2.ID, ChannelID: channel.ID,
	}).Error)
	require.NoError(t, db.Create(&model.Subscription{
		SubscriberID: channel.ID, ChannelID: fan1.ID,
	}).Error)

	// 匿名访问
	profile, err := svc.GetChannelProfile(channel.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(2), profile.SubscriberCount)
	assert.Equal(t, int64(1), profile.SubscribedCount)
	assert.False(t, profile.IsSubscribed)

	// 已订阅的访问者
	profile, err = svc.GetChannelProfile(channel.ID, &fan1.ID)
	require.NoError(t, err)
	assert.True(t, profile.IsSubscribed)

	// 未订阅的访问者
	viewerID := channel.ID
	profile, err = svc.GetChannelProfile(fan2.ID, &viewerID)
	require.NoError(t, err)
	assert.False(t, profile.IsSubscribed)

	_, err = svc.GetChannelProfile(9999, nil)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
