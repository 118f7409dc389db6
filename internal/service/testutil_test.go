package service

import (
	"testing"

	"vidtube/internal/config"
	"vidtube/internal/model"
	"vidtube/pkg/utils"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB 创建内存数据库并迁移全部表
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Video{},
		&model.Comment{},
		&model.Tweet{},
		&model.Like{},
		&model.Subscription{},
		&model.Playlist{},
		&model.PlaylistVideo{},
	))

	config.Set(&config.Config{
		JWT: config.JWTConfig{Secret: "test-secret", ExpireHours: 1},
	})

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, userName string) *model.User {
	t.Helper()

	hashed, err := utils.HashPassword("password123")
	require.NoError(t, err)

	user := &model.User{
		UserName: userName,
		FullName: userName + " 测试",
		Password: hashed,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestVideo(t *testing.T, db *gorm.DB, ownerID int64, title string) *model.Video {
	t.Helper()

	video := &model.Video{
		OwnerID:      ownerID,
		Title:        title,
		Description:  "测试视频",
		VideoURL:     "http://localhost:9000/vidtube-videos/" + title + ".mp4",
		ThumbnailURL: "http://localhost:9000/vidtube-thumbnails/" + title + ".jpg",
		Duration:     30,
		IsPublished:  true,
	}
	require.NoError(t, db.Create(video).Error)
	return video
}
