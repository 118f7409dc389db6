package service

import (
	"context"
	"errors"
	"testing"

	"vidtube/internal/api/dto"
	"vidtube/internal/media"
	"vidtube/internal/model"
	"vidtube/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeMediaStore 内存版对象存储，记录上传和删除的 URL
type fakeMediaStore struct {
	uploadVideoErr     error
	uploadThumbnailErr error
	deleted            []string
}

func (f *fakeMediaStore) UploadVideo(ctx context.Context, localPath string) (*media.UploadResult, error) {
	if f.uploadVideoErr != nil {
		return nil, f.uploadVideoErr
	}
	return &media.UploadResult{URL: "http://minio.local/videos/" + localPath, Duration: 12.5}, nil
}

func (f *fakeMediaStore) UploadThumbnail(ctx context.Context, localPath string) (string, error) {
	if f.uploadThumbnailErr != nil {
		return "", f.uploadThumbnailErr
	}
	return "http://minio.local/thumbnails/" + localPath, nil
}

func (f *fakeMediaStore) Delete(ctx context.Context, publicURL string) error {
	f.deleted = append(f.deleted, publicURL)
	return nil
}

func newVideoService(db *gorm.DB, store media.Store) *VideoService {
	return NewVideoService(
		repository.NewVideoRepository(db),
		repository.NewCommentRepository(db),
		repository.NewLikeRepository(db),
		store,
	)
}

func TestVideoPublish(t *testing.T) {
	db := newTestDB(t)
	store := &fakeMediaStore{}
	svc := newVideoService(db, store)
	owner := createTestUser(t, db, "owner")

	info, err := svc.Publish(context.Background(), owner.ID, &dto.VideoPublishRequest{
		Title:       "第一条视频",
		Description: "描述",
	}, "a.mp4", "a.jpg")
	require.NoError(t, err)

	assert.Equal(t, "第一条视频", info.Title)
	assert.Equal(t, "http://minio.local/videos/a.mp4", info.VideoURL)
	assert.Equal(t, "http://minio.local/thumbnails/a.jpg", info.ThumbnailURL)
	assert.Equal(t, 12.5, info.Duration)
	assert.True(t, info.IsPublished)
	require.NotNil(t, info.Owner)
	assert.Equal(t, owner.ID, info.Owner.ID)
	assert.Empty(t, store.deleted)
}

func TestVideoPublishThumbnailFailRollsBack(t *testing.T) {
	db := newTestDB(t)
	store := &fakeMediaStore{uploadThumbnailErr: errors.New("upload failed")}
	svc := newVideoService(db, store)
	owner := createTestUser(t, db, "owner")

	_, err := svc.Publish(context.Background(), owner.ID, &dto.VideoPublishRequest{
		Title: "视频",
	}, "a.mp4", "a.jpg")
	require.Error(t, err)

	// 封面失败时回收已上传的视频文件
	assert.Equal(t, []string{"http://minio.local/videos/a.mp4"}, store.deleted)

	var count int64
	require.NoError(t, db.Model(&model.Video{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestVideoGetIncrementsViews(t *testing.T) {
	db := newTestDB(t)
	svc := newVideoService(db, &fakeMediaStore{})
	owner := createTestUser(t, db, "owner")
	video := createTestVideo(t, db, owner.ID, "视频")

	info, err := svc.GetByID(video.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), info.ViewCount)

	info, err = svc.GetByID(video.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), info.ViewCount)

	_, err = svc.GetByID(9999)
	assert.ErrorIs(t, err, ErrVideoNotFound)
}

func TestVideoUpdateOwnership(t *testing.T) {
	db := newTestDB(t)
	svc := newVideoService(db, &fakeMediaStore{})
	owner := createTestUser(t, db, "owner")
	stranger := createTestUser(t, db, "stranger")
	video := createTestVideo(t, db, owner.ID, "旧标题")

	title := "新标题"
	_, err := svc.Update(context.Background(), stranger.ID, video.ID, &dto.VideoUpdateRequest{Title: &title}, "")
	assert.ErrorIs(t, err, ErrNotOwner)

	// 不存在的视频优先报 404
	_, err = svc.Update(context.Background(), stranger.ID, 9999, &dto.VideoUpdateRequest{Title: &title}, "")
	assert.ErrorIs(t, err, ErrVideoNotFound)

	// 空更新报错
	_, err = svc.Update(context.Background(), owner.ID, video.ID, &dto.VideoUpdateRequest{}, "")
	assert.ErrorIs(t, err, ErrEmptyUpdate)

	info, err := svc.Update(context.Background(), owner.ID, video.ID, &dto.VideoUpdateRequest{Title: &title}, "")
	require.NoError(t, err)
	assert.Equal(t, "新标题", info.Title)
}

func TestVideoUpdateReplacesThumbnail(t *testing.T) {
	db := newTestDB(t)
	store := &fakeMediaStore{}
	svc := newVideoService(db, store)
	owner := createTestUser(t, db, "owner")
	video := createTestVideo(t, db, owner.ID, "视频")

	info, err := svc.Update(context.Background(), owner.ID, video.ID, &dto.VideoUpdateRequest{}, "new.jpg")
	require.NoError(t, err)
	assert.Equal(t, "http://minio.local/thumbnails/new.jpg", info.ThumbnailURL)

	// 旧封面被尽力清理
	assert.Equal(t, []string{video.ThumbnailURL}, store.deleted)
}

func TestVideoDeleteCascades(t *testing.T) {
	db := newTestDB(t)
	store := &fakeMediaStore{}
	svc := newVideoService(db, store)
	owner := createTestUser(t, db, "owner")
	viewer := createTestUser(t, db, "viewer")
	video := createTestVideo(t, db, owner.ID, "视频")

	comment := &model.Comment{VideoID: video.ID, OwnerID: viewer.ID, Content: "评论"}
	require.NoError(t, db.Create(comment).Error)
	require.NoError(t, db.Create(&model.Like{
		UserID: viewer.ID, TargetType: model.LikeTargetVideo, TargetID: video.ID,
	}).Error)
	require.NoError(t, db.Create(&model.Like{
		UserID: viewer.ID, TargetType: model.LikeTargetComment, TargetID: comment.ID,
	}).Error)

	err := svc.Delete(context.Background(), viewer.ID, video.ID)
	assert.ErrorIs(t, err, ErrNotOwner)

	require.NoError(t, svc.Delete(context.Background(), owner.ID, video.ID))

	var videos, comments, likes int64
	require.NoError(t, db.Model(&model.Video{}).Count(&videos).Error)
	require.NoError(t, db.Model(&model.Comment{}).Count(&comments).Error)
	require.NoError(t, db.Model(&model.Like{}).Count(&likes).Error)
	assert.Equal(t, int64(0), videos)
	assert.Equal(t, int64(0), comments)
	assert.Equal(t, int64(0), likes)

	// 视频和封面文件都从对象存储清理
	assert.Len(t, store.deleted, 2)

	err = svc.Delete(context.Background(), owner.ID, video.ID)
	assert.ErrorIs(t, err, ErrVideoNotFound)
}

func TestVideoTogglePublish(t *testing.T) {
	db := newTestDB(t)
	svc := newVideoService(db, &fakeMediaStore{})
	owner := createTestUser(t, db, "owner")
	stranger := createTestUser(t, db, "stranger")
	video := createTestVideo(t, db, owner.ID, "视频")

	_, err := svc.TogglePublish(context.Background(), stranger.ID, video.ID)
	assert.ErrorIs(t, err, ErrNotOwner)

	result, err := svc.TogglePublish(context.Background(), owner.ID, video.ID)
	require.NoError(t, err)
	assert.False(t, result.IsPublished)

	result, err = svc.TogglePublish(context.Background(), owner.ID, video.ID)
	require.NoError(t, err)
	assert.True(t, result.IsPublished)
}

func TestVideoListPublished(t *testing.T) {
	db := newTestDB(t)
	svc := newVideoService(db, &fakeMediaStore{})
	owner := createTestUser(t, db, "owner")
	other := createTestUser(t, db, "other")

	createTestVideo(t, db, owner.ID, "v1")
	createTestVideo(t, db, owner.ID, "v2")
	createTestVideo(t, db, other.ID, "v3")

	// 未发布视频不出现在公开列表
	draft := createTestVideo(t, db, owner.ID, "draft")
	require.NoError(t, db.Model(&model.Video{}).Where("id = ?", draft.ID).
		Update("is_published", false).Error)

	data, err := svc.ListPublished(&dto.VideoListRequest{}, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(3), data.Total)

	data, err = svc.ListPublished(&dto.VideoListRequest{ChannelID: &owner.ID}, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), data.Total)

	// 标题关键字过滤
	data, err = svc.ListPublished(&dto.VideoListRequest{Q: "v1"}, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), data.Total)

	// 频道全量列表包含未发布
	data, err = svc.ListByOwner(owner.ID, "", "", 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(3), data.Total)
}

func TestVideoListSorting(t *testing.T) {
	db := newTestDB(t)
	svc := newVideoService(db, &fakeMediaStore{})
	owner := createTestUser(t, db, "owner")

	v1 := createTestVideo(t, db, owner.ID, "v1")
	v2 := createTestVideo(t, db, owner.ID, "v2")
	v3 := createTestVideo(t, db, owner.ID, "v3")
	require.NoError(t, db.Model(&model.Video{}).Where("id = ?", v1.ID).Update("view_count", 5).Error)
	require.NoError(t, db.Model(&model.Video{}).Where("id = ?", v2.ID).Update("view_count", 20).Error)
	require.NoError(t, db.Model(&model.Video{}).Where("id = ?", v3.ID).Update("view_count", 10).Error)

	data, err := svc.ListPublished(&dto.VideoListRequest{SortBy: "view_count", SortType: "desc"}, 1, 10)
	require.NoError(t, err)
	require.Len(t, data.Videos, 3)
	assert.Equal(t, v2.ID, data.Videos[0].ID)
	assert.Equal(t, v3.ID, data.Videos[1].ID)
	assert.Equal(t, v1.ID, data.Videos[2].ID)

	data, err = svc.ListPublished(&dto.VideoListRequest{SortBy: "view_count", SortType: "asc"}, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, v1.ID, data.Videos[0].ID)
}
