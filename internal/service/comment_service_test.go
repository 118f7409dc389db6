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

func newCommentService(db *gorm.DB) *CommentService {
	return NewCommentService(
		repository.NewCommentRepository(db),
		repository.NewVideoRepository(db),
		repository.NewLikeRepository(db),
	)
}

func TestCommentCreate(t *testing.T) {
	db := newTestDB(t)
	svc := newCommentService(db)
	owner := createTestUser(t, db, "owner")
	viewer := createTestUser(t, db, "viewer")
	video := createTestVideo(t, db, owner.ID, "视频")

	info, err := svc.Create(viewer.ID, video.ID, &dto.CommentCreateRequest{Content: "很棒"})
	require.NoError(t, err)
	assert.Equal(t, "很棒", info.Content)
	assert.Equal(t, video.ID, info.VideoID)
	require.NotNil(t, info.Owner)
	assert.Equal(t, viewer.ID, info.Owner.ID)

	// 视频不存在时不落评论
	_, err = svc.Create(viewer.ID, 9999, &dto.CommentCreateRequest{Content: "很棒"})
	assert.ErrorIs(t, err, ErrVideoNotFound)

	// 纯空白内容被拒绝
	_, err = svc.Create(viewer.ID, video.ID, &dto.CommentCreateRequest{Content: "   "})
	assert.ErrorIs(t, err, ErrBlankContent)
}

func TestCommentUpdateOwnership(t *testing.T) {
	db := newTestDB(t)
	svc := newCommentService(db)
	owner := createTestUser(t, db, "owner")
	stranger := createTestUser(t, db, "stranger")
	video := createTestVideo(t, db, owner.ID, "视频")

	info, err := svc.Create(owner.ID, video.ID, &dto.CommentCreateRequest{Content: "旧内容"})
	require.NoError(t, err)

	_, err = svc.Update(stranger.ID, info.ID, &dto.CommentUpdateRequest{Content: "篡改"})
	assert.ErrorIs(t, err, ErrNotOwner)

	// 不存在的评论优先报 404
	_, err = svc.Update(stranger.ID, 9999, &dto.CommentUpdateRequest{Content: "篡改"})
	assert.ErrorIs(t, err, ErrCommentNotFound)

	updated, err := svc.Update(owner.ID, info.ID, &dto.CommentUpdateRequest{Content: "新内容"})
	require.NoError(t, err)
	assert.Equal(t, "新内容", updated.Content)
}

func TestCommentDeleteCleansLikes(t *testing.T) {
	db := newTestDB(t)
	svc := newCommentService(db)
	owner := createTestUser(t, db, "owner")
	viewer := createTestUser(t, db, "viewer")
	video := createTestVideo(t, db, owner.ID, "视频")

	info, err := svc.Create(viewer.ID, video.ID, &dto.CommentCreateRequest{Content: "评论"})
	require.NoError(t, err)
	require.NoError(t, db.Create(&model.Like{
		UserID: owner.ID, TargetType: model.LikeTargetComment, TargetID: info.ID,
	}).Error)

	err = svc.Delete(owner.ID, info.ID)
	assert.ErrorIs(t, err, ErrNotOwner)

	require.NoError(t, svc.Delete(viewer.ID, info.ID))

	var comments, likes int64
	require.NoError(t, db.Model(&model.Comment{}).Count(&comments).Error)
	require.NoError(t, db.Model(&model.Like{}).Count(&likes).Error)
	assert.Equal(t, int64(0), comments)
	assert.Equal(t, int64(0), likes)
}

func TestCommentListByVideo(t *testing.T) {
	db := newTestDB(t)
	svc := newCommentService(db)
	owner := createTestUser(t, db, "owner")
	video := createTestVideo(t, db, owner.ID, "视频")

	for _, content := range []string{"一楼", "二楼", "三楼"} {
		_, err := svc.Create(owner.ID, video.ID, &dto.CommentCreateRequest{Content: content})
		require.NoError(t, err)
		time.Sleep(10 * time.Millisecond)
	}

	data, err := svc.ListByVideo(video.ID, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), data.Total)
	assert.Equal(t, int64(2), data.TotalPages)
	require.Len(t, data.Comments, 2)

	// 最新在前
	assert.Equal(t, "三楼", data.Comments[0].Content)
	assert.Equal(t, "二楼", data.Comments[1].Content)

	data, err = svc.ListByVideo(video.ID, 2, 2)
	require.NoError(t, err)
	require.Len(t, data.Comments, 1)
	assert.Equal(t, "一楼", data.Comments[0].Content)

	_, err = svc.ListByVideo(9999, 1, 10)
	assert.ErrorIs(t, err, ErrVideoNotFound)
}
