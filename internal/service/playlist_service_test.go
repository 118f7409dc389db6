package service

import (
	"testing"

	"vidtube/internal/api/dto"
	"vidtube/internal/model"
	"vidtube/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newPlaylistService(db *gorm.DB) *PlaylistService {
	return NewPlaylistService(
		repository.NewPlaylistRepository(db),
		repository.NewVideoRepository(db),
		repository.NewUserRepository(db),
	)
}

func TestPlaylistCreateAndGet(t *testing.T) {
	db := newTestDB(t)
	svc := newPlaylistService(db)
	owner := createTestUser(t, db, "owner")

	info, err := svc.Create(owner.ID, &dto.PlaylistCreateRequest{
		Name:        "我的收藏",
		Description: "测试",
	})
	require.NoError(t, err)
	assert.Equal(t, "我的收藏", info.Name)
	assert.Equal(t, int64(0), info.VideoCount)

	detail, err := svc.GetByID(info.ID, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, info.ID, detail.Playlist.ID)
	assert.Empty(t, detail.Videos)

	// 纯空白名称被拒绝
	_, err = svc.Create(owner.ID, &dto.PlaylistCreateRequest{Name: "  "})
	assert.ErrorIs(t, err, ErrBlankContent)
}

func TestPlaylistAddVideoKeepsOrder(t *testing.T) {
	db := newTestDB(t)
	svc := newPlaylistService(db)
	owner := createTestUser(t, db, "owner")

	info, err := svc.Create(owner.ID, &dto.PlaylistCreateRequest{Name: "列表"})
	require.NoError(t, err)

	v1 := createTestVideo(t, db, owner.ID, "v1")
	v2 := createTestVideo(t, db, owner.ID, "v2")
	v3 := createTestVideo(t, db, owner.ID, "v3")

	for _, v := range []*model.Video{v1, v2, v3} {
		_, err := svc.AddVideo(owner.ID, info.ID, v.ID)
		require.NoError(t, err)
	}

	detail, err := svc.GetByID(info.ID, 1, 10)
	require.NoError(t, err)
	require.Len(t, detail.Videos, 3)

	// 按加入顺序返回
	assert.Equal(t, v1.ID, detail.Videos[0].ID)
	assert.Equal(t, v2.ID, detail.Videos[1].ID)
	assert.Equal(t, v3.ID, detail.Videos[2].ID)

	// 重复添加报错且不产生重复项
	_, err = svc.AddVideo(owner.ID, info.ID, v2.ID)
	assert.ErrorIs(t, err, ErrVideoAlreadyInPlaylist)

	detail, err = svc.GetByID(info.ID, 1, 10)
	require.NoError(t, err)
	assert.Len(t, detail.Videos, 3)
}

func TestPlaylistRemoveVideoKeepsOrder(t *testing.T) {
	db := newTestDB(t)
	svc := newPlaylistService(db)
	owner := createTestUser(t, db, "owner")

	info, err := svc.Create(owner.ID, &dto.PlaylistCreateRequest{Name: "列表"})
	require.NoError(t, err)

	v1 := createTestVideo(t, db, owner.ID, "v1")
	v2 := createTestVideo(t, db, owner.ID, "v2")
	v3 := createTestVideo(t, db, owner.ID, "v3")
	for _, v := range []*model.Video{v1, v2, v3} {
		_, err := svc.AddVideo(owner.ID, info.ID, v.ID)
		require.NoError(t, err)
	}

	_, err = svc.RemoveVideo(owner.ID, info.ID, v2.ID)
	require.NoError(t, err)

	// 再次移除同一视频报错
	_, err = svc.RemoveVideo(owner.ID, info.ID, v2.ID)
	assert.ErrorIs(t, err, ErrVideoNotInPlaylist)

	detail, err := svc.GetByID(info.ID, 1, 10)
	require.NoError(t, err)
	require.Len(t, detail.Videos, 2)
	assert.Equal(t, v1.ID, detail.Videos[0].ID)
	assert.Equal(t, v3.ID, detail.Videos[1].ID)

	// 移除后再追加排在末尾
	_, err = svc.AddVideo(owner.ID, info.ID, v2.ID)
	require.NoError(t, err)

	detail, err = svc.GetByID(info.ID, 1, 10)
	require.NoError(t, err)
	require.Len(t, detail.Videos, 3)
	assert.Equal(t, v2.ID, detail.Videos[2].ID)
}

func TestPlaylistSkipsDeletedVideos(t *testing.T) {
	db := newTestDB(t)
	svc := newPlaylistService(db)
	owner := createTestUser(t, db, "owner")

	info, err := svc.Create(owner.ID, &dto.PlaylistCreateRequest{Name: "列表"})
	require.NoError(t, err)

	v1 := createTestVideo(t, db, owner.ID, "v1")
	v2 := createTestVideo(t, db, owner.ID, "v2")
	for _, v := range []*model.Video{v1, v2} {
		_, err := svc.AddVideo(owner.ID, info.ID, v.ID)
		require.NoError(t, err)
	}

	// 绕过服务直接删除视频，模拟残留的悬空引用
	require.NoError(t, db.Delete(&model.Video{}, v1.ID).Error)

	detail, err := svc.GetByID(info.ID, 1, 10)
	require.NoError(t, err)

	// 已删除视频被静默跳过，总数同步减少
	require.Len(t, detail.Videos, 1)
	assert.Equal(t, v2.ID, detail.Videos[0].ID)
	assert.Equal(t, int64(1), detail.Total)
	assert.Equal(t, int64(1), detail.Playlist.VideoCount)
}

func TestPlaylistOwnership(t *testing.T) {
	db := newTestDB(t)
	svc := newPlaylistService(db)
	owner := createTestUser(t, db, "owner")
	stranger := createTestUser(t, db, "stranger")

	info, err := svc.Create(owner.ID, &dto.PlaylistCreateRequest{Name: "列表"})
	require.NoError(t, err)

	name := "改名"
	_, err = svc.Update(stranger.ID, info.ID, &dto.PlaylistUpdateRequest{Name: &name})
	assert.ErrorIs(t, err, ErrNotOwner)

	err = svc.Delete(stranger.ID, info.ID)
	assert.ErrorIs(t, err, ErrNotOwner)

	// 不存在的播放列表优先报 404，而不是权限错误
	_, err = svc.Update(stranger.ID, 9999, &dto.PlaylistUpdateRequest{Name: &name})
	assert.ErrorIs(t, err, ErrPlaylistNotFound)
}

func TestPlaylistUpdate(t *testing.T) {
	db := newTestDB(t)
	svc := newPlaylistService(db)
	owner := createTestUser(t, db, "owner")

	info, err := svc.Create(owner.ID, &dto.PlaylistCreateRequest{Name: "旧名字"})
	require.NoError(t, err)

	name := "新名字"
	updated, err := svc.Update(owner.ID, info.ID, &dto.PlaylistUpdateRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "新名字", updated.Name)
}
