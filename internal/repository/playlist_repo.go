package repository

import (
	"vidtube/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PlaylistRepository struct {
	db *gorm.DB
}

func NewPlaylistRepository(db *gorm.DB) *PlaylistRepository {
	return &PlaylistRepository{db: db}
}

// Create 创建播放列表
func (r *PlaylistRepository) Create(playlist *model.Playlist) error {
	return r.db.Create(playlist).Error
}

// GetByID 根据 ID 查询播放列表
func (r *PlaylistRepository) GetByID(id int64) (*model.Playlist, error) {
	var playlist model.Playlist
	if err := r.db.First(&playlist, id).Error; err != nil {
		return nil, err
	}
	return &playlist, nil
}

// Update 更新播放列表字段（传入 map，只更新给定字段）
func (r *PlaylistRepository) Update(id int64, updates map[string]interface{}) (*model.Playlist, error) {
	result := r.db.Model(&model.Playlist{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(id)
}

// Delete 删除播放列表及其全部视频引用
func (r *PlaylistRepository) Delete(id int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("playlist_id = ?", id).Delete(&model.PlaylistVideo{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Playlist{}, id).Error
	})
}

// ListByOwner 分页查询用户的播放列表
func (r *PlaylistRepository) ListByOwner(ownerID int64, skip, limit int) ([]model.Playlist, int64, error) {
	query := r.db.Model(&model.Playlist{}).Where("owner_id = ?", ownerID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var playlists []model.Playlist
	err := query.Order("created_at DESC").Offset(skip).Limit(limit).Find(&playlists).Error
	if err != nil {
		return nil, 0, err
	}
	return playlists, total, nil
}

// AddVideo 在列表末尾追加视频引用，已存在时不重复添加，返回是否真的追加了
func (r *PlaylistRepository) AddVideo(playlistID, videoID int64) (bool, error) {
	var added bool
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var maxPos int64
		if err := tx.Model(&model.PlaylistVideo{}).
			Where("playlist_id = ?", playlistID).
			Select("COALESCE(MAX(position), 0)").Scan(&maxPos).Error; err != nil {
			return err
		}

		ref := &model.PlaylistVideo{
			PlaylistID: playlistID,
			VideoID:    videoID,
			Position:   int(maxPos) + 1,
		}
		result := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(ref)
		if result.Error != nil {
			return result.Error
		}
		added = result.RowsAffected > 0
		return nil
	})
	return added, err
}

// RemoveVideo 移除视频引用，返回是否真的移除了
func (r *PlaylistRepository) RemoveVideo(playlistID, videoID int64) (bool, error) {
	result := r.db.Where("playlist_id = ? AND video_id = ?", playlistID, videoID).
		Delete(&model.PlaylistVideo{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// CountVideos 统计播放列表中仍然存在的视频数量。
// 内连接过滤掉指向已删除视频的残留引用，引用行本身保留不清理。
func (r *PlaylistRepository) CountVideos(playlistID int64) (int64, error) {
	var count int64
	err := r.db.Model(&model.PlaylistVideo{}).
		Joins("JOIN videos ON videos.id = playlist_videos.video_id").
		Where("playlist_videos.playlist_id = ?", playlistID).
		Count(&count).Error
	return count, err
}

// ListVideoRefs 按位置顺序分页查询播放列表中的视频引用
func (r *PlaylistRepository) ListVideoRefs(playlistID int64, skip, limit int) ([]model.PlaylistVideo, int64, error) {
	query := r.db.Model(&model.PlaylistVideo{}).Where("playlist_id = ?", playlistID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var refs []model.PlaylistVideo
	err := query.Order("position ASC").Offset(skip).Limit(limit).Find(&refs).Error
	if err != nil {
		return nil, 0, err
	}
	return refs, total, nil
}
