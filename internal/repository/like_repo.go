package repository

import (
	"vidtube/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LikeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) *LikeRepository {
	return &LikeRepository{db: db}
}

// Delete 删除点赞记录，返回是否真的删除了一条
func (r *LikeRepository) Delete(userID int64, targetType model.LikeTarget, targetID int64) (bool, error) {
	result := r.db.Where("user_id = ? AND target_type = ? AND target_id = ?",
		userID, targetType, targetID).Delete(&model.Like{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Insert 插入点赞记录，唯一索引冲突时静默跳过，返回是否真的插入了一条
func (r *LikeRepository) Insert(userID int64, targetType model.LikeTarget, targetID int64) (bool, error) {
	like := &model.Like{UserID: userID, TargetType: targetType, TargetID: targetID}
	result := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(like)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Exists 查询用户是否已点赞目标
func (r *LikeRepository) Exists(userID int64, targetType model.LikeTarget, targetID int64) (bool, error) {
	var count int64
	err := r.db.Model(&model.Like{}).
		Where("user_id = ? AND target_type = ? AND target_id = ?", userID, targetType, targetID).
		Count(&count).Error
	return count > 0, err
}

// CountByTarget 统计目标的点赞数
func (r *LikeRepository) CountByTarget(targetType model.LikeTarget, targetID int64) (int64, error) {
	var count int64
	err := r.db.Model(&model.Like{}).
		Where("target_type = ? AND target_id = ?", targetType, targetID).
		Count(&count).Error
	return count, err
}

// CountVideoLikesByOwner 统计频道全部视频收到的点赞总数
func (r *LikeRepository) CountVideoLikesByOwner(ownerID int64) (int64, error) {
	var count int64
	err := r.db.Model(&model.Like{}).
		Joins("JOIN videos ON videos.id = likes.target_id").
		Where("likes.target_type = ? AND videos.owner_id = ?", model.LikeTargetVideo, ownerID).
		Count(&count).Error
	return count, err
}

// ListLikedVideos 分页查询用户点赞过的视频，按点赞时间倒序。
// 通过内连接过滤掉指向已删除视频的点赞记录，total 为过滤后的数量。
func (r *LikeRepository) ListLikedVideos(userID int64, skip, limit int) ([]model.Video, int64, error) {
	query := r.db.Model(&model.Like{}).
		Joins("JOIN videos ON videos.id = likes.target_id").
		Where("likes.user_id = ? AND likes.target_type = ?", userID, model.LikeTargetVideo)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var videos []model.Video
	err := query.Select("videos.*").Order("likes.created_at DESC").
		Offset(skip).Limit(limit).Scan(&videos).Error
	if err != nil {
		return nil, 0, err
	}
	return videos, total, nil
}

// DeleteByTarget 删除目标的全部点赞记录（内容删除时级联）
func (r *LikeRepository) DeleteByTarget(targetType model.LikeTarget, targetID int64) error {
	return r.db.Where("target_type = ? AND target_id = ?", targetType, targetID).
		Delete(&model.Like{}).Error
}

// DeleteByTargets 批量删除多个目标的点赞记录
func (r *LikeRepository) DeleteByTargets(targetType model.LikeTarget, targetIDs []int64) error {
	if len(targetIDs) == 0 {
		return nil
	}
	return r.db.Where("target_type = ? AND target_id IN ?", targetType, targetIDs).
		Delete(&model.Like{}).Error
}
