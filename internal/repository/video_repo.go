package repository

import (
	"vidtube/internal/model"

	"gorm.io/gorm"
)

type VideoRepository struct {
	db *gorm.DB
}

func NewVideoRepository(db *gorm.DB) *VideoRepository {
	return &VideoRepository{db: db}
}

// Create 创建视频记录
func (r *VideoRepository) Create(video *model.Video) error {
	return r.db.Create(video).Error
}

// GetByID 根据 ID 查询视频（带作者信息）
func (r *VideoRepository) GetByID(id int64) (*model.Video, error) {
	var video model.Video
	if err := r.db.Preload("Owner").First(&video, id).Error; err != nil {
		return nil, err
	}
	return &video, nil
}

// Update 更新视频字段（传入 map，只更新给定字段）
func (r *VideoRepository) Update(id int64, updates map[string]interface{}) (*model.Video, error) {
	result := r.db.Model(&model.Video{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(id)
}

// Delete 删除视频记录
func (r *VideoRepository) Delete(id int64) error {
	return r.db.Delete(&model.Video{}, id).Error
}

// 列表接口允许的排序字段，防止排序参数拼进 SQL
var videoSortColumns = map[string]string{
	"created_at": "created_at",
	"view_count": "view_count",
	"duration":   "duration",
}

// VideoOrderClause 将排序参数转换为白名单内的 ORDER BY 子句，非法值回落到按时间倒序
func VideoOrderClause(sortBy, sortType string) string {
	column, ok := videoSortColumns[sortBy]
	if !ok {
		column = "created_at"
	}
	direction := "DESC"
	if sortType == "asc" {
		direction = "ASC"
	}
	return column + " " + direction
}

// ListPublished 分页查询已发布视频，ownerID 非空时只查指定频道，keyword 非空时按标题模糊过滤
func (r *VideoRepository) ListPublished(ownerID *int64, keyword, order string, skip, limit int) ([]model.Video, int64, error) {
	query := r.db.Model(&model.Video{}).Where("is_published = ?", true)
	if ownerID != nil {
		query = query.Where("owner_id = ?", *ownerID)
	}
	if keyword != "" {
		pattern := "%" + keyword + "%"
		query = query.Where("title LIKE ?", pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var videos []model.Video
	err := query.Preload("Owner").Order(order).
		Offset(skip).Limit(limit).Find(&videos).Error
	if err != nil {
		return nil, 0, err
	}
	return videos, total, nil
}

// ListByOwner 分页查询频道的全部视频（含未发布，仪表盘用）
func (r *VideoRepository) ListByOwner(ownerID int64, order string, skip, limit int) ([]model.Video, int64, error) {
	query := r.db.Model(&model.Video{}).Where("owner_id = ?", ownerID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var videos []model.Video
	err := query.Order(order).Offset(skip).Limit(limit).Find(&videos).Error
	if err != nil {
		return nil, 0, err
	}
	return videos, total, nil
}

// GetByIDs 批量查询视频（带作者信息），不保证顺序
func (r *VideoRepository) GetByIDs(ids []int64) ([]model.Video, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var videos []model.Video
	err := r.db.Preload("Owner").Where("id IN ?", ids).Find(&videos).Error
	return videos, err
}

// IncrementViewCount 播放量 +1
func (r *VideoRepository) IncrementViewCount(id int64) error {
	return r.db.Model(&model.Video{}).Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
}

// CountByOwner 统计频道的视频总数
func (r *VideoRepository) CountByOwner(ownerID int64) (int64, error) {
	var count int64
	err := r.db.Model(&model.Video{}).Where("owner_id = ?", ownerID).Count(&count).Error
	return count, err
}

// SumViewsByOwner 统计频道视频的播放量总和
func (r *VideoRepository) SumViewsByOwner(ownerID int64) (int64, error) {
	var total int64
	err := r.db.Model(&model.Video{}).Where("owner_id = ?", ownerID).
		Select("COALESCE(SUM(view_count), 0)").Scan(&total).Error
	return total, err
}

// SearchByKeyword 标题/描述模糊搜索（仅已发布），搜索引擎不可用时的降级路径
func (r *VideoRepository) SearchByKeyword(keyword string, skip, limit int) ([]model.Video, int64, error) {
	pattern := "%" + keyword + "%"
	query := r.db.Model(&model.Video{}).
		Where("is_published = ?", true).
		Where("title ILIKE ? OR description ILIKE ?", pattern, pattern)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var videos []model.Video
	err := query.Preload("Owner").Order("view_count DESC").
		Offset(skip).Limit(limit).Find(&videos).Error
	if err != nil {
		return nil, 0, err
	}
	return videos, total, nil
}
