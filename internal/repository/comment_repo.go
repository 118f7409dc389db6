package repository

import (
	"vidtube/internal/model"

	"gorm.io/gorm"
)

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

// Create 创建评论
func (r *CommentRepository) Create(comment *model.Comment) error {
	return r.db.Create(comment).Error
}

// GetByID 根据 ID 查询评论
func (r *CommentRepository) GetByID(id int64) (*model.Comment, error) {
	var comment model.Comment
	if err := r.db.Preload("Owner").First(&comment, id).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// UpdateContent 更新评论内容
func (r *CommentRepository) UpdateContent(id int64, content string) (*model.Comment, error) {
	result := r.db.Model(&model.Comment{}).Where("id = ?", id).Update("content", content)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(id)
}

// Delete 删除评论
func (r *CommentRepository) Delete(id int64) error {
	return r.db.Delete(&model.Comment{}, id).Error
}

// DeleteByVideo 删除视频下的全部评论（视频删除时级联）
func (r *CommentRepository) DeleteByVideo(videoID int64) error {
	return r.db.Where("video_id = ?", videoID).Delete(&model.Comment{}).Error
}

// ListByVideo 分页查询视频的评论，最新在前
func (r *CommentRepository) ListByVideo(videoID int64, skip, limit int) ([]model.Comment, int64, error) {
	query := r.db.Model(&model.Comment{}).Where("video_id = ?", videoID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var comments []model.Comment
	err := query.Preload("Owner").Order("created_at DESC").
		Offset(skip).Limit(limit).Find(&comments).Error
	if err != nil {
		return nil, 0, err
	}
	return comments, total, nil
}

// CountByVideoOwner 统计某频道全部视频收到的评论总数（仪表盘用）
func (r *CommentRepository) CountByVideoOwner(ownerID int64) (int64, error) {
	var count int64
	err := r.db.Model(&model.Comment{}).
		Joins("JOIN videos ON videos.id = comments.video_id").
		Where("videos.owner_id = ?", ownerID).
		Count(&count).Error
	return count, err
}

// ListIDsByVideo 查询视频下全部评论 ID（级联清理点赞用）
func (r *CommentRepository) ListIDsByVideo(videoID int64) ([]int64, error) {
	var ids []int64
	err := r.db.Model(&model.Comment{}).Where("video_id = ?", videoID).Pluck("id", &ids).Error
	return ids, err
}
