package repository

import (
	"vidtube/internal/model"

	"gorm.io/gorm"
)

type TweetRepository struct {
	db *gorm.DB
}

func NewTweetRepository(db *gorm.DB) *TweetRepository {
	return &TweetRepository{db: db}
}

// Create 发表动态
func (r *TweetRepository) Create(tweet *model.Tweet) error {
	return r.db.Create(tweet).Error
}

// GetByID 根据 ID 查询动态
func (r *TweetRepository) GetByID(id int64) (*model.Tweet, error) {
	var tweet model.Tweet
	if err := r.db.Preload("Owner").First(&tweet, id).Error; err != nil {
		return nil, err
	}
	return &tweet, nil
}

// UpdateContent 更新动态内容
func (r *TweetRepository) UpdateContent(id int64, content string) (*model.Tweet, error) {
	result := r.db.Model(&model.Tweet{}).Where("id = ?", id).Update("content", content)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(id)
}

// Delete 删除动态
func (r *TweetRepository) Delete(id int64) error {
	return r.db.Delete(&model.Tweet{}, id).Error
}

// ListAll 分页查询全站动态，最新在前
func (r *TweetRepository) ListAll(skip, limit int) ([]model.Tweet, int64, error) {
	var total int64
	if err := r.db.Model(&model.Tweet{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var tweets []model.Tweet
	err := r.db.Preload("Owner").Order("created_at DESC").
		Offset(skip).Limit(limit).Find(&tweets).Error
	if err != nil {
		return nil, 0, err
	}
	return tweets, total, nil
}

// ListByOwner 分页查询用户的动态，最新在前
func (r *TweetRepository) ListByOwner(ownerID int64, skip, limit int) ([]model.Tweet, int64, error) {
	query := r.db.Model(&model.Tweet{}).Where("owner_id = ?", ownerID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var tweets []model.Tweet
	err := query.Preload("Owner").Order("created_at DESC").
		Offset(skip).Limit(limit).Find(&tweets).Error
	if err != nil {
		return nil, 0, err
	}
	return tweets, total, nil
}
