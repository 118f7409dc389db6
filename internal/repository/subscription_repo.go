package repository

import (
	"vidtube/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SubscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

// Delete 删除订阅关系，返回是否真的删除了一条
func (r *SubscriptionRepository) Delete(subscriberID, channelID int64) (bool, error) {
	result := r.db.Where("subscriber_id = ? AND channel_id = ?", subscriberID, channelID).
		Delete(&model.Subscription{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Insert 建立订阅关系，唯一索引冲突时静默跳过，返回是否真的插入了一条
func (r *SubscriptionRepository) Insert(subscriberID, channelID int64) (bool, error) {
	sub := &model.Subscription{SubscriberID: subscriberID, ChannelID: channelID}
	result := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(sub)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Exists 查询是否已订阅频道
func (r *SubscriptionRepository) Exists(subscriberID, channelID int64) (bool, error) {
	var count int64
	err := r.db.Model(&model.Subscription{}).
		Where("subscriber_id = ? AND channel_id = ?", subscriberID, channelID).
		Count(&count).Error
	return count > 0, err
}

// CountSubscribers 统计频道的订阅者数量
func (r *SubscriptionRepository) CountSubscribers(channelID int64) (int64, error) {
	var count int64
	err := r.db.Model(&model.Subscription{}).Where("channel_id = ?", channelID).Count(&count).Error
	return count, err
}

// CountSubscribed 统计用户订阅的频道数量
func (r *SubscriptionRepository) CountSubscribed(subscriberID int64) (int64, error) {
	var count int64
	err := r.db.Model(&model.Subscription{}).Where("subscriber_id = ?", subscriberID).Count(&count).Error
	return count, err
}

// ListSubscribedChannels 分页查询用户订阅的频道，按订阅时间倒序
func (r *SubscriptionRepository) ListSubscribedChannels(subscriberID int64, skip, limit int) ([]model.User, int64, error) {
	query := r.db.Model(&model.Subscription{}).
		Joins("JOIN users ON users.id = subscriptions.channel_id").
		Where("subscriptions.subscriber_id = ?", subscriberID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var channels []model.User
	err := query.Select("users.*").Order("subscriptions.created_at DESC").
		Offset(skip).Limit(limit).Scan(&channels).Error
	if err != nil {
		return nil, 0, err
	}
	return channels, total, nil
}

// ListSubscribers 分页查询频道的订阅者，按订阅时间倒序
func (r *SubscriptionRepository) ListSubscribers(channelID int64, skip, limit int) ([]model.User, int64, error) {
	query := r.db.Model(&model.Subscription{}).
		Joins("JOIN users ON users.id = subscriptions.subscriber_id").
		Where("subscriptions.channel_id = ?", channelID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var subscribers []model.User
	err := query.Select("users.*").Order("subscriptions.created_at DESC").
		Offset(skip).Limit(limit).Scan(&subscribers).Error
	if err != nil {
		return nil, 0, err
	}
	return subscribers, total, nil
}
