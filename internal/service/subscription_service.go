package service

import (
	"errors"

	"vidtube/internal/api/dto"
	"vidtube/internal/model"
	"vidtube/internal/repository"

	"gorm.io/gorm"
)

// ErrSelfSubscribe 不允许订阅自己的频道
var ErrSelfSubscribe = errors.New("不能订阅自己的频道")

type SubscriptionService struct {
	subRepo  *repository.SubscriptionRepository
	userRepo *repository.UserRepository
}

func NewSubscriptionService(subRepo *repository.SubscriptionRepository, userRepo *repository.UserRepository) *SubscriptionService {
	return &SubscriptionService{subRepo: subRepo, userRepo: userRepo}
}

// Toggle 切换订阅状态：已订阅则退订，未订阅则订阅
func (s *SubscriptionService) Toggle(subscriberID, channelID int64) (*dto.ToggleSubscriptionResult, error) {
	if subscriberID == channelID {
		return nil, ErrSelfSubscribe
	}

	if _, err := s.userRepo.GetByID(channelID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	subscribed, err := s.toggleOnce(subscriberID, channelID)
	if err != nil {
		return nil, err
	}

	count, err := s.subRepo.CountSubscribers(channelID)
	if err != nil {
		return nil, err
	}

	return &dto.ToggleSubscriptionResult{
		ChannelID:       channelID,
		Subscribed:      subscribed,
		SubscriberCount: count,
	}, nil
}

// toggleOnce 先尝试删除，删不到再插入；唯一索引保证并发下至多一条记录，
// 插入被冲突跳过说明有并发切换，重试一轮后以实际状态为准
func (s *SubscriptionService) toggleOnce(subscriberID, channelID int64) (bool, error) {
	for i := 0; i < 2; i++ {
		deleted, err := s.subRepo.Delete(subscriberID, channelID)
		if err != nil {
			return false, err
		}
		if deleted {
			return false, nil
		}

		inserted, err := s.subRepo.Insert(subscriberID, channelID)
		if err != nil {
			return false, err
		}
		if inserted {
			return true, nil
		}
	}
	return s.subRepo.Exists(subscriberID, channelID)
}

// ListSubscribedChannels 分页查询用户订阅的频道
func (s *SubscriptionService) ListSubscribedChannels(userID int64, page, pageSize int) (*dto.SubscriptionListData, error) {
	if _, err := s.userRepo.GetByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	skip := (page - 1) * pageSize
	channels, total, err := s.subRepo.ListSubscribedChannels(userID, skip, pageSize)
	if err != nil {
		return nil, err
	}
	return s.buildListData(channels, total, page, pageSize)
}

// ListSubscribers 分页查询频道的订阅者
func (s *SubscriptionService) ListSubscribers(channelID int64, page, pageSize int) (*dto.SubscriptionListData, error) {
	if _, err := s.userRepo.GetByID(channelID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	skip := (page - 1) * pageSize
	subscribers, total, err := s.subRepo.ListSubscribers(channelID, skip, pageSize)
	if err != nil {
		return nil, err
	}
	return s.buildListData(subscribers, total, page, pageSize)
}

func (s *SubscriptionService) buildListData(users []model.User, total int64, page, pageSize int) (*dto.SubscriptionListData, error) {
	items := make([]dto.ChannelBrief, 0, len(users))
	for i := range users {
		count, err := s.subRepo.CountSubscribers(users[i].ID)
		if err != nil {
			return nil, err
		}
		items = append(items, dto.ChannelBrief{
			ID:              users[i].ID,
			UserName:        users[i].UserName,
			FullName:        users[i].FullName,
			Avatar:          users[i].Avatar,
			SubscriberCount: count,
		})
	}

	return &dto.SubscriptionListData{
		Channels:   items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages(total, pageSize),
	}, nil
}
