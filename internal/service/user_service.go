package service

import (
	"errors"

	"vidtube/internal/api/dto"
	"vidtube/internal/repository"
	"vidtube/pkg/utils"

	"gorm.io/gorm"
)

// ErrWrongOldPassword 修改密码时原密码不匹配
var ErrWrongOldPassword = errors.New("原密码错误")

type UserService struct {
	userRepo *repository.UserRepository
	subRepo  *repository.SubscriptionRepository
}

func NewUserService(userRepo *repository.UserRepository, subRepo *repository.SubscriptionRepository) *UserService {
	return &UserService{userRepo: userRepo, subRepo: subRepo}
}

// GetByID 获取用户公开信息
func (s *UserService) GetByID(userID int64) (*dto.UserInfo, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return toUserInfo(user), nil
}

// UpdateProfile 更新个人资料
func (s *UserService) UpdateProfile(userID int64, req *dto.UserUpdateRequest) (*dto.UserInfo, error) {
	updates := map[string]interface{}{}
	if req.FullName != nil {
		updates["full_name"] = *req.FullName
	}
	if req.Avatar != nil {
		updates["avatar"] = *req.Avatar
	}
	if req.CoverImage != nil {
		updates["cover_image"] = *req.CoverImage
	}

	if len(updates) == 0 {
		return nil, ErrEmptyUpdate
	}

	user, err := s.userRepo.Update(userID, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return toUserInfo(user), nil
}

// ChangePassword 修改密码，需要验证原密码
func (s *UserService) ChangePassword(userID int64, req *dto.ChangePasswordRequest) error {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if !utils.VerifyPassword(req.OldPassword, user.Password) {
		return ErrWrongOldPassword
	}

	hashed, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	return s.userRepo.UpdatePassword(userID, hashed)
}

// GetChannelProfile 获取频道主页信息，viewerID 非空时附带是否已订阅
func (s *UserService) GetChannelProfile(channelID int64, viewerID *int64) (*dto.ChannelProfile, error) {
	user, err := s.userRepo.GetByID(channelID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	subscriberCount, err := s.subRepo.CountSubscribers(channelID)
	if err != nil {
		return nil, err
	}
	subscribedCount, err := s.subRepo.CountSubscribed(channelID)
	if err != nil {
		return nil, err
	}

	isSubscribed := false
	if viewerID != nil {
		isSubscribed, err = s.subRepo.Exists(*viewerID, channelID)
		if err != nil {
			return nil, err
		}
	}

	return &dto.ChannelProfile{
		ID:              user.ID,
		UserName:        user.UserName,
		FullName:        user.FullName,
		Avatar:          user.Avatar,
		CoverImage:      user.CoverImage,
		SubscriberCount: subscriberCount,
		SubscribedCount: subscribedCount,
		IsSubscribed:    isSubscribed,
	}, nil
}
