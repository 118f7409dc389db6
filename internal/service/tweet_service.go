package service

import (
	"errors"

	"vidtube/internal/api/dto"
	"vidtube/internal/model"
	"vidtube/internal/repository"

	"gorm.io/gorm"
)

// ErrTweetNotFound 动态不存在
var ErrTweetNotFound = errors.New("动态不存在")

type TweetService struct {
	tweetRepo *repository.TweetRepository
	userRepo  *repository.UserRepository
	likeRepo  *repository.LikeRepository
}

func NewTweetService(
	tweetRepo *repository.TweetRepository,
	userRepo *repository.UserRepository,
	likeRepo *repository.LikeRepository,
) *TweetService {
	return &TweetService{tweetRepo: tweetRepo, userRepo: userRepo, likeRepo: likeRepo}
}

// Create 发表动态
func (s *TweetService) Create(userID int64, req *dto.TweetCreateRequest) (*dto.TweetInfo, error) {
	content, err := trimContent(req.Content)
	if err != nil {
		return nil, err
	}

	tweet := &model.Tweet{
		OwnerID: userID,
		Content: content,
	}
	if err := s.tweetRepo.Create(tweet); err != nil {
		return nil, err
	}

	created, err := s.tweetRepo.GetByID(tweet.ID)
	if err != nil {
		return nil, err
	}
	return s.withLikeCount(created), nil
}

// Update 更新动态内容，仅拥有者可操作
func (s *TweetService) Update(userID, tweetID int64, req *dto.TweetUpdateRequest) (*dto.TweetInfo, error) {
	content, err := trimContent(req.Content)
	if err != nil {
		return nil, err
	}

	tweet, err := s.tweetRepo.GetByID(tweetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTweetNotFound
		}
		return nil, err
	}
	if err := assertOwner(tweet.OwnerID, userID); err != nil {
		return nil, err
	}

	updated, err := s.tweetRepo.UpdateContent(tweetID, content)
	if err != nil {
		return nil, err
	}
	return s.withLikeCount(updated), nil
}

// Delete 删除动态及其点赞记录，仅拥有者可操作
func (s *TweetService) Delete(userID, tweetID int64) error {
	tweet, err := s.tweetRepo.GetByID(tweetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTweetNotFound
		}
		return err
	}
	if err := assertOwner(tweet.OwnerID, userID); err != nil {
		return err
	}

	if err := s.likeRepo.DeleteByTarget(model.LikeTargetTweet, tweetID); err != nil {
		return err
	}
	return s.tweetRepo.Delete(tweetID)
}

// ListAll 分页查询全站动态，最新在前
func (s *TweetService) ListAll(page, pageSize int) (*dto.TweetListData, error) {
	skip := (page - 1) * pageSize
	tweets, total, err := s.tweetRepo.ListAll(skip, pageSize)
	if err != nil {
		return nil, err
	}

	items := make([]dto.TweetInfo, 0, len(tweets))
	for i := range tweets {
		items = append(items, *s.withLikeCount(&tweets[i]))
	}

	return &dto.TweetListData{
		Tweets:     items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages(total, pageSize),
	}, nil
}

// ListByUser 分页查询用户的动态，最新在前
func (s *TweetService) ListByUser(ownerID int64, page, pageSize int) (*dto.TweetListData, error) {
	if _, err := s.userRepo.GetByID(ownerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	skip := (page - 1) * pageSize
	tweets, total, err := s.tweetRepo.ListByOwner(ownerID, skip, pageSize)
	if err != nil {
		return nil, err
	}

	items := make([]dto.TweetInfo, 0, len(tweets))
	for i := range tweets {
		items = append(items, *s.withLikeCount(&tweets[i]))
	}

	return &dto.TweetListData{
		Tweets:     items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages(total, pageSize),
	}, nil
}

func (s *TweetService) withLikeCount(tweet *model.Tweet) *dto.TweetInfo {
	info := &dto.TweetInfo{
		ID:        tweet.ID,
		OwnerID:   tweet.OwnerID,
		Content:   tweet.Content,
		CreatedAt: tweet.CreatedAt,
		UpdatedAt: tweet.UpdatedAt,
	}
	if tweet.Owner.ID != 0 {
		info.Owner = &dto.OwnerBrief{
			ID:       tweet.Owner.ID,
			UserName: tweet.Owner.UserName,
			FullName: tweet.Owner.FullName,
			Avatar:   tweet.Owner.Avatar,
		}
	}
	info.LikeCount, _ = s.likeRepo.CountByTarget(model.LikeTargetTweet, tweet.ID)
	return info
}
