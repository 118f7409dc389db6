package service

import (
	"errors"

	"vidtube/internal/api/dto"
	"vidtube/internal/model"
	"vidtube/internal/repository"

	"gorm.io/gorm"
)

type LikeService struct {
	likeRepo    *repository.LikeRepository
	videoRepo   *repository.VideoRepository
	commentRepo *repository.CommentRepository
	tweetRepo   *repository.TweetRepository
}

func NewLikeService(
	likeRepo *repository.LikeRepository,
	videoRepo *repository.VideoRepository,
	commentRepo *repository.CommentRepository,
	tweetRepo *repository.TweetRepository,
) *LikeService {
	return &LikeService{
		likeRepo:    likeRepo,
		videoRepo:   videoRepo,
		commentRepo: commentRepo,
		tweetRepo:   tweetRepo,
	}
}

// ToggleVideoLike 切换视频点赞状态
func (s *LikeService) ToggleVideoLike(userID, videoID int64) (*dto.ToggleLikeResult, error) {
	if _, err := s.videoRepo.GetByID(videoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}
	return s.toggle(userID, model.LikeTargetVideo, videoID)
}

// ToggleCommentLike 切换评论点赞状态
func (s *LikeService) ToggleCommentLike(userID, commentID int64) (*dto.ToggleLikeResult, error) {
	if _, err := s.commentRepo.GetByID(commentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}
	return s.toggle(userID, model.LikeTargetComment, commentID)
}

// ToggleTweetLike 切换动态点赞状态
func (s *LikeService) ToggleTweetLike(userID, tweetID int64) (*dto.ToggleLikeResult, error) {
	if _, err := s.tweetRepo.GetByID(tweetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTweetNotFound
		}
		return nil, err
	}
	return s.toggle(userID, model.LikeTargetTweet, tweetID)
}

// toggle 已点赞则取消，未点赞则新增。
// 先尝试删除，删不到再插入；唯一索引保证并发下同一用户对同一目标
// 至多一条记录，插入被冲突跳过说明有并发切换，重试一轮后以实际状态为准。
func (s *LikeService) toggle(userID int64, targetType model.LikeTarget, targetID int64) (*dto.ToggleLikeResult, error) {
	liked, err := s.toggleOnce(userID, targetType, targetID)
	if err != nil {
		return nil, err
	}

	count, err := s.likeRepo.CountByTarget(targetType, targetID)
	if err != nil {
		return nil, err
	}

	return &dto.ToggleLikeResult{
		TargetType: string(targetType),
		TargetID:   targetID,
		Liked:      liked,
		LikeCount:  count,
	}, nil
}

func (s *LikeService) toggleOnce(userID int64, targetType model.LikeTarget, targetID int64) (bool, error) {
	for i := 0; i < 2; i++ {
		deleted, err := s.likeRepo.Delete(userID, targetType, targetID)
		if err != nil {
			return false, err
		}
		if deleted {
			return false, nil
		}

		inserted, err := s.likeRepo.Insert(userID, targetType, targetID)
		if err != nil {
			return false, err
		}
		if inserted {
			return true, nil
		}
		// 插入被唯一索引冲突跳过，说明并发请求抢先写入，重试一轮
	}
	return s.likeRepo.Exists(userID, targetType, targetID)
}

// GetLikedVideos 分页查询用户点赞过的视频，按点赞时间倒序。
// 指向已删除视频的点赞记录被过滤掉，total 为过滤后的数量。
func (s *LikeService) GetLikedVideos(userID int64, page, pageSize int) (*dto.VideoListData, error) {
	skip := (page - 1) * pageSize
	videos, total, err := s.likeRepo.ListLikedVideos(userID, skip, pageSize)
	if err != nil {
		return nil, err
	}

	items := make([]dto.VideoInfo, 0, len(videos))
	for i := range videos {
		info := toVideoInfo(&videos[i])
		info.LikeCount, _ = s.likeRepo.CountByTarget(model.LikeTargetVideo, videos[i].ID)
		items = append(items, *info)
	}

	return &dto.VideoListData{
		Videos:     items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages(total, pageSize),
	}, nil
}
