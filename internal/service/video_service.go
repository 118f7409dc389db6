package service

import (
	"context"
	"errors"
	"strings"

	"vidtube/internal/api/dto"
	"vidtube/internal/config"
	infraKafka "vidtube/internal/infra/kafka"
	"vidtube/internal/media"
	"vidtube/internal/model"
	"vidtube/internal/repository"
	"vidtube/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrVideoNotFound 视频不存在
var ErrVideoNotFound = errors.New("视频不存在")

type VideoService struct {
	videoRepo   *repository.VideoRepository
	commentRepo *repository.CommentRepository
	likeRepo    *repository.LikeRepository
	mediaStore  media.Store
}

func NewVideoService(
	videoRepo *repository.VideoRepository,
	commentRepo *repository.CommentRepository,
	likeRepo *repository.LikeRepository,
	mediaStore media.Store,
) *VideoService {
	return &VideoService{
		videoRepo:   videoRepo,
		commentRepo: commentRepo,
		likeRepo:    likeRepo,
		mediaStore:  mediaStore,
	}
}

// Publish 发布视频：上传视频和封面到对象存储，探测时长，落库后发送事件
func (s *VideoService) Publish(ctx context.Context, userID int64, req *dto.VideoPublishRequest, videoPath, thumbnailPath string) (*dto.VideoInfo, error) {
	title, err := trimContent(req.Title)
	if err != nil {
		return nil, err
	}

	uploaded, err := s.mediaStore.UploadVideo(ctx, videoPath)
	if err != nil {
		return nil, err
	}

	thumbnailURL, err := s.mediaStore.UploadThumbnail(ctx, thumbnailPath)
	if err != nil {
		// 封面上传失败时回收已上传的视频文件
		s.removeMedia(ctx, uploaded.URL)
		return nil, err
	}

	video := &model.Video{
		OwnerID:      userID,
		Title:        title,
		Description:  req.Description,
		VideoURL:     uploaded.URL,
		ThumbnailURL: thumbnailURL,
		Duration:     uploaded.Duration,
		IsPublished:  true,
	}
	if err := s.videoRepo.Create(video); err != nil {
		s.removeMedia(ctx, uploaded.URL)
		s.removeMedia(ctx, thumbnailURL)
		return nil, err
	}

	s.sendVideoEvent(ctx, infraKafka.VideoEventPublished, video.ID)

	created, err := s.videoRepo.GetByID(video.ID)
	if err != nil {
		return nil, err
	}
	return s.withLikeCount(created), nil
}

// GetByID 获取视频详情，每次调用播放量 +1
func (s *VideoService) GetByID(videoID int64) (*dto.VideoInfo, error) {
	video, err := s.videoRepo.GetByID(videoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}

	if err := s.videoRepo.IncrementViewCount(videoID); err != nil {
		logger.Warn("Increment view count failed", zap.Int64("video_id", videoID), zap.Error(err))
	} else {
		video.ViewCount++
	}

	return s.withLikeCount(video), nil
}

// Update 更新视频标题/描述/封面，仅拥有者可操作。
// thumbnailPath 非空时上传新封面并替换，旧封面尽力删除，失败只记日志。
func (s *VideoService) Update(ctx context.Context, userID, videoID int64, req *dto.VideoUpdateRequest, thumbnailPath string) (*dto.VideoInfo, error) {
	video, err := s.videoRepo.GetByID(videoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}
	if err := assertOwner(video.OwnerID, userID); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		title, err := trimContent(*req.Title)
		if err != nil {
			return nil, err
		}
		updates["title"] = title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}

	oldThumbnail := ""
	if thumbnailPath != "" {
		thumbnailURL, err := s.mediaStore.UploadThumbnail(ctx, thumbnailPath)
		if err != nil {
			return nil, err
		}
		updates["thumbnail_url"] = thumbnailURL
		oldThumbnail = video.ThumbnailURL
	}

	if len(updates) == 0 {
		return nil, ErrEmptyUpdate
	}

	updated, err := s.videoRepo.Update(videoID, updates)
	if err != nil {
		return nil, err
	}

	if oldThumbnail != "" {
		s.removeMedia(ctx, oldThumbnail)
	}

	s.sendVideoEvent(ctx, infraKafka.VideoEventUpdated, videoID)

	return s.withLikeCount(updated), nil
}

// Delete 删除视频及其评论、点赞记录，仅拥有者可操作。
// 对象存储中的媒体文件删除失败只记日志，不阻塞删除。
func (s *VideoService) Delete(ctx context.Context, userID, videoID int64) error {
	video, err := s.videoRepo.GetByID(videoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrVideoNotFound
		}
		return err
	}
	if err := assertOwner(video.OwnerID, userID); err != nil {
		return err
	}

	// 先清理评论及其点赞，再删视频本体的点赞与记录
	commentIDs, err := s.commentRepo.ListIDsByVideo(videoID)
	if err != nil {
		return err
	}
	if err := s.likeRepo.DeleteByTargets(model.LikeTargetComment, commentIDs); err != nil {
		return err
	}
	if err := s.commentRepo.DeleteByVideo(videoID); err != nil {
		return err
	}
	if err := s.likeRepo.DeleteByTarget(model.LikeTargetVideo, videoID); err != nil {
		return err
	}
	if err := s.videoRepo.Delete(videoID); err != nil {
		return err
	}

	s.removeMedia(ctx, video.VideoURL)
	s.removeMedia(ctx, video.ThumbnailURL)

	s.sendVideoEvent(ctx, infraKafka.VideoEventDeleted, videoID)
	return nil
}

// TogglePublish 切换视频发布状态，仅拥有者可操作
func (s *VideoService) TogglePublish(ctx context.Context, userID, videoID int64) (*dto.TogglePublishResult, error) {
	video, err := s.videoRepo.GetByID(videoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}
	if err := assertOwner(video.OwnerID, userID); err != nil {
		return nil, err
	}

	updated, err := s.videoRepo.Update(videoID, map[string]interface{}{
		"is_published": !video.IsPublished,
	})
	if err != nil {
		return nil, err
	}

	s.sendVideoEvent(ctx, infraKafka.VideoEventUpdated, videoID)

	return &dto.TogglePublishResult{
		VideoID:     videoID,
		IsPublished: updated.IsPublished,
	}, nil
}

// ListPublished 分页查询已发布视频，支持关键字过滤、频道过滤和排序
func (s *VideoService) ListPublished(req *dto.VideoListRequest, page, pageSize int) (*dto.VideoListData, error) {
	skip := (page - 1) * pageSize
	order := repository.VideoOrderClause(req.SortBy, req.SortType)
	videos, total, err := s.videoRepo.ListPublished(req.ChannelID, strings.TrimSpace(req.Q), order, skip, pageSize)
	if err != nil {
		return nil, err
	}
	return s.buildVideoListData(videos, total, page, pageSize), nil
}

// ListByOwner 分页查询频道的全部视频（含未发布，仪表盘用），支持排序
func (s *VideoService) ListByOwner(ownerID int64, sortBy, sortType string, page, pageSize int) (*dto.VideoListData, error) {
	skip := (page - 1) * pageSize
	order := repository.VideoOrderClause(sortBy, sortType)
	videos, total, err := s.videoRepo.ListByOwner(ownerID, order, skip, pageSize)
	if err != nil {
		return nil, err
	}
	return s.buildVideoListData(videos, total, page, pageSize), nil
}

func (s *VideoService) buildVideoListData(videos []model.Video, total int64, page, pageSize int) *dto.VideoListData {
	items := make([]dto.VideoInfo, 0, len(videos))
	for i := range videos {
		items = append(items, *s.withLikeCount(&videos[i]))
	}
	return &dto.VideoListData{
		Videos:     items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages(total, pageSize),
	}
}

func (s *VideoService) withLikeCount(video *model.Video) *dto.VideoInfo {
	info := toVideoInfo(video)
	count, err := s.likeRepo.CountByTarget(model.LikeTargetVideo, video.ID)
	if err != nil {
		logger.Warn("Count video likes failed", zap.Int64("video_id", video.ID), zap.Error(err))
	}
	info.LikeCount = count
	return info
}

func (s *VideoService) removeMedia(ctx context.Context, url string) {
	if url == "" {
		return
	}
	if err := s.mediaStore.Delete(ctx, url); err != nil {
		logger.Warn("Remove media file failed", zap.String("url", url), zap.Error(err))
	}
}

func (s *VideoService) sendVideoEvent(ctx context.Context, eventType string, videoID int64) {
	event := &infraKafka.VideoEvent{Type: eventType, VideoID: videoID}
	topic := config.GetKafka().VideoEventTopic()
	if err := infraKafka.SendVideoEvent(ctx, topic, event); err != nil {
		logger.Warn("Send video event failed",
			zap.String("type", eventType), zap.Int64("video_id", videoID), zap.Error(err))
	}
}

func toVideoInfo(video *model.Video) *dto.VideoInfo {
	info := &dto.VideoInfo{
		ID:           video.ID,
		OwnerID:      video.OwnerID,
		Title:        video.Title,
		Description:  video.Description,
		VideoURL:     video.VideoURL,
		ThumbnailURL: video.ThumbnailURL,
		Duration:     video.Duration,
		ViewCount:    video.ViewCount,
		IsPublished:  video.IsPublished,
		CreatedAt:    video.CreatedAt,
		UpdatedAt:    video.UpdatedAt,
	}
	if video.Owner.ID != 0 {
		info.Owner = &dto.OwnerBrief{
			ID:       video.Owner.ID,
			UserName: video.Owner.UserName,
			FullName: video.Owner.FullName,
			Avatar:   video.Owner.Avatar,
		}
	}
	return info
}

func totalPages(total int64, pageSize int) int64 {
	return (total + int64(pageSize) - 1) / int64(pageSize)
}
