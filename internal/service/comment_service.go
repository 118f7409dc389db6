package service

import (
	"errors"

	"vidtube/internal/api/dto"
	"vidtube/internal/model"
	"vidtube/internal/repository"

	"gorm.io/gorm"
)

// ErrCommentNotFound 评论不存在
var ErrCommentNotFound = errors.New("评论不存在")

type CommentService struct {
	commentRepo *repository.CommentRepository
	videoRepo   *repository.VideoRepository
	likeRepo    *repository.LikeRepository
}

func NewCommentService(
	commentRepo *repository.CommentRepository,
	videoRepo *repository.VideoRepository,
	likeRepo *repository.LikeRepository,
) *CommentService {
	return &CommentService{commentRepo: commentRepo, videoRepo: videoRepo, likeRepo: likeRepo}
}

// Create 对视频发表评论
func (s *CommentService) Create(userID, videoID int64, req *dto.CommentCreateRequest) (*dto.CommentInfo, error) {
	content, err := trimContent(req.Content)
	if err != nil {
		return nil, err
	}

	if _, err := s.videoRepo.GetByID(videoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}

	comment := &model.Comment{
		OwnerID: userID,
		VideoID: videoID,
		Content: content,
	}
	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}

	created, err := s.commentRepo.GetByID(comment.ID)
	if err != nil {
		return nil, err
	}
	return s.withLikeCount(created), nil
}

// Update 更新评论内容，仅拥有者可操作
func (s *CommentService) Update(userID, commentID int64, req *dto.CommentUpdateRequest) (*dto.CommentInfo, error) {
	content, err := trimContent(req.Content)
	if err != nil {
		return nil, err
	}

	comment, err := s.commentRepo.GetByID(commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}
	if err := assertOwner(comment.OwnerID, userID); err != nil {
		return nil, err
	}

	updated, err := s.commentRepo.UpdateContent(commentID, content)
	if err != nil {
		return nil, err
	}
	return s.withLikeCount(updated), nil
}

// Delete 删除评论及其点赞记录，仅拥有者可操作
func (s *CommentService) Delete(userID, commentID int64) error {
	comment, err := s.commentRepo.GetByID(commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCommentNotFound
		}
		return err
	}
	if err := assertOwner(comment.OwnerID, userID); err != nil {
		return err
	}

	if err := s.likeRepo.DeleteByTarget(model.LikeTargetComment, commentID); err != nil {
		return err
	}
	return s.commentRepo.Delete(commentID)
}

// ListByVideo 分页查询视频的评论，最新在前
func (s *CommentService) ListByVideo(videoID int64, page, pageSize int) (*dto.CommentListData, error) {
	if _, err := s.videoRepo.GetByID(videoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}

	skip := (page - 1) * pageSize
	comments, total, err := s.commentRepo.ListByVideo(videoID, skip, pageSize)
	if err != nil {
		return nil, err
	}

	items := make([]dto.CommentInfo, 0, len(comments))
	for i := range comments {
		items = append(items, *s.withLikeCount(&comments[i]))
	}

	return &dto.CommentListData{
		Comments:   items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages(total, pageSize),
	}, nil
}

func (s *CommentService) withLikeCount(comment *model.Comment) *dto.CommentInfo {
	info := &dto.CommentInfo{
		ID:        comment.ID,
		OwnerID:   comment.OwnerID,
		VideoID:   comment.VideoID,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
		UpdatedAt: comment.UpdatedAt,
	}
	if comment.Owner.ID != 0 {
		info.Owner = &dto.OwnerBrief{
			ID:       comment.Owner.ID,
			UserName: comment.Owner.UserName,
			FullName: comment.Owner.FullName,
			Avatar:   comment.Owner.Avatar,
		}
	}
	info.LikeCount, _ = s.likeRepo.CountByTarget(model.LikeTargetComment, comment.ID)
	return info
}
