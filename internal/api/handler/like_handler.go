package handler

import (
	"errors"

	"vidtube/internal/api/middleware"
	"vidtube/internal/api/response"
	"vidtube/internal/service"
	"vidtube/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type LikeHandler struct {
	likeService *service.LikeService
}

func NewLikeHandler(likeService *service.LikeService) *LikeHandler {
	return &LikeHandler{likeService: likeService}
}

// ToggleVideo 切换视频点赞状态
// @Summary 切换视频点赞状态
// @Description 已点赞则取消，未点赞则点赞
// @Tags 点赞
// @Produce json
// @Security BearerAuth
// @Param id path int true "视频ID"
// @Success 200 {object} response.Response{data=dto.ToggleLikeResult} "切换成功"
// @Failure 404 {object} response.ErrorResponse "视频不存在"
// @Router /likes/video/{id} [post]
func (h *LikeHandler) ToggleVideo(c *gin.Context) {
	videoID, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "无效的视频ID")
		return
	}

	userID, _ := middleware.GetCurrentUserID(c)

	result, err := h.likeService.ToggleVideoLike(userID, videoID)
	if err != nil {
		handleLikeError(c, err)
		return
	}

	response.OK(c, "切换点赞状态成功", result)
}

// ToggleComment 切换评论点赞状态
// @Summary 切换评论点赞状态
// @Tags 点赞
// @Produce json
// @Security BearerAuth
// @Param id path int true "评论ID"
// @Success 200 {object} response.Response{data=dto.ToggleLikeResult} "切换成功"
// @Failure 404 {object} response.ErrorResponse "评论不存在"
// @Router /likes/comment/{id} [post]
func (h *LikeHandler) ToggleComment(c *gin.Context) {
	commentID, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "无效的评论ID")
		return
	}

	userID, _ := middleware.GetCurrentUserID(c)

	result, err := h.likeService.ToggleCommentLike(userID, commentID)
	if err != nil {
		handleLikeError(c, err)
		return
	}

	response.OK(c, "切换点赞状态成功", result)
}

// ToggleTweet 切换动态点赞状态
// @Summary 切换动态点赞状态
// @Tags 点赞
// @Produce json
// @Security BearerAuth
// @Param id path int true "动态ID"
// @Success 200 {object} response.Response{data=dto.ToggleLikeResult} "切换成功"
// @Failure 404 {object} response.ErrorResponse "动态不存在"
// @Router /likes/tweet/{id} [post]
func (h *LikeHandler) ToggleTweet(c *gin.Context) {
	tweetID, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "无效的动态ID")
		return
	}

	userID, _ := middleware.GetCurrentUserID(c)

	result, err := h.likeService.ToggleTweetLike(userID, tweetID)
	if err != nil {
		handleLikeError(c, err)
		return
	}

	response.OK(c, "切换点赞状态成功", result)
}

// GetLikedVideos 获取我点赞的视频列表
// @Summary 获取我点赞的视频列表
// @Description 按点赞时间倒序返回当前用户点赞过的视频
// @Tags 点赞
// @Produce json
// @Security BearerAuth
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(10)
// @Success 200 {object} response.Response{data=dto.VideoListData} "获取成功"
// @Router /likes/videos [get]
func (h *LikeHandler) GetLikedVideos(c *gin.Context) {
	userID, _ := middleware.GetCurrentUserID(c)
	page, pageSize := parsePagination(c)

	data, err := h.likeService.GetLikedVideos(userID, page, pageSize)
	if err != nil {
		logger.Error("Get liked videos failed", zap.Error(err))
		response.InternalError(c, "获取点赞视频列表失败")
		return
	}

	response.OK(c, "获取点赞视频列表成功", data)
}

func handleLikeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrVideoNotFound),
		errors.Is(err, service.ErrCommentNotFound),
		errors.Is(err, service.ErrTweetNotFound):
		response.NotFound(c, err.Error())
	default:
		logger.Error("Like operation failed", zap.Error(err))
		response.InternalError(c, "操作失败，请稍后重试")
	}
}
