package handler

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"vidtube/internal/api/dto"
	"vidtube/internal/api/middleware"
	"vidtube/internal/api/response"
	"vidtube/internal/config"
	"vidtube/internal/service"
	"vidtube/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type VideoHandler struct {
	videoService *service.VideoService
}

func NewVideoHandler(videoService *service.VideoService) *VideoHandler {
	return &VideoHandler{videoService: videoService}
}

// Publish 发布视频
// @Summary 发布视频
// @Description 上传视频文件和封面并发布
// @Tags 视频
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param title formData string true "标题"
// @Param description formData string false "描述"
// @Param video_file formData file true "视频文件"
// @Param thumbnail formData file true "封面图片"
// @Success 201 {object} response.Response{data=dto.VideoInfo} "发布成功"
// @Failure 400 {object} response.ErrorResponse "参数或文件无效"
// @Router /videos [post]
func (h *VideoHandler) Publish(c *gin.Context) {
	userID, _ := middleware.GetCurrentUserID(c)

	var req dto.VideoPublishRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	mediaCfg := config.GetMedia()

	videoPath, err := saveUploadedFile(c, "video_file", mediaCfg.MaxVideoSize)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	thumbnailPath, err := saveUploadedFile(c, "thumbnail", mediaCfg.MaxThumbnailSize)
	if err != nil {
		os.Remove(videoPath)
		response.BadRequest(c, err.Error())
		return
	}

	info, err := h.videoService.Publish(c.Request.Context(), userID, &req, videoPath, thumbnailPath)
	if err != nil {
		handleVideoError(c, err)
		return
	}

	response.Created(c, "视频发布成功", info)
}

// Get 获取视频详情
// @Summary 获取视频详情
// @Description 获取视频详情，播放量 +1
// @Tags 视频
// @Produce json
// @Param id path int true "视频ID"
// @Success 200 {object} response.Response{data=dto.VideoInfo} "获取成功"
// @Failure 404 {object} response.ErrorResponse "视频不存在"
// @Router /videos/{id} [get]
func (h *VideoHandler) Get(c *gin.Context) {
	videoID, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "无效的视频ID")
		return
	}

	info, err := h.videoService.GetByID(videoID)
	if err != nil {
		handleVideoError(c, err)
		return
	}

	response.OK(c, "获取视频成功", info)
}

// List 获取已发布视频列表
// @Summary 获取已发布视频列表
// @Tags 视频
// @Produce json
// @Param q query string false "标题关键字"
// @Param channel_id query int false "频道ID"
// @Param sort_by query string false "排序字段" Enums(created_at, view_count, duration)
// @Param sort_type query string false "排序方向" Enums(asc, desc)
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(10)
// @Success 200 {object} response.Response{data=dto.VideoListData} "获取成功"
// @Router /videos [get]
func (h *VideoHandler) List(c *gin.Context) {
	var req dto.VideoListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	page, pageSize := parsePagination(c)

	data, err := h.videoService.ListPublished(&req, page, pageSize)
	if err != nil {
		logger.Error("List videos failed", zap.Error(err))
		response.InternalError(c, "获取视频列表失败")
		return
	}

	response.OK(c, "获取视频列表成功", data)
}

// Update 更新视频信息
// @Summary 更新视频信息
// @Description 更新标题/描述，可同时上传新封面；至少提供一项
// @Tags 视频
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "视频ID"
// @Param title formData string false "标题"
// @Param description formData string false "描述"
// @Param thumbnail formData file false "新封面图片"
// @Success 200 {object} response.Response{data=dto.VideoInfo} "更新成功"
// @Failure 400 {object} response.ErrorResponse "未提供任何更新字段"
// @Failure 403 {object} response.ErrorResponse "没有权限"
// @Failure 404 {object} response.ErrorResponse "视频不存在"
// @Router /videos/{id} [patch]
func (h *VideoHandler) Update(c *gin.Context) {
	videoID, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "无效的视频ID")
		return
	}

	userID, _ := middleware.GetCurrentUserID(c)

	var req dto.VideoUpdateRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	// 封面是可选的，只有带了文件才走上传替换
	thumbnailPath := ""
	if _, err := c.FormFile("thumbnail"); err == nil {
		thumbnailPath, err = saveUploadedFile(c, "thumbnail", config.GetMedia().MaxThumbnailSize)
		if err != nil {
			response.BadRequest(c, err.Error())
			return
		}
	}

	info, err := h.videoService.Update(c.Request.Context(), userID, videoID, &req, thumbnailPath)
	if err != nil {
		handleVideoError(c, err)
		return
	}

	response.OK(c, "更新视频成功", info)
}

// Delete 删除视频
// @Summary 删除视频
// @Tags 视频
// @Produce json
// @Security BearerAuth
// @Param id path int true "视频ID"
// @Success 200 {object} response.Response "删除成功"
// @Failure 403 {object} response.ErrorResponse "没有权限"
// @Failure 404 {object} response.ErrorResponse "视频不存在"
// @Router /videos/{id} [delete]
func (h *VideoHandler) Delete(c *gin.Context) {
	videoID, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "无效的视频ID")
		return
	}

	userID, _ := middleware.GetCurrentUserID(c)

	if err := h.videoService.Delete(c.Request.Context(), userID, videoID); err != nil {
		handleVideoError(c, err)
		return
	}

	response.OK(c, "删除视频成功", nil)
}

// TogglePublish 切换视频发布状态
// @Summary 切换视频发布状态
// @Tags 视频
// @Produce json
// @Security BearerAuth
// @Param id path int true "视频ID"
// @Success 200 {object} response.Response{data=dto.TogglePublishResult} "切换成功"
// @Failure 403 {object} response.ErrorResponse "没有权限"
// @Router /videos/{id}/toggle-publish [patch]
func (h *VideoHandler) TogglePublish(c *gin.Context) {
	videoID, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "无效的视频ID")
		return
	}

	userID, _ := middleware.GetCurrentUserID(c)

	result, err := h.videoService.TogglePublish(c.Request.Context(), userID, videoID)
	if err != nil {
		handleVideoError(c, err)
		return
	}

	response.OK(c, "切换发布状态成功", result)
}

// saveUploadedFile 校验并保存上传文件到临时目录，返回本地路径
func saveUploadedFile(c *gin.Context, field string, maxSize int64) (string, error) {
	file, err := c.FormFile(field)
	if err != nil {
		return "", fmt.Errorf("缺少文件: %s", field)
	}
	if maxSize > 0 && file.Size > maxSize {
		return "", fmt.Errorf("文件 %s 超过大小限制", field)
	}

	localPath := filepath.Join(os.TempDir(),
		fmt.Sprintf("%d_%s%s", time.Now().UnixNano(), field, filepath.Ext(file.Filename)))
	if err := c.SaveUploadedFile(file, localPath); err != nil {
		return "", fmt.Errorf("保存上传文件失败")
	}
	return localPath, nil
}

// parseIDParam 从 URL 路径参数中解析 int64 ID
func parseIDParam(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

func handleVideoError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrVideoNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrNotOwner):
		response.Forbidden(c, err.Error())
	case errors.Is(err, service.ErrBlankContent), errors.Is(err, service.ErrEmptyUpdate):
		response.BadRequest(c, err.Error())
	default:
		logger.Error("Video operation failed", zap.Error(err))
		response.InternalError(c, "操作失败，请稍后重试")
	}
}
