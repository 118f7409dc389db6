package handler

import (
	"errors"

	"vidtube/internal/api/dto"
	"vidtube/internal/api/middleware"
	"vidtube/internal/api/response"
	"vidtube/internal/service"
	"vidtube/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type PlaylistHandler struct {
	playlistService *service.PlaylistService
}

func NewPlaylistHandler(playlistService *service.PlaylistService) *PlaylistHandler {
	return &PlaylistHandler{playlistService: playlistService}
}

// Create 创建播放列表
// @Summary 创建播放列表
// @Tags 播放列表
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.PlaylistCreateRequest true "播放列表信息"
// @Success 201 {object} response.Response{data=dto.PlaylistInfo} "创建成功"
// @Router /playlists [post]
func (h *PlaylistHandler) Create(c *gin.Context) {
	userID, _ := middleware.GetCurrentUserID(c)

	var req dto.PlaylistCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	info, err := h.playlistService.Create(userID, &req)
	if err != nil {
		handlePlaylistError(c, err)
		return
	}

	response.Created(c, "创建播放列表成功", info)
}

// Get 获取播放列表详情
// @Summary 获取播放列表详情
// @Description 返回播放列表信息及按加入顺序分页的视频
// @Tags 播放列表
// @Produce json
// @Param id path int true "播放列表ID"
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(10)
// @Success 200 {object} response.Response{data=dto.PlaylistDetailData} "获取成功"
// @Failure 404 {object} response.ErrorResponse "播放列表不存在"
// @Router /playlists/{id} [get]
func (h *PlaylistHandler) Get(c *gin.Context) {
	playlistID, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "无效的播放列表ID")
		return
	}

	page, pageSize := parsePagination(c)

	data, err := h.playlistService.GetByID(playlistID, page, pageSize)
	if err != nil {
		handlePlaylistError(c, err)
		return
	}

	response.OK(c, "获取播放列表成功", data)
}

// ListByUser 获取用户的播放列表
// @Summary 获取用户的播放列表
// @Tags 播放列表
// @Produce json
// @Param id path int true "用户ID"
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(10)
// @Success 200 {object} response.Response{data=dto.PlaylistListData} "获取成功"
// @Failure 404 {object} response.ErrorResponse "用户不存在"
// @Router /users/{id}/playlists [get]
func (h *PlaylistHandler) ListByUser(c *gin.Context) {
	ownerID, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "无效的用户ID")
		return
	}

	page, pageSize := parsePagination(c)

	data, err := h.playlistService.ListByUser(ownerID, page, pageSize)
	if err != nil {
		handlePlaylistError(c, err)
		return
	}

	response.OK(c, "获取播放列表成功", data)
}

// Update 更新播放列表
// @Summary 更新播放列表
// @Tags 播放列表
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "播放列表ID"
// @Param request body dto.PlaylistUpdateRequest true "更新内容"
// @Success 200 {object} response.Response{data=dto.PlaylistInfo} "更新成功"
// @Failure 403 {object} response.ErrorResponse "没有权限"
// @Failure 404 {object} response.ErrorResponse "播放列表不存在"
// @Router /playlists/{id} [patch]
func (h *PlaylistHandler) Update(c *gin.Context) {
	playlistID, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "无效的播放列表ID")
		return
	}

	userID, _ := middleware.GetCurrentUserID(c)

	var req dto.PlaylistUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	info, err := h.playlistService.Update(userID, playlistID, &req)
	if err != nil {
		handlePlaylistError(c, err)
		return
	}

	response.OK(c, "更新播放列表成功", info)
}

// Delete 删除播放列表
// @Summary 删除播放列表
// @Tags 播放列表
// @Produce json
// @Security BearerAuth
// @Param id path int true "播放列表ID"
// @Success 200 {object} response.Response "删除成功"
// @Failure 403 {object} response.ErrorResponse "没有权限"
// @Failure 404 {object} response.ErrorResponse "播放列表不存在"
// @Router /playlists/{id} [delete]
func (h *PlaylistHandler) Delete(c *gin.Context) {
	playlistID, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "无效的播放列表ID")
		return
	}

	userID, _ := middleware.GetCurrentUserID(c)

	if err := h.playlistService.Delete(userID, playlistID); err != nil {
		handlePlaylistError(c, err)
		return
	}

	response.OK(c, "删除播放列表成功", nil)
}

// AddVideo 向播放列表添加视频
// @Summary 向播放列表添加视频
// @Description 追加到列表末尾，重复添加返回错误
// @Tags 播放列表
// @Produce json
// @Security BearerAuth
// @Param id path int true "播放列表ID"
// @Param video_id path int true "视频ID"
// @Success 200 {object} response.Response{data=dto.PlaylistInfo} "添加成功"
// @Failure 400 {object} response.ErrorResponse "视频已在播放列表中"
// @Failure 403 {object} response.ErrorResponse "没有权限"
// @Failure 404 {object} response.ErrorResponse "播放列表或视频不存在"
// @Router /playlists/{id}/videos/{video_id} [post]
func (h *PlaylistHandler) AddVideo(c *gin.Context) {
	playlistID, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "无效的播放列表ID")
		return
	}
	videoID, err := parseNamedIDParam(c, "video_id")
	if err != nil {
		response.BadRequest(c, "无效的视频ID")
		return
	}

	userID, _ := middleware.GetCurrentUserID(c)

	info, err := h.playlistService.AddVideo(userID, playlistID, videoID)
	if err != nil {
		handlePlaylistError(c, err)
		return
	}

	response.OK(c, "添加视频成功", info)
}

// RemoveVideo 从播放列表移除视频
// @Summary 从播放列表移除视频
// @Tags 播放列表
// @Produce json
// @Security BearerAuth
// @Param id path int true "播放列表ID"
// @Param video_id path int true "视频ID"
// @Success 200 {object} response.Response{data=dto.PlaylistInfo} "移除成功"
// @Failure 403 {object} response.ErrorResponse "没有权限"
// @Failure 404 {object} response.ErrorResponse "播放列表不存在或视频不在列表中"
// @Router /playlists/{id}/videos/{video_id} [delete]
func (h *PlaylistHandler) RemoveVideo(c *gin.Context) {
	playlistID, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "无效的播放列表ID")
		return
	}
	videoID, err := parseNamedIDParam(c, "video_id")
	if err != nil {
		response.BadRequest(c, "无效的视频ID")
		return
	}

	userID, _ := middleware.GetCurrentUserID(c)

	info, err := h.playlistService.RemoveVideo(userID, playlistID, videoID)
	if err != nil {
		handlePlaylistError(c, err)
		return
	}

	response.OK(c, "移除视频成功", info)
}

func handlePlaylistError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPlaylistNotFound),
		errors.Is(err, service.ErrVideoNotFound),
		errors.Is(err, service.ErrVideoNotInPlaylist),
		errors.Is(err, service.ErrUserNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrVideoAlreadyInPlaylist),
		errors.Is(err, service.ErrBlankContent),
		errors.Is(err, service.ErrEmptyUpdate):
		response.BadRequest(c, err.Error())
	case errors.Is(err, service.ErrNotOwner):
		response.Forbidden(c, err.Error())
	default:
		logger.Error("Playlist operation failed", zap.Error(err))
		response.InternalError(c, "操作失败，请稍后重试")
	}
}
