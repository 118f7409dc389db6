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

type DashboardHandler struct {
	dashboardService *service.DashboardService
	videoService     *service.VideoService
}

func NewDashboardHandler(dashboardService *service.DashboardService, videoService *service.VideoService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService, videoService: videoService}
}

// GetStats 获取频道统计数据
// @Summary 获取频道统计数据
// @Description 视频数、播放量、订阅者数、获赞数、评论数及平均播放量
// @Tags 仪表盘
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response{data=dto.ChannelStats} "获取成功"
// @Router /dashboard/stats [get]
func (h *DashboardHandler) GetStats(c *gin.Context) {
	userID, _ := middleware.GetCurrentUserID(c)

	stats, err := h.dashboardService.GetStats(c.Request.Context(), userID)
	if err != nil {
		handleDashboardError(c, err)
		return
	}

	response.OK(c, "获取频道统计成功", stats)
}

// GetVideos 获取我的全部视频（含未发布）
// @Summary 获取我的全部视频
// @Tags 仪表盘
// @Produce json
// @Security BearerAuth
// @Param sort_by query string false "排序字段" Enums(created_at, view_count, duration)
// @Param sort_type query string false "排序方向" Enums(asc, desc)
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(10)
// @Success 200 {object} response.Response{data=dto.VideoListData} "获取成功"
// @Router /dashboard/videos [get]
func (h *DashboardHandler) GetVideos(c *gin.Context) {
	userID, _ := middleware.GetCurrentUserID(c)
	page, pageSize := parsePagination(c)

	data, err := h.videoService.ListByOwner(userID, c.Query("sort_by"), c.Query("sort_type"), page, pageSize)
	if err != nil {
		handleDashboardError(c, err)
		return
	}

	response.OK(c, "获取频道视频成功", data)
}

func handleDashboardError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		response.NotFound(c, err.Error())
	default:
		logger.Error("Dashboard operation failed", zap.Error(err))
		response.InternalError(c, "操作失败，请稍后重试")
	}
}
