package handler

import (
	"errors"
	"strconv"

	"vidtube/internal/api/middleware"
	"vidtube/internal/api/response"
	"vidtube/internal/service"
	"vidtube/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type SubscriptionHandler struct {
	subService *service.SubscriptionService
}

func NewSubscriptionHandler(subService *service.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{subService: subService}
}

// Toggle 切换订阅状态
// @Summary 切换订阅状态
// @Description 已订阅则退订，未订阅则订阅，不能订阅自己
// @Tags 订阅
// @Produce json
// @Security BearerAuth
// @Param id path int true "频道ID"
// @Success 200 {object} response.Response{data=dto.ToggleSubscriptionResult} "切换成功"
// @Failure 400 {object} response.ErrorResponse "不能订阅自己"
// @Failure 404 {object} response.ErrorResponse "频道不存在"
// @Router /subscriptions/channel/{id} [post]
func (h *SubscriptionHandler) Toggle(c *gin.Context) {
	channelID, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "无效的频道ID")
		return
	}

	userID, _ := middleware.GetCurrentUserID(c)

	result, err := h.subService.Toggle(userID, channelID)
	if err != nil {
		handleSubscriptionError(c, err)
		return
	}

	response.OK(c, "切换订阅状态成功", result)
}

// ListSubscribed 获取我订阅的频道列表
// @Summary 获取我订阅的频道列表
// @Tags 订阅
// @Produce json
// @Security BearerAuth
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(10)
// @Success 200 {object} response.Response{data=dto.SubscriptionListData} "获取成功"
// @Router /subscriptions/channels [get]
func (h *SubscriptionHandler) ListSubscribed(c *gin.Context) {
	userID, _ := middleware.GetCurrentUserID(c)
	page, pageSize := parsePagination(c)

	data, err := h.subService.ListSubscribedChannels(userID, page, pageSize)
	if err != nil {
		handleSubscriptionError(c, err)
		return
	}

	response.OK(c, "获取订阅列表成功", data)
}

// ListSubscribers 获取频道的订阅者列表
// @Summary 获取频道的订阅者列表
// @Tags 订阅
// @Produce json
// @Param id path int true "频道ID"
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(10)
// @Success 200 {object} response.Response{data=dto.SubscriptionListData} "获取成功"
// @Failure 404 {object} response.ErrorResponse "频道不存在"
// @Router /subscriptions/channel/{id}/subscribers [get]
func (h *SubscriptionHandler) ListSubscribers(c *gin.Context) {
	channelID, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "无效的频道ID")
		return
	}

	page, pageSize := parsePagination(c)

	data, err := h.subService.ListSubscribers(channelID, page, pageSize)
	if err != nil {
		handleSubscriptionError(c, err)
		return
	}

	response.OK(c, "获取订阅者列表成功", data)
}

// parsePagination 解析分页参数，page 从 1 开始，page_size 限制在 1~100
func parsePagination(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}
	return page, pageSize
}

func handleSubscriptionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrSelfSubscribe):
		response.BadRequest(c, err.Error())
	case errors.Is(err, service.ErrUserNotFound):
		response.NotFound(c, err.Error())
	default:
		logger.Error("Subscription operation failed", zap.Error(err))
		response.InternalError(c, "操作失败，请稍后重试")
	}
}
