package handler

import (
	"errors"
	"strconv"

	"vidtube/internal/api/dto"
	"vidtube/internal/api/middleware"
	"vidtube/internal/api/response"
	"vidtube/internal/service"
	"vidtube/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type TweetHandler struct {
	tweetService *service.TweetService
}

func NewTweetHandler(tweetService *service.TweetService) *TweetHandler {
	return &TweetHandler{tweetService: tweetService}
}

// Create 发表动态
// @Summary 发表动态
// @Tags 动态
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.TweetCreateRequest true "动态内容"
// @Success 201 {object} response.Response{data=dto.TweetInfo} "发表成功"
// @Router /tweets [post]
func (h *TweetHandler) Create(c *gin.Context) {
	userID, _ := middleware.GetCurrentUserID(c)

	var req dto.TweetCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	info, err := h.tweetService.Create(userID, &req)
	if err != nil {
		handleTweetError(c, err)
		return
	}

	response.Created(c, "发表动态成功", info)
}

// List 获取全站动态列表
// @Summary 获取全站动态列表
// @Tags 动态
// @Produce json
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(10)
// @Success 200 {object} response.Response{data=dto.TweetListData} "获取成功"
// @Router /tweets [get]
func (h *TweetHandler) List(c *gin.Context) {
	page, pageSize := parsePagination(c)

	data, err := h.tweetService.ListAll(page, pageSize)
	if err != nil {
		handleTweetError(c, err)
		return
	}

	response.OK(c, "获取动态列表成功", data)
}

// ListByUser 获取用户动态列表
// @Summary 获取用户动态列表
// @Tags 动态
// @Produce json
// @Param id path int true "用户ID"
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(10)
// @Success 200 {object} response.Response{data=dto.TweetListData} "获取成功"
// @Failure 404 {object} response.ErrorResponse "用户不存在"
// @Router /users/{id}/tweets [get]
func (h *TweetHandler) ListByUser(c *gin.Context) {
	ownerID, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "无效的用户ID")
		return
	}

	page, pageSize := parsePagination(c)

	data, err := h.tweetService.ListByUser(ownerID, page, pageSize)
	if err != nil {
		handleTweetError(c, err)
		return
	}

	response.OK(c, "获取动态列表成功", data)
}

// Update 更新动态
// @Summary 更新动态
// @Tags 动态
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "动态ID"
// @Param request body dto.TweetUpdateRequest true "动态内容"
// @Success 200 {object} response.Response{data=dto.TweetInfo} "更新成功"
// @Failure 403 {object} response.ErrorResponse "没有权限"
// @Failure 404 {object} response.ErrorResponse "动态不存在"
// @Router /tweets/{id} [patch]
func (h *TweetHandler) Update(c *gin.Context) {
	tweetID, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "无效的动态ID")
		return
	}

	userID, _ := middleware.GetCurrentUserID(c)

	var req dto.TweetUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	info, err := h.tweetService.Update(userID, tweetID, &req)
	if err != nil {
		handleTweetError(c, err)
		return
	}

	response.OK(c, "更新动态成功", info)
}

// Delete 删除动态
// @Summary 删除动态
// @Tags 动态
// @Produce json
// @Security BearerAuth
// @Param id path int true "动态ID"
// @Success 200 {object} response.Response "删除成功"
// @Failure 403 {object} response.ErrorResponse "没有权限"
// @Failure 404 {object} response.ErrorResponse "动态不存在"
// @Router /tweets/{id} [delete]
func (h *TweetHandler) Delete(c *gin.Context) {
	tweetID, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "无效的动态ID")
		return
	}

	userID, _ := middleware.GetCurrentUserID(c)

	if err := h.tweetService.Delete(userID, tweetID); err != nil {
		handleTweetError(c, err)
		return
	}

	response.OK(c, "删除动态成功", nil)
}

// parseNamedIDParam 从 URL 路径参数中解析指定名称的 int64 ID
func parseNamedIDParam(c *gin.Context, name string) (int64, error) {
	return strconv.ParseInt(c.Param(name), 10, 64)
}

func handleTweetError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrTweetNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrUserNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrBlankContent):
		response.BadRequest(c, err.Error())
	case errors.Is(err, service.ErrNotOwner):
		response.Forbidden(c, err.Error())
	default:
		logger.Error("Tweet operation failed", zap.Error(err))
		response.InternalError(c, "操作失败，请稍后重试")
	}
}
