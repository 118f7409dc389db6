package dto

import "time"

// VideoPublishRequest 视频发布请求（multipart/form-data）
type VideoPublishRequest struct {
	Title       string `form:"title" binding:"required,min=1,max=200"`
	Description string `form:"description" binding:"omitempty,max=2000"`
}

// VideoUpdateRequest 视频更新请求（multipart/form-data，可附带新封面）
type VideoUpdateRequest struct {
	Title       *string `form:"title" binding:"omitempty,min=1,max=200"`
	Description *string `form:"description" binding:"omitempty,max=2000"`
}

// VideoListRequest 视频列表查询参数
type VideoListRequest struct {
	Q         string `form:"q" binding:"omitempty,max=200"`
	ChannelID *int64 `form:"channel_id"`
	SortBy    string `form:"sort_by" binding:"omitempty,oneof=created_at view_count duration"`
	SortType  string `form:"sort_type" binding:"omitempty,oneof=asc desc"`
	Page      int    `form:"page"`
	PageSize  int    `form:"page_size"`
}

// OwnerBrief 内容中嵌套的作者简要信息
type OwnerBrief struct {
	ID       int64   `json:"id"`
	UserName string  `json:"user_name"`
	FullName string  `json:"full_name"`
	Avatar   *string `json:"avatar"`
}

// VideoInfo 视频详情
type VideoInfo struct {
	ID           int64       `json:"id"`
	OwnerID      int64       `json:"owner_id"`
	Title        string      `json:"title"`
	Description  string      `json:"description"`
	VideoURL     string      `json:"video_url"`
	ThumbnailURL string      `json:"thumbnail_url"`
	Duration     float64     `json:"duration"`
	ViewCount    int64       `json:"view_count"`
	LikeCount    int64       `json:"like_count"`
	IsPublished  bool        `json:"is_published"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
	Owner        *OwnerBrief `json:"owner,omitempty"`
}

// VideoListData 视频列表数据
type VideoListData struct {
	Videos     []VideoInfo `json:"videos"`
	Total      int64       `json:"total"`
	Page       int         `json:"page"`
	PageSize   int         `json:"page_size"`
	TotalPages int64       `json:"total_pages"`
}

// TogglePublishResult 发布状态切换结果
type TogglePublishResult struct {
	VideoID     int64 `json:"video_id"`
	IsPublished bool  `json:"is_published"`
}
