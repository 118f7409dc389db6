package dto

import "time"

// TweetCreateRequest 发表动态请求
type TweetCreateRequest struct {
	Content string `json:"content" binding:"required,min=1,max=500"`
}

// TweetUpdateRequest 更新动态请求
type TweetUpdateRequest struct {
	Content string `json:"content" binding:"required,min=1,max=500"`
}

// TweetInfo 动态信息
type TweetInfo struct {
	ID        int64       `json:"id"`
	OwnerID   int64       `json:"owner_id"`
	Content   string      `json:"content"`
	LikeCount int64       `json:"like_count"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
	Owner     *OwnerBrief `json:"owner,omitempty"`
}

// TweetListData 动态列表数据
type TweetListData struct {
	Tweets     []TweetInfo `json:"tweets"`
	Total      int64       `json:"total"`
	Page       int         `json:"page"`
	PageSize   int         `json:"page_size"`
	TotalPages int64       `json:"total_pages"`
}
