package dto

// SearchVideoRequest 视频搜索请求参数
type SearchVideoRequest struct {
	Q        string `form:"q" binding:"required,min=1,max=200"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}

// SearchVideoInfo 搜索结果中的视频信息
type SearchVideoInfo struct {
	ID           int64   `json:"id"`
	OwnerID      int64   `json:"owner_id"`
	OwnerName    string  `json:"owner_name"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	ThumbnailURL string  `json:"thumbnail_url"`
	Duration     float64 `json:"duration"`
	ViewCount    int64   `json:"view_count"`
}

// SearchVideoData 搜索结果数据
type SearchVideoData struct {
	Videos     []SearchVideoInfo `json:"videos"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
	TotalPages int64             `json:"total_pages"`
}
