package dto

// ChannelStats 频道仪表盘统计数据
type ChannelStats struct {
	TotalVideos          int64 `json:"total_videos"`
	TotalViews           int64 `json:"total_views"`
	TotalSubscribers     int64 `json:"total_subscribers"`
	TotalLikes           int64 `json:"total_likes"`
	TotalComments        int64 `json:"total_comments"`
	AverageViewsPerVideo int64 `json:"average_views_per_video"`
}
