package dto

// ToggleSubscriptionResult 订阅/取消订阅操作结果
type ToggleSubscriptionResult struct {
	ChannelID       int64 `json:"channel_id"`
	Subscribed      bool  `json:"subscribed"`
	SubscriberCount int64 `json:"subscriber_count"`
}

// ChannelBrief 订阅列表中的频道简要信息
type ChannelBrief struct {
	ID              int64   `json:"id"`
	UserName        string  `json:"user_name"`
	FullName        string  `json:"full_name"`
	Avatar          *string `json:"avatar"`
	SubscriberCount int64   `json:"subscriber_count"`
}

// SubscriptionListData 订阅/粉丝列表数据
type SubscriptionListData struct {
	Channels   []ChannelBrief `json:"channels"`
	Total      int64          `json:"total"`
	Page       int            `json:"page"`
	PageSize   int            `json:"page_size"`
	TotalPages int64          `json:"total_pages"`
}
