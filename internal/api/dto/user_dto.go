package dto

// UserInfo 用户公开信息（不含密码）
type UserInfo struct {
	ID         int64   `json:"id"`
	UserName   string  `json:"user_name"`
	FullName   string  `json:"full_name"`
	Avatar     *string `json:"avatar"`
	CoverImage *string `json:"cover_image"`
}

// UserUpdateRequest 用户信息更新请求
type UserUpdateRequest struct {
	FullName   *string `json:"full_name" binding:"omitempty,min=1,max=255"`
	Avatar     *string `json:"avatar" binding:"omitempty,max=500"`
	CoverImage *string `json:"cover_image" binding:"omitempty,max=500"`
}

// ChangePasswordRequest 修改密码请求
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required,min=6,max=255"`
	NewPassword string `json:"new_password" binding:"required,min=6,max=255"`
}

// ChannelProfile 频道主页信息（含订阅统计）
type ChannelProfile struct {
	ID              int64   `json:"id"`
	UserName        string  `json:"user_name"`
	FullName        string  `json:"full_name"`
	Avatar          *string `json:"avatar"`
	CoverImage      *string `json:"cover_image"`
	SubscriberCount int64   `json:"subscriber_count"`
	SubscribedCount int64   `json:"subscribed_count"`
	IsSubscribed    bool    `json:"is_subscribed"`
}
