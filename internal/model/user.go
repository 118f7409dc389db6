package model

import "time"

// User 用户模型（同时也是频道，其他用户可以订阅）
type User struct {
	ID         int64     `gorm:"primaryKey;autoIncrement;comment:用户标识" json:"id"`
	UserName   string    `gorm:"size:255;not null;uniqueIndex;comment:用户名" json:"user_name"`
	FullName   string    `gorm:"size:255;comment:昵称" json:"full_name"`
	Password   string    `gorm:"size:255;not null;comment:密码" json:"-"` // json:"-" 序列化时忽略密码
	Avatar     *string   `gorm:"size:500;comment:用户头像" json:"avatar"`
	CoverImage *string   `gorm:"size:500;comment:主页背景" json:"cover_image"`
	CreatedAt  time.Time `gorm:"autoCreateTime;comment:注册时间" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime;comment:更新时间" json:"updated_at"`

	// 关联关系
	Videos    []Video    `gorm:"foreignKey:OwnerID" json:"videos,omitempty"`
	Tweets    []Tweet    `gorm:"foreignKey:OwnerID" json:"tweets,omitempty"`
	Playlists []Playlist `gorm:"foreignKey:OwnerID" json:"playlists,omitempty"`
}

func (User) TableName() string {
	return "users"
}
