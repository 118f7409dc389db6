package model

import "time"

// LikeTarget 点赞目标类型
type LikeTarget string

const (
	LikeTargetVideo   LikeTarget = "video"
	LikeTargetComment LikeTarget = "comment"
	LikeTargetTweet   LikeTarget = "tweet"
)

// Valid 目标类型是否合法
func (t LikeTarget) Valid() bool {
	switch t {
	case LikeTargetVideo, LikeTargetComment, LikeTargetTweet:
		return true
	}
	return false
}

// Like 点赞记录：一条记录只指向一种目标（video/comment/tweet 之一），
// 由 target_type + target_id 显式表达，(user_id, target_type, target_id) 全局唯一
type Like struct {
	ID         int64      `gorm:"primaryKey;autoIncrement;comment:点赞记录ID" json:"id"`
	UserID     int64      `gorm:"not null;uniqueIndex:uq_like_user_target;index:idx_likes_user_id;comment:点赞用户ID" json:"user_id"`
	TargetType LikeTarget `gorm:"size:20;not null;uniqueIndex:uq_like_user_target;comment:目标类型" json:"target_type"`
	TargetID   int64      `gorm:"not null;uniqueIndex:uq_like_user_target;index:idx_likes_target_id;comment:目标ID" json:"target_id"`
	CreatedAt  time.Time  `gorm:"autoCreateTime;index:idx_likes_created_at;comment:点赞时间" json:"created_at"`

	// 关联关系
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Like) TableName() string {
	return "likes"
}
