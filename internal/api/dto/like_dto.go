package dto

// ToggleLikeResult 点赞/取消点赞操作结果
type ToggleLikeResult struct {
	TargetType string `json:"target_type"`
	TargetID   int64  `json:"target_id"`
	Liked      bool   `json:"liked"`
	LikeCount  int64  `json:"like_count"`
}
