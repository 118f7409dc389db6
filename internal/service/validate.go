package service

import (
	"errors"
	"strings"
)

var (
	// ErrEmptyUpdate 更新请求未携带任何字段
	ErrEmptyUpdate = errors.New("未提供任何更新字段")
	// ErrBlankContent 文本字段去掉首尾空白后为空
	ErrBlankContent = errors.New("内容不能为空")
)

// trimContent 去掉首尾空白，全空白时返回 ErrBlankContent
func trimContent(s string) (string, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return "", ErrBlankContent
	}
	return trimmed, nil
}
