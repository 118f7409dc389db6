package service

import "errors"

// ErrNotOwner 资源归属校验失败
var ErrNotOwner = errors.New("没有权限操作他人的资源")

// assertOwner 校验操作者是否为资源拥有者。
// 调用方必须先确认资源存在，再做归属校验。
func assertOwner(ownerID, actorID int64) error {
	if ownerID != actorID {
		return ErrNotOwner
	}
	return nil
}
