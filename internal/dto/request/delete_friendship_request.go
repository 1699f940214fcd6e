package request

// DeleteFriendshipRequest 解除好友关系请求
// 使用位置:
//   - handler/friendship_handler.go: DeleteFriendship
type DeleteFriendshipRequest struct {
	FriendshipId int64 `json:"friendshipId" binding:"required"`
}
