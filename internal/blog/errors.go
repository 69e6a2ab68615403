package blog

import "errors"

var (
	ErrPostNotFound    = errors.New("post not found or access denied")
	ErrCommentNotFound = errors.New("comment not found or access denied")
	ErrAlreadyLiked    = errors.New("post already liked")
)
