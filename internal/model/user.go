package model

type ContextKey string

const (
	UserIDKey ContextKey = "userID"
)

// UserIDHeader は端末ごとに生成されたユーザーIDを運ぶヘッダー
const UserIDHeader = "X-User-ID"
