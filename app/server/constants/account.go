package constants

const (
	PasswordMinLength = 5 // 密码最短长度
)

const (
	ContextKeyUserID = "userID" // 认证中间件写入 echo.Context 的用户 ID
)
