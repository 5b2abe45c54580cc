package res

// ResponseCode 响应码类型
type ResponseCode int

const (
	// 通用客户端错误 (1000-1099)
	BadRequest   ResponseCode = 1000 // 错误的请求
	Unauthorized ResponseCode = 1001 // 未授权
	Forbidden    ResponseCode = 1003 // 禁止访问
	NotFound     ResponseCode = 1004 // 资源未找到

	// 参数验证错误 (1100-1199)
	InvalidParameter ResponseCode = 1100 // 无效的参数

	// 认证授权错误 (1200-1299)
	TokenExpired ResponseCode = 1200 // 令牌过期
	TokenInvalid ResponseCode = 1201 // 令牌无效
	TokenMissing ResponseCode = 1202 // 缺少令牌

	// 服务端错误 (2000-2099)
	ServerError ResponseCode = 2000 // 服务器内部错误

	// 数据库相关错误 (2100-2199)
	DBError ResponseCode = 2100 // 数据库错误

	// 业务错误码 (3000-3999)
	AdminNotFound     ResponseCode = 3000 // 管理员不存在
	PasswordError     ResponseCode = 3002 // 密码错误
	CategoryProtected ResponseCode = 3100 // 默认分类不可修改
	CategoryExists    ResponseCode = 3101 // 分类名称已存在
	CommentClosed     ResponseCode = 3200 // 博文已关闭评论
)

// CodeMsg 错误码消息映射
var CodeMsg = map[ResponseCode]string{
	BadRequest:        "请求参数错误",
	Unauthorized:      "未授权访问",
	Forbidden:         "禁止访问",
	NotFound:          "资源不存在",
	InvalidParameter:  "无效的参数",
	TokenExpired:      "令牌已过期",
	TokenInvalid:      "令牌无效",
	TokenMissing:      "缺少令牌",
	ServerError:       "服务器内部错误",
	DBError:           "数据库操作失败",
	AdminNotFound:     "管理员不存在",
	PasswordError:     "密码错误",
	CategoryProtected: "默认分类不允许修改或删除",
	CategoryExists:    "分类名称已存在",
	CommentClosed:     "该博文已关闭评论",
}

// GetMsg 获取错误码对应的消息
func GetMsg(code ResponseCode) string {
	msg, ok := CodeMsg[code]
	if ok {
		return msg
	}
	return "未知错误"
}
