package utils

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

func Validate(i interface{}) error {
	return validate.Struct(i)
}

func FormatValidationError(errs validator.ValidationErrors) string {
	// 定义错误信息映射
	msgMap := map[string]string{
		"required": "不能为空",
		"min":      "长度不能小于%v",
		"max":      "长度不能大于%v",
		"email":    "必须是有效的邮箱地址",
		"url":      "必须是有效的网址",
		"oneof":    "必须是[%v]中的一个",
		"gt":       "必须大于%v",
		"gte":      "必须大于等于%v",
	}

	// 字段名称映射（将英文字段名转换为中文）
	fieldMap := map[string]string{
		"Title":        "标题",
		"Body":         "正文",
		"Name":         "名称",
		"Author":       "姓名",
		"Email":        "邮箱",
		"Site":         "网址",
		"URL":          "网址",
		"Username":     "用户名",
		"Password":     "密码",
		"BlogTitle":    "博客标题",
		"BlogSubTitle": "博客副标题",
		"About":        "关于",
		"CategoryID":   "分类",
	}

	// 只返回第一个错误
	firstErr := errs[0]

	fieldName := fieldMap[firstErr.Field()]
	if fieldName == "" {
		fieldName = firstErr.Field()
	}

	msgTemplate := msgMap[firstErr.Tag()]
	if msgTemplate == "" {
		msgTemplate = "验证失败"
	}

	if firstErr.Param() != "" {
		return fieldName + fmt.Sprintf(msgTemplate, firstErr.Param())
	}

	return fieldName + msgTemplate
}
