package models

import (
	"bluelog/models/ctypes"
)

type PageInfo struct {
	Page     int    `json:"page" form:"page"`
	Key      string `json:"key" form:"key"`
	PageSize int    `json:"page_size" form:"page_size"`
}

// MODEL 模型基类，所有删除均为物理删除，不使用软删除
type MODEL struct {
	ID        uint          `gorm:"primaryKey" json:"id"`
	CreatedAt ctypes.MyTime `gorm:"index" json:"created_at"` // 创建时间，即博文/评论的时间戳，编辑时不变
	UpdatedAt ctypes.MyTime `json:"updated_at"`              // 更新时间
}

type IDRequest struct {
	ID uint `json:"id" uri:"id" form:"id" validate:"required,gt=0"`
}
