package utils

import (
	"fmt"
	"time"

	sf "github.com/bwmarrin/snowflake"
)

// SnowflakeNode 封装雪花算法节点
type SnowflakeNode struct {
	node *sf.Node
}

// 全局节点实例
var snowflakeNode *SnowflakeNode

// Init 初始化雪花算法节点
// startTime: 起始时间，格式："2006-01-02"
// machineID: 机器ID (0-1023)
func Init(startTime string, machineID int64) error {
	st, err := time.Parse("2006-01-02", startTime)
	if err != nil {
		return fmt.Errorf("解析起始时间失败: %w", err)
	}

	sf.Epoch = st.UnixNano() / 1000000

	node, err := sf.NewNode(machineID)
	if err != nil {
		return fmt.Errorf("创建雪花节点失败: %w", err)
	}

	snowflakeNode = &SnowflakeNode{node: node}
	return nil
}

// GenerateID 生成唯一ID，用作请求ID
func GenerateID() (int64, error) {
	if snowflakeNode == nil || snowflakeNode.node == nil {
		return 0, fmt.Errorf("雪花节点未初始化")
	}
	return snowflakeNode.node.Generate().Int64(), nil
}
