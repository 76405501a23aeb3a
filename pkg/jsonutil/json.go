// Package jsonutil 封装 sonic，统一项目内的 JSON 编解码
package jsonutil

import (
	"github.com/bytedance/sonic"
)

// Marshal 将对象序列化为JSON字节数组
func Marshal(v any) ([]byte, error) {
	return sonic.Marshal(v)
}

// MarshalString 将对象序列化为JSON字符串
func MarshalString(v any) (string, error) {
	return sonic.MarshalString(v)
}

// Unmarshal 将JSON字节数组解析到指定对象
func Unmarshal(data []byte, v any) error {
	return sonic.Unmarshal(data, v)
}

// UnmarshalString 将JSON字符串解析到指定对象
func UnmarshalString(s string, v any) error {
	return sonic.UnmarshalString(s, v)
}

// Valid 验证是否为有效的JSON
func Valid(data []byte) bool {
	return sonic.Valid(data)
}
