//go:build mobile

package utils

// IsMobile 移动端编译时恒为 true（没有窗口，不支持全屏切换）
func IsMobile() bool {
	return true
}
