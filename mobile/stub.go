//go:build !mobile

// stub.go - 非移动端构建时的占位文件
//
// 普通构建时 mobile.go 和 embed.go 不参与编译（mobile/data/ 目录也不存在），
// 这里只保留 Dummy，让 go build ./... 能够通过。
package mobile

// Dummy 是一个空导出函数，确保包在非移动端构建时也能被引用
func Dummy() {}
