//go:build mobile

// embed.go - 移动端资源嵌入声明
//
// 此文件仅在使用 -tags mobile 构建时编译，data/bloom.yaml 需在构建前复制到此目录。
package mobile

import "embed"

//go:embed data/bloom.yaml
var dataFS embed.FS
