// Package fonts 负责把字体名解析成字体数据：优先在系统字体目录
// 里查找，找不到时由调用方退回内置字体。
package fonts

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/flopp/go-findfont"
	"golang.org/x/image/font/gofont/goregular"
)

// 查找时依次尝试的文件名变体。
var suffixes = []string{"", ".ttf", ".otf", ".ttc"}

// Resolve 按名字查找系统字体并返回其数据。
// name 可以是 "NotoSansCJK-Regular" 这样的文件名主干，也可以带扩展名。
func Resolve(name string) ([]byte, error) {
	if name == "" {
		return nil, fmt.Errorf("字体名为空")
	}
	var firstErr error
	for _, suffix := range suffixes {
		path, err := findfont.Find(name + suffix)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("读取字体 %s 失败: %w", path, err)
		}
		return data, nil
	}
	return nil, fmt.Errorf("找不到字体 %q: %w", name, firstErr)
}

// Fallback 返回内置的 Go Regular 字体数据。
func Fallback() []byte { return goregular.TTF }

// FallbackName 是内置字体在渲染器里的注册名。
const FallbackName = "go-regular"

// List 返回系统里全部可用字体的文件名主干，去重并排序。
func List() []string {
	seen := map[string]bool{}
	var names []string
	for _, path := range findfont.List() {
		base := filepath.Base(path)
		name := strings.TrimSuffix(base, filepath.Ext(base))
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
