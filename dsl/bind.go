package dsl

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var placeholderPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// Interpolate 将文本中的 ${path.to[0].value} 替换为 data 中的值。
// data 为空或路径不存在时保留原占位符。
func Interpolate(text string, data any) string {
	if data == nil {
		return text
	}
	return placeholderPattern.ReplaceAllStringFunc(text, func(match string) string {
		path := strings.TrimSpace(match[2 : len(match)-1])
		if path == "" {
			return match
		}
		if val, ok := lookupPath(data, path); ok {
			return fmt.Sprint(val)
		}
		return match
	})
}

// lookupPath 沿点号路径下钻，方括号下标访问数组元素。
// 只支持 encoding/json 解码出的 map[string]any 与 []any。
func lookupPath(data any, path string) (any, bool) {
	current := data
	for _, segment := range strings.Split(path, ".") {
		name := segment
		var indexes []string
		if i := strings.IndexByte(segment, '['); i != -1 {
			name = segment[:i]
			rest := segment[i:]
			for strings.HasPrefix(rest, "[") {
				end := strings.IndexByte(rest, ']')
				if end == -1 {
					return nil, false
				}
				indexes = append(indexes, rest[1:end])
				rest = rest[end+1:]
			}
		}
		if name != "" {
			m, ok := current.(map[string]any)
			if !ok {
				return nil, false
			}
			if current, ok = m[name]; !ok {
				return nil, false
			}
		}
		for _, idxStr := range indexes {
			idx, err := strconv.Atoi(idxStr)
			if err != nil {
				return nil, false
			}
			arr, ok := current.([]any)
			if !ok || idx < 0 || idx >= len(arr) {
				return nil, false
			}
			current = arr[idx]
		}
	}
	return current, true
}
