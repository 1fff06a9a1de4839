package textscan

import (
	"strings"

	"golang.org/x/text/width"
)

// 映射期间保护空格用的哨兵，正文不可能出现这两个控制字符。
const (
	sentinelHalfSpace = "\x01"
	sentinelFullSpace = "\x02"
)

// ToFullwidth 把半角字符映射为全角等价形式，供纵排在 CJK 字体下
// 对齐列宽使用。半角与全角空格在往返过程中保持原样。
func ToFullwidth(text string) string {
	s := strings.ReplaceAll(text, " ", sentinelHalfSpace)
	s = strings.ReplaceAll(s, "　", sentinelFullSpace)
	s = width.Widen.String(s)
	s = strings.ReplaceAll(s, sentinelHalfSpace, " ")
	s = strings.ReplaceAll(s, sentinelFullSpace, "　")
	return s
}
