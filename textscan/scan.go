// Package textscan 提供看板文本的底层扫描能力：UTF-8 字素切分、
// 字符排印分类、CJK 文种判定以及纵排所需的全角映射。
// 所有函数均为纯函数，不持有任何状态。
package textscan

import "strings"

// isLead 判断字节是否为 UTF-8 序列的首字节。
func isLead(b byte) bool {
	return b&0xC0 != 0x80
}

// DecodeRune 按首字节高位推断序列长度并解码一个码点。
// 5、6 字节形式无法表示合法 Unicode，与截断序列一样按解码失败处理，
// 此时 ok 为 false，调用方应放弃整个扫描。
func DecodeRune(b []byte) (r rune, size int, ok bool) {
	if len(b) == 0 {
		return 0, 0, false
	}
	lead := b[0]
	switch {
	case lead&0x80 == 0:
		size = 1
	case lead&0xE0 == 0xC0:
		size = 2
	case lead&0xF0 == 0xE0:
		size = 3
	case lead&0xF8 == 0xF0:
		size = 4
	default:
		// 5/6 字节形式或孤立的后续字节。
		return 0, 0, false
	}
	if len(b) < size {
		return 0, 0, false
	}
	switch size {
	case 1:
		r = rune(lead)
	case 2:
		r = rune(lead&0x1F)<<6 | rune(b[1]&0x3F)
	case 3:
		r = rune(lead&0x0F)<<12 | rune(b[1]&0x3F)<<6 | rune(b[2]&0x3F)
	case 4:
		r = rune(lead&0x07)<<18 | rune(b[1]&0x3F)<<12 | rune(b[2]&0x3F)<<6 | rune(b[3]&0x3F)
	}
	return r, size, true
}

// SplitChars 把 UTF-8 字符串按首字节切分成单字形字符序列。
// 每个首字节开启一个新字符，后续字节追加到当前字符上；
// 不做组合字符或 ZWJ 簇合并，一个四字节补充平面码点算一个字符。
func SplitChars(s string) []string {
	var chars []string
	var cur strings.Builder
	for i := 0; i < len(s); i++ {
		if isLead(s[i]) && cur.Len() > 0 {
			chars = append(chars, cur.String())
			cur.Reset()
		}
		cur.WriteByte(s[i])
	}
	if cur.Len() > 0 {
		chars = append(chars, cur.String())
	}
	return chars
}

// CharLen 返回 UTF-8 字符串按首字节计数的字符数。
func CharLen(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if isLead(s[i]) {
			n++
		}
	}
	return n
}

// FirstRune 解码字符串的第一个码点；解码失败时返回 ok=false。
func FirstRune(s string) (rune, bool) {
	r, _, ok := DecodeRune([]byte(s))
	return r, ok
}
