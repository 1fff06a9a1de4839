package textscan

import "strings"

// Escape 把控制字符转为两字符转义序列。
// 只识别 \t \n \r \f \\ 五种，与 Unescape 互为逆操作。
func Escape(text string) string {
	var b strings.Builder
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\t':
			b.WriteString(`\t`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\f':
			b.WriteString(`\f`)
		case '\\':
			b.WriteString(`\\`)
		default:
			b.WriteByte(text[i])
		}
	}
	return b.String()
}

// Unescape 还原 Escape 产生的转义序列。
// 未收录的转义只去掉反斜杠保留原字符；行尾孤立的反斜杠原样保留。
func Unescape(text string) string {
	var b strings.Builder
	escaping := false
	for i := 0; i < len(text); i++ {
		ch := text[i]
		if escaping {
			switch ch {
			case 't':
				b.WriteByte('\t')
			case 'n':
				b.WriteByte('\n')
			case 'r':
				b.WriteByte('\r')
			case 'f':
				b.WriteByte('\f')
			case '\\':
				b.WriteByte('\\')
			default:
				b.WriteByte(ch)
			}
			escaping = false
			continue
		}
		if ch == '\\' {
			escaping = true
			if i+1 == len(text) {
				b.WriteByte(ch)
			}
			continue
		}
		b.WriteByte(ch)
	}
	return b.String()
}

// ExpandTabs 把制表符展开为三个空格，在 Unescape 之后调用。
func ExpandTabs(text string) string {
	return strings.ReplaceAll(text, "\t", "   ")
}
