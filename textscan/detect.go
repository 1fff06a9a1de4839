package textscan

// Script 标识一种 CJK 文种，用于字体探测与纵排全角映射的判断。
type Script int

const (
	Japanese Script = iota
	Chinese
	Korean
)

// String 返回文种名称。
func (s Script) String() string {
	switch s {
	case Japanese:
		return "japanese"
	case Chinese:
		return "chinese"
	case Korean:
		return "korean"
	default:
		return "unknown"
	}
}

// Tier 是文种判定的强度：Strong 表示出现了该文种独有的原生字形，
// Weak 表示只出现了在多种 CJK 语言间有歧义的汉字或标点。
type Tier int

const (
	TierNone Tier = iota
	TierWeak
	TierStrong
)

// DetectJapanese 扫描一遍码点并给出日语判定强度。
// 平假名、片假名与片假名音标扩展记为 Strong；半角/全角形式、
// 汉字区与 CJK 标点记为 Weak。任何位置解码失败则整体判为 TierNone。
func DetectJapanese(s string) Tier {
	tier := TierNone
	b := []byte(s)
	for i := 0; i < len(b); {
		r, size, ok := DecodeRune(b[i:])
		if !ok {
			return TierNone
		}
		switch {
		case 0x3040 <= r && r <= 0x309F, // 平假名
			0x30A0 <= r && r <= 0x30FF, // 片假名
			0x31F0 <= r && r <= 0x31FF: // 片假名音标扩展
			tier = TierStrong
		case 0xFF01 <= r && r <= 0xFF9D, // 半角/全角形式
			0x3400 <= r && r <= 0x4DB5, // 汉字
			0x4E00 <= r && r <= 0x9FCB,
			0xF900 <= r && r <= 0xFA6A,
			0x3000 <= r && r <= 0x303F: // CJK 符号与标点
			if tier < TierWeak {
				tier = TierWeak
			}
		}
		i += size
	}
	return tier
}

// DetectChinese 在遇到第一个 CJK 统一表意文字、部首或扩展区码点时
// 即返回 true；解码失败返回 false。
func DetectChinese(s string) bool {
	b := []byte(s)
	for i := 0; i < len(b); {
		r, size, ok := DecodeRune(b[i:])
		if !ok {
			return false
		}
		switch {
		case 0x4E00 <= r && r <= 0x9FFF, // CJK 统一表意文字
			0xF900 <= r && r <= 0xFAFF,   // 兼容表意文字
			0x2F00 <= r && r <= 0x2FDF,   // 康熙部首
			0x2E80 <= r && r <= 0x2EFF,   // 部首补充
			0x3400 <= r && r <= 0x4DBF,   // 扩展 A
			0x20000 <= r && r <= 0x2A6DF, // 扩展 B
			0x2A700 <= r && r <= 0x2B73F, // 扩展 C
			0x2B740 <= r && r <= 0x2B81F, // 扩展 D
			0x2B820 <= r && r <= 0x2CEAF, // 扩展 E
			0x2CEB0 <= r && r <= 0x2EBEF, // 扩展 F
			0x30000 <= r && r <= 0x3134F, // 扩展 G
			0x31350 <= r && r <= 0x323AF, // 扩展 H
			0x3000 <= r && r <= 0x303F,   // CJK 符号与标点
			0x2F800 <= r && r <= 0x2FA1F: // 兼容表意文字补充
			return true
		}
		i += size
	}
	return false
}

// DetectKorean 扫描一遍码点并给出韩语判定强度。
// 谚文音节与字母区记为 Strong；汉字与 CJK 标点记为 Weak。
func DetectKorean(s string) Tier {
	tier := TierNone
	b := []byte(s)
	for i := 0; i < len(b); {
		r, size, ok := DecodeRune(b[i:])
		if !ok {
			return TierNone
		}
		switch {
		case 0xAC00 <= r && r <= 0xD7AF, // 谚文音节
			0x1100 <= r && r <= 0x11FF, // 谚文字母
			0x3130 <= r && r <= 0x318F, // 兼容谚文字母
			0xA960 <= r && r <= 0xA97F, // 字母扩展 A
			0xD7B0 <= r && r <= 0xD7FF, // 字母扩展 B
			0xFFA0 <= r && r <= 0xFFDF: // 半角谚文
			tier = TierStrong
		case 0x4E00 <= r && r <= 0x9FFF,
			0xF900 <= r && r <= 0xFAFF,
			0x2F00 <= r && r <= 0x2FDF,
			0x2E80 <= r && r <= 0x2EFF,
			0x3000 <= r && r <= 0x303F:
			if tier < TierWeak {
				tier = TierWeak
			}
		}
		i += size
	}
	return tier
}
