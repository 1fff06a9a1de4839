package textscan

// Category 是单个字符的排印类别，纵排布局按类别施加旋转与缩位修正。
type Category int

const (
	CategoryOther Category = iota
	CategorySpace
	CategoryParenOpenClose1 // 对称括号与书名号等
	CategoryParenOpen2      // 起始角引号「『
	CategoryParenClose3     // 终止角引号』」
	CategoryCommaPeriod     // 句读点
	CategoryHyphenDash      // 横棒类
	CategorySmallKana       // 小书假名
)

// String 返回类别名称，主要用于调试 JSON 与测试输出。
func (c Category) String() string {
	switch c {
	case CategorySpace:
		return "space"
	case CategoryParenOpenClose1:
		return "paren1"
	case CategoryParenOpen2:
		return "paren2"
	case CategoryParenClose3:
		return "paren3"
	case CategoryCommaPeriod:
		return "comma-period"
	case CategoryHyphenDash:
		return "hyphen-dash"
	case CategorySmallKana:
		return "small-kana"
	default:
		return "other"
	}
}

// 各类别的字符集合，与字符串字面量一一对应，避免手抄码点出错。
const (
	spaceChars  = " 　"
	paren1Chars = "(（[［〔【｛〈《≪｟⁅〖〘«»〙〗⁆｠≫》〉｝】〕］]）)"
	paren2Chars = "「『"
	paren3Chars = "』」"
	commaChars  = "、。，．"
	hyphenChars = "-－―ー=＝≡～"
	kanaChars   = "ぁぃぅぇぉっゃゅょゎゕゖァィゥェォヵㇰヶㇱㇲッㇳㇴㇵㇶㇷㇸㇹㇺャュョㇻㇼㇽㇾㇿヮ"
)

var categoryOf = buildCategoryTable()

func buildCategoryTable() map[rune]Category {
	table := make(map[rune]Category)
	add := func(chars string, c Category) {
		for _, r := range chars {
			table[r] = c
		}
	}
	add(spaceChars, CategorySpace)
	add(paren1Chars, CategoryParenOpenClose1)
	add(paren2Chars, CategoryParenOpen2)
	add(paren3Chars, CategoryParenClose3)
	add(commaChars, CategoryCommaPeriod)
	add(hyphenChars, CategoryHyphenDash)
	add(kanaChars, CategorySmallKana)
	return table
}

// Classify 返回码点的排印类别。未收录的码点一律归为 CategoryOther。
func Classify(r rune) Category {
	if c, ok := categoryOf[r]; ok {
		return c
	}
	return CategoryOther
}

// ClassifyChar 对 SplitChars 产出的单字形字符做分类；
// 解码失败的字符按 Other 处理。
func ClassifyChar(ch string) Category {
	r, ok := FirstRune(ch)
	if !ok {
		return CategoryOther
	}
	return Classify(r)
}
