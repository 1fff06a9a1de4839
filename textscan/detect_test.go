package textscan

import "testing"

func TestDetectJapanese(t *testing.T) {
	cases := []struct {
		in   string
		want Tier
	}{
		{"", TierNone},
		{"ABCabc123", TierNone},
		{"あ", TierStrong}, // 平假名
		{"ア", TierStrong}, // 片假名
		{"ｱ", TierWeak},   // 半角片假名（半角/全角形式区）
		{"漢字", TierWeak},  // 汉字
		{"ＡＢＣ", TierWeak}, // 全角 ASCII
		{"abcあxyz", TierStrong},
		{"。", TierWeak},                        // CJK 标点
		{"abc\xf8\x88\x80\x80\x80あ", TierNone}, // 解码失败整体判 None
	}
	for _, c := range cases {
		if got := DetectJapanese(c.in); got != c.want {
			t.Fatalf("DetectJapanese(%q)=%v want %v", c.in, got, c.want)
		}
	}
}

func TestDetectChinese(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"", false},
		{"hello", false},
		{"沉", true},
		{"漢字", true},
		{"。", true},
		{"あ", false}, // 纯假名不触发中文判定
		{"\x80沉", false},
	}
	for _, c := range cases {
		if got := DetectChinese(c.in); got != c.want {
			t.Fatalf("DetectChinese(%q)=%v want %v", c.in, got, c.want)
		}
	}
}

func TestDetectKorean(t *testing.T) {
	cases := []struct {
		in   string
		want Tier
	}{
		{"", TierNone},
		{"hello", TierNone},
		{"작", TierStrong}, // 谚文音节
		{"ㄱ", TierStrong}, // 兼容谚文字母
		{"漢", TierWeak},   // 汉字有歧义
		{"。", TierWeak},
		{"작\xff", TierNone},
	}
	for _, c := range cases {
		if got := DetectKorean(c.in); got != c.want {
			t.Fatalf("DetectKorean(%q)=%v want %v", c.in, got, c.want)
		}
	}
}

// TestEscapeRoundTrip 验证不含原生控制字符的字符串经 Escape 再
// Unescape 后保持不变。
func TestEscapeRoundTrip(t *testing.T) {
	cases := []string{
		"",
		"plain text",
		`back\slash`,
		`trailing\`,
		"日本語のテキスト",
		`mixed \n literal`,
	}
	for _, s := range cases {
		if got := Unescape(Escape(s)); got != s {
			t.Fatalf("round trip 失败: in=%q got=%q", s, got)
		}
	}
}

func TestUnescape(t *testing.T) {
	cases := []struct{ in, want string }{
		{`a\tb`, "a\tb"},
		{`a\nb`, "a\nb"},
		{`a\rb`, "a\rb"},
		{`a\fb`, "a\fb"},
		{`a\\b`, `a\b`},
		{`a\xb`, "axb"}, // 未收录的转义去掉反斜杠
		{`tail\`, `tail\`},
	}
	for _, c := range cases {
		if got := Unescape(c.in); got != c.want {
			t.Fatalf("Unescape(%q)=%q want %q", c.in, got, c.want)
		}
	}
}

func TestExpandTabs(t *testing.T) {
	if got := ExpandTabs("a\tb"); got != "a   b" {
		t.Fatalf("ExpandTabs: got=%q", got)
	}
}

// TestToFullwidth 验证半角字符被映射为全角而两种空格原样保留。
func TestToFullwidth(t *testing.T) {
	got := ToFullwidth("AB 1　ｱ")
	want := "ＡＢ １　ア"
	if got != want {
		t.Fatalf("ToFullwidth: got=%q want=%q", got, want)
	}
	// 纯空格往返不变。
	if got := ToFullwidth(" 　 "); got != " 　 " {
		t.Fatalf("空格未保留: %q", got)
	}
}
