package layout

import (
	"testing"

	"github.com/ByLCY/placa/textscan"
)

// fakeMetrics 是确定性的度量后端，字形尺寸随字号线性（连续）缩放。
// wEm/hEm 是以 em 为单位的宽高比例。
type fakeMetrics struct {
	wEm, hEm float64
	cjk      bool
}

func (f *fakeMetrics) scale(sizePt float64) float64 { return sizePt * PtToMm }

func (f *fakeMetrics) GlyphExtents(font FontRef, sizePt float64, ch string) (GlyphMetrics, error) {
	s := f.scale(sizePt)
	return GlyphMetrics{
		Width:    f.wEm * s,
		Height:   f.hEm * s,
		XBearing: 0,
		YBearing: -f.hEm * s,
		XAdvance: f.wEm * s,
	}, nil
}

func (f *fakeMetrics) FontExtents(font FontRef, sizePt float64) (FontMetrics, error) {
	s := f.scale(sizePt)
	return FontMetrics{Ascent: 0.8 * s, Descent: 0.2 * s, Height: s}, nil
}

func (f *fakeMetrics) SupportsScript(font FontRef, script textscan.Script) bool { return f.cjk }

func newFakeMetrics() *fakeMetrics { return &fakeMetrics{wEm: 0.6, hEm: 0.7} }

// zeroMetrics 的字形宽高恒为零，模拟不可渲染的字形。
type zeroMetrics struct{ fakeMetrics }

func (z *zeroMetrics) GlyphExtents(font FontRef, sizePt float64, ch string) (GlyphMetrics, error) {
	return GlyphMetrics{}, nil
}

// tinyMetrics 的字形尺寸小到永远到不了填充率，用于触发字号上限。
type tinyMetrics struct{ fakeMetrics }

func (t *tinyMetrics) GlyphExtents(font FontRef, sizePt float64, ch string) (GlyphMetrics, error) {
	s := sizePt * PtToMm * 1e-9
	return GlyphMetrics{Width: s, Height: s, YBearing: -s, XAdvance: s}, nil
}

func (t *tinyMetrics) FontExtents(font FontRef, sizePt float64) (FontMetrics, error) {
	s := sizePt * PtToMm * 1e-9
	return FontMetrics{Ascent: s, Descent: 0, Height: s}, nil
}

func splitForTest(s string) []string { return textscan.SplitChars(s) }

// TestSolveHorizontalInvariants 验证：返回的字号不小于初始值，
// 两轴缩放为正，且放大目标框不会让字号变小。
func TestSolveHorizontalInvariants(t *testing.T) {
	m := newFakeMetrics()
	font := FontRef{Name: "test"}
	chars := splitForTest("placard")

	boxes := []extent{
		{W: 100, H: 50},
		{W: 200, H: 100},
		{W: 400, H: 200},
	}
	prevSize := 0.0
	for _, box := range boxes {
		fit, err := solveHorizontal(m, font, chars, box, 1.5)
		if err != nil {
			t.Fatalf("solveHorizontal(%v) 失败: %v", box, err)
		}
		if fit.FontSize < initialFontSize {
			t.Fatalf("字号低于初始值: %g", fit.FontSize)
		}
		if fit.ScaleX <= 0 || fit.ScaleY <= 0 {
			t.Fatalf("缩放必须为正: %+v", fit)
		}
		if fit.FontSize < prevSize {
			t.Fatalf("放大目标框后字号反而变小: %g -> %g", prevSize, fit.FontSize)
		}
		prevSize = fit.FontSize
	}
}

// TestSolveHorizontalAspectCap 验证纵横比封顶：
// 每字宽与行高之比及其倒数都不超过阈值。
func TestSolveHorizontalAspectCap(t *testing.T) {
	m := newFakeMetrics()
	font := FontRef{Name: "test"}

	for _, threshold := range []float64{1.0, 1.5, 3.0} {
		for _, text := range []string{"x", "hi", "wide placard text"} {
			chars := splitForTest(text)
			box := extent{W: 300, H: 40}
			fit, err := solveHorizontal(m, font, chars, box, threshold)
			if err != nil {
				t.Fatalf("solveHorizontal(%q, T=%g) 失败: %v", text, threshold, err)
			}
			ext, err := measureRow(m, font, fit.FontSize, chars)
			if err != nil {
				t.Fatal(err)
			}
			n := float64(len(chars))
			perChar := ext.W * fit.ScaleX / n
			lineH := ext.H * fit.ScaleY
			const eps = 1e-9
			if perChar/lineH > threshold+eps {
				t.Fatalf("宽高比超限: %g > %g (text=%q)", perChar/lineH, threshold, text)
			}
			if lineH/perChar > threshold+eps {
				t.Fatalf("高宽比超限: %g > %g (text=%q)", lineH/perChar, threshold, text)
			}
		}
	}
}

func TestSolveHorizontalFailures(t *testing.T) {
	font := FontRef{Name: "test"}
	box := extent{W: 100, H: 50}

	if _, err := solveHorizontal(newFakeMetrics(), font, nil, box, 1.5); err == nil {
		t.Fatal("空行应当适配失败")
	}
	if _, err := solveHorizontal(&zeroMetrics{}, font, splitForTest("ab"), box, 1.5); err == nil {
		t.Fatal("退化度量应当适配失败")
	}
	if _, err := solveHorizontal(&tinyMetrics{}, font, splitForTest("ab"), box, 1.5); err == nil {
		t.Fatal("触及字号上限应当适配失败")
	}
	if _, err := solveHorizontal(newFakeMetrics(), font, splitForTest("ab"), extent{W: -1, H: 50}, 1.5); err == nil {
		t.Fatal("非法条带尺寸应当适配失败")
	}
}

// TestAdvanceFitPhases 直接验证状态机的转移函数。
func TestAdvanceFitPhases(t *testing.T) {
	box := extent{W: 100, H: 100}
	base := FitResult{FontSize: 10, ScaleX: 1, ScaleY: 1}

	cases := []struct {
		name      string
		fit       FitResult
		text      extent
		threshold float64
		phase     fitPhase
	}{
		{"两轴都未饱和时等比放大", base, extent{W: 10, H: 10}, 1.5, phaseGrowing},
		{"低阈值禁用拉伸", base, extent{W: 95, H: 10}, 1.0, phaseSaturated},
		{"仅宽度未饱和时拉伸 X", base, extent{W: 10, H: 95}, 1.5, phaseStretchingX},
		{"仅高度未饱和时拉伸 Y", base, extent{W: 95, H: 10}, 1.5, phaseStretchingY},
		{"两轴饱和后停止", base, extent{W: 95, H: 95}, 1.5, phaseSaturated},
		{"字号上限", FitResult{FontSize: maxFontSize, ScaleX: 1, ScaleY: 1}, extent{W: 10, H: 10}, 1.5, phaseFailed},
		{"退化度量", base, extent{W: 0, H: 10}, 1.5, phaseFailed},
	}
	for _, c := range cases {
		next, phase := advanceFit(c.fit, c.text, box, c.threshold, hStep, hFill)
		if phase != c.phase {
			t.Fatalf("%s: phase=%v want %v", c.name, phase, c.phase)
		}
		switch phase {
		case phaseGrowing:
			if next.FontSize <= c.fit.FontSize {
				t.Fatalf("%s: 字号未放大", c.name)
			}
		case phaseStretchingX:
			if next.ScaleX <= c.fit.ScaleX {
				t.Fatalf("%s: ScaleX 未放大", c.name)
			}
		case phaseStretchingY:
			if next.ScaleY <= c.fit.ScaleY {
				t.Fatalf("%s: ScaleY 未放大", c.name)
			}
		}
	}
}

// TestSolveVerticalSingleAxisCorrection 验证纵排封顶是 if/else-if：
// 两个方向不会同时收缩（与横排的两个独立 if 不同，刻意保留）。
func TestSolveVerticalSingleAxisCorrection(t *testing.T) {
	m := newFakeMetrics()
	font := FontRef{Name: "test"}
	chars := splitForTest("縦書きの列")

	fit, err := solveVertical(m, font, chars, extent{W: 40, H: 300}, 1.5)
	if err != nil {
		t.Fatalf("solveVertical 失败: %v", err)
	}
	if fit.FontSize < initialFontSize || fit.ScaleX <= 0 || fit.ScaleY <= 0 {
		t.Fatalf("纵排结果非法: %+v", fit)
	}
	// 至多一个轴被封顶收缩到 1 以下。
	if fit.ScaleX < 1 && fit.ScaleY < 1 {
		t.Fatalf("纵排封顶不应同时收缩两轴: %+v", fit)
	}
}

// TestMeasureColumnCategoryExtents 验证纵排累计使用修正后的外框。
func TestMeasureColumnCategoryExtents(t *testing.T) {
	m := newFakeMetrics()
	font := FontRef{Name: "test"}
	const size = 100.0
	s := size * PtToMm
	gw, gh := m.wEm*s, m.hEm*s

	cases := []struct {
		text  string
		wantW float64
		wantH float64
	}{
		{"あ", gw, gh},               // 普通字符：原始外框
		{"ー", gh, gw},               // 横棒：宽高互换
		{"（", gh, gw},               // 括号：宽高互换
		{"っ", gw * 0.55, gh * 0.55}, // 小书假名：等比缩小
		{" ", gw, gw},               // 空格：列向占横向 advance
		{"あー", gh, gh + gw},         // 混合累计
	}
	for _, c := range cases {
		ext, err := measureColumn(m, font, size, splitForTest(c.text))
		if err != nil {
			t.Fatal(err)
		}
		if !nearly(ext.W, c.wantW) || !nearly(ext.H, c.wantH) {
			t.Fatalf("measureColumn(%q): got=%gx%g want=%gx%g", c.text, ext.W, ext.H, c.wantW, c.wantH)
		}
	}
}

func nearly(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < 1e-9
}
