package layout

import (
	"testing"

	"github.com/ByLCY/placa/textscan"
)

// TestPlaceVerticalCharCategories 逐类别验证纵排的旋转、镜像与位移。
func TestPlaceVerticalCharCategories(t *testing.T) {
	gm := GlyphMetrics{Width: 10, Height: 12, XBearing: 1, YBearing: -11, XAdvance: 10}
	const x, y = 100.0, 50.0

	t.Run("普通字符", func(t *testing.T) {
		pc := placeVerticalChar("あ", textscan.CategoryOther, gm, x, y, 1, 1)
		if pc.Rotate != 0 || pc.ScaleY != 1 {
			t.Fatalf("普通字符不应旋转或镜像: %+v", pc)
		}
		if !nearly(pc.X, x-gm.XAdvance/2) || !nearly(pc.Y, y-gm.YBearing) {
			t.Fatalf("普通字符位置错误: %+v", pc)
		}
	})

	t.Run("横棒旋转并镜像", func(t *testing.T) {
		pc := placeVerticalChar("ー", textscan.CategoryHyphenDash, gm, x, y, 1, 1)
		if pc.Rotate != -90 {
			t.Fatalf("横棒应旋转 -90 度: %+v", pc)
		}
		if pc.ScaleY != -1 {
			t.Fatalf("横棒应做 Y 镜像: %+v", pc)
		}
		// 宽高互换后：e.Width=12, e.XBearing=-11。
		if !nearly(pc.X, x-(-11)-12.0/2) {
			t.Fatalf("横棒 X 错误: %+v", pc)
		}
	})

	t.Run("括号旋转", func(t *testing.T) {
		for _, c := range []struct {
			ch  string
			cat textscan.Category
		}{
			{"（", textscan.CategoryParenOpenClose1},
			{"「", textscan.CategoryParenOpen2},
			{"」", textscan.CategoryParenClose3},
		} {
			pc := placeVerticalChar(c.ch, c.cat, gm, x, y, 1, 1)
			if pc.Rotate != 90 {
				t.Fatalf("%q 应旋转 90 度: %+v", c.ch, pc)
			}
			if pc.ScaleY != 1 {
				t.Fatalf("%q 不应镜像: %+v", c.ch, pc)
			}
		}
	})

	t.Run("小书假名缩小右移", func(t *testing.T) {
		pc := placeVerticalChar("っ", textscan.CategorySmallKana, gm, x, y, 1, 1)
		if !nearly(pc.ScaleX, smallKanaRatio) || !nearly(pc.ScaleY, smallKanaRatio) {
			t.Fatalf("小书假名应缩小到 %g: %+v", smallKanaRatio, pc)
		}
		wantX := x + gm.Width*smallKanaRatio*0.5 - gm.XAdvance*smallKanaRatio/2
		if !nearly(pc.X, wantX) {
			t.Fatalf("小书假名 X 错误: got=%g want=%g", pc.X, wantX)
		}
	})

	t.Run("句读点右移", func(t *testing.T) {
		pc := placeVerticalChar("、", textscan.CategoryCommaPeriod, gm, x, y, 1, 1)
		wantX := x + gm.Width*0.75 - gm.XAdvance/2
		if !nearly(pc.X, wantX) {
			t.Fatalf("句读点 X 错误: got=%g want=%g", pc.X, wantX)
		}
	})
}

// TestVerticalAdvance 验证列向步进按类别取不同的度量轴。
func TestVerticalAdvance(t *testing.T) {
	gm := GlyphMetrics{Width: 10, Height: 12, XAdvance: 9}
	cases := []struct {
		cat  textscan.Category
		want float64
	}{
		{textscan.CategoryOther, 12},
		{textscan.CategorySpace, 9},
		{textscan.CategorySmallKana, 12 * smallKanaRatio},
		{textscan.CategoryHyphenDash, 10},
		{textscan.CategoryParenOpenClose1, 10},
		{textscan.CategoryParenOpen2, 10},
		{textscan.CategoryParenClose3, 10},
	}
	for _, c := range cases {
		if got := verticalAdvance(c.cat, gm, 1); !nearly(got, c.want) {
			t.Fatalf("verticalAdvance(%v)=%g want %g", c.cat, got, c.want)
		}
	}
}

// TestLayoutVerticalFullwidth 验证仅当字体覆盖 CJK 时才做全角映射。
func TestLayoutVerticalFullwidth(t *testing.T) {
	cfg := testConfig()
	cfg.Vertical = true
	fullwidth := func(s string) string { return "全" }

	m := newFakeMetrics()
	m.cjk = true
	band := newBand(cfg, 10, 10, 40, 180)
	if err := layoutVertical(m, cfg, &band, "abc", fullwidth); err != nil {
		t.Fatal(err)
	}
	if len(band.Chars) != 1 || band.Chars[0].Char != "全" {
		t.Fatalf("CJK 字体应经过全角映射: %+v", band.Chars)
	}

	m2 := newFakeMetrics()
	band2 := newBand(cfg, 10, 10, 40, 180)
	if err := layoutVertical(m2, cfg, &band2, "abc", fullwidth); err != nil {
		t.Fatal(err)
	}
	if len(band2.Chars) != 3 {
		t.Fatalf("非 CJK 字体不应映射: %+v", band2.Chars)
	}
}

// TestLayoutVerticalGapFloor 验证空隙过小时整体收缩而不是重叠。
func TestLayoutVerticalGapFloor(t *testing.T) {
	cfg := testConfig()
	cfg.Vertical = true
	m := newFakeMetrics()
	band := newBand(cfg, 10, 10, 60, 120)
	// 字数多的窄列会触发空隙下限。
	if err := layoutVertical(m, cfg, &band, "一二三四五六七八九十", nil); err != nil {
		t.Fatal(err)
	}
	for i := 1; i < len(band.Chars); i++ {
		gap := band.Chars[i].Y - band.Chars[i-1].Y
		if gap <= 0 {
			t.Fatalf("字符 %d 与前一字符重叠: gap=%g", i, gap)
		}
	}
}
