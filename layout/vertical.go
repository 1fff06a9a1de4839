package layout

import (
	"github.com/ByLCY/placa/textscan"
)

// 纵排空隙下限与收缩步长：空隙低于 fontSize/5 时两轴缩放反复
// 乘以 0.95，防止又高又窄的列里字形互相重叠。
const (
	minGapFontRatio = 5.0
	gapShrinkStep   = 0.95
)

// layoutVertical 把一列文本适配进条带并生成逐字绘制指令。
// 字符从上到下排布、在列内水平居中，空隙方案与横排相同（N+1 份）。
// 若字体覆盖任一 CJK 文种，先经区域设置相关的全角映射归一列宽。
func layoutVertical(m Metrics, cfg Config, band *Band, text string, fullwidth func(string) string) error {
	if fullwidth != nil && supportsAnyCJK(m, cfg.Font) {
		text = fullwidth(text)
	}

	chars := textscan.SplitChars(text)
	fit, err := solveVertical(m, cfg.Font, chars, extent{W: band.Width, H: band.Height}, cfg.Threshold)
	if err != nil {
		return err
	}

	colExt, err := measureColumn(m, cfg.Font, fit.FontSize, chars)
	if err != nil {
		return err
	}

	sx, sy := fit.ScaleX, fit.ScaleY
	gap := (band.Height - colExt.H*sy) / float64(len(chars)+1)
	minGap := fit.FontSize * PtToMm / minGapFontRatio
	for gap < minGap {
		sx *= gapShrinkStep
		sy *= gapShrinkStep
		gap = (band.Height - colExt.H*sy) / float64(len(chars)+1)
		if sx < 1e-9 {
			// 几何已塌缩，保持当前空隙退出。
			break
		}
	}

	band.FontSize = fit.FontSize
	x := band.X + band.Width/2
	y := band.Y
	for _, ch := range chars {
		y += gap
		gm, err := m.GlyphExtents(cfg.Font, fit.FontSize, ch)
		if err != nil {
			return err
		}
		cat := textscan.ClassifyChar(ch)
		band.Chars = append(band.Chars, placeVerticalChar(ch, cat, gm, x, y+cfg.YAdjust, sx, sy))
		y += verticalAdvance(cat, gm, sy)
	}
	return nil
}

// placeVerticalChar 按类别生成单个纵排字符的绘制指令。
// 横棒与括号类把宽高、横纵 bearing 互换后旋转排布；
// 小书假名缩小并右移半个缩小后的宽度；句读点右移 0.75 个字宽。
func placeVerticalChar(ch string, cat textscan.Category, gm GlyphMetrics, x, y, sx, sy float64) PlacedChar {
	if cat == textscan.CategoryCommaPeriod {
		x += gm.Width * sx * 0.75
	}
	if cat == textscan.CategorySmallKana {
		sx *= smallKanaRatio
		sy *= smallKanaRatio
		x += gm.Width * sx * 0.5
	}

	e := gm
	switch cat {
	case textscan.CategoryHyphenDash,
		textscan.CategoryParenOpenClose1,
		textscan.CategoryParenOpen2,
		textscan.CategoryParenClose3:
		e.Width, e.Height = e.Height, e.Width
		e.XBearing, e.YBearing = e.YBearing, e.XBearing
	}
	scaledWidth := e.Width * sx

	switch cat {
	case textscan.CategoryHyphenDash:
		// 旋转 -90 度并做 Y 镜像。
		return PlacedChar{
			Char:   ch,
			X:      x - e.XBearing*sx - scaledWidth/2,
			Y:      y - e.YBearing*sy,
			ScaleX: sx,
			ScaleY: -sy,
			Rotate: -90,
		}
	case textscan.CategoryParenOpenClose1:
		return PlacedChar{
			Char:   ch,
			X:      x - scaledWidth*0.55 + e.Height*sx/2,
			Y:      y - e.YBearing*sy,
			ScaleX: sx,
			ScaleY: sy,
			Rotate: 90,
		}
	case textscan.CategoryParenOpen2:
		return PlacedChar{
			Char:   ch,
			X:      x + scaledWidth*0.6 + e.XBearing*sx,
			Y:      y - e.YBearing*sy,
			ScaleX: sx,
			ScaleY: sy,
			Rotate: 90,
		}
	case textscan.CategoryParenClose3:
		return PlacedChar{
			Char:   ch,
			X:      x - scaledWidth*0.55 + e.YBearing*sx,
			Y:      y - e.YBearing*sy,
			ScaleX: sx,
			ScaleY: sy,
			Rotate: 90,
		}
	default:
		// 空格、句读点、小书假名与普通字符：以半个 advance 居中。
		return PlacedChar{
			Char:   ch,
			X:      x - gm.XAdvance*sx/2,
			Y:      y - gm.YBearing*sy,
			ScaleX: sx,
			ScaleY: sy,
		}
	}
}

// verticalAdvance 返回纵排中某字符沿列方向占用的距离。
func verticalAdvance(cat textscan.Category, gm GlyphMetrics, sy float64) float64 {
	switch cat {
	case textscan.CategorySpace:
		return gm.XAdvance * sy
	case textscan.CategorySmallKana:
		return gm.Height * sy * smallKanaRatio
	case textscan.CategoryHyphenDash,
		textscan.CategoryParenOpenClose1,
		textscan.CategoryParenOpen2,
		textscan.CategoryParenClose3:
		return gm.Width * sy
	default:
		return gm.Height * sy
	}
}

// supportsAnyCJK 探测字体是否覆盖日/中/韩任一文种。
func supportsAnyCJK(m Metrics, font FontRef) bool {
	return m.SupportsScript(font, textscan.Japanese) ||
		m.SupportsScript(font, textscan.Chinese) ||
		m.SupportsScript(font, textscan.Korean)
}
