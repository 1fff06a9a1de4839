package layout

import (
	"github.com/ByLCY/placa/textscan"
)

// layoutHorizontal 把一行文本适配进条带并生成逐字绘制指令。
// 字符从左到右排布，行首行尾与字符之间共 N+1 个等宽空隙，
// 使整行在条带内居中而不是左对齐；行在条带内垂直居中，
// 基线位于各字符单元顶部下方 ascent·scaleY 处。
func layoutHorizontal(m Metrics, cfg Config, band *Band, text string) error {
	chars := textscan.SplitChars(text)
	fit, err := solveHorizontal(m, cfg.Font, chars, extent{W: band.Width, H: band.Height}, cfg.Threshold)
	if err != nil {
		return err
	}

	fm, err := m.FontExtents(cfg.Font, fit.FontSize)
	if err != nil {
		return err
	}

	totalWidth := 0.0
	glyphs := make([]GlyphMetrics, len(chars))
	for i, ch := range chars {
		gm, err := m.GlyphExtents(cfg.Font, fit.FontSize, ch)
		if err != nil {
			return err
		}
		glyphs[i] = gm
		totalWidth += gm.XAdvance
	}
	totalWidth *= fit.ScaleX

	gap := (band.Width - totalWidth) / float64(len(chars)+1)
	x := band.X
	top := band.Y + (band.Height-fm.Height*fit.ScaleY)/2 + cfg.YAdjust
	baseline := top + fm.Ascent*fit.ScaleY

	band.FontSize = fit.FontSize
	for i, ch := range chars {
		x += gap
		band.Chars = append(band.Chars, PlacedChar{
			Char:   ch,
			X:      x,
			Y:      baseline,
			ScaleX: fit.ScaleX,
			ScaleY: fit.ScaleY,
		})
		x += glyphs[i].XAdvance * fit.ScaleX
	}
	return nil
}
