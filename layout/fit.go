package layout

import (
	"fmt"

	"github.com/ByLCY/placa/textscan"
)

// 适配求解的几何搜索参数。字号上限是终止性保证的一部分，
// 不能调小，否则可见输出会改变。
const (
	initialFontSize = 10.0
	maxFontSize     = 10000.0

	hStep = 1.1  // 横排的乘法步长
	hFill = 0.9  // 横排的饱和填充率
	vStep = 1.05 // 纵排步长
	vFill = 0.95 // 纵排填充率

	// smallKanaRatio 是小书假名的缩小率。
	smallKanaRatio = 0.55
)

// fitPhase 是适配状态机的状态。
type fitPhase int

const (
	phaseGrowing fitPhase = iota
	phaseStretchingX
	phaseStretchingY
	phaseSaturated
	phaseFailed
)

func (p fitPhase) String() string {
	switch p {
	case phaseGrowing:
		return "growing"
	case phaseStretchingX:
		return "stretching-x"
	case phaseStretchingY:
		return "stretching-y"
	case phaseSaturated:
		return "saturated"
	default:
		return "failed"
	}
}

// extent 是一对宽高（mm）。
type extent struct {
	W, H float64
}

// advanceFit 是状态机的纯转移函数：依据当前度量决定等比放大字号、
// 单轴拉伸或停止。threshold < 1.1 时调用方禁用了各向异性拉伸。
func advanceFit(fit FitResult, text, box extent, threshold, step, fill float64) (FitResult, fitPhase) {
	if fit.FontSize >= maxFontSize || text.W <= 0 || text.H <= 0 {
		return fit, phaseFailed
	}
	switch {
	case text.W*fit.ScaleX < box.W*fill && text.H*fit.ScaleY < box.H*fill:
		fit.FontSize *= step
		return fit, phaseGrowing
	case threshold < 1.1:
		return fit, phaseSaturated
	case text.W*fit.ScaleX < box.W*fill:
		fit.ScaleX *= step
		return fit, phaseStretchingX
	case text.H*fit.ScaleY < box.H*fill:
		fit.ScaleY *= step
		return fit, phaseStretchingY
	default:
		return fit, phaseSaturated
	}
}

// measureRow 返回横排下一串字符的总宽与最大高。
// 宽为逐字 advance 之和，高为字形高度与字体行高的较大者。
func measureRow(m Metrics, font FontRef, sizePt float64, chars []string) (extent, error) {
	fm, err := m.FontExtents(font, sizePt)
	if err != nil {
		return extent{}, err
	}
	text := extent{H: 0}
	for _, ch := range chars {
		gm, err := m.GlyphExtents(font, sizePt, ch)
		if err != nil {
			return extent{}, err
		}
		if text.H < gm.Height {
			text.H = gm.Height
		}
		if text.H < fm.Height {
			text.H = fm.Height
		}
		text.W += gm.XAdvance
	}
	return text, nil
}

// measureColumn 返回纵排下一列字符的最大宽与总高。
// 各类别使用修正后的外框：横棒与括号按旋转后的外框计入，
// 小书假名按缩小后的外框计入，空格沿列方向占用其横向 advance。
func measureColumn(m Metrics, font FontRef, sizePt float64, chars []string) (extent, error) {
	var text extent
	for _, ch := range chars {
		gm, err := m.GlyphExtents(font, sizePt, ch)
		if err != nil {
			return extent{}, err
		}
		switch textscan.ClassifyChar(ch) {
		case textscan.CategorySpace:
			if text.W < gm.Width {
				text.W = gm.Width
			}
			text.H += gm.XAdvance
		case textscan.CategorySmallKana:
			if text.W < gm.Width*smallKanaRatio {
				text.W = gm.Width * smallKanaRatio
			}
			text.H += gm.Height * smallKanaRatio
		case textscan.CategoryHyphenDash,
			textscan.CategoryParenOpenClose1,
			textscan.CategoryParenOpen2,
			textscan.CategoryParenClose3:
			if text.W < gm.Height {
				text.W = gm.Height
			}
			text.H += gm.Width
		default:
			if text.W < gm.Width {
				text.W = gm.Width
			}
			text.H += gm.Height
		}
	}
	return text, nil
}

// solveHorizontal 为一行字符求解字号与缩放。
// box 的宽高必须为正；空行、退化度量或触及字号上限都算适配失败。
func solveHorizontal(m Metrics, font FontRef, chars []string, box extent, threshold float64) (FitResult, error) {
	fit := FitResult{FontSize: initialFontSize, ScaleX: 1, ScaleY: 1}
	if len(chars) == 0 {
		return fit, fmt.Errorf("空行无法适配")
	}
	if box.W <= 0 || box.H <= 0 {
		return fit, fmt.Errorf("条带尺寸非法: %gx%g", box.W, box.H)
	}

	for {
		text, err := measureRow(m, font, fit.FontSize, chars)
		if err != nil {
			return fit, err
		}
		next, phase := advanceFit(fit, text, box, threshold, hStep, hFill)
		if phase == phaseFailed {
			return fit, fmt.Errorf("适配失败: fontSize=%g text=%gx%g", fit.FontSize, text.W, text.H)
		}
		fit = next
		if phase == phaseSaturated {
			break
		}
	}

	// 纵横比封顶：两个检查彼此独立，病态输入下可能同时触发。
	text, err := measureRow(m, font, fit.FontSize, chars)
	if err != nil {
		return fit, err
	}
	n := float64(len(chars))
	if (text.W * fit.ScaleX / n / (text.H * fit.ScaleY)) > threshold {
		fit.ScaleX = threshold * (text.H * fit.ScaleY) * n / text.W
	}
	if (text.H * fit.ScaleY / (text.W * fit.ScaleX / n)) > threshold {
		fit.ScaleY = threshold * (text.W * fit.ScaleX / n) / text.H
	}
	return fit, nil
}

// solveVertical 为一列字符求解字号与缩放。与横排不同之处：
// 步长 1.05、填充率 0.95、按类别修正后的外框参与累计，且纵横比
// 封顶是单个 if/else-if——一次只收缩一个轴。这个不对称继承自
// 既有行为，刻意保留。
func solveVertical(m Metrics, font FontRef, chars []string, box extent, threshold float64) (FitResult, error) {
	fit := FitResult{FontSize: initialFontSize, ScaleX: 1, ScaleY: 1}
	if len(chars) == 0 {
		return fit, fmt.Errorf("空列无法适配")
	}
	if box.W <= 0 || box.H <= 0 {
		return fit, fmt.Errorf("条带尺寸非法: %gx%g", box.W, box.H)
	}

	for {
		text, err := measureColumn(m, font, fit.FontSize, chars)
		if err != nil {
			return fit, err
		}
		next, phase := advanceFit(fit, text, box, threshold, vStep, vFill)
		if phase == phaseFailed {
			return fit, fmt.Errorf("适配失败: fontSize=%g text=%gx%g", fit.FontSize, text.W, text.H)
		}
		fit = next
		if phase == phaseSaturated {
			break
		}
	}

	text, err := measureColumn(m, font, fit.FontSize, chars)
	if err != nil {
		return fit, err
	}
	n := float64(len(chars))
	if (text.W * fit.ScaleX / (text.H * fit.ScaleY / n)) > threshold {
		fit.ScaleX = threshold * (text.H * fit.ScaleY / n) / text.W
	} else if (text.H * fit.ScaleY / n / (text.W * fit.ScaleX)) > threshold {
		fit.ScaleY = threshold * (text.W * fit.ScaleX) * n / text.H
	}
	return fit, nil
}
