package layout

import "github.com/ByLCY/placa/textscan"

// Config 是一次布局的全部只读配置；组件之间不共享任何进程级状态。
type Config struct {
	Font           FontRef
	PageWidth      float64 // mm，已按方向调换
	PageHeight     float64 // mm
	Margin         float64 // mm
	TextColor      Color
	BackColor      Color
	Threshold      float64 // 纵横比阈值，>=1；<1.1 时禁用各向异性拉伸
	YAdjust        float64 // mm，附加在纵向位置上的整体修正（向下为正）
	Vertical       bool
	LettersPerPage int // <=0 表示不限
}

// Options 配置布局阶段注入的外部能力。
type Options struct {
	// Metrics 提供字形与字体度量，必填。
	Metrics Metrics
	// Fullwidth 是区域设置相关的半角转全角映射；为 nil 时纵排
	// 跳过映射步骤。
	Fullwidth func(string) string
}

// Metrics 是文本度量后端的契约。实现必须对相同输入返回确定结果，
// 并随字号连续缩放，因为适配求解会在每轮迭代重新采样。
type Metrics interface {
	// GlyphExtents 返回单个字符的墨迹度量。字符之间不做字距或
	// 整形，每个字符独立测量。
	GlyphExtents(font FontRef, sizePt float64, ch string) (GlyphMetrics, error)
	// FontExtents 返回字体的整体度量。
	FontExtents(font FontRef, sizePt float64) (FontMetrics, error)
	// SupportsScript 探测字体是否覆盖某个 CJK 文种的代表字形。
	SupportsScript(font FontRef, script textscan.Script) bool
}
