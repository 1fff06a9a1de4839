package layout

// 该文件定义布局结果与度量描述，供布局计算、渲染与调试 JSON 共用。
// 除特别说明外，长度单位均为毫米（mm），字号单位为点（pt），
// 页面坐标以左上角为原点、Y 轴向下。

// Result 保存一次布局的全部页面。
type Result struct {
	Pages []Page `json:"pages"`
}

// Page 记录页面尺寸与其上的文本条带。
type Page struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Bands  []Band  `json:"bands"`
}

// Band 是一行（横排）或一列（纵排）文本占据的矩形条带。
// 适配失败的条带只保留底色填充，Chars 为空且 FontSize 为 0。
type Band struct {
	X        float64      `json:"x"`
	Y        float64      `json:"y"`
	Width    float64      `json:"width"`
	Height   float64      `json:"height"`
	Font     FontRef      `json:"font"`
	FontSize float64      `json:"fontSize"` // pt
	Fore     Color        `json:"fore"`
	Back     Color        `json:"back"`
	Chars    []PlacedChar `json:"chars,omitempty"`
}

// PlacedChar 是一条字符绘制指令：渲染器把字形基线原点平移到
// (X,Y)，依次施加 (ScaleX,ScaleY) 缩放与 Rotate 旋转后填充字形。
// ScaleY 为负表示纵排横棒所需的 Y 镜像；Rotate 以度为单位，
// 在 Y 轴向下的坐标系中正值为顺时针。
type PlacedChar struct {
	Char   string  `json:"char"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	ScaleX float64 `json:"scaleX"`
	ScaleY float64 `json:"scaleY"`
	Rotate float64 `json:"rotate,omitempty"`
}

// FontRef 标识一个已向渲染器注册的字体。
type FontRef struct {
	Name string `json:"name"`
}

// GlyphMetrics 描述单个字符在某字体某字号下的墨迹度量（mm）。
// 符号约定与 cairo 相同：YBearing 在基线上方为负。
// 宽高同时为零表示该字形不可渲染，适配器据此判定失败。
type GlyphMetrics struct {
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	XBearing float64 `json:"xBearing"`
	YBearing float64 `json:"yBearing"`
	XAdvance float64 `json:"xAdvance"`
}

// FontMetrics 描述字体在某字号下的整体度量（mm）。
type FontMetrics struct {
	Ascent  float64 `json:"ascent"`
	Descent float64 `json:"descent"`
	Height  float64 `json:"height"` // 行高
}

// FitResult 是适配求解的输出：字号与两轴独立的缩放因子。
type FitResult struct {
	FontSize float64 `json:"fontSize"` // pt
	ScaleX   float64 `json:"scaleX"`
	ScaleY   float64 `json:"scaleY"`
}

// Color 采用 0-255 的 RGB 数值。
type Color struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}
