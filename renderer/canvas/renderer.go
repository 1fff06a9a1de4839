package canvasrenderer

import (
	"bytes"
	"fmt"
	"image/color"
	"sync"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"

	"github.com/ByLCY/placa/fonts"
	"github.com/ByLCY/placa/layout"
	"github.com/ByLCY/placa/renderer"
	"github.com/ByLCY/placa/textscan"
)

// 文种覆盖探测用的代表字符与字号。字形外框任一边不足 1mm
// 视为空壳字形（tofu），判定为不覆盖。
const (
	probeFontSize  = 30.0
	probeMinExtent = 1.0
)

var scriptProbes = map[textscan.Script]rune{
	textscan.Japanese: 'あ',
	textscan.Chinese:  '沉',
	textscan.Korean:   '작',
}

// Renderer 基于 github.com/tdewolff/canvas 绘制布局结果，
// 同时作为 layout.Metrics 的度量后端：布局与渲染共用同一套
// 字体面，保证度量与最终字形一致。
type Renderer struct {
	// injected resources
	fontBlobs map[string][]byte // by font name

	fontMu         sync.Mutex
	fontFamilies   map[string]*canvas.FontFamily
	fallbackFamily *canvas.FontFamily
}

var (
	_ renderer.Renderer = (*Renderer)(nil)
	_ layout.Metrics    = (*Renderer)(nil)
)

// Options configures the canvas renderer.
type Options struct {
	Fonts map[string][]byte // 按名字注入的字体数据
}

// NewRenderer creates a canvas-based renderer.
func NewRenderer() *Renderer { return NewRendererWithOptions(Options{}) }

// NewRendererWithOptions creates a renderer with injected font resources.
func NewRendererWithOptions(opts Options) *Renderer {
	r := &Renderer{
		fontBlobs:    map[string][]byte{},
		fontFamilies: map[string]*canvas.FontFamily{},
	}
	for name, data := range opts.Fonts {
		if name == "" || len(data) == 0 {
			continue
		}
		r.fontBlobs[name] = data
	}
	return r
}

// AddFont 注册一份字体数据，之后可用 layout.FontRef{Name: name} 引用。
func (r *Renderer) AddFont(name string, data []byte) {
	if name == "" || len(data) == 0 {
		return
	}
	r.fontMu.Lock()
	r.fontBlobs[name] = data
	delete(r.fontFamilies, name)
	r.fontMu.Unlock()
}

// Render renders the result into a PDF byte slice.
func (r *Renderer) Render(result *layout.Result) ([]byte, error) {
	if result == nil || len(result.Pages) == 0 {
		return nil, fmt.Errorf("缺少可渲染的页面")
	}

	var buf bytes.Buffer
	writer := pdf.New(&buf, result.Pages[0].Width, result.Pages[0].Height, nil)
	for i, page := range result.Pages {
		if i > 0 {
			writer.NewPage(page.Width, page.Height)
		}
		c := canvas.New(page.Width, page.Height)
		ctx := canvas.NewContext(c)
		if err := r.drawPage(ctx, page); err != nil {
			return nil, err
		}
		c.RenderTo(writer)
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("写入 PDF 失败: %w", err)
	}
	return buf.Bytes(), nil
}

// drawPage 绘制单页：先铺条带底色，再逐字绘制字形轮廓。
// 布局坐标以左上角为原点、Y 向下；canvas 默认是笛卡尔坐标，
// 条带矩形做算术翻转，字形走矩阵共轭（见 charMatrix）。
func (r *Renderer) drawPage(ctx *canvas.Context, page layout.Page) error {
	for _, band := range page.Bands {
		ctx.SetFillColor(colorFromLayout(band.Back))
		ctx.SetStrokeColor(canvas.Transparent)
		ctx.DrawPath(band.X, page.Height-band.Y-band.Height, canvas.Rectangle(band.Width, band.Height))

		if len(band.Chars) == 0 {
			continue
		}
		face, err := r.fontFace(band.Font, band.FontSize)
		if err != nil {
			return err
		}
		ctx.SetFillColor(colorFromLayout(band.Fore))
		for _, pc := range band.Chars {
			path, _, err := face.ToPath(pc.Char)
			if err != nil {
				return fmt.Errorf("取字形 %q 失败: %w", pc.Char, err)
			}
			if path == nil || path.Empty() {
				continue
			}
			ctx.DrawPath(0, 0, path.Transform(charMatrix(pc, page.Height)))
		}
	}
	return nil
}

// charMatrix 把布局给出的 Y 向下变换共轭到 canvas 的笛卡尔坐标：
// flipPage·(T·S·R)·flipGlyph，其中 flipGlyph 先把 canvas 的 Y 向上
// 字形翻到 Y 向下字形空间，flipPage 再把整页翻回来。
func charMatrix(pc layout.PlacedChar, pageHeight float64) canvas.Matrix {
	m := canvas.Identity.
		Translate(pc.X, pc.Y).
		Scale(pc.ScaleX, pc.ScaleY).
		Rotate(pc.Rotate)
	flipPage := canvas.Identity.Translate(0, pageHeight).Scale(1, -1)
	return flipPage.Mul(m).Scale(1, -1)
}

// GlyphExtents 实现 layout.Metrics：字形外框与步进，毫米单位。
// XBearing/YBearing 采用 Y 向下坐标的符号约定（YBearing 通常为负）。
func (r *Renderer) GlyphExtents(font layout.FontRef, sizePt float64, ch string) (layout.GlyphMetrics, error) {
	face, err := r.fontFace(font, sizePt)
	if err != nil {
		return layout.GlyphMetrics{}, err
	}
	path, advance, err := face.ToPath(ch)
	if err != nil {
		return layout.GlyphMetrics{}, fmt.Errorf("度量字形 %q 失败: %w", ch, err)
	}
	if path == nil || path.Empty() {
		// 空白字形只有步进。
		return layout.GlyphMetrics{XAdvance: advance}, nil
	}
	bounds := path.Bounds()
	return layout.GlyphMetrics{
		Width:    bounds.W(),
		Height:   bounds.H(),
		XBearing: bounds.X0,
		YBearing: -bounds.Y1,
		XAdvance: advance,
	}, nil
}

// FontExtents 实现 layout.Metrics：字体整体度量。
func (r *Renderer) FontExtents(font layout.FontRef, sizePt float64) (layout.FontMetrics, error) {
	face, err := r.fontFace(font, sizePt)
	if err != nil {
		return layout.FontMetrics{}, err
	}
	metrics := face.Metrics()
	return layout.FontMetrics{
		Ascent:  metrics.Ascent,
		Descent: metrics.Descent,
		Height:  metrics.LineHeight,
	}, nil
}

// SupportsScript 实现 layout.Metrics：用代表字符探测字体覆盖。
// cmap 里没有字形、或外框小到只剩占位框的都算不覆盖。
func (r *Renderer) SupportsScript(font layout.FontRef, script textscan.Script) bool {
	probe, ok := scriptProbes[script]
	if !ok {
		return false
	}
	face, err := r.fontFace(font, probeFontSize)
	if err != nil {
		return false
	}
	if face.Font == nil || face.Font.GlyphIndex(probe) == 0 {
		return false
	}
	gm, err := r.GlyphExtents(font, probeFontSize, string(probe))
	if err != nil {
		return false
	}
	return gm.Width >= probeMinExtent && gm.Height >= probeMinExtent
}

func (r *Renderer) fontFace(font layout.FontRef, sizePt float64) (*canvas.FontFace, error) {
	family, err := r.ensureFontFamily(font)
	if err != nil {
		return nil, err
	}
	return family.Face(sizePt, canvas.Black, canvas.FontRegular, canvas.FontNormal), nil
}

func (r *Renderer) ensureFontFamily(font layout.FontRef) (*canvas.FontFamily, error) {
	r.fontMu.Lock()
	defer r.fontMu.Unlock()

	if family, ok := r.fontFamilies[font.Name]; ok {
		return family, nil
	}

	data, ok := r.fontBlobs[font.Name]
	if !ok {
		fallback, err := r.fallbackLocked()
		if err != nil {
			return nil, fmt.Errorf("字体 %q 未注册且内置字体不可用: %w", font.Name, err)
		}
		r.fontFamilies[font.Name] = fallback
		return fallback, nil
	}

	family := canvas.NewFontFamily(font.Name)
	if err := family.LoadFont(data, 0, canvas.FontRegular); err != nil {
		return nil, fmt.Errorf("加载字体 %q 失败: %w", font.Name, err)
	}
	r.fontFamilies[font.Name] = family
	return family, nil
}

func (r *Renderer) fallbackLocked() (*canvas.FontFamily, error) {
	if r.fallbackFamily != nil {
		return r.fallbackFamily, nil
	}
	family := canvas.NewFontFamily("placa-fallback")
	if err := family.LoadFont(fonts.Fallback(), 0, canvas.FontRegular); err != nil {
		return nil, err
	}
	r.fallbackFamily = family
	return family, nil
}

func colorFromLayout(c layout.Color) color.Color {
	return canvas.RGBA(float64(c.R)/255.0, float64(c.G)/255.0, float64(c.B)/255.0, 1.0)
}
