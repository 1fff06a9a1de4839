package layout

import (
	"fmt"
	"strings"

	"github.com/ByLCY/placa/textscan"
)

// Compose 把整篇文本布局成一页或多页看板。
// 文本应当已经完成转义还原与制表符展开。单个条带适配失败
// 不会中断整体布局，对应条带只保留底色。
func Compose(text string, cfg Config, opts Options) (*Result, error) {
	if opts.Metrics == nil {
		return nil, fmt.Errorf("layout: 缺少度量后端 Metrics")
	}
	if cfg.PageWidth <= 0 || cfg.PageHeight <= 0 {
		return nil, fmt.Errorf("layout: 页面尺寸非法: %gx%g", cfg.PageWidth, cfg.PageHeight)
	}
	if cfg.Threshold < 1 {
		return nil, fmt.Errorf("layout: 纵横比阈值必须 >= 1: %g", cfg.Threshold)
	}

	pageTexts := []string{text}
	if cfg.LettersPerPage > 0 {
		pageTexts = chunkByLetters(text, cfg.LettersPerPage)
	}

	res := &Result{}
	for _, pageText := range pageTexts {
		res.Pages = append(res.Pages, composePage(pageText, cfg, opts))
	}
	return res, nil
}

// composePage 布局单页：按换行拆成行，横排时每行一个水平条带，
// 纵排时每行一列、从右往左排布。
func composePage(text string, cfg Config, opts Options) Page {
	rows := SplitRows(text)
	page := Page{Width: cfg.PageWidth, Height: cfg.PageHeight}

	margin := cfg.Margin
	printableWidth := cfg.PageWidth - 2*margin
	printableHeight := cfg.PageHeight - 2*margin
	n := float64(len(rows))

	if cfg.Vertical {
		bandWidth := (cfg.PageWidth - margin*(n+1)) / n
		x := 0.0
		for _, row := range rows {
			x += margin
			// 第 0 列在最右侧。
			x0 := (2*margin + printableWidth) - (x + bandWidth)
			band := newBand(cfg, x0, margin, bandWidth, printableHeight)
			if row != "" {
				// 适配失败时条带保持空白。
				_ = layoutVertical(opts.Metrics, cfg, &band, row, opts.Fullwidth)
			}
			page.Bands = append(page.Bands, band)
			x += bandWidth
		}
		return page
	}

	bandHeight := (cfg.PageHeight - margin*(n+1)) / n
	y := margin
	for _, row := range rows {
		band := newBand(cfg, margin, y, printableWidth, bandHeight)
		if row != "" {
			_ = layoutHorizontal(opts.Metrics, cfg, &band, row)
		}
		page.Bands = append(page.Bands, band)
		y += bandHeight + margin
	}
	return page
}

func newBand(cfg Config, x, y, w, h float64) Band {
	return Band{
		X:      x,
		Y:      y,
		Width:  w,
		Height: h,
		Font:   cfg.Font,
		Fore:   cfg.TextColor,
		Back:   cfg.BackColor,
	}
}

// SplitRows 把文本按换行拆成行；CRLF 与孤立 CR 先归一为 LF。
func SplitRows(text string) []string {
	s := strings.ReplaceAll(text, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return strings.Split(s, "\n")
}

// chunkByLetters 实现每页字数模式：剔除全部空白后按固定字数
// 切成页，页数为 ceil(n/k)。
func chunkByLetters(text string, k int) []string {
	stripped := StripWhitespace(text)
	chars := textscan.SplitChars(stripped)
	if len(chars) == 0 {
		return nil
	}
	var pages []string
	for i := 0; i < len(chars); i += k {
		end := i + k
		if end > len(chars) {
			end = len(chars)
		}
		pages = append(pages, strings.Join(chars[i:end], ""))
	}
	return pages
}

// StripWhitespace 删除半角/全角空格、制表符与换行。
func StripWhitespace(text string) string {
	replacer := strings.NewReplacer(" ", "", "\t", "", "\r", "", "\n", "", "　", "")
	return replacer.Replace(text)
}
