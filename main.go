package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ByLCY/placa/dsl"
	"github.com/ByLCY/placa/fonts"
	"github.com/ByLCY/placa/layout"
	canvasrenderer "github.com/ByLCY/placa/renderer/canvas"
	"github.com/ByLCY/placa/textscan"
)

const versionString = "placa Version 0.85"

// 等幅探测的字号与容差（pt）。
const (
	pitchProbeSize        = 30.0
	pitchTolerancePt      = 0.25
	defaultText           = "This is\na test."
	substituteNotJapanese = "   Error:   \nNot Japanese font"
	substituteNotChinese  = "   Error:   \nNot Chinese font"
	substituteNotKorean   = "   Error:   \nNot Korean font"
)

type options struct {
	text           string
	out            string
	pageSize       string
	portrait       bool
	font           string
	margin         string
	textColor      string
	backColor      string
	threshold      float64
	lettersPerPage int
	vertical       bool
	yAdjust        string
	fontList       bool
	version        bool
	script         string
	dataJSON       string
	debug          string
}

func main() {
	fs := flag.NewFlagSet("placa", flag.ContinueOnError)
	var opts options
	fs.StringVar(&opts.text, "text", defaultText, "输出文本")
	fs.StringVar(&opts.out, "o", "output.pdf", "输出 PDF 文件名")
	fs.StringVar(&opts.pageSize, "page-size", "A4", "页面规格名或 WIDTHxHEIGHT（毫米）")
	landscape := fs.Bool("landscape", false, "横置页面（默认）")
	fs.BoolVar(&opts.portrait, "portrait", false, "纵置页面")
	fs.StringVar(&opts.font, "font", "", "字体名（默认使用内置字体）")
	fs.StringVar(&opts.margin, "margin", "8", "页边距，毫米")
	fs.StringVar(&opts.textColor, "text-color", "#000000", "文字颜色 #RRGGBB")
	fs.StringVar(&opts.backColor, "back-color", "#FFFFFF", "背景颜色 #RRGGBB")
	fs.Float64Var(&opts.threshold, "threshold", 1.5, "纵横比阈值")
	fs.IntVar(&opts.lettersPerPage, "letters-per-page", -1, "每页字数（-1 不限）")
	fs.BoolVar(&opts.vertical, "vertical", false, "纵排")
	fs.StringVar(&opts.yAdjust, "y-adjust", "0", "整体纵向修正，毫米，正值向上")
	fs.BoolVar(&opts.fontList, "font-list", false, "列出系统字体后退出")
	fs.BoolVar(&opts.version, "version", false, "显示版本信息")
	fs.StringVar(&opts.script, "script", "", "批处理脚本路径（.placa）")
	fs.StringVar(&opts.dataJSON, "data", "", "绑定到脚本的 JSON 数据")
	fs.StringVar(&opts.debug, "debug", "", "布局调试 JSON 输出路径")
	if err := fs.Parse(os.Args[1:]); err != nil {
		os.Exit(1)
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "ERROR: Invalid arguments\n")
		fs.Usage()
		os.Exit(1)
	}
	_ = landscape // 横置是默认值，--landscape 仅为兼容保留

	if opts.version {
		fmt.Println(versionString)
		return
	}
	if opts.fontList {
		for _, name := range fonts.List() {
			fmt.Println(name)
		}
		return
	}

	if err := run(opts); err != nil {
		log.Fatalf("生成 PDF 失败: %v", err)
	}
	fmt.Printf("已生成 PDF：%s\n", opts.out)
}

// run 串联配置解析、布局与渲染。
func run(opts options) error {
	cfg, err := buildConfig(opts)
	if err != nil {
		return err
	}

	r := canvasrenderer.NewRenderer()
	if opts.font != "" {
		data, err := fonts.Resolve(opts.font)
		if err != nil {
			return err
		}
		r.AddFont(opts.font, data)
		cfg.Font = layout.FontRef{Name: opts.font}
	} else {
		r.AddFont(fonts.FallbackName, fonts.Fallback())
		cfg.Font = layout.FontRef{Name: fonts.FallbackName}
	}

	var data any
	if opts.dataJSON != "" {
		if err := json.Unmarshal([]byte(opts.dataJSON), &data); err != nil {
			return fmt.Errorf("解析 data JSON 失败: %w", err)
		}
	}

	jobs, err := collectJobs(opts, cfg, data)
	if err != nil {
		return err
	}

	fmt.Printf("page_width: %g mm, page_height: %g mm\n", cfg.PageWidth, cfg.PageHeight)

	result := &layout.Result{}
	pageNo := 0
	for _, job := range jobs {
		guardScriptMismatch(&job, r)
		reportFontPitch(r, job.Config.Font)

		res, err := layout.Compose(job.Text, job.Config, layout.Options{
			Metrics:   r,
			Fullwidth: textscan.ToFullwidth,
		})
		if err != nil {
			return fmt.Errorf("布局计算失败: %w", err)
		}
		for _, page := range res.Pages {
			pageNo++
			fmt.Printf("Page %d\n", pageNo)
			result.Pages = append(result.Pages, page)
		}
	}

	if opts.debug != "" {
		if err := layout.WriteDebugJSON(result, opts.debug); err != nil {
			return fmt.Errorf("输出调试 JSON 失败: %w", err)
		}
	}

	pdfBytes, err := r.Render(result)
	if err != nil {
		return fmt.Errorf("渲染 PDF 失败: %w", err)
	}
	if err := os.WriteFile(opts.out, pdfBytes, 0o644); err != nil {
		return fmt.Errorf("写入 PDF 文件失败: %w", err)
	}
	return nil
}

// buildConfig 把命令行选项解析成布局配置。
func buildConfig(opts options) (layout.Config, error) {
	var cfg layout.Config

	w, h, err := layout.ParsePageSize(opts.pageSize)
	if err != nil {
		return cfg, err
	}
	// 朝向与规格不符时交换宽高；默认横置。
	if opts.portrait {
		if w > h {
			w, h = h, w
		}
	} else if w < h {
		w, h = h, w
	}
	cfg.PageWidth, cfg.PageHeight = w, h

	marginLen, err := layout.ParseLength(opts.margin)
	if err != nil || !(marginLen.ToMM() > 0) {
		return cfg, fmt.Errorf("页边距非法: %q", opts.margin)
	}
	cfg.Margin = marginLen.ToMM()

	if opts.threshold < 1 {
		return cfg, fmt.Errorf("纵横比阈值必须 >= 1: %g", opts.threshold)
	}
	cfg.Threshold = opts.threshold

	if cfg.TextColor, err = layout.ParseColor(opts.textColor); err != nil {
		return cfg, err
	}
	if cfg.BackColor, err = layout.ParseColor(opts.backColor); err != nil {
		return cfg, err
	}

	if opts.lettersPerPage == 0 {
		return cfg, fmt.Errorf("每页字数不能为 0")
	}
	cfg.LettersPerPage = opts.lettersPerPage
	cfg.Vertical = opts.vertical

	yLen, err := layout.ParseLength(opts.yAdjust)
	if err != nil {
		return cfg, fmt.Errorf("纵向修正非法: %q", opts.yAdjust)
	}
	// 正值向上，与内部 Y 向下坐标相反。
	cfg.YAdjust = -yLen.ToMM()

	return cfg, nil
}

// collectJobs 产出渲染任务：脚本模式下每个 placard 块一个任务，
// 否则是单个由命令行文本构成的任务。
func collectJobs(opts options, cfg layout.Config, data any) ([]dsl.Job, error) {
	defaults := dsl.Job{
		Text:   textscan.ExpandTabs(textscan.Unescape(opts.text)),
		Config: cfg,
	}
	if opts.script == "" {
		return []dsl.Job{defaults}, nil
	}

	file, err := os.Open(opts.script)
	if err != nil {
		return nil, fmt.Errorf("无法打开脚本 %s: %w", opts.script, err)
	}
	defer file.Close()

	script, err := dsl.Parse(file)
	if err != nil {
		return nil, fmt.Errorf("解析脚本失败: %w", err)
	}
	return dsl.BuildJobs(script, defaults, data)
}

// guardScriptMismatch 检查 CJK 文本与字体覆盖是否匹配；不匹配时
// 替换为错误提示文本，退回内置字体并强制横排。
func guardScriptMismatch(job *dsl.Job, m layout.Metrics) {
	substitute := func(text string) {
		job.Text = text
		job.Config.Font = layout.FontRef{Name: fonts.FallbackName}
		job.Config.Vertical = false
	}
	switch {
	case textscan.DetectJapanese(job.Text) != textscan.TierNone:
		if !m.SupportsScript(job.Config.Font, textscan.Japanese) {
			substitute(substituteNotJapanese)
		}
	case textscan.DetectChinese(job.Text):
		if !m.SupportsScript(job.Config.Font, textscan.Chinese) {
			substitute(substituteNotChinese)
		}
	case textscan.DetectKorean(job.Text) != textscan.TierNone:
		if !m.SupportsScript(job.Config.Font, textscan.Korean) {
			substitute(substituteNotKorean)
		}
	}
}

// reportFontPitch 输出字体是等幅还是比例字体。
// 对照字符串按字体覆盖的文种选取。
func reportFontPitch(m layout.Metrics, font layout.FontRef) {
	if isFixedPitch(m, font) {
		fmt.Println("fixed-pitch font")
	} else {
		fmt.Println("proportional font")
	}
}

func isFixedPitch(m layout.Metrics, font layout.FontRef) bool {
	wide, err := m.GlyphExtents(font, pitchProbeSize, "wwww")
	if err != nil {
		return false
	}
	probe := "iiii"
	switch {
	case m.SupportsScript(font, textscan.Japanese):
		probe = "目目"
	case m.SupportsScript(font, textscan.Chinese):
		probe = "沉沉"
	case m.SupportsScript(font, textscan.Korean):
		probe = "작작"
	}
	narrow, err := m.GlyphExtents(font, pitchProbeSize, probe)
	if err != nil {
		return false
	}
	diff := wide.XAdvance - narrow.XAdvance
	if diff < 0 {
		diff = -diff
	}
	return diff < pitchTolerancePt*layout.PtToMm
}
