package dsl

import (
	"fmt"
	"strconv"

	"github.com/ByLCY/placa/layout"
	"github.com/ByLCY/placa/textscan"
)

// Job 是脚本里一个 placard 块展开后的渲染任务。
type Job struct {
	Text   string
	Config layout.Config
}

// BuildJobs 把脚本展开成任务列表：每个块从 defaults 出发，
// 依次应用自己的键值覆盖。data 非空时 text 里的 ${...} 占位符
// 会对它求值。
func BuildJobs(script *Script, defaults Job, data any) ([]Job, error) {
	if script == nil || len(script.Placards) == 0 {
		return nil, fmt.Errorf("脚本里没有 placard 块")
	}
	jobs := make([]Job, 0, len(script.Placards))
	for i, placard := range script.Placards {
		job := defaults
		orientation := ""
		for _, entry := range placard.Entries {
			if entry.Key == "orientation" {
				orientation = entry.Value.Text()
				continue
			}
			if err := applyEntry(&job, entry); err != nil {
				return nil, fmt.Errorf("第 %d 个 placard 块（%s）: %w", i+1, entry.Pos, err)
			}
		}
		// 朝向最后统一修正，避免受键出现顺序影响。
		if err := applyOrientation(&job.Config, orientation); err != nil {
			return nil, fmt.Errorf("第 %d 个 placard 块: %w", i+1, err)
		}
		job.Text = textscan.ExpandTabs(Interpolate(job.Text, data))
		jobs = append(jobs, job)
	}
	return jobs, nil
}

func applyOrientation(cfg *layout.Config, orientation string) error {
	switch orientation {
	case "":
	case "landscape":
		if cfg.PageWidth < cfg.PageHeight {
			cfg.PageWidth, cfg.PageHeight = cfg.PageHeight, cfg.PageWidth
		}
	case "portrait":
		if cfg.PageWidth > cfg.PageHeight {
			cfg.PageWidth, cfg.PageHeight = cfg.PageHeight, cfg.PageWidth
		}
	default:
		return fmt.Errorf("orientation 只能是 landscape 或 portrait: %q", orientation)
	}
	return nil
}

func applyEntry(job *Job, entry *Entry) error {
	raw := entry.Value.Text()
	switch entry.Key {
	case "text":
		job.Text = raw
	case "font":
		job.Config.Font = layout.FontRef{Name: raw}
	case "page-size":
		w, h, err := layout.ParsePageSize(raw)
		if err != nil {
			return err
		}
		job.Config.PageWidth, job.Config.PageHeight = w, h
	case "vertical":
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("vertical 需要布尔值: %q", raw)
		}
		job.Config.Vertical = b
	case "margin":
		l, err := layout.ParseLength(raw)
		if err != nil {
			return fmt.Errorf("margin 非法: %w", err)
		}
		job.Config.Margin = l.ToMM()
	case "threshold":
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil || f < 1 {
			return fmt.Errorf("threshold 必须是 >= 1 的数值: %q", raw)
		}
		job.Config.Threshold = f
	case "text-color":
		c, err := layout.ParseColor(raw)
		if err != nil {
			return err
		}
		job.Config.TextColor = c
	case "back-color":
		c, err := layout.ParseColor(raw)
		if err != nil {
			return err
		}
		job.Config.BackColor = c
	case "letters-per-page":
		n, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("letters-per-page 需要整数: %q", raw)
		}
		job.Config.LettersPerPage = n
	case "y-adjust":
		l, err := layout.ParseLength(raw)
		if err != nil {
			return fmt.Errorf("y-adjust 非法: %w", err)
		}
		// 正值向上，与内部 Y 向下坐标相反。
		job.Config.YAdjust = -l.ToMM()
	default:
		return fmt.Errorf("未知的键 %q", entry.Key)
	}
	return nil
}
