package layout

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// pageSizeEntry 把页面规格名映射到毫米尺寸。
type pageSizeEntry struct {
	name          string
	width, height float64 // mm
}

var pageSizes = []pageSizeEntry{
	// A0...A10
	{"A0", 1189, 841},
	{"A1", 841, 594},
	{"A2", 594, 420},
	{"A3", 420, 297},
	{"A4", 297, 210},
	{"A5", 210, 148},
	{"A6", 148, 105},
	{"A7", 105, 74},
	{"A8", 74, 52},
	{"A9", 52, 37},
	{"A10", 37, 26},
	// B0...B10
	{"B0", 1456, 1030},
	{"B1", 1030, 728},
	{"B2", 728, 515},
	{"B3", 515, 364},
	{"B4", 364, 257},
	{"B5", 257, 182},
	{"B6", 182, 128},
	{"B7", 128, 91},
	{"B8", 91, 64},
	{"B9", 64, 45},
	{"B10", 45, 32},
	// Letter, Legal etc.
	{"Letter", 279, 216},
	{"Legal", 356, 216},
	{"Tabloid", 432, 279},
	{"Ledger", 279, 432},
	{"Junior Legal", 127, 203},
	{"Half Letter", 140, 216},
	{"Government Letter", 203, 267},
	{"Government Legal", 216, 330},
	// ANSI sizes
	{"ANSI A", 216, 279},
	{"ANSI B", 279, 432},
	{"ANSI C", 432, 559},
	{"ANSI D", 559, 864},
	{"ANSI E", 864, 1118},
	// Arch sizes
	{"Arch A", 229, 305},
	{"Arch B", 305, 457},
	{"Arch C", 457, 610},
	{"Arch D", 610, 914},
	{"Arch E", 914, 1219},
	{"Arch E1", 762, 1067},
	{"Arch E2", 660, 965},
	{"Arch E3", 686, 991},
}

// ParsePageSize 解析页面规格：命名规格（忽略大小写）或
// WIDTHxHEIGHT 字面量（毫米）。两个数值都必须为有限正数。
func ParsePageSize(arg string) (width, height float64, err error) {
	for _, entry := range pageSizes {
		if strings.EqualFold(arg, entry.name) {
			return entry.width, entry.height, nil
		}
	}
	parts := strings.SplitN(arg, "x", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("无法识别的页面规格 %q", arg)
	}
	width, errW := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	height, errH := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if errW != nil || errH != nil {
		return 0, 0, fmt.Errorf("无法识别的页面规格 %q", arg)
	}
	if !(width > 0) || !(height > 0) || math.IsInf(width, 0) || math.IsInf(height, 0) {
		return 0, 0, fmt.Errorf("页面规格 %q 的尺寸必须为正数", arg)
	}
	return width, height, nil
}

// PageSizeNames 返回全部命名规格，按表内顺序。
func PageSizeNames() []string {
	names := make([]string, 0, len(pageSizes))
	for _, entry := range pageSizes {
		names = append(names, entry.name)
	}
	return names
}

// ParseColor 解析 #RGB 或 #RRGGBB 形式的颜色。
func ParseColor(arg string) (Color, error) {
	s := strings.TrimPrefix(arg, "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return Color{}, fmt.Errorf("无法识别的颜色 %q", arg)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("无法识别的颜色 %q", arg)
	}
	return Color{R: int(v >> 16 & 0xFF), G: int(v >> 8 & 0xFF), B: int(v & 0xFF)}, nil
}
