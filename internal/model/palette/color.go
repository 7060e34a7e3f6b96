package palette

import "unicode/utf16"

var colors = []string{
	"#3b82f6", "#8b5cf6", "#f97316", "#10b981", "#ef4444", "#f59e0b", "#ec4899",
	"#14b8a6", "#6366f1", "#d946ef", "#06b6d4", "#f43f5e",
}

// hash is the 32-bit h*31+c string hash over UTF-16 code units, so colors
// stay stable across clients that hash the same way.
func hash(s string) int32 {
	var h int32
	for _, c := range utf16.Encode([]rune(s)) {
		h = (h << 5) - h + int32(c)
	}
	return h
}

// CategoryColor picks a chart color for a category name.
func CategoryColor(category string) string {
	h := int64(hash(category))
	if h < 0 {
		h = -h
	}
	return colors[h%int64(len(colors))]
}

// Colors assigns a color to each category.
func Colors(categories []string) map[string]string {
	res := make(map[string]string, len(categories))
	for _, c := range categories {
		res[c] = CategoryColor(c)
	}
	return res
}
