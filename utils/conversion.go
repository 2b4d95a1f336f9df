// Package utils holds shared formatting helpers.
package utils

import (
	"fmt"
	"strconv"
)

const (
	kebibyte = float64(1 << 10)
	mebibyte = float64(1 << 20)
	gebibyte = float64(1 << 30)
)

// FormatBytes renders a byte quantity with a binary unit suffix
func FormatBytes(value int64) string {
	v := float64(value)
	switch {
	case v >= gebibyte:
		return strconv.FormatFloat(v/gebibyte, 'f', 2, 64) + "GB"
	case v >= mebibyte:
		return strconv.FormatFloat(v/mebibyte, 'f', 2, 64) + "MB"
	case v >= kebibyte:
		return strconv.FormatFloat(v/kebibyte, 'f', -1, 64) + "KB"
	}
	return fmt.Sprintf("%dB", value)
}

// FormatPages renders a page count as a byte quantity
func FormatPages(pages int64, pageSize int64) string {
	return FormatBytes(pages * pageSize)
}
