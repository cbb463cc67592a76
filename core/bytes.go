package core

import "fmt"

var byteUnits = []string{"B", "KB", "MB", "GB"}

// HumanBytes formats a byte count with binary multiples. Whole bytes print
// without decimals; larger units use one decimal place and GB is the largest
// unit used.
func HumanBytes(n int64) string {
	if n < 1024 {
		return fmt.Sprintf("%dB", n)
	}
	v := float64(n)
	for i, unit := range byteUnits {
		if v < 1024 || i == len(byteUnits)-1 {
			return fmt.Sprintf("%.1f%s", v, unit)
		}
		v /= 1024
	}
	return fmt.Sprintf("%.1fGB", v)
}
