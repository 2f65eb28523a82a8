// SPDX-License-Identifier: MIT

package builder

import "strconv"

// IDFn generates a node identifier from its zero-based index.
// It must be pure: the same idx always yields the same id, and distinct
// indices yield distinct ids.
type IDFn func(idx int) string

// DecimalIDFn returns the decimal string of idx, e.g. 0→"0", 42→"42".
func DecimalIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// ExcelColumnIDFn returns the spreadsheet column name for idx:
// 0→"A", 25→"Z", 26→"AA", 701→"ZZ", 702→"AAA". Negative idx yields "".
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		return ""
	}
	// build letters in reverse order
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}
