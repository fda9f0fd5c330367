// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/fsx

package output

import "strconv"

var sizePrefixes = [...]string{"", "k", "M", "G", "T"}

// HumanBytes formats n with decimal prefixes up to terabytes.
// Division truncates and a unit is kept until the value exceeds 1000,
// so 1000 stays "1000B" and 1999 is "1kB".
func HumanBytes(n int64) string {
	prefix := 0
	for n > 1000 && prefix+1 < len(sizePrefixes) {
		n /= 1000
		prefix++
	}

	return strconv.FormatInt(n, 10) + sizePrefixes[prefix] + "B"
}
