// Package currencypkg provides rupiah display formatting.
package currencypkg

import "strconv"

// Rupiah renders an integer rupiah amount with the Rp prefix and a dot as
// thousands separator, e.g. Rupiah(100000) == "Rp100.000".
func Rupiah(amount int64) string {
	prefix := "Rp"

	if amount < 0 {
		prefix = "-Rp"
		amount = -amount
	}

	digits := strconv.FormatInt(amount, 10)

	var grouped []byte

	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			grouped = append(grouped, '.')
		}

		grouped = append(grouped, d)
	}

	return prefix + string(grouped)
}
