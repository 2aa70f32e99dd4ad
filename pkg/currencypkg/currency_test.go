package currencypkg

import "testing"

func TestRupiah(t *testing.T) {
	testCases := []struct {
		amount int64
		want   string
	}{
		{0, "Rp0"},
		{5, "Rp5"},
		{999, "Rp999"},
		{1000, "Rp1.000"},
		{8500, "Rp8.500"},
		{26000, "Rp26.000"},
		{100000, "Rp100.000"},
		{1234567, "Rp1.234.567"},
		{-26000, "-Rp26.000"},
	}

	for _, tc := range testCases {
		if got := Rupiah(tc.amount); got != tc.want {
			t.Errorf("Rupiah(%d) = %q, want %q", tc.amount, got, tc.want)
		}
	}
}
