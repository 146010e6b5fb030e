// internal/app/system/progress/progress_test.go
package progress

import "testing"

func TestPercent(t *testing.T) {
	cases := []struct {
		name           string
		current, total int
		want           int
	}{
		{"first of three", 1, 3, 33},
		{"second of three", 2, 3, 67},
		{"complete", 3, 3, 100},
		{"zero total", 1, 0, 0},
		{"negative total", 1, -2, 0},
		{"over-counted clamps", 5, 3, 100},
		{"negative current clamps", -1, 3, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Percent(tc.current, tc.total); got != tc.want {
				t.Errorf("Percent(%d, %d) = %d, want %d", tc.current, tc.total, got, tc.want)
			}
		})
	}
}
