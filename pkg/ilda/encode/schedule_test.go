// ABOUTME: Tests for fair remainder distribution
// ABOUTME: Exactness, spread, and concrete allocation checks
package encode

import "testing"

func TestGroupSizeSumsToTotal(t *testing.T) {
	for total := 0; total <= 60; total++ {
		for groups := 1; groups <= 12; groups++ {
			sum := 0
			for i := 0; i < groups; i++ {
				sum += groupSize(total, groups, i)
			}
			if sum != total {
				t.Fatalf("groupSize(%d, %d, ·) sums to %d", total, groups, sum)
			}
		}
	}
}

func TestGroupSizeSpreadWithinOne(t *testing.T) {
	for total := 0; total <= 60; total++ {
		for groups := 1; groups <= 12; groups++ {
			min, max := total, 0
			for i := 0; i < groups; i++ {
				size := groupSize(total, groups, i)
				if size < min {
					min = size
				}
				if size > max {
					max = size
				}
			}
			if max-min > 1 {
				t.Fatalf("groupSize(%d, %d, ·) spread %d exceeds 1", total, groups, max-min)
			}
		}
	}
}

func TestGroupSizeConcrete(t *testing.T) {
	tests := []struct {
		name          string
		total, groups int
		expected      []int
	}{
		{"even split", 100, 10, []int{10, 10, 10, 10, 10, 10, 10, 10, 10, 10}},
		{"one remainder", 10, 3, []int{3, 3, 4}},
		{"spread not clustered", 10, 4, []int{2, 3, 2, 3}},
		{"fewer than groups", 2, 5, []int{0, 0, 1, 0, 1}},
		{"zero total", 0, 3, []int{0, 0, 0}},
		{"single group", 7, 1, []int{7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i, expected := range tt.expected {
				if got := groupSize(tt.total, tt.groups, i); got != expected {
					t.Errorf("groupSize(%d, %d, %d): expected %d, got %d",
						tt.total, tt.groups, i, expected, got)
				}
			}
		})
	}
}
