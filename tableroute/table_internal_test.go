package tableroute

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestFillMask checks that exactly the first length cells are filled.
func TestFillMask(t *testing.T) {
	cases := []struct {
		length, columns int
		want            []bool
	}{
		{5, 3, []bool{true, true, true, true, true, false}},
		{6, 3, []bool{true, true, true, true, true, true}},
		{7, 6, []bool{true, true, true, true, true, true, true, false, false, false, false, false}},
		{2, 1, []bool{true, true}},
	}
	for _, tc := range cases {
		got := fillMask(tc.length, tc.columns)
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("fillMask(%d,%d) mismatch (-want +got):\n%s", tc.length, tc.columns, diff)
		}
	}
}

// TestOrders checks both traversals of a 2×3 table with one placeholder.
//
//	0 1 2
//	3 4 .
func TestOrders(t *testing.T) {
	tbl := newTable(5, 3)
	if tbl.Rows != 2 || tbl.Cols != 3 {
		t.Fatalf("shape = %dx%d; want 2x3", tbl.Rows, tbl.Cols)
	}
	if diff := cmp.Diff([]int{0, 1, 2, 3, 4}, tbl.rowOrder()); diff != "" {
		t.Errorf("rowOrder mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{2, 4, 1, 3, 0}, tbl.routeOrder()); diff != "" {
		t.Errorf("routeOrder mismatch (-want +got):\n%s", diff)
	}
}

// TestOrders_ArePermutations ensures each order visits every filled cell once.
func TestOrders_ArePermutations(t *testing.T) {
	for cols := 1; cols <= 7; cols++ {
		for length := cols + 1; length <= 30; length++ {
			tbl := newTable(length, cols)
			for name, order := range map[string][]int{"row": tbl.rowOrder(), "route": tbl.routeOrder()} {
				if len(order) != length {
					t.Fatalf("%s order len = %d; want %d (cols=%d)", name, len(order), length, cols)
				}
				seen := make([]bool, length)
				for _, i := range order {
					if i < 0 || i >= length || seen[i] {
						t.Fatalf("%s order visits %d badly (length=%d cols=%d)", name, i, length, cols)
					}
					seen[i] = true
				}
			}
		}
	}
}
