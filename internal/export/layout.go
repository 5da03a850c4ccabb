package export

// Row arithmetic for both sheets. The cursor is a 0-based offset; the
// returned rows are 1-based spreadsheet rows.
const (
	// goalGap separates consecutive goal tables on the Goal sheet.
	goalGap = 3
	// chartGap places the pie charts right below a tracker table.
	chartGap = 3
	// barOffset places the comparison chart below the last goal block.
	barOffset = 5
)

// Anchor columns of the three per-goal pie charts.
var pieColumns = [3]int{1, 8, 16} // A, H, P

type block struct {
	titleRow int // goal name
	headRow  int // table header
	firstRow int // first data row
	chartRow int // pie chart anchor row (tracker only)
	next     int // cursor after this block
}

func goalBlock(cur, rows int) block {
	return block{
		titleRow: cur + 1,
		headRow:  cur + 2,
		firstRow: cur + 3,
		next:     cur + rows + goalGap,
	}
}

func trackerBlock(cur, rows, minRows int) block {
	return block{
		titleRow: cur + 1,
		headRow:  cur + 2,
		firstRow: cur + 3,
		chartRow: cur + rows + chartGap,
		next:     cur + max(rows+chartGap, minRows),
	}
}

func barRow(cur int) int {
	return cur + barOffset
}
