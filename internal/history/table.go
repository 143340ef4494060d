// Package history discovers and parses experiment history CSV files.
//
// A history file is named <run><suffix> (by default <run>_history.csv),
// has a header row, an integer epoch column and one or more numeric metric
// columns. Each file becomes an immutable Table.
package history

// Table is one parsed history file. All columns have the same length.
type Table struct {
	// Name is the display name: the file name without the history suffix.
	Name string
	// Path is the file the table was read from.
	Path string
	// Epochs holds the epoch column.
	Epochs []int
	// Metrics lists the non-epoch columns in file order.
	Metrics []string

	columns map[string][]float64
}

// NewTable builds a Table from already-typed columns. metrics gives the
// column order; every metric must have an entry in columns.
func NewTable(name, path string, epochs []int, metrics []string, columns map[string][]float64) *Table {
	cols := make(map[string][]float64, len(metrics))
	for _, m := range metrics {
		cols[m] = append([]float64(nil), columns[m]...)
	}
	return &Table{
		Name:    name,
		Path:    path,
		Epochs:  append([]int(nil), epochs...),
		Metrics: append([]string(nil), metrics...),
		columns: cols,
	}
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Epochs)
}

// HasMetric reports whether the table has a metric column with that name.
func (t *Table) HasMetric(metric string) bool {
	_, ok := t.columns[metric]
	return ok
}

// Column returns a copy of the named metric column.
func (t *Table) Column(metric string) ([]float64, bool) {
	col, ok := t.columns[metric]
	if !ok {
		return nil, false
	}
	return append([]float64(nil), col...), true
}
