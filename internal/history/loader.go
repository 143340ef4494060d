package history

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/spf13/afero"

	tberrors "github.com/Fjolfrin/tbtui/internal/errors"
	"github.com/Fjolfrin/tbtui/internal/logging"
)

// Options controls discovery and parsing.
type Options struct {
	// Root is the directory searched recursively.
	Root string
	// Suffix marks history files, e.g. "_history.csv".
	Suffix string
	// EpochColumn names the integer index column.
	EpochColumn string
	// Fs is the filesystem to read from. Nil means the OS filesystem.
	Fs afero.Fs
}

func (o Options) fs() afero.Fs {
	if o.Fs == nil {
		return afero.NewOsFs()
	}
	return o.Fs
}

// Load discovers every history file under opts.Root and parses each one.
// Tables are returned in discovery order. A malformed file fails the whole
// load, and finding no files at all is reported as NoHistoryFiles.
func Load(opts Options) ([]*Table, error) {
	fsys := opts.fs()

	paths, err := Discover(fsys, opts.Root, opts.Suffix)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, tberrors.NoHistoryFiles(opts.Root, opts.Suffix)
	}

	tables := make([]*Table, 0, len(paths))
	for _, path := range paths {
		t, err := ParseFile(fsys, path, opts.Suffix, opts.EpochColumn)
		if err != nil {
			return nil, err
		}
		logging.Debug("loaded history file", "path", path, "run", t.Name, "rows", t.Len(), "metrics", len(t.Metrics))
		tables = append(tables, t)
	}

	return tables, nil
}

// Discover walks root and returns the paths of all regular files whose
// name ends in suffix, in lexical walk order.
func Discover(fsys afero.Fs, root, suffix string) ([]string, error) {
	var paths []string

	err := afero.Walk(fsys, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		if strings.HasSuffix(info.Name(), suffix) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, tberrors.HistoryReadError(root, err)
	}

	return paths, nil
}

// DisplayName derives a run name from a history file path.
func DisplayName(path, suffix string) string {
	return strings.TrimSuffix(filepath.Base(path), suffix)
}

// ParseFile opens and parses one history file.
func ParseFile(fsys afero.Fs, path, suffix, epochColumn string) (*Table, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, tberrors.HistoryReadError(path, err)
	}
	defer f.Close()

	return Parse(f, DisplayName(path, suffix), path, epochColumn)
}

// Parse reads a history CSV from r. The epoch column is forced to integer;
// every other column must parse as numbers, with missing cells read as NaN.
// A column with no values at all is kept as an all-NaN metric.
func Parse(r io.Reader, name, path, epochColumn string) (*Table, error) {
	df := dataframe.ReadCSV(skipBOM(r),
		dataframe.HasHeader(true),
		dataframe.WithTypes(map[string]series.Type{
			epochColumn: series.Int,
		}),
	)
	if df.Err != nil {
		return nil, tberrors.HistoryParseError(path, df.Err)
	}

	names := df.Names()
	if !slices.Contains(names, epochColumn) {
		return nil, tberrors.MissingEpochColumn(path, epochColumn)
	}

	epochs, err := df.Col(epochColumn).Int()
	if err != nil {
		return nil, tberrors.InvalidColumn(path, epochColumn, "integer", err)
	}

	var metrics []string
	columns := make(map[string][]float64, len(names)-1)
	for _, col := range names {
		if col == epochColumn {
			continue
		}
		s := df.Col(col)
		switch {
		case s.Type() == series.Int, s.Type() == series.Float:
			columns[col] = s.Float()
		case allMissing(s):
			columns[col] = s.Float()
		default:
			return nil, tberrors.InvalidColumn(path, col, "numeric", fmt.Errorf("detected %s values", s.Type()))
		}
		metrics = append(metrics, col)
	}
	if len(metrics) == 0 {
		return nil, tberrors.NoMetricColumns(path)
	}

	return &Table{
		Name:    name,
		Path:    path,
		Epochs:  epochs,
		Metrics: metrics,
		columns: columns,
	}, nil
}

// allMissing reports whether every cell of s is blank or NaN. Type detection
// has nothing to go on for such a column and falls back to strings.
func allMissing(s series.Series) bool {
	for _, v := range s.Records() {
		if v != "" && v != "NaN" {
			return false
		}
	}
	return true
}

// skipBOM drops a leading UTF-8 byte order mark, which spreadsheet exports
// prepend to the first header name.
func skipBOM(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	if b, err := br.Peek(3); err == nil && bytes.Equal(b, utf8BOM) {
		_, _ = br.Discard(3)
	}
	return br
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}
