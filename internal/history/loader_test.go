package history

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/spf13/afero"

	tberrors "github.com/Fjolfrin/tbtui/internal/errors"
)

const run1CSV = `epoch,loss
0,10.0
1,9.0
2,8.0
3,7.0
4,6.0
5,5.0
6,4.0
7,3.0
8,2.0
9,1.0
`

const run2CSV = `epoch,loss
0,5.0
1,3.0
2,6.0
3,2.0
4,7.0
5,1.5
6,8.0
7,1.5
8,9.0
9,4.0
`

func newFs(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	for path, content := range files {
		if err := afero.WriteFile(fs, path, []byte(content), 0644); err != nil {
			t.Fatalf("WriteFile(%s) error = %v", path, err)
		}
	}
	return fs
}

func defaultOptions(fs afero.Fs) Options {
	return Options{Root: "runs", Suffix: "_history.csv", EpochColumn: "epoch", Fs: fs}
}

func TestLoad_TwoRuns(t *testing.T) {
	fs := newFs(t, map[string]string{
		"runs/run1_history.csv": run1CSV,
		"runs/run2_history.csv": run2CSV,
	})

	tables, err := Load(defaultOptions(fs))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(tables) != 2 {
		t.Fatalf("Load() returned %d tables, want 2", len(tables))
	}
	if tables[0].Name != "run1" || tables[1].Name != "run2" {
		t.Errorf("names = %q, %q; want run1, run2", tables[0].Name, tables[1].Name)
	}

	run1 := tables[0]
	if run1.Len() != 10 {
		t.Errorf("run1.Len() = %d, want 10", run1.Len())
	}
	if len(run1.Metrics) != 1 || run1.Metrics[0] != "loss" {
		t.Errorf("run1.Metrics = %v, want [loss]", run1.Metrics)
	}
	if run1.HasMetric("epoch") {
		t.Error("epoch must not be listed as a metric")
	}
	loss, ok := run1.Column("loss")
	if !ok {
		t.Fatal("run1 should have a loss column")
	}
	if loss[0] != 10.0 || loss[9] != 1.0 {
		t.Errorf("loss = %v", loss)
	}
	if run1.Epochs[9] != 9 {
		t.Errorf("Epochs[9] = %d, want 9", run1.Epochs[9])
	}
}

func TestLoad_RecursiveDiscovery(t *testing.T) {
	fs := newFs(t, map[string]string{
		"runs/b/deep/run3_history.csv": run1CSV,
		"runs/a/run1_history.csv":      run1CSV,
		"runs/notes.csv":               "epoch,loss\n0,1\n",
		"runs/run2_history.csv.bak":    run1CSV,
	})

	tables, err := Load(defaultOptions(fs))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	var names []string
	for _, tbl := range tables {
		names = append(names, tbl.Name)
	}
	if strings.Join(names, ",") != "run1,run3" {
		t.Errorf("names = %v, want [run1 run3] in walk order", names)
	}
}

func TestLoad_NoFiles(t *testing.T) {
	fs := newFs(t, map[string]string{
		"runs/readme.txt": "nothing here",
	})

	_, err := Load(defaultOptions(fs))
	if err == nil {
		t.Fatal("Load() should fail when no history files exist")
	}
	if !errors.Is(err, tberrors.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestLoad_MissingRoot(t *testing.T) {
	_, err := Load(defaultOptions(afero.NewMemMapFs()))
	if !errors.Is(err, tberrors.ErrHistory) {
		t.Errorf("expected ErrHistory for missing root, got %v", err)
	}
}

func TestLoad_MalformedFileFailsWholeLoad(t *testing.T) {
	fs := newFs(t, map[string]string{
		"runs/good_history.csv": run1CSV,
		"runs/zbad_history.csv": "epoch,loss\n0,1.0\n1,2.0,3.0\n",
	})

	_, err := Load(defaultOptions(fs))
	if !errors.Is(err, tberrors.ErrHistory) {
		t.Fatalf("expected ErrHistory, got %v", err)
	}
	var te *tberrors.TbtuiError
	if errors.As(err, &te) && te.Details["path"] != "runs/zbad_history.csv" {
		t.Errorf("error should name the bad file, got %q", te.Details["path"])
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name       string
		csv        string
		wantErr    bool
		wantColumn string
		metrics    []string
	}{
		{
			name:    "metrics keep file order",
			csv:     "epoch,loss,acc,val_loss\n0,1.5,0.2,1.7\n1,1.2,0.4,1.3\n",
			metrics: []string{"loss", "acc", "val_loss"},
		},
		{
			name:    "epoch need not be first",
			csv:     "loss,epoch\n1.0,0\n0.5,1\n",
			metrics: []string{"loss"},
		},
		{
			name:    "integer metric column",
			csv:     "epoch,count\n0,3\n1,4\n",
			metrics: []string{"count"},
		},
		{
			name:       "missing epoch column",
			csv:        "step,loss\n0,1.0\n",
			wantErr:    true,
			wantColumn: "epoch",
		},
		{
			name:       "non-numeric metric",
			csv:        "epoch,note\n0,warmup\n1,steady\n",
			wantErr:    true,
			wantColumn: "note",
		},
		{
			name:    "epoch only",
			csv:     "epoch\n0\n1\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl, err := Parse(strings.NewReader(tt.csv), "run", "run_history.csv", "epoch")
			if tt.wantErr {
				if err == nil {
					t.Fatal("Parse() should fail")
				}
				if !errors.Is(err, tberrors.ErrHistory) {
					t.Errorf("expected ErrHistory, got %v", err)
				}
				var te *tberrors.TbtuiError
				if tt.wantColumn != "" && errors.As(err, &te) && te.Details["column"] != tt.wantColumn {
					t.Errorf("column = %q, want %q", te.Details["column"], tt.wantColumn)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if strings.Join(tbl.Metrics, ",") != strings.Join(tt.metrics, ",") {
				t.Errorf("Metrics = %v, want %v", tbl.Metrics, tt.metrics)
			}
			for _, m := range tbl.Metrics {
				col, _ := tbl.Column(m)
				if len(col) != tbl.Len() {
					t.Errorf("column %s has %d rows, table has %d", m, len(col), tbl.Len())
				}
			}
		})
	}
}

func TestParse_CustomEpochColumn(t *testing.T) {
	tbl, err := Parse(strings.NewReader("step,loss\n0,1.0\n1,0.5\n"), "run", "run.csv", "step")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if tbl.HasMetric("step") || !tbl.HasMetric("loss") {
		t.Errorf("Metrics = %v, want [loss]", tbl.Metrics)
	}
}

func TestParse_NaNCells(t *testing.T) {
	tbl, err := Parse(strings.NewReader("epoch,loss\n0,1.0\n1,NaN\n2,0.5\n"), "run", "run.csv", "epoch")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	loss, _ := tbl.Column("loss")
	if !math.IsNaN(loss[1]) {
		t.Errorf("loss[1] = %v, want NaN", loss[1])
	}
	if loss[2] != 0.5 {
		t.Errorf("loss[2] = %v, want 0.5", loss[2])
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		path, suffix, want string
	}{
		{"runs/run1_history.csv", "_history.csv", "run1"},
		{"a/b/resnet_lr0.1_history.csv", "_history.csv", "resnet_lr0.1"},
		{"x_metrics.csv", "_metrics.csv", "x"},
	}
	for _, tt := range tests {
		if got := DisplayName(tt.path, tt.suffix); got != tt.want {
			t.Errorf("DisplayName(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestTableColumnIsCopy(t *testing.T) {
	tbl := NewTable("run", "run.csv", []int{0, 1}, []string{"loss"}, map[string][]float64{"loss": {2, 1}})

	col, _ := tbl.Column("loss")
	col[0] = 99

	again, _ := tbl.Column("loss")
	if again[0] != 2 {
		t.Error("Column() must return a copy; table data was mutated")
	}
	if _, ok := tbl.Column("acc"); ok {
		t.Error("Column() should report missing metrics")
	}
}

func TestParse_EmptyMetricColumn(t *testing.T) {
	tests := []struct {
		name string
		csv  string
	}{
		{"all blank", "epoch,loss,val_loss\n0,1.0,\n1,2.0,\n"},
		{"all NaN", "epoch,loss,val_loss\n0,1.0,NaN\n1,2.0,NaN\n"},
		{"all NA", "epoch,loss,val_loss\n0,1.0,NA\n1,2.0,NA\n"},
		{"blank and NaN", "epoch,loss,val_loss\n0,1.0,\n1,2.0,NaN\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl, err := Parse(strings.NewReader(tt.csv), "run", "run_history.csv", "epoch")
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if strings.Join(tbl.Metrics, ",") != "loss,val_loss" {
				t.Errorf("Metrics = %v, want [loss val_loss]", tbl.Metrics)
			}
			col, _ := tbl.Column("val_loss")
			if len(col) != 2 {
				t.Fatalf("val_loss has %d rows, want 2", len(col))
			}
			for i, v := range col {
				if !math.IsNaN(v) {
					t.Errorf("val_loss[%d] = %v, want NaN", i, v)
				}
			}
		})
	}
}

func TestParse_ByteOrderMark(t *testing.T) {
	tbl, err := Parse(strings.NewReader("\ufeffepoch,loss\n0,1.0\n1,0.5\n"), "run", "run_history.csv", "epoch")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if tbl.Len() != 2 || strings.Join(tbl.Metrics, ",") != "loss" {
		t.Errorf("table = %d rows, metrics %v", tbl.Len(), tbl.Metrics)
	}
	if tbl.Epochs[1] != 1 {
		t.Errorf("Epochs = %v", tbl.Epochs)
	}
}
