package chemviz

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"image"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const barChartTemplate = `<html><head><title>__TITLE__</title></head><body><script>
var x = __X_VALUES__;
var y = __Y_VALUES__;
var images = __IMAGE_DATA__;
var yields = __YIELD_DATA__;
</script></body></html>
`

const heatmapTemplate = `<html><head><title>__TITLE__</title></head><body><script>
var z = __Z_VALUES__;
var x = __X_VALUES__;
var y = __Y_VALUES__;
var images = __IMAGE_DATA__;
</script></body></html>
`

type fixture struct {
	dir    string
	in     Inputs
	opts   Options
	pngA   []byte
	output string
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewGray(image.Rect(0, 0, 1, 1))); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

// newFixture lays out a data directory with three compounds. The image
// of compound C is missing.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	dir := t.TempDir()
	dataDir := filepath.Join(dir, "data")
	imageDir := filepath.Join(dir, "images")

	writeFile(t, filepath.Join(dataDir, "props.csv"),
		"Compound_Name,HOMO,ΔG (kcal/mol),solvent\n"+
			"A,3,1,THF\n"+
			"B,1,2,DMF\n"+
			"C,2,NA,THF\n")
	writeFile(t, filepath.Join(dataDir, "yields.csv"),
		"id,Method 1,Method 2\n"+
			"A,10,20\n"+
			"B,11,\n"+
			"C,12,22\n")
	writeFile(t, filepath.Join(dataDir, "methods.csv"),
		"Method 1,Method 2\n"+
			"10,20\n"+
			"11,\n"+
			"12,22\n")
	writeFile(t, filepath.Join(dataDir, ManifestFile),
		`{"A": "images/a.png", "B": "images\\b.png", "C": "images/c.png"}`)

	f := &fixture{dir: dir, pngA: pngBytes(t)}
	writeFile(t, filepath.Join(imageDir, "a.png"), string(f.pngA))
	writeFile(t, filepath.Join(imageDir, "b.png"), string(f.pngA))

	f.in = Inputs{
		Properties: Table{Path: filepath.Join(dataDir, "props.csv")},
		Yields:     Table{Path: filepath.Join(dataDir, "yields.csv")},
		Methods:    Table{Path: filepath.Join(dataDir, "methods.csv")},
		Manifest:   filepath.Join(dataDir, ManifestFile),
		ImageDir:   imageDir,
	}
	f.opts = DefaultOptions()
	f.opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	f.output = filepath.Join(dir, "site")
	return f
}

func readJSON(t *testing.T, path string) map[string]interface{} {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", path, err)
	}
	var doc map[string]interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("Failed to decode %s: %v", path, err)
	}
	return doc
}

func TestGenerateBarChartJSON(t *testing.T) {
	f := newFixture(t)
	path := filepath.Join(f.output, "data", "bar_chart_data.json")

	rep, err := GenerateBarChartJSON(context.Background(), path, "Compound Properties", f.in, f.opts)
	if err != nil {
		t.Fatalf("GenerateBarChartJSON failed: %v", err)
	}
	if !cmp.Equal(rep.Outputs, []string{path}) {
		t.Errorf("Outputs = %v", rep.Outputs)
	}
	if len(rep.Warnings) != 1 || rep.Warnings[0].ID != "C" {
		t.Errorf("Warnings = %v, expected one for C", rep.Warnings)
	}

	doc := readJSON(t, path)
	if doc["page_title"] != "Compound Properties" {
		t.Errorf("page_title = %v", doc["page_title"])
	}

	data := doc["data"].(map[string]interface{})
	if len(data) != 2 {
		t.Fatalf("Expected 2 charts, got %d", len(data))
	}

	homo := data["HOMO"].(map[string]interface{})
	want := map[string]interface{}{
		"x_values": []interface{}{"B", "C", "A"},
		"y_values": []interface{}{1.0, 2.0, 3.0},
		"y_range":  []interface{}{1.0, 3.0},
		"yield_data": []interface{}{
			map[string]interface{}{
				"x": []interface{}{"B", "C", "A"}, "y": []interface{}{11.0, 12.0, 10.0},
				"type": "scatter", "mode": "lines", "name": "Method 1",
				"line": map[string]interface{}{"dash": "dash"},
			},
			map[string]interface{}{
				"x": []interface{}{"B", "C", "A"}, "y": []interface{}{nil, 22.0, 20.0},
				"type": "scatter", "mode": "lines", "name": "Method 2",
				"line": map[string]interface{}{"dash": "dash"},
			},
		},
	}
	if diff := cmp.Diff(want, homo); diff != "" {
		t.Errorf("HOMO chart mismatch (-want +got):\n%s", diff)
	}

	dg := data["ΔG (kcal/mol)"].(map[string]interface{})
	if got := dg["x_values"]; !cmp.Equal(got, []interface{}{"A", "B", "C"}) {
		t.Errorf("ΔG x_values = %v", got)
	}
	if got := dg["y_values"]; !cmp.Equal(got, []interface{}{1.0, 2.0, nil}) {
		t.Errorf("ΔG y_values = %v", got)
	}

	images := doc["images"].(map[string]interface{})
	wantImage := base64.StdEncoding.EncodeToString(f.pngA)
	if images["A"] != wantImage || images["B"] != wantImage {
		t.Errorf("images = %v", images)
	}
	if _, ok := images["C"]; ok {
		t.Error("Missing image C should be omitted")
	}
}

func TestBarChartSeriesLengths(t *testing.T) {
	f := newFixture(t)
	doc, _, err := BuildBarChart(context.Background(), "t", f.in, f.opts)
	if err != nil {
		t.Fatalf("BuildBarChart failed: %v", err)
	}
	for col, chart := range doc.Data {
		n := len(chart.XValues)
		if len(chart.YValues) != n {
			t.Errorf("%s: %d y values for %d x values", col, len(chart.YValues), n)
		}
		for _, tr := range chart.YieldData {
			if len(tr.X) != n || len(tr.Y) != n {
				t.Errorf("%s/%s: trace length %d/%d, expected %d", col, tr.Name, len(tr.X), len(tr.Y), n)
			}
		}
		for i := 1; i < n; i++ {
			prev, cur := chart.YValues[i-1], chart.YValues[i]
			if !prev.Valid && cur.Valid {
				t.Errorf("%s: missing value before %v", col, cur.Value)
			}
			if prev.Valid && cur.Valid && prev.Value > cur.Value {
				t.Errorf("%s: values not ascending at %d", col, i)
			}
		}
	}
}

func TestGenerateBarChartJSONDeterministic(t *testing.T) {
	f := newFixture(t)
	first := filepath.Join(f.dir, "first.json")
	second := filepath.Join(f.dir, "second.json")

	for _, p := range []string{first, second} {
		if _, err := GenerateBarChartJSON(context.Background(), p, "t", f.in, f.opts); err != nil {
			t.Fatalf("GenerateBarChartJSON failed: %v", err)
		}
	}
	a, _ := os.ReadFile(first)
	b, _ := os.ReadFile(second)
	if !bytes.Equal(a, b) {
		t.Error("Expected byte-identical output across runs")
	}
}

func TestMissingYieldsTable(t *testing.T) {
	f := newFixture(t)
	if err := os.Remove(f.in.Yields.Path); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(f.output, "bar_chart_data.json")

	_, err := GenerateBarChartJSON(context.Background(), path, "t", f.in, f.opts)
	if !errors.Is(err, ErrMissingInput) {
		t.Fatalf("Expected ErrMissingInput, got %v", err)
	}
	var missing *MissingInputError
	if !errors.As(err, &missing) || missing.Path != f.in.Yields.Path {
		t.Errorf("Expected error naming %s, got %v", f.in.Yields.Path, err)
	}
	if _, err := os.Stat(f.output); !os.IsNotExist(err) {
		t.Error("No output should be written")
	}
}

func TestMissingImageDir(t *testing.T) {
	f := newFixture(t)
	f.in.ImageDir = filepath.Join(f.dir, "nowhere")

	_, _, err := BuildBarChart(context.Background(), "t", f.in, f.opts)
	var missing *MissingInputError
	if !errors.As(err, &missing) || missing.Kind != "image directory" {
		t.Errorf("Expected missing image directory, got %v", err)
	}
}

func TestStrictAlignment(t *testing.T) {
	f := newFixture(t)
	writeFile(t, f.in.Yields.Path, "id,Method 1\nX,1\nY,2\n")

	_, _, err := BuildBarChart(context.Background(), "t", f.in, f.opts)
	var alignErr *AlignmentError
	if !errors.As(err, &alignErr) {
		t.Fatalf("Expected AlignmentError, got %v", err)
	}
	var stageErr *StageError
	if !errors.As(err, &stageErr) || stageErr.Stage != "align" {
		t.Errorf("Expected align stage error, got %v", err)
	}

	lenient := false
	f.opts.StrictAlignment = &lenient
	doc, rep, err := BuildBarChart(context.Background(), "t", f.in, f.opts)
	if err != nil {
		t.Fatalf("BuildBarChart failed: %v", err)
	}
	for _, a := range rep.Alignment {
		if a.Resolved() != 0 {
			t.Errorf("Expected no resolved keys, got %d", a.Resolved())
		}
	}
	trace := doc.Data["HOMO"].YieldData[0]
	for _, y := range trace.Y {
		if y.Valid {
			t.Errorf("Expected only missing values, got %v", trace.Y)
		}
	}
}

func TestCanceledContext(t *testing.T) {
	f := newFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	path := filepath.Join(f.output, "bar_chart_data.json")
	if _, err := GenerateBarChartJSON(ctx, path, "t", f.in, f.opts); !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("No output should be written")
	}
}

func TestRenderBarChartPages(t *testing.T) {
	f := newFixture(t)
	tmpl := filepath.Join(f.dir, "template.html")
	writeFile(t, tmpl, barChartTemplate)

	rep, err := RenderBarChartPages(context.Background(), tmpl, f.output, f.in, f.opts)
	if err != nil {
		t.Fatalf("RenderBarChartPages failed: %v", err)
	}
	want := []string{
		filepath.Join(f.output, "HOMO_by_compounds.html"),
		filepath.Join(f.output, "_G _kcal_mol__by_compounds.html"),
	}
	if diff := cmp.Diff(want, rep.Outputs); diff != "" {
		t.Errorf("Outputs mismatch (-want +got):\n%s", diff)
	}

	page, err := os.ReadFile(want[0])
	if err != nil {
		t.Fatal(err)
	}
	enc := base64.StdEncoding.EncodeToString(f.pngA)
	for _, s := range []string{
		"<title>HOMO by Compound</title>",
		`var x = ["B","C","A"];`,
		`var y = [1,2,3];`,
		`var images = {"B":"` + enc + `","C":null,"A":"` + enc + `"};`,
		`"y":[11,12,10]`,
	} {
		if !strings.Contains(string(page), s) {
			t.Errorf("Page missing %q", s)
		}
	}
	if strings.Contains(string(page), "__") {
		t.Error("Page has unreplaced placeholders")
	}
}

func TestRenderBarChartPagesMissingToken(t *testing.T) {
	f := newFixture(t)
	tmpl := filepath.Join(f.dir, "template.html")
	writeFile(t, tmpl, "<title>__TITLE__</title>__X_VALUES__ __Y_VALUES__")

	_, err := RenderBarChartPages(context.Background(), tmpl, f.output, f.in, f.opts)
	if err == nil {
		t.Fatal("Expected error for missing placeholders")
	}
	if !strings.Contains(err.Error(), "__IMAGE_DATA__") {
		t.Errorf("Error should name the placeholder: %v", err)
	}
	if _, err := os.Stat(f.output); !os.IsNotExist(err) {
		t.Error("No page should be written")
	}
}

func TestGenerateHeatmapJSON(t *testing.T) {
	f := newFixture(t)
	job := HeatmapJob{
		Output:        filepath.Join(f.output, "data", "heatmap_data.json"),
		SiteDir:       f.output,
		YieldDataPath: "data/yield_data.json",
		Title:         "Yields",
		GraphName:     "Yield heatmap",
	}

	rep, err := GenerateHeatmapJSON(context.Background(), job, f.in, f.opts)
	if err != nil {
		t.Fatalf("GenerateHeatmapJSON failed: %v", err)
	}
	yieldPath := filepath.Join(f.output, "data", "yield_data.json")
	if !cmp.Equal(rep.Outputs, []string{yieldPath, job.Output}) {
		t.Errorf("Outputs = %v", rep.Outputs)
	}

	heatmap := readJSON(t, job.Output)
	wantHeatmap := map[string]interface{}{
		"page_title":      "Yields",
		"graph_name":      "Yield heatmap",
		"compounds":       []interface{}{"A", "B", "C"},
		"methods":         []interface{}{"Method 1", "Method 2"},
		"yield_data_path": "data/yield_data.json",
		"images": map[string]interface{}{
			"A": "images/a.png",
			"B": `images\b.png`,
			"C": nil,
		},
	}
	if diff := cmp.Diff(wantHeatmap, heatmap); diff != "" {
		t.Errorf("Heatmap document mismatch (-want +got):\n%s", diff)
	}

	yields := readJSON(t, yieldPath)
	wantYields := map[string]interface{}{
		"compounds": []interface{}{"A", "B", "C"},
		"methods":   []interface{}{"Method 1", "Method 2"},
		"yields": map[string]interface{}{
			"A": map[string]interface{}{"Method 1": 10.0, "Method 2": 20.0},
			"B": map[string]interface{}{"Method 1": 11.0, "Method 2": nil},
			"C": map[string]interface{}{"Method 1": 12.0, "Method 2": 22.0},
		},
	}
	if diff := cmp.Diff(wantYields, yields); diff != "" {
		t.Errorf("Yield document mismatch (-want +got):\n%s", diff)
	}

	data, _ := os.ReadFile(job.Output)
	if !strings.HasPrefix(string(data), "{\n  \"page_title\"") {
		t.Errorf("Expected 2-space indent, got %q", data[:20])
	}
}

func TestGenerateHeatmapMatrixJSON(t *testing.T) {
	f := newFixture(t)
	path := filepath.Join(f.output, "heatmap.json")

	if _, err := GenerateHeatmapMatrixJSON(context.Background(), path, f.in, f.opts); err != nil {
		t.Fatalf("GenerateHeatmapMatrixJSON failed: %v", err)
	}
	doc := readJSON(t, path)
	want := []interface{}{
		[]interface{}{10.0, 11.0, 12.0},
		[]interface{}{20.0, nil, 22.0},
	}
	if diff := cmp.Diff(want, doc["z_values"]); diff != "" {
		t.Errorf("z_values mismatch (-want +got):\n%s", diff)
	}
	if got := doc["x_values"]; !cmp.Equal(got, []interface{}{"A", "B", "C"}) {
		t.Errorf("x_values = %v", got)
	}
	if got := doc["y_values"]; !cmp.Equal(got, []interface{}{"Method 1", "Method 2"}) {
		t.Errorf("y_values = %v", got)
	}
}

func TestHeatmapMatrixJoinsOnIdentifier(t *testing.T) {
	f := newFixture(t)
	writeFile(t, f.in.Methods.Path, "id,Method 1\nC,3\nA,1\n")

	m, rep, err := BuildHeatmapMatrix(context.Background(), f.in, f.opts)
	if err != nil {
		t.Fatalf("BuildHeatmapMatrix failed: %v", err)
	}
	if got := m.ZValues[0]; got[0].Value != 1 || got[1].Valid || got[2].Value != 3 {
		t.Errorf("z row = %v, expected [1 null 3]", got)
	}
	if len(rep.Alignment) != 1 || rep.Alignment[0].Unresolved != 1 {
		t.Errorf("Alignment = %+v", rep.Alignment)
	}
}

func TestHeatmapMatrixRowMismatch(t *testing.T) {
	f := newFixture(t)
	writeFile(t, f.in.Methods.Path, "Method 1\n1\n2\n")

	if _, _, err := BuildHeatmapMatrix(context.Background(), f.in, f.opts); err == nil {
		t.Error("Expected error for unequal row counts")
	}
}

func TestRenderHeatmapPage(t *testing.T) {
	f := newFixture(t)
	tmpl := filepath.Join(f.dir, "heatmap_template.html")
	writeFile(t, tmpl, heatmapTemplate)
	path := filepath.Join(f.output, "heatmap.html")

	if _, err := RenderHeatmapPage(context.Background(), tmpl, path, "Yield Heatmap", f.in, f.opts); err != nil {
		t.Fatalf("RenderHeatmapPage failed: %v", err)
	}
	page, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	for _, s := range []string{
		"<title>Yield Heatmap</title>",
		`var z = [[10,11,12],[20,null,22]];`,
		`var y = ["Method 1","Method 2"];`,
	} {
		if !strings.Contains(string(page), s) {
			t.Errorf("Page missing %q", s)
		}
	}
}

func TestRenderHeatmapPageMissingTemplate(t *testing.T) {
	f := newFixture(t)
	tmpl := filepath.Join(f.dir, "absent.html")

	_, err := RenderHeatmapPage(context.Background(), tmpl, filepath.Join(f.output, "h.html"), "t", f.in, f.opts)
	var missing *MissingInputError
	if !errors.As(err, &missing) || missing.Path != tmpl {
		t.Errorf("Expected missing template error, got %v", err)
	}
}

func TestBuildYieldDocument(t *testing.T) {
	f := newFixture(t)
	// The yield document needs neither the manifest nor the images.
	if err := os.Remove(f.in.Manifest); err != nil {
		t.Fatal(err)
	}

	doc, err := BuildYieldDocument(context.Background(), f.in, f.opts)
	if err != nil {
		t.Fatalf("BuildYieldDocument failed: %v", err)
	}
	if !cmp.Equal(doc.Compounds, []string{"A", "B", "C"}) {
		t.Errorf("Compounds = %v", doc.Compounds)
	}
	if got := doc.Yields["C"]["Method 2"]; !got.Valid || got.Value != 22 {
		t.Errorf("Yields[C][Method 2] = %v", got)
	}
	if got := doc.Yields["B"]["Method 2"]; got.Valid {
		t.Errorf("Yields[B][Method 2] = %v, expected null", got)
	}
}

func TestNumericLookingIdentifiers(t *testing.T) {
	f := newFixture(t)
	writeFile(t, f.in.Properties.Path, "Compound_Name,HOMO\n001,3\n010,1\n1e3,2\n")
	writeFile(t, f.in.Yields.Path, "id,Method 1\n001,10\n010,11\n1e3,12\n")
	writeFile(t, f.in.Methods.Path, "id,Method 1\n1e3,32\n001,30\n010,31\n")
	writeFile(t, f.in.Manifest, `{"001": "images/a.png", "010": "images/b.png", "1e3": "images/a.png"}`)

	doc, rep, err := BuildBarChart(context.Background(), "t", f.in, f.opts)
	if err != nil {
		t.Fatalf("BuildBarChart failed: %v", err)
	}
	if len(rep.Warnings) != 0 {
		t.Errorf("Warnings = %v, expected none", rep.Warnings)
	}
	chart := doc.Data["HOMO"]
	if want := []string{"010", "1e3", "001"}; !cmp.Equal(chart.XValues, want) {
		t.Errorf("x_values = %v, expected %v", chart.XValues, want)
	}
	for _, x := range chart.XValues {
		if doc.Images[x] == nil {
			t.Errorf("x label %q has no image", x)
		}
	}
	trace := chart.YieldData[0]
	if !cmp.Equal(trace.X, chart.XValues) {
		t.Errorf("trace x = %v, expected %v", trace.X, chart.XValues)
	}
	for i, want := range []float64{11, 12, 10} {
		if y := trace.Y[i]; !y.Valid || y.Value != want {
			t.Errorf("trace y[%d] = %v, expected %v", i, y, want)
		}
	}

	job := HeatmapJob{Output: filepath.Join(f.output, "h.json"), SiteDir: f.output, YieldDataPath: "y.json"}
	heatmap, yields, _, err := BuildHeatmap(context.Background(), job, f.in, f.opts)
	if err != nil {
		t.Fatalf("BuildHeatmap failed: %v", err)
	}
	ids := []string{"001", "010", "1e3"}
	if !cmp.Equal(heatmap.Compounds, ids) {
		t.Errorf("heatmap compounds = %v, expected %v", heatmap.Compounds, ids)
	}
	for _, id := range ids {
		if heatmap.Images[id] == nil {
			t.Errorf("heatmap image %q missing", id)
		}
		if _, ok := yields.Yields[id]; !ok {
			t.Errorf("yield document has no entry %q", id)
		}
	}

	m, _, err := BuildHeatmapMatrix(context.Background(), f.in, f.opts)
	if err != nil {
		t.Fatalf("BuildHeatmapMatrix failed: %v", err)
	}
	if !cmp.Equal(m.XValues, ids) {
		t.Errorf("matrix x_values = %v, expected %v", m.XValues, ids)
	}
	for i, want := range []float64{30, 31, 32} {
		if z := m.ZValues[0][i]; !z.Valid || z.Value != want {
			t.Errorf("z[0][%d] = %v, expected %v", i, z, want)
		}
	}
}

func TestUnresolvedKeysLoggedOnce(t *testing.T) {
	f := newFixture(t)
	writeFile(t, f.in.Yields.Path, "id,Method 1,Method 2\nA,10,20\nB,11,\n")
	var buf bytes.Buffer
	f.opts.Logger = slog.New(slog.NewTextHandler(&buf, nil))

	doc, rep, err := BuildBarChart(context.Background(), "t", f.in, f.opts)
	if err != nil {
		t.Fatalf("BuildBarChart failed: %v", err)
	}
	if len(doc.Data) != 2 || len(rep.Alignment) != 2 {
		t.Fatalf("Expected 2 charts, got %d with %d reports", len(doc.Data), len(rep.Alignment))
	}
	for _, a := range rep.Alignment {
		if a.Unresolved != 1 {
			t.Errorf("%s: unresolved = %d, expected 1", a.Table, a.Unresolved)
		}
	}
	if n := strings.Count(buf.String(), "Keys missing from table"); n != 1 {
		t.Errorf("Logged %d unresolved key warnings, expected 1:\n%s", n, buf.String())
	}
}

func TestBlankPropertyColumn(t *testing.T) {
	f := newFixture(t)
	writeFile(t, f.in.Properties.Path,
		"Compound_Name,HOMO,ΔG (kcal/mol),solvent,Notes\n"+
			"A,3,1,THF,\n"+
			"B,1,2,DMF,NA\n"+
			"C,2,NA,THF,\n")
	tmpl := filepath.Join(f.dir, "template.html")
	writeFile(t, tmpl, barChartTemplate)

	doc, _, err := BuildBarChart(context.Background(), "t", f.in, f.opts)
	if err != nil {
		t.Fatalf("BuildBarChart failed: %v", err)
	}
	if _, ok := doc.Data["Notes"]; ok || len(doc.Data) != 2 {
		t.Errorf("charts = %d, expected HOMO and ΔG only", len(doc.Data))
	}

	rep, err := RenderBarChartPages(context.Background(), tmpl, f.output, f.in, f.opts)
	if err != nil {
		t.Fatalf("RenderBarChartPages failed: %v", err)
	}
	if len(rep.Outputs) != 2 {
		t.Errorf("Outputs = %v, expected 2 pages", rep.Outputs)
	}
	if _, err := os.Stat(filepath.Join(f.output, "Notes_by_compounds.html")); !os.IsNotExist(err) {
		t.Error("No page should be rendered for a column without numbers")
	}
}

func TestBarChartWithoutMethodsTable(t *testing.T) {
	f := newFixture(t)
	// Bar charts overlay the yields table only.
	if err := os.Remove(f.in.Methods.Path); err != nil {
		t.Fatal(err)
	}

	doc, _, err := BuildBarChart(context.Background(), "t", f.in, f.opts)
	if err != nil {
		t.Fatalf("BuildBarChart failed: %v", err)
	}
	if len(doc.Data["HOMO"].YieldData) != 2 {
		t.Errorf("Expected 2 yield traces, got %d", len(doc.Data["HOMO"].YieldData))
	}

	_, _, err = BuildHeatmapMatrix(context.Background(), f.in, f.opts)
	if !errors.Is(err, ErrMissingInput) {
		t.Errorf("Heatmap matrix should require the per-method table, got %v", err)
	}
}
