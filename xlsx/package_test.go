package xlsx

import (
	"archive/zip"
	"bytes"
	"strings"
	"testing"
)

func TestRelativePath(t *testing.T) {
	tests := []struct {
		dir, target, want string
	}{
		{dir: "", target: "xl/workbook.xml", want: "xl/workbook.xml"},
		{dir: "xl", target: "xl/sharedStrings.xml", want: "sharedStrings.xml"},
		{dir: "xl", target: "xl/worksheets/sheet2.xml", want: "worksheets/sheet2.xml"},
		{dir: "xl/worksheets", target: "xl/drawings/drawing1.xml", want: "../drawings/drawing1.xml"},
		{dir: "xl/worksheets", target: "docProps/app.xml", want: "../../docProps/app.xml"},
	}
	for _, tt := range tests {
		if got := relativePath(tt.dir, tt.target); got != tt.want {
			t.Errorf("relativePath(%q, %q) = %q, want %q", tt.dir, tt.target, got, tt.want)
		}
	}
}

func TestRelsOwnerDir(t *testing.T) {
	for name, want := range map[string]string{
		"_rels/.rels":                         "",
		"xl/_rels/workbook.xml.rels":          "xl",
		"xl/worksheets/_rels/sheet1.xml.rels": "xl/worksheets",
	} {
		if got := relsOwnerDir(name); got != want {
			t.Errorf("relsOwnerDir(%q) = %q, want %q", name, got, want)
		}
	}
}

func zipParts(t *testing.T, parts map[string]string) *bytes.Reader {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, body := range parts {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := w.Write([]byte(body)); err != nil {
			t.Fatal(err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return bytes.NewReader(buf.Bytes())
}

func TestRelativizeTargets(t *testing.T) {
	src := zipParts(t, map[string]string{
		"xl/_rels/workbook.xml.rels": `<Relationships>` +
			`<Relationship Id="rId1" Target="worksheets/sheet1.xml"/>` +
			`<Relationship Id="rId2" Target="/xl/worksheets/sheet2.xml"/>` +
			`<Relationship Id="rId3" Target="/xl/sharedStrings.xml"/>` +
			`</Relationships>`,
		"xl/sharedStrings.xml": `<sst/>`,
	})
	r, size, err := relativizeTargets(src, src.Size())
	if err != nil {
		t.Fatal(err)
	}
	zr, err := zip.NewReader(r, size)
	if err != nil {
		t.Fatal(err)
	}

	got := make(map[string]string)
	for _, f := range zr.File {
		data, err := readZipFile(f)
		if err != nil {
			t.Fatal(err)
		}
		got[f.Name] = string(data)
	}
	rels := got["xl/_rels/workbook.xml.rels"]
	for _, want := range []string{
		`Target="worksheets/sheet1.xml"`,
		`Target="worksheets/sheet2.xml"`,
		`Target="sharedStrings.xml"`,
	} {
		if !strings.Contains(rels, want) {
			t.Errorf("rels missing %s:\n%s", want, rels)
		}
	}
	if got["xl/sharedStrings.xml"] != `<sst/>` {
		t.Errorf("untouched part changed: %q", got["xl/sharedStrings.xml"])
	}
}

func TestRelativizeTargetsUnchanged(t *testing.T) {
	src := zipParts(t, map[string]string{
		"_rels/.rels": `<Relationships><Relationship Id="rId1" Target="xl/workbook.xml"/></Relationships>`,
	})
	r, size, err := relativizeTargets(src, src.Size())
	if err != nil {
		t.Fatal(err)
	}
	if r != src || size != src.Size() {
		t.Error("a package without absolute targets should be returned as is")
	}

	if _, _, err := relativizeTargets(bytes.NewReader([]byte("not a zip")), 9); err == nil {
		t.Error("expected an error for a non-zip input")
	}
}
