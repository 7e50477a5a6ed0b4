package xlsx

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"path"
	"regexp"
	"strings"
)

var absTargetRe = regexp.MustCompile(`Target="/([^"]*)"`)

// relativizeTargets rewrites absolute relationship targets such as
// "/xl/sharedStrings.xml" relative to the part owning the .rels file.
// unioffice only follows relative targets and leaves parts reached through
// absolute ones unloaded; excelize writes added sheets and the shared string
// table that way. The package is returned as is when nothing needs rewriting.
func relativizeTargets(r io.ReaderAt, size int64) (io.ReaderAt, int64, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, 0, fmt.Errorf("xlsx: open package: %w", err)
	}

	rewritten := make(map[string][]byte)
	for _, f := range zr.File {
		if !strings.HasSuffix(f.Name, ".rels") {
			continue
		}
		data, err := readZipFile(f)
		if err != nil {
			return nil, 0, err
		}
		if !absTargetRe.Match(data) {
			continue
		}
		owner := relsOwnerDir(f.Name)
		rewritten[f.Name] = absTargetRe.ReplaceAllFunc(data, func(m []byte) []byte {
			target := string(absTargetRe.FindSubmatch(m)[1])
			return []byte(`Target="` + relativePath(owner, target) + `"`)
		})
	}
	if len(rewritten) == 0 {
		return r, size, nil
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, f := range zr.File {
		data, ok := rewritten[f.Name]
		if !ok {
			if err := zw.Copy(f); err != nil {
				return nil, 0, fmt.Errorf("xlsx: copy part %s: %w", f.Name, err)
			}
			continue
		}
		w, err := zw.CreateHeader(&zip.FileHeader{Name: f.Name, Method: zip.Deflate, Modified: f.Modified})
		if err != nil {
			return nil, 0, fmt.Errorf("xlsx: rewrite part %s: %w", f.Name, err)
		}
		if _, err := w.Write(data); err != nil {
			return nil, 0, fmt.Errorf("xlsx: rewrite part %s: %w", f.Name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, 0, fmt.Errorf("xlsx: rewrite package: %w", err)
	}
	return bytes.NewReader(buf.Bytes()), int64(buf.Len()), nil
}

func readZipFile(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("xlsx: open part %s: %w", f.Name, err)
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("xlsx: read part %s: %w", f.Name, err)
	}
	return data, nil
}

// relsOwnerDir is the directory of the part a .rels file belongs to:
// "xl/_rels/workbook.xml.rels" -> "xl", "_rels/.rels" -> "".
func relsOwnerDir(name string) string {
	dir := path.Dir(path.Dir(name))
	if dir == "." {
		return ""
	}
	return dir
}

// relativePath expresses target, a package path without its leading slash,
// relative to dir.
func relativePath(dir, target string) string {
	if dir == "" {
		return target
	}
	base := strings.Split(dir, "/")
	parts := strings.Split(target, "/")
	i := 0
	for i < len(base) && i < len(parts)-1 && base[i] == parts[i] {
		i++
	}
	return strings.Repeat("../", len(base)-i) + strings.Join(parts[i:], "/")
}
