package redump

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zip"

	"github.com/mirrordat/datmirror/fetch"
	"github.com/mirrordat/datmirror/sysfilter"
)

const downloadsPage = `<html><body><div id="main">
<table>
<tr><th>Systems</th><th>Datfiles</th><th>BIOS Datfiles</th></tr>
<tr><td>Nintendo - GameCube</td><td><a href="/datfile/gc/">dat</a></td><td><a href="/datfile/gc/bios">bios</a></td></tr>
<tr><td>Sega - Dreamcast</td><td><a href="/datfile/dc/">dat</a></td><td></td></tr>
</table>
</div></body></html>`

func zipped(t *testing.T, member, content string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create(member)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func testServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/downloads", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, downloadsPage)
	})
	mux.HandleFunc("/datfile/gc/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/datfile/gc/bios" {
			w.Write(zipped(t, "gc-bios.dat", "clrmamepro (\n\tname \"GameCube BIOS\"\n)\n"))
			return
		}
		w.Write(zipped(t, "gc.dat",
			`<datafile><header><name>Nintendo - GameCube</name></header></datafile>`))
	})
	mux.HandleFunc("/datfile/dc/", func(w http.ResponseWriter, r *http.Request) {
		// unzipped payload straight from the site
		io.WriteString(w, `<datafile><header><name>Sega - Dreamcast</name></header></datafile>`)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func testMirror(t *testing.T, srv *httptest.Server, filter *sysfilter.Filter) *Mirror {
	t.Helper()
	session, err := fetch.NewSession(srv.URL)
	if err != nil {
		t.Fatal(err)
	}
	return &Mirror{
		Session: session,
		Filter:  filter,
		Log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		OutDir:  t.TempDir(),
	}
}

func TestSystems(t *testing.T) {
	srv := testServer(t)
	m := testMirror(t, srv, nil)

	systems, err := m.Systems(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(systems) != 2 {
		t.Fatalf("got %d systems", len(systems))
	}
	gc := systems[0]
	if gc.Name != "Nintendo - GameCube" || gc.DatfileURL != "/datfile/gc/" || gc.BIOSURL != "/datfile/gc/bios" {
		t.Errorf("unexpected first system %+v", gc)
	}
	dc := systems[1]
	if dc.Name != "Sega - Dreamcast" || dc.BIOSURL != "" {
		t.Errorf("unexpected second system %+v", dc)
	}
}

func TestSystemsMissingColumn(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `<div id="main"><table><tr><th>Systems</th><th>Datfiles</th></tr></table></div>`)
	}))
	defer srv.Close()
	m := testMirror(t, srv, nil)

	_, err := m.Systems(context.Background())
	if err == nil {
		t.Fatal("expected error for missing BIOS Datfiles column")
	}
}

func TestRun(t *testing.T) {
	srv := testServer(t)
	m := testMirror(t, srv, nil)

	results, err := m.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 3 {
		t.Fatalf("got %d results: %v", len(results), results)
	}
	for _, want := range []string{
		"Nintendo - GameCube.xml",
		"GameCube BIOS.dat",
		"Sega - Dreamcast.xml",
	} {
		if _, err := os.Stat(filepath.Join(m.OutDir, want)); err != nil {
			t.Errorf("missing %s: %v", want, err)
		}
	}
}

func TestRunFiltered(t *testing.T) {
	srv := testServer(t)
	filter, err := sysfilter.Compile(`Name contains "Sega"`)
	if err != nil {
		t.Fatal(err)
	}
	m := testMirror(t, srv, filter)

	results, err := m.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 {
		t.Fatalf("got %d results", len(results))
	}
	if results[0].Name != "Sega - Dreamcast" {
		t.Errorf("got %q", results[0].Name)
	}
}
