package nointro

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/mirrordat/datmirror/archive"
	"github.com/mirrordat/datmirror/fetch"
	"github.com/mirrordat/datmirror/format"
	"github.com/mirrordat/datmirror/header"
	"github.com/mirrordat/datmirror/store"
	"github.com/mirrordat/datmirror/sysfilter"
)

// PrepareURL is the daily-download entry page.
const PrepareURL = "https://datomatic.no-intro.org/index.php?page=download&op=daily"

// memberPrefix selects the bundle members that are datfiles.
const memberPrefix = "No-Intro/"

// Mirror fetches the daily bundle into OutDir.
type Mirror struct {
	Session *fetch.Session
	Filter  *sysfilter.Filter
	Log     *slog.Logger
	OutDir  string
	// StartURL overrides PrepareURL, for tests.
	StartURL string
}

// Run walks the two-form download flow, extracts the bundle and stores
// every selected datfile under its header name.
func (m *Mirror) Run(ctx context.Context) ([]*store.Result, error) {
	if err := os.MkdirAll(m.OutDir, 0o755); err != nil {
		return nil, err
	}
	start := m.StartURL
	if start == "" {
		start = PrepareURL
	}

	m.Log.Info("get prepare page")
	resp, err := m.Session.Get(ctx, start)
	if err != nil {
		return nil, err
	}
	downloadForm, err := closeAfterScrape(resp)
	if err != nil {
		return nil, err
	}

	m.Log.Info("get download page")
	resp, err = m.Session.Submit(ctx, downloadForm.method, downloadForm.url, downloadForm.values)
	if err != nil {
		return nil, err
	}
	bundleForm, err := closeAfterScrape(resp)
	if err != nil {
		return nil, err
	}

	m.Log.Info("download datfiles")
	tmp, err := os.MkdirTemp("", "datmirror-nointro-")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(tmp)

	bundle := filepath.Join(tmp, "download.zip")
	resp, err = m.Session.Submit(ctx, bundleForm.method, bundleForm.url, bundleForm.values)
	if err != nil {
		return nil, err
	}
	if err := fetch.Save(resp, bundle); err != nil {
		return nil, err
	}
	if !archive.IsZip(bundle) {
		return nil, errors.New("downloaded file is not a zip archive")
	}

	m.Log.Info("extracting datfiles")
	extractDir := filepath.Join(tmp, "extracted")
	if err := os.MkdirAll(extractDir, 0o755); err != nil {
		return nil, err
	}
	files, err := archive.ExtractPrefix(bundle, memberPrefix, extractDir)
	if err != nil {
		return nil, err
	}

	var results []*store.Result
	for _, file := range files {
		name, err := store.Resolve(file, format.XMLFormat)
		switch {
		case errors.Is(err, header.ErrMissingName), errors.Is(err, header.ErrMalformed):
			m.Log.Warn("skipping datfile", "file", filepath.Base(file), "err", err)
			continue
		case err != nil:
			return nil, err
		}

		ok, err := m.Filter.Match(sysfilter.Env{Name: name, HasDatfile: true})
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}

		res, err := store.Place(file, name, format.XMLFormat, m.OutDir)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}

	m.Log.Info("stored datfiles", "count", len(results))
	return results, nil
}

func closeAfterScrape(resp *http.Response) (*form, error) {
	defer resp.Body.Close()
	return scrapeForm(resp)
}
