package redump

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/mirrordat/datmirror/archive"
	"github.com/mirrordat/datmirror/fetch"
	"github.com/mirrordat/datmirror/format"
	"github.com/mirrordat/datmirror/header"
	"github.com/mirrordat/datmirror/store"
	"github.com/mirrordat/datmirror/sysfilter"
)

// BaseURL is the redump.org root.
const BaseURL = "http://redump.org"

// Mirror fetches the selected redump datfiles into OutDir.
type Mirror struct {
	Session *fetch.Session
	Filter  *sysfilter.Filter
	Log     *slog.Logger
	OutDir  string
}

// Run scrapes the system list and mirrors every selected datfile. A
// file whose header cannot provide a name is logged and skipped;
// anything else aborts the run.
func (m *Mirror) Run(ctx context.Context) ([]*store.Result, error) {
	if err := os.MkdirAll(m.OutDir, 0o755); err != nil {
		return nil, err
	}

	m.Log.Info("fetching systems")
	systems, err := m.Systems(ctx)
	if err != nil {
		return nil, err
	}

	datCount, biosCount := 0, 0
	for _, sys := range systems {
		if sys.DatfileURL != "" {
			datCount++
		}
		if sys.BIOSURL != "" {
			biosCount++
		}
	}
	m.Log.Info("fetched systems",
		"systems", len(systems), "datfiles", datCount, "biosDatfiles", biosCount)

	var results []*store.Result
	for i, sys := range systems {
		ok, err := m.Filter.Match(sysfilter.Env{
			Name:       sys.Name,
			HasDatfile: sys.DatfileURL != "",
			HasBIOS:    sys.BIOSURL != "",
		})
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}

		m.Log.Info("system", "n", i+1, "of", len(systems), "name", sys.Name)
		if sys.DatfileURL != "" {
			res, err := m.mirrorOne(ctx, sys.DatfileURL, format.XMLFormat)
			if err := m.collect(&results, res, err, sys.Name); err != nil {
				return nil, err
			}
		}
		if sys.BIOSURL != "" {
			res, err := m.mirrorOne(ctx, sys.BIOSURL, format.CMPFormat)
			if err := m.collect(&results, res, err, sys.Name); err != nil {
				return nil, err
			}
		}
	}

	m.Log.Info("downloaded datfiles", "count", len(results))
	return results, nil
}

// collect appends res or decides whether err is skippable. Header
// problems are per-file conditions; retrying or aborting the run will
// not fix them.
func (m *Mirror) collect(results *[]*store.Result, res *store.Result, err error, system string) error {
	switch {
	case err == nil:
		*results = append(*results, res)
		return nil
	case errors.Is(err, header.ErrMissingName), errors.Is(err, header.ErrMalformed):
		m.Log.Warn("skipping datfile", "system", system, "err", err)
		return nil
	default:
		return err
	}
}

func (m *Mirror) mirrorOne(ctx context.Context, ref string, f format.Format) (*store.Result, error) {
	tmp, err := os.MkdirTemp("", "datmirror-redump-")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(tmp)

	downloaded := filepath.Join(tmp, "download")
	resp, err := m.Session.Get(ctx, ref)
	if err != nil {
		return nil, err
	}
	if err := fetch.Save(resp, downloaded); err != nil {
		return nil, err
	}

	artifact := downloaded
	if archive.IsZip(downloaded) {
		artifact = filepath.Join(tmp, "unzipped")
		if err := archive.ExtractSole(downloaded, artifact); err != nil {
			return nil, err
		}
	}
	return store.Store(artifact, f, m.OutDir)
}
