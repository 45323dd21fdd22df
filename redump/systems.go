package redump

import (
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// System is one row of the redump downloads table.
type System struct {
	Name string
	// DatfileURL and BIOSURL are site-relative; empty when the system
	// has no corresponding link.
	DatfileURL string
	BIOSURL    string
}

// Systems scrapes the downloads page table.
func (m *Mirror) Systems(ctx context.Context) ([]System, error) {
	resp, err := m.Session.Get(ctx, "downloads")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, err
	}
	rows := doc.Find("#main table tr")
	if rows.Length() == 0 {
		return nil, fmt.Errorf("downloads page has no systems table")
	}

	nameIdx, datIdx, biosIdx, err := columnIndices(rows.First())
	if err != nil {
		return nil, err
	}
	minCells := max(nameIdx, datIdx, biosIdx) + 1

	var systems []System
	var rowErr error
	rows.Slice(1, rows.Length()).Each(func(_ int, tr *goquery.Selection) {
		if rowErr != nil {
			return
		}
		tds := tr.Find("td")
		if tds.Length() < minCells {
			return
		}
		name := strings.TrimSpace(tds.Eq(nameIdx).Text())
		if name == "" {
			rowErr = fmt.Errorf("systems table row with empty name cell")
			return
		}
		systems = append(systems, System{
			Name:       name,
			DatfileURL: cellLink(tds.Eq(datIdx)),
			BIOSURL:    cellLink(tds.Eq(biosIdx)),
		})
	})
	if rowErr != nil {
		return nil, rowErr
	}
	return systems, nil
}

func columnIndices(head *goquery.Selection) (name, dat, bios int, err error) {
	name, dat, bios = -1, -1, -1
	head.Find("th").Each(func(i int, th *goquery.Selection) {
		switch strings.TrimSpace(th.Text()) {
		case "Systems":
			name = i
		case "Datfiles":
			dat = i
		case "BIOS Datfiles":
			bios = i
		}
	})
	switch {
	case name < 0:
		err = fmt.Errorf("systems table has no Systems column")
	case dat < 0:
		err = fmt.Errorf("systems table has no Datfiles column")
	case bios < 0:
		err = fmt.Errorf("systems table has no BIOS Datfiles column")
	}
	return name, dat, bios, err
}

func cellLink(td *goquery.Selection) string {
	href, ok := td.Find("a").First().Attr("href")
	if !ok {
		return ""
	}
	return href
}
