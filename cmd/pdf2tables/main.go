// seehuhn.de/go/pdf - a library for reading and writing PDF files
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Command pdf2tables finds ruled or whitespace-implied tables on one or
// more PDF files and prints their cell text as tab-separated rows.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math"
	"strings"

	"pdflayout.dev/pdf/docsrc/pdfcpudoc"
	"pdflayout.dev/pdf/driver"
	"pdflayout.dev/pdf/internal/pagerange"
	"pdflayout.dev/pdf/table"
)

func main() {
	pages := &pagerange.PageRange{}
	flag.Var(pages, "p", "range of pages to search, e.g. 2-5")
	strategy := flag.String("strategy", "lines", "edge strategy: lines, lines_strict, or text")
	concurrency := flag.Int("j", 1, "number of pages to search concurrently")
	flag.Parse()

	if pages.Start < 1 {
		pages.Start, pages.End = 1, math.MaxInt
	}

	s, err := parseStrategy(*strategy)
	if err != nil {
		log.Fatal(err)
	}

	for _, fname := range flag.Args() {
		if err := extractTables(fname, pages, s, *concurrency); err != nil {
			log.Fatal(err)
		}
	}
}

func parseStrategy(s string) (table.Strategy, error) {
	switch s {
	case "lines":
		return table.Lines, nil
	case "lines_strict":
		return table.LinesStrict, nil
	case "text":
		return table.Text, nil
	default:
		return 0, fmt.Errorf("pdf2tables: unknown strategy %q", s)
	}
}

func extractTables(fname string, pages *pagerange.PageRange, strategy table.Strategy, concurrency int) error {
	doc, err := pdfcpudoc.Open(fname)
	if err != nil {
		return err
	}

	settings := table.DefaultSettings()
	settings.VerticalStrategy = strategy
	settings.HorizontalStrategy = strategy

	end := pages.End
	if n := doc.PageCount(); end > n {
		end = n
	}
	pageNumbers := make([]int, 0, end-pages.Start+1)
	for p := pages.Start; p <= end; p++ {
		pageNumbers = append(pageNumbers, p)
	}

	opts := driver.DefaultOptions()
	var byPage [][]table.TableWithText
	if concurrency > 1 {
		byPage, err = driver.ExtractTablesAllPages(context.Background(), doc, pageNumbers, settings, opts, concurrency)
	} else {
		byPage, err = driver.New(doc, opts).ExtractTables(context.Background(), pageNumbers, settings)
	}
	if err != nil {
		return err
	}

	for i, tables := range byPage {
		for _, t := range tables {
			fmt.Printf("Page %d table at (%.1f,%.1f)-(%.1f,%.1f)\n", pageNumbers[i], t.X0, t.Top, t.X1, t.Bottom)
			printRows(t)
			fmt.Println()
		}
	}
	return nil
}

func printRows(t table.TableWithText) {
	var rows [][]string
	var row []string
	var rowTop float64
	for i, c := range t.Cells {
		if len(row) == 0 {
			rowTop = c.Top
		} else if c.Top != rowTop {
			rows = append(rows, row)
			row = nil
			rowTop = c.Top
		}
		row = append(row, t.CellText[i])
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	for _, r := range rows {
		fmt.Println(strings.Join(r, "\t"))
	}
}
