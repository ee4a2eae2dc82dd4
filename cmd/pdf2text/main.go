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

// Command pdf2text extracts the reading-order text of one or more PDF
// files to stdout.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math"

	"pdflayout.dev/pdf/docsrc/pdfcpudoc"
	"pdflayout.dev/pdf/driver"
	"pdflayout.dev/pdf/internal/pagerange"
)

func main() {
	pages := &pagerange.PageRange{}
	flag.Var(pages, "p", "range of pages to extract, e.g. 2-5")
	showPageNumbers := flag.Bool("P", false, "print a page-number header before each page")
	concurrency := flag.Int("j", 1, "number of pages to extract concurrently")
	flag.Parse()

	if pages.Start < 1 {
		pages.Start, pages.End = 1, math.MaxInt
	}

	for _, fname := range flag.Args() {
		if err := extractText(fname, *pages, *showPageNumbers, *concurrency); err != nil {
			log.Fatal(err)
		}
	}
}

func extractText(fname string, pages pagerange.PageRange, showPageNumbers bool, concurrency int) error {
	doc, err := pdfcpudoc.Open(fname)
	if err != nil {
		return err
	}

	opts := driver.DefaultOptions()
	end := pages.End
	if n := doc.PageCount(); end > n {
		end = n
	}

	if !showPageNumbers && concurrency > 1 {
		texts, err := driver.ExtractTextAllPages(context.Background(), doc, opts, concurrency)
		if err != nil {
			return err
		}
		for pageNo := pages.Start; pageNo <= end; pageNo++ {
			fmt.Print(texts[pageNo-1])
			fmt.Println()
		}
		return nil
	}

	ctx := context.Background()
	d := driver.New(doc, opts)
	pageNo := 0
	for lt, err := range d.ExtractPages(ctx) {
		pageNo++
		if pageNo < pages.Start {
			continue
		}
		if pageNo > end {
			break
		}
		if err != nil {
			return err
		}
		if showPageNumbers {
			fmt.Println("Page", pageNo)
			fmt.Println()
		}
		fmt.Print(lt.Text())
		fmt.Println()
	}
	return nil
}
