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

package driver

import (
	"context"

	"golang.org/x/sync/errgroup"

	"pdflayout.dev/pdf"
	"pdflayout.dev/pdf/interp"
	"pdflayout.dev/pdf/table"
)

// TextResult is what [ExtractTextAsync] delivers: the whole-document text
// on success, or the error that stopped extraction.
type TextResult struct {
	Text string
	Err  error
}

// ExtractTextAsync runs ExtractText on a goroutine and returns a channel
// that receives exactly one TextResult before being closed. This is the
// Go analogue of spec.md §5's "async wrappers offload... to a blocking
// thread pool": the goroutine scheduler is already that pool, so no
// extra dependency is needed for this single-call case.
func ExtractTextAsync(ctx context.Context, doc pdf.Document, opts Options) <-chan TextResult {
	ch := make(chan TextResult, 1)
	go func() {
		text, err := New(doc, opts).ExtractText(ctx)
		ch <- TextResult{Text: text, Err: err}
		close(ch)
	}()
	return ch
}

// ExtractTextAllPages extracts every page's text concurrently, one
// goroutine per page bounded by concurrency (golang.org/x/sync/errgroup,
// matching spec.md §5's "one worker per... page" scheduling model), and
// returns the page texts in page order. Each goroutine gets its own
// Interpreter and arena — per spec.md §5's "fresh instances per page" —
// since neither is safe to share across goroutines.
func ExtractTextAllPages(ctx context.Context, doc pdf.Document, opts Options, concurrency int) ([]string, error) {
	n := doc.PageCount()
	out := make([]string, n)

	g, ctx := errgroup.WithContext(ctx)
	if concurrency > 0 {
		g.SetLimit(concurrency)
	}
	for i := 0; i < n; i++ {
		pageNumber := i + 1
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			ip := interp.New(doc)
			page, err := ip.RenderPage(pageNumber)
			if err != nil {
				return err
			}
			lt := analyzeOnePage(ip, page, opts)
			out[pageNumber-1] = lt.Text()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// ExtractTablesAllPages finds tables on pageNumbers concurrently, bounded
// by concurrency, returning results in the same order as pageNumbers: the
// i-th entry holds the tables found on page pageNumbers[i].
func ExtractTablesAllPages(ctx context.Context, doc pdf.Document, pageNumbers []int, settings table.Settings, opts Options, concurrency int) ([][]table.TableWithText, error) {
	out := make([][]table.TableWithText, len(pageNumbers))

	g, ctx := errgroup.WithContext(ctx)
	if concurrency > 0 {
		g.SetLimit(concurrency)
	}
	for i, pageNumber := range pageNumbers {
		i, pageNumber := i, pageNumber
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			ip := interp.New(doc)
			page, err := ip.RenderPage(pageNumber)
			if err != nil {
				return err
			}
			out[i] = table.FindTables(ip.Arena(), page, settings)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
