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

// Package driver is the high-level entry point (component G): it
// iterates a [pdf.Document]'s pages, drives the interpreter and layout
// analyzer over each one, and exposes the streaming/whole-document APIs
// cmd/pdf2text and cmd/pdf2tables are built on.
package driver

import (
	"context"
	"fmt"
	"iter"
	"log"
	"strings"

	"pdflayout.dev/pdf"
	"pdflayout.dev/pdf/arena"
	"pdflayout.dev/pdf/interp"
	"pdflayout.dev/pdf/layout"
	"pdflayout.dev/pdf/table"
)

// Options bundles every tunable the driver passes down to the layout
// analyzer and table extractor, plus where to send non-fatal warnings.
type Options struct {
	LAParams      layout.LAParams
	TableSettings table.Settings

	// Logger receives one line per interpreter warning collected while
	// rendering a page (unknown operators, resource lookup failures,
	// XObject cycles — see spec.md §7's propagation policy: these are
	// absorbed, not returned as errors). Defaults to log.Default() if nil.
	Logger *log.Logger
}

// DefaultOptions returns the zero-value-safe defaults: pdfminer.six's
// LAParams defaults, pdfplumber's TableSettings defaults, and the
// standard logger.
func DefaultOptions() Options {
	return Options{
		LAParams:      layout.DefaultLAParams(),
		TableSettings: table.DefaultSettings(),
	}
}

func (o Options) logger() *log.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return log.Default()
}

// Driver runs the interpret-then-analyze pipeline over the pages of one
// Document. It is not safe for concurrent use by multiple goroutines —
// callers that want page-level concurrency should use
// [ExtractTextAllPages] or [ExtractTablesAllPages], which give every page
// its own Interpreter and arena rather than sharing one Driver's.
type Driver struct {
	doc  pdf.Document
	ip   *interp.Interpreter
	opts Options
}

// New returns a Driver reading pages and resources through doc.
func New(doc pdf.Document, opts Options) *Driver {
	return &Driver{doc: doc, ip: interp.New(doc), opts: opts}
}

func (d *Driver) renderAndAnalyze(pageNumber int) (*layout.LTPage, error) {
	page, err := d.ip.RenderPage(pageNumber)
	if err != nil {
		return nil, fmt.Errorf("page %d: %w", pageNumber, err)
	}
	return analyzeOnePage(d.ip, page, d.opts), nil
}

// analyzeOnePage logs an Interpreter's accumulated warnings and runs the
// layout analyzer over the page it just rendered. Shared between Driver's
// own methods and the page-concurrent helpers in async.go, which each
// give every page its own Interpreter.
func analyzeOnePage(ip *interp.Interpreter, page *arena.ArenaPage, opts Options) *layout.LTPage {
	for _, w := range ip.Warnings {
		opts.logger().Printf("page %d: %v", page.PageID, w)
	}
	return layout.Analyze(ip.Arena(), page, opts.LAParams)
}

// ExtractPages iterates every page of the document in order, rendering
// and running layout analysis on each in turn. The iterator stops early
// (without rendering further pages) if the range body returns false, and
// stops immediately, yielding ctx.Err(), if ctx is already done.
func (d *Driver) ExtractPages(ctx context.Context) iter.Seq2[*layout.LTPage, error] {
	return func(yield func(*layout.LTPage, error) bool) {
		for pageNumber := 1; pageNumber <= d.doc.PageCount(); pageNumber++ {
			if err := ctx.Err(); err != nil {
				yield(nil, err)
				return
			}
			lt, err := d.renderAndAnalyze(pageNumber)
			if !yield(lt, err) {
				return
			}
		}
	}
}

// ExtractText concatenates the text of every page, in page order.
func (d *Driver) ExtractText(ctx context.Context) (string, error) {
	var b strings.Builder
	for lt, err := range d.ExtractPages(ctx) {
		if err != nil {
			return "", err
		}
		b.WriteString(lt.Text())
	}
	return b.String(), nil
}

// ExtractTables finds tables on each of pageNumbers (1-based), in the
// order given, using settings in place of the Driver's own
// Options.TableSettings (the table extractor's tuning is usually
// per-call, unlike LAParams which is stable for a whole document).
func (d *Driver) ExtractTables(ctx context.Context, pageNumbers []int, settings table.Settings) ([][]table.TableWithText, error) {
	out := make([][]table.TableWithText, len(pageNumbers))
	for i, pageNumber := range pageNumbers {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		page, err := d.ip.RenderPage(pageNumber)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", pageNumber, err)
		}
		for _, w := range d.ip.Warnings {
			d.opts.logger().Printf("page %d: %v", pageNumber, w)
		}
		out[i] = table.FindTables(d.ip.Arena(), page, settings)
	}
	return out, nil
}
