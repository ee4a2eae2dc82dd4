// seehuhn.de/go/pdf - a library for reading and writing PDF files
// Copyright (C) 2024  Jochen Voss <voss@seehuhn.de>
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

// Package pagerange implements a flag.Value for the "-p" command-line
// flag shared by cmd/pdf2text and cmd/pdf2tables: a single page number or
// an inclusive "first-last" range.
package pagerange

import (
	"fmt"
	"strconv"
	"strings"
)

// PageRange is an inclusive range of 1-based page numbers.
type PageRange struct {
	Start, End int
}

func (pr PageRange) String() string {
	if pr.Start == pr.End {
		return strconv.Itoa(pr.Start)
	}
	return fmt.Sprintf("%d-%d", pr.Start, pr.End)
}

// Set implements flag.Value, parsing either "N" or "N-M" with 1 <= N <= M.
func (pr *PageRange) Set(s string) error {
	parts := strings.Split(s, "-")
	switch len(parts) {
	case 1:
		n, err := strconv.Atoi(parts[0])
		if err != nil {
			return fmt.Errorf("pagerange: invalid page number %q", s)
		}
		if n < 1 {
			return fmt.Errorf("pagerange: page number must be positive, got %d", n)
		}
		*pr = PageRange{n, n}
		return nil
	case 2:
		start, err1 := strconv.Atoi(parts[0])
		end, err2 := strconv.Atoi(parts[1])
		if err1 != nil || err2 != nil {
			return fmt.Errorf("pagerange: invalid page range %q", s)
		}
		if start < 1 {
			return fmt.Errorf("pagerange: page number must be positive, got %d", start)
		}
		if end < start {
			return fmt.Errorf("pagerange: range end %d before start %d", end, start)
		}
		*pr = PageRange{start, end}
		return nil
	default:
		return fmt.Errorf("pagerange: invalid page range %q", s)
	}
}

// Contains reports whether page is within the range.
func (pr PageRange) Contains(page int) bool {
	return page >= pr.Start && page <= pr.End
}
