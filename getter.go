// seehuhn.de/go/pdf - a library for reading and writing PDF files
// Copyright (C) 2025  Jochen Voss <voss@seehuhn.de>
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

package pdf

import (
	"fmt"
	"math"
)

// Getter is the object-resolution capability a [Document] must provide: the
// ability to turn an indirect [Reference] into the [Native] object it
// points to.
type Getter interface {
	Get(ref Reference) (Native, error)
}

const maxRefDepth = 16

// Resolve follows a chain of indirect references until it reaches a
// non-reference object. If obj is not a Reference, it is returned
// unchanged. A chain longer than 16 hops is reported as a [StructuralError]
// rather than looped forever.
func Resolve(r Getter, obj Object) (Native, error) {
	if obj == nil {
		return nil, nil
	}
	ref, isRef := obj.(Reference)
	if !isRef {
		if _, isNull := obj.(Null); isNull {
			return nil, nil
		}
		return obj.(Native), nil
	}

	origRef := ref
	for depth := 0; ; depth++ {
		if depth > maxRefDepth {
			return nil, &StructuralError{
				Err: fmt.Errorf("too many levels of indirection"),
				Loc: "object " + origRef.String(),
			}
		}
		next, err := r.Get(ref)
		if err != nil {
			return nil, err
		}
		if _, isNull := next.(Null); isNull {
			return nil, nil
		}
		ref, isRef = Object(next).(Reference)
		if !isRef {
			return next, nil
		}
	}
}

func resolveAndCast[T Native](r Getter, obj Object) (x T, err error) {
	resolved, err := Resolve(r, obj)
	if err != nil {
		return x, err
	}
	if resolved == nil {
		return x, nil
	}
	x, ok := resolved.(T)
	if ok {
		return x, nil
	}
	return x, &StructuralError{Err: fmt.Errorf("expected %T but got %T", x, resolved)}
}

// Helper functions for getting objects of a specific type. Each resolves
// obj first; if the result is null, a zero value is returned without
// error; if the result is of the wrong type, a [StructuralError] is
// returned.
var (
	GetArray   = resolveAndCast[Array]
	GetBoolean = resolveAndCast[Boolean]
	GetDict    = resolveAndCast[Dict]
	GetName    = resolveAndCast[Name]
	GetReal    = resolveAndCast[Real]
	GetStream  = resolveAndCast[*Stream]
	GetString  = resolveAndCast[String]
)

// GetInteger resolves obj and returns it as an Integer. A Real is silently
// rounded; null yields 0, nil.
func GetInteger(r Getter, obj Object) (Integer, error) {
	resolved, err := Resolve(r, obj)
	if resolved == nil {
		return 0, err
	}
	switch x := resolved.(type) {
	case Integer:
		return x, nil
	case Real:
		return Integer(math.Round(float64(x))), nil
	default:
		return 0, &StructuralError{Err: fmt.Errorf("expected Integer but got %T", resolved)}
	}
}

// GetNumber resolves obj and returns it as a float64, accepting either an
// Integer or a Real. null yields 0, nil.
func GetNumber(r Getter, obj Object) (float64, error) {
	resolved, err := Resolve(r, obj)
	if err != nil {
		return 0, err
	}
	if resolved == nil {
		return 0, nil
	}
	v, ok := Number(resolved)
	if !ok {
		return 0, &StructuralError{Err: fmt.Errorf("expected Number but got %T", resolved)}
	}
	return v, nil
}

// GetFloatArray resolves obj as an Array and converts every element to
// float64 via [Number]. null yields nil, nil.
func GetFloatArray(r Getter, obj Object) ([]float64, error) {
	arr, err := GetArray(r, obj)
	if err != nil || arr == nil {
		return nil, err
	}
	out := make([]float64, len(arr))
	for i, item := range arr {
		resolved, err := Resolve(r, item)
		if err != nil {
			return nil, fmt.Errorf("array element %d: %w", i, err)
		}
		v, ok := Number(resolved)
		if !ok {
			return nil, &StructuralError{Err: fmt.Errorf("array element %d: not a number", i)}
		}
		out[i] = v
	}
	return out, nil
}

// DecodeStream returns the already filter-decoded bytes of a stream, via
// the owning [Document]'s DecodeStream method. This module never decodes
// filters itself (see [Document]); it only reads what the collaborator
// hands back.
func DecodeStream(r Getter, s *Stream, numFilters int) ([]byte, error) {
	dr, ok := r.(interface {
		DecodeStream(*Stream, int) ([]byte, error)
	})
	if !ok {
		return nil, Errorf("getter does not support stream decoding")
	}
	return dr.DecodeStream(s, numFilters)
}
