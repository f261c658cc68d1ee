// Package jsonout serializes a frame to a pretty-printed JSON document.
// Key order always matches column order, which encoding/json maps cannot
// guarantee, so documents are assembled by hand.
package jsonout

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"stressload/internal/frame"
)

// Orient selects the document layout.
type Orient string

const (
	// OrientRecords is an array of one object per row (the default).
	OrientRecords Orient = "records"
	// OrientColumns is an object of one value-array per column.
	OrientColumns Orient = "columns"
	// OrientSplit separates column names and row data.
	OrientSplit Orient = "split"
	// OrientValues is a bare array of row arrays.
	OrientValues Orient = "values"
)

const indent = "    "

// ParseOrient validates an orientation name.
func ParseOrient(s string) (Orient, error) {
	switch Orient(s) {
	case OrientRecords, OrientColumns, OrientSplit, OrientValues:
		return Orient(s), nil
	}
	return "", fmt.Errorf("unknown orientation %q (want records, columns, split, or values)", s)
}

// Marshal renders the frame with 4-space indentation and a trailing newline.
// It is a pure transform; writing the result anywhere is the caller's job.
func Marshal(f *frame.Frame, orient Orient) ([]byte, error) {
	var buf bytes.Buffer
	var err error
	switch orient {
	case OrientRecords:
		err = writeRecords(&buf, f)
	case OrientColumns:
		err = writeColumns(&buf, f)
	case OrientSplit:
		err = writeSplit(&buf, f)
	case OrientValues:
		err = writeValues(&buf, f, 0)
	default:
		return nil, fmt.Errorf("unknown orientation %q", orient)
	}
	if err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

func writeScalar(buf *bytes.Buffer, v frame.Value) error {
	b, err := json.Marshal(v.Interface())
	if err != nil {
		return fmt.Errorf("encode cell: %w", err)
	}
	buf.Write(b)
	return nil
}

func writeKey(buf *bytes.Buffer, name string) error {
	b, err := json.Marshal(name)
	if err != nil {
		return fmt.Errorf("encode key: %w", err)
	}
	buf.Write(b)
	buf.WriteString(": ")
	return nil
}

func writeRecords(buf *bytes.Buffer, f *frame.Frame) error {
	if f.NumRows() == 0 {
		buf.WriteString("[]")
		return nil
	}
	buf.WriteString("[\n")
	for i := 0; i < f.NumRows(); i++ {
		buf.WriteString(indent)
		buf.WriteString("{\n")
		for j := 0; j < f.NumCols(); j++ {
			buf.WriteString(strings.Repeat(indent, 2))
			if err := writeKey(buf, f.ColumnAt(j).Name); err != nil {
				return err
			}
			if err := writeScalar(buf, f.Cell(i, j)); err != nil {
				return err
			}
			if j < f.NumCols()-1 {
				buf.WriteByte(',')
			}
			buf.WriteByte('\n')
		}
		buf.WriteString(indent)
		buf.WriteByte('}')
		if i < f.NumRows()-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	buf.WriteByte(']')
	return nil
}

func writeColumns(buf *bytes.Buffer, f *frame.Frame) error {
	if f.NumCols() == 0 {
		buf.WriteString("{}")
		return nil
	}
	buf.WriteString("{\n")
	for j := 0; j < f.NumCols(); j++ {
		c := f.ColumnAt(j)
		buf.WriteString(indent)
		if err := writeKey(buf, c.Name); err != nil {
			return err
		}
		if len(c.Values) == 0 {
			buf.WriteString("[]")
		} else {
			buf.WriteString("[\n")
			for i, v := range c.Values {
				buf.WriteString(strings.Repeat(indent, 2))
				if err := writeScalar(buf, v); err != nil {
					return err
				}
				if i < len(c.Values)-1 {
					buf.WriteByte(',')
				}
				buf.WriteByte('\n')
			}
			buf.WriteString(indent)
			buf.WriteByte(']')
		}
		if j < f.NumCols()-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	buf.WriteByte('}')
	return nil
}

func writeSplit(buf *bytes.Buffer, f *frame.Frame) error {
	buf.WriteString("{\n")
	buf.WriteString(indent)
	buf.WriteString(`"columns": [`)
	buf.WriteByte('\n')
	names := f.Names()
	for i, name := range names {
		buf.WriteString(strings.Repeat(indent, 2))
		b, err := json.Marshal(name)
		if err != nil {
			return fmt.Errorf("encode key: %w", err)
		}
		buf.Write(b)
		if i < len(names)-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	buf.WriteString(indent)
	buf.WriteString("],\n")
	buf.WriteString(indent)
	buf.WriteString(`"data": `)
	if err := writeValues(buf, f, 1); err != nil {
		return err
	}
	buf.WriteString("\n}")
	return nil
}

func writeValues(buf *bytes.Buffer, f *frame.Frame, level int) error {
	if f.NumRows() == 0 {
		buf.WriteString("[]")
		return nil
	}
	buf.WriteString("[\n")
	for i := 0; i < f.NumRows(); i++ {
		buf.WriteString(strings.Repeat(indent, level+1))
		buf.WriteString("[\n")
		for j := 0; j < f.NumCols(); j++ {
			buf.WriteString(strings.Repeat(indent, level+2))
			if err := writeScalar(buf, f.Cell(i, j)); err != nil {
				return err
			}
			if j < f.NumCols()-1 {
				buf.WriteByte(',')
			}
			buf.WriteByte('\n')
		}
		buf.WriteString(strings.Repeat(indent, level+1))
		buf.WriteByte(']')
		if i < f.NumRows()-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	buf.WriteString(strings.Repeat(indent, level))
	buf.WriteByte(']')
	return nil
}
