package ioformat

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"
	"strings"

	"github.com/fgrzeskowiak/rulelearn/internal/data"
	"github.com/fgrzeskowiak/rulelearn/internal/values"
)

// missingToken is the text/JSON-string spelling of an absent evaluation
// in both object formats.
const missingToken = "?"

// ParseObjectsCSV reads object rows from a headerless CSV stream, one
// field per entry of attrs in order, and builds an InformationTable.
func ParseObjectsCSV(attrs []data.Attribute, r io.Reader) (*data.InformationTable, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = len(attrs)

	var rows [][]values.Value
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, formatError(ErrFieldCountMismatch, "reading CSV record: %v", err)
		}
		row, err := parseRow(attrs, record)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return data.NewInformationTable(attrs, rows)
}

// ParseObjectsJSON reads an InformationTable from a JSON array of
// arrays, one field per entry of attrs in order, matching the object
// order CSV uses.
func ParseObjectsJSON(attrs []data.Attribute, r io.Reader) (*data.InformationTable, error) {
	var raw [][]json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, formatError(ErrUnparsableValue, "decoding object document: %v", err)
	}

	rows := make([][]values.Value, len(raw))
	for i, record := range raw {
		if len(record) != len(attrs) {
			return nil, formatError(ErrFieldCountMismatch,
				"object %d has %d fields, want %d", i, len(record), len(attrs))
		}
		row := make([]values.Value, len(attrs))
		for j, attr := range attrs {
			var text string
			if err := json.Unmarshal(record[j], &text); err != nil {
				// Field wasn't a JSON string - re-encode it as text so
				// numbers and bare literals flow through the same
				// parser as CSV fields.
				text = strings.TrimSpace(string(record[j]))
			}
			v, err := parseField(attr, text)
			if err != nil {
				return nil, err
			}
			row[j] = v
		}
		rows[i] = row
	}
	return data.NewInformationTable(attrs, rows)
}

func parseRow(attrs []data.Attribute, record []string) ([]values.Value, error) {
	row := make([]values.Value, len(attrs))
	for i, attr := range attrs {
		v, err := parseField(attr, record[i])
		if err != nil {
			return nil, err
		}
		row[i] = v
	}
	return row, nil
}

func parseField(attr data.Attribute, text string) (values.Value, error) {
	text = strings.TrimSpace(text)
	if text == missingToken {
		return values.NewMissing(attr.MissingFlavor), nil
	}

	switch attr.ValueKind {
	case data.KindInt:
		n, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return nil, formatError(ErrUnparsableValue, "attribute %q: %q is not an int", attr.Name, text)
		}
		return values.IntValue(n), nil
	case data.KindReal:
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, formatError(ErrUnparsableValue, "attribute %q: %q is not a real", attr.Name, text)
		}
		return values.RealValue(f), nil
	case data.KindEnum:
		idx, ok := attr.Elements.IndexOf(text)
		if !ok {
			return nil, formatError(ErrUnknownEnumLabel, "attribute %q: label %q not in domain", attr.Name, text)
		}
		return values.EnumValue{Elements: attr.Elements, Index: idx}, nil
	case data.KindPair:
		return parsePair(attr, text)
	default:
		return nil, formatError(ErrUnknownValueKind, "attribute %q: unhandled value kind", attr.Name)
	}
}

// parsePair parses a "first;second" pair field using attr.PairInner for
// both components.
func parsePair(attr data.Attribute, text string) (values.Value, error) {
	parts := strings.SplitN(text, ";", 2)
	if len(parts) != 2 {
		return nil, formatError(ErrUnparsableValue, "attribute %q: pair field %q is not \"first;second\"", attr.Name, text)
	}
	inner := data.Attribute{Name: attr.Name, ValueKind: attr.PairInner, Elements: attr.Elements, MissingFlavor: attr.MissingFlavor}
	first, err := parseField(inner, parts[0])
	if err != nil {
		return nil, err
	}
	second, err := parseField(inner, parts[1])
	if err != nil {
		return nil, err
	}
	return values.PairValue{First: first, Second: second}, nil
}
