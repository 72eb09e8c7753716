package ioformat

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/fgrzeskowiak/rulelearn/internal/data"
	"github.com/fgrzeskowiak/rulelearn/internal/values"
)

// attributeDoc is the on-disk JSON shape of one attribute declaration.
type attributeDoc struct {
	Name          string   `json:"name"`
	Active        *bool    `json:"active,omitempty"`
	Kind          string   `json:"kind"`
	Preference    string   `json:"preference,omitempty"`
	ValueKind     string   `json:"valueKind"`
	PairInner     string   `json:"pairInner,omitempty"`
	Elements      []string `json:"elements,omitempty"`
	MissingFlavor string   `json:"missingFlavor,omitempty"`
}

// ParseAttributesJSON reads a JSON array of attribute declarations and
// builds the []data.Attribute slice NewInformationTable expects.
func ParseAttributesJSON(r io.Reader) ([]data.Attribute, error) {
	var docs []attributeDoc
	if err := json.NewDecoder(r).Decode(&docs); err != nil {
		return nil, formatError(ErrUnparsableValue, "decoding attribute document: %v", err)
	}

	attrs := make([]data.Attribute, len(docs))
	for i, d := range docs {
		attr, err := toAttribute(d)
		if err != nil {
			return nil, err
		}
		attrs[i] = attr
	}
	return attrs, nil
}

func toAttribute(d attributeDoc) (data.Attribute, error) {
	valueKind, err := parseValueKind(d.ValueKind)
	if err != nil {
		return data.Attribute{}, err
	}

	attr := data.Attribute{
		Name:          d.Name,
		Active:        d.Active == nil || *d.Active,
		Kind:          parseKind(d.Kind),
		Preference:    parsePreference(d.Preference),
		ValueKind:     valueKind,
		MissingFlavor: parseMissingFlavor(d.MissingFlavor),
	}

	if valueKind == data.KindEnum {
		attr.Elements = values.NewElementList(d.Elements)
	}
	if valueKind == data.KindPair {
		inner, err := parseValueKind(d.PairInner)
		if err != nil {
			return data.Attribute{}, err
		}
		attr.PairInner = inner
		if inner == data.KindEnum {
			attr.Elements = values.NewElementList(d.Elements)
		}
	}
	return attr, nil
}

func parseKind(s string) data.Kind {
	switch strings.ToLower(s) {
	case "decision":
		return data.KindDecision
	case "description":
		return data.KindDescription
	case "identification":
		return data.KindIdentification
	default:
		return data.KindCondition
	}
}

func parsePreference(s string) values.PreferenceType {
	switch strings.ToLower(s) {
	case "gain":
		return values.Gain
	case "cost":
		return values.Cost
	default:
		return values.None
	}
}

func parseValueKind(s string) (data.ValueKind, error) {
	switch strings.ToLower(s) {
	case "int":
		return data.KindInt, nil
	case "real":
		return data.KindReal, nil
	case "enum":
		return data.KindEnum, nil
	case "pair":
		return data.KindPair, nil
	default:
		return 0, formatError(ErrUnknownValueKind, "unknown value kind %q", s)
	}
}

func parseMissingFlavor(s string) values.MissingFlavor {
	if strings.EqualFold(s, "mv2") {
		return values.MV2
	}
	return values.MV15
}
