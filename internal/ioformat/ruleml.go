package ioformat

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/fgrzeskowiak/rulelearn/internal/data"
	"github.com/fgrzeskowiak/rulelearn/internal/rules"
)

type ruleMLSet struct {
	XMLName xml.Name    `xml:"RuleSet"`
	Rules   []ruleMLRow `xml:"Rule"`
}

type ruleMLRow struct {
	ID         string         `xml:"id,attr"`
	Type       string         `xml:"type,attr"`
	Semantics  string         `xml:"semantics,attr"`
	Conditions []ruleMLCond   `xml:"Conditions>Condition"`
	Decision   ruleMLDecision `xml:"Decision"`
}

type ruleMLCond struct {
	Attribute int    `xml:"attribute,attr"`
	Relation  string `xml:"relation,attr"`
	Variant   string `xml:"variant,attr"`
	Limit     string `xml:"limit,attr"`
}

type ruleMLDecision struct {
	Attributes []int  `xml:"attributes,attr"`
	Value      string `xml:"value,attr,omitempty"`
}

// WriteRuleML serializes rs to w as RuleML-shaped XML: one <Rule>
// element per rule, its LHS as <Condition> children, its head as a
// single <Decision> element.
func WriteRuleML(w io.Writer, rs *rules.RuleSet) error {
	doc := ruleMLSet{Rules: make([]ruleMLRow, rs.Len())}
	for i, r := range rs.Rules() {
		doc.Rules[i] = toRuleMLRow(r)
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	return enc.Encode(doc)
}

func toRuleMLRow(r rules.Rule) ruleMLRow {
	row := ruleMLRow{
		ID:         r.ID,
		Type:       r.Type.String(),
		Semantics:  r.Semantics.String(),
		Conditions: make([]ruleMLCond, len(r.Conditions)),
		Decision:   toRuleMLDecision(r.Limiting),
	}
	for i, c := range r.Conditions {
		row.Conditions[i] = ruleMLCond{
			Attribute: c.AttributeIndex,
			Relation:  c.Relation.String(),
			Variant:   c.Variant.String(),
			Limit:     c.Limit.String(),
		}
	}
	return row
}

func toRuleMLDecision(dec data.Decision) ruleMLDecision {
	if dec == nil {
		return ruleMLDecision{}
	}
	switch d := dec.(type) {
	case data.SimpleDecision:
		return ruleMLDecision{Attributes: d.AttributeIndices(), Value: d.Value.String()}
	case data.CompositeDecision:
		parts := make([]string, len(d.Coordinates))
		for i, c := range d.Coordinates {
			parts[i] = c.Value.String()
		}
		return ruleMLDecision{Attributes: d.AttributeIndices(), Value: fmt.Sprint(parts)}
	default:
		return ruleMLDecision{Attributes: dec.AttributeIndices()}
	}
}
