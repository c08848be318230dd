package graph

import "strings"

// Directive is one parsed `@typegraph:name(key:"value",...)` annotation
// found in a doc comment or struct tag. The adapter is responsible for
// extracting the raw comment/tag text; ParseDirectives only understands
// the directive grammar itself, so it stays independent of how the
// source language represents comments.
type Directive struct {
	Name   string
	Params map[string]string
	Lists  map[string][]string
}

// DeprecatedDirective marks a member deprecated, with an optional reason.
// Produced from `@typegraph:deprecated(reason:"...")`.
type DeprecatedDirective struct {
	Reason string
}

// DescriptionDirective attaches a human-readable description to a member.
// Produced from `@typegraph:description("...")`.
type DescriptionDirective struct {
	Text string
}

// AliasNameDirective overrides the name under which a member should be
// reported, e.g. when a generated binding name would otherwise collide.
// Produced from `@typegraph:name("...")`.
type AliasNameDirective struct {
	Name string
}

// RawDirective is the fallback for a recognized-but-unmapped directive
// name: its params/lists are preserved verbatim so callers with
// domain-specific needs can still consume it.
type RawDirective struct {
	Name   string
	Params map[string]string
	Lists  map[string][]string
}

// The following directive names drive classification itself; an adapter
// reads these off a declaration's directives before falling back to
// structural detection.

// RefDirective names another type by string, resolved against a
// Namespace: `@typegraph:ref(name:"Other")`.
type RefDirective struct {
	Name string
}

// LiteralDirective marks a string-kind basic type as the LiteralString
// singleton rather than plain Concrete: `@typegraph:literal`.
type LiteralDirective struct{}

// TypeGuardDirective marks a `func(x T) bool` as narrowing its parameter
// to Target: `@typegraph:typeguard(target:"SomeType")`.
type TypeGuardDirective struct {
	Target string
}

// TypeIsDirective is TypeGuardDirective's TypeIs-narrowing counterpart:
// `@typegraph:typeis(target:"SomeType")`.
type TypeIsDirective struct {
	Target string
}

// SelfDirective marks a method/field's declared type as the enclosing
// type's SelfType: `@typegraph:self`.
type SelfDirective struct{}

// NeverDirective marks a defined type over struct{} as the bottom
// marker: `@typegraph:never`.
type NeverDirective struct{}

// QualifierDirective maps a directive name to one of the source
// language's type qualifiers (ClassVar, Final, ...) for a field that Go
// has no syntax of its own to express: `@typegraph:qualifier(kind:"final")`.
type QualifierDirective struct {
	Kind Qualifier
}

// ParseDirectives scans comment lines for `@typegraph:...` directives, one
// per logical line after comment markers have already been stripped by
// the caller: prefix detection, parenthesized key:value params, and
// bracket/quote-aware list values.
func ParseDirectives(lines []string) []Directive {
	var out []Directive
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "@typegraph:") {
			continue
		}
		rest := strings.TrimPrefix(line, "@typegraph:")
		name, body := splitDirectiveHead(rest)
		if name == "" {
			continue
		}
		params, lists := parseDirectiveBody(body)
		out = append(out, Directive{Name: name, Params: params, Lists: lists})
	}
	return out
}

// splitDirectiveHead splits "name(body)" or a bare "name" into its name
// and the raw parenthesized body (empty if there is none).
func splitDirectiveHead(s string) (name, body string) {
	open := strings.IndexByte(s, '(')
	if open == -1 {
		return strings.TrimSpace(s), ""
	}
	if !strings.HasSuffix(s, ")") {
		return strings.TrimSpace(s[:open]), ""
	}
	return strings.TrimSpace(s[:open]), s[open+1 : len(s)-1]
}

// parseDirectiveBody parses comma-separated key:value pairs, respecting
// quotes and bracketed list values, into scalar params and list params.
func parseDirectiveBody(body string) (map[string]string, map[string][]string) {
	params := make(map[string]string)
	lists := make(map[string][]string)
	for _, part := range splitDirectiveParams(body) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		kv := strings.SplitN(part, ":", 2)
		if len(kv) != 2 {
			// A bare positional value (e.g. @typegraph:description("x"))
			// is stored under the empty key.
			params[""] = unquote(strings.TrimSpace(part))
			continue
		}
		key := strings.TrimSpace(kv[0])
		value := strings.TrimSpace(kv[1])
		if strings.HasPrefix(value, "[") && strings.HasSuffix(value, "]") {
			lists[key] = parseDirectiveList(value)
			continue
		}
		params[key] = unquote(value)
	}
	return params, lists
}

func unquote(s string) string {
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}

// splitDirectiveParams splits on top-level commas, respecting quotes and
// bracketed list values.
func splitDirectiveParams(s string) []string {
	var parts []string
	var cur strings.Builder
	inQuotes := false
	var quoteChar byte
	depth := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case inQuotes:
			cur.WriteByte(c)
			if c == quoteChar {
				inQuotes = false
			}
		case c == '"' || c == '\'':
			inQuotes = true
			quoteChar = c
			cur.WriteByte(c)
		case c == '[':
			depth++
			cur.WriteByte(c)
		case c == ']':
			depth--
			cur.WriteByte(c)
		case c == ',' && depth == 0:
			parts = append(parts, cur.String())
			cur.Reset()
		default:
			cur.WriteByte(c)
		}
	}
	if cur.Len() > 0 {
		parts = append(parts, cur.String())
	}
	return parts
}

// parseDirectiveList parses a "[a, b, c]" bracketed value into its
// unquoted, trimmed elements.
func parseDirectiveList(value string) []string {
	value = strings.TrimPrefix(value, "[")
	value = strings.TrimSuffix(value, "]")
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	var out []string
	for _, item := range splitDirectiveParams(value) {
		item = unquote(strings.TrimSpace(item))
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}

// ToMetadataItems converts parsed directives into the typed metadata
// items the rest of the engine understands, falling back to RawDirective
// for names it doesn't recognize. Unrecognized directives are kept
// rather than dropped, so a caller's own Protocol-based query can still
// find them.
func ToMetadataItems(directives []Directive) []any {
	out := make([]any, 0, len(directives))
	for _, d := range directives {
		switch d.Name {
		case "deprecated":
			reason := d.Params["reason"]
			if reason == "" {
				reason = d.Params[""]
			}
			out = append(out, DeprecatedDirective{Reason: reason})
		case "description":
			text := d.Params[""]
			if text == "" {
				text = d.Params["text"]
			}
			out = append(out, DescriptionDirective{Text: text})
		case "name":
			name := d.Params[""]
			if name == "" {
				name = d.Params["value"]
			}
			out = append(out, AliasNameDirective{Name: name})
		case "group":
			label := d.Params["label"]
			var items []any
			for _, v := range d.Lists["items"] {
				items = append(items, v)
			}
			out = append(out, Group{Label: label, Items: items})
		case "ref":
			name := d.Params["name"]
			if name == "" {
				name = d.Params[""]
			}
			out = append(out, RefDirective{Name: name})
		case "literal":
			out = append(out, LiteralDirective{})
		case "typeguard":
			out = append(out, TypeGuardDirective{Target: d.Params["target"]})
		case "typeis":
			out = append(out, TypeIsDirective{Target: d.Params["target"]})
		case "self":
			out = append(out, SelfDirective{})
		case "never":
			out = append(out, NeverDirective{})
		case "qualifier":
			out = append(out, QualifierDirective{Kind: parseQualifierName(d.Params["kind"])})
		default:
			out = append(out, RawDirective{Name: d.Name, Params: d.Params, Lists: d.Lists})
		}
	}
	return out
}

var qualifierDirectiveNames = map[string]Qualifier{
	"class_var":    QualifierClassVar,
	"final":        QualifierFinal,
	"required":     QualifierRequired,
	"not_required": QualifierNotRequired,
	"read_only":    QualifierReadOnly,
	"init_var":     QualifierInitVar,
}

func parseQualifierName(s string) Qualifier {
	if q, ok := qualifierDirectiveNames[s]; ok {
		return q
	}
	return QualifierFinal
}
