// https://github.com/g0v/moedict-webkit (the /a/{term}.json API of www.moedict.tw)
package moedict

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Translation keeps the language order of the response, e.g. English before francais.
type Translation = orderedmap.OrderedMap[string, []string]

type Entry struct {
	Title       string       `json:"t"`
	Translation *Translation `json:"translation,omitempty"`
	Heteronyms  []Heteronym  `json:"h,omitempty"`
	English     string       `json:"English,omitempty"`
}

type Heteronym struct {
	Pinyin      string       `json:"p,omitempty"`
	Bopomofo    string       `json:"b,omitempty"`
	Definitions []Definition `json:"d,omitempty"`
}

type Definition struct {
	WordType string   `json:"type,omitempty"`
	Quotes   []string `json:"q,omitempty"`
	Examples []string `json:"e,omitempty"`
	Gloss    string   `json:"f,omitempty"`
	Links    []string `json:"l,omitempty"`
}

// TypeKey returns the grammatical category of the definition, or NoType.
func (d Definition) TypeKey() string {
	if d.WordType == "" {
		return NoType
	}
	return d.WordType
}

// Lines returns the gloss followed by quotes, examples and links.
func (d Definition) Lines() []string {
	lines := make([]string, 0, 1+len(d.Quotes)+len(d.Examples)+len(d.Links))
	if d.Gloss != "" {
		lines = append(lines, d.Gloss)
	}
	lines = append(lines, d.Quotes...)
	lines = append(lines, d.Examples...)
	lines = append(lines, d.Links...)
	return lines
}
