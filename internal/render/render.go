// Package render lays out dictionary results as terminal text or JSON.
package render

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/at-ishikawa/meowdict/internal/dictionary"
	"github.com/at-ishikawa/meowdict/internal/dictionary/moedict"
	"github.com/at-ishikawa/meowdict/internal/textconv"
)

type Options struct {
	// Width is the terminal width. Lines are never wider than MaxLineWidth.
	Width     int
	NoColor   bool
	ResultT2S bool
}

type Renderer struct {
	palette   palette
	width     int
	resultT2S bool
}

func New(options Options) *Renderer {
	return &Renderer{
		palette:   newPalette(options.NoColor),
		width:     options.Width,
		resultT2S: options.ResultT2S,
	}
}

// Dictionary renders the definitions of every entry.
func (r *Renderer) Dictionary(entries []moedict.Entry) (string, error) {
	var lines []string
	for _, entry := range entries {
		lines = append(lines, r.palette.title.Sprintf("%s：", entry.Title))
		if entry.English != "" {
			lines = append(lines, r.palette.english.Sprint(Wrap("  英語："+entry.English, 2, r.width)))
		}
		for _, heteronym := range entry.Heteronyms {
			heteronymLines, err := r.heteronym(heteronym)
			if err != nil {
				return "", fmt.Errorf("%s > %w", entry.Title, err)
			}
			lines = append(lines, heteronymLines...)
		}
	}
	return r.finish(lines)
}

func (r *Renderer) heteronym(heteronym moedict.Heteronym) ([]string, error) {
	var lines []string
	if heteronym.Pinyin != "" {
		lines = append(lines, r.palette.pinyin.Sprintf("  拼音：%s", heteronym.Pinyin))
	}
	if heteronym.Bopomofo != "" {
		lines = append(lines, r.palette.bopomofo.Sprintf("  注音：%s", heteronym.Bopomofo))
	}
	if len(heteronym.Definitions) == 0 {
		return lines, nil
	}

	grouped, err := moedict.GroupDefinitions(heteronym.Definitions)
	if err != nil {
		return nil, fmt.Errorf("moedict.GroupDefinitions > %w", err)
	}
	for pair := grouped.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Key != moedict.NoType {
			lines = append(lines, r.palette.wordType.Sprintf("%3s：", pair.Key))
		}
		for i, group := range pair.Value {
			first := ""
			if len(group) > 0 {
				first = group[0]
			}
			numbered := fmt.Sprintf("%3d.%s", i+1, first)
			lines = append(lines, r.palette.definition.Sprint(Wrap(numbered, 2, r.width)))
			for _, line := range group[min(1, len(group)):] {
				lines = append(lines, r.palette.auxiliary.Sprint(Wrap("    "+line, 4, r.width)))
			}
		}
	}
	return lines, nil
}

// Translation renders the translations of every entry, language by language.
func (r *Renderer) Translation(entries []moedict.Entry) (string, error) {
	var lines []string
	for _, entry := range entries {
		lines = append(lines, r.palette.title.Sprintf("%s：", entry.Title))
		if entry.Translation == nil {
			continue
		}
		for pair := entry.Translation.Oldest(); pair != nil; pair = pair.Next() {
			lines = append(lines, r.palette.wordType.Sprintf("%s:", pair.Key))
			for _, text := range pair.Value {
				lines = append(lines, r.palette.auxiliary.Sprint(text))
			}
		}
	}
	return r.finish(lines)
}

// Jyutping renders the readings of every term. A failed term shows its error.
func (r *Renderer) Jyutping(batch dictionary.Batch[[]string]) (string, error) {
	var lines []string
	for _, resolution := range batch {
		lines = append(lines, r.palette.title.Sprintf("%s：", resolution.Term))
		if resolution.Err != nil {
			lines = append(lines, r.palette.auxiliary.Sprint(resolution.Err.Error()))
			continue
		}
		lines = append(lines, r.palette.wordType.Sprint(strings.Join(resolution.Value, "\n")))
	}
	return r.finish(lines)
}

// Reverse renders the candidate words of every description, best match first.
func (r *Renderer) Reverse(results []dictionary.ReverseResult) (string, error) {
	var lines []string
	for _, result := range results {
		lines = append(lines, r.palette.title.Sprintf("%s：", result.Description))
		for i, match := range result.Matches {
			lines = append(lines, r.palette.definition.Sprintf("%3d.%s (%.2f)", i+1, match.Word, match.Correlation))
		}
	}
	return r.finish(lines)
}

// JSON serializes the records.
func (r *Renderer) JSON(records []dictionary.Record) (string, error) {
	if records == nil {
		records = []dictionary.Record{}
	}
	contents, err := json.Marshal(records)
	if err != nil {
		return "", fmt.Errorf("json.Marshal > %w", err)
	}
	return r.convert(string(contents))
}

// Banner is the greeting shown when the console starts.
func (r *Renderer) Banner(version string) string {
	return r.palette.banner.Sprintf("Welcome to meowdict %s!", version)
}

func (r *Renderer) finish(lines []string) (string, error) {
	return r.convert(strings.Join(lines, "\n"))
}

func (r *Renderer) convert(text string) (string, error) {
	if !r.resultT2S {
		return text, nil
	}
	converted, err := textconv.T2S(text)
	if err != nil {
		return "", fmt.Errorf("textconv.T2S > %w", err)
	}
	return converted, nil
}
