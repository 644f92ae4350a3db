// Package stylepreset holds the fixed catalogue of style phrases a client can append to a prompt.
package stylepreset

import (
	"github.com/samber/lo"
)

// None is the sentinel key meaning "no preset".
const None = "none"

// Preset is a named phrase appended to a user prompt.
type Preset struct {
	Key    string `json:"key"`
	Label  string `json:"label"`
	Phrase string `json:"phrase"`
}

var presets = []Preset{
	{Key: "minimal", Label: "Minimal", Phrase: "minimalist style, clean and simple design, limited color palette"},
	{Key: "realistic", Label: "Realistic photo", Phrase: "realistic photograph, lifelike detail, high resolution"},
	{Key: "illustration", Label: "Illustration", Phrase: "illustration style, bright colors, flat design"},
	{Key: "painting", Label: "Oil painting", Phrase: "oil painting style, thick brush strokes, artistic expression"},
	{Key: "sketch", Label: "Sketch", Phrase: "hand-drawn sketch, pencil or pen lines, concise design"},
	{Key: "cartoon", Label: "Cartoon", Phrase: "cartoon style, bright colors, exaggerated expressions"},
	{Key: "anime", Label: "Anime", Phrase: "anime style, Japanese animation, expressive eyes"},
	{Key: "fantasy", Label: "Fantasy", Phrase: "fantasy style, magical elements, vibrant colors"},
	{Key: "scifi", Label: "Sci-fi", Phrase: "science fiction style, futuristic elements, advanced technology"},
	{Key: "retro", Label: "Retro", Phrase: "retro style, vintage elements, old film effect"},
	{Key: "neon", Label: "Neon", Phrase: "neon style, glowing bright colors, dark background, cyberpunk atmosphere"},
}

var byKey = lo.KeyBy(presets, func(p Preset) string { return p.Key })

// All returns the presets in display order.
func All() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets)
	return out
}

// Keys returns the preset keys in display order.
func Keys() []string {
	return lo.Map(presets, func(p Preset, _ int) string { return p.Key })
}

// Lookup returns the preset registered under key.
func Lookup(key string) (Preset, bool) {
	p, ok := byKey[key]
	return p, ok
}

// Compose appends the preset phrase to prompt as "<prompt>. <phrase>".
// An empty, "none" or unknown key leaves the prompt unchanged.
func Compose(prompt, key string) string {
	if key == "" || key == None {
		return prompt
	}
	p, ok := Lookup(key)
	if !ok {
		return prompt
	}
	return prompt + ". " + p.Phrase
}
