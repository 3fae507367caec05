package language

import (
	"slices"
	"sort"
)

// Info describes the comment syntax of one language id.
type Info struct {
	ID         string `json:"id"`
	SingleLine string `json:"single_line,omitempty"`
	BlockStart string `json:"block_start,omitempty"`
	BlockEnd   string `json:"block_end,omitempty"`
	DocStyle   bool   `json:"doc_style,omitempty"`
	PlainText  bool   `json:"plain_text,omitempty"`

	// Files lists the extensions and file names Detect maps to ID.
	Files []string `json:"files,omitempty"`
}

// All describes every supported language id, sorted by id. Plaintext is
// listed with plain-text highlighting enabled.
func All() []Info {
	ids := IDs()
	files := filesByID()
	infos := make([]Info, 0, len(ids))
	for _, id := range ids {
		p := Lookup(id, true)
		if !p.Supported {
			continue
		}
		infos = append(infos, Info{
			ID:         id,
			SingleLine: p.SingleLine,
			BlockStart: p.BlockStart,
			BlockEnd:   p.BlockEnd,
			DocStyle:   p.DocStyle,
			PlainText:  p.PlainText,
			Files:      files[id],
		})
	}
	return infos
}

// filesByID inverts the detection tables.
func filesByID() map[string][]string {
	out := make(map[string][]string)
	for ext, id := range byExt {
		out[id] = append(out[id], "*"+ext)
	}
	for name, id := range byName {
		out[id] = append(out[id], name)
	}
	for id := range out {
		sort.Strings(out[id])
		out[id] = slices.Compact(out[id])
	}
	return out
}
