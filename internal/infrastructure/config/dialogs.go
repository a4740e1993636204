package config

import (
	"errors"
	"fmt"
	"sort"

	"github.com/agnivade/levenshtein"
)

// ErrUnknownDialog is returned when a dialog script id is not defined
var ErrUnknownDialog = errors.New("unknown dialog")

// suggestDistance is the largest edit distance offered as a suggestion
const suggestDistance = 3

// Dialogs is the root config for dialogs.yaml
type Dialogs struct {
	Scripts map[string]string `yaml:"dialogs"`
}

// Get returns the text of the script with the given id
func (d *Dialogs) Get(id string) (string, error) {
	if text, ok := d.Scripts[id]; ok {
		return text, nil
	}
	if s := d.suggest(id); s != "" {
		return "", fmt.Errorf("%w %q (did you mean %q?)", ErrUnknownDialog, id, s)
	}
	return "", fmt.Errorf("%w %q", ErrUnknownDialog, id)
}

// IDs returns the defined script ids in sorted order
func (d *Dialogs) IDs() []string {
	ids := make([]string, 0, len(d.Scripts))
	for id := range d.Scripts {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (d *Dialogs) suggest(id string) string {
	best := ""
	bestDist := suggestDistance + 1
	for _, cand := range d.IDs() {
		dist := levenshtein.ComputeDistance(id, cand)
		if dist < bestDist {
			best = cand
			bestDist = dist
		}
	}
	return best
}
