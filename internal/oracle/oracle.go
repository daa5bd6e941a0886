// Package oracle runs one consultation: load the bundled sources, merge
// them, draw a name and present it.
package oracle

import (
	"errors"
	"fmt"
	"io"

	"github.com/f3rmion/cosmic-oracle/internal/catalog"
	"github.com/f3rmion/cosmic-oracle/internal/names"
	"github.com/f3rmion/cosmic-oracle/internal/present"
)

// ErrEmptyCandidateSet means no source produced a usable name.
var ErrEmptyCandidateSet = errors.New("the star names list is empty, unable to provide suggestions")

// Run performs a single consultation. Row warnings go to warn.
func Run(cat *catalog.Catalog, p *present.Presenter, rng names.Source, warn io.Writer) error {
	p.Intro()

	sources := cat.Sources()
	lists := make([][]string, 0, len(sources))
	for _, src := range sources {
		lists = append(lists, names.Load(src.Name, src.Data, warn))
	}

	all := names.Merge(lists...)
	if len(all) == 0 {
		return fmt.Errorf("%w (%d sources loaded)", ErrEmptyCandidateSet, len(sources))
	}

	name, err := names.Pick(all, rng)
	if err != nil {
		p.Silent()
		return nil
	}

	p.Show(name)
	return nil
}
