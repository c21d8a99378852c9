package catalog

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/alitto/pond"

	"github.com/ironsheep/color-family-mcp/internal/family"
)

// Reclassification is the outcome of re-running family resolution on one
// catalog entry.
type Reclassification struct {
	ID     string `json:"id"`
	Family string `json:"family"`
	Source Source `json:"source"`
	Code   string `json:"code"`

	// PrefixChanged is true when the entry has a SKU whose prefix no longer
	// matches Code. Such entries would get a different SKU if created today.
	PrefixChanged bool `json:"prefix_changed"`
}

// Reclassify resolves the family of every entry concurrently on a pool of
// the given number of workers. All entries are classified against the same
// boundary snapshot. Results keep the input order.
//
// If ctx is cancelled, entries not yet started are skipped and ctx.Err() is
// returned.
func Reclassify(ctx context.Context, classifier family.Classifier, entries []Entry, workers int) ([]Reclassification, error) {
	if len(entries) == 0 {
		return []Reclassification{}, nil
	}
	if workers < 1 {
		workers = 1
	}

	panicHandler := func(p interface{}) {
		log.Printf("Reclassify task panicked: %v", p)
	}
	pool := pond.New(workers, len(entries), pond.MinWorkers(workers), pond.PanicHandler(panicHandler))

	results := make([]Reclassification, len(entries))
	for i := range entries {
		i := i
		pool.Submit(func() {
			if ctx.Err() != nil {
				return
			}
			results[i] = reclassifyOne(classifier, entries[i])
		})
	}
	pool.StopAndWait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if n := pool.FailedTasks(); n > 0 {
		return nil, fmt.Errorf("reclassify: %d of %d tasks failed", n, len(entries))
	}
	return results, nil
}

func reclassifyOne(classifier family.Classifier, e Entry) Reclassification {
	fam, src := ResolveFamily(classifier, e.Name, e.Color)
	code := family.CodeFor(fam)
	return Reclassification{
		ID:            e.ID,
		Family:        fam,
		Source:        src,
		Code:          code,
		PrefixChanged: e.SKU != "" && !strings.HasPrefix(e.SKU, code),
	}
}
