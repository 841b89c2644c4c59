package labeling

import (
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/moneymap/internal/category"
	"github.com/MrJamesThe3rd/moneymap/internal/transaction"
)

// Label assigns a category to every transaction sharing Signature.
type Label struct {
	ID        uuid.UUID
	Signature transaction.Signature
	Category  category.Category
	CreatedAt time.Time
}

// Pending returns the distinct observed signatures that have no label,
// ordered by receiver name, purpose signature and then the remaining fields.
func Pending(observed, labeled []transaction.Signature) []transaction.Signature {
	done := make(map[transaction.Signature]struct{}, len(labeled))
	for _, sig := range labeled {
		done[sig] = struct{}{}
	}

	var out []transaction.Signature

	for _, sig := range observed {
		if _, ok := done[sig]; ok {
			continue
		}

		done[sig] = struct{}{}
		out = append(out, sig)
	}

	slices.SortFunc(out, transaction.Signature.Compare)

	return out
}
