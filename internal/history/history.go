// Package history holds the small shared pieces of the snapshot-on-write
// scheme: resolving the acting teacher from the request context and building
// the prev/new reference pair for a change record.
//
// The scheme itself: updates clone the current field values into a fresh
// retired row and overwrite the live row in place, so foreign keys keep
// pointing at a stable id while the clone stays immutable. The change record
// written alongside points prev at the clone and new at the live row.
package history

import (
	"context"

	"github.com/aulakit/aula-backend/internal/platform/ctxutil"
)

// Refs is the prev/new snapshot pair of one transition. Exactly one side is
// nil for creations and deletions.
type Refs struct {
	Prev *uint
	New  *uint
}

func Created(newID uint) Refs {
	return Refs{New: Ptr(newID)}
}

func Updated(prevID, newID uint) Refs {
	return Refs{Prev: Ptr(prevID), New: Ptr(newID)}
}

func Deleted(prevID uint) Refs {
	return Refs{Prev: Ptr(prevID)}
}

// Actor returns the acting teacher id carried in the request context, or nil
// when the request was anonymous.
func Actor(ctx context.Context) *uint {
	td := ctxutil.GetTraceData(ctx)
	if td == nil || td.TeacherID == 0 {
		return nil
	}
	return Ptr(td.TeacherID)
}

func Ptr(id uint) *uint { return &id }
