package services

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	portsrepo "github.com/SscSPs/news_management_app/internal/core/ports/repositories"
)

// defaultIDAttempts bounds identifier generation before giving up.
const defaultIDAttempts = 10

// idAllocator proposes a candidate identifier for the given attempt.
type idAllocator[ID comparable] interface {
	Candidate(ctx context.Context, attempt int) (ID, error)
}

// articleIDs builds "ART" + UTC yyyyMMddHHmmss + a random number in [100, 999].
type articleIDs struct {
	now  func() time.Time
	rand func(n int) int
}

func newArticleIDs(now func() time.Time) articleIDs {
	if now == nil {
		now = time.Now
	}
	return articleIDs{now: now, rand: rand.IntN}
}

func (a articleIDs) Candidate(_ context.Context, _ int) (string, error) {
	return fmt.Sprintf("ART%s%d", a.now().UTC().Format("20060102150405"), 100+a.rand(900)), nil
}

// sequenceIDs proposes the next integer after the highest id ever used, soft-deleted rows included.
type sequenceIDs struct {
	seq portsrepo.SequenceReader
}

func (s sequenceIDs) Candidate(ctx context.Context, attempt int) (int, error) {
	maxID, err := s.seq.MaxID(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to read max id: %w", err)
	}
	return maxID + 1 + attempt, nil
}
