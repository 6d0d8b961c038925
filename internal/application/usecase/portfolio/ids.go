package portfolio

import (
	"crypto/rand"
	"io"
	"time"

	"github.com/oklog/ulid/v2"

	domain "github.com/khoahotran/portfolio/internal/domain/portfolio"
)

const profileIDPrefix = "profile_"

// idSource hands out collision-free ids. Guarded by Store.mu.
type idSource struct {
	now     func() time.Time
	entropy io.Reader
	lastMs  int64
}

func newIDSource(now func() time.Time) *idSource {
	return &idSource{
		now:     now,
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
}

// Millis returns the current unix millisecond, bumped past the previous value
// when two calls land in the same millisecond or the clock steps back.
func (g *idSource) Millis() int64 {
	ms := g.now().UnixMilli()
	if ms <= g.lastMs {
		ms = g.lastMs + 1
	}
	g.lastMs = ms
	return ms
}

func (g *idSource) ulid() string {
	return ulid.MustNew(ulid.Timestamp(g.now()), g.entropy).String()
}

func (g *idSource) ProfileID() string { return profileIDPrefix + g.ulid() }

func (g *idSource) CustomSectionID() string { return domain.CustomSectionPrefix + g.ulid() }
