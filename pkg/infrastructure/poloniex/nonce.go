package poloniex

import (
	"time"

	"go.uber.org/atomic"
)

// nonceGenerator エポックミリ秒×100。プロセス内では必ず増加する
type nonceGenerator struct {
	now  func() time.Time
	last *atomic.Int64
}

func newNonceGenerator(now func() time.Time) *nonceGenerator {
	return &nonceGenerator{
		now:  now,
		last: atomic.NewInt64(0),
	}
}

func (g *nonceGenerator) next() int64 {
	candidate := g.now().UnixNano() / int64(time.Millisecond) * 100
	for {
		last := g.last.Load()
		n := candidate
		if n <= last {
			n = last + 1
		}
		if g.last.CAS(last, n) {
			return n
		}
	}
}
