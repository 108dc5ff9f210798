package breakout

import (
	"encoding/binary"
	"hash/fnv"
	"math"
)

// Snapshot is a flat copy of the mutable game state, used to compare runs.
type Snapshot struct {
	Mode       Mode
	Lives      int
	Score      int
	LevelIndex int

	BallX, BallY   float32
	BallVX, BallVY float32
	BallStuck      bool
	PaddleX        float32

	// One entry per brick of the active level, in storage order.
	Destroyed []bool
}

// Snapshot returns the current state.
func (g *Game) Snapshot() Snapshot {
	bricks := g.levels[g.active].Bricks
	destroyed := make([]bool, len(bricks))
	for i, b := range bricks {
		destroyed[i] = b.Destroyed
	}
	return Snapshot{
		Mode:       g.mode,
		Lives:      g.lives,
		Score:      g.score,
		LevelIndex: g.active,
		BallX:      g.ball.Position.X,
		BallY:      g.ball.Position.Y,
		BallVX:     g.ball.Velocity.X,
		BallVY:     g.ball.Velocity.Y,
		BallStuck:  g.ball.Stuck,
		PaddleX:    g.paddle.Position.X,
		Destroyed:  destroyed,
	}
}

// Hash returns an FNV-1a digest of the snapshot. Equal states hash equally,
// bit for bit on the float fields.
func (s Snapshot) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte
	put := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		_, _ = h.Write(buf[:])
	}

	put(uint64(s.Mode))       //#nosec G115 -- hash computation
	put(uint64(s.Lives))      //#nosec G115 -- hash computation
	put(uint64(s.Score))      //#nosec G115 -- hash computation
	put(uint64(s.LevelIndex)) //#nosec G115 -- hash computation
	for _, f := range []float32{s.BallX, s.BallY, s.BallVX, s.BallVY, s.PaddleX} {
		put(uint64(math.Float32bits(f)))
	}
	put(boolBit(s.BallStuck))
	for _, d := range s.Destroyed {
		put(boolBit(d))
	}
	return h.Sum64()
}

func boolBit(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
