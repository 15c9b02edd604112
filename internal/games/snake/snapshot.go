package snake

// Snapshot is a flat, comparable summary of a game used by determinism
// tests and debug output.
type Snapshot struct {
	Frames   uint64
	Mode     Mode
	Status   Status
	Score    int
	Speed    int
	SnakeLen int
	Head     Position
	Dir      Direction
	Food     Position
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return SnapshotOf(g.session.State(), g.frames)
}

// SnapshotOf summarises a state.
func SnapshotOf(st *GameState, frames uint64) Snapshot {
	snap := Snapshot{
		Frames:   frames,
		Mode:     st.Mode,
		Status:   st.Status,
		Score:    st.Score,
		Speed:    st.Speed,
		SnakeLen: len(st.Snake),
		Dir:      st.Direction,
		Food:     st.Food,
	}
	if len(st.Snake) > 0 {
		snap.Head = st.Snake[0]
	}
	return snap
}
