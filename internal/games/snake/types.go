package snake

import "fmt"

// Position is a cell on the square grid. Compared by value.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Direction represents the snake's movement direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists every direction in the order the agent breaks ties.
var Directions = [...]Direction{DirUp, DirDown, DirLeft, DirRight}

// Opposite returns the 180° reverse of d.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

// Delta returns the unit displacement for d.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	}
	return 0, 0
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "UP"
	case DirDown:
		return "DOWN"
	case DirLeft:
		return "LEFT"
	case DirRight:
		return "RIGHT"
	default:
		return "UNKNOWN"
	}
}

// ParseDirection converts "up", "UP", "Left"... into a Direction.
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "up", "UP", "Up":
		return DirUp, true
	case "down", "DOWN", "Down":
		return DirDown, true
	case "left", "LEFT", "Left":
		return DirLeft, true
	case "right", "RIGHT", "Right":
		return DirRight, true
	}
	return DirRight, false
}

// MarshalText encodes the direction as "UP", "DOWN", "LEFT" or "RIGHT".
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText is the inverse of MarshalText.
func (d *Direction) UnmarshalText(b []byte) error {
	parsed, ok := ParseDirection(string(b))
	if !ok {
		return fmt.Errorf("snake: unknown direction %q", b)
	}
	*d = parsed
	return nil
}

// Mode decides what happens at the grid boundary. Fixed for a game's lifetime.
type Mode string

const (
	ModeWalls       Mode = "walls"
	ModePassThrough Mode = "pass-through"
)

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	return m == ModeWalls || m == ModePassThrough
}

// Toggle returns the other mode.
func (m Mode) Toggle() Mode {
	if m == ModePassThrough {
		return ModeWalls
	}
	return ModePassThrough
}

// Status is the game's lifecycle state.
type Status string

const (
	StatusIdle     Status = "idle"
	StatusPlaying  Status = "playing"
	StatusPaused   Status = "paused"
	StatusGameOver Status = "game-over"
)

// GameConfig holds the immutable tuning parameters of a game.
// Speeds are milliseconds between ticks; MaxSpeed is the fastest (smallest) interval.
type GameConfig struct {
	GridSize       int `yaml:"grid_size" json:"gridSize"`
	CellSize       int `yaml:"cell_size" json:"cellSize"`
	InitialSpeed   int `yaml:"initial_speed" json:"initialSpeed"`
	SpeedIncrement int `yaml:"speed_increment" json:"speedIncrement"`
	MaxSpeed       int `yaml:"max_speed" json:"maxSpeed"`
}

// DefaultConfig is the stock tuning: 20x20 grid, 150ms start, -5ms per 50 points, 50ms floor.
var DefaultConfig = GameConfig{
	GridSize:       20,
	CellSize:       20,
	InitialSpeed:   150,
	SpeedIncrement: 5,
	MaxSpeed:       50,
}

const (
	// FoodReward is the fixed score gained per food item.
	FoodReward = 10

	// PointsPerSpeedStep is the score interval between speed increases.
	PointsPerSpeedStep = 50

	initialLength = 3
)

// GameState is the unit of atomic transition. Treat it as immutable:
// every transition produces a new value and never edits the old one.
type GameState struct {
	Snake     []Position `json:"snake"` // head first
	Food      Position   `json:"food"`
	Direction Direction  `json:"direction"`
	Score     int        `json:"score"`
	Status    Status     `json:"status"`
	Mode      Mode       `json:"mode"`
	Speed     int        `json:"speed"` // ms between ticks
}

// Head returns the first snake segment.
func (s *GameState) Head() Position {
	return s.Snake[0]
}

// with returns a shallow copy of s. The snake slice is shared; callers that
// change the body must install a fresh slice.
func (s *GameState) with() *GameState {
	next := *s
	return &next
}
