package config

import "fmt"

// Speed is a named difficulty level.
type Speed string

const (
	SpeedSlow   Speed = "slow"
	SpeedNormal Speed = "normal"
	SpeedFast   Speed = "fast"
)

// Speeds lists the difficulty levels in menu order.
var Speeds = []Speed{SpeedSlow, SpeedNormal, SpeedFast}

// ParseSpeed converts a flag or menu value to a Speed.
func ParseSpeed(s string) (Speed, error) {
	switch Speed(s) {
	case SpeedSlow, SpeedNormal, SpeedFast:
		return Speed(s), nil
	case "":
		return SpeedNormal, nil
	}
	return "", fmt.Errorf("%w: unknown speed %q (want slow, normal or fast)", ErrInvalidConfig, s)
}

// speedScale is the factor applied to the configured tick intervals, in percent.
func speedScale(s Speed) int {
	switch s {
	case SpeedSlow:
		return 140
	case SpeedFast:
		return 70
	default:
		return 100
	}
}

// ApplySpeed rescales the tick intervals of cfg for the given difficulty.
// Normal leaves the configured values untouched.
func ApplySpeed(cfg *SnakeConfig, s Speed) {
	pct := speedScale(s)
	if pct == 100 {
		return
	}
	cfg.InitialSpeed = max(1, cfg.InitialSpeed*pct/100)
	cfg.MaxSpeed = max(1, min(cfg.MaxSpeed*pct/100, cfg.InitialSpeed))
}
