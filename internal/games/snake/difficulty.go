package snake

// CalculateSpeed maps score to the tick interval in milliseconds:
// InitialSpeed minus SpeedIncrement for every PointsPerSpeedStep points,
// never faster than MaxSpeed.
func CalculateSpeed(score int, cfg GameConfig) int {
	steps := max(score, 0) / PointsPerSpeedStep
	return max(cfg.MaxSpeed, cfg.InitialSpeed-steps*cfg.SpeedIncrement)
}
