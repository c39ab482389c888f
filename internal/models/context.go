package models

// Baseline values used when a GameContext field is absent. These double as
// the "expected game" the rule strategy measures deviations against, so they
// must not drift.
const (
	DefaultOpponentStrength = 0.5
	DefaultRestDays         = 1
	DefaultSeasonClutchPct  = 45.0
	DefaultMinutesPerGame   = 30.0
)

// GameContext describes the situational inputs for one prediction call.
// Fields are pointers so that "not supplied" is distinguishable from a zero
// value; missing fields default per the constants above. The struct is never
// mutated by the engine.
type GameContext struct {
	HomeGame         *FlexBool  `json:"home_game,omitempty"`
	OpponentStrength *FlexFloat `json:"opponent_strength,omitempty" validate:"omitempty,gte=0,lte=1"`
	RestDays         *FlexInt   `json:"rest_days,omitempty" validate:"omitempty,gte=0"`
	SeasonClutchPct  *FlexFloat `json:"season_clutch_pct,omitempty" validate:"omitempty,gte=0,lte=100"`
	MinutesPerGame   *FlexFloat `json:"minutes_per_game,omitempty" validate:"omitempty,gte=0,lte=48"`
}

func (c GameContext) IsHome() bool {
	if c.HomeGame == nil {
		return false
	}
	return bool(*c.HomeGame)
}

func (c GameContext) OpponentStrengthValue() float64 {
	if c.OpponentStrength == nil {
		return DefaultOpponentStrength
	}
	return float64(*c.OpponentStrength)
}

func (c GameContext) RestDaysValue() int {
	if c.RestDays == nil {
		return DefaultRestDays
	}
	return int(*c.RestDays)
}

func (c GameContext) SeasonClutchPctValue() float64 {
	if c.SeasonClutchPct == nil {
		return DefaultSeasonClutchPct
	}
	return float64(*c.SeasonClutchPct)
}

func (c GameContext) MinutesPerGameValue() float64 {
	if c.MinutesPerGame == nil {
		return DefaultMinutesPerGame
	}
	return float64(*c.MinutesPerGame)
}

// NewGameContext builds a fully-populated context from plain values.
// Convenience for the CLI and tests.
func NewGameContext(home bool, oppStrength float64, restDays int, clutchPct, minutes float64) GameContext {
	h := FlexBool(home)
	o := FlexFloat(oppStrength)
	r := FlexInt(restDays)
	cp := FlexFloat(clutchPct)
	m := FlexFloat(minutes)
	return GameContext{
		HomeGame:         &h,
		OpponentStrength: &o,
		RestDays:         &r,
		SeasonClutchPct:  &cp,
		MinutesPerGame:   &m,
	}
}
