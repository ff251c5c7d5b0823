package mapper

import (
	"strings"

	"github.com/spf13/viper"
)

// Config carries the mapper's tunable parameters. PatchRows/PatchCols
// drive the postprocessor's patch expansion; the lookahead/gate/
// shuttling weights are consumed only by the alternative lookahead
// scheduler described in spec section 6, which is out of the minimal
// core's hot path — they are carried here so a future scheduler can
// read them from the same config surface, and so config loading
// exercises every field the machine description's companion config
// file declares.
type Config struct {
	PatchRows int
	PatchCols int

	LookaheadWeightSwaps float64
	LookaheadWeightMoves float64
	GateWeight           float64
	ShuttlingWeight      float64
	ShuttlingTimeWeight  float64
	Decay                float64
}

// DefaultConfig returns the zero-overhead configuration: no patch
// replication, lookahead weights at their neutral defaults.
func DefaultConfig() Config {
	return Config{
		PatchRows:            1,
		PatchCols:            1,
		LookaheadWeightSwaps: 1,
		LookaheadWeightMoves: 1,
		GateWeight:           1,
		ShuttlingWeight:      1,
		ShuttlingTimeWeight:  1,
		Decay:                0.9,
	}
}

// LoadConfig builds a Config from a viper.Viper populated by the
// caller (a YAML/JSON file, NAQMAP_-prefixed environment variables, or
// both — the teacher's own internal/config pattern of wrapping a
// pre-bound *viper.Viper in a small typed accessor rather than binding
// flags here). Defaults are set in DefaultConfig and overridden by
// whatever the Viper already has bound.
func LoadConfig(v *viper.Viper) Config {
	v.SetEnvPrefix("NAQMAP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := DefaultConfig()
	setIfPresent(v, "patchRows", &cfg.PatchRows, v.GetInt)
	setIfPresent(v, "patchCols", &cfg.PatchCols, v.GetInt)
	setIfPresentFloat(v, "lookaheadWeightSwaps", &cfg.LookaheadWeightSwaps, v)
	setIfPresentFloat(v, "lookaheadWeightMoves", &cfg.LookaheadWeightMoves, v)
	setIfPresentFloat(v, "gateWeight", &cfg.GateWeight, v)
	setIfPresentFloat(v, "shuttlingWeight", &cfg.ShuttlingWeight, v)
	setIfPresentFloat(v, "shuttlingTimeWeight", &cfg.ShuttlingTimeWeight, v)
	setIfPresentFloat(v, "decay", &cfg.Decay, v)
	return cfg
}

func setIfPresent(v *viper.Viper, key string, dst *int, get func(string) int) {
	if v.IsSet(key) {
		*dst = get(key)
	}
}

func setIfPresentFloat(v *viper.Viper, key string, dst *float64, v2 *viper.Viper) {
	if v2.IsSet(key) {
		*dst = v2.GetFloat64(key)
	}
}
