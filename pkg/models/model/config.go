package model

// Config is an on/off command line switch.
type Config bool

const (
	On  Config = true
	Off Config = false
)

var configName = map[string]Config{
	"ON":   On,
	"On":   On,
	"on":   On,
	"1":    On,
	"true": On,

	"OFF":   Off,
	"Off":   Off,
	"off":   Off,
	"0":     Off,
	"false": Off,
}

// NewConfig parses s; anything unrecognised is Off.
func NewConfig(s string) Config {
	return configName[s]
}

func (c Config) String() string {
	if c {
		return "ON"
	}
	return "OFF"
}
