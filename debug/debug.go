package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse  bool
	Query  bool
	Mutate bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("HL7_DEBUG_PARSE")
	d.Query = boolEnv("HL7_DEBUG_QUERY")
	d.Mutate = boolEnv("HL7_DEBUG_MUTATE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Query() bool {
	return d.Query
}
func Mutate() bool {
	return d.Mutate
}
