package main

import "github.com/jcalvez/srscore/internal/config"

// CheckConfig makes sure a configuration can be resolved before running
// any command other than init; CurrentConfig exits the process itself on
// failure.
func CheckConfig() {
	_ = config.CurrentConfig()
}
