//go:build !atsamd21

package port

var hostSim = NewSim()

// Default returns the process-wide bank. Host builds have no PORT
// peripheral, so this is a single shared Sim.
func Default() Port { return hostSim }
