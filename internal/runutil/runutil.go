// internal/runutil/runutil.go
package runutil

import "runtime"

// EffectiveWorkers maps the --workers flag to a worker count:
// 0 (or negative) means one worker per CPU.
func EffectiveWorkers(workers int) int {
	if workers > 0 {
		return workers
	}
	return runtime.NumCPU()
}

// ClampWorkers caps workers at the number of ring levels.
func ClampWorkers(workers, levels int) int {
	if levels < 1 || workers < 1 {
		return 1
	}
	if workers > levels {
		return levels
	}
	return workers
}
