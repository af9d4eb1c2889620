package provisioning

import (
	"fmt"
	"time"
)

// RunPhases executes all provisioning phases sequentially.
// The first failing phase stops the run; later phases are not attempted.
func RunPhases(ctx *Context, phases []Phase) error {
	start := time.Now()
	ctx.Log.V(1).Info("starting provisioning", "phases", len(phases))

	for i, phase := range phases {
		phaseStart := time.Now()
		name := fmt.Sprintf("%s (%d/%d)", phase.Name(), i+1, len(phases))

		LogPhaseStart(ctx.Observer, name)

		err := phase.Provision(ctx)
		ctx.Metrics.ObserveStep(phase.Name(), time.Since(phaseStart), err)
		if err != nil {
			LogPhaseFailed(ctx.Observer, name, err)
			return fmt.Errorf("%s phase failed: %w", phase.Name(), err)
		}

		LogPhaseComplete(ctx.Observer, name, time.Since(phaseStart))
	}

	ctx.Log.V(1).Info("provisioning completed", "duration", time.Since(start).Round(time.Millisecond).String())
	return nil
}
