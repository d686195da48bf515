package layout

// MeasureObserver is notified of every MeasureFunc invocation (cache hits
// included), letting a host trace measurement ordering without the core
// importing a logging package itself (spec.md §6: callbacks are the only
// external interaction; SPEC_FULL.md §2.2 keeps logging out of the core).
type MeasureObserver interface {
	OnMeasure(itemIndex int, minW, maxW, minH, maxH float32, cacheHit bool, out MeasureOutput)
}

// Option configures one Calculate call.
type Option func(*calcConfig)

type calcConfig struct {
	observer MeasureObserver
}

// WithObserver attaches a MeasureObserver for the duration of one Calculate call.
func WithObserver(o MeasureObserver) Option {
	return func(c *calcConfig) { c.observer = o }
}

// measureChild invokes the item's MeasureFunc, consulting and updating its
// cache first (spec.md §4.3). Bounds are passed to the host unchanged; NaN
// bounds mean "unbounded".
func measureChild(it *itemState, minW, maxW, minH, maxH, ownerW, ownerH float32, obs MeasureObserver) (MeasureOutput, error) {
	if cached, ok := it.cache.lookup(minW, maxW, minH, maxH); ok {
		if obs != nil {
			obs.OnMeasure(it.index, minW, maxW, minH, maxH, true, cached)
		}
		return cached, nil
	}

	if it.style.MeasureFunc == nil {
		out := MeasureOutput{Width: 0, Height: 0, Baseline: undefined}
		it.cache.store(minW, maxW, minH, maxH, out)
		if obs != nil {
			obs.OnMeasure(it.index, minW, maxW, minH, maxH, false, out)
		}
		return out, nil
	}

	out, err := it.style.MeasureFunc(it.style.MeasureData, minW, maxW, minH, maxH, ownerW, ownerH)
	if err != nil {
		return MeasureOutput{}, &MeasureError{Index: it.index, Err: err}
	}

	// Measurement anomalies (spec.md §7): a non-finite result against a
	// defined bound is clamped rather than aborting the call.
	out.Width = clampMeasured(out.Width, minW, maxW)
	out.Height = clampMeasured(out.Height, minH, maxH)

	it.cache.store(minW, maxW, minH, maxH, out)
	it.lastResult = out.Result
	if obs != nil {
		obs.OnMeasure(it.index, minW, maxW, minH, maxH, false, out)
	}
	return out, nil
}

func clampMeasured(v, lo, hi float32) float32 {
	if !IsDefined(v) {
		if IsDefined(lo) {
			return lo
		}
		if IsDefined(hi) {
			return hi
		}
		return 0
	}
	return clampf(v, lo, hi)
}
