package image

import (
	"context"
	"fmt"
	"time"

	"devkit/internal/tui"
)

// RefreshInterval is how long a pulled image stays fresh.
const RefreshInterval = 24 * time.Hour

// Decision is the outcome of the acquisition policy: which reference to
// run and whether a pull happened.
type Decision struct {
	Image  string // reference to run (local cache tag or remote ref)
	Pulled bool   // a registry pull succeeded this run
}

// Policy evaluates the image acquisition rules once per invocation.
type Policy struct {
	Runtime Client
	Stamps  *StampStore
	UI      tui.UICallback

	RemoteRef string // registry reference to pull
	LocalTag  string // runtime-local cache tag
	ForcePull bool

	// Now is the clock, overridable in tests.
	Now func() time.Time
}

func (p *Policy) now() time.Time {
	if p.Now != nil {
		return p.Now()
	}
	return time.Now()
}

// ShouldPull applies the staleness rule: pull when forced, when no
// successful pull is recorded, or when the last one is a day old.
func (p *Policy) ShouldPull() bool {
	if p.ForcePull {
		return true
	}
	last, ok := p.Stamps.Load()
	if !ok {
		return true
	}
	return p.now().Sub(last) >= RefreshInterval
}

// Acquire runs the decision table and returns the image reference to use.
//
//	should_pull  local present  network   outcome
//	false        true           -         local tag, no network
//	false        false          -         remote ref directly, no pull
//	true         any            ok        pull, retag, stamp, local tag
//	true         any            down      warn; local tag if present, else fail
func (p *Policy) Acquire(ctx context.Context) (Decision, error) {
	localPresent, err := p.Runtime.ImageExists(ctx, p.LocalTag)
	if err != nil {
		// Probe failure is not fatal; proceed as if the cache is absent.
		p.UI.ShowWarning("Image Probe Failed", err.Error())
		localPresent = false
	}

	if !p.ShouldPull() {
		if localPresent {
			return Decision{Image: p.LocalTag}, nil
		}
		return Decision{Image: p.RemoteRef}, nil
	}

	progress := tui.NewProgressTracker(p.UI.GetOutputMode(), "Updating style checker image")
	progress.Update("pulling " + p.RemoteRef)

	if err := p.Runtime.Pull(ctx, p.RemoteRef); err != nil {
		progress.Fail(err)
		if !localPresent {
			return Decision{}, fmt.Errorf("image pull failed and no local cache exists: %w", err)
		}
		p.UI.ShowWarning("Image Pull Failed",
			fmt.Sprintf("%v\nFalling back to cached image %s", err, p.LocalTag))
		return Decision{Image: p.LocalTag}, nil
	}

	// Stamp right after the successful pull; a failed pull must leave the
	// previous stamp so the next run retries, but a failed retag must not
	// force a re-download of an image that is already local.
	if err := p.Stamps.Save(p.now()); err != nil {
		p.UI.ShowWarning("Stamp Write Failed", err.Error())
	}

	if err := p.Runtime.Tag(ctx, p.RemoteRef, p.LocalTag); err != nil {
		progress.Fail(err)
		return Decision{}, fmt.Errorf("failed to tag pulled image: %w", err)
	}

	progress.Complete("Style checker image updated")
	return Decision{Image: p.LocalTag, Pulled: true}, nil
}
