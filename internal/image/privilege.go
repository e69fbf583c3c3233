package image

import (
	"errors"
	"os"
	"runtime"

	"devkit/internal/config"
	"devkit/internal/tui"
)

// DockerSocket is the runtime control socket probed for direct access.
const DockerSocket = "/var/run/docker.sock"

// PrivilegeResolver decides whether the runtime must be invoked through
// sudo. The decision order: persisted preference, platform rule, socket
// probe, interactive confirmation.
type PrivilegeResolver struct {
	Settings config.Settings
	Store    *config.YAMLStore[config.Settings]
	UI       tui.UICallback

	// Probe checks direct access to the runtime socket; nil uses the real
	// socket. GOOS overrides runtime.GOOS in tests.
	Probe func() error
	GOOS  string
}

func (r *PrivilegeResolver) goos() string {
	if r.GOOS != "" {
		return r.GOOS
	}
	return runtime.GOOS
}

func (r *PrivilegeResolver) probe() error {
	if r.Probe != nil {
		return r.Probe()
	}
	f, err := os.OpenFile(DockerSocket, os.O_RDWR, 0)
	if err != nil {
		return err
	}
	_ = f.Close()
	return nil
}

// Resolve returns whether to elevate. A persisted use_sudo preference is
// honored without prompting. An interrupted prompt aborts the whole run
// (tui.ErrPromptAborted) rather than continuing with an undecided state.
func (r *PrivilegeResolver) Resolve() (bool, error) {
	if r.Settings.UseSudo {
		return true, nil
	}

	// Elevation only ever applies to Linux; Docker Desktop platforms run
	// the daemon under the user's own account.
	if r.goos() != "linux" {
		return false, nil
	}

	err := r.probe()
	if err == nil {
		return false, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		// No socket: remote daemon or rootless setup. Try direct access.
		return false, nil
	}

	useSudo, promptErr := r.UI.AskConfirmation(
		"Docker Socket Access Denied",
		"Your user cannot reach "+DockerSocket+".\n"+
			"Permanent fix: sudo usermod -aG docker $USER (then re-login).\n"+
			"Run docker through sudo for now?")
	if promptErr != nil {
		return false, promptErr
	}
	if !useSudo {
		// Degraded: continue without elevation, docker calls may fail.
		r.UI.ShowWarning("Continuing Without Elevation",
			"Runtime commands may fail with permission errors.")
		return false, nil
	}

	r.maybePersist()
	return true, nil
}

// maybePersist offers to remember the elevated-privilege choice. Written
// only on explicit confirmation; an interrupt here just skips persisting.
func (r *PrivilegeResolver) maybePersist() {
	if r.Store == nil {
		return
	}
	remember, err := r.UI.AskConfirmation(
		"Remember This Choice?",
		"Always run docker through sudo (saved to "+r.Store.Path()+").")
	if err != nil || !remember {
		return
	}
	r.Settings.UseSudo = true
	if err := r.Store.Save(r.Settings); err != nil {
		r.UI.ShowWarning("Preference Not Saved", err.Error())
	}
}
