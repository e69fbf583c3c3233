// Package image decides how the style-checker container image is acquired:
// pull from the registry, reuse the local cache, or fall back after a
// network failure. It also resolves whether the runtime needs elevation.
package image

import (
	"context"
	"fmt"
	"strings"

	"devkit/internal/execx"
)

// Client abstracts the container runtime CLI operations the policy needs.
type Client interface {
	ImageExists(ctx context.Context, tag string) (bool, error)
	Pull(ctx context.Context, ref string) error
	Tag(ctx context.Context, src, dst string) error
	RunContainer(ctx context.Context, opts RunOptions) (string, error)
}

// Mount binds a host path into the container.
type Mount struct {
	Host      string
	Container string
}

// RunOptions configures one synchronous container run.
type RunOptions struct {
	Image  string
	Mounts []Mount
	Args   []string
}

// SystemClient implements Client using the docker binary, optionally
// wrapped in sudo.
type SystemClient struct {
	runner *execx.Runner
}

// NewSystemClient creates a docker client. With useSudo, every invocation
// is prefixed with sudo.
func NewSystemClient(useSudo, verbose bool) *SystemClient {
	r := &execx.Runner{Bin: "docker", Verbose: verbose}
	if useSudo {
		r.Prefix = []string{"sudo"}
	}
	return &SystemClient{runner: r}
}

// IsInstalled returns true if the docker binary is available on PATH.
func IsInstalled() bool {
	return execx.IsInstalled("docker")
}

// ImageExists probes for a local image tag. Older runtimes without the
// "image inspect" subcommand fall back to listing and matching.
func (c *SystemClient) ImageExists(ctx context.Context, tag string) (bool, error) {
	err := c.runner.RunSilent(ctx, "image", "inspect", tag)
	if err == nil {
		return true, nil
	}
	if execx.StderrContains(err, "unknown command") || execx.StderrContains(err, "is not a docker command") {
		return c.listAndMatch(ctx, tag)
	}
	if execx.StderrContains(err, "No such image") || execx.StderrContains(err, "No such object") {
		return false, nil
	}
	return false, err
}

// listAndMatch probes by listing all local tags.
func (c *SystemClient) listAndMatch(ctx context.Context, tag string) (bool, error) {
	lines, err := c.runner.RunLines(ctx, "images", "--format", "{{.Repository}}:{{.Tag}}")
	if err != nil {
		return false, err
	}
	for _, line := range lines {
		if strings.TrimSpace(line) == tag {
			return true, nil
		}
	}
	return false, nil
}

// Pull fetches a remote image reference.
func (c *SystemClient) Pull(ctx context.Context, ref string) error {
	return c.runner.RunSilent(ctx, "pull", ref)
}

// Tag applies a local tag to an image.
func (c *SystemClient) Tag(ctx context.Context, src, dst string) error {
	return c.runner.RunSilent(ctx, "tag", src, dst)
}

// RunContainer runs the image synchronously with --rm and returns combined
// output. The exit status and a few output substrings are all the caller
// ever inspects.
func (c *SystemClient) RunContainer(ctx context.Context, opts RunOptions) (string, error) {
	args := []string{"run", "--rm", "--security-opt", "label:disable"}
	for _, m := range opts.Mounts {
		args = append(args, "-v", fmt.Sprintf("%s:%s", m.Host, m.Container))
	}
	args = append(args, opts.Image)
	args = append(args, opts.Args...)
	return c.runner.Run(ctx, args...)
}
