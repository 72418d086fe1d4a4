package rust

import (
	"bytes"
	"context"
	"encoding/json"
	"os/exec"
	"strings"

	"github.com/matzehuels/agentsgen/pkg/errors"
)

// Command runs an external program in dir and returns what it wrote to
// stdout and stderr. A non-zero exit is reported through err.
type Command func(ctx context.Context, dir, name string, args ...string) (stdout, stderr []byte, err error)

// ExecCommand is the Command that runs real processes.
func ExecCommand(ctx context.Context, dir, name string, args ...string) ([]byte, []byte, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.Bytes(), stderr.Bytes(), err
}

// metadataArgs are the cargo arguments of the metadata query.
var metadataArgs = []string{"metadata", "--format-version=1"}

// QueryMetadata runs `cargo metadata` in dir and decodes its output. A failed
// run is an ErrCodeMetadataQuery error carrying cargo's stderr when it wrote
// any.
func QueryMetadata(ctx context.Context, run Command, dir string) (*Metadata, error) {
	stdout, stderr, err := run(ctx, dir, "cargo", metadataArgs...)
	if err != nil {
		if msg := strings.TrimSpace(string(stderr)); msg != "" {
			return nil, errors.Wrap(errors.ErrCodeMetadataQuery, err, "cargo metadata failed: %s", msg)
		}
		return nil, errors.Wrap(errors.ErrCodeMetadataQuery, err, "cargo metadata failed")
	}

	var m Metadata
	if err := json.Unmarshal(stdout, &m); err != nil {
		return nil, errors.Wrap(errors.ErrCodeMetadataQuery, err, "decode cargo metadata output")
	}
	return &m, nil
}
