package localstate

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const lockOwnerFile = "owner.json"

// FileLock guards a state file against concurrent CLI instances writing it
// at the same time. It is a directory lock: mkdir is atomic on every
// platform this tool targets.
type FileLock struct {
	lockDir string
}

type lockOwner struct {
	PID       int    `json:"pid"`
	CreatedAt string `json:"created_at"`
	Hostname  string `json:"hostname,omitempty"`
}

func AcquireFileLock(statePath string) (FileLock, error) {
	target := strings.TrimSpace(statePath)
	if target == "" {
		return FileLock{}, fmt.Errorf("state path is required")
	}
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return FileLock{}, fmt.Errorf("create parent for %s: %w", target, err)
	}

	lockDir := target + ".lock"
	if err := os.Mkdir(lockDir, 0o755); err != nil {
		if os.IsExist(err) {
			ownerPath := filepath.Join(lockDir, lockOwnerFile)
			var owner lockOwner
			if readErr := ReadJSON(ownerPath, &owner); readErr == nil && owner.PID > 0 {
				return FileLock{}, fmt.Errorf(
					"state file is locked: %s (pid=%d created_at=%s host=%s)",
					target, owner.PID, owner.CreatedAt, owner.Hostname,
				)
			}
			return FileLock{}, fmt.Errorf("state file is locked: %s", target)
		}
		return FileLock{}, fmt.Errorf("acquire lock for %s: %w", target, err)
	}

	owner := lockOwner{
		PID:       os.Getpid(),
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		Hostname:  hostnameOrUnknown(),
	}
	if err := WriteJSON(filepath.Join(lockDir, lockOwnerFile), owner, 0o644); err != nil {
		_ = os.Remove(lockDir)
		return FileLock{}, fmt.Errorf("write lock owner for %s: %w", target, err)
	}
	return FileLock{lockDir: lockDir}, nil
}

func (l FileLock) Release() error {
	if strings.TrimSpace(l.lockDir) == "" {
		return nil
	}
	_ = os.Remove(filepath.Join(l.lockDir, lockOwnerFile))
	if err := os.Remove(l.lockDir); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("release lock %s: %w", l.lockDir, err)
	}
	return nil
}

func hostnameOrUnknown() string {
	host, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	host = strings.TrimSpace(host)
	if host == "" {
		return "unknown"
	}
	return host
}
