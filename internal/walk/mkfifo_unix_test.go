//go:build !windows

package walk

import "syscall"

func mkfifo(path string) error {
	return syscall.Mkfifo(path, 0644)
}
