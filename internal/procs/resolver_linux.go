//go:build linux

package procs

import (
	"bufio"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

type systemResolver struct{}

// OwnerOfPort walks /proc/net/tcp (and tcp6) for a LISTEN socket on the given
// port, then makes a single pass over /proc/<pid>/fd directories to find the
// process holding that socket's inode.
func (systemResolver) OwnerOfPort(port uint16) (uint32, error) {
	inode, ok := listenInodeForPort("/proc/net/tcp", port)
	if !ok {
		inode, ok = listenInodeForPort("/proc/net/tcp6", port)
	}
	if !ok {
		return 0, ErrOwnerNotFound
	}

	pid, ok := pidForInode(inode)
	if !ok {
		return 0, ErrOwnerNotFound
	}
	return pid, nil
}

// NameOfPID reads /proc/<pid>/comm, the kernel's short executable name.
func (systemResolver) NameOfPID(pid uint32) (string, error) {
	data, err := os.ReadFile(filepath.Join("/proc", strconv.FormatUint(uint64(pid), 10), "comm"))
	if err != nil {
		return "", ErrNameUnavailable
	}
	name := strings.TrimSpace(string(data))
	if name == "" {
		return "", ErrNameUnavailable
	}
	return name, nil
}

// listenInodeForPort parses one /proc/net/tcp-format file and returns the
// socket inode for a LISTEN (state 0x0A) entry bound to port.
func listenInodeForPort(path string, port uint16) (uint64, bool) {
	file, err := os.Open(path)
	if err != nil {
		return 0, false
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)

	// Skip header line
	if !scanner.Scan() {
		return 0, false
	}

	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 10 {
			continue
		}

		if fields[3] != "0A" {
			continue
		}

		// Local address field: "0100007F:0BB8" = 127.0.0.1:3000
		_, portHex, ok := strings.Cut(fields[1], ":")
		if !ok {
			continue
		}
		p, err := strconv.ParseUint(portHex, 16, 16)
		if err != nil || uint16(p) != port {
			continue
		}

		inode, err := strconv.ParseUint(fields[9], 10, 64)
		if err != nil || inode == 0 {
			continue
		}
		return inode, true
	}

	return 0, false
}

// pidForInode scans /proc/<pid>/fd symlinks for "socket:[inode]".
// Unreadable fd directories (usually permission denied) are skipped.
func pidForInode(inode uint64) (uint32, bool) {
	entries, err := os.ReadDir("/proc")
	if err != nil {
		return 0, false
	}

	want := "socket:[" + strconv.FormatUint(inode, 10) + "]"

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		pid, err := strconv.ParseUint(entry.Name(), 10, 32)
		if err != nil {
			continue
		}

		fdDir := filepath.Join("/proc", entry.Name(), "fd")
		fdEntries, err := os.ReadDir(fdDir)
		if err != nil {
			continue
		}

		for _, fd := range fdEntries {
			link, err := os.Readlink(filepath.Join(fdDir, fd.Name()))
			if err != nil {
				continue
			}
			if link == want {
				return uint32(pid), true
			}
		}
	}

	return 0, false
}
