//go:build windows
// +build windows

package ssh

import "fmt"

type SSHServer struct {
	ListenAddress string
	HostKeyPath   string
	ClientBinary  string

	Logger chan string
}

func (s *SSHServer) Host() error {
	return fmt.Errorf("failed to host SSH server: unsupported platform")
}
