//go:build !windows
// +build !windows

package ssh

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path"
	"syscall"
	"time"
	"unsafe"

	"github.com/creack/pty"
	petname "github.com/dustinkirkland/golang-petname"
	"github.com/gliderlabs/ssh"
	gossh "golang.org/x/crypto/ssh"

	"github.com/qnkhuat/tetristerm/pkg/game"
)

const ServerIdleTimeout = 5 * time.Minute

// SSHServer hosts the client binary on a pseudo-terminal per SSH session.
type SSHServer struct {
	ListenAddress string
	HostKeyPath   string
	ClientBinary  string

	Logger chan string
}

func setWinsize(f *os.File, w, h int) {
	syscall.Syscall(syscall.SYS_IOCTL, f.Fd(), uintptr(syscall.TIOCSWINSZ),
		uintptr(unsafe.Pointer(&struct{ h, w, x, y uint16 }{uint16(h), uint16(w), 0, 0})))
}

func (s *SSHServer) log(message string) {
	if s.Logger == nil {
		return
	}

	s.Logger <- message
}

// sessionNickname derives a player name from the SSH username, generating a
// petname when nothing printable remains.
func sessionNickname(sshSession ssh.Session) string {
	nick := game.Nickname(sshSession.User())
	if nick == "" {
		nick = game.Nickname(petname.Generate(2, "-"))
	}

	return nick
}

func (s *SSHServer) handleSession(sshSession ssh.Session) {
	ptyReq, winCh, isPty := sshSession.Pty()
	if !isPty {
		io.WriteString(sshSession, "failed to start tetristerm: non-interactive terminals are not supported\n")

		sshSession.Exit(1)
		return
	}

	nick := sessionNickname(sshSession)
	s.log(fmt.Sprintf("%s connected from %s", nick, sshSession.RemoteAddr()))

	cmdCtx, cancelCmd := context.WithCancel(sshSession.Context())
	defer cancelCmd()

	cmd := exec.CommandContext(cmdCtx, s.ClientBinary, "--nick", nick)
	cmd.Env = append(sshSession.Environ(), fmt.Sprintf("TERM=%s", ptyReq.Term))

	f, err := pty.Start(cmd)
	if err != nil {
		io.WriteString(sshSession, fmt.Sprintf("failed to initialize pseudo-terminal: %s\n", err))
		s.log(fmt.Sprintf("%s disconnected: %s", nick, err))

		sshSession.Exit(1)
		return
	}
	defer f.Close()

	go func() {
		for win := range winCh {
			setWinsize(f, win.Width, win.Height)
		}
	}()

	go func() {
		io.Copy(f, sshSession)
	}()
	io.Copy(sshSession, f)

	cancelCmd()
	cmd.Wait()

	s.log(fmt.Sprintf("%s disconnected", nick))
}

// Host starts listening for SSH sessions. Authentication always succeeds;
// the server is an anonymous arcade box.
func (s *SSHServer) Host() error {
	if s.ListenAddress == "" {
		return fmt.Errorf("failed to host SSH server: listen address is required")
	}

	hostKey := s.HostKeyPath
	if hostKey == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to host SSH server: %s", err)
		}

		hostKey = path.Join(homeDir, ".ssh", "id_rsa")
	}

	server := &ssh.Server{
		Addr:        s.ListenAddress,
		IdleTimeout: ServerIdleTimeout,
		Handler:     s.handleSession,
		PtyCallback: func(ctx ssh.Context, pty ssh.Pty) bool {
			return true
		},
		PublicKeyHandler: func(ctx ssh.Context, key ssh.PublicKey) bool {
			return true
		},
		PasswordHandler: func(ctx ssh.Context, password string) bool {
			return true
		},
		KeyboardInteractiveHandler: func(ctx ssh.Context, challenger gossh.KeyboardInteractiveChallenge) bool {
			return true
		},
	}

	err := server.SetOption(ssh.HostKeyFile(hostKey))
	if err != nil {
		return fmt.Errorf("failed to load host key %s: %s", hostKey, err)
	}

	return server.ListenAndServe()
}
