package main

import (
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"

	"github.com/qnkhuat/tetristerm/pkg/game"
	"github.com/qnkhuat/tetristerm/pkg/game/ssh"
)

var (
	listenAddressSSH string
	clientBinary     string
	hostKeyPath      string
	debugAddress     string

	done = make(chan bool)
)

const (
	LogTimeFormat = "2006-01-02 15:04:05"
)

func init() {
	log.SetFlags(0)

	flag.StringVar(&listenAddressSSH, "listen-ssh", "", "host SSH server on network address")
	flag.StringVar(&clientBinary, "client", "", "path to tetristerm client")
	flag.StringVar(&hostKeyPath, "host-key", "", "path to SSH host key")
	flag.StringVar(&debugAddress, "debug-address", "", "address to serve debug info")
}

func main() {
	flag.Parse()

	if listenAddressSSH == "" {
		log.Fatal("a listen address is required (--listen-ssh)")
	}
	if clientBinary == "" {
		log.Fatal("a client binary is required (--client)")
	}

	if debugAddress != "" {
		go func() {
			log.Fatal(http.ListenAndServe(debugAddress, nil))
		}()
	}

	logger := make(chan string, game.LogQueueSize)
	timestamp := color.New(color.FgGreen).SprintFunc()
	go func() {
		for msg := range logger {
			log.Println(timestamp(time.Now().Format(LogTimeFormat)) + " " + msg)
		}
	}()

	sshServer := &ssh.SSHServer{
		ListenAddress: listenAddressSSH,
		HostKeyPath:   hostKeyPath,
		ClientBinary:  clientBinary,
		Logger:        logger,
	}

	logger <- "Listening at " + listenAddressSSH

	go func() {
		if err := sshServer.Host(); err != nil {
			log.Fatalf("failed to host SSH server: %s", err)
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc,
		syscall.SIGINT,
		syscall.SIGTERM)
	go func() {
		<-sigc

		done <- true
	}()

	<-done
}
