package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"runtime/debug"
	"sync"
	"syscall"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/qnkhuat/tetristerm/pkg/event"
	"github.com/qnkhuat/tetristerm/pkg/game"
)

var (
	done = make(chan bool)

	activeGame *game.Game

	nickname = "Anonymous"

	nicknameFlag string
	debugAddress string

	startSeed  int64
	startLevel int

	blockSize      = 0
	fixedBlockSize bool

	logDebug bool

	logMutex             = new(sync.Mutex)
	wroteFirstLogMessage bool
	showLogLines         = 7
)

const (
	LogTimeFormat = "3:04:05"
)

func init() {
	log.SetFlags(0)
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			closeGUI()
			time.Sleep(time.Second)

			log.Println()
			log.Println()
			debug.PrintStack()

			log.Println()
			log.Println()
			log.Fatalf("panic: %+v", r)
		}
	}()

	flag.Int64Var(&startSeed, "seed", 0, "seed the piece sequence (0 seeds from the clock)")
	flag.IntVar(&startLevel, "level", 1, "starting level")
	flag.IntVar(&blockSize, "scale", 0, "UI scale")
	flag.StringVar(&nicknameFlag, "nick", "", "nickname")
	flag.StringVar(&debugAddress, "debug-address", "", "address to serve debug info")
	flag.BoolVar(&logDebug, "debug", false, "enable debug logging")
	flag.Parse()

	tty := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	if !tty {
		log.Fatal("failed to start tetristerm: non-interactive terminals are not supported")
	}

	if blockSize > 0 {
		fixedBlockSize = true

		if blockSize > 3 {
			blockSize = 3
		}
	}

	if startLevel < 1 {
		startLevel = 1
	}

	if game.Nickname(nicknameFlag) != "" {
		nickname = game.Nickname(nicknameFlag)
	}

	if debugAddress != "" {
		go func() {
			log.Fatal(http.ListenAndServe(debugAddress, nil))
		}()
	}

	app, err := initGUI()
	if err != nil {
		log.Fatalf("failed to initialize GUI: %s", err)
	}

	go func() {
		if err := app.Run(); err != nil {
			log.Fatalf("failed to run application: %s", err)
		}

		done <- true
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc,
		syscall.SIGINT,
		syscall.SIGTERM)
	go func() {
		<-sigc

		done <- true
	}()

	go func() {
		<-done

		closeGUI()

		os.Exit(0)
	}()

	activeGame = game.NewGame(startSeed, startLevel, draw)
	activeGame.Start()

	go handleGameEvents(activeGame)

	if logDebug {
		logMessage(fmt.Sprintf("* Seed %d", activeGame.Seed))
	}

	select {}
}

func handleGameEvents(g *game.Game) {
	for e := range g.Event {
		switch ev := e.(type) {
		case *event.ScoreEvent:
			logMessage(fmt.Sprintf("* %s +%d", ev.Message, ev.Score))
		case *event.PauseEvent:
			if ev.Paused {
				logMessage("* Game paused")
			} else {
				logMessage("* Game resumed")
			}
		case *event.GameOverEvent:
			logMessage("* Game over - press Q to quit")
		case *event.Event:
			logMessage("* " + ev.Message)
		}

		draw <- event.DrawMessages
	}
}
