package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/gorilla/websocket"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"

	"chat-client/dispatch"
	"chat-client/internal"
	"chat-client/observability"
	"chat-client/registry"
	"chat-client/session"
)

// Exit codes to provide meaningful status to the operating system.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	// The main function acts as a thin wrapper.
	// Its only responsibility is to call run() and handle the OS exit code.
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Client error: %v\n", err)
	}
	os.Exit(code)
}

// run wires the codec, dispatcher, registries and session, then drives
// the interactive loop. Keeping it apart from main ensures deferred
// cleanup executes before the process exits.
func run() (int, error) {
	// 1. Configuration & logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}

	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Context bound to termination signals (Ctrl+C)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Local state and dispatch pipeline
	rooms := registry.NewRooms()
	users := registry.NewUsers()
	stats := observability.NewSyncStats()
	dispatcher := dispatch.NewDispatcher(log, rooms, users, stats)
	dispatcher.Add(newPrinter())

	// 4. Connect; the display name travels as a query parameter.
	dialer := &websocket.Dialer{HandshakeTimeout: config.HandshakeTimeout}
	sess, err := session.Dial(ctx, dialer, config.ServerURL, config.DisplayName,
		log, rooms, users, dispatcher, stats)
	if err != nil {
		return exitRuntime, err
	}
	defer func() {
		log.Info("Closing connection...")
		_ = sess.Close()
	}()

	log.Info(fmt.Sprintf(">>> Connected to %s as %s (/help for commands)",
		config.ServerURL, config.DisplayName))

	// 5. Read pump. Connection loss is terminal for the session: no
	// reconnect, the error simply ends the program.
	pumpErr := make(chan error, 1)
	go func() { pumpErr <- sess.Run(ctx) }()

	inputs := make(chan string)
	go readInput(ctx, inputs)

	for {
		select {
		case <-ctx.Done():
			return exitOK, nil
		case err := <-pumpErr:
			if err != nil {
				return exitRuntime, err
			}
			return exitOK, nil
		case line := <-inputs:
			if quit := handleInput(sess, line); quit {
				return exitOK, nil
			}
		}
	}
}

func readInput(ctx context.Context, out chan<- string) {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		select {
		case out <- scanner.Text():
		case <-ctx.Done():
			return
		}
	}
}

// handleInput interprets one line of user input. Reports true when the
// user asked to quit.
func handleInput(sess *session.Session, line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}

	verb, rest, _ := strings.Cut(line, " ")
	switch verb {
	case "/quit":
		return true
	case "/help":
		printHelp()
	case "/join":
		reportIfError(sess.JoinRoom(strings.TrimSpace(rest)))
	case "/joinp":
		reportIfError(sess.JoinPrivateRoom(strings.TrimSpace(rest)))
	case "/leave":
		reportIfError(sess.LeaveRoom(strings.TrimSpace(rest)))
	case "/msg":
		sendToRoom(sess, rest)
	case "/rooms":
		renderRooms(sess.Rooms())
	case "/users":
		renderUsers(sess.Users())
	case "/stats":
		renderStats(sess.Stats())
	default:
		printWarning(fmt.Sprintf("Unknown command %q, try /help", verb))
	}
	return false
}

// sendToRoom stages the text as the room's draft then flushes it,
// mirroring how the UI would bind an input field per room.
func sendToRoom(sess *session.Session, rest string) {
	roomName, text, ok := strings.Cut(strings.TrimSpace(rest), " ")
	if !ok {
		printWarning("Usage: /msg <room> <text>")
		return
	}
	for _, room := range sess.Rooms() {
		if room.Name == roomName {
			sess.SetDraft(room.ID, text)
			reportIfError(sess.SendDraft(room.ID))
			return
		}
	}
	printWarning(fmt.Sprintf("No joined room named %q", roomName))
}

func printHelp() {
	fmt.Println(`Commands:
  /join <name>     join a public room
  /joinp <id>      join a private room with the given user/room id
  /leave <name>    leave a room
  /msg <room> <text>  send a message
  /rooms           list joined rooms
  /users           list known participants
  /stats           sync pipeline counters
  /quit            exit`)
}
