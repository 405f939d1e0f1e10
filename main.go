package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"
	"github.com/muesli/termenv"
	"github.com/urfave/cli/v3"

	"go-soko/internal/board"
	"go-soko/internal/display"
	"go-soko/internal/engine"
	"go-soko/internal/game"
	"go-soko/internal/scoring"
	"go-soko/internal/state"
	"go-soko/transport/websocket"
)

var (
	redStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	greenStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	scoreStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	boldStyle   = lipgloss.NewStyle().Bold(true)
	borderStyle = lipgloss.NewStyle().Border(lipgloss.ThickBorder())
)

type LocalState struct {
	Session *game.Session
	Matrix  *display.Matrix
	Mirror  *display.Mirror // nil unless --mirror
	Status  *display.StatusLine
	Help    help.Model
	Tick    time.Duration
}

type TickMsg time.Time

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (s *LocalState) Init() tea.Cmd {
	return tickCmd(s.Tick)
}

func (s *LocalState) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		if s.Session.IsFinished() {
			return s, nil
		}
		s.Session.CurrentGame.HandleTick()
		return s, tickCmd(s.Tick)

	case tea.WindowSizeMsg:
		s.Help.Width = msg.Width

	case tea.KeyMsg:
		// Any key leaves the final screen
		if s.Session.IsFinished() {
			return s, tea.Quit
		}

		s.Session.CurrentGame.HandleKeyPress(msg.String())
		if err := s.Session.Update(); err != nil {
			log.Printf("advance level: %v", err)
			return s, tea.Quit
		}
		if s.Session.IsQuit() {
			return s, tea.Quit
		}
	}

	return s, nil
}

func (s *LocalState) View() string {
	if s.Session.IsFinished() {
		return greenStyle.Render(fmt.Sprintf(
			"All %d levels solved! Total steps: %d, pushes: %d",
			s.Session.Solved, s.Session.TotalSteps, s.Session.TotalPushes,
		)) + "\n" + "Press any key to exit.\n"
	}

	g := s.Session.CurrentGame
	eng := g.State.Engine
	var b strings.Builder

	b.WriteString(boldStyle.Render(fmt.Sprintf("┃ LEVEL %d/%d: %s", eng.Level()+1, eng.LevelCount(), s.Session.Title())))
	b.WriteString("\n")

	boards := []string{borderStyle.Render(s.Matrix.View())}
	if s.Mirror != nil {
		boards = append(boards, "  ", borderStyle.Render(s.Mirror.View()))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, boards...))
	b.WriteString("\n")

	status := fmt.Sprintf("STEPS: %d | PUSHES: %d | UNDO: %d | TIME: %02d:%02d",
		g.State.Steps, g.State.Score.Pushes, eng.UndoDepth(),
		g.State.Elapsed/60, g.State.Elapsed%60)
	b.WriteString(scoreStyle.Render(status))
	b.WriteString("\n")

	if text := s.Status.Text(); text != "" {
		b.WriteString(redStyle.Render(text))
	}
	b.WriteString("\n")

	if best := g.State.Score.GetBest(); best != nil {
		b.WriteString(fmt.Sprintf("Attempt: %d | Best: %d steps, %d pushes\n",
			g.State.Score.GetAttempts()+1, best.Steps, best.Pushes))
	} else {
		b.WriteString("This is your first try at this level! Good luck!\n")
	}

	s.Help.ShowAll = g.State.ShowHelp
	b.WriteString(s.Help.View(g.Keys))
	return b.String()
}

func serveSpectators(ctx context.Context, addr string, hub *websocket.Hub) *http.Server {
	go hub.Run(ctx)

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", hub.ServeWS)
	srv := &http.Server{Addr: addr, Handler: mux}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("spectator server: %v", err)
		}
	}()
	log.Printf("Spectators can connect to ws://%s/ws", addr)
	return srv
}

func run(ctx context.Context, cmd *cli.Command) error {
	if cmd.Bool("debug") {
		f, err := tea.LogToFile("soko-debug.log", "debug")
		if err != nil {
			return fmt.Errorf("could not open log file: %w", err)
		}
		defer f.Close()
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	} else {
		log.SetOutput(io.Discard)
	}

	levels := board.Levels()
	if paths := append(cmd.StringSlice("levels"), cmd.Args().Slice()...); len(paths) > 0 {
		loaded, err := game.LoadLevels(paths)
		if err != nil {
			return err
		}
		if len(loaded) == 0 {
			return fmt.Errorf("no levels found in %s", strings.Join(paths, ", "))
		}
		levels = loaded
	}

	var storage scoring.ScoreStorage
	if path := cmd.String("scores"); path != "" {
		storage = scoring.NewJSONFileStorageAt(path)
	} else {
		jfs, err := scoring.NewJSONFileStorage()
		if err != nil {
			return fmt.Errorf("failed to create score storage: %w", err)
		}
		storage = jfs
	}

	matrix := display.NewMatrix(board.DefaultRows, board.DefaultCols, display.DefaultPalette)
	status := display.NewStatusLine()
	displays := display.Fanout{matrix}
	messages := display.MessageFanout{status}
	texts := display.TextFanout{status}

	var mirror *display.Mirror
	var engineMirror engine.Mirror
	if cmd.Bool("mirror") {
		mirror = display.NewMirror(termenv.DefaultOutput().Profile)
		engineMirror = mirror
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	if addr := cmd.String("serve"); addr != "" {
		hub := websocket.NewHub()
		relay := websocket.NewRelay(hub, display.DefaultPalette)
		displays = append(displays, relay)
		messages = append(messages, relay)
		texts = append(texts, relay)

		srv := serveSpectators(ctx, addr, hub)
		defer srv.Shutdown(context.Background())
	}

	sess, err := game.NewSession(levels, int(cmd.Int("level"))-1, storage, game.Options{
		Display:     displays,
		Messages:    messages,
		Mirror:      engineMirror,
		HistorySize: int(cmd.Int("history")),
		Clock:       state.NewSystemClock(),
		Buzzer:      display.NewBuzzer(os.Stderr, !cmd.Bool("mute")),
		Status:      texts,
	})
	if err != nil {
		return err
	}

	model := &LocalState{
		Session: sess,
		Matrix:  matrix,
		Mirror:  mirror,
		Status:  status,
		Help:    help.New(),
		Tick:    cmd.Duration("tick"),
	}

	p := tea.NewProgram(model, tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running the program: %w", err)
	}

	if sess.IsFinished() {
		fmt.Printf("Solved %d levels in %d steps.\n", sess.Solved, sess.TotalSteps)
	}
	return nil
}

func main() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Warning: error loading .env file: %v\n", err)
	}

	cmd := &cli.Command{
		Name:      "go-soko",
		Usage:     "play Sokoban on an emulated LED matrix",
		ArgsUsage: "[level files or directories...]",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "level",
				Aliases: []string{"l"},
				Value:   1,
				Usage:   "level to start on (1-based)",
				Sources: cli.EnvVars("SOKO_LEVEL"),
			},
			&cli.StringSliceFlag{
				Name:    "levels",
				Usage:   "level files or directories; levels are separated by a line of '==='",
				Sources: cli.EnvVars("SOKO_LEVELS"),
			},
			&cli.StringFlag{
				Name:    "scores",
				Usage:   "score file (default ~/.config/go-soko/scores.json)",
				Sources: cli.EnvVars("SOKO_SCORES"),
			},
			&cli.StringFlag{
				Name:    "serve",
				Usage:   "address to stream the board to websocket spectators, e.g. :8080",
				Sources: cli.EnvVars("SOKO_SERVE"),
			},
			&cli.IntFlag{
				Name:    "history",
				Value:   engine.DefaultHistorySize,
				Usage:   "number of moves that can be undone",
				Sources: cli.EnvVars("SOKO_HISTORY"),
			},
			&cli.DurationFlag{
				Name:    "tick",
				Value:   50 * time.Millisecond,
				Usage:   "control loop period",
				Sources: cli.EnvVars("SOKO_TICK"),
			},
			&cli.BoolFlag{
				Name:    "mirror",
				Usage:   "show the ANSI board mirror beside the matrix",
				Sources: cli.EnvVars("SOKO_MIRROR"),
			},
			&cli.BoolFlag{
				Name:    "mute",
				Aliases: []string{"m"},
				Usage:   "start with the buzzer off",
				Sources: cli.EnvVars("SOKO_MUTE"),
			},
			&cli.BoolFlag{
				Name:    "debug",
				Usage:   "write a debug log to soko-debug.log",
				Sources: cli.EnvVars("SOKO_DEBUG"),
			},
		},
		Action: run,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
