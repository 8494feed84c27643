package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"pokedex/browser/internal/catalog"
	"pokedex/browser/internal/service"

	"github.com/peterh/liner"
	"github.com/schollz/progressbar/v3"
	log "github.com/sirupsen/logrus"
)

const (
	prompt = "pokedex> "
	help   = `Type any text to filter loaded records by name, an empty line shows everything.
  :more, :m    load the next page
  :clear, :c   clear the search
  :help, :h    show this help
  :quit, :q    exit`
)

// Shell is the interactive front end: one prompt line per query change or command.
type Shell struct {
	session  *service.Session
	out      io.Writer
	progress io.Writer
	width    func() int
}

// New builds a shell printing views to out and the busy indicator to progress.
// width reports the current terminal width on every render.
func New(session *service.Session, out, progress io.Writer, width func() int) *Shell {
	return &Shell{
		session:  session,
		out:      out,
		progress: progress,
		width:    width,
	}
}

func (s *Shell) Run(ctx context.Context) error {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	fmt.Fprintln(s.out, help)
	s.render()

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		input, err := line.Prompt(prompt)
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("failed to read input: %w", err)
		}

		if strings.TrimSpace(input) != "" {
			line.AppendHistory(input)
		}

		if quit := s.Execute(ctx, input); quit {
			return nil
		}
	}
}

// Execute handles one input line and re-renders. It reports whether the shell should exit.
func (s *Shell) Execute(ctx context.Context, input string) bool {
	cmd := strings.TrimSpace(input)

	switch cmd {
	case ":quit", ":q", "exit":
		return true
	case ":help", ":h":
		fmt.Fprintln(s.out, help)
		return false
	case ":more", ":m":
		s.loadMore(ctx)
	case ":clear", ":c":
		s.session.Search("")
	default:
		if strings.HasPrefix(cmd, ":") {
			fmt.Fprintf(s.out, "unknown command %s, :help lists commands\n", cmd)
			return false
		}
		s.session.Search(cmd)
	}

	s.render()
	return false
}

// LoadInitial loads the first page before the prompt opens
func (s *Shell) LoadInitial(ctx context.Context) {
	s.loadMore(ctx)
}

func (s *Shell) loadMore(ctx context.Context) {
	if !s.session.CanLoadMore() {
		if s.session.Loading() {
			fmt.Fprintln(s.out, "still loading, try again in a moment")
		} else {
			fmt.Fprintln(s.out, "all records are loaded")
		}
		return
	}

	bar := newBusyBar(s.progress)
	_, err := s.session.LoadMore(ctx, bar.step)
	bar.finish()

	if err != nil && !errors.Is(err, catalog.ErrExhausted) {
		log.Debugf("load more failed: %v", err)
		fmt.Fprintf(s.out, "⚠️ could not load more records: %v\n", err)
	}
}

func (s *Shell) render() {
	fmt.Fprintln(s.out, s.session.Render(s.width()))
}

// busyBar creates its progress bar on the first resolved detail, once the page size is known.
type busyBar struct {
	w   io.Writer
	mu  sync.Mutex
	bar *progressbar.ProgressBar
}

func newBusyBar(w io.Writer) *busyBar {
	return &busyBar{w: w}
}

// step is a catalog.ProgressFunc. Calls arrive from concurrent fetches in any order.
func (b *busyBar) step(_, total int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.bar == nil {
		b.bar = progressbar.NewOptions(total,
			progressbar.OptionSetWriter(b.w),
			progressbar.OptionSetDescription("Loading"),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
	}
	_ = b.bar.Add(1)
}

func (b *busyBar) finish() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.bar != nil {
		_ = b.bar.Finish()
	}
}
