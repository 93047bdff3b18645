// Package tui provides terminal UI components including SSH server support via Wish.
package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/tui-canvas/internal/cache"
	"github.com/vovakirdan/tui-canvas/internal/canvas"
	"github.com/vovakirdan/tui-canvas/internal/config"
	"github.com/vovakirdan/tui-canvas/internal/session"
	"github.com/vovakirdan/tui-canvas/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.tui-canvas/host_key.
	HostKeyPath string

	// DBPath is the path to the canvas database.
	DBPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// App carries the designer settings shared by every session.
	App config.Config
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.tui-canvas/canvas.db",
		IdleTimeout: 30 * time.Minute,
		App:         config.DefaultConfig(),
	}
}

// SSHServer wraps a Wish SSH server for shared canvas editing.
type SSHServer struct {
	config      SSHServerConfig
	server      *ssh.Server
	store       *storage.Store
	cache       *cache.CanvasCache
	coordinator *session.Coordinator
	logger      *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "canvas-ssh",
	})

	// Open storage
	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open canvas database", "error", err)
		// Continue without storage
	}

	srv := &SSHServer{
		config:      cfg,
		store:       store,
		coordinator: session.NewCoordinator(),
		logger:      logger,
	}
	if store != nil {
		// Canvases load through a server-wide cache. The edit locks keep a
		// cached instance out of reach of everyone but its editor, so a
		// clean (saved) instance can be handed to the next session as-is.
		srv.cache = cache.New(store.LoadCanvas)
	}

	// Resolve host key path
	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".tui-canvas", "host_key")
	}

	// Ensure host key directory exists
	hostKeyDir := filepath.Dir(hostKeyPath)
	if mkdirErr := os.MkdirAll(hostKeyDir, 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	// Create Wish server options
	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	}

	// Create the server
	server, err := wish.NewServer(opts...)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	sid := session.NewSessionID(sshSession.User())

	// Edit locks die with the connection, however it ends.
	go func() {
		<-sshSession.Context().Done()
		s.releaseSessionState(sid, sshSession.User())
	}()

	model := NewSessionModel(s.store, s.cache, s.coordinator, s.config.App, sid, pty.Window.Width, pty.Window.Height)

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// releaseSessionState drops the edit locks a disconnected session still
// holds. A canvas locked at disconnect may hold unsaved edits, so its cache
// entry goes too.
func (s *SSHServer) releaseSessionState(sid session.SessionID, user string) {
	released := s.coordinator.ReleaseSession(sid)
	if len(released) == 0 {
		return
	}

	cached := 0
	if s.cache != nil {
		for _, name := range released {
			s.cache.Invalidate(name)
		}
		cached = s.cache.Len()
	}

	s.logger.Info("dropped edit locks at disconnect",
		"user", user,
		"released", len(released),
		"cached", cached,
	)
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	// Setup signal handling for graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if s.store != nil {
		s.store.Close()
	}

	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// SessionModel manages the full session flow: browser -> designer -> browser.
// This is the top-level model used for SSH sessions.
type SessionModel struct {
	store       *storage.Store
	cache       *cache.CanvasCache
	coordinator *session.Coordinator
	cfg         config.Config
	sessionID   session.SessionID
	browser     BrowserModel
	designer    *DesignerModel
	inDesigner  bool
	width       int
	height      int
	quitting    bool
}

// NewSessionModel creates a new session model starting at the browser.
func NewSessionModel(store *storage.Store, canvasCache *cache.CanvasCache, coordinator *session.Coordinator, cfg config.Config, sid session.SessionID, width, height int) SessionModel {
	return SessionModel{
		store:       store,
		cache:       canvasCache,
		coordinator: coordinator,
		cfg:         cfg,
		sessionID:   sid,
		browser:     NewBrowserModel(store, width, height),
		width:       width,
		height:      height,
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.browser.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = wsm.Width
		m.height = wsm.Height
	}

	if m.inDesigner && m.designer != nil {
		return m.updateDesigner(msg)
	}
	return m.updateBrowser(msg)
}

// updateBrowser handles updates while picking a canvas.
func (m SessionModel) updateBrowser(msg tea.Msg) (tea.Model, tea.Cmd) {
	newBrowser, cmd := m.browser.Update(msg)
	if browserModel, ok := newBrowser.(BrowserModel); ok {
		m.browser = browserModel
	}

	if m.browser.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if name, ok := m.browser.Selected(); ok {
		return m.openCanvas(name)
	}

	return m, cmd
}

// openCanvas takes the edit lock and enters the designer. A held lock or a
// failing load sends the user back to the browser with a notice instead.
func (m SessionModel) openCanvas(name string) (tea.Model, tea.Cmd) {
	if err := m.coordinator.Acquire(name, m.sessionID); err != nil {
		m.browser = NewBrowserModel(m.store, m.width, m.height)
		m.browser.status = fmt.Sprintf("%q is being edited by someone else", name)
		return m, m.browser.Init()
	}

	cv, err := m.loadOrCreate(name)
	if err != nil {
		m.coordinator.Release(name, m.sessionID)
		m.browser = NewBrowserModel(m.store, m.width, m.height)
		m.browser.status = fmt.Sprintf("cannot open %q: %v", name, err)
		return m, m.browser.Init()
	}

	d := NewDesignerModel(cv, m.store, m.cfg, m.width, m.height)
	m.designer = &d
	m.inDesigner = true

	return m, d.Init()
}

// loadOrCreate loads a stored canvas through the cache, or starts an empty
// one when storage has no canvas by that name. Any other load error is
// surfaced: saving a fresh stand-in under a stored name would replace the
// stored placements.
func (m SessionModel) loadOrCreate(name string) (*canvas.Canvas, error) {
	if m.cache == nil {
		return canvas.New(name, m.cfg.Canvas.DefaultWidth), nil
	}

	cv, err := m.cache.Get(name)
	if err == nil {
		return cv, nil
	}
	if errors.Is(err, storage.ErrNotFound) {
		return canvas.New(name, m.cfg.Canvas.DefaultWidth), nil
	}
	return nil, err
}

// updateDesigner handles updates while editing a canvas.
func (m SessionModel) updateDesigner(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.designer.Update(msg)
	if designerModel, ok := newModel.(DesignerModel); ok {
		m.designer = &designerModel
	}

	// Back to the browser: release the lock and swallow the designer's
	// quit command so the session keeps running. Unsaved edits mean the
	// cached instance no longer matches storage, so drop it.
	if m.designer.WantsBack() {
		if m.designer.Dirty() && m.cache != nil {
			m.cache.Invalidate(m.designer.cv.Name)
		}
		m.coordinator.Release(m.designer.cv.Name, m.sessionID)
		m.inDesigner = false
		m.designer = nil
		m.browser = NewBrowserModel(m.store, m.width, m.height)
		return m, m.browser.Init()
	}

	if m.designer.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	if m.inDesigner && m.designer != nil {
		return m.designer.View()
	}

	return m.browser.View()
}
