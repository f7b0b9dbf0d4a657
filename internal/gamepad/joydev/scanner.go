package joydev

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/padtris/internal/gamepad"
)

const (
	DefaultDevDir       = "/dev/input"
	DefaultSysDir       = "/sys/class/input"
	DefaultScanInterval = time.Second
)

// Scanner discovers joystick nodes and reads them in the background.
type Scanner struct {
	devDir       string
	sysDir       string
	scanInterval time.Duration
	openTimeout  time.Duration
	logger       *log.Logger

	ctx    context.Context
	cancel context.CancelFunc
	group  *errgroup.Group

	mu      sync.Mutex
	pads    map[int]*gamepad.RawState
	opening map[int]bool
	events  []gamepad.HotplugEvent
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithDirs overrides the device and sysfs directories.
func WithDirs(devDir, sysDir string) Option {
	return func(s *Scanner) {
		s.devDir = devDir
		s.sysDir = sysDir
	}
}

// WithScanInterval sets how often new nodes are looked for.
func WithScanInterval(d time.Duration) Option {
	return func(s *Scanner) {
		s.scanInterval = d
	}
}

// WithOpenTimeout bounds the retries when a fresh node is not yet readable.
func WithOpenTimeout(d time.Duration) Option {
	return func(s *Scanner) {
		s.openTimeout = d
	}
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Scanner) {
		s.logger = l
	}
}

// Open starts scanning. It fails with gamepad.ErrUnsupportedPlatform when
// the device directory does not exist.
func Open(ctx context.Context, opts ...Option) (*Scanner, error) {
	s := &Scanner{
		devDir:       DefaultDevDir,
		sysDir:       DefaultSysDir,
		scanInterval: DefaultScanInterval,
		openTimeout:  2 * time.Second,
		pads:         make(map[int]*gamepad.RawState),
		opening:      make(map[int]bool),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}

	if info, err := os.Stat(s.devDir); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("joydev: %s: %w", s.devDir, gamepad.ErrUnsupportedPlatform)
	}

	s.ctx, s.cancel = context.WithCancel(ctx)
	s.group, s.ctx = errgroup.WithContext(s.ctx)

	s.scan()
	s.group.Go(s.scanLoop)
	return s, nil
}

// Close stops every reader and waits for them.
func (s *Scanner) Close() error {
	s.cancel()
	err := s.group.Wait()
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// Pads returns a copy of every attached device's state.
func (s *Scanner) Pads() []gamepad.RawState {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]gamepad.RawState, 0, len(s.pads))
	for _, p := range s.pads {
		out = append(out, p.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Index < out[j].Index })
	return out
}

// Events returns and clears the hotplug events since the last call.
func (s *Scanner) Events() []gamepad.HotplugEvent {
	s.mu.Lock()
	defer s.mu.Unlock()

	ev := s.events
	s.events = nil
	return ev
}

func (s *Scanner) scanLoop() error {
	t := time.NewTicker(s.scanInterval)
	defer t.Stop()
	for {
		select {
		case <-s.ctx.Done():
			return s.ctx.Err()
		case <-t.C:
			s.scan()
		}
	}
}

// scan starts a reader for every js node that is not being read yet.
func (s *Scanner) scan() {
	paths, err := filepath.Glob(filepath.Join(s.devDir, "js*"))
	if err != nil {
		s.logger.Error("joydev: scan failed", "err", err)
		return
	}
	for _, path := range paths {
		idx, err := strconv.Atoi(strings.TrimPrefix(filepath.Base(path), "js"))
		if err != nil {
			continue
		}

		s.mu.Lock()
		busy := s.opening[idx]
		if _, ok := s.pads[idx]; ok {
			busy = true
		}
		if !busy {
			s.opening[idx] = true
		}
		s.mu.Unlock()

		if !busy {
			s.group.Go(func() error {
				s.read(idx, path)
				return nil
			})
		}
	}
}

// read opens one node and folds its events into the shared state until the
// device goes away or the scanner closes.
func (s *Scanner) read(idx int, path string) {
	defer func() {
		s.mu.Lock()
		delete(s.opening, idx)
		s.mu.Unlock()
	}()

	f, err := s.open(path)
	if err != nil {
		s.logger.Warn("joydev: cannot open device", "path", path, "err", err)
		return
	}
	stop := context.AfterFunc(s.ctx, func() { f.Close() })
	defer stop()
	defer f.Close()

	pad := &gamepad.RawState{Index: idx, ID: s.deviceName(idx)}
	s.mu.Lock()
	s.pads[idx] = pad
	s.events = append(s.events, gamepad.HotplugEvent{Attached: true, Pad: pad.Clone()})
	s.mu.Unlock()
	s.logger.Info("joydev: attached", "path", path, "name", pad.ID)

	buf := make([]byte, eventSize)
	for {
		if _, err := io.ReadFull(f, buf); err != nil {
			if s.ctx.Err() == nil {
				s.logger.Info("joydev: detached", "path", path, "err", err)
			}
			break
		}
		e := decodeEvent(buf)
		s.mu.Lock()
		pad.Buttons, pad.Axes = e.apply(pad.Buttons, pad.Axes)
		s.mu.Unlock()
	}

	s.mu.Lock()
	delete(s.pads, idx)
	if s.ctx.Err() == nil {
		s.events = append(s.events, gamepad.HotplugEvent{Attached: false, Pad: pad.Clone()})
	}
	s.mu.Unlock()
}

// open retries while a freshly created node is not yet accessible; udev
// fixes permissions shortly after the node appears.
func (s *Scanner) open(path string) (*os.File, error) {
	exp := &backoff.ExponentialBackOff{
		InitialInterval:     50 * time.Millisecond,
		RandomizationFactor: 0.2,
		Multiplier:          2,
		MaxInterval:         500 * time.Millisecond,
	}
	return backoff.Retry(s.ctx, func() (*os.File, error) {
		f, err := os.Open(path)
		if errors.Is(err, fs.ErrNotExist) {
			return nil, backoff.Permanent(err)
		}
		return f, err
	},
		backoff.WithBackOff(exp),
		backoff.WithMaxElapsedTime(s.openTimeout),
		backoff.WithNotify(func(err error, d time.Duration) {
			s.logger.Debug("joydev: retrying open", "path", path, "err", err, "in", d)
		}),
	)
}

// deviceName reads the kernel's name for jsN, falling back to the node name.
func (s *Scanner) deviceName(idx int) string {
	node := "js" + strconv.Itoa(idx)
	data, err := os.ReadFile(filepath.Join(s.sysDir, node, "device", "name"))
	if err != nil {
		return node
	}
	if name := strings.TrimSpace(string(data)); name != "" {
		return name
	}
	return node
}
