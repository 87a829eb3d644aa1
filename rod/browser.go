package rod

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/fwojciec/scrapeview"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// DefaultMaxPages is how many pages one Chrome instance serves before it is
// relaunched.
const DefaultMaxPages = 50

// DefaultUserAgent replaces the HeadlessChrome user agent on rendered pages.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) " +
	"AppleWebKit/537.36 (KHTML, like Gecko) " +
	"Chrome/120.0.0.0 Safari/537.36"

// Browser is a headless Chrome that is relaunched after serving a fixed
// number of pages. It is safe for concurrent use.
type Browser struct {
	mu       sync.Mutex
	current  *rod.Browser
	launcher *launcher.Launcher
	served   int64
	maxPages int64
	closed   atomic.Bool
}

// BrowserOption configures a Browser.
type BrowserOption func(*Browser)

// WithMaxPages sets how many pages an instance serves before relaunch.
func WithMaxPages(n int64) BrowserOption {
	return func(b *Browser) {
		b.maxPages = n
	}
}

// LaunchBrowser starts Chrome. Close must be called when done.
func LaunchBrowser(opts ...BrowserOption) (*Browser, error) {
	b := &Browser{maxPages: DefaultMaxPages}
	for _, opt := range opts {
		opt(b)
	}

	current, l, err := launch()
	if err != nil {
		return nil, err
	}
	b.current, b.launcher = current, l
	return b, nil
}

// OpenPage opens a blank page, relaunching Chrome first when the current
// instance has served its share of pages.
func (b *Browser) OpenPage() (*rod.Page, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.current == nil {
		return nil, scrapeview.Errorf(scrapeview.EINVALID, "browser is closed")
	}
	if b.served >= b.maxPages {
		b.relaunch()
	}

	page, err := b.current.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, fmt.Errorf("opening page: %w", err)
	}
	b.served++
	return page, nil
}

// Current returns the running Chrome instance.
func (b *Browser) Current() *rod.Browser {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.current
}

// Close stops Chrome. Later calls do nothing.
func (b *Browser) Close() error {
	if !b.closed.CompareAndSwap(false, true) {
		return nil
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	var err error
	if b.current != nil {
		err = b.current.Close()
		b.current = nil
	}
	if b.launcher != nil {
		b.launcher.Kill()
		b.launcher = nil
	}
	return err
}

// Closed reports whether Close has been called.
func (b *Browser) Closed() bool {
	return b.closed.Load()
}

// LauncherPID returns the pid of the Chrome launcher, or 0 once closed.
func (b *Browser) LauncherPID() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.launcher == nil {
		return 0
	}
	return b.launcher.PID()
}

// relaunch swaps in a fresh instance. The old one keeps serving when the
// launch fails. Must be called with mu held.
func (b *Browser) relaunch() {
	next, l, err := launch()
	if err != nil {
		return
	}

	_ = b.current.Close()
	b.launcher.Kill()

	b.current, b.launcher = next, l
	b.served = 0
}

// launch starts headless Chrome without the automation marker some sites
// answer with empty pages.
func launch() (*rod.Browser, *launcher.Launcher, error) {
	l := launcher.New().
		Set("disable-blink-features", "AutomationControlled").
		Set("window-size", "1280,800").
		Set("disable-background-timer-throttling").
		Set("disable-backgrounding-occluded-windows").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Leakless(true).
		Headless(true)

	u, err := l.Launch()
	if err != nil {
		return nil, nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return nil, nil, fmt.Errorf("connecting to browser: %w", err)
	}
	return browser, l, nil
}
