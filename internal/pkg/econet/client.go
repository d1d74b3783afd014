package econet

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/anicoll/econet-integration/internal/pkg/config"
)

var (
	// ErrLoginFailed means the cloud rejected the credentials or the login
	// flow could not establish a session.
	ErrLoginFailed = errors.New("econet: login failed")
	// ErrSessionExpired means the cookie session is gone; the caller should
	// re-login before the next fetch.
	ErrSessionExpired = errors.New("econet: session expired")
)

const userAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36"

// a successful login redirects to /view/device/{UID}/main/
var deviceRedirectPattern = regexp.MustCompile(`/view/device/([A-Z0-9]+)/`)

// session cookies the cloud sets after a successful login
var sessionCookieNames = []string{"_mlmsc", "_mlmlc", "sessionid"}

type service struct {
	cfg      *config.EconetConfig
	http     *http.Client
	base     *url.URL
	logger   *zap.Logger
	devices  []string
	loggedIn bool
}

func New(cfg *config.EconetConfig) (*service, error) {
	base, err := url.Parse(cfg.ApiBase)
	if err != nil {
		return nil, fmt.Errorf("econet: invalid api base %q: %w", cfg.ApiBase, err)
	}
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	return &service{
		cfg:    cfg,
		base:   base,
		logger: zap.L(),
		http: &http.Client{
			Jar:     jar,
			Timeout: 30 * time.Second,
		},
	}, nil
}

// Login establishes a fresh cookie session: fetch the login page for the
// CSRF cookie, post the credential form, then verify the session via the
// redirect target or the session cookies.
func (s *service) Login(ctx context.Context) error {
	s.loggedIn = false

	// fresh jar so a stale session never leaks into the new login
	jar, err := cookiejar.New(nil)
	if err != nil {
		return err
	}
	s.http.Jar = jar

	if err := s.drainGet(ctx, "/login/"); err != nil {
		return fmt.Errorf("%w: %w", ErrLoginFailed, err)
	}
	csrf := s.cookieValue("csrftoken")
	if csrf == "" {
		return fmt.Errorf("%w: no csrf token on login page", ErrLoginFailed)
	}

	form := url.Values{
		"username":            {s.cfg.Username},
		"password":            {s.cfg.Password},
		"csrfmiddlewaretoken": {csrf},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.ApiBase+"/login/", strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("X-CSRFToken", csrf)
	req.Header.Set("Referer", s.cfg.ApiBase+"/login/")
	req.Header.Set("Origin", s.cfg.ApiBase)

	res, err := s.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLoginFailed, err)
	}
	defer res.Body.Close()
	_, _ = io.Copy(io.Discard, res.Body)

	// redirects are followed, so res.Request carries the final URL
	if m := deviceRedirectPattern.FindStringSubmatch(res.Request.URL.Path); m != nil {
		s.devices = []string{m[1]}
		s.loggedIn = true
	} else if s.hasSessionCookie() {
		s.loggedIn = true
	} else {
		return fmt.Errorf("%w: no device redirect or session cookies", ErrLoginFailed)
	}

	// best effort; the redirect UID already covers the single-device case
	if devices, err := s.userDevices(ctx); err == nil && len(devices) > 0 {
		s.devices = devices
	}

	s.logger.Info("econet login successful", zap.Strings("devices", s.devices))
	return nil
}

// Devices returns the UIDs discovered during the last successful login.
func (s *service) Devices() []string {
	return s.devices
}

// DeviceParams fetches the primary live-data document for one device.
func (s *service) DeviceParams(ctx context.Context, uid string) (*DeviceParams, error) {
	params := &DeviceParams{}
	if err := s.getJSON(ctx, "/service/getDeviceParams?uid="+url.QueryEscape(uid), params); err != nil {
		return nil, err
	}
	return params, nil
}

// EditableParams fetches the setpoint/information-parameter document.
func (s *service) EditableParams(ctx context.Context, uid string) (*EditableParams, error) {
	params := &EditableParams{}
	if err := s.getJSON(ctx, "/service/getDeviceEditableParams?uid="+url.QueryEscape(uid), params); err != nil {
		return nil, err
	}
	return params, nil
}

func (s *service) userDevices(ctx context.Context) ([]string, error) {
	res := userDevicesResponse{}
	if err := s.getJSON(ctx, "/service/getUserDevices", &res); err != nil {
		return nil, err
	}
	return res.Devices, nil
}

func (s *service) getJSON(ctx context.Context, path string, out any) error {
	if err := s.ensureSession(); err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.cfg.ApiBase+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json, text/plain, */*")

	res, err := s.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	switch {
	case res.StatusCode == http.StatusUnauthorized || res.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%w: status %d on %s", ErrSessionExpired, res.StatusCode, path)
	case strings.Contains(res.Request.URL.Path, "/login"):
		// expired sessions bounce back to the login page
		return fmt.Errorf("%w: redirected to login on %s", ErrSessionExpired, path)
	case res.StatusCode != http.StatusOK:
		return fmt.Errorf("econet: unexpected status %d on %s", res.StatusCode, path)
	}
	return json.NewDecoder(res.Body).Decode(out)
}

func (s *service) ensureSession() error {
	if !s.loggedIn {
		return fmt.Errorf("%w: not logged in", ErrSessionExpired)
	}
	if !s.hasSessionCookie() {
		return fmt.Errorf("%w: session cookie missing", ErrSessionExpired)
	}
	return nil
}

func (s *service) hasSessionCookie() bool {
	for _, c := range s.http.Jar.Cookies(s.base) {
		for _, name := range sessionCookieNames {
			if c.Name == name {
				return true
			}
		}
	}
	return false
}

func (s *service) cookieValue(name string) string {
	for _, c := range s.http.Jar.Cookies(s.base) {
		if c.Name == name {
			return c.Value
		}
	}
	return ""
}

func (s *service) drainGet(ctx context.Context, path string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.cfg.ApiBase+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", userAgent)
	res, err := s.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	_, _ = io.Copy(io.Discard, res.Body)
	return nil
}
