//go:build windows

package win32

import "github.com/mj1618/keycycle/internal/platform"

func init() {
	platform.NewProviderFunc = func() (*platform.Provider, error) {
		return &platform.Provider{
			WindowFinder: NewWindowFinder(),
			KeySender:    NewKeySender(),
		}, nil
	}
}
