package service

import (
	"fmt"
	"os/exec"
	"runtime"
)

// linuxOpeners are tried in order
var linuxOpeners = []string{"xdg-open", "gnome-open", "kde-open", "wslview"}

// OpenBrowser opens the specified URL in the default browser without waiting for it
func OpenBrowser(url string) error {
	name, args, err := browserCommand(runtime.GOOS, url, exec.LookPath)
	if err != nil {
		return err
	}
	if err := exec.Command(name, args...).Start(); err != nil {
		return fmt.Errorf("failed to open browser: %w", err)
	}
	return nil
}

// browserCommand selects the opener command for goos.
func browserCommand(goos, url string, lookPath func(string) (string, error)) (string, []string, error) {
	switch goos {
	case "darwin":
		return "open", []string{url}, nil
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", url}, nil
	case "linux", "freebsd", "openbsd", "netbsd":
		for _, opener := range linuxOpeners {
			if _, err := lookPath(opener); err == nil {
				return opener, []string{url}, nil
			}
		}
		return "", nil, fmt.Errorf("no suitable browser opener found on %s", goos)
	default:
		return "", nil, fmt.Errorf("unsupported platform: %s", goos)
	}
}
