package config

// WasExplicitlySet checks if a flag was explicitly set by the user
func WasExplicitlySet(flags map[string]bool, flagName string) bool {
	if flags == nil {
		return false
	}
	return flags[flagName]
}

// MergeString merges a string value, using override only if explicitly set
func MergeString(base, override, flagName string, flags map[string]bool) string {
	if WasExplicitlySet(flags, flagName) {
		return override
	}
	return base
}

// MergeBool merges a bool value, using override only if explicitly set
func MergeBool(base, override bool, flagName string, flags map[string]bool) bool {
	if WasExplicitlySet(flags, flagName) {
		return override
	}
	return base
}

// Flag names that map onto OutputConfig fields
const (
	FlagTitle      = "title"
	FlagOpen       = "open"
	FlagNoProgress = "no-progress"
)

// ApplyFlags overlays explicitly set command-line values onto the output config.
// noProgress is the inverse of ShowProgress.
func (c *OutputConfig) ApplyFlags(title string, open, noProgress bool, flags map[string]bool) {
	c.Title = MergeString(c.Title, title, FlagTitle, flags)
	c.OpenBrowser = MergeBool(c.OpenBrowser, open, FlagOpen, flags)
	c.ShowProgress = MergeBool(c.ShowProgress, !noProgress, FlagNoProgress, flags)
}
