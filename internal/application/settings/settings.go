// Package settings defines application-level configuration data.
package settings

import "time"

const (
	// FormatJSON expects the endpoint to return a JSON array of articles.
	FormatJSON = "json"
	// FormatRSS expects the endpoint to return an RSS or Atom document.
	FormatRSS = "rss"
)

// KeyMapConfig defines the configuration for keybindings.
type KeyMapConfig struct {
	Up       string `yaml:"up" kong:"help='Up key',default='k,up'"`
	Down     string `yaml:"down" kong:"help='Down key',default='j,down'"`
	UpPage   string `yaml:"up_page" kong:"help='Page Up key',default='ctrl+u,pgup'"`
	DownPage string `yaml:"down_page" kong:"help='Page Down key',default='ctrl+d,pgdown'"`
	Top      string `yaml:"top" kong:"help='Top key',default='g,home'"`
	Bottom   string `yaml:"bottom" kong:"help='Bottom key',default='G,end'"`
	Open     string `yaml:"open" kong:"help='Open link key',default='enter,o'"`
	Quit     string `yaml:"quit" kong:"help='Quit key',default='q,ctrl+c'"`
}

// ThemeConfig defines the color theme configuration.
type ThemeConfig struct {
	Accent string `yaml:"accent" kong:"help='Accent color',default='205'"`
	Muted  string `yaml:"muted" kong:"help='Muted text color',default='240'"`
	Error  string `yaml:"error" kong:"help='Error text color',default='203'"`
}

// LogConfig defines where and how verbosely the application logs.
type LogConfig struct {
	File  string `yaml:"file" kong:"help='Log file path'"`
	Level string `yaml:"level" kong:"help='Log level (debug/info/warn/error)',default='info'"`
}

// Settings represents the application configuration.
type Settings struct {
	Endpoint  string        `yaml:"endpoint" kong:"help='Feed endpoint URL',default='http://localhost:8080/api/rss'"`
	Format    string        `yaml:"format" kong:"help='Endpoint payload format (json/rss)',default='json'"`
	Heading   string        `yaml:"heading" kong:"help='Heading shown above the article list',default='The Latest News on AI and Machine Learning from TechXplore.com'"`
	UserAgent string        `yaml:"user_agent" kong:"help='User-Agent sent to the endpoint',default='newsview/1.0'"`
	Timeout   time.Duration `yaml:"timeout" kong:"help='Request timeout, 0 disables it',default='0s'"`
	KeyMap    KeyMapConfig  `yaml:"keymap" kong:"embed,prefix='keymap.'"`
	Theme     ThemeConfig   `yaml:"theme" kong:"embed,prefix='theme.'"`
	Log       LogConfig     `yaml:"log" kong:"embed,prefix='log.'"`
}
