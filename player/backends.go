package player

import (
	"fmt"
	"net/url"
	"path/filepath"
	"sort"
	"strings"

	"github.com/samber/lo"
)

type backend func(m Media) (bin string, args []string)

var backends = map[string]backend{
	"mpv":  mpv,
	"iina": iina,
	"vlc":  vlc,
}

// headerFields renders headers as a sorted "Key: value" list separated by commas.
func headerFields(headers map[string]string) string {
	keys := lo.Keys(headers)
	sort.Strings(keys)
	return strings.Join(lo.Map(keys, func(k string, _ int) string {
		return fmt.Sprintf("%s: %s", k, strings.ReplaceAll(headers[k], ",", "%2C"))
	}), ",")
}

func mpvFlags(m Media, prefix string) []string {
	args := []string{
		fmt.Sprintf("--%sforce-media-title=%s", prefix, m.Title),
	}
	if referer, ok := m.Headers["Referer"]; ok {
		args = append(args, fmt.Sprintf("--%sreferrer=%s", prefix, referer))
	}
	if len(m.Headers) > 0 {
		args = append(args, fmt.Sprintf("--%shttp-header-fields=%s", prefix, headerFields(m.Headers)))
	}
	for _, sub := range m.Subtitles {
		args = append(args, fmt.Sprintf("--%ssub-file=%s", prefix, sub))
	}
	return args
}

func mpv(m Media) (string, []string) {
	args := append([]string{"--no-terminal", "--force-window=yes"}, mpvFlags(m, "")...)
	return "mpv", append(args, m.URL)
}

// iina forwards mpv options with the --mpv- prefix.
func iina(m Media) (string, []string) {
	args := append([]string{"--no-stdin"}, mpvFlags(m, "mpv-")...)
	return "iina", append(args, m.URL)
}

func vlc(m Media) (string, []string) {
	args := []string{"--meta-title=" + m.Title}
	if referer, ok := m.Headers["Referer"]; ok {
		args = append(args, "--http-referrer="+referer)
	}
	if len(m.Subtitles) > 0 {
		args = append(args, "--sub-file="+m.Subtitles[0])
	}
	return "vlc", append(args, m.URL)
}

// sanitizeMediaTarget validates that a URL is safe to pass as a positional argument.
func sanitizeMediaTarget(link string) (string, error) {
	l := strings.TrimSpace(link)
	if l == "" {
		return "", fmt.Errorf("empty URL")
	}

	if strings.ContainsAny(l, "\x00\n\r") {
		return "", fmt.Errorf("invalid control characters in URL")
	}

	if strings.HasPrefix(l, "-") {
		return "", fmt.Errorf("url must not start with '-' (looks like a flag)")
	}

	if strings.Contains(l, "://") {
		u, err := url.Parse(l)
		if err != nil {
			return "", fmt.Errorf("invalid URL: %w", err)
		}
		switch strings.ToLower(u.Scheme) {
		case "http", "https":
			return l, nil
		default:
			return "", fmt.Errorf("unsupported URL scheme: %s", u.Scheme)
		}
	}

	return filepath.Clean(l), nil
}

func sanitizeTitle(title string) string {
	t := strings.NewReplacer("\n", " ", "\r", " ", "\t", " ", "\x00", "").Replace(title)
	return strings.TrimSpace(t)
}
