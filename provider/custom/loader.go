// Package custom provides a bridge between the Go core and Lua-based site adapters.
package custom

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/anisan-cli/streamkit/constant"
	"github.com/anisan-cli/streamkit/filesystem"
	"github.com/anisan-cli/streamkit/internal/scraper"
	"github.com/anisan-cli/streamkit/source"
	"github.com/anisan-cli/streamkit/util"
	libs "github.com/metafates/mangal-lua-libs"
	"github.com/samber/lo"
	lua "github.com/yuin/gopher-lua"
)

// IDfromName generates a canonical provider identifier for a given Lua script basename.
func IDfromName(name string) string {
	return name + " custom"
}

// Header holds the "-- @key value" annotations at the top of a script.
type Header struct {
	Name  string
	URL   string
	Lang  string
	Types []source.TvType
}

var annotation = regexp.MustCompile(`^--\s*@(\w+)\s+(.+)$`)

// ReadHeader parses the annotations of the script at path.
// Missing annotations fall back to the file name, "en" and Others.
func ReadHeader(path string) Header {
	h := Header{Name: util.FileStem(path), Lang: "en"}

	content, err := filesystem.API().ReadFile(path)
	if err != nil {
		return h
	}

	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "---") {
			continue
		}
		if !strings.HasPrefix(line, "--") {
			break
		}

		m := annotation.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		value := strings.TrimSpace(m[2])
		switch m[1] {
		case "name":
			h.Name = value
		case "url":
			h.URL = value
		case "lang":
			h.Lang = value
		case "types":
			h.Types = lo.Map(util.SplitTrim(value, ","), func(t string, _ int) source.TvType {
				return source.ParseTvType(t)
			})
		}
	}

	if len(h.Types) == 0 {
		h.Types = []source.TvType{source.Others}
	}

	return h
}

// LoadSource initializes a new source.Source instance by executing and validating a Lua adapter script.
func LoadSource(path string) (source.Source, error) {
	state := lua.NewState()
	libs.Preload(state)
	registerTLSClient(state)

	if err := scraper.PreCompileAndLoad(state, path); err != nil {
		state.Close()
		return nil, err
	}

	name := util.FileStem(path)

	required := []string{
		constant.SearchFn,
		constant.LoadFn,
		constant.LoadLinksFn,
	}

	for _, fn := range required {
		if state.GetGlobal(fn).Type() != lua.LTFunction {
			state.Close()
			return nil, fmt.Errorf("function %s is required but not defined in %s", fn, name)
		}
	}

	return newLuaSource(name, ReadHeader(path), state), nil
}
