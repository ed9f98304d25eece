// Package custom provides a bridge between the Go core and Lua-based site adapters.
package custom

import (
	"context"
	"fmt"
	"sync"

	"github.com/anisan-cli/streamkit/constant"
	"github.com/anisan-cli/streamkit/source"
	lua "github.com/yuin/gopher-lua"
)

// luaSource runs adapter operations on one Lua state.
// The state is not goroutine-safe, so calls are serialized.
type luaSource struct {
	name   string
	header Header
	state  *lua.LState
	mu     sync.Mutex
}

func newLuaSource(name string, header Header, state *lua.LState) *luaSource {
	return &luaSource{
		name:   name,
		header: header,
		state:  state,
	}
}

// Name returns the provider name.
func (s *luaSource) Name() string {
	return s.name
}

// ID returns the provider ID.
func (s *luaSource) ID() string {
	return IDfromName(s.name)
}

func (s *luaSource) Lang() string {
	return s.header.Lang
}

func (s *luaSource) Types() []source.TvType {
	return s.header.Types
}

// MainPages reads the Sections table, if the script defines one.
func (s *luaSource) MainPages() []source.MainPageRequest {
	s.mu.Lock()
	defer s.mu.Unlock()

	tbl, ok := s.state.GetGlobal(constant.SectionsVar).(*lua.LTable)
	if !ok {
		return nil
	}

	sections, _ := mapTable(tbl, sectionFromTable)
	return sections
}

// defines reports whether the script declares the global function fn.
func (s *luaSource) defines(fn string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.GetGlobal(fn).Type() == lua.LTFunction
}

// call executes a global Lua function safely and returns its first nret results.
func (s *luaSource) call(ctx context.Context, fn string, nret int, args ...lua.LValue) ([]lua.LValue, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	luaFn := s.state.GetGlobal(fn)
	if luaFn.Type() != lua.LTFunction {
		return nil, fmt.Errorf("function %s is not defined", fn)
	}

	s.state.SetContext(ctx)
	defer s.state.RemoveContext()

	err := s.state.CallByParam(lua.P{
		Fn:      luaFn,
		NRet:    nret,
		Protect: true,
	}, args...)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("%s: %s: %w", s.name, fn, err)
	}

	values := make([]lua.LValue, nret)
	for i := 0; i < nret; i++ {
		values[i] = s.state.Get(-nret + i)
	}
	s.state.Pop(nret)

	return values, nil
}

// callTable calls fn and requires its first result to be a table.
func (s *luaSource) callTable(ctx context.Context, op, fn string, args ...lua.LValue) (*lua.LTable, error) {
	values, err := s.call(ctx, fn, 1, args...)
	if err != nil {
		return nil, &source.LoadError{Op: op, Err: err}
	}

	tbl, ok := values[0].(*lua.LTable)
	if !ok {
		return nil, &source.LoadError{Op: op, Reason: fmt.Sprintf("%s returned %s, expected table", fn, values[0].Type())}
	}
	return tbl, nil
}

func (s *luaSource) Homepage(ctx context.Context, page int, request source.MainPageRequest) (*source.HomePage, error) {
	if !s.defines(constant.MainPageFn) {
		return nil, &source.LoadError{Op: "homepage", Reason: s.name + " has no homepage"}
	}

	tbl, err := s.callTable(ctx, "homepage", constant.MainPageFn, lua.LNumber(page), lua.LString(request.Data))
	if err != nil {
		return nil, err
	}

	items, err := mapTable(tbl, s.itemFromTable)
	if err != nil {
		return nil, &source.LoadError{Op: "homepage", Err: err}
	}

	return source.NewHomePage(request.Name, items), nil
}

func (s *luaSource) Search(ctx context.Context, query string) ([]*source.SearchResult, error) {
	tbl, err := s.callTable(ctx, "search", constant.SearchFn, lua.LString(query))
	if err != nil {
		return nil, err
	}

	items, err := mapTable(tbl, s.itemFromTable)
	if err != nil {
		return nil, &source.LoadError{Op: "search", Err: err}
	}

	return items, nil
}

func (s *luaSource) Load(ctx context.Context, url string) (*source.Detail, error) {
	tbl, err := s.callTable(ctx, "load", constant.LoadFn, lua.LString(url))
	if err != nil {
		return nil, err
	}

	detail, err := s.detailFromTable(tbl, url)
	if err != nil {
		return nil, &source.LoadError{Op: "load", URL: url, Err: err}
	}

	return detail, nil
}

// LoadLinks calls LoadLinks(data, is_casting). The script returns a table of
// links and, optionally, a second table of subtitles.
func (s *luaSource) LoadLinks(ctx context.Context, data string, isCasting bool, onSubtitle func(*source.Subtitle), onLink func(*source.ExtractorLink)) (bool, error) {
	values, err := s.call(ctx, constant.LoadLinksFn, 2, lua.LString(data), lua.LBool(isCasting))
	if err != nil {
		return false, &source.LoadError{Op: "links", Err: err}
	}

	linksTbl, ok := values[0].(*lua.LTable)
	if !ok {
		return false, &source.LoadError{Op: "links", Reason: fmt.Sprintf("%s returned %s, expected table", constant.LoadLinksFn, values[0].Type())}
	}

	if subsTbl, ok := values[1].(*lua.LTable); ok && onSubtitle != nil {
		subs, _ := mapTable(subsTbl, subtitleFromTable)
		for _, sub := range subs {
			onSubtitle(sub)
		}
	}

	links, err := mapTable(linksTbl, s.linkFromTable)
	if err != nil {
		return false, &source.LoadError{Op: "links", Err: err}
	}

	for _, link := range links {
		onLink(link)
	}

	return len(links) > 0, nil
}
