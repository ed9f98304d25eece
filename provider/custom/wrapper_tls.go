// Package custom provides the TLS-fingerprinted HTTP module for Lua scripts.
//
// Requests made through it present a Chrome Client Hello, which some sites
// behind anti-bot proxies require.
//
// Lua API:
//
//	http_tls.get(url)              → returns body string
//	http_tls.get(url, headers_tbl) → returns body string with custom headers
//	http_tls.request(options_tbl)  → returns {status, body}
//
// request options are method, url, headers, body and cache. With cache set,
// 200 responses are kept on disk and served from there until they expire.
package custom

import (
	"context"
	"net/http"

	"github.com/anisan-cli/streamkit/internal/cache"
	"github.com/anisan-cli/streamkit/network"
	lua "github.com/yuin/gopher-lua"
)

// registerTLSClient injects the "http_tls" global module into the Lua state.
func registerTLSClient(L *lua.LState) {
	mod := L.NewTable()
	L.SetField(mod, "get", L.NewFunction(httpTLSGet))
	L.SetField(mod, "request", L.NewFunction(httpTLSRequest))
	L.SetGlobal("http_tls", mod)
}

func stateContext(L *lua.LState) context.Context {
	if ctx := L.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func headersFrom(tbl *lua.LTable) map[string]string {
	headers := make(map[string]string)
	if tbl == nil {
		return headers
	}
	tbl.ForEach(func(k, v lua.LValue) {
		headers[k.String()] = v.String()
	})
	return headers
}

// httpTLSGet implements http_tls.get(url [, headers]) → body string
func httpTLSGet(L *lua.LState) int {
	url := L.CheckString(1)
	headers := headersFrom(L.OptTable(2, nil))

	body, _, err := network.FingerprintDo(stateContext(L), http.MethodGet, url, headers, "")
	if err != nil {
		L.RaiseError("http_tls.get failed: %s", err.Error())
		return 0
	}

	L.Push(lua.LString(body))
	return 1
}

type tlsCacheEntry struct {
	Status int    `json:"status"`
	Body   string `json:"body"`
}

// httpTLSRequest implements http_tls.request(options) → {status, body}
func httpTLSRequest(L *lua.LState) int {
	opts := L.CheckTable(1)

	method := getStringField(opts, "method", http.MethodGet)
	url := getStringField(opts, "url", "")
	reqBody := getStringField(opts, "body", "")

	if url == "" {
		L.RaiseError("http_tls.request: url is required")
		return 0
	}

	shouldCache := lua.LVAsBool(opts.RawGetString("cache"))

	var headers map[string]string
	if tbl, ok := opts.RawGetString("headers").(*lua.LTable); ok {
		headers = headersFrom(tbl)
	}

	push := func(entry tlsCacheEntry) int {
		result := L.NewTable()
		L.SetField(result, "status", lua.LNumber(entry.Status))
		L.SetField(result, "body", lua.LString(entry.Body))
		L.Push(result)
		return 1
	}

	var cacheKey string
	if shouldCache {
		cacheKey = cache.GenerateKey(url+reqBody, method)
		var entry tlsCacheEntry
		if cache.Read(cacheKey, &entry) {
			return push(entry)
		}
	}

	body, status, err := network.FingerprintDo(stateContext(L), method, url, headers, reqBody)
	if err != nil {
		L.RaiseError("http_tls.request failed: %s", err.Error())
		return 0
	}

	entry := tlsCacheEntry{Status: status, Body: body}
	if shouldCache && status == http.StatusOK {
		_ = cache.Write(cacheKey, entry)
	}

	return push(entry)
}

// getStringField is a helper to get a string field from a Lua table with a default.
func getStringField(tbl *lua.LTable, key string, def string) string {
	val := tbl.RawGetString(key)
	if val == lua.LNil {
		return def
	}
	return val.String()
}
