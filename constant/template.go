// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

// Lua adapter globals. The first three are required, the rest are optional.
const (
	SearchFn    = "Search"
	LoadFn      = "Load"
	LoadLinksFn = "LoadLinks"
	MainPageFn  = "MainPage"
	SectionsVar = "Sections"
)

// SourceTemplate is a Go text/template for scaffolding new Lua adapter files.
const SourceTemplate = `{{ $divider := repeat "-" (plus (max (len .URL) (len .Name) (len .Author) 3) 12) }}{{ $divider }}
-- @name    {{ .Name }}
-- @url     {{ .URL }}
-- @lang    {{ .Lang }}
-- @author  {{ .Author }}
-- @license MIT
{{ $divider }}


---@alias item { name: string, url: string, poster: string|nil, type: string|nil, dubbed: boolean|nil }
---@alias detail { name: string, url: string, type: string|nil, poster: string|nil, background: string|nil, year: number|nil, plot: string|nil, tags: string[]|nil, episodes: episode[] }
---@alias episode { data: string, name: string, poster: string|nil }
---@alias link { url: string, name: string|nil, quality: string|nil, referer: string|nil }


----- IMPORTS -----
--- END IMPORTS ---



----- VARIABLES -----

--- Homepage sections. Each data value is passed back to {{ .MainPageFn }}.
{{ .SectionsVar }} = {
	{ name = "Latest", data = "latest" },
}

--- END VARIABLES ---



----- MAIN -----

--- Lists one page of a homepage section.
-- @param page number Page number, starting from 1
-- @param data string Section key
-- @return item[] Table of listing items
function {{ .MainPageFn }}(page, data)
	return {}
end


--- Searches the site with given query.
-- @param query string Query to search for
-- @return item[] Table of listing items
function {{ .SearchFn }}(query)
	return {}
end


--- Loads the detail page of a listing item.
-- @param url string URL of the detail page
-- @return detail Detail record
function {{ .LoadFn }}(url)
	return { name = "", url = url, episodes = {} }
end


--- Resolves episode data into playable links.
-- @param data string Episode data
-- @return link[] Table of links
function {{ .LoadLinksFn }}(data)
	return {}
end


--- END MAIN ---




----- HELPERS -----
--- END HELPERS ---

-- ex: ts=4 sw=4 et filetype=lua
`
