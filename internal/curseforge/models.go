package curseforge

const (
	// GameIDMinecraft is the CurseForge game id for Minecraft.
	GameIDMinecraft = 432

	// ClassIDMods is the Minecraft class id for mods (as opposed to modpacks or worlds).
	ClassIDMods = 6

	// sortFieldPopularity sorts search results by popularity.
	sortFieldPopularity = 2
)

// ModLoaderType is the numeric loader code used by the files and search endpoints.
type ModLoaderType int

const (
	LoaderAny      ModLoaderType = 0
	LoaderForge    ModLoaderType = 1
	LoaderFabric   ModLoaderType = 4
	LoaderQuilt    ModLoaderType = 5
	LoaderNeoForge ModLoaderType = 6
)

var loaderTypes = map[string]ModLoaderType{
	"forge":    LoaderForge,
	"fabric":   LoaderFabric,
	"quilt":    LoaderQuilt,
	"neoforge": LoaderNeoForge,
}

// LoaderTypeFor maps a lower-case loader name to its code. Unknown names yield false.
func LoaderTypeFor(loader string) (ModLoaderType, bool) {
	t, ok := loaderTypes[loader]
	return t, ok
}

// ReleaseType is the stability of a file: 1 release, 2 beta, 3 alpha.
type ReleaseType int

const (
	ReleaseTypeRelease ReleaseType = 1
	ReleaseTypeBeta    ReleaseType = 2
	ReleaseTypeAlpha   ReleaseType = 3
)

// Mod is a project as returned by the search and mod endpoints.
type Mod struct {
	ID            int        `json:"id"`
	Name          string     `json:"name"`
	Slug          string     `json:"slug"`
	Summary       string     `json:"summary"`
	DownloadCount float64    `json:"downloadCount"`
	Logo          *Logo      `json:"logo"`
	Authors       []Author   `json:"authors"`
	Categories    []Category `json:"categories"`
}

// Logo holds the project icon.
type Logo struct {
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnailUrl"`
}

// Author is a project member.
type Author struct {
	Name string `json:"name"`
}

// Category is a project category.
type Category struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// File is one uploaded file of a project. GameVersions mixes game
// versions and loader names.
type File struct {
	ID            int         `json:"id"`
	DisplayName   string      `json:"displayName"`
	FileName      string      `json:"fileName"`
	FileLength    int64       `json:"fileLength"`
	DownloadURL   *string     `json:"downloadUrl"`
	GameVersions  []string    `json:"gameVersions"`
	ReleaseType   ReleaseType `json:"releaseType"`
	FileDate      string      `json:"fileDate"`
	DownloadCount float64     `json:"downloadCount"`
}

// Pagination describes a page of results.
type Pagination struct {
	Index       int `json:"index"`
	PageSize    int `json:"pageSize"`
	ResultCount int `json:"resultCount"`
	TotalCount  int `json:"totalCount"`
}

// SearchResult is the response of /mods/search.
type SearchResult struct {
	Data       []Mod      `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// SearchOptions holds search parameters. Zero values are omitted from the request.
type SearchOptions struct {
	Query       string
	Slug        string
	GameVersion string
	LoaderType  ModLoaderType
	Index       int
	PageSize    int // default: 20, max: 50
}

// FilesOptions holds file listing parameters.
type FilesOptions struct {
	GameVersion string
	LoaderType  ModLoaderType
	PageSize    int // default and max: 50
}
