// Package constants defines application constants
package constants

// Preset names
const (
	PresetHD        = "hd"
	PresetQHD       = "qhd"
	PresetUHD       = "uhd"
	PresetUltrawide = "ultrawide"
	PresetAny       = "any"
)

// Valid presets, in display order
var ValidPresets = []string{
	PresetHD, PresetQHD, PresetUHD, PresetUltrawide, PresetAny,
}

// Default rule values (Full HD landscape)
const (
	DefaultPreset            = PresetHD
	DefaultMinWidth          = 1920
	DefaultMinHeight         = 1080
	DefaultAspectRatioMin    = 1.3 // slightly wider than 4:3
	DefaultAspectRatioMax    = 2.4 // just beyond 21:9
	DefaultPortraitThreshold = 1.0 // anything <= 1.0 is portrait or square
	DefaultAllowExplicit     = false
)

// Wallhaven sort orders
const (
	SortRelevance = "relevance"
	SortRandom    = "random"
	SortDateAdded = "date_added"
	SortViews     = "views"
	SortFavorites = "favorites"
	SortToplist   = "toplist"
)

// Valid sort orders
var ValidSorts = []string{
	SortRelevance, SortRandom, SortDateAdded,
	SortViews, SortFavorites, SortToplist,
}

// Order constants
const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// Valid orders
var ValidOrders = []string{OrderAsc, OrderDesc}

// Log levels
const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

// Valid log levels
var ValidLogLevels = []string{LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError}

// Environment variables
const (
	EnvPrefix            = "WALLFILTER_"
	EnvPreset            = EnvPrefix + "PRESET"
	EnvMinWidth          = EnvPrefix + "MIN_WIDTH"
	EnvMinHeight         = EnvPrefix + "MIN_HEIGHT"
	EnvAspectRatioMin    = EnvPrefix + "ASPECT_RATIO_MIN"
	EnvAspectRatioMax    = EnvPrefix + "ASPECT_RATIO_MAX"
	EnvPortraitThreshold = EnvPrefix + "PORTRAIT_THRESHOLD"
	EnvAllowExplicit     = EnvPrefix + "ALLOW_EXPLICIT"
	EnvScenarios         = EnvPrefix + "SCENARIOS"
	EnvLogLevel          = EnvPrefix + "LOG_LEVEL"
	EnvNoColor           = EnvPrefix + "NO_COLOR"
	EnvFile              = ".env"
)

// Application constants
const (
	AppName    = "wallfilter"
	AppVersion = "1.0.0"
)

// Report markers
const (
	MarkerPass  = "✓ PASS"
	MarkerFail  = "✗ FAIL"
	BannerWidth = 60
)

// Resolution thresholds used for booru size tags
const (
	AbsurdresMinWidth  = 3840
	AbsurdresMinHeight = 2160
	HighresMinWidth    = 1920
	HighresMinHeight   = 1080
	TagAbsurdres       = "absurdres"
	TagHighres         = "highres"
)
