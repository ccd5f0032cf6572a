package config

import (
	"image/color"
	"io/fs"
	"time"

	"golang.org/x/image/colornames"
)

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName     = "Go Clock"
	AppID       = "com.github.tartampluch.go-clock"
	LogFileName = "app.log"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	FilePermUserRW fs.FileMode = 0600

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	DirPermUserRWX fs.FileMode = 0700
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagVersion      = "version"
	FlagDebug        = "debug"
	FlagLayout       = "layout"
	FlagLang         = "lang"
	FlagDescVersion  = "Show application version and exit"
	FlagDescDebug    = "Enable debug logging to stdout"
	FlagDescLayout   = "Path to an optional YAML layout file"
	FlagDescLang     = "UI language (ISO 639-1), overrides the layout file"
	MsgVersionOutput = "%s version %s (%s/%s)\n"
)

// -----------------------------------------------------------------------------
// Timing
// -----------------------------------------------------------------------------

const (
	// TickInterval is how often both faces re-sample the wall clock.
	TickInterval = 1 * time.Second

	// PulseDuration is one way of the time text colour tween.
	// A full cycle (there and back) takes twice as long.
	PulseDuration = 600 * time.Millisecond
)

// -----------------------------------------------------------------------------
// Window Layout (dp)
// -----------------------------------------------------------------------------

const (
	DefaultAnalogSize = 250
	DefaultSpacing    = 32
	PaddingVertical   = 70
	PaddingHorizontal = 32
	MinWidgetSize     = 50
	MaxWidgetSize     = 2000
	DefaultLanguage   = "en"
)

// -----------------------------------------------------------------------------
// Analog Face Proportions (fractions of the widget size)
// -----------------------------------------------------------------------------

const (
	FaceRadiusRatio      = 0.4
	FrameRatio           = 0.08
	FaceRimRatio         = 0.3  // gradient disc extends radius by this share of the frame
	ShadowInsetRatio     = 0.3  // of the frame thickness
	HighlightInsetRatio  = 0.2  // of the frame thickness
	FrameCornerRatio     = 0.15 // of the widget size
	HighlightCornerRatio = 0.13 // of the widget size

	HourTickStart   = 0.85 // of the face radius
	MinuteTickStart = 0.90
	TickEnd         = 0.95
	HourTickWidth   = 0.01 // of the widget size
	MinuteTickWidth = 0.003

	HourHandLength   = 0.5 // of the face radius
	MinuteHandLength = 0.7
	SecondHandLength = 0.8
	HourHandWidth    = 0.012 // of the widget size
	MinuteHandWidth  = 0.008
	SecondHandWidth  = 0.004

	CenterDotRatio       = 0.02 // of the widget size
	CenterHighlightRatio = 0.01

	DegreesPerHour     = 30.0
	DegreesPerMinute   = 6.0
	DegreesPerSecond   = 6.0
	HourHandPerMinute  = 0.5
	TopOfFaceOffsetDeg = 90.0
	HoursOnFace        = 12
	MinutePositions    = 60
	MinutesPerHourTick = 5
)

// -----------------------------------------------------------------------------
// Owl Panel Geometry (dp / raster px at scale 1)
// -----------------------------------------------------------------------------

const (
	PanelWidth        = 340
	PanelHeight       = 200
	PanelCorner       = 40
	PanelGlowStroke   = 16
	PanelBorderStroke = 6
	PanelGlowCenterX  = 0.8
	PanelGlowCenterY  = 0.85
	PanelGlowDivisor  = 1.4
	PanelGlossDivisor = 1.8

	TimeTextSize     = 56
	DateTextSize     = 22
	DateBaselineGap  = 24
	BaselineRatio    = 0.8 // share of a text line height above the baseline
	GlowSpreadRatio  = 1.6 // glow box size relative to the time text box
	GlowAlpha        = 0.5
	TimeFormat       = "15:04:05"
	DateFormatLayout = "%s, %s %02d %04d"
)

// -----------------------------------------------------------------------------
// Palette
// -----------------------------------------------------------------------------

var (
	ColorFrameShadow    = color.NRGBA{R: 0xD4, G: 0x92, B: 0x0A, A: 0xFF}
	ColorFrameMain      = color.NRGBA{R: 0xF4, G: 0xA6, B: 0x23, A: 0xFF}
	ColorFrameHighlight = color.NRGBA{R: 0xFF, G: 0xC5, B: 0x55, A: 0xFF}
	ColorFaceMid        = color.NRGBA{R: 0xF8, G: 0xF8, B: 0xF8, A: 0xFF}
	ColorFaceEdge       = color.NRGBA{R: 0xE8, G: 0xE8, B: 0xE8, A: 0xFF}
	ColorFace           = colornames.White
	ColorInk            = colornames.Black
	ColorMinuteTick     = color.NRGBA{A: 0x99}
	ColorSecondHand     = colornames.Red
	ColorCenterShine    = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xB3}

	ColorPanelTop       = color.NRGBA{R: 0x12, G: 0x12, B: 0x12, A: 0xFF}
	ColorPanelBottom    = color.NRGBA{A: 0xFF}
	ColorBorderTop      = color.NRGBA{R: 0x3A, G: 0x3A, B: 0x3A, A: 0xFF}
	ColorBorderBottom   = color.NRGBA{R: 0x1A, G: 0x1A, B: 0x1A, A: 0xFF}
	ColorBevelHighlight = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0x1F}
	ColorGloss          = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0x24}
	ColorInnerShadow    = color.NRGBA{A: 0xCC}
	ColorAmbientGlow    = color.NRGBA{A: 0xE6}
	ColorTransparent    = color.NRGBA{}

	ColorPulseFrom = colornames.Cyan
	ColorPulseTo   = colornames.Magenta
	ColorDateText  = color.NRGBA{R: 0xCC, G: 0xCC, B: 0xCC, A: 0xFF}
)

// SupportedLanguages lists the bundled UI languages (ISO 639-1).
var SupportedLanguages = []string{"en", "fr"}

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	TKeyWinTitle = "win_title"

	// Weekday and month abbreviations are looked up as prefix + English
	// three-letter name in lower case (e.g. "weekday_wed", "month_jan").
	TKeyWeekdayPrefix = "weekday_"
	TKeyMonthPrefix   = "month_"
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrLogFile       = "failed to open log file"
	ErrCacheDir      = "could not determine user cache dir"
	ErrCreateDir     = "could not create app cache dir"
	ErrAppFailed     = "application failed unexpectedly"
	ErrLayoutRead    = "failed to read layout file"
	ErrLayoutParse   = "failed to parse layout file"
	ErrLayoutSize    = "widget size out of range"
	ErrLayoutSpacing = "spacing must not be negative"
	ErrLocalesAccess = "failed to access embedded locales"
	ErrLocaleLoad    = "failed to load locale file"
)

// -----------------------------------------------------------------------------
// Log Messages
// -----------------------------------------------------------------------------

const (
	MsgAppStop       = "Application stopped gracefully"
	MsgCtxCancel     = "Context cancelled, shutting down UI"
	MsgAppStarting   = "Starting application"
	MsgLayoutLoaded  = "Layout loaded"
	MsgWindowBuilt   = "Clock window built"
	MsgWindowClosed  = "Clock window closed"
	MsgTickerStart   = "Clock ticker started"
	MsgTickerStop    = "Clock ticker stopped"
	MsgPulseStart    = "Colour pulse started"
	MsgLocaleSkip    = "Skipping non-locale file"
	MsgLocaleBadName = "Skipping malformed locale filename"
	MsgLocaleLoaded  = "Locale loaded successfully"
	MsgTransMissing  = "Missing translation key"
	MsgLogWarning    = "Warning: %s at %s: %v\n"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyFile      = "file"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyInterval  = "interval"
	LogKeySize      = "size"
	LogKeySpacing   = "spacing"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompUI     = "ui"
	CompAnalog = "analog_clock"
	CompOwl    = "owl_clock"
	CompEngine = "engine"
	CompConfig = "config"
	CompMain   = "main"
	CompI18n   = "i18n"
)
