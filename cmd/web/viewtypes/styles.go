package viewtypes

// ============================================================================
// SHARED CSS CLASS CONSTANTS
// Reusable Tailwind class strings used across the studio components.
// ============================================================================

// SectionLabel is the standard label style for form sections, panel headings, etc.
var SectionLabel = "text-xs text-white/40 font-mono uppercase tracking-wider"

// GhostButtonSm is a small ghost-style button (outlined, no fill).
var GhostButtonSm = "px-3 py-1 text-xs font-mono uppercase tracking-wider transition-all border-2 bg-black text-white border-white/20 hover:border-white/40 active:scale-95"

// DangerButtonSm is GhostButtonSm for destructive actions.
var DangerButtonSm = "px-3 py-1 text-xs font-mono uppercase tracking-wider transition-all border-2 bg-black text-red-400 border-red-400/40 hover:border-red-400 active:scale-95"

// PageHeading is the main h1 heading style for top-level pages.
var PageHeading = "text-2xl font-mono font-bold uppercase tracking-wider"

// SubHeading is for secondary headings (h2 level) within pages.
var SubHeading = "text-lg font-mono font-bold uppercase tracking-wider"

// InfoBoxClass is the standard info/detail panel container.
var InfoBoxClass = "bg-black border-2 border-white/10 p-3"

// InputClass is the standard text input styling.
var InputClass = "w-full px-3 py-2 bg-black border-2 border-white/20 text-white placeholder-white/40 focus:border-white transition font-mono text-sm"

// RangeClass styles slider inputs.
var RangeClass = "w-full accent-white"

// HelpClass styles the markdown help under a control.
var HelpClass = "text-xs text-white/50 mt-1 [&_code]:text-white/80"

// PreviewClass styles the descriptor JSON preview.
var PreviewClass = "bg-black border-2 border-white/10 p-3 text-xs font-mono text-green-300 whitespace-pre overflow-auto"
