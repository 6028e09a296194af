package state

// IntentKind tags the Intent union.
type IntentKind string

const (
	IntentStrokeStart  IntentKind = "stroke_start"
	IntentStrokeExtend IntentKind = "stroke_extend"
	IntentStrokeEnd    IntentKind = "stroke_end"
	IntentClear        IntentKind = "clear"
	IntentQuit         IntentKind = "quit"
)

// Intent is a semantic input event consumed by the Painter. Kind selects the
// variant; Pos carries the pointer position for stroke_start and
// stroke_extend and is zero otherwise.
type Intent struct {
	Kind IntentKind
	Pos  Point
}

func StrokeStart(p Point) Intent { return Intent{Kind: IntentStrokeStart, Pos: p} }

func StrokeExtend(p Point) Intent { return Intent{Kind: IntentStrokeExtend, Pos: p} }

func StrokeEnd() Intent { return Intent{Kind: IntentStrokeEnd} }

func Clear() Intent { return Intent{Kind: IntentClear} }

func Quit() Intent { return Intent{Kind: IntentQuit} }
