package tablegrid

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Script is a recorded sequence of host events, replayable against an
// Editor. Pointer positions are client pixels; Left/Top give the hosting
// element's offset.
type Script struct {
	Viewport Viewport      `yaml:"viewport"`
	Left     float64       `yaml:"left,omitempty"`
	Top      float64       `yaml:"top,omitempty"`
	Events   []ScriptEvent `yaml:"events"`
}

// ScriptEvent is one host event. Kind is one of down, move, hover, up,
// leave, insert, delete, undo, redo or wait.
type ScriptEvent struct {
	Kind  string  `yaml:"kind"`
	Line  string  `yaml:"line,omitempty"`  // down: vertical or horizontal
	Index int     `yaml:"index,omitempty"` // down: line index
	Side  string  `yaml:"side,omitempty"`  // down on an edge, or insert at a side
	X     float64 `yaml:"x,omitempty"`
	Y     float64 `yaml:"y,omitempty"`
	MS    int     `yaml:"ms,omitempty"` // wait
}

// ParseScript decodes a YAML script.
func ParseScript(data []byte) (*Script, error) {
	var script Script
	if err := yaml.Unmarshal(data, &script); err != nil {
		return nil, errors.Wrap(err, "failed to parse script")
	}
	return &script, nil
}

// LoadScript reads a YAML script from disk.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read script")
	}
	script, err := ParseScript(data)
	if err != nil {
		return nil, errors.Wrapf(err, "script %s", path)
	}
	return script, nil
}

// Replay applies the script's events to editor in order. wait events advance
// sched, which must be the scheduler the editor was configured with.
func Replay(editor *Editor, sched *ManualScheduler, script *Script) error {
	for i, ev := range script.Events {
		if err := script.apply(editor, sched, ev); err != nil {
			return errors.Wrapf(err, "event %d", i+1)
		}
	}
	return nil
}

func (s *Script) apply(editor *Editor, sched *ManualScheduler, ev ScriptEvent) error {
	pointer := PointerEvent{ClientX: ev.X, ClientY: ev.Y, Left: s.Left, Top: s.Top}

	switch ev.Kind {
	case "down":
		target, err := ev.target()
		if err != nil {
			return err
		}
		editor.PointerDown(target, pointer)
	case "move":
		editor.PointerMove(pointer)
	case "hover":
		editor.EdgeHover(pointer)
	case "up":
		editor.PointerUp()
	case "leave":
		editor.PointerLeaveViewport()
	case "insert":
		if ev.Side == "" {
			editor.InsertLine()
			return nil
		}
		side, ok := ParseSide(ev.Side)
		if !ok {
			return errors.Errorf("unknown side %q", ev.Side)
		}
		editor.InsertLineAt(side)
	case "delete":
		editor.DeleteSelected()
	case "undo":
		editor.Undo()
	case "redo":
		editor.Redo()
	case "wait":
		if sched == nil {
			return errors.New("wait needs a manual scheduler")
		}
		sched.Advance(time.Duration(ev.MS) * time.Millisecond)
	default:
		return errors.Errorf("unknown event kind %q", ev.Kind)
	}
	return nil
}

func (ev ScriptEvent) target() (Target, error) {
	switch ev.Line {
	case "vertical":
		return LineTarget(Vertical, ev.Index), nil
	case "horizontal":
		return LineTarget(Horizontal, ev.Index), nil
	case "":
	default:
		return Target{}, errors.Errorf("unknown line type %q", ev.Line)
	}
	if ev.Side == "" {
		return EmptyTarget(), nil
	}
	side, ok := ParseSide(ev.Side)
	if !ok {
		return Target{}, errors.Errorf("unknown side %q", ev.Side)
	}
	return EdgeTarget(side), nil
}
