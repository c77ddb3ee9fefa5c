package testing

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/go-cmp/cmp"

	"github.com/go-drift/weft/pkg/debug"
	"github.com/go-drift/weft/pkg/widget"
)

// UpdateEnv is the environment variable that makes MatchesFile rewrite
// golden files instead of comparing.
const UpdateEnv = "WEFT_UPDATE_SNAPSHOTS"

// TestingT is the subset of *testing.T used by MatchesFile, allowing
// test doubles to intercept failures.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
	Name() string
}

// Snapshot captures the widget tree structure and paint operations.
type Snapshot struct {
	Tree       *WidgetNode `json:"tree"`
	DisplayOps []DisplayOp `json:"displayOps,omitempty"`
}

// WidgetNode represents a node in the serialized widget tree. Ids are
// stable per type and traversal order ("Label#0", "Label#1") rather than
// process-unique, so snapshots compare across runs.
type WidgetNode struct {
	ID       string        `json:"id"`
	Type     string        `json:"type"`
	Text     string        `json:"text,omitempty"`
	Size     [2]float64    `json:"size"`
	Offset   [2]float64    `json:"offset"`
	Children []*WidgetNode `json:"children,omitempty"`
}

// CaptureSnapshot captures the current widget tree and paint output.
func (t *Tester[T, A]) CaptureSnapshot() *Snapshot {
	snap := &Snapshot{}
	root := t.Root()
	if root == nil {
		return snap
	}
	snap.Tree = captureWidgetNode(root, &typeCounter{})
	if dl, err := t.Paint(); err == nil {
		snap.DisplayOps = SerializeDisplayList(dl)
	}
	return snap
}

// MatchesFile compares this snapshot against a golden file. On mismatch it
// reports a diff and instructions for updating. When WEFT_UPDATE_SNAPSHOTS=1
// is set, the file is silently updated instead.
func (s *Snapshot) MatchesFile(t TestingT, path string) {
	t.Helper()

	if os.Getenv(UpdateEnv) == "1" {
		if err := s.UpdateFile(path); err != nil {
			t.Fatalf("failed to update snapshot: %v", err)
		}
		return
	}

	expected, err := loadSnapshot(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("snapshot file missing: %s\n\nTo create: %s=1 go test -run %s", path, UpdateEnv, t.Name())
			return
		}
		t.Fatalf("failed to load snapshot: %v", err)
		return
	}

	if diff := s.Diff(expected); diff != "" {
		t.Errorf("snapshot mismatch: %s (-expected +actual)\n%s\n\nTo update: %s=1 go test -run %s", path, diff, UpdateEnv, t.Name())
	}
}

// UpdateFile writes this snapshot to the given path, creating directories
// as needed.
func (s *Snapshot) UpdateFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := marshalSnapshot(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Diff returns a line diff between other (expected) and this snapshot.
// Returns empty string if equal.
func (s *Snapshot) Diff(other *Snapshot) string {
	a, _ := marshalSnapshot(s)
	b, _ := marshalSnapshot(other)
	if bytes.Equal(a, b) {
		return ""
	}
	return cmp.Diff(strings.Split(string(b), "\n"), strings.Split(string(a), "\n"))
}

// --- Internal ---

// typeCounter assigns stable IDs like "HStack#0", "HStack#1".
type typeCounter struct {
	counts map[string]int
}

func (c *typeCounter) next(typeName string) string {
	if c.counts == nil {
		c.counts = make(map[string]int)
	}
	n := c.counts[typeName]
	c.counts[typeName] = n + 1
	return fmt.Sprintf("%s#%d", typeName, n)
}

func captureWidgetNode(p *widget.Pod, counter *typeCounter) *WidgetNode {
	typeName := debug.TypeName(p.Widget())
	size := p.Size()
	origin := p.Origin()
	node := &WidgetNode{
		ID:     counter.next(typeName),
		Type:   typeName,
		Size:   [2]float64{finite(size.Width), finite(size.Height)},
		Offset: [2]float64{finite(origin.X), finite(origin.Y)},
	}
	if d, ok := p.Widget().(widget.Describer); ok {
		node.Text = d.Describe()
	}
	p.VisitChildren(func(child *widget.Pod) {
		node.Children = append(node.Children, captureWidgetNode(child, counter))
	})
	return node
}

// finite rounds v and maps infinities to -1, which encoding/json accepts.
func finite(v float64) float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return -1
	}
	return round2(v)
}

func loadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("invalid snapshot JSON: %w", err)
	}
	return &snap, nil
}

func marshalSnapshot(s *Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
