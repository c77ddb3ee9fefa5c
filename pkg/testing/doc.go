// Package testing drives weft applications in tests without a terminal.
//
// # Quick Start
//
// Create a tester for an application, pump it, and make assertions:
//
//	func TestCounter(t *testing.T) {
//	    tester := wefttest.NewTesterWithT(t, counter{}, counterView)
//	    tester.Pump()
//
//	    tester.Tap(wefttest.ByText("+"))
//
//	    if !tester.Find(wefttest.ByText("count: 1")).Exists() {
//	        t.Error("expected the count to increase")
//	    }
//	}
//
// Gestures are raw events routed through the widget tree exactly as a
// shell would deliver them, so a tap only reaches a button when the button
// is laid out under the tapped point.
//
// # Snapshot Testing
//
// Capture and compare the widget tree and its paint output:
//
//	snapshot := tester.CaptureSnapshot()
//	snapshot.MatchesFile(t, "testdata/counter.snapshot.json")
//
// Update snapshots with:
//
//	WEFT_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import wefttest "github.com/go-drift/weft/pkg/testing"
package testing
