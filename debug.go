package showcase

import (
	"fmt"
	"log"
	"os"
	"time"
)

// debugLogger receives everything debug mode prints.
var debugLogger = log.New(os.Stderr, "[showcase] ", 0)

const (
	debugLogEvery     = 60 // frames between timing lines
	debugMaxTreeDepth = 32
	debugMaxChildren  = 1000
)

// frameStats times the phases of one Draw.
type frameStats struct {
	mark                   time.Time
	traverse, sort, submit time.Duration
	commands               int
}

// lap returns the time since the previous lap and restarts the clock.
func (f *frameStats) lap() time.Duration {
	now := time.Now()
	d := now.Sub(f.mark)
	f.mark = now
	return d
}

func (s *Scene) logFrame(f *frameStats) {
	s.debugFrame++
	if s.debugFrame%debugLogEvery != 1 {
		return
	}
	debugLogger.Printf("frame %d: traverse %v, sort %v, submit %v, total %v, %d draw calls",
		s.debugFrame, f.traverse, f.sort, f.submit, f.traverse+f.sort+f.submit, f.commands)
}

func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("showcase: %s on disposed node %q", op, n.Name))
	}
}

// debugCheckTree warns about suspiciously deep or wide trees after child
// joins parent.
func debugCheckTree(parent, child *Node) {
	depth := 0
	for p := child; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		debugLogger.Printf("warning: node %q is %d levels deep (limit %d)", child.Name, depth, debugMaxTreeDepth)
	}
	if n := len(parent.children); n > debugMaxChildren {
		debugLogger.Printf("warning: node %q has %d children (limit %d)", parent.Name, n, debugMaxChildren)
	}
}
